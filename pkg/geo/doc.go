// Package geo resolves client IP addresses to a coarse location.
//
// A Provider performs the actual lookup. HTTPProvider queries a JSON endpoint
// such as ipinfo.io. Cached wraps a Provider with an in-process LRU, an
// optional shared Redis cache, a hard timeout and a default payload, so a
// caller always receives a usable Location:
//
//	locator := geo.NewCached(geo.NewHTTPProvider("https://ipinfo.io/{ip}/json"),
//		geo.WithTimeout(2*time.Second),
//		geo.WithLocalCache(10_000, 24*time.Hour),
//		geo.WithSharedCache(geo.NewRedisCache(client, 24*time.Hour)),
//	)
//	loc, err := locator.Locate(ctx, ip)
//	// err != nil means loc is DefaultLocation
//
// Failed lookups are never cached.
package geo

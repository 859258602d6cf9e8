// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry.
//
// The cache evicts the least recently used entry once capacity is reached.
// With WithTTL, entries also expire a fixed duration after they were written;
// expired entries are dropped lazily on access.
//
// Usage:
//
//	c := cache.NewLRUCache[string, geo.Location](10_000, cache.WithTTL[string, geo.Location](24*time.Hour))
//	c.Put(ip, loc)
//	if loc, ok := c.Get(ip); ok {
//		// fresh hit
//	}
//
// All methods are safe for concurrent use. Get and Put are O(1).
package cache

// Package redis connects to the Redis instance that backs the shared
// geolocation cache.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Healthcheck wraps a ping for readiness probes.
package redis

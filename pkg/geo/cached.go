package geo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/landingkit/trafficid/pkg/async"
	"github.com/landingkit/trafficid/pkg/cache"
	"github.com/landingkit/trafficid/pkg/logger"
)

const (
	DefaultTimeout   = 2 * time.Second
	DefaultCacheSize = 10_000
	DefaultCacheTTL  = 24 * time.Hour
)

// Cached is a Provider wrapper that always yields a usable Location.
type Cached struct {
	provider Provider
	local    *cache.LRUCache[string, Location]
	shared   SharedCache
	timeout  time.Duration
	fallback Location
	logger   *slog.Logger
}

// CachedOption configures Cached.
type CachedOption func(*Cached)

// WithTimeout bounds a whole lookup, shared cache included.
func WithTimeout(d time.Duration) CachedOption {
	return func(c *Cached) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLocalCache sizes the in-process cache.
func WithLocalCache(size int, ttl time.Duration) CachedOption {
	return func(c *Cached) {
		if size > 0 {
			c.local = cache.NewLRUCache(size, cache.WithTTL[string, Location](ttl))
		}
	}
}

// WithSharedCache adds a second-level cache consulted after the local one.
func WithSharedCache(s SharedCache) CachedOption {
	return func(c *Cached) {
		c.shared = s
	}
}

// WithDefault replaces DefaultLocation as the fallback payload.
func WithDefault(loc Location) CachedOption {
	return func(c *Cached) {
		c.fallback = loc
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(l *slog.Logger) CachedOption {
	return func(c *Cached) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCached wraps provider.
func NewCached(provider Provider, opts ...CachedOption) *Cached {
	c := &Cached{
		provider: provider,
		timeout:  DefaultTimeout,
		fallback: DefaultLocation,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.local == nil {
		c.local = cache.NewLRUCache(DefaultCacheSize, cache.WithTTL[string, Location](DefaultCacheTTL))
	}
	return c
}

// Locate returns the location of ip. On failure or timeout it returns the
// fallback location together with the cause; the location is usable either way.
func (c *Cached) Locate(ctx context.Context, ip string) (Location, error) {
	addr, err := ParsePublicIP(ip)
	if err != nil {
		return c.fallback, err
	}
	key := addr.String()

	if loc, ok := c.local.Get(key); ok {
		return loc, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	loc, err := async.Async(ctx, key, c.lookup).AwaitWithTimeout(c.timeout)
	if err != nil {
		if errors.Is(err, async.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
			err = errors.Join(ErrLookupTimeout, err)
		}
		return c.fallback, err
	}

	c.local.Put(key, loc)
	return loc, nil
}

func (c *Cached) lookup(ctx context.Context, ip string) (Location, error) {
	if c.shared != nil {
		loc, found, err := c.shared.Get(ctx, ip)
		if err != nil {
			c.logger.WarnContext(ctx, "geo shared cache read failed", logger.Error(err))
		} else if found {
			return loc, nil
		}
	}

	if c.provider == nil {
		return Location{}, ErrLookupFailed
	}
	loc, err := c.provider.Lookup(ctx, ip)
	if err != nil {
		return Location{}, err
	}

	if c.shared != nil {
		if err := c.shared.Set(ctx, ip, loc); err != nil {
			c.logger.WarnContext(ctx, "geo shared cache write failed", logger.Error(err))
		}
	}
	return loc, nil
}

package httpserver

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*options)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty address")
	}
	return func(o *options) { o.addr = addr }
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(o *options) { o.readHeaderTimeout = positive(d, o.readHeaderTimeout) }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *options) { o.readTimeout = positive(d, o.readTimeout) }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) { o.writeTimeout = positive(d, o.writeTimeout) }
}

func WithIdleTimeout(d time.Duration) Option {
	return func(o *options) { o.idleTimeout = positive(d, o.idleTimeout) }
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *options) { o.shutdownTimeout = positive(d, o.shutdownTimeout) }
}

// WithLogger sets the lifecycle logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func positive(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}

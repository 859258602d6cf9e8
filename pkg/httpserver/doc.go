// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received, or
// the listener fails. Shutdown waits at most the configured shutdown timeout
// for in-flight requests. Listen errors are wrapped with ErrStart and shutdown
// errors with ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness probes.
package httpserver

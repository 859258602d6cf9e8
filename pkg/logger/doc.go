// Package logger builds *slog.Logger instances and provides attribute helpers
// shared by the service.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.InfoContext(ctx, "visit ingested",
//		logger.Fingerprint(rec.Fingerprint),
//		logger.Attribution(rec.Medium, rec.Source),
//	)
//
// Context extractors run on every record, so request-scoped values such as the
// request id appear without threading loggers through call chains.
package logger

// Package logger builds *slog.Logger instances with functional options and
// injects request scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on each Handle call. Request id, environment,
// client ip and fingerprint extractors are registered this way.
//
// Attribute helpers in attr.go keep key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "reqprint"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "request handled", logger.Digest(fp))
package logger

package hello

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/reqprint/handler"
	"github.com/dmitrymomot/reqprint/pkg/fingerprint"
	"github.com/dmitrymomot/reqprint/pkg/logger"
)

// LogRequest logs the digest, method and duration of every handled request.
// The digest stored by fingerprint.Middleware is reused when present.
func LogRequest(log *slog.Logger) handler.Decorator[Request] {
	return func(next handler.HandlerFunc[Request]) handler.HandlerFunc[Request] {
		return func(ctx handler.Context, req Request) handler.Response {
			start := time.Now()
			resp := next(ctx, req)

			digest := fingerprint.GetFingerprintFromContext(ctx)
			if digest == "" {
				digest = fingerprint.Derive(fingerprint.NewSignalSet(req.Headers, req.UserID))
			}

			log.InfoContext(ctx, "hello served",
				logger.Digest(digest),
				slog.String("method", ctx.Request().Method),
				logger.Duration(time.Since(start)),
			)
			return resp
		}
	}
}

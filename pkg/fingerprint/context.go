package fingerprint

import (
	"context"
	"log/slog"
)

type fingerprintContextKey struct{}

func SetFingerprintToContext(ctx context.Context, fingerprint string) context.Context {
	return context.WithValue(ctx, fingerprintContextKey{}, fingerprint)
}

func GetFingerprintFromContext(ctx context.Context) string {
	fingerprint, _ := ctx.Value(fingerprintContextKey{}).(string)
	return fingerprint
}

// LoggerExtractor returns a ContextExtractor for the logger
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if fp := GetFingerprintFromContext(ctx); fp != "" {
			return slog.String("fingerprint", fp), true
		}
		return slog.Attr{}, false
	}
}

// Package app wires configuration, logging and routing for the reqprint service.
package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reqprint/internal/hello"
	"github.com/dmitrymomot/reqprint/pkg/clientip"
	"github.com/dmitrymomot/reqprint/pkg/cookie"
	"github.com/dmitrymomot/reqprint/pkg/environment"
	"github.com/dmitrymomot/reqprint/pkg/fingerprint"
	"github.com/dmitrymomot/reqprint/pkg/httpserver"
	"github.com/dmitrymomot/reqprint/pkg/logger"
	"github.com/dmitrymomot/reqprint/pkg/requestid"
)

// NewLogger builds the service logger. LOG_LEVEL, when set, overrides the
// level picked by the environment preset.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelString(cfg.LogLevel),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			fingerprint.LoggerExtractor(),
		),
	)
}

// NewRouter returns the HTTP handler of the service.
func NewRouter(cfg Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(environment.Parse(cfg.Env)),
		clientip.Middleware,
		fingerprint.Middleware,
	)

	r.Get("/health/live", httpserver.HealthCheckHandler(log))

	svc := hello.NewService(log, cookie.NewFromConfig(cfg.Cookie))
	r.Mount("/", hello.Router(svc))

	return r
}

// Serve runs the HTTP server until ctx is canceled or the process is signaled.
func Serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("service stopped", slog.String("service", cfg.Name))
		}),
	)
	return srv.Run(ctx, NewRouter(cfg, log))
}

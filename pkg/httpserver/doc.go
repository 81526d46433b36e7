// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, lifecycle hooks and a health check handler.
//
// Run binds the listener first, then fires start hooks, so a hook always
// observes a server that accepts connections. It blocks until the context
// is cancelled, an interrupt or TERM signal arrives, or Shutdown is called,
// and then drains in-flight requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver

package hello

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/reqprint/handler"
	"github.com/dmitrymomot/reqprint/pkg/cookie"
	"github.com/dmitrymomot/reqprint/pkg/fingerprint"
	"github.com/dmitrymomot/reqprint/pkg/logger"
)

type Service struct {
	log          *slog.Logger
	cookies      *cookie.Manager
	errorHandler handler.ErrorHandler
}

// NewService creates the endpoint service. A nil logger falls back to
// slog.Default and a nil cookie manager to cookie.New().
func NewService(log *slog.Logger, cookies *cookie.Manager) *Service {
	if log == nil {
		log = slog.Default()
	}
	if cookies == nil {
		cookies = cookie.New()
	}
	log = log.With(logger.Component("hello"))

	return &Service{
		log:          log,
		cookies:      cookies,
		errorHandler: handler.NewErrorHandler(log),
	}
}

// Handle returns the endpoint handler. It accepts every HTTP method.
func (s *Service) Handle() http.Handler {
	return handler.Wrap(s.Hello,
		handler.WithBinder[Request](Bind),
		handler.WithDecorators(LogRequest(s.log)),
		handler.WithErrorHandler[Request](s.errorHandler),
	)
}

// Hello derives the request digest, sets the user_id cookie when a caller
// id was supplied and echoes the request back.
func (s *Service) Hello(ctx handler.Context, req Request) handler.Response {
	r := ctx.Request()

	s.log.DebugContext(ctx, "hello request",
		logger.Params(req.Params),
		logger.Headers(req.Headers),
	)

	digest := fingerprint.Derive(fingerprint.NewSignalSet(req.Headers, req.UserID))

	s.logCookie(ctx, r, CookieLoginVerify)
	s.logCookie(ctx, r, CookieUserID)

	if req.UserID != "" {
		err := s.cookies.Set(ctx.ResponseWriter(), CookieUserID, req.UserID,
			cookie.WithHTTPOnly(true),
			cookie.WithSecure(true),
			cookie.WithSameSite(http.SameSiteDefaultMode),
			cookie.WithMaxAge(0),
		)
		if err != nil {
			s.log.WarnContext(ctx, "failed to set user_id cookie",
				logger.UserID(req.UserID),
				logger.Error(err),
			)
		}
	}

	s.log.DebugContext(ctx, "request cookies", logger.Cookies(s.cookies.All(r)))

	payload := Payload{
		Message: Message,
		Headers: req.Headers,
		Digest:  digest,
		Params:  req.Params,
	}

	if handler.IsDataStar(r) {
		return handler.Signals(payload)
	}
	return handler.JSON(payload)
}

func (s *Service) logCookie(ctx handler.Context, r *http.Request, name string) {
	value, err := s.cookies.Get(r, name)
	if err != nil && !errors.Is(err, cookie.ErrCookieNotFound) {
		s.log.WarnContext(ctx, "failed to read cookie", slog.String("name", name), logger.Error(err))
		return
	}
	s.log.DebugContext(ctx, "inbound cookie", logger.Cookie(name, value, err == nil))
}

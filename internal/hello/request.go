package hello

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/reqprint/pkg/reqmeta"
)

// Request is the endpoint input bound from the HTTP request.
type Request struct {
	Headers map[string]string
	Params  map[string]any
	UserID  string
}

// Bind fills a *Request from the request headers and query string.
func Bind(r *http.Request, v any) error {
	req, ok := v.(*Request)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrUnexpectedTarget, v)
	}

	req.Headers = reqmeta.Headers(r)
	req.Params = reqmeta.Query(r)
	req.UserID = reqmeta.CallerID(r)
	return nil
}

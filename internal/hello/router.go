package hello

import (
	"github.com/go-chi/chi/v5"
)

// Path is the route the endpoint is served on.
const Path = "/api/hello"

// Router mounts the service at Path for every HTTP method.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Handle(Path, svc.Handle())
	return r
}

// Package hello serves the /api/hello diagnostic endpoint.
//
// Each request is fingerprinted from its user agent, forwarded address,
// client hints, accept language and user_id query parameter. The response
// echoes the request headers and query parameters next to the digest.
// When user_id is present it is stored in an HttpOnly, Secure cookie.
//
// Usage:
//
//	svc := hello.NewService(log, cookie.NewFromConfig(cookieCfg))
//	r := chi.NewRouter()
//	r.Mount("/", hello.Router(svc))
//
// DataStar clients (Datastar-Request: true) receive the payload as a
// signal patch instead of a JSON body.
package hello

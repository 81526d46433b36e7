// Package clientip resolves the client IP address of an HTTP request behind
// common reverse proxies.
//
// Headers are checked in order: CF-Connecting-IP, DO-Connecting-IP,
// X-Forwarded-For (first valid entry), X-Real-IP, then RemoteAddr. Invalid
// values are skipped. The result is only as trustworthy as the proxy chain
// in front of the service, so it is used for logging, not for decisions.
//
//	http.Handle("/", clientip.Middleware(next))
//	ip := clientip.GetIPFromContext(r.Context())
package clientip

// Package requestid attaches a correlation id to every request.
//
// Middleware reuses a valid incoming X-Request-ID header or generates a
// UUIDv4, stores it in the request context and echoes it in the response
// header. LoggerExtractor feeds it into the logger package.
//
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid

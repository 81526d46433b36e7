// Package handler provides typed HTTP handlers.
//
// A HandlerFunc receives a Context and a request value already bound from
// the HTTP request, and returns a Response that renders itself:
//
//	func hello(ctx handler.Context, req HelloRequest) handler.Response {
//		return handler.JSON(map[string]string{"hello": req.Name})
//	}
//
//	r.HandleFunc("/hello", handler.Wrap(hello, handler.WithBinder[HelloRequest](bindHello)))
//
// # Responses
//
//	handler.JSON(v)                              // 200, v encoded as the body
//	handler.JSON(v, handler.WithJSONStatus(201)) // custom status
//	handler.JSONError(err)                       // {"error":{"code","message"}}
//	handler.Signals(v)                           // DataStar signal patch over SSE
//
// # Decorators
//
// Decorators wrap a HandlerFunc for cross-cutting concerns such as logging.
// The first decorator passed to WithDecorators is the outermost.
//
// # Errors
//
// Binding and rendering errors go to the configured ErrorHandler. The
// default one maps HTTPError values to their status code and everything
// else to 500. NewErrorHandler adds logging and JSON error bodies.
package handler

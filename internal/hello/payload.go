package hello

// Message is the fixed greeting returned by the endpoint.
const Message = "Hello from the API"

// Cookie names read or written by the endpoint.
const (
	CookieLoginVerify = "login-verify"
	CookieUserID      = "user_id"
)

// Payload is the response body.
type Payload struct {
	Message string            `json:"message"`
	Headers map[string]string `json:"headers"`
	Digest  string            `json:"digest"`
	Params  map[string]any    `json:"params"`
}

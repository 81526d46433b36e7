package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the caller supplied identifier under the key "user_id".
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// Digest records a request fingerprint under the key "digest".
func Digest(digest string) slog.Attr {
	return slog.String("digest", digest)
}

// Headers records a flattened header map under the key "headers".
func Headers(headers map[string]string) slog.Attr {
	return slog.Any("headers", headers)
}

// Params records query parameters under the key "params".
func Params(params map[string]any) slog.Attr {
	return slog.Any("params", params)
}

// Cookies records request cookies under the key "cookies".
func Cookies(cookies map[string]string) slog.Attr {
	return slog.Any("cookies", cookies)
}

// Cookie records a single named cookie as a group: {"cookie": {"name": ..., "value": ..., "present": ...}}.
func Cookie(name, value string, present bool) slog.Attr {
	return Group("cookie",
		slog.String("name", name),
		slog.String("value", value),
		slog.Bool("present", present),
	)
}

// Duration records an elapsed duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

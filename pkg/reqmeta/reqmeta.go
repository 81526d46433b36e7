package reqmeta

import (
	"maps"
	"net/http"
	"slices"
	"strings"
)

// QueryParamUserID is the query parameter carrying the caller identifier.
const QueryParamUserID = "user_id"

const (
	headerValueSeparator = ", "
	cookieValueSeparator = "; "
	queryValueSeparator  = ","
)

// Headers returns request headers keyed by lowercase name.
// Repeated headers are joined with ", " in the order they arrived, except
// Cookie, whose values are joined with "; " so the result is still a valid
// cookie header.
// The Host header is restored from r.Host because net/http removes it from r.Header.
func Headers(r *http.Request) map[string]string {
	headers := make(map[string]string, len(r.Header)+1)
	if r.Host != "" {
		headers["host"] = r.Host
	}

	// Sorted so keys that only differ in case merge in a stable order
	for _, name := range slices.Sorted(maps.Keys(r.Header)) {
		key := strings.ToLower(name)
		sep := headerValueSeparator
		if key == "cookie" {
			sep = cookieValueSeparator
		}
		value := strings.Join(r.Header[name], sep)
		if existing, ok := headers[key]; ok && key != "host" {
			value = existing + sep + value
		}
		headers[key] = value
	}

	return headers
}

// Query returns the request query parameters.
// A parameter sent once maps to a string, a repeated one to a []string.
func Query(r *http.Request) map[string]any {
	values := r.URL.Query()
	params := make(map[string]any, len(values))

	for name, vals := range values {
		switch len(vals) {
		case 0:
			params[name] = ""
		case 1:
			params[name] = vals[0]
		default:
			params[name] = append([]string(nil), vals...)
		}
	}

	return params
}

// CallerID returns the caller identifier from the user_id query parameter.
// Repeated values are joined with ","; an absent parameter yields "".
func CallerID(r *http.Request) string {
	return strings.Join(r.URL.Query()[QueryParamUserID], queryValueSeparator)
}

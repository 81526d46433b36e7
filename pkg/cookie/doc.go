// Package cookie provides a small HTTP cookie manager with configurable
// defaults.
//
// The Manager wraps net/http cookie handling so handlers can read and write
// cookies by name while the attributes (path, domain, max-age, Secure,
// HttpOnly, SameSite) come from one place, usually environment config.
//
// # Usage
//
//	man := cookie.NewFromConfig(cfg)
//
//	// per call overrides
//	_ = man.Set(w, "user_id", id, cookie.WithHTTPOnly(true), cookie.WithSecure(true))
//
//	id, err := man.Get(r, "user_id")
//	if errors.Is(err, cookie.ErrCookieNotFound) {
//		// no cookie
//	}
//
//	all := man.All(r) // name -> value for every request cookie
//
// # Defaults
//
// Without options the manager writes session cookies (no Max-Age, no
// Expires) on path "/" with HttpOnly set and no SameSite attribute.
// SameSite is only emitted when configured explicitly.
//
// # Errors
//
// Get returns ErrCookieNotFound for a missing cookie. Set returns
// ErrInvalidCookie when the name or attributes are rejected by net/http.
//
// # Values
//
// Values are percent-encoded on Set and decoded on Get and All, so any
// string round-trips unchanged. "a;b" is written as "a%3Bb" and "ü" as
// "%C3%BC". Values that are not valid escapes are returned as sent.
package cookie

package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Manager struct {
	defaults Options
}

func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
	}
}

// Defaults returns a copy of the manager default options.
func (m *Manager) Defaults() Options {
	return m.defaults
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	cookie := &http.Cookie{
		Name:     name,
		Value:    encodeValue(value),
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	// http.SetCookie silently drops invalid cookies
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	http.SetCookie(w, cookie)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return decodeValue(cookie.Value), nil
}

// All returns every request cookie by name. For duplicated names the first one wins.
func (m *Manager) All(r *http.Request) map[string]string {
	cookies := r.Cookies()
	result := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, ok := result[c.Name]; !ok {
			result[c.Name] = decodeValue(c.Value)
		}
	}
	return result
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	}
	http.SetCookie(w, cookie)
}

// encodeValue percent-encodes everything but unreserved characters, so any
// value, including non-ASCII text, survives the round trip through Get.
func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// decodeValue reverses encodeValue. Values that are not valid escapes, such as
// cookies written by other applications, are returned unchanged.
func decodeValue(v string) string {
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return v
	}
	return decoded
}

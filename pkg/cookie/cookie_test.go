package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqprint/pkg/cookie"
)

func TestManager_SetGet(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "test", "value"},
		{"empty value", "empty", ""},
		{"special chars", "special", "hello=world&foo=bar"},
		{"separators", "sep", `a;b,c "q" \\ d`},
		{"non ascii", "utf", "üser ✓"},
		{"percent", "pct", "100%"},
		{"plus", "plus", "a+b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			r := &http.Request{Header: http.Header{}}

			err := m.Set(w, tt.key, tt.value)
			require.NoError(t, err)

			r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

			got, err := m.Get(r, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.Get(r, "missing")

	assert.True(t, errors.Is(err, cookie.ErrCookieNotFound))
}

func TestManager_SetInvalidName(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	err := m.Set(w, "bad name", "value")

	require.ErrorIs(t, err, cookie.ErrInvalidCookie)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestManager_SetEncodesValue(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"semicolon", "a;b", "v=a%3Bb; Path=/; HttpOnly"},
		{"comma", "a,b", "v=a%2Cb; Path=/; HttpOnly"},
		{"quotes", `"abc"`, "v=%22abc%22; Path=/; HttpOnly"},
		{"backslash", `a\b`, "v=a%5Cb; Path=/; HttpOnly"},
		{"space", "a b", "v=a%20b; Path=/; HttpOnly"},
		{"non ascii", "ü", "v=%C3%BC; Path=/; HttpOnly"},
		{"unreserved", "A-z_0.9~", "v=A-z_0.9~; Path=/; HttpOnly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, m.Set(w, "v", tt.value))
			assert.Equal(t, tt.want, w.Header().Get("Set-Cookie"))
		})
	}
}

func TestManager_GetKeepsForeignValues(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "raw=100%zz; enc=a%3Bb")

	got, err := m.Get(r, "raw")
	require.NoError(t, err)
	assert.Equal(t, "100%zz", got)

	got, err = m.Get(r, "enc")
	require.NoError(t, err)
	assert.Equal(t, "a;b", got)

	assert.Equal(t, map[string]string{"raw": "100%zz", "enc": "a;b"}, m.All(r))
}

func TestDefaultAttributes(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "test", "value"))

	cookieStr := w.Header().Get("Set-Cookie")
	assert.Equal(t, "test=value; Path=/; HttpOnly", cookieStr)
	assert.NotContains(t, cookieStr, "SameSite")
	assert.NotContains(t, cookieStr, "Max-Age")
	assert.NotContains(t, cookieStr, "Expires")
}

func TestPerCallOptions(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	err := m.Set(w, "user_id", "abc",
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
		cookie.WithMaxAge(60),
		cookie.WithPath("/api"),
	)
	require.NoError(t, err)

	resp := w.Result()
	defer resp.Body.Close()
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, "user_id", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 60, c.MaxAge)
	assert.Equal(t, "/api", c.Path)

	// per call options must not leak into defaults
	assert.Equal(t, cookie.Options{Path: "/", HttpOnly: true}, m.Defaults())
}

func TestManager_All(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "user_id", Value: "abc"})
	r.AddCookie(&http.Cookie{Name: "login-verify", Value: "1"})
	r.AddCookie(&http.Cookie{Name: "user_id", Value: "shadowed"})

	assert.Equal(t, map[string]string{
		"user_id":      "abc",
		"login-verify": "1",
	}, m.All(r))

	assert.Empty(t, m.All(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := cookie.New(cookie.WithSecure(true))

	w := httptest.NewRecorder()
	m.Delete(w, "user_id")

	resp := w.Result()
	defer resp.Body.Close()
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "user_id", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.True(t, cookies[0].Secure)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()
		m := cookie.NewFromConfig(cookie.DefaultConfig())

		assert.Equal(t, cookie.Options{Path: "/", Secure: true, HttpOnly: true}, m.Defaults())

		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "user_id", "abc"))
		assert.Equal(t, "user_id=abc; Path=/; HttpOnly; Secure", w.Header().Get("Set-Cookie"))
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()
		m := cookie.NewFromConfig(cookie.Config{
			Path:     "/app",
			Domain:   "example.com",
			MaxAge:   3600,
			Secure:   false,
			HttpOnly: false,
			SameSite: http.SameSiteLaxMode,
		})

		assert.Equal(t, cookie.Options{
			Path:     "/app",
			Domain:   "example.com",
			MaxAge:   3600,
			SameSite: http.SameSiteLaxMode,
		}, m.Defaults())
	})

	t.Run("extra options override config", func(t *testing.T) {
		t.Parallel()
		m := cookie.NewFromConfig(cookie.DefaultConfig(), cookie.WithSecure(false))
		assert.False(t, m.Defaults().Secure)
	})
}

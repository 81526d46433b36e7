package fingerprint

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/reqprint/pkg/reqmeta"
)

// Delimiter separates signals in the canonical representation.
const Delimiter = "|"

// Header names read from the lowercase header map.
const (
	HeaderUserAgent      = "user-agent"
	HeaderForwardedFor   = "x-forwarded-for"
	HeaderClientHints    = "sec-ch-ua"
	HeaderAcceptLanguage = "accept-language"
)

// SignalSet holds the request signals a fingerprint is derived from.
// An empty field stands for an absent signal.
type SignalSet struct {
	UserAgent      string
	ForwardedFor   string
	ClientHints    string
	AcceptLanguage string
	CallerID       string
}

// NewSignalSet picks the signals from a lowercase header map and the caller id.
func NewSignalSet(headers map[string]string, callerID string) SignalSet {
	return SignalSet{
		UserAgent:      headers[HeaderUserAgent],
		ForwardedFor:   headers[HeaderForwardedFor],
		ClientHints:    headers[HeaderClientHints],
		AcceptLanguage: headers[HeaderAcceptLanguage],
		CallerID:       callerID,
	}
}

// FromRequest extracts the signal set from an HTTP request.
func FromRequest(r *http.Request) SignalSet {
	return NewSignalSet(reqmeta.Headers(r), reqmeta.CallerID(r))
}

// Canonical returns the exact string that is hashed.
// The delimiter count is always four, whatever signals are missing.
func (s SignalSet) Canonical() string {
	return strings.Join([]string{
		s.UserAgent,
		s.ForwardedFor,
		s.ClientHints,
		s.AcceptLanguage,
		s.CallerID,
	}, Delimiter)
}

// Derive returns the lowercase hex MD5 digest of the canonical signal string.
func Derive(s SignalSet) string {
	sum := md5.Sum([]byte(s.Canonical()))
	return hex.EncodeToString(sum[:])
}

// Generate derives the fingerprint of an HTTP request.
func Generate(r *http.Request) string {
	return Derive(FromRequest(r))
}

// Validate reports whether the request still produces the stored fingerprint.
func Validate(r *http.Request, stored string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(Generate(r)), []byte(stored)) == 1
}

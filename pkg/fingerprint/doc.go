// Package fingerprint derives a lightweight client fingerprint from a fixed
// set of request signals.
//
// Five signals are taken in a fixed order:
//
//  1. the User-Agent header,
//  2. the X-Forwarded-For header as received,
//  3. the Sec-CH-UA client hints header,
//  4. the Accept-Language header,
//  5. the caller supplied "user_id" query parameter.
//
// Missing signals are replaced with the empty string, the values are joined
// with "|" and the result is hashed with MD5. The fingerprint is the 32
// character lowercase hex encoding of that digest.
//
// # Caveats
//
// The fingerprint is weak and spoofable. Every signal is controlled by the
// client, MD5 offers no cryptographic guarantee, and the plain join means a
// value containing "|" can make two different signal sets hash the same.
// Use it for logging and coarse analytics only, never for authentication or
// abuse prevention. The algorithm is kept as is so values stay comparable
// with fingerprints computed by existing consumers.
//
// # Architecture
//
//   - Derive – pure function over a SignalSet.
//   - NewSignalSet / FromRequest – signal extraction from a lowercase header
//     map or directly from an *http.Request (via the reqmeta package).
//   - Generate / Validate – request level helpers.
//   - Middleware – stores the fingerprint in the request context.
//   - Context helpers and LoggerExtractor for slog integration.
//
// # Usage
//
//	fp := fingerprint.Derive(fingerprint.SignalSet{
//		UserAgent:      "UA/1.0",
//		ForwardedFor:   "10.0.0.1",
//		ClientHints:    "hints",
//		AcceptLanguage: "en-US",
//		CallerID:       "u123",
//	})
//
//	http.Handle("/", fingerprint.Middleware(next))
//	fp = fingerprint.GetFingerprintFromContext(r.Context())
//
// # Error Handling
//
// Nothing here returns an error. Content is never validated.
package fingerprint

// Package reqmeta flattens the parts of an incoming HTTP request that are
// echoed back to callers and fed into fingerprinting.
//
// net/http canonicalizes header names and keeps repeated values apart. The
// helpers here produce the plain maps handlers and the fingerprint deriver
// work with:
//
//   - Headers: lowercase header name to value, repeated values joined with ", ".
//   - Query: parameter name to a string, or to a []string when repeated.
//   - CallerID: the caller supplied "user_id" query parameter.
//
// Values are never trimmed, filtered or validated; what the client sent is
// what the maps contain.
//
// # Usage
//
//	headers := reqmeta.Headers(r)
//	params := reqmeta.Query(r)
//	fp := fingerprint.Derive(fingerprint.NewSignalSet(headers, reqmeta.CallerID(r)))
package reqmeta

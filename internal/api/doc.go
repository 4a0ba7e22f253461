// Package api implements the HTTP transport of the CAPTCHA verification
// protocol: a single form-encoded POST per call and the two-line
// plain-text reply format.
//
// The protocol has no retries. A call either completes its one round
// trip or fails with a *TransportError; the caller decides how to fold
// that into its result.
package api

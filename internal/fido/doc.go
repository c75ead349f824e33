// Package fido implements a compact CTAP 2.1 / U2F assertion client:
// the library surface exercised by the fuzzing harness.
//
// This includes public-key handling for the ES256, RS256 and EdDSA COSE
// algorithm families, a Device speaking CTAPHID framing over a pluggable
// IOHandler, and assertion issuance, accessors and WebAuthn-style
// verification. The transport side is deliberately tolerant: every
// length crossing the I/O boundary is bounds-checked so that a
// hostile canned byte stream can fail requests but never fault them.
package fido

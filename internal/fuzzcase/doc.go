// Package fuzzcase defines the corpus format for assertion fuzz cases.
//
// This includes the bounded value types, the tagged binary codec, the
// Record parameter set, and the canonical reference fixtures recorded
// against a real authenticator.
package fuzzcase

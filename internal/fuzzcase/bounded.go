package fuzzcase

import (
	"errors"
	"fmt"
)

// -------------------------------------------------------------------------
// Field Capacities
// -------------------------------------------------------------------------

// MaxStringLen is the capacity of a bounded string field. The stored
// length MUST be strictly less than this value, leaving room for the
// terminator the original fixed-size C arrays carried.
const MaxStringLen = 256

// MaxBlobLen is the capacity of a bounded blob field. No blob field is
// ever grown beyond this ceiling.
const MaxBlobLen = 3072

// Sentinel errors for capacity violations.
var (
	// ErrStringTooLong indicates a bounded string write of MaxStringLen
	// bytes or more.
	ErrStringTooLong = errors.New("bounded string exceeds capacity")

	// ErrBlobTooLong indicates a bounded blob write past the field ceiling.
	ErrBlobTooLong = errors.New("bounded blob exceeds capacity")
)

// -------------------------------------------------------------------------
// BoundedString
// -------------------------------------------------------------------------

// BoundedString is a string field with a fixed MaxStringLen capacity.
// The zero value is the empty string. Writes past the capacity fail
// explicitly instead of truncating.
type BoundedString struct {
	val string
}

// Set replaces the string contents. It fails if len(b) >= MaxStringLen,
// so that the stored length always leaves room for a terminator.
func (s *BoundedString) Set(b []byte) error {
	if len(b) >= MaxStringLen {
		return fmt.Errorf("string length %d, capacity %d: %w",
			len(b), MaxStringLen, ErrStringTooLong)
	}
	s.val = string(b)
	return nil
}

// String returns the stored value.
func (s BoundedString) String() string { return s.val }

// Len returns the stored length in bytes.
func (s BoundedString) Len() int { return len(s.val) }

// -------------------------------------------------------------------------
// Blob
// -------------------------------------------------------------------------

// Blob is a byte-sequence field with an explicit length and a fixed
// MaxBlobLen capacity. The zero value is the empty blob. Writes past
// the capacity fail explicitly instead of truncating.
type Blob struct {
	body []byte
}

// Set replaces the blob contents with a copy of b. It fails if
// len(b) > MaxBlobLen.
func (v *Blob) Set(b []byte) error {
	if len(b) > MaxBlobLen {
		return fmt.Errorf("blob length %d, capacity %d: %w",
			len(b), MaxBlobLen, ErrBlobTooLong)
	}
	v.body = append(v.body[:0], b...)
	return nil
}

// Bytes returns the stored bytes. The returned slice aliases the blob's
// internal storage; callers that outlive the record must copy.
func (v Blob) Bytes() []byte { return v.body }

// Len returns the stored length in bytes.
func (v Blob) Len() int { return len(v.body) }

package fuzzcase_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
)

func TestBoundedStringSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "empty", input: nil},
		{name: "short", input: []byte("localhost")},
		{name: "max minus one", input: bytes.Repeat([]byte{'a'}, fuzzcase.MaxStringLen-1)},
		{
			name:    "exactly capacity leaves no terminator room",
			input:   bytes.Repeat([]byte{'a'}, fuzzcase.MaxStringLen),
			wantErr: fuzzcase.ErrStringTooLong,
		},
		{
			name:    "over capacity",
			input:   bytes.Repeat([]byte{'a'}, fuzzcase.MaxStringLen*2),
			wantErr: fuzzcase.ErrStringTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var s fuzzcase.BoundedString
			err := s.Set(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Set() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				// Failed writes must not modify the value.
				if s.Len() != 0 {
					t.Errorf("Len() = %d after failed Set, want 0", s.Len())
				}
				return
			}
			if s.String() != string(tt.input) {
				t.Errorf("String() = %q, want %q", s.String(), tt.input)
			}
		})
	}
}

func TestBlobSet(t *testing.T) {
	t.Parallel()

	var b fuzzcase.Blob

	if err := b.Set(bytes.Repeat([]byte{0x42}, fuzzcase.MaxBlobLen)); err != nil {
		t.Fatalf("Set(capacity) error = %v", err)
	}
	if b.Len() != fuzzcase.MaxBlobLen {
		t.Errorf("Len() = %d, want %d", b.Len(), fuzzcase.MaxBlobLen)
	}

	err := b.Set(bytes.Repeat([]byte{0x42}, fuzzcase.MaxBlobLen+1))
	if !errors.Is(err, fuzzcase.ErrBlobTooLong) {
		t.Fatalf("Set(capacity+1) error = %v, want %v", err, fuzzcase.ErrBlobTooLong)
	}

	// Overwriting with a shorter value shrinks the stored length.
	if err := b.Set([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := b.Bytes(); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("Bytes() = %v, want [1 2 3]", got)
	}
}

func TestReferenceRecordWellFormed(t *testing.T) {
	t.Parallel()

	rec := fuzzcase.Reference()

	if rec.Type != 1 {
		t.Errorf("Type = %d, want 1 (RS256 family)", rec.Type)
	}
	if rec.Ext&fuzzcase.ExtHMACSecret == 0 {
		t.Error("Ext hmac-secret bit not set")
	}
	if rec.RPID.String() != "localhost" {
		t.Errorf("RPID = %q, want %q", rec.RPID.String(), "localhost")
	}
	if rec.CDH.Len() != 32 {
		t.Errorf("CDH length = %d, want 32", rec.CDH.Len())
	}
	if rec.ES256.Len() != 64 {
		t.Errorf("ES256 length = %d, want 64", rec.ES256.Len())
	}
	if rec.RS256.Len() != 259 {
		t.Errorf("RS256 length = %d, want 259", rec.RS256.Len())
	}
	if rec.EdDSA.Len() != 32 {
		t.Errorf("EdDSA length = %d, want 32", rec.EdDSA.Len())
	}
	if !bytes.Equal(rec.WireData.Bytes(), fuzzcase.WireTraceFIDO()) {
		t.Error("WireData does not match the reference CTAP2 trace")
	}

	if size := fuzzcase.EncodedSize(rec); size > fuzzcase.MaxEncodedSize {
		t.Errorf("EncodedSize() = %d exceeds MaxEncodedSize %d", size, fuzzcase.MaxEncodedSize)
	}
}

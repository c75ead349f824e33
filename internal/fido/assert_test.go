package fido_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/dantte-lp/fidofuzz/internal/fido"
)

// signedAssertion builds a one-statement assertion whose authenticator
// data is well-formed and whose signature is honestly produced over
// authData || clientDataHash with a fresh ed25519 key.
func signedAssertion(t *testing.T, rpID string, flags byte) (*fido.Assertion, *fido.EdDSAPublicKey) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	pk, err := fido.NewEdDSAFromBytes(pub)
	if err != nil {
		t.Fatalf("NewEdDSAFromBytes: %v", err)
	}

	cdh := make([]byte, 32)
	for i := range cdh {
		cdh[i] = byte(i)
	}

	rpHash := sha256.Sum256([]byte(rpID))
	authData := make([]byte, 0, 37)
	authData = append(authData, rpHash[:]...)
	authData = append(authData, flags)
	authData = append(authData, 0, 0, 0, 1)

	assert := fido.NewAssertion()
	assert.SetClientDataHash(cdh)
	assert.SetRP(rpID)
	if err := assert.SetCount(1); err != nil {
		t.Fatalf("SetCount: %v", err)
	}
	if err := assert.SetAuthData(0, authData); err != nil {
		t.Fatalf("SetAuthData: %v", err)
	}

	payload := append(append([]byte(nil), authData...), cdh...)
	if err := assert.SetSig(0, ed25519.Sign(priv, payload)); err != nil {
		t.Fatalf("SetSig: %v", err)
	}

	return assert, pk
}

func TestVerifyAcceptsHonestStatement(t *testing.T) {
	t.Parallel()

	assert, pk := signedAssertion(t, "example.com", 0x05)
	assert.SetUP(true)
	assert.SetUV(true)

	if err := assert.Verify(0, fido.AlgEdDSA, pk); err != nil {
		t.Fatalf("Verify = %v, want nil", err)
	}
}

func TestVerifyRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(t *testing.T, a *fido.Assertion)
		idx     int
		alg     fido.Algorithm
		wantErr error
	}{
		{
			name:    "index past count",
			idx:     1,
			alg:     fido.AlgEdDSA,
			wantErr: fido.ErrInvalidArgument,
		},
		{
			name:    "negative index",
			idx:     -1,
			alg:     fido.AlgEdDSA,
			wantErr: fido.ErrInvalidArgument,
		},
		{
			name:    "algorithm mismatch",
			idx:     0,
			alg:     fido.AlgES256,
			wantErr: fido.ErrInvalidArgument,
		},
		{
			name: "short authenticator data",
			mutate: func(t *testing.T, a *fido.Assertion) {
				t.Helper()
				if err := a.SetAuthData(0, make([]byte, 36)); err != nil {
					t.Fatalf("SetAuthData: %v", err)
				}
			},
			idx:     0,
			alg:     fido.AlgEdDSA,
			wantErr: fido.ErrAuthDataFormat,
		},
		{
			name: "relying party mismatch",
			mutate: func(t *testing.T, a *fido.Assertion) {
				t.Helper()
				a.SetRP("evil.example")
			},
			idx:     0,
			alg:     fido.AlgEdDSA,
			wantErr: fido.ErrAuthDataFormat,
		},
		{
			name: "user presence unmet",
			mutate: func(t *testing.T, a *fido.Assertion) {
				t.Helper()
				a.SetUP(true) // statement flags carry only UV
			},
			idx:     0,
			alg:     fido.AlgEdDSA,
			wantErr: fido.ErrFlagsUnmet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert, pk := signedAssertion(t, "example.com", 0x04)
			if tt.mutate != nil {
				tt.mutate(t, assert)
			}

			err := assert.Verify(tt.idx, tt.alg, pk)
			if err == nil {
				t.Fatal("Verify returned nil, want error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyRejectsForgedSignature(t *testing.T) {
	t.Parallel()

	assert, _ := signedAssertion(t, "example.com", 0x04)

	// A different key must not verify the statement.
	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}
	other, err := fido.NewEdDSAFromBytes(otherPub)
	if err != nil {
		t.Fatalf("NewEdDSAFromBytes: %v", err)
	}

	if err := assert.Verify(0, fido.AlgEdDSA, other); err == nil {
		t.Fatal("Verify accepted a signature from a different key")
	}
}

// TestAccessorsOutOfRange reads one index past the statement count and
// at negative indices. Every accessor must come back with its zero
// value instead of faulting.
func TestAccessorsOutOfRange(t *testing.T) {
	t.Parallel()

	assert, _ := signedAssertion(t, "example.com", 0x04)
	count := assert.Count()

	for _, i := range []int{-1, count, count + 1} {
		if got := assert.AuthData(i); got != nil {
			t.Errorf("AuthData(%d) = %v, want nil", i, got)
		}
		if got := assert.Sig(i); got != nil {
			t.Errorf("Sig(%d) = %v, want nil", i, got)
		}
		if got := assert.ID(i); got != nil {
			t.Errorf("ID(%d) = %v, want nil", i, got)
		}
		if got := assert.UserID(i); got != nil {
			t.Errorf("UserID(%d) = %v, want nil", i, got)
		}
		if got := assert.UserName(i); got != "" {
			t.Errorf("UserName(%d) = %q, want empty", i, got)
		}
		if got := assert.UserDisplayName(i); got != "" {
			t.Errorf("UserDisplayName(%d) = %q, want empty", i, got)
		}
		if got := assert.UserIcon(i); got != "" {
			t.Errorf("UserIcon(%d) = %q, want empty", i, got)
		}
		if got := assert.HMACSecret(i); got != nil {
			t.Errorf("HMACSecret(%d) = %v, want nil", i, got)
		}
		if got := assert.Flags(i); got != 0 {
			t.Errorf("Flags(%d) = 0x%02x, want 0", i, got)
		}
	}
}

func TestSetCountBounds(t *testing.T) {
	t.Parallel()

	assert := fido.NewAssertion()

	if err := assert.SetCount(-1); err == nil {
		t.Error("SetCount(-1) succeeded")
	}
	if err := assert.SetCount(4); err != nil {
		t.Fatalf("SetCount(4) = %v", err)
	}
	if got := assert.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}

	if err := assert.SetAuthData(4, make([]byte, 37)); err == nil {
		t.Error("SetAuthData past count succeeded")
	}
	if err := assert.SetSig(4, []byte{1}); err == nil {
		t.Error("SetSig past count succeeded")
	}
}

package fido_test

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/dantte-lp/fidofuzz/internal/fido"
)

// es256KeyBytes serializes an ECDSA P-256 public key as X||Y with each
// coordinate left-padded to 32 bytes.
func es256KeyBytes(t *testing.T, pub *ecdsa.PublicKey) []byte {
	t.Helper()

	buf := make([]byte, 64)
	pub.X.FillBytes(buf[:32])
	pub.Y.FillBytes(buf[32:])
	return buf
}

func TestES256KeyLifecycle(t *testing.T) {
	t.Parallel()

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate ecdsa key: %v", err)
	}

	pk, err := fido.NewES256FromBytes(es256KeyBytes(t, &priv.PublicKey))
	if err != nil {
		t.Fatalf("NewES256FromBytes: %v", err)
	}
	if pk.Algorithm() != fido.AlgES256 {
		t.Errorf("Algorithm() = %v, want %v", pk.Algorithm(), fido.AlgES256)
	}

	ecPub, err := pk.ToECDSA()
	if err != nil {
		t.Fatalf("ToECDSA: %v", err)
	}
	if !ecPub.Equal(&priv.PublicKey) {
		t.Error("ToECDSA does not reproduce the source key")
	}

	message := []byte("authenticator data || client data hash")
	digest := sha256.Sum256(message)
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := pk.Verify(message, sig); err != nil {
		t.Errorf("Verify(valid signature) = %v", err)
	}
	if err := pk.Verify([]byte("different message"), sig); err == nil {
		t.Error("Verify accepted a signature over a different message")
	}
	if err := pk.Verify(message, []byte{0x30, 0x00}); err == nil {
		t.Error("Verify accepted a malformed DER signature")
	}
}

func TestES256RejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	if _, err := fido.NewES256FromBytes(make([]byte, 63)); !errors.Is(err, fido.ErrKeyLength) {
		t.Errorf("63-byte key: error = %v, want ErrKeyLength", err)
	}
	if _, err := fido.NewES256FromBytes(make([]byte, 65)); !errors.Is(err, fido.ErrKeyLength) {
		t.Errorf("65-byte key: error = %v, want ErrKeyLength", err)
	}

	// All-zero coordinates are not a point on P-256.
	pk, err := fido.NewES256FromBytes(make([]byte, 64))
	if err == nil {
		if _, err := pk.ToECDSA(); err == nil {
			t.Error("off-curve key converted without error")
		}
	}
}

func TestRS256KeyLifecycle(t *testing.T) {
	t.Parallel()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	pk, err := fido.NewRS256FromRSA(&priv.PublicKey)
	if err != nil {
		t.Fatalf("NewRS256FromRSA: %v", err)
	}
	if pk.Algorithm() != fido.AlgRS256 {
		t.Errorf("Algorithm() = %v, want %v", pk.Algorithm(), fido.AlgRS256)
	}

	rsaPub, err := pk.ToRSA()
	if err != nil {
		t.Fatalf("ToRSA: %v", err)
	}
	if !rsaPub.Equal(&priv.PublicKey) {
		t.Error("ToRSA does not reproduce the source key")
	}

	message := []byte("authenticator data || client data hash")
	digest := sha256.Sum256(message)
	sig, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if err := pk.Verify(message, sig); err != nil {
		t.Errorf("Verify(valid signature) = %v", err)
	}
	if err := pk.Verify([]byte("different message"), sig); err == nil {
		t.Error("Verify accepted a signature over a different message")
	}
}

func TestRS256RejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	if _, err := fido.NewRS256FromBytes(make([]byte, 100)); !errors.Is(err, fido.ErrKeyLength) {
		t.Errorf("100-byte key: error = %v, want ErrKeyLength", err)
	}

	// A zero modulus must not convert into a usable RSA key.
	pk, err := fido.NewRS256FromBytes(make([]byte, 259))
	if err == nil {
		if _, err := pk.ToRSA(); err == nil {
			t.Error("degenerate modulus converted without error")
		}
	}
}

func TestEdDSAKeyLifecycle(t *testing.T) {
	t.Parallel()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate ed25519 key: %v", err)
	}

	pk, err := fido.NewEdDSAFromBytes(pub)
	if err != nil {
		t.Fatalf("NewEdDSAFromBytes: %v", err)
	}
	if pk.Algorithm() != fido.AlgEdDSA {
		t.Errorf("Algorithm() = %v, want %v", pk.Algorithm(), fido.AlgEdDSA)
	}

	roundTrip, err := fido.NewEdDSAFromEd25519(pk.ToEd25519())
	if err != nil {
		t.Fatalf("NewEdDSAFromEd25519: %v", err)
	}
	if !pk.ToEd25519().Equal(roundTrip.ToEd25519()) {
		t.Error("ed25519 round trip does not reproduce the key")
	}

	// EdDSA signs the raw message, no prehash.
	message := []byte("authenticator data || client data hash")
	sig := ed25519.Sign(priv, message)

	if err := pk.Verify(message, sig); err != nil {
		t.Errorf("Verify(valid signature) = %v", err)
	}
	if err := pk.Verify([]byte("different message"), sig); err == nil {
		t.Error("Verify accepted a signature over a different message")
	}
}

func TestEdDSARejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	if _, err := fido.NewEdDSAFromBytes(make([]byte, 31)); !errors.Is(err, fido.ErrKeyLength) {
		t.Errorf("31-byte key: error = %v, want ErrKeyLength", err)
	}
	if _, err := fido.NewEdDSAFromBytes(make([]byte, 33)); !errors.Is(err, fido.ErrKeyLength) {
		t.Errorf("33-byte key: error = %v, want ErrKeyLength", err)
	}
}

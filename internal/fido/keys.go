package fido

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// -------------------------------------------------------------------------
// COSE Algorithm Identifiers — RFC 8152 Section 8
// -------------------------------------------------------------------------

// Algorithm is a COSE algorithm identifier (RFC 8152 Section 8).
type Algorithm int

const (
	// AlgES256 is ECDSA over P-256 with SHA-256 (RFC 8152: value -7).
	AlgES256 Algorithm = -7

	// AlgEdDSA is Ed25519 (RFC 8152: value -8).
	AlgEdDSA Algorithm = -8

	// AlgRS256 is RSASSA-PKCS1-v1_5 with SHA-256 (RFC 8812: value -257).
	AlgRS256 Algorithm = -257
)

// String returns the COSE algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgES256:
		return "ES256"
	case AlgEdDSA:
		return "EdDSA"
	case AlgRS256:
		return "RS256"
	}
	return fmt.Sprintf("Unknown(%d)", int(a))
}

// Key material sizes. Constructors reject any other length.
const (
	// es256KeyLen is an uncompressed P-256 point without the 0x04
	// prefix: 32-byte X followed by 32-byte Y.
	es256KeyLen = 64

	// rs256KeyLen is a 2048-bit RSA modulus followed by a 3-byte
	// big-endian public exponent.
	rs256KeyLen = 259
	rs256ModLen = 256

	// eddsaKeyLen is a raw Ed25519 public key point.
	eddsaKeyLen = ed25519.PublicKeySize
)

// Sentinel errors for key construction and verification.
var (
	// ErrKeyLength indicates key material of the wrong size for the
	// algorithm family.
	ErrKeyLength = errors.New("bad key material length")

	// ErrInvalidKey indicates key material that does not describe a
	// usable public key (off-curve point, degenerate RSA exponent).
	ErrInvalidKey = errors.New("invalid public key")

	// ErrSignature indicates signature verification failure.
	ErrSignature = errors.New("signature verification failed")
)

// PublicKey is the verification capability shared by the three key
// families. Verify checks sig over the raw signed message; hashing is
// algorithm-specific and happens inside.
type PublicKey interface {
	Algorithm() Algorithm
	Verify(message, sig []byte) error
}

// -------------------------------------------------------------------------
// ES256 — ECDSA P-256 / SHA-256
// -------------------------------------------------------------------------

// ES256PublicKey is a COSE ES256 public key.
type ES256PublicKey struct {
	x, y *big.Int
}

// NewES256FromBytes constructs an ES256 key from raw X||Y coordinates.
func NewES256FromBytes(b []byte) (*ES256PublicKey, error) {
	if len(b) != es256KeyLen {
		return nil, fmt.Errorf("es256: got %d bytes, want %d: %w",
			len(b), es256KeyLen, ErrKeyLength)
	}
	return &ES256PublicKey{
		x: new(big.Int).SetBytes(b[:32]),
		y: new(big.Int).SetBytes(b[32:]),
	}, nil
}

// Algorithm implements PublicKey.
func (k *ES256PublicKey) Algorithm() Algorithm { return AlgES256 }

// ToECDSA converts the key to the stdlib representation, validating
// that the coordinates describe a point on P-256.
func (k *ES256PublicKey) ToECDSA() (*ecdsa.PublicKey, error) {
	curve := elliptic.P256()
	if !curve.IsOnCurve(k.x, k.y) {
		return nil, fmt.Errorf("es256: point not on P-256: %w", ErrInvalidKey)
	}
	return &ecdsa.PublicKey{Curve: curve, X: k.x, Y: k.y}, nil
}

// Verify checks an ASN.1 DER ECDSA signature over SHA-256(message).
func (k *ES256PublicKey) Verify(message, sig []byte) error {
	pk, err := k.ToECDSA()
	if err != nil {
		return err
	}

	var r, s big.Int
	input := cryptobyte.String(sig)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return fmt.Errorf("es256: malformed DER signature: %w", ErrSignature)
	}

	digest := sha256.Sum256(message)
	if !ecdsa.Verify(pk, digest[:], &r, &s) {
		return ErrSignature
	}
	return nil
}

// -------------------------------------------------------------------------
// RS256 — RSASSA-PKCS1-v1_5 / SHA-256
// -------------------------------------------------------------------------

// RS256PublicKey is a COSE RS256 public key.
type RS256PublicKey struct {
	n [rs256ModLen]byte
	e [3]byte
}

// NewRS256FromBytes constructs an RS256 key from a 256-byte modulus
// followed by a 3-byte big-endian exponent.
func NewRS256FromBytes(b []byte) (*RS256PublicKey, error) {
	if len(b) != rs256KeyLen {
		return nil, fmt.Errorf("rs256: got %d bytes, want %d: %w",
			len(b), rs256KeyLen, ErrKeyLength)
	}
	k := &RS256PublicKey{}
	copy(k.n[:], b[:rs256ModLen])
	copy(k.e[:], b[rs256ModLen:])
	return k, nil
}

// NewRS256FromRSA converts a stdlib RSA public key back to the COSE
// representation. The modulus must fit 2048 bits and the exponent
// 3 bytes.
func NewRS256FromRSA(pk *rsa.PublicKey) (*RS256PublicKey, error) {
	if pk.N.BitLen() > rs256ModLen*8 {
		return nil, fmt.Errorf("rs256: modulus is %d bits, max %d: %w",
			pk.N.BitLen(), rs256ModLen*8, ErrInvalidKey)
	}
	if pk.E <= 1 || pk.E > 0xffffff {
		return nil, fmt.Errorf("rs256: exponent %d out of range: %w", pk.E, ErrInvalidKey)
	}
	k := &RS256PublicKey{}
	pk.N.FillBytes(k.n[:])
	k.e[0] = byte(pk.E >> 16)
	k.e[1] = byte(pk.E >> 8)
	k.e[2] = byte(pk.E)
	return k, nil
}

// Algorithm implements PublicKey.
func (k *RS256PublicKey) Algorithm() Algorithm { return AlgRS256 }

// ToRSA converts the key to the stdlib representation.
func (k *RS256PublicKey) ToRSA() (*rsa.PublicKey, error) {
	e := int(k.e[0])<<16 | int(k.e[1])<<8 | int(k.e[2])
	if e <= 1 {
		return nil, fmt.Errorf("rs256: degenerate exponent %d: %w", e, ErrInvalidKey)
	}
	n := new(big.Int).SetBytes(k.n[:])
	if n.Sign() == 0 {
		return nil, fmt.Errorf("rs256: zero modulus: %w", ErrInvalidKey)
	}
	return &rsa.PublicKey{N: n, E: e}, nil
}

// Verify checks a PKCS#1 v1.5 signature over SHA-256(message).
func (k *RS256PublicKey) Verify(message, sig []byte) error {
	pk, err := k.ToRSA()
	if err != nil {
		return err
	}
	digest := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(pk, crypto.SHA256, digest[:], sig); err != nil {
		return fmt.Errorf("rs256: %w", ErrSignature)
	}
	return nil
}

// -------------------------------------------------------------------------
// EdDSA — Ed25519
// -------------------------------------------------------------------------

// EdDSAPublicKey is a COSE EdDSA public key.
type EdDSAPublicKey struct {
	raw [eddsaKeyLen]byte
}

// NewEdDSAFromBytes constructs an EdDSA key from a raw 32-byte point.
func NewEdDSAFromBytes(b []byte) (*EdDSAPublicKey, error) {
	if len(b) != eddsaKeyLen {
		return nil, fmt.Errorf("eddsa: got %d bytes, want %d: %w",
			len(b), eddsaKeyLen, ErrKeyLength)
	}
	k := &EdDSAPublicKey{}
	copy(k.raw[:], b)
	return k, nil
}

// NewEdDSAFromEd25519 converts a stdlib Ed25519 public key back to the
// COSE representation.
func NewEdDSAFromEd25519(pk ed25519.PublicKey) (*EdDSAPublicKey, error) {
	if len(pk) != eddsaKeyLen {
		return nil, fmt.Errorf("eddsa: got %d bytes, want %d: %w",
			len(pk), eddsaKeyLen, ErrKeyLength)
	}
	k := &EdDSAPublicKey{}
	copy(k.raw[:], pk)
	return k, nil
}

// Algorithm implements PublicKey.
func (k *EdDSAPublicKey) Algorithm() Algorithm { return AlgEdDSA }

// ToEd25519 converts the key to the stdlib representation.
func (k *EdDSAPublicKey) ToEd25519() ed25519.PublicKey {
	return ed25519.PublicKey(append([]byte(nil), k.raw[:]...))
}

// Verify checks a pure Ed25519 signature over the raw message.
func (k *EdDSAPublicKey) Verify(message, sig []byte) error {
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("eddsa: signature is %d bytes, want %d: %w",
			len(sig), ed25519.SignatureSize, ErrSignature)
	}
	if !ed25519.Verify(k.ToEd25519(), message, sig) {
		return ErrSignature
	}
	return nil
}

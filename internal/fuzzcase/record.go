package fuzzcase

// -------------------------------------------------------------------------
// Field Tags — corpus wire format
// -------------------------------------------------------------------------

// Tag identifies one field of an encoded Record. Tag values are part of
// the corpus format and MUST NOT be renumbered: existing corpora encode
// them.
type Tag uint8

const (
	// TagU2F is the "force legacy transport" flag (1-byte payload).
	TagU2F Tag = 0x01

	// TagType is the key-algorithm selector (1-byte payload). The driver
	// reduces it modulo the number of supported algorithms.
	TagType Tag = 0x02

	// TagCDH is the client-data hash (blob payload).
	TagCDH Tag = 0x03

	// TagRPID is the relying-party identifier (string payload).
	TagRPID Tag = 0x04

	// TagExt is the extension-flags field (4-byte payload). Only the low
	// bit is meaningful; the rest is attacker-controlled noise.
	TagExt Tag = 0x05

	// TagSeed is the PRNG seed (4-byte payload).
	TagSeed Tag = 0x06

	// TagUP is the user-presence flag (1-byte payload).
	TagUP Tag = 0x07

	// TagUV is the user-verification flag (1-byte payload).
	TagUV Tag = 0x08

	// TagWireData is the canned transport trace (blob payload).
	TagWireData Tag = 0x09

	// TagCredCount is the credential repeat count (1-byte payload).
	TagCredCount Tag = 0x0a

	// TagCred is the credential id, reused as hmac-secret salt
	// (blob payload).
	TagCred Tag = 0x0b

	// TagES256 is the ES256 key material (blob payload).
	TagES256 Tag = 0x0c

	// TagRS256 is the RS256 key material (blob payload).
	TagRS256 Tag = 0x0d

	// TagPIN is the device PIN (string payload).
	TagPIN Tag = 0x0e

	// TagEdDSA is the EdDSA key material (blob payload).
	TagEdDSA Tag = 0x0f
)

// ExtHMACSecret is the extension-flags bit requesting the hmac-secret
// extension. Matches the exercised library's extension mask.
const ExtHMACSecret = 0x01

// -------------------------------------------------------------------------
// Record
// -------------------------------------------------------------------------

// Record is the decoded in-memory representation of one fuzz case: the
// full parameter set for a single get-assertion/verify cycle. A Record
// lives for one harness invocation or one mutation call and is never
// shared across cases.
//
// The zero value is well-formed: every field is at its default and
// within capacity.
type Record struct {
	// PIN is the device PIN, omitted when U2F forces legacy transport.
	PIN BoundedString

	// RPID is the relying-party identifier the credential is scoped to.
	RPID BoundedString

	// Ext carries the extension flags. Low bit: hmac-secret.
	Ext int32

	// Seed reseeds the process-wide PRNG at the start of the case,
	// making the case's randomized sub-decisions reproducible.
	Seed int32

	// CDH is the client-data hash attached to the assertion request.
	CDH Blob

	// Cred is the credential id, repeated CredCount times in the allow
	// list and reused as the hmac-secret salt.
	Cred Blob

	// ES256, RS256 and EdDSA hold the key material for each supported
	// algorithm family. Only the family selected by Type is used.
	ES256 Blob
	RS256 Blob
	EdDSA Blob

	// WireData is the canned transport trace replayed by the mock
	// transport in place of device I/O.
	WireData Blob

	// CredCount is the number of times Cred is repeated in the allow list.
	CredCount uint8

	// Type selects the key-algorithm family (reduced modulo 3).
	Type uint8

	// U2F forces legacy (U2F) transport when its low bit is set.
	U2F uint8

	// UP requests user presence when its low bit is set.
	UP uint8

	// UV requests user verification when its low bit is set.
	UV uint8
}

// -------------------------------------------------------------------------
// Canonical Reference Record
// -------------------------------------------------------------------------

// Reference values for the canonical known-good case. The wire traces in
// fixtures.go were recorded against these parameters.
const (
	refRPID = "localhost"
	refPIN  = "9}4gT:8d=A37Dh}U"
)

// Reference returns the canonical reference Record: a fixed, known-good
// parameter set describing a CTAP2 get assertion with an RS256 credential
// and the hmac-secret extension. The mutator substitutes it whenever a
// corpus input fails to decode, healing the corpus back toward
// structurally valid cases.
func Reference() *Record {
	r := &Record{
		Type: 1,
		Ext:  ExtHMACSecret,
	}

	// Reference field values are static and within capacity; the Set
	// calls cannot fail.
	mustSetString(&r.PIN, []byte(refPIN))
	mustSetString(&r.RPID, []byte(refRPID))
	mustSetBlob(&r.CDH, refClientDataHash)
	mustSetBlob(&r.ES256, refES256Key)
	mustSetBlob(&r.RS256, refRS256Key)
	mustSetBlob(&r.EdDSA, refEdDSAKey)
	mustSetBlob(&r.WireData, refWireDataFIDO)

	return r
}

// WireTraceFIDO returns a copy of the reference CTAP2 transport trace.
func WireTraceFIDO() []byte {
	return append([]byte(nil), refWireDataFIDO...)
}

// WireTraceU2F returns a copy of the reference U2F transport trace.
func WireTraceU2F() []byte {
	return append([]byte(nil), refWireDataU2F...)
}

func mustSetString(s *BoundedString, b []byte) {
	if err := s.Set(b); err != nil {
		panic(err)
	}
}

func mustSetBlob(v *Blob, b []byte) {
	if err := v.Set(b); err != nil {
		panic(err)
	}
}

package fido

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// -------------------------------------------------------------------------
// CTAPHID Framing — CTAP 2.1 Section 11.2
// -------------------------------------------------------------------------

const (
	// reportLen is the fixed HID report size (CTAP 2.1 Section 11.2.4).
	reportLen = 64

	// initHeaderLen is the initialization packet header: CID(4) +
	// CMD(1) + BCNTH(1) + BCNTL(1).
	initHeaderLen = 7

	// contHeaderLen is the continuation packet header: CID(4) + SEQ(1).
	contHeaderLen = 5

	// maxMsgLen is the maximum reassembled message length
	// (CTAP 2.1 Section 11.2.4: 7609 bytes).
	maxMsgLen = 7609

	// frameInitBit marks an initialization packet's CMD byte.
	frameInitBit = 0x80

	// broadcastCID is the channel used before CTAPHID_INIT completes.
	broadcastCID = 0xffffffff
)

// CTAPHID commands (CTAP 2.1 Section 11.2.9).
const (
	cmdMsg  = 0x03 // U2F/APDU transport
	cmdInit = 0x06
	cmdCBOR = 0x10
)

// CTAP2 authenticator commands (CTAP 2.1 Section 6).
const (
	ctapGetAssertion     = 0x02
	ctapClientPin        = 0x06
	ctapGetNextAssertion = 0x08
)

// clientPin subcommands (CTAP 2.1 Section 6.5.4).
const (
	pinSubGetKeyAgreement = 0x02
	pinSubGetPinToken     = 0x05
)

// initNonceLen is the CTAPHID_INIT nonce size (CTAP 2.1 Section 11.2.9.1.3).
const initNonceLen = 8

// Sentinel transport errors.
var (
	// ErrTransport indicates a framing-level failure on the HID stream.
	ErrTransport = errors.New("transport failure")

	// ErrTxTooLong indicates an outbound message above maxMsgLen.
	ErrTxTooLong = errors.New("message exceeds CTAPHID maximum")
)

// ctapError is a CTAP2 status byte returned by the authenticator.
// Any nonzero status is an authenticator-reported failure, part of the
// behavior under test rather than a transport fault.
type ctapError uint8

func (e ctapError) Error() string {
	return fmt.Sprintf("CTAP error 0x%02x", uint8(e))
}

// -------------------------------------------------------------------------
// Message Types — CTAP 2.1 Section 6.2
// -------------------------------------------------------------------------

// credentialDescriptor is a PublicKeyCredentialDescriptor
// (WebAuthn Section 5.8.3), encoded as a CBOR map with string keys.
type credentialDescriptor struct {
	Type string `cbor:"type"`
	ID   []byte `cbor:"id"`
}

// userEntity is a PublicKeyCredentialUserEntity (WebAuthn Section 5.4.3).
type userEntity struct {
	ID          []byte `cbor:"id,omitempty"`
	Icon        string `cbor:"icon,omitempty"`
	Name        string `cbor:"name,omitempty"`
	DisplayName string `cbor:"displayName,omitempty"`
}

// getAssertionRequest is the authenticatorGetAssertion parameter map
// (CTAP 2.1 Section 6.2.1).
type getAssertionRequest struct {
	RPID           string                 `cbor:"1,keyasint"`
	ClientDataHash []byte                 `cbor:"2,keyasint"`
	AllowList      []credentialDescriptor `cbor:"3,keyasint,omitempty"`
	Extensions     map[string][]byte      `cbor:"4,keyasint,omitempty"`
	Options        map[string]bool        `cbor:"5,keyasint,omitempty"`
	PinUVAuthParam []byte                 `cbor:"6,keyasint,omitempty"`
	PinUVAuthProto uint64                 `cbor:"7,keyasint,omitempty"`
}

// getAssertionResponse is the authenticatorGetAssertion response map
// (CTAP 2.1 Section 6.2.3).
type getAssertionResponse struct {
	Credential          *credentialDescriptor `cbor:"1,keyasint,omitempty"`
	AuthData            []byte                `cbor:"2,keyasint"`
	Signature           []byte                `cbor:"3,keyasint"`
	User                *userEntity           `cbor:"4,keyasint,omitempty"`
	NumberOfCredentials uint64                `cbor:"5,keyasint,omitempty"`
}

// clientPinRequest is the authenticatorClientPIN parameter map
// (CTAP 2.1 Section 6.5.1). Only the fields the assertion PIN flow
// touches are modeled.
type clientPinRequest struct {
	Protocol     uint64          `cbor:"1,keyasint"`
	Subcommand   uint64          `cbor:"2,keyasint"`
	KeyAgreement cbor.RawMessage `cbor:"3,keyasint,omitempty"`
	PinHashEnc   []byte          `cbor:"6,keyasint,omitempty"`
}

// clientPinResponse is the authenticatorClientPIN response map
// (CTAP 2.1 Section 6.5.2).
type clientPinResponse struct {
	KeyAgreement   cbor.RawMessage `cbor:"1,keyasint,omitempty"`
	PinUVAuthToken []byte          `cbor:"2,keyasint,omitempty"`
}

// decMode is the CBOR decoder used for authenticator responses. The
// canned stream is attacker-controlled, so decoding limits are kept at
// the library defaults (fxamacker/cbor enforces depth and size caps).
var decMode, _ = cbor.DecOptions{
	DupMapKey: cbor.DupMapKeyEnforcedAPF,
}.DecMode()

// encMode is the CBOR encoder for authenticator requests, using the
// CTAP2 canonical encoding form (CTAP 2.1 Section 6).
var encMode, _ = cbor.CTAP2EncOptions().EncMode()

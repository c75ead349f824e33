package fido

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
)

// -------------------------------------------------------------------------
// Extensions and Options
// -------------------------------------------------------------------------

// Extension is a bitmask of assertion extensions.
type Extension int

// ExtHMACSecret requests the hmac-secret extension (CTAP 2.1
// Section 12.5).
const ExtHMACSecret Extension = 0x01

// Authenticator data flag bits (WebAuthn Section 6.1).
const (
	flagUP = 0x01 // user present
	flagUV = 0x04 // user verified
	flagAT = 0x40 // attested credential data included
	flagED = 0x80 // extension data included
)

// authDataFixedLen is the fixed prefix of authenticator data:
// rpIdHash(32) + flags(1) + signCount(4) (WebAuthn Section 6.1).
const authDataFixedLen = 37

// maxStatements bounds SetCount. CTAP 2.1 responses report the
// credential count in a single byte.
const maxStatements = 256

// Sentinel assertion errors.
var (
	// ErrInvalidArgument indicates an out-of-range statement index or a
	// malformed setter argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthDataFormat indicates authenticator data too short or
	// inconsistent with the relying party.
	ErrAuthDataFormat = errors.New("malformed authenticator data")

	// ErrFlagsUnmet indicates a required UP/UV flag missing from the
	// authenticator data.
	ErrFlagsUnmet = errors.New("required flags not set in authenticator data")
)

// -------------------------------------------------------------------------
// Assertion
// -------------------------------------------------------------------------

// statement is one credential's assertion result.
type statement struct {
	authData        []byte
	sig             []byte
	id              []byte
	userID          []byte
	userName        string
	userDisplayName string
	userIcon        string
	hmacSecret      []byte
	flags           byte
}

// Assertion is a get-assertion request plus the statements the
// authenticator returned for it. An Assertion is exclusively owned by
// one case and never reused.
type Assertion struct {
	cdh       []byte
	rpID      string
	allowList [][]byte
	ext       Extension
	up        bool
	uv        bool
	hmacSalt  []byte
	stmts     []statement
}

// NewAssertion creates an empty assertion request.
func NewAssertion() *Assertion {
	return &Assertion{}
}

// SetClientDataHash attaches the client-data hash.
func (a *Assertion) SetClientDataHash(cdh []byte) {
	a.cdh = append([]byte(nil), cdh...)
}

// SetRP sets the relying-party identifier the request is scoped to.
func (a *Assertion) SetRP(rpID string) {
	a.rpID = rpID
}

// AllowCredential appends a credential id to the allow list. Duplicates
// are legal; the authenticator decides what to do with them.
func (a *Assertion) AllowCredential(id []byte) {
	a.allowList = append(a.allowList, append([]byte(nil), id...))
}

// SetExtensions replaces the requested extension mask.
func (a *Assertion) SetExtensions(ext Extension) {
	a.ext = ext
}

// SetUP requests a user-presence check.
func (a *Assertion) SetUP(up bool) { a.up = up }

// SetUV requests user verification.
func (a *Assertion) SetUV(uv bool) { a.uv = uv }

// SetHMACSalt sets the hmac-secret salt sent with the request.
func (a *Assertion) SetHMACSalt(salt []byte) {
	a.hmacSalt = append([]byte(nil), salt...)
}

// Count reports the number of assertion statements.
func (a *Assertion) Count() int { return len(a.stmts) }

// SetCount resizes the statement list, used when reconstructing an
// assertion for verification. Counts above the CTAP single-byte range
// are rejected.
func (a *Assertion) SetCount(n int) error {
	if n < 0 || n > maxStatements {
		return fmt.Errorf("set count %d: %w", n, ErrInvalidArgument)
	}
	a.stmts = make([]statement, n)
	return nil
}

// SetAuthData installs raw authenticator data at index i.
func (a *Assertion) SetAuthData(i int, authData []byte) error {
	if i < 0 || i >= len(a.stmts) {
		return fmt.Errorf("statement %d of %d: %w", i, len(a.stmts), ErrInvalidArgument)
	}
	a.stmts[i].authData = append([]byte(nil), authData...)
	if len(authData) > 32 {
		a.stmts[i].flags = authData[32]
	}
	return nil
}

// SetSig installs a signature at index i.
func (a *Assertion) SetSig(i int, sig []byte) error {
	if i < 0 || i >= len(a.stmts) {
		return fmt.Errorf("statement %d of %d: %w", i, len(a.stmts), ErrInvalidArgument)
	}
	a.stmts[i].sig = append([]byte(nil), sig...)
	return nil
}

// -------------------------------------------------------------------------
// Accessors
//
// Every accessor tolerates an out-of-range index and returns the zero
// value: reading past Count() must never fault.
// -------------------------------------------------------------------------

// ClientDataHash returns the request's client-data hash.
func (a *Assertion) ClientDataHash() []byte { return a.cdh }

// RPID returns the request's relying-party identifier.
func (a *Assertion) RPID() string { return a.rpID }

// AuthData returns statement i's raw authenticator data.
func (a *Assertion) AuthData(i int) []byte {
	if i < 0 || i >= len(a.stmts) {
		return nil
	}
	return a.stmts[i].authData
}

// Sig returns statement i's signature.
func (a *Assertion) Sig(i int) []byte {
	if i < 0 || i >= len(a.stmts) {
		return nil
	}
	return a.stmts[i].sig
}

// ID returns statement i's credential id.
func (a *Assertion) ID(i int) []byte {
	if i < 0 || i >= len(a.stmts) {
		return nil
	}
	return a.stmts[i].id
}

// UserID returns statement i's user handle.
func (a *Assertion) UserID(i int) []byte {
	if i < 0 || i >= len(a.stmts) {
		return nil
	}
	return a.stmts[i].userID
}

// UserName returns statement i's user name.
func (a *Assertion) UserName(i int) string {
	if i < 0 || i >= len(a.stmts) {
		return ""
	}
	return a.stmts[i].userName
}

// UserDisplayName returns statement i's user display name.
func (a *Assertion) UserDisplayName(i int) string {
	if i < 0 || i >= len(a.stmts) {
		return ""
	}
	return a.stmts[i].userDisplayName
}

// UserIcon returns statement i's user icon URL.
func (a *Assertion) UserIcon(i int) string {
	if i < 0 || i >= len(a.stmts) {
		return ""
	}
	return a.stmts[i].userIcon
}

// HMACSecret returns statement i's hmac-secret extension output.
func (a *Assertion) HMACSecret(i int) []byte {
	if i < 0 || i >= len(a.stmts) {
		return nil
	}
	return a.stmts[i].hmacSecret
}

// Flags returns statement i's authenticator-data flag byte.
func (a *Assertion) Flags(i int) byte {
	if i < 0 || i >= len(a.stmts) {
		return 0
	}
	return a.stmts[i].flags
}

// -------------------------------------------------------------------------
// Issuance
// -------------------------------------------------------------------------

// GetAssertion issues the assertion request against dev, populating the
// statement list from the authenticator's responses. In legacy (U2F)
// mode pin must be empty; CTAP2 requests carry it as PIN material.
func (d *Device) GetAssertion(a *Assertion, pin string) error {
	if !d.opened {
		return fmt.Errorf("get assertion: device not open: %w", ErrTransport)
	}
	if d.u2f {
		return d.u2fAuthenticate(a)
	}
	return d.ctapGetAssertion(a, pin)
}

// ctapGetAssertion performs authenticatorGetAssertion plus as many
// authenticatorGetNextAssertion calls as the first response promises
// (CTAP 2.1 Sections 6.2, 6.3).
func (d *Device) ctapGetAssertion(a *Assertion, pin string) error {
	req := getAssertionRequest{
		RPID:           a.rpID,
		ClientDataHash: a.cdh,
	}
	for _, id := range a.allowList {
		req.AllowList = append(req.AllowList, credentialDescriptor{
			Type: "public-key",
			ID:   id,
		})
	}
	if a.ext&ExtHMACSecret != 0 && a.hmacSalt != nil {
		req.Extensions = map[string][]byte{"hmac-secret": a.hmacSalt}
	}
	if a.up || a.uv {
		req.Options = map[string]bool{}
		if a.up {
			req.Options["up"] = true
		}
		if a.uv {
			req.Options["uv"] = true
		}
	}
	if pin != "" {
		param, err := d.pinUVAuthParam(pin, a.cdh)
		if err != nil {
			return fmt.Errorf("get assertion: %w", err)
		}
		req.PinUVAuthParam = param
		req.PinUVAuthProto = 1
	}

	resp, err := d.cbor(ctapGetAssertion, &req)
	if err != nil {
		return fmt.Errorf("get assertion: %w", err)
	}

	count, err := a.appendStatement(resp)
	if err != nil {
		return fmt.Errorf("get assertion: %w", err)
	}

	// Fetch the remaining credentials. A failure mid-sweep keeps the
	// statements collected so far.
	for i := uint64(1); i < count && i < maxStatements; i++ {
		resp, err := d.cbor(ctapGetNextAssertion, nil)
		if err != nil {
			return fmt.Errorf("get next assertion %d: %w", i, err)
		}
		if _, err := a.appendStatement(resp); err != nil {
			return fmt.Errorf("get next assertion %d: %w", i, err)
		}
	}

	return nil
}

// pinUVAuthParam runs the CTAP2 PIN token exchange: getKeyAgreement,
// then getPinToken, and derives the auth param as HMAC-SHA256 over the
// client-data hash keyed with the (still encrypted) token. The real PIN
// protocol would run ECDH and decrypt the token first; against a canned
// transport the exchange exists to traverse the same message sequence,
// not to produce a cryptographically honest parameter.
func (d *Device) pinUVAuthParam(pin string, cdh []byte) ([]byte, error) {
	ka, err := d.cbor(ctapClientPin, &clientPinRequest{
		Protocol:   1,
		Subcommand: pinSubGetKeyAgreement,
	})
	if err != nil {
		return nil, fmt.Errorf("pin key agreement: %w", err)
	}
	var kaResp clientPinResponse
	if err := decMode.Unmarshal(ka, &kaResp); err != nil {
		return nil, fmt.Errorf("pin key agreement: decode: %w", err)
	}

	pinHash := sha256.Sum256([]byte(pin))
	tok, err := d.cbor(ctapClientPin, &clientPinRequest{
		Protocol:     1,
		Subcommand:   pinSubGetPinToken,
		KeyAgreement: kaResp.KeyAgreement,
		PinHashEnc:   pinHash[:16],
	})
	if err != nil {
		return nil, fmt.Errorf("pin token: %w", err)
	}
	var tokResp clientPinResponse
	if err := decMode.Unmarshal(tok, &tokResp); err != nil {
		return nil, fmt.Errorf("pin token: decode: %w", err)
	}

	mac := hmac.New(sha256.New, tokResp.PinUVAuthToken)
	mac.Write(cdh)
	return mac.Sum(nil)[:16], nil
}

// appendStatement decodes one getAssertion response map and appends the
// statement. It returns the credential count the response declared.
func (a *Assertion) appendStatement(resp []byte) (uint64, error) {
	var ga getAssertionResponse
	if err := decMode.Unmarshal(resp, &ga); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	st := statement{
		authData: ga.AuthData,
		sig:      ga.Signature,
	}
	if ga.Credential != nil {
		st.id = ga.Credential.ID
	}
	if ga.User != nil {
		st.userID = ga.User.ID
		st.userName = ga.User.Name
		st.userDisplayName = ga.User.DisplayName
		st.userIcon = ga.User.Icon
	}
	if len(ga.AuthData) >= authDataFixedLen {
		st.flags = ga.AuthData[32]
		st.hmacSecret = parseHMACSecret(ga.AuthData)
	}
	a.stmts = append(a.stmts, st)

	count := ga.NumberOfCredentials
	if count == 0 {
		count = 1
	}
	return count, nil
}

// parseHMACSecret extracts the hmac-secret extension output from the
// authenticator-data trailer. Assertions carry no attested credential
// data, so the extension map follows the fixed prefix directly; when
// the AT flag is set the trailer cannot be framed and is skipped.
func parseHMACSecret(authData []byte) []byte {
	flags := authData[32]
	if flags&flagED == 0 || flags&flagAT != 0 {
		return nil
	}
	var ext map[string][]byte
	if err := decMode.Unmarshal(authData[authDataFixedLen:], &ext); err != nil {
		return nil
	}
	return ext["hmac-secret"]
}

// -------------------------------------------------------------------------
// U2F (legacy) Issuance — FIDO U2F Raw Message Formats Section 4
// -------------------------------------------------------------------------

// U2F status words and limits.
const (
	u2fSWNoError                = 0x9000
	u2fSWConditionsNotSatisfied = 0x6985

	// u2fMaxRetries bounds the user-presence polling loop. Real clients
	// poll until timeout; the canned stream either satisfies presence
	// within its recorded reports or not at all.
	u2fMaxRetries = 16
)

// u2fAuthenticate performs one U2F AUTHENTICATE per allowed credential,
// synthesizing WebAuthn-shaped authenticator data from the raw response.
func (d *Device) u2fAuthenticate(a *Assertion) error {
	rpHash := sha256.Sum256([]byte(a.rpID))

	for _, id := range a.allowList {
		if len(id) > 255 {
			// Key handle length is a single byte on the wire.
			continue
		}
		st, err := d.u2fAuthenticateOne(rpHash[:], a.cdh, id)
		if err != nil {
			return fmt.Errorf("u2f authenticate: %w", err)
		}
		if st != nil {
			a.stmts = append(a.stmts, *st)
		}
	}

	return nil
}

// u2fAuthenticateOne runs the AUTHENTICATE APDU for one key handle,
// polling while the token reports that user presence is required.
func (d *Device) u2fAuthenticateOne(rpHash, cdh, keyHandle []byte) (*statement, error) {
	apdu := buildU2FAuthenticateAPDU(rpHash, cdh, keyHandle)

	for attempt := 0; attempt < u2fMaxRetries; attempt++ {
		resp, err := d.exchange(cmdMsg, apdu)
		if err != nil {
			return nil, err
		}
		if len(resp) < 2 {
			return nil, fmt.Errorf("short APDU response (%d bytes): %w",
				len(resp), ErrTransport)
		}

		sw := binary.BigEndian.Uint16(resp[len(resp)-2:])
		switch sw {
		case u2fSWConditionsNotSatisfied:
			continue
		case u2fSWNoError:
			return parseU2FAuthenticateResponse(rpHash, keyHandle, resp[:len(resp)-2])
		default:
			// Authenticator-reported failure: no statement for this
			// credential, not a transport fault.
			return nil, nil
		}
	}

	return nil, nil
}

// buildU2FAuthenticateAPDU builds an extended-length AUTHENTICATE
// request (U2F Raw Message Formats Section 4.1): challenge(32) +
// application(32) + key handle length(1) + key handle.
func buildU2FAuthenticateAPDU(rpHash, cdh, keyHandle []byte) []byte {
	challenge := make([]byte, 32)
	copy(challenge, cdh)

	data := make([]byte, 0, 65+len(keyHandle))
	data = append(data, challenge...)
	data = append(data, rpHash...)
	data = append(data, byte(len(keyHandle)))
	data = append(data, keyHandle...)

	apdu := []byte{
		0x00, // CLA
		0x02, // INS: AUTHENTICATE
		0x03, // P1: enforce-user-presence-and-sign
		0x00, // P2
		0x00, byte(len(data) >> 8), byte(len(data)), // extended Lc
	}
	apdu = append(apdu, data...)
	apdu = append(apdu, 0x00, 0x00) // extended Le

	return apdu
}

// parseU2FAuthenticateResponse maps a raw U2F signature response —
// presence(1) + counter(4) + signature — onto a WebAuthn statement
// (WebAuthn Section 10.1.2: the U2F compatibility mapping).
func parseU2FAuthenticateResponse(rpHash, keyHandle, resp []byte) (*statement, error) {
	if len(resp) < 5 {
		return nil, fmt.Errorf("u2f signature response %d bytes: %w",
			len(resp), ErrTransport)
	}

	authData := make([]byte, 0, authDataFixedLen)
	authData = append(authData, rpHash...)
	authData = append(authData, resp[0]&flagUP)
	authData = append(authData, resp[1:5]...)

	return &statement{
		authData: authData,
		sig:      append([]byte(nil), resp[5:]...),
		id:       append([]byte(nil), keyHandle...),
		flags:    resp[0] & flagUP,
	}, nil
}

// -------------------------------------------------------------------------
// Verification — WebAuthn Section 7.2
// -------------------------------------------------------------------------

// Verify checks statement i against pk: the relying-party hash must
// match, requested UP/UV flags must be present, and the signature must
// cover authData || clientDataHash. The alg argument must match the
// key's own algorithm.
func (a *Assertion) Verify(i int, alg Algorithm, pk PublicKey) error {
	if i < 0 || i >= len(a.stmts) {
		return fmt.Errorf("verify statement %d of %d: %w",
			i, len(a.stmts), ErrInvalidArgument)
	}
	if pk == nil || alg != pk.Algorithm() {
		return fmt.Errorf("verify: algorithm %v does not match key: %w",
			alg, ErrInvalidArgument)
	}

	st := &a.stmts[i]
	if len(st.authData) < authDataFixedLen {
		return fmt.Errorf("verify: authenticator data %d bytes: %w",
			len(st.authData), ErrAuthDataFormat)
	}

	rpHash := sha256.Sum256([]byte(a.rpID))
	if !bytes.Equal(st.authData[:32], rpHash[:]) {
		return fmt.Errorf("verify: relying party mismatch: %w", ErrAuthDataFormat)
	}

	flags := st.authData[32]
	if a.up && flags&flagUP == 0 {
		return fmt.Errorf("verify: user presence: %w", ErrFlagsUnmet)
	}
	if a.uv && flags&flagUV == 0 {
		return fmt.Errorf("verify: user verification: %w", ErrFlagsUnmet)
	}

	message := make([]byte, 0, len(st.authData)+len(a.cdh))
	message = append(message, st.authData...)
	message = append(message, a.cdh...)

	return pk.Verify(message, st.sig)
}

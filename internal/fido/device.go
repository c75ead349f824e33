package fido

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// -------------------------------------------------------------------------
// Library State
// -------------------------------------------------------------------------

var (
	initOnce sync.Once

	// prngMu guards prng. The harness runs cases sequentially, but test
	// packages run in parallel.
	prngMu sync.Mutex

	// prng is the process-wide pseudo-random source. Reseed overwrites
	// it at the start of every fuzz case so that randomized decisions
	// (CTAPHID init nonces) replay deterministically.
	prng = rand.New(rand.NewSource(1))
)

// Init initializes the library. It is idempotent and safe to call once
// per case.
func Init() {
	initOnce.Do(func() {})
}

// Reseed replaces the process-wide pseudo-random source. Each fuzz case
// carries its own seed, making its randomized sub-decisions reproducible
// in isolation.
func Reseed(seed int64) {
	prngMu.Lock()
	defer prngMu.Unlock()
	prng = rand.New(rand.NewSource(seed))
}

// randFill fills b from the process-wide source.
func randFill(b []byte) {
	prngMu.Lock()
	defer prngMu.Unlock()
	for i := range b {
		b[i] = byte(prng.Intn(256))
	}
}

// -------------------------------------------------------------------------
// Device
// -------------------------------------------------------------------------

// IOHandler abstracts HID report I/O so transports can be substituted.
// Read and Write move whole 64-byte reports.
type IOHandler interface {
	Open(path string) error
	Close() error
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Device is a FIDO authenticator reachable through an IOHandler.
type Device struct {
	io     IOHandler
	cid    uint32
	opened bool
	u2f    bool
}

// NewDevice creates a Device backed by io. The device must be opened
// before use.
func NewDevice(io IOHandler) *Device {
	return &Device{io: io, cid: broadcastCID}
}

// ForceU2F pins the device to the legacy U2F transport, bypassing CTAP2.
func (d *Device) ForceU2F() {
	d.u2f = true
}

// Open opens the underlying transport and performs the CTAPHID_INIT
// exchange to allocate a channel (CTAP 2.1 Section 11.2.9.1.3). The
// nonce echo is not enforced: the transport may be a canned replay.
func (d *Device) Open(path string) error {
	if d.opened {
		return fmt.Errorf("open: device already open: %w", ErrTransport)
	}
	if err := d.io.Open(path); err != nil {
		return fmt.Errorf("open: %w", err)
	}

	nonce := make([]byte, initNonceLen)
	randFill(nonce)

	payload, err := d.exchange(cmdInit, nonce)
	if err != nil {
		_ = d.io.Close()
		return fmt.Errorf("open: init exchange: %w", err)
	}
	// INIT response: nonce(8) + CID(4) + version info.
	if len(payload) < initNonceLen+4 {
		_ = d.io.Close()
		return fmt.Errorf("open: short init response (%d bytes): %w",
			len(payload), ErrTransport)
	}
	d.cid = binary.BigEndian.Uint32(payload[initNonceLen : initNonceLen+4])
	d.opened = true

	return nil
}

// Cancel aborts any in-flight transaction. With a canned transport this
// is a no-op kept for call-sequence parity with real devices.
func (d *Device) Cancel() {}

// Close closes the transport. Safe to call on a device that never
// opened.
func (d *Device) Close() error {
	if !d.opened {
		return nil
	}
	d.opened = false
	d.cid = broadcastCID
	return d.io.Close()
}

// -------------------------------------------------------------------------
// CTAPHID Transaction Layer
// -------------------------------------------------------------------------

// tx writes one CTAPHID message as an initialization packet followed by
// however many continuation packets the payload needs.
func (d *Device) tx(cmd byte, payload []byte) error {
	if len(payload) > maxMsgLen {
		return fmt.Errorf("tx: %d bytes: %w", len(payload), ErrTxTooLong)
	}

	report := make([]byte, reportLen)
	binary.BigEndian.PutUint32(report[0:4], d.cid)
	report[4] = cmd | frameInitBit
	report[5] = byte(len(payload) >> 8)
	report[6] = byte(len(payload))
	n := copy(report[initHeaderLen:], payload)
	if _, err := d.io.Write(report); err != nil {
		return fmt.Errorf("tx: %w", err)
	}

	for seq := 0; n < len(payload); seq++ {
		for i := range report {
			report[i] = 0
		}
		binary.BigEndian.PutUint32(report[0:4], d.cid)
		report[4] = byte(seq)
		n += copy(report[contHeaderLen:], payload[n:])
		if _, err := d.io.Write(report); err != nil {
			return fmt.Errorf("tx: %w", err)
		}
	}

	return nil
}

// rx reads one reassembled CTAPHID message. Every length that crosses
// the transport boundary is bounds-checked: the stream is untrusted.
func (d *Device) rx() (cmd byte, payload []byte, err error) {
	report := make([]byte, reportLen)
	n, err := d.io.Read(report)
	if err != nil {
		return 0, nil, fmt.Errorf("rx: %w", err)
	}
	if n != reportLen {
		return 0, nil, fmt.Errorf("rx: short report (%d bytes): %w", n, ErrTransport)
	}
	if report[4]&frameInitBit == 0 {
		return 0, nil, fmt.Errorf("rx: continuation before init packet: %w", ErrTransport)
	}

	cmd = report[4] &^ frameInitBit
	total := int(report[5])<<8 | int(report[6])
	if total > maxMsgLen {
		return 0, nil, fmt.Errorf("rx: declared length %d: %w", total, ErrTransport)
	}

	payload = make([]byte, 0, total)
	payload = append(payload, report[initHeaderLen:min(initHeaderLen+total, reportLen)]...)

	for len(payload) < total {
		n, err := d.io.Read(report)
		if err != nil {
			return 0, nil, fmt.Errorf("rx: continuation: %w", err)
		}
		if n != reportLen {
			return 0, nil, fmt.Errorf("rx: short continuation (%d bytes): %w", n, ErrTransport)
		}
		remaining := total - len(payload)
		payload = append(payload, report[contHeaderLen:min(contHeaderLen+remaining, reportLen)]...)
	}

	return cmd, payload, nil
}

// exchange performs one full write/read transaction.
func (d *Device) exchange(cmd byte, payload []byte) ([]byte, error) {
	if err := d.tx(cmd, payload); err != nil {
		return nil, err
	}
	gotCmd, resp, err := d.rx()
	if err != nil {
		return nil, err
	}
	if gotCmd != cmd {
		return nil, fmt.Errorf("exchange: sent cmd 0x%02x, got 0x%02x: %w",
			cmd, gotCmd, ErrTransport)
	}
	return resp, nil
}

// cbor performs a CTAP2 CBOR transaction: command byte plus encoded
// parameters out, status byte plus encoded response in.
func (d *Device) cbor(ctapCmd byte, params any) ([]byte, error) {
	payload := []byte{ctapCmd}
	if params != nil {
		enc, err := encMode.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("cbor: encode request: %w", err)
		}
		payload = append(payload, enc...)
	}

	resp, err := d.exchange(cmdCBOR, payload)
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("cbor: empty response: %w", ErrTransport)
	}
	if resp[0] != 0 {
		return nil, ctapError(resp[0])
	}
	return resp[1:], nil
}

// Package hidmock provides a canned-replay HID transport. It stands in
// for real device I/O: writes are recorded and discarded, reads replay
// a pre-installed byte stream one 64-byte report at a time.
package hidmock

import (
	"errors"
	"fmt"
)

// reportLen matches the CTAPHID fixed report size.
const reportLen = 64

// Sentinel transport errors.
var (
	// ErrNotOpen indicates I/O on a transport that was never opened or
	// was already closed.
	ErrNotOpen = errors.New("transport not open")

	// ErrExhausted indicates a read past the end of the canned stream.
	ErrExhausted = errors.New("canned wire data exhausted")
)

// Transport implements the device IOHandler contract against a canned
// byte stream. The zero value is usable; SetWireData installs the
// stream to replay.
type Transport struct {
	wire   []byte
	off    int
	opened bool

	// writes counts reports the device sent. Kept for tests that assert
	// the request path actually transmitted.
	writes int
}

// New creates an empty Transport.
func New() *Transport {
	return &Transport{}
}

// SetWireData installs the canned response stream and rewinds the read
// position. The buffer is copied; the caller keeps ownership of b.
func (t *Transport) SetWireData(b []byte) {
	t.wire = append(t.wire[:0], b...)
	t.off = 0
}

// Writes reports how many reports have been written since Open.
func (t *Transport) Writes() int { return t.writes }

// Open implements IOHandler. The path is ignored; there is no device.
func (t *Transport) Open(string) error {
	if t.opened {
		return fmt.Errorf("hidmock: already open: %w", ErrNotOpen)
	}
	t.opened = true
	t.writes = 0
	return nil
}

// Close implements IOHandler.
func (t *Transport) Close() error {
	if !t.opened {
		return fmt.Errorf("hidmock: %w", ErrNotOpen)
	}
	t.opened = false
	return nil
}

// Read implements IOHandler: it returns the next canned report. The
// final report may be short if the installed stream is not a multiple
// of the report size; the device layer treats that as a framing error,
// which is exactly what a truncated trace should produce.
func (t *Transport) Read(p []byte) (int, error) {
	if !t.opened {
		return 0, fmt.Errorf("hidmock read: %w", ErrNotOpen)
	}
	if t.off >= len(t.wire) {
		return 0, fmt.Errorf("hidmock read: %w", ErrExhausted)
	}

	n := copy(p, t.wire[t.off:min(t.off+reportLen, len(t.wire))])
	t.off += n
	return n, nil
}

// Write implements IOHandler: the report is counted and discarded.
func (t *Transport) Write(p []byte) (int, error) {
	if !t.opened {
		return 0, fmt.Errorf("hidmock write: %w", ErrNotOpen)
	}
	t.writes++
	return len(p), nil
}

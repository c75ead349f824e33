// Package harness drives one fuzz case end to end: decode the encoded
// record, stand up a mock transport primed with the record's wire
// trace, run the assertion flow against it, and sweep every accessor
// and verification path. The harness never faults and never returns an
// error; library-reported failures are expected outcomes, not harness
// failures.
package harness

import (
	"log/slog"

	"github.com/dantte-lp/fidofuzz/internal/fido"
	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
	"github.com/dantte-lp/fidofuzz/internal/hidmock"
)

// -------------------------------------------------------------------------
// Metrics Reporting
// -------------------------------------------------------------------------

// Case result names reported to the metrics sink.
const (
	resultOK        = "ok"
	resultDecode    = "decode_error"
	resultKey       = "key_error"
	resultTransport = "transport_error"
)

// MetricsReporter receives harness events. Satisfied by the prometheus
// collector in internal/metrics; a no-op implementation is used when
// no collector is configured.
type MetricsReporter interface {
	IncCase(result string)
	IncDecodeFailure()
	IncKeyFamily(family string)
	ObserveSweep(n int)
}

type noopMetrics struct{}

func (noopMetrics) IncCase(string)      {}
func (noopMetrics) IncDecodeFailure()   {}
func (noopMetrics) IncKeyFamily(string) {}
func (noopMetrics) ObserveSweep(int)    {}

// -------------------------------------------------------------------------
// Harness Options — functional options pattern
// -------------------------------------------------------------------------

// Option configures optional Harness parameters.
type Option func(*Harness)

// WithMetrics attaches a MetricsReporter to the harness. If mr is nil,
// the default no-op reporter is used.
func WithMetrics(mr MetricsReporter) Option {
	return func(h *Harness) {
		if mr != nil {
			h.metrics = mr
		}
	}
}

// WithLogger sets the harness logger. If logger is nil, slog.Default()
// is used.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		if logger != nil {
			h.logger = logger.With(slog.String("component", "harness"))
		}
	}
}

// -------------------------------------------------------------------------
// Harness
// -------------------------------------------------------------------------

// Harness executes decoded fuzz cases against the assertion library.
// All per-case logging happens at debug level, so the default
// configuration stays silent; a single Harness is safe for sequential
// reuse across cases.
type Harness struct {
	logger  *slog.Logger
	metrics MetricsReporter
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger:  slog.Default().With(slog.String("component", "harness")),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunOneCase executes a single encoded case. It never returns an
// error: undecodable inputs are counted and dropped, and every
// library-level failure path inside the case is driven to teardown.
func (h *Harness) RunOneCase(data []byte) {
	rec, err := fuzzcase.Decode(data)
	if err != nil {
		h.metrics.IncDecodeFailure()
		h.metrics.IncCase(resultDecode)
		h.logger.Debug("case rejected by codec", slog.Any("error", err))
		return
	}

	// Reseed before any device interaction so nonce generation inside
	// the library replays deterministically for this case.
	fido.Reseed(int64(rec.Seed))
	fido.Init()

	pk, family, err := selectKey(rec)
	if err != nil {
		h.metrics.IncCase(resultKey)
		h.logger.Debug("key construction failed",
			slog.String("family", family.String()),
			slog.Any("error", err))
		return
	}
	h.metrics.IncKeyFamily(family.String())

	transport := hidmock.New()
	transport.SetWireData(rec.WireData.Bytes())

	dev := fido.NewDevice(transport)
	u2f := rec.U2F&1 != 0
	if u2f {
		dev.ForceU2F()
	}

	if err := dev.Open("hidmock"); err != nil {
		h.metrics.IncCase(resultTransport)
		h.logger.Debug("device open failed", slog.Any("error", err))
		return
	}
	defer dev.Close()

	assert := buildRequest(rec)

	pin := rec.PIN.String()
	if u2f {
		// U2F has no PIN protocol.
		pin = ""
	}

	getErr := dev.GetAssertion(assert, pin)

	// Sweep one index past the statement count. Out-of-range reads
	// must come back as zero values and out-of-range verification as
	// an error, never as a fault.
	count := assert.Count()
	for i := 0; i <= count; i++ {
		_ = assert.AuthData(i)
		_ = assert.Sig(i)
		_ = assert.ID(i)
		_ = assert.UserID(i)
		_ = assert.UserName(i)
		_ = assert.UserDisplayName(i)
		_ = assert.UserIcon(i)
		_ = assert.HMACSecret(i)
		_ = assert.Flags(i)
		_ = assert.Verify(i, pk.Algorithm(), pk)
	}
	h.metrics.ObserveSweep(count)

	if getErr != nil {
		h.metrics.IncCase(resultTransport)
		h.logger.Debug("assertion exchange failed",
			slog.Bool("u2f", u2f),
			slog.Any("error", getErr))
		return
	}

	h.metrics.IncCase(resultOK)
	h.logger.Debug("case completed",
		slog.Bool("u2f", u2f),
		slog.String("family", family.String()),
		slog.Int("statements", count))
}

// selectKey constructs the credential public key named by the record's
// type selector. RS256 and EdDSA keys additionally round-trip through
// their stdlib representations, exercising both conversion directions.
func selectKey(rec *fuzzcase.Record) (fido.PublicKey, fido.Algorithm, error) {
	switch rec.Type % 3 {
	case 0:
		pk, err := fido.NewES256FromBytes(rec.ES256.Bytes())
		if err != nil {
			return nil, fido.AlgES256, err
		}
		return pk, fido.AlgES256, nil

	case 1:
		pk, err := fido.NewRS256FromBytes(rec.RS256.Bytes())
		if err != nil {
			return nil, fido.AlgRS256, err
		}
		if rsaPK, err := pk.ToRSA(); err == nil {
			_, _ = fido.NewRS256FromRSA(rsaPK)
		}
		return pk, fido.AlgRS256, nil

	default:
		pk, err := fido.NewEdDSAFromBytes(rec.EdDSA.Bytes())
		if err != nil {
			return nil, fido.AlgEdDSA, err
		}
		_, _ = fido.NewEdDSAFromEd25519(pk.ToEd25519())
		return pk, fido.AlgEdDSA, nil
	}
}

// buildRequest assembles the assertion request from the record. The
// credential blob is repeated cred_count times in the allow list and
// doubles as the hmac-secret salt.
func buildRequest(rec *fuzzcase.Record) *fido.Assertion {
	assert := fido.NewAssertion()
	assert.SetClientDataHash(rec.CDH.Bytes())
	assert.SetRP(rec.RPID.String())

	for i := 0; i < int(rec.CredCount); i++ {
		assert.AllowCredential(rec.Cred.Bytes())
	}

	if rec.Ext&1 != 0 {
		assert.SetExtensions(fido.ExtHMACSecret)
	}
	assert.SetUP(rec.UP&1 != 0)
	assert.SetUV(rec.UV&1 != 0)
	assert.SetHMACSalt(rec.Cred.Bytes())

	return assert
}

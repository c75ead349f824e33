package fuzzmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// -------------------------------------------------------------------------
// Prometheus Metric Constants
// -------------------------------------------------------------------------

const (
	namespace = "fidofuzz"
	subsystem = "harness"
)

// Label names for harness metrics.
const (
	labelResult  = "result"
	labelOutcome = "outcome"
	labelFamily  = "family"
)

// Case result label values.
const (
	ResultOK        = "ok"
	ResultDecode    = "decode_error"
	ResultKey       = "key_error"
	ResultTransport = "transport_error"
)

// Mutation outcome label values.
const (
	OutcomeMutated     = "mutated"
	OutcomeSubstituted = "substituted"
	OutcomeRejected    = "rejected"
)

// -------------------------------------------------------------------------
// Collector — Prometheus Harness Metrics
// -------------------------------------------------------------------------

// Collector holds all harness Prometheus metrics.
//
// Metrics are designed for long campaign monitoring:
//   - Case counters track throughput and how cases terminate.
//   - Decode failure counters flag corpus desync.
//   - Mutation counters track the mutator's healing rate.
//   - The sweep histogram shows how many statements devices return.
type Collector struct {
	// Cases counts executed cases, labeled by how the case terminated.
	Cases *prometheus.CounterVec

	// DecodeFailures counts inputs rejected by the case codec before
	// any device interaction.
	DecodeFailures prometheus.Counter

	// Mutations counts mutator invocations, labeled by outcome
	// (structure-aware mutation, reference substitution, or rejection
	// for lack of space).
	Mutations *prometheus.CounterVec

	// KeyFamily counts cases per selected credential key family.
	KeyFamily *prometheus.CounterVec

	// SweepLength observes the statement count of each assertion
	// sweep, including sweeps over empty results.
	SweepLength prometheus.Histogram
}

// NewCollector creates a Collector with all harness metrics registered
// against the provided prometheus.Registerer. If reg is nil,
// prometheus.DefaultRegisterer is used.
//
// All metrics are created with the "fidofuzz_harness_" prefix
// (namespace_subsystem) to avoid collisions with other exporters.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.Cases,
		c.DecodeFailures,
		c.Mutations,
		c.KeyFamily,
		c.SweepLength,
	)

	return c
}

// newMetrics creates all Prometheus metric vectors without registering them.
func newMetrics() *Collector {
	return &Collector{
		Cases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cases_total",
			Help:      "Total fuzz cases executed, by terminal result.",
		}, []string{labelResult}),

		DecodeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_failures_total",
			Help:      "Total inputs rejected by the case codec.",
		}),

		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "mutations_total",
			Help:      "Total mutator invocations, by outcome.",
		}, []string{labelOutcome}),

		KeyFamily: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "key_family_total",
			Help:      "Total cases per selected credential key family.",
		}, []string{labelFamily}),

		SweepLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sweep_length",
			Help:      "Assertion statement count observed per sweep.",
			Buckets:   prometheus.LinearBuckets(0, 8, 9),
		}),
	}
}

// -------------------------------------------------------------------------
// Case Lifecycle
// -------------------------------------------------------------------------

// IncCase increments the case counter for the given terminal result.
// Called exactly once per executed case.
func (c *Collector) IncCase(result string) {
	c.Cases.WithLabelValues(result).Inc()
}

// IncDecodeFailure increments the codec rejection counter. Called when
// an input fails to decode before any device interaction.
func (c *Collector) IncDecodeFailure() {
	c.DecodeFailures.Inc()
}

// -------------------------------------------------------------------------
// Mutation Counters
// -------------------------------------------------------------------------

// IncMutation increments the mutation counter for the given outcome.
func (c *Collector) IncMutation(outcome string) {
	c.Mutations.WithLabelValues(outcome).Inc()
}

// -------------------------------------------------------------------------
// Key Family and Sweep
// -------------------------------------------------------------------------

// IncKeyFamily increments the counter for the selected key family.
func (c *Collector) IncKeyFamily(family string) {
	c.KeyFamily.WithLabelValues(family).Inc()
}

// ObserveSweep records the statement count of an assertion sweep.
func (c *Collector) ObserveSweep(n int) {
	c.SweepLength.Observe(float64(n))
}

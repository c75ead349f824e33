//go:build integration

package integration_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
	"github.com/dantte-lp/fidofuzz/internal/harness"
	fuzzmetrics "github.com/dantte-lp/fidofuzz/internal/metrics"
	"github.com/dantte-lp/fidofuzz/internal/mutator"
)

// -------------------------------------------------------------------------
// End-to-end campaign — corpus on disk, mutation loop, harness, metrics
// -------------------------------------------------------------------------

const (
	maxInputLen = 16384
	iterations  = 200
)

// seedCorpus writes the two reference cases into a fresh corpus
// directory, the way `fidofuzz seed` does.
func seedCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	ctap2 := fuzzcase.Reference()

	u2f := fuzzcase.Reference()
	u2f.U2F = 1
	u2f.Type = 0
	if err := u2f.WireData.Set(fuzzcase.WireTraceU2F()); err != nil {
		t.Fatalf("build u2f seed: %v", err)
	}

	for name, rec := range map[string]*fuzzcase.Record{
		"seed-ctap2": ctap2,
		"seed-u2f":   u2f,
	} {
		buf, err := fuzzcase.Encode(rec, fuzzcase.MaxEncodedSize)
		if err != nil {
			t.Fatalf("encode %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), buf, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	return dir
}

// loadCorpus reads every regular file in dir, in name order.
func loadCorpus(t *testing.T, dir string) [][]byte {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read corpus dir: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	cases := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read corpus case: %v", err)
		}
		cases = append(cases, data)
	}
	return cases
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// counterTotal sums a metric family's counters across all label sets.
func counterTotal(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

// TestCampaignEndToEnd drives a full miniature campaign: seed corpus on
// disk, mutate every case across many seeds, execute each mutation, and
// check the metrics account for every event without any fault.
func TestCampaignEndToEnd(t *testing.T) {
	dir := seedCorpus(t)
	cases := loadCorpus(t, dir)
	if len(cases) != 2 {
		t.Fatalf("corpus holds %d cases, want 2", len(cases))
	}

	reg := prometheus.NewRegistry()
	collector := fuzzmetrics.NewCollector(reg)
	h := harness.New(
		harness.WithMetrics(collector),
		harness.WithLogger(quietLogger()),
	)

	buf := make([]byte, maxInputLen)
	executed := 0
	for _, data := range cases {
		for iter := 0; iter < iterations; iter++ {
			size := copy(buf, data)
			n := mutator.Mutate(buf, size, maxInputLen, uint32(iter)+1)
			if n == 0 {
				collector.IncMutation(fuzzmetrics.OutcomeRejected)
				continue
			}
			collector.IncMutation(fuzzmetrics.OutcomeMutated)

			h.RunOneCase(buf[:n])
			executed++
		}
	}

	if executed == 0 {
		t.Fatal("no mutated case executed")
	}

	caseTotal := counterTotal(t, reg, "fidofuzz_harness_cases_total")
	if int(caseTotal) != executed {
		t.Errorf("cases_total = %v, want %d", caseTotal, executed)
	}

	mutTotal := counterTotal(t, reg, "fidofuzz_harness_mutations_total")
	if int(mutTotal) != len(cases)*iterations {
		t.Errorf("mutations_total = %v, want %d", mutTotal, len(cases)*iterations)
	}

	// Mutated seed corpora must never desync: the mutator only emits
	// decodable cases, so no decode failures can be counted.
	if v := counterTotal(t, reg, "fidofuzz_harness_decode_failures_total"); v != 0 {
		t.Errorf("decode_failures_total = %v, want 0", v)
	}
}

// TestCampaignUnmutatedPassthrough runs each seed case once without
// mutation, the iterations=0 mode. Both reference cases must complete
// their exchanges.
func TestCampaignUnmutatedPassthrough(t *testing.T) {
	dir := seedCorpus(t)
	cases := loadCorpus(t, dir)

	reg := prometheus.NewRegistry()
	collector := fuzzmetrics.NewCollector(reg)
	h := harness.New(
		harness.WithMetrics(collector),
		harness.WithLogger(quietLogger()),
	)

	for _, data := range cases {
		h.RunOneCase(data)
	}

	if v := counterTotal(t, reg, "fidofuzz_harness_cases_total"); v != 2 {
		t.Errorf("cases_total = %v, want 2", v)
	}
	if v := counterTotal(t, reg, "fidofuzz_harness_decode_failures_total"); v != 0 {
		t.Errorf("decode_failures_total = %v, want 0", v)
	}
}

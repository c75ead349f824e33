package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dantte-lp/fidofuzz/internal/config"
	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
	"github.com/dantte-lp/fidofuzz/internal/harness"
	fuzzmetrics "github.com/dantte-lp/fidofuzz/internal/metrics"
	"github.com/dantte-lp/fidofuzz/internal/mutator"
)

// shutdownTimeout is the maximum time to wait for the metrics server to
// drain active connections during graceful shutdown.
const shutdownTimeout = 10 * time.Second

// errEmptyCorpus indicates the corpus directory holds no regular files.
var errEmptyCorpus = errors.New("corpus directory holds no cases")

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a fuzzing campaign over the corpus directory",
		Long: "run loads every case from fuzz.corpus_dir and feeds it " +
			"through the harness, mutating fuzz.iterations times per case. " +
			"With a metrics address configured, campaign counters are " +
			"exposed over HTTP until the campaign finishes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCampaign(cmd.Context(), cfg, slog.Default())
		},
	}
}

// runCampaign executes the configured campaign, serving metrics on the
// side when enabled. It returns once every case has been processed or
// the context is cancelled by a termination signal.
func runCampaign(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cases, err := loadCorpus(cfg.Fuzz.CorpusDir)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	collector := fuzzmetrics.NewCollector(reg)
	h := harness.New(
		harness.WithMetrics(collector),
		harness.WithLogger(logger),
	)

	g, gCtx := errgroup.WithContext(ctx)

	if cfg.Metrics.Addr != "" {
		srv := newMetricsServer(cfg.Metrics, reg)
		g.Go(func() error {
			logger.Info("metrics server listening",
				slog.String("addr", cfg.Metrics.Addr),
				slog.String("path", cfg.Metrics.Path))
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	campaignErr := make(chan error, 1)
	g.Go(func() error {
		campaignErr <- fuzzCases(gCtx, cfg.Fuzz, h, collector, cases, logger)
		// Campaign done: unblock the metrics shutdown goroutine.
		stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return <-campaignErr
}

// loadCorpus reads every regular file in dir, in name order.
func loadCorpus(dir string) ([][]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, errEmptyCorpus)
	}

	cases := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read corpus case: %w", err)
		}
		cases = append(cases, data)
	}

	return cases, nil
}

// fuzzCases runs the mutate-and-execute loop over the corpus. With zero
// iterations each case runs once, unmutated.
func fuzzCases(
	ctx context.Context,
	fc config.FuzzConfig,
	h *harness.Harness,
	collector *fuzzmetrics.Collector,
	cases [][]byte,
	logger *slog.Logger,
) error {
	buf := make([]byte, fc.MaxInputLen)

	executed := 0
	for i, data := range cases {
		if len(data) > fc.MaxInputLen {
			logger.Warn("corpus case exceeds input cap, skipping",
				slog.Int("case", i),
				slog.Int("len", len(data)))
			continue
		}

		if fc.Iterations == 0 {
			h.RunOneCase(data)
			executed++
			continue
		}

		for iter := 0; iter < fc.Iterations; iter++ {
			if err := ctx.Err(); err != nil {
				logger.Info("campaign interrupted",
					slog.Int("executed", executed))
				return nil
			}

			size := copy(buf, data)
			n := mutator.Mutate(buf, size, fc.MaxInputLen, fc.Seed+uint32(iter))
			if n == 0 {
				collector.IncMutation(fuzzmetrics.OutcomeRejected)
				continue
			}
			collector.IncMutation(mutationOutcome(data))

			h.RunOneCase(buf[:n])
			executed++
		}
	}

	logger.Info("campaign complete",
		slog.Int("cases", len(cases)),
		slog.Int("executed", executed))
	return nil
}

// mutationOutcome classifies a successful mutation: inputs the codec
// rejected come back as the reference substitution, everything else as
// a structural mutation.
func mutationOutcome(in []byte) string {
	if _, err := fuzzcase.Decode(in); err != nil {
		return fuzzmetrics.OutcomeSubstituted
	}
	return fuzzmetrics.OutcomeMutated
}

// newMetricsServer creates the HTTP server exposing the campaign
// metrics registry.
func newMetricsServer(mc config.MetricsConfig, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(mc.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              mc.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

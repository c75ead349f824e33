package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/fidofuzz/internal/fuzzcase"
)

func seedCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the canonical reference cases into a corpus directory",
		Long: "seed bootstraps a corpus with two known-good cases: the " +
			"reference CTAP2 exchange and its U2F variant. An existing " +
			"corpus keeps its other cases.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if dir == "" {
				dir = cfg.Fuzz.CorpusDir
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create corpus dir: %w", err)
			}

			fido := fuzzcase.Reference()

			u2f := fuzzcase.Reference()
			u2f.U2F = 1
			u2f.Type = 0
			if err := u2f.WireData.Set(fuzzcase.WireTraceU2F()); err != nil {
				return fmt.Errorf("build u2f seed: %w", err)
			}

			seeds := map[string]*fuzzcase.Record{
				"seed-ctap2": fido,
				"seed-u2f":   u2f,
			}

			for name, rec := range seeds {
				buf, err := fuzzcase.Encode(rec, fuzzcase.MaxEncodedSize)
				if err != nil {
					return fmt.Errorf("encode %s: %w", name, err)
				}
				path := filepath.Join(dir, name)
				if err := os.WriteFile(path, buf, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				slog.Info("seed case written",
					slog.String("path", path),
					slog.Int("bytes", len(buf)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "corpus directory (default fuzz.corpus_dir)")

	return cmd
}

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/fidofuzz/internal/mutator"
)

// errMutationRejected indicates the mutator could not fit a result in
// the configured input cap.
var errMutationRejected = errors.New("mutation rejected: result exceeds input cap")

func mutateCmd() *cobra.Command {
	var (
		seed   uint32
		output string
	)

	cmd := &cobra.Command{
		Use:   "mutate <case-file>",
		Short: "Mutate one corpus case and write the result",
		Long: "mutate runs the structure-aware mutator once over the given " +
			"case. Undecodable inputs come back as the canonical reference " +
			"case. The result is written to --output, or to stdout.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read case: %w", err)
			}

			buf := make([]byte, cfg.Fuzz.MaxInputLen)
			size := copy(buf, data)

			n := mutator.Mutate(buf, size, cfg.Fuzz.MaxInputLen, seed)
			if n == 0 {
				return errMutationRejected
			}

			if output == "" {
				_, err := os.Stdout.Write(buf[:n])
				return err
			}
			if err := os.WriteFile(output, buf[:n], 0o644); err != nil {
				return fmt.Errorf("write mutated case: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().Uint32Var(&seed, "seed", 1, "mutation seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

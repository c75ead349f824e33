package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dantte-lp/fidofuzz/internal/config"
)

var (
	// cfg is the resolved configuration, initialized in PersistentPreRunE.
	cfg *config.Config

	// cfgPath is the optional YAML configuration file path.
	cfgPath string

	// logLevel and logFormat override the configured logging setup.
	logLevel  string
	logFormat string
)

// rootCmd is the top-level cobra command for fidofuzz.
var rootCmd = &cobra.Command{
	Use:   "fidofuzz",
	Short: "Structure-aware fuzzing harness for FIDO2/U2F assertions",
	Long: "fidofuzz drives a CTAP2/U2F assertion client against canned " +
		"transport traces, mutating structured corpus cases and sweeping " +
		"every verification path.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.DefaultConfig()
		}

		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		if logFormat != "" {
			cfg.Log.Format = logFormat
		}

		slog.SetDefault(newLogger(cfg.Log))

		return nil
	},
	// Silence cobra's built-in usage/error printing so we control it.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newLogger builds the process logger from the logging configuration.
func newLogger(lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.ParseLogLevel(lc.Level)}

	var handler slog.Handler
	if lc.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: json, text")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(mutateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(versionCmd())
}

// Execute runs the root command and exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Package config manages fidofuzz configuration using koanf/v2.
//
// Supports YAML files, environment variables, and CLI flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// -------------------------------------------------------------------------
// Configuration Structures
// -------------------------------------------------------------------------

// Config holds the complete fidofuzz configuration.
type Config struct {
	Metrics MetricsConfig `koanf:"metrics"`
	Log     LogConfig     `koanf:"log"`
	Fuzz    FuzzConfig    `koanf:"fuzz"`
}

// MetricsConfig holds the Prometheus metrics endpoint configuration.
type MetricsConfig struct {
	// Addr is the HTTP listen address for the metrics endpoint
	// (e.g., ":9100"). Empty disables the endpoint.
	Addr string `koanf:"addr"`
	// Path is the URL path for the metrics endpoint (e.g., "/metrics").
	Path string `koanf:"path"`
}

// LogConfig holds the logging configuration.
type LogConfig struct {
	// Level is the log level: "debug", "info", "warn", "error".
	Level string `koanf:"level"`
	// Format is the log output format: "json" or "text".
	Format string `koanf:"format"`
}

// FuzzConfig holds the fuzzing campaign parameters.
type FuzzConfig struct {
	// CorpusDir is the directory holding encoded corpus cases. Each
	// regular file in the directory is one case.
	CorpusDir string `koanf:"corpus_dir"`

	// MaxInputLen caps the size of any case fed to the harness or
	// produced by the mutator.
	MaxInputLen int `koanf:"max_input_len"`

	// Iterations is the number of mutate-and-run cycles per corpus
	// case in a campaign run. 0 means run each case once, unmutated.
	Iterations int `koanf:"iterations"`

	// Seed is the base mutation seed. Iteration i of a case uses
	// Seed + i, keeping campaigns reproducible.
	Seed uint32 `koanf:"seed"`
}

// -------------------------------------------------------------------------
// Defaults
// -------------------------------------------------------------------------

// DefaultConfig returns a Config populated with sensible defaults.
//
// The default input cap of 16 KiB comfortably fits the largest
// well-formed encoded case and leaves the mutator working room.
func DefaultConfig() *Config {
	return &Config{
		Metrics: MetricsConfig{
			Addr: "",
			Path: "/metrics",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Fuzz: FuzzConfig{
			CorpusDir:   "corpus",
			MaxInputLen: 16384,
			Iterations:  0,
			Seed:        1,
		},
	}
}

// -------------------------------------------------------------------------
// Loader
// -------------------------------------------------------------------------

// envPrefix is the environment variable prefix for fidofuzz configuration.
// Variables are named FIDOFUZZ_<section>_<key>, e.g., FIDOFUZZ_LOG_LEVEL.
const envPrefix = "FIDOFUZZ_"

// Load reads configuration from a YAML file at path, overlays environment
// variable overrides (FIDOFUZZ_ prefix), and merges on top of
// DefaultConfig(). Missing fields inherit defaults.
//
// Environment variable mapping:
//
//	FIDOFUZZ_METRICS_ADDR -> metrics.addr
//	FIDOFUZZ_METRICS_PATH -> metrics.path
//	FIDOFUZZ_LOG_LEVEL    -> log.level
//	FIDOFUZZ_LOG_FORMAT   -> log.format
//
// Uses koanf/v2 with file + env providers and YAML parser.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load defaults first.
	defaults := DefaultConfig()
	if err := loadDefaults(k, defaults); err != nil {
		return nil, fmt.Errorf("load config defaults: %w", err)
	}

	// Load YAML file on top of defaults.
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config from %s: %w", path, err)
	}

	// Load environment variable overrides on top of YAML.
	// FIDOFUZZ_LOG_LEVEL -> log.level (strip prefix, lowercase, _ -> .).
	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}

// envKeyMapper transforms FIDOFUZZ_LOG_LEVEL -> log.level.
// Strips the FIDOFUZZ_ prefix, lowercases, and replaces _ with .
func envKeyMapper(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", ".")
}

// loadDefaults marshals the default config into koanf as the base layer.
func loadDefaults(k *koanf.Koanf, defaults *Config) error {
	defaultMap := map[string]any{
		"metrics.addr":       defaults.Metrics.Addr,
		"metrics.path":       defaults.Metrics.Path,
		"log.level":          defaults.Log.Level,
		"log.format":         defaults.Log.Format,
		"fuzz.corpus_dir":    defaults.Fuzz.CorpusDir,
		"fuzz.max_input_len": defaults.Fuzz.MaxInputLen,
		"fuzz.iterations":    defaults.Fuzz.Iterations,
		"fuzz.seed":          defaults.Fuzz.Seed,
	}

	for key, val := range defaultMap {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// Validation errors.
var (
	// ErrInvalidMaxInputLen indicates the input cap is not positive.
	ErrInvalidMaxInputLen = errors.New("fuzz.max_input_len must be >= 1")

	// ErrInvalidIterations indicates a negative iteration count.
	ErrInvalidIterations = errors.New("fuzz.iterations must be >= 0")

	// ErrEmptyCorpusDir indicates no corpus directory is configured.
	ErrEmptyCorpusDir = errors.New("fuzz.corpus_dir must not be empty")

	// ErrInvalidMetricsPath indicates a metrics endpoint without a path.
	ErrInvalidMetricsPath = errors.New("metrics.path must not be empty when metrics.addr is set")
)

// Validate checks the configuration for logical errors.
// Returns the first validation error encountered.
func Validate(cfg *Config) error {
	if cfg.Fuzz.MaxInputLen < 1 {
		return ErrInvalidMaxInputLen
	}

	if cfg.Fuzz.Iterations < 0 {
		return ErrInvalidIterations
	}

	if cfg.Fuzz.CorpusDir == "" {
		return ErrEmptyCorpusDir
	}

	if cfg.Metrics.Addr != "" && cfg.Metrics.Path == "" {
		return ErrInvalidMetricsPath
	}

	return nil
}

// -------------------------------------------------------------------------
// Log Level Parsing
// -------------------------------------------------------------------------

// ParseLogLevel maps a configuration log level string to the corresponding
// slog.Level. Unknown values default to slog.LevelInfo.
//
// Recognized values: "debug", "info", "warn", "error" (case-insensitive).
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package config loads graphview settings: validator limits, logging, the
// terminal view and metrics.
//
// Priority: environment > file > defaults. The result is validated with
// go-playground/validator struct tags before it is handed out, so callers
// may pass Limits straight to the plot option constructors.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphview/plot"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvLogLevel       = "GRAPHVIEW_LOG_LEVEL"
	EnvLogFormat      = "GRAPHVIEW_LOG_FORMAT"
	EnvLogFile        = "GRAPHVIEW_LOG_FILE"
	EnvMetricsEnabled = "GRAPHVIEW_METRICS_ENABLED"
)

// Config is the full graphview configuration.
type Config struct {
	Limits  LimitsConfig  `yaml:"limits"`
	Log     LogConfig     `yaml:"log"`
	View    ViewConfig    `yaml:"view"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LimitsConfig tightens the parameter validator. Values outside the
// built-in bounds are rejected here rather than at option construction.
type LimitsConfig struct {
	MaxSpan        float64 `yaml:"max_span" validate:"gt=0,lte=1000"`
	MinResolution  float64 `yaml:"min_resolution" validate:"gte=0.001,lte=500"`
	FractionalMinX float64 `yaml:"fractional_min_x" validate:"gt=0,lte=1000"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	// File receives log output when set. The TUI discards logs otherwise.
	File string `yaml:"file"`
}

// ViewConfig sizes the ASCII chart and picks the one-shot output format.
type ViewConfig struct {
	Width  int    `yaml:"width" validate:"gte=20,lte=400"`
	Height int    `yaml:"height" validate:"gte=5,lte=200"`
	Format string `yaml:"format" validate:"oneof=chart table"`
}

// MetricsConfig toggles the Prometheus registry.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: LimitsConfig{
			MaxSpan:        plot.DefaultMaxSpan,
			MinResolution:  plot.DefaultMinResolution,
			FractionalMinX: plot.DefaultFractionalMinX,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		View: ViewConfig{
			Width:  72,
			Height: 20,
			Format: "chart",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file; an explicit path that
// cannot be read is an error. An empty file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Default(), fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return decode(f, cfg)
}

// decode applies a YAML document onto cfg. Unknown keys are rejected so a
// typo does not silently fall back to a default.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func loadEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		cfg.Metrics.Enabled = v == "true" || v == "1"
	}
}

// Validate checks every section against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// PlotOptions maps Limits to validator options. Only call on a validated
// Config: the option constructors panic on out-of-range values.
func (c Config) PlotOptions() []plot.Option {
	return []plot.Option{
		plot.WithMaxSpan(c.Limits.MaxSpan),
		plot.WithMinResolution(c.Limits.MinResolution),
		plot.WithFractionalMinX(c.Limits.FractionalMinX),
	}
}

// SlogLevel returns the configured level; unknown names map to Info.
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON slog logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

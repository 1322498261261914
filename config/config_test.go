package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphview/config"
	"github.com/katalvlaran/graphview/plot"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, plot.DefaultMaxSpan, cfg.Limits.MaxSpan)
	assert.Equal(t, "chart", cfg.View.Format)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
limits:
  max_span: 100
log:
  level: debug
  format: json
view:
  format: table
metrics:
  enabled: true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Limits.MaxSpan)
	assert.Equal(t, plot.DefaultMinResolution, cfg.Limits.MinResolution, "untouched keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "table", cfg.View.Format)
	assert.Equal(t, 72, cfg.View.Width)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"UnknownKey", "limits:\n  max_spam: 10\n", "max_spam"},
		{"SpanAboveBuiltIn", "limits:\n  max_span: 5000\n", "MaxSpan"},
		{"SpanZero", "limits:\n  max_span: 0\n", "MaxSpan"},
		{"ResolutionBelowBuiltIn", "limits:\n  min_resolution: 0.0001\n", "MinResolution"},
		{"NegativeFractionalMinX", "limits:\n  fractional_min_x: -1\n", "FractionalMinX"},
		{"BadLevel", "log:\n  level: verbose\n", "Level"},
		{"BadFormat", "view:\n  format: svg\n", "Format"},
		{"TinyWidth", "view:\n  width: 3\n", "Width"},
		{"NotYAML", "limits: [1, 2\n", "graphview.yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, tc.body))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "WARN")
	t.Setenv(config.EnvMetricsEnabled, "1")

	cfg, err := config.Load(writeFile(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvValidated(t *testing.T) {
	t.Setenv(config.EnvLogFormat, "xml")

	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlotOptions_TightenValidator(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Limits.MaxSpan = 20
	cfg.Limits.FractionalMinX = 0.5
	require.NoError(t, cfg.Validate())

	v := plot.NewValidator(cfg.PlotOptions()...)

	_, _, err := v.Validate([plot.FieldCount]string{"-15", "15", "0.1", "1", "1"}, plot.SineFunction, plot.DefaultParameters())
	require.ErrorIs(t, err, plot.ErrRangeTooLarge)

	p, fix, err := v.Validate([plot.FieldCount]string{"-5", "5", "0.1", "1", "0.5"}, plot.ExponentialFunction, plot.DefaultParameters())
	require.NoError(t, err)
	require.NotNil(t, fix)
	assert.Equal(t, 0.5, p.MinX())
}

func TestLogConfig_SlogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	}
	for name, want := range tests {
		assert.Equal(t, want, config.LogConfig{Level: name}.SlogLevel(), name)
	}
}

func TestLogConfig_NewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := config.LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	l.Info("hidden")
	l.Warn("shown", "k", 1)

	out := strings.TrimSpace(buf.String())
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.HasPrefix(out, "{"), "json handler")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	config.LogConfig{Level: "debug", Format: "text"}.NewLogger(&buf).Debug("dbg")
	assert.Contains(t, buf.String(), "msg=dbg")
}

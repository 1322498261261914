package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphview/config"
	"github.com/katalvlaran/graphview/plot"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(&bytes.Buffer{})
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestPlot_Chart(t *testing.T) {
	stdout, stderr, err := run(t, "plot", "--function", "Sine", "--min-x=-5", "--max-x=5", "--a", "2")
	require.NoError(t, err, stderr)
	assert.Contains(t, stdout, "Sine: Asin(Bx)")
	assert.Contains(t, stdout, "╭")
	assert.Contains(t, stdout, "-5")
}

func TestPlot_ValidationFailureKeepsPrevious(t *testing.T) {
	stdout, stderr, err := run(t, "plot", "--function", "Sine", "--min-x=-5", "--max-x=5", "--resolution", "7")
	require.ErrorIs(t, err, errReported)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: resolution is too large for this range, must be able to plot two data points within range. Returning to previous parameters.")
	assert.Contains(t, stderr, "kept: Min X=-10 Max X=10 Res X=0.1 A=1 B=1")
}

func TestPlot_FractionalNotice(t *testing.T) {
	stdout, stderr, err := run(t, "plot", "--function", "Exponential", "--b", "0.5")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Min X < 0 for fractional exponents is invalid. Changing Min X from -10 to 0.01.")
	assert.Contains(t, stdout, "Exponential: Ax^B")
}

func TestPlot_Table(t *testing.T) {
	stdout, _, err := run(t, "plot", "--function", "Exponential", "--b=-1", "--resolution", "1", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "segment")
	assert.Contains(t, stdout, "-10")
	assert.NotContains(t, stdout, "╭")
}

func TestPlot_NoFunction(t *testing.T) {
	stdout, _, err := run(t, "plot", "--function=")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(no function selected)")
}

func TestPlot_Errors(t *testing.T) {
	_, _, err := run(t, "plot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "function" not set`)

	_, _, err = run(t, "plot", "--function", "Cosine")
	require.ErrorIs(t, err, plot.ErrUnknownFunction)

	_, _, err = run(t, "plot", "--function", "Sine", "--format", "svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "svg")
}

func TestPlot_MetricsDump(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "plot", "--function", "Sine")
	require.NoError(t, err)
	assert.Contains(t, stderr, "graphview_renders_total")
	assert.Contains(t, stderr, `graphview_validations_total{kind="",result="ok"} 1`)
}

func TestPlot_MetricsDumpOnRejection(t *testing.T) {
	_, stderr, err := run(t, "--metrics", "plot", "--function", "Sine", "--min-x=-5", "--max-x=5", "--resolution", "7")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "kept:")
	assert.Contains(t, stderr, `graphview_validations_total{kind="resolution_too_large",result="rejected"} 1`)
	assert.Contains(t, stderr, `graphview_selections_total{function="Sine"} 1`)
}

type countingCloser struct{ closed int }

func (c *countingCloser) Close() error {
	c.closed++
	return nil
}

func TestTeardown_ReleasesOnFailure(t *testing.T) {
	closer := &countingCloser{}
	a := &app{logCloser: closer}
	boom := errors.New("boom")

	run := a.withTeardown(func(*cobra.Command, []string) error { return boom })
	cmd := &cobra.Command{}
	cmd.SetErr(&bytes.Buffer{})

	require.ErrorIs(t, run(cmd, nil), boom)
	assert.Equal(t, 1, closer.closed)

	require.NoError(t, a.teardown(&bytes.Buffer{}))
	assert.Equal(t, 1, closer.closed, "closed once")
}

func TestPlot_DebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "plot", "--function", "Sawtooth")
	require.NoError(t, err)
	assert.Contains(t, stderr, "curve rendered")
	assert.Contains(t, stderr, "session_id=")

	_, _, err = run(t, "--log-level", "loud", "plot", "--function", "Sawtooth")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlot_ConfigLimits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphview.yaml")
	logPath := filepath.Join(dir, "graphview.log")
	body := "limits:\n  max_span: 20\nlog:\n  file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	_, stderr, err := run(t, "--config", path, "plot", "--function", "Sine", "--min-x=-15", "--max-x=15")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "X range is too large (max 20)")

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "parameters rejected")
}

func TestTUI_RequiresTerminal(t *testing.T) {
	_, _, err := run(t, "tui")
	require.ErrorIs(t, err, errNoTerminal)
}

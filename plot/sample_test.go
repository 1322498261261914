package plot_test

import (
	"testing"

	"github.com/katalvlaran/graphview/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestXValues_EndsExactlyAtMax checks the domain contract across resolutions
// that divide the span evenly, leave a remainder, or drift in floating point.
func TestXValues_EndsExactlyAtMax(t *testing.T) {
	t.Parallel()

	cases := [][plot.FieldCount]string{
		raw("-10", "10", "0.1", "1", "1"),
		raw("-50", "51", "1", "5", "5"),
		raw("0", "1", "0.3", "1", "1"),
		raw("-5", "5", "5", "1", "1"),
		raw("-1", "1", "0.7", "1", "1"),
		raw("0.01", "10", "0.1", "5", "1.5"),
		raw("-3.3", "7.9", "0.013", "1", "1"),
		raw("0", "0.002", "0.001", "1", "1"),
	}

	for _, fields := range cases {
		p := mustParams(t, plot.SineFunction, fields)
		xs := plot.XValues(p)

		require.GreaterOrEqual(t, len(xs), 2, "fields %v", fields)
		assert.Equal(t, p.MinX(), xs[0], "fields %v: first sample", fields)
		assert.Equal(t, p.MaxX(), xs[len(xs)-1], "fields %v: last sample", fields)
		requireStrictlyIncreasing(t, xs)
	}
}

func TestXValues_Defaults(t *testing.T) {
	t.Parallel()

	xs := plot.XValues(plot.DefaultParameters())
	require.Len(t, xs, 201)
	for i := 0; i < len(xs)-1; i++ {
		assert.InDelta(t, -10+0.1*float64(i), xs[i], 1e-9, "x[%d]", i)
	}
}

// TestXValues_ShortLastStep covers a resolution that does not divide the span:
// the regular samples stop below maxX and maxX is appended.
func TestXValues_ShortLastStep(t *testing.T) {
	t.Parallel()

	xs := plot.XValues(mustParams(t, plot.SineFunction, raw("0", "1", "0.3", "1", "1")))
	require.Len(t, xs, 5)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.6, 0.9, 1}, []float64(xs), 1e-12)
}

func TestXValues_HalfSpanGivesThreePoints(t *testing.T) {
	t.Parallel()

	xs := plot.XValues(mustParams(t, plot.SineFunction, raw("-5", "5", "5", "1", "1")))
	assert.Equal(t, plot.Domain{-5, 0, 5}, xs)
}

func TestXValues_ZeroValueParameters(t *testing.T) {
	t.Parallel()

	assert.Nil(t, plot.XValues(plot.ParameterSet{}), "an unvalidated zero set has no domain")
}

package plot_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/graphview/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAsymptote_IntegerGrid(t *testing.T) {
	t.Parallel()

	p := mustParams(t, plot.ExponentialFunction, raw("-10", "10", "1", "1", "-1"))
	require.True(t, plot.NeedsSplit(plot.ExponentialFunction, p))

	xs := plot.XValues(p)
	ys := plot.Exponential{}.Evaluate(p, xs)
	neg, pos := plot.SplitAsymptote(p, xs, ys)

	// negCut = ⌊9.5⌋ = 9 → x ∈ [-10,-1]; posCut = ⌊10.5⌋ = 10 → x ∈ [1,10].
	assert.Equal(t, []float64{-10, -9, -8, -7, -6, -5, -4, -3, -2, -1}, neg.X)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, pos.X)
	assert.Equal(t, -1.0, neg.Y[len(neg.Y)-1])
	assert.Equal(t, 1.0, pos.Y[0])
}

// TestSplitAsymptote_KeepsBothSidesFinite sweeps domains straddling x=0 at the
// coarsest resolution the validator allows and checks the two strokes stay
// on their own side, non-empty, and free of the ±Inf sample at x=0.
func TestSplitAsymptote_KeepsBothSidesFinite(t *testing.T) {
	t.Parallel()

	for _, span := range [][2]float64{{-10, 10}, {-3, 20}, {-20, 3}, {-1, 1}, {-6.5, 6.5}, {-400, 600}} {
		for _, b := range []string{"-1", "-2", "-3"} {
			minX, maxX := span[0], span[1]
			res := (maxX - minX) / plot.AsymptoteSpanRatio
			fields := raw(fmt.Sprint(minX), fmt.Sprint(maxX), fmt.Sprint(res), "2", b)
			p := mustParams(t, plot.ExponentialFunction, fields)

			c, err := plot.Render(plot.ExponentialFunction, p)
			require.NoError(t, err)
			require.Len(t, c.Segments, 2, "fields %v", fields)

			neg, pos := c.Segments[0], c.Segments[1]
			require.NotZero(t, neg.Len(), "fields %v: left stroke empty", fields)
			require.NotZero(t, pos.Len(), "fields %v: right stroke empty", fields)
			assert.Equal(t, neg.Len(), len(neg.Y))
			assert.Equal(t, pos.Len(), len(pos.Y))
			assert.Less(t, neg.X[neg.Len()-1], 0.0, "fields %v", fields)
			assert.Greater(t, pos.X[0], 0.0, "fields %v", fields)
			for _, y := range append(append([]float64{}, neg.Y...), pos.Y...) {
				assert.False(t, math.IsInf(y, 0), "fields %v: stroke kept the singular sample", fields)
			}
		}
	}
}

func TestNeedsSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		sel    plot.Selection
		fields [plot.FieldCount]string
		want   bool
	}{
		{"negative integer B across zero", plot.ExponentialFunction, raw("-10", "10", "0.1", "1", "-2"), true},
		{"positive B", plot.ExponentialFunction, raw("-10", "10", "0.1", "1", "2"), false},
		{"domain right of zero", plot.ExponentialFunction, raw("1", "10", "0.1", "1", "-2"), false},
		{"domain left of zero", plot.ExponentialFunction, raw("-10", "-1", "0.1", "1", "-2"), false},
		{"domain touching zero", plot.ExponentialFunction, raw("0", "10", "0.1", "1", "-2"), false},
		{"sine never splits", plot.SineFunction, raw("-10", "10", "0.1", "1", "-2"), false},
		{"fractional negative B is repaired away from zero", plot.ExponentialFunction, raw("-10", "10", "0.1", "1", "-0.5"), false},
	}

	for _, tc := range tests {
		p := mustParams(t, tc.sel, tc.fields)
		assert.Equal(t, tc.want, plot.NeedsSplit(tc.sel, p), tc.name)
	}
}

func TestSplitAsymptote_ClampsShortInput(t *testing.T) {
	t.Parallel()

	p := mustParams(t, plot.ExponentialFunction, raw("-10", "10", "1", "1", "-1"))
	xs := plot.Domain{-10, -9}
	ys := []float64{-0.1, -1.0 / 9}

	neg, pos := plot.SplitAsymptote(p, xs, ys)
	assert.Equal(t, 2, neg.Len())
	assert.Zero(t, pos.Len())
}

// Package plot_test holds helpers shared by the black-box tests of plot.
package plot_test

import (
	"testing"

	"github.com/katalvlaran/graphview/plot"
	"github.com/stretchr/testify/require"
)

// raw builds a field array from five strings in UI order.
func raw(minX, maxX, res, a, b string) [plot.FieldCount]string {
	return [plot.FieldCount]string{minX, maxX, res, a, b}
}

// mustParams validates raw fields for sel and fails the test on error.
func mustParams(t testing.TB, sel plot.Selection, fields [plot.FieldCount]string) plot.ParameterSet {
	t.Helper()
	p, _, err := plot.Validate(fields, sel, plot.DefaultParameters())
	require.NoError(t, err, "fixture %v must validate", fields)

	return p
}

// requireStrictlyIncreasing fails unless xs is strictly increasing.
func requireStrictlyIncreasing(t testing.TB, xs []float64) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		require.Less(t, xs[i-1], xs[i], "x[%d]=%v must be < x[%d]=%v", i-1, xs[i-1], i, xs[i])
	}
}

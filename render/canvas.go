// Package render draws plot.Curve values for terminal shells: an ASCII
// Canvas for the chart and a lipgloss Table for sampled values.
//
// Each Segment is drawn as its own asciigraph series, so the two halves of
// an asymptote split are never joined across x=0. Non-finite samples are
// NaN gaps and break the stroke they fall in.
package render

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/graphview/plot"
)

// Canvas size bounds, in terminal cells.
const (
	MinWidth  = 20
	MinHeight = 5
)

const (
	// axisOffset is the gap asciigraph keeps between the y labels and the
	// first plot column, y-axis glyph included.
	axisOffset = 3
	minColumns = 2
	xAxisTicks = 5
)

// Canvas lays curves out on a fixed character grid.
type Canvas struct {
	width  int
	height int
}

// NewCanvas returns a canvas whose rows are width cells wide (y labels
// included) and which has height plot rows. The x axis adds two lines below.
// Panics if either dimension is below MinWidth/MinHeight.
func NewCanvas(width, height int) *Canvas {
	if width < MinWidth || height < MinHeight {
		panic(fmt.Sprintf("render: NewCanvas(%d, %d) below %dx%d", width, height, MinWidth, MinHeight))
	}

	return &Canvas{width: width, height: height}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// bounds is the finite data rectangle of a curve.
type bounds struct {
	xmin, xmax, ymin, ymax float64
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// curveBounds returns the rectangle over all finite points; ok is false when
// there are none. Degenerate axes are widened by one unit each way.
func curveBounds(curve plot.Curve) (b bounds, ok bool) {
	b = bounds{xmin: math.Inf(1), xmax: math.Inf(-1), ymin: math.Inf(1), ymax: math.Inf(-1)}
	for _, s := range curve.Segments {
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			ok = true
			b.xmin = math.Min(b.xmin, x)
			b.xmax = math.Max(b.xmax, x)
			b.ymin = math.Min(b.ymin, y)
			b.ymax = math.Max(b.ymax, y)
		}
	}
	if !ok {
		return bounds{}, false
	}
	if b.xmin == b.xmax {
		b.xmin, b.xmax = b.xmin-1, b.xmax+1
	}
	if b.ymin == b.ymax {
		b.ymin, b.ymax = b.ymin-1, b.ymax+1
	}

	return b, true
}

// scale maps v into [0,1]. Ranges too wide for float64 subtraction are
// halved first so the ratio stays finite.
func scale(v, lo, hi float64) float64 {
	f := (v - lo) / (hi - lo)
	if !finite(hi - lo) {
		f = (v/2 - lo/2) / (hi/2 - lo/2)
	}

	return math.Max(0, math.Min(1, f))
}

// unscale is the inverse of scale; it never overflows for finite lo, hi.
func unscale(f, lo, hi float64) float64 {
	return lo*(1-f) + hi*f
}

// resample evaluates every segment at cols evenly spaced x positions over
// b. A column outside the segment's x range, or between two samples where
// either is non-finite, is NaN. Samples that fall between columns still
// claim their nearest column when it would otherwise stay empty.
func resample(curve plot.Curve, b bounds, cols int) [][]float64 {
	out := make([][]float64, len(curve.Segments))
	last := float64(cols - 1)
	for i, s := range curve.Segments {
		ys := make([]float64, cols)
		for c := range ys {
			ys[c] = sampleAt(s, unscale(float64(c)/last, b.xmin, b.xmax))
		}
		for j := range s.X {
			x, y := s.X[j], s.Y[j]
			if !finite(x) || !finite(y) {
				continue
			}
			c := int(math.Round(scale(x, b.xmin, b.xmax) * last))
			if math.IsNaN(ys[c]) {
				ys[c] = y
			}
		}
		out[i] = ys
	}

	return out
}

// sampleAt interpolates s linearly at x. s.X is increasing.
func sampleAt(s plot.Segment, x float64) float64 {
	n := min(len(s.X), len(s.Y))
	if n == 0 || x < s.X[0] || x > s.X[n-1] {
		return math.NaN()
	}
	j := sort.SearchFloat64s(s.X[:n], x)
	if j >= n {
		return math.NaN()
	}
	if s.X[j] == x {
		if !finite(s.Y[j]) {
			return math.NaN()
		}
		return s.Y[j]
	}
	if j == 0 {
		return math.NaN()
	}
	y0, y1 := s.Y[j-1], s.Y[j]
	if !finite(y0) || !finite(y1) {
		return math.NaN()
	}

	return unscale((x-s.X[j-1])/(s.X[j]-s.X[j-1]), y0, y1)
}

// columns is the number of plot columns left once the widest y label and
// the axis gap are taken out of the canvas width.
func (c *Canvas) columns(label asciigraph.YAxisValueFormatterFunc) int {
	widest := 0
	for m := 0; m < c.height; m++ {
		widest = max(widest, utf8.RuneCountInString(label(float64(m))))
	}

	return max(minColumns, c.width-widest-axisOffset)
}

// Draw renders curve as text: a title line, the plot rows with a y label on
// each, then the x axis and its tick labels. A curve without a single
// finite sample renders as its title and a placeholder.
//
// Samples are normalised to row units before plotting so the row count is
// exactly the canvas height whatever the y range; labels map back.
func (c *Canvas) Draw(curve plot.Curve) string {
	b, ok := curveBounds(curve)
	if !ok {
		return curve.Title + "\n(no finite samples)"
	}

	top := float64(c.height - 1)
	yLabel := func(m float64) string {
		return formatTick(unscale(m/top, b.ymin, b.ymax))
	}

	series := resample(curve, b, c.columns(yLabel))
	for _, ys := range series {
		for i, y := range ys {
			if !math.IsNaN(y) {
				ys[i] = scale(y, b.ymin, b.ymax) * top
			}
		}
	}

	chart := asciigraph.PlotMany(series,
		asciigraph.Height(c.height-1),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(top),
		asciigraph.Offset(axisOffset),
		asciigraph.YAxisValueFormatter(yLabel),
		asciigraph.XAxisRange(b.xmin, b.xmax),
		asciigraph.XAxisTickCount(xAxisTicks),
		asciigraph.XAxisValueFormatter(formatTick),
	)

	return curve.Title + "\n" + chart
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// split.go — cutting Exponential curves at the x=0 asymptote.

package plot

import "math"

// NeedsSplit reports whether the curve for (sel, p) crosses the singularity of
// x^B at x=0: Exponential, B a negative integer, and minX·maxX < 0.
func NeedsSplit(sel Selection, p ParameterSet) bool {
	return sel == ExponentialFunction && p.b < 0 && isInteger(p.b) && p.minX*p.maxX < 0
}

// SplitAsymptote cuts a sampled curve into the strokes left and right of x=0.
//
//	negCut = ⌊|(minX + 0.5) / res|⌋   neg = points [0 .. negCut]
//	posCut = ⌊|(minX − 0.5) / res|⌋   pos = points (posCut .. end]
//
// The 0.5 margin is a fixed heuristic, independent of B and res. Validate
// bounds res ≤ span/6.5 for these curves, which keeps both strokes
// non-empty. Cut indices are clamped to the curve length.
//
// The returned segments alias xs and ys.
//
// Complexity: O(1).
func SplitAsymptote(p ParameterSet, xs Domain, ys []float64) (neg, pos Segment) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}

	negEnd := clampIndex(cutIndex(p.minX+SplitMargin, p.res)+1, n)
	posStart := clampIndex(cutIndex(p.minX-SplitMargin, p.res)+1, n)

	neg = Segment{X: xs[:negEnd:negEnd], Y: ys[:negEnd:negEnd]}
	pos = Segment{X: xs[posStart:n], Y: ys[posStart:n]}

	return neg, pos
}

func cutIndex(x, res float64) int {
	return int(math.Floor(math.Abs(x / res)))
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}

	return i
}

// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// sample.go — the sample domain for a ParameterSet.

package plot

import "math"

// XValues returns the sample domain for p.
//
// Samples are x_i = minX + i·res, each computed by one multiplication so no
// step error accumulates. Every x_i < maxX is kept and maxX itself is
// appended, which is the same sequence as stepping up to maxX+res, clamping
// an overshooting last sample to maxX and appending maxX when short; it also
// stays strictly increasing when x_i lands exactly on maxX.
//
// A ParameterSet from Validate always yields at least two samples. For a zero
// or otherwise invalid set (res ≤ 0, minX ≥ maxX) XValues returns nil.
//
// Complexity: O(span/res) time and memory, at most 10⁶+1 samples.
func XValues(p ParameterSet) Domain {
	if !(p.res > 0) || !(p.minX < p.maxX) {
		return nil
	}

	// Exact count for the regular part plus the appended endpoint.
	n := int(math.Ceil((p.maxX-p.minX)/p.res)) + 1
	xs := make(Domain, 0, n)

	var x float64
	for i := 0; ; i++ {
		x = p.minX + float64(i)*p.res
		if x >= p.maxX {
			break
		}
		xs = append(xs, x)
	}

	return append(xs, p.maxX)
}

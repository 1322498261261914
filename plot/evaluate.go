// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// evaluate.go — the function families.
//
// Contract:
//   • Evaluate is pure: same (ParameterSet, Domain) → same y-values.
//   • Evaluate performs no validation; the caller hands it a validated set.
//   • The returned slice is freshly allocated, len(ys) == len(xs).

package plot

import "math"

// Evaluator is one function family. Implementations must be stateless.
type Evaluator interface {
	// Name is the family name shown in the plot title ("Sine").
	Name() string
	// Label is the general form shown after the name ("Asin(Bx)").
	Label() string
	// Evaluate computes y for every x in xs.
	Evaluate(p ParameterSet, xs Domain) []float64
}

// EvaluatorFor returns the evaluator for sel.
// NoFunction yields ErrNoFunction; anything else unknown yields ErrUnknownFunction.
func EvaluatorFor(sel Selection) (Evaluator, error) {
	switch sel {
	case SineFunction:
		return Sine{}, nil
	case SawtoothFunction:
		return Sawtooth{}, nil
	case ExponentialFunction:
		return Exponential{}, nil
	case NoFunction:
		return nil, ErrNoFunction
	}

	return nil, wrapf(ErrUnknownFunction, "selection %d", int(sel))
}

// Sine is y = A·sin(B·x).
type Sine struct{}

func (Sine) Name() string  { return "Sine" }
func (Sine) Label() string { return "Asin(Bx)" }

func (Sine) Evaluate(p ParameterSet, xs Domain) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.a * math.Sin(p.b*x)
	}

	return ys
}

// Sawtooth is an asymmetric triangle wave with a period of 3 x-units: a
// 1-unit up-slope followed by a 2-unit down-slope. Unscaled it passes through
// (0,−0.5) (1,0.5) (2,0) (3,−0.5); A scales it vertically and B shifts it.
type Sawtooth struct{}

const (
	sawPeriod    = 3.0
	sawUpSlope   = 1.0  // (0.5 − (−0.5)) / (1 − 0)
	sawUpOffset  = -0.5 // y at m=0
	sawDownSlope = -0.5 // (−0.5 − 0.5) / (3 − 1)
	sawDownBase  = 1.0  // y-intercept of the down-slope line
	sawPeak      = 1.0  // m at which the wave turns
)

func (Sawtooth) Name() string  { return "Sawtooth" }
func (Sawtooth) Label() string { return "Vertical Scale: A, Vertical Shift: B" }

func (Sawtooth) Evaluate(p ParameterSet, xs Domain) []float64 {
	ys := make([]float64, len(xs))

	var v, m float64
	for i, x := range xs {
		// Negative x is first folded into [0,3); m is then reduced again.
		// The second reduction is a no-op except when the first one rounds
		// up to exactly 3, which it maps back to 0.
		v = x
		if v < 0 {
			v = floorMod(v, sawPeriod)
		}
		m = floorMod(v, sawPeriod)

		if m <= sawPeak {
			ys[i] = p.a*(sawUpSlope*m+sawUpOffset) + p.b
		} else {
			ys[i] = p.a*(sawDownSlope*m+sawDownBase) + p.b
		}
	}

	return ys
}

// floorMod is the modulo whose result takes the sign of the divisor, so for
// d>0 it lands in [0,d) up to rounding.
func floorMod(x, d float64) float64 {
	r := math.Mod(x, d)
	if r != 0 && (r < 0) != (d < 0) {
		r += d
	}

	return r
}

// Exponential is y = A·x^B. For x<0 and fractional B the value is complex;
// the Validator keeps minX ≥ 0 for fractional B so that case never reaches
// here. At x=0 with B<0 the value is ±Inf.
type Exponential struct{}

func (Exponential) Name() string  { return "Exponential" }
func (Exponential) Label() string { return "Ax^B" }

func (Exponential) Evaluate(p ParameterSet, xs Domain) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.a * math.Pow(x, p.b)
	}

	return ys
}

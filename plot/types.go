// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// types.go — core value types: Selection, ParameterSet, Domain, Segment, Curve.
//
// Contract:
//   • ParameterSet has unexported fields: outside this package it can only be
//     obtained from DefaultParameters or a successful Validate, so every value
//     a caller holds already satisfies the domain invariants.
//   • All types are values; nothing here is shared or mutated after creation.

package plot

import (
	"math"
	"strconv"
	"strings"
)

// Selection identifies the function family a session renders.
type Selection int

const (
	// NoFunction is the blank dropdown entry; rendering it clears the plot.
	NoFunction Selection = iota
	// SineFunction renders A·sin(B·x).
	SineFunction
	// SawtoothFunction renders the period-3 asymmetric triangle wave.
	SawtoothFunction
	// ExponentialFunction renders A·x^B.
	ExponentialFunction
)

// Selections lists every selection in dropdown order, blank entry first.
var Selections = []Selection{NoFunction, SineFunction, SawtoothFunction, ExponentialFunction}

// String returns the display name used by UI shells ("" for NoFunction).
func (s Selection) String() string {
	switch s {
	case SineFunction:
		return "Sine"
	case SawtoothFunction:
		return "Sawtooth"
	case ExponentialFunction:
		return "Exponential"
	default:
		return ""
	}
}

// ParseSelection maps a shell-provided name to a Selection.
// The empty or whitespace-only name is the blank entry. Matching is exact
// after trimming; unknown names return ErrUnknownFunction.
func ParseSelection(name string) (Selection, error) {
	switch strings.TrimSpace(name) {
	case "":
		return NoFunction, nil
	case "Sine":
		return SineFunction, nil
	case "Sawtooth":
		return SawtoothFunction, nil
	case "Exponential":
		return ExponentialFunction, nil
	}

	return NoFunction, wrapf(ErrUnknownFunction, "%q", name)
}

// Field indexes the five raw parameter strings, in UI order.
const (
	FieldMinX = iota
	FieldMaxX
	FieldResolution
	FieldA
	FieldB

	// FieldCount is the number of parameter fields.
	FieldCount
)

// FieldNames are the labels shells show next to each field.
var FieldNames = [FieldCount]string{"Min X", "Max X", "Res X", "A", "B"}

// Default parameter values, restored whenever the selected function changes.
const (
	DefaultMinX       = -10.0
	DefaultMaxX       = 10.0
	DefaultResolution = 0.1
	DefaultA          = 1.0
	DefaultB          = 1.0
)

// ParameterSet is a validated {minX, maxX, resolution, A, B} tuple.
type ParameterSet struct {
	minX float64
	maxX float64
	res  float64
	a    float64
	b    float64
}

// DefaultParameters returns {-10, 10, 0.1, 1, 1}.
func DefaultParameters() ParameterSet {
	return ParameterSet{
		minX: DefaultMinX,
		maxX: DefaultMaxX,
		res:  DefaultResolution,
		a:    DefaultA,
		b:    DefaultB,
	}
}

func (p ParameterSet) MinX() float64       { return p.minX }
func (p ParameterSet) MaxX() float64       { return p.maxX }
func (p ParameterSet) Resolution() float64 { return p.res }
func (p ParameterSet) A() float64          { return p.a }
func (p ParameterSet) B() float64          { return p.b }

// Span returns |maxX − minX|.
func (p ParameterSet) Span() float64 {
	return math.Abs(p.maxX - p.minX)
}

// Values returns the parameters in field order.
func (p ParameterSet) Values() [FieldCount]float64 {
	return [FieldCount]float64{p.minX, p.maxX, p.res, p.a, p.b}
}

// Fields formats the parameters for display, shortest round-trip form
// ("-10", "0.1"). Feeding Fields back into Validate reproduces p.
func (p ParameterSet) Fields() [FieldCount]string {
	var out [FieldCount]string
	for i, v := range p.Values() {
		out[i] = formatValue(v)
	}

	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isInteger reports whether v has no fractional part (v mod 1 == 0).
func isInteger(v float64) bool {
	return v == math.Trunc(v)
}

// Domain is an ordered, strictly increasing sequence of x-values that starts
// at minX and ends exactly at maxX.
type Domain []float64

// Segment is one contiguous stroke of a curve. len(X) == len(Y).
type Segment struct {
	X []float64
	Y []float64
}

// Len returns the number of points in the segment.
func (s Segment) Len() int { return len(s.X) }

// Curve is a titled set of segments ready to render. Exponential curves that
// straddle the x=0 singularity have two segments; all others have one.
type Curve struct {
	Title    string
	Segments []Segment
}

// Points returns the total number of samples over all segments.
func (c Curve) Points() int {
	n := 0
	for _, s := range c.Segments {
		n += s.Len()
	}

	return n
}

// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// validate.go — the Validator: five raw field strings in, a ParameterSet out.
//
// Contract:
//   • Rules run in a fixed order and the first failing rule wins.
//   • On failure the caller gets the previous ParameterSet back unchanged,
//     so UI fields roll back in one step. Never a partial application.

package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Correction describes a non-fatal repair the Validator applied.
// It is informational: the corrected set is committed, not rolled back.
type Correction struct {
	Field int
	From  float64
	To    float64
}

// Message is the user-facing notice for the correction.
func (c Correction) Message() string {
	return fmt.Sprintf("%s < 0 for fractional exponents is invalid. Changing %s from %s to %s.",
		FieldNames[c.Field], FieldNames[c.Field], formatValue(c.From), formatValue(c.To))
}

// Validator checks raw parameters against the domain rules.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	cfg validatorConfig
}

// NewValidator returns a Validator with the built-in limits, adjusted by opts.
func NewValidator(opts ...Option) *Validator {
	return &Validator{cfg: newValidatorConfig(opts...)}
}

var defaultValidator = NewValidator()

// Validate runs the default Validator. See (*Validator).Validate.
func Validate(raw [FieldCount]string, current Selection, previous ParameterSet) (ParameterSet, *Correction, error) {
	return defaultValidator.Validate(raw, current, previous)
}

// Validate parses raw and checks it against the rules for current.
//
// On success it returns the new ParameterSet and, when minX had to be
// repaired for a fractional Exponential exponent, a non-nil Correction.
// On failure it returns previous, a nil Correction and a *ValidationError.
//
// Complexity: O(1).
func (v *Validator) Validate(raw [FieldCount]string, current Selection, previous ParameterSet) (ParameterSet, *Correction, error) {
	var vals [FieldCount]float64

	// Rule 1: every field is a finite real number.
	for i, s := range raw {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return previous, nil, &ValidationError{Kind: NotNumeric, Field: i, Value: s}
		}
		vals[i] = f
	}

	p := ParameterSet{
		minX: vals[FieldMinX],
		maxX: vals[FieldMaxX],
		res:  vals[FieldResolution],
		a:    vals[FieldA],
		b:    vals[FieldB],
	}

	// Rules 2-6: ordering, span and resolution bounds.
	if err := v.checkBounds(p); err != nil {
		return previous, nil, err
	}

	if current != ExponentialFunction {
		return p, nil, nil
	}

	// Rule 7: a negative integer exponent needs room on both sides of x=0.
	if p.b < 0 && isInteger(p.b) {
		limit := p.Span() / AsymptoteSpanRatio
		if p.res > limit {
			return previous, nil, &ValidationError{Kind: ResolutionTooLargeForAsymptote, Field: FieldResolution, Limit: limit}
		}
	}

	// Rule 8: x^B with fractional B is complex for x<0; repair, do not reject.
	if !isInteger(p.b) && p.minX < 0 {
		fix := &Correction{Field: FieldMinX, From: p.minX, To: v.cfg.fractionalMinX}
		p.minX = v.cfg.fractionalMinX
		// The repair moves minX, so the ordering and half-span rules are
		// re-checked against the set that would actually be committed.
		if err := v.checkOrderAndHalfSpan(p); err != nil {
			return previous, nil, err
		}
		return p, fix, nil
	}

	return p, nil, nil
}

func (v *Validator) checkBounds(p ParameterSet) error {
	if p.minX > p.maxX {
		return &ValidationError{Kind: MinExceedsMax, Field: FieldMinX}
	}
	if p.minX == p.maxX {
		return &ValidationError{Kind: MinEqualsMax, Field: FieldMinX}
	}
	if p.Span() > v.cfg.maxSpan {
		return &ValidationError{Kind: RangeTooLarge, Field: FieldMaxX, Limit: v.cfg.maxSpan}
	}
	if p.res <= 0 || p.res < v.cfg.minResolution {
		return &ValidationError{Kind: ResolutionTooSmall, Field: FieldResolution, Limit: v.cfg.minResolution}
	}
	if p.res > p.Span()/2 {
		return &ValidationError{Kind: ResolutionTooLarge, Field: FieldResolution, Limit: p.Span() / 2}
	}

	return nil
}

func (v *Validator) checkOrderAndHalfSpan(p ParameterSet) error {
	switch {
	case p.minX > p.maxX:
		return &ValidationError{Kind: MinExceedsMax, Field: FieldMinX}
	case p.minX == p.maxX:
		return &ValidationError{Kind: MinEqualsMax, Field: FieldMinX}
	case p.res > p.Span()/2:
		return &ValidationError{Kind: ResolutionTooLarge, Field: FieldResolution, Limit: p.Span() / 2}
	}

	return nil
}

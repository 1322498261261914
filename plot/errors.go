// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// errors.go — sentinel errors and the ValidationError carrier.
//
// Error policy:
//   • Sentinels are package-level and never formatted at definition site.
//   • Validation failures are *ValidationError values that unwrap to exactly
//     one sentinel, so callers branch with errors.Is and read details with
//     errors.As.
//   • Option constructors panic on meaningless values; the engine itself
//     never panics on user input.

package plot

import (
	"errors"
	"fmt"
)

// Validation sentinels, one per rule, in the order the rules are checked.
var (
	// ErrNotNumeric indicates a field that does not parse as a finite real number.
	ErrNotNumeric = errors.New("plot: value is not a number")

	// ErrMinExceedsMax indicates minX > maxX.
	ErrMinExceedsMax = errors.New("plot: min X is greater than max X")

	// ErrMinEqualsMax indicates minX == maxX.
	ErrMinEqualsMax = errors.New("plot: min X is equal to max X")

	// ErrRangeTooLarge indicates |maxX − minX| above the configured span limit.
	ErrRangeTooLarge = errors.New("plot: X range is too large")

	// ErrResolutionTooSmall indicates a non-positive resolution or one below
	// the configured minimum.
	ErrResolutionTooSmall = errors.New("plot: resolution is negative or too small")

	// ErrResolutionTooLarge indicates resolution > span/2 (fewer than two samples).
	ErrResolutionTooLarge = errors.New("plot: resolution is too large for this range")

	// ErrResolutionTooLargeForAsymptote indicates resolution > span/6.5 for an
	// Exponential with a negative integer exponent; the asymptote split would
	// leave one side without samples.
	ErrResolutionTooLargeForAsymptote = errors.New("plot: resolution is too large to split this range around the asymptote")
)

// Selection sentinels.
var (
	// ErrUnknownFunction indicates a function name outside the dropdown entries.
	ErrUnknownFunction = errors.New("plot: unknown function")

	// ErrNoFunction indicates a render request for the blank selection.
	ErrNoFunction = errors.New("plot: no function selected")
)

// ErrorKind classifies a ValidationError. The zero value is not a valid kind.
type ErrorKind int

const (
	_ ErrorKind = iota
	NotNumeric
	MinExceedsMax
	MinEqualsMax
	RangeTooLarge
	ResolutionTooSmall
	ResolutionTooLarge
	ResolutionTooLargeForAsymptote
)

// String returns a stable snake_case token, used for log attributes and
// metric labels.
func (k ErrorKind) String() string {
	switch k {
	case NotNumeric:
		return "not_numeric"
	case MinExceedsMax:
		return "min_exceeds_max"
	case MinEqualsMax:
		return "min_equals_max"
	case RangeTooLarge:
		return "range_too_large"
	case ResolutionTooSmall:
		return "resolution_too_small"
	case ResolutionTooLarge:
		return "resolution_too_large"
	case ResolutionTooLargeForAsymptote:
		return "resolution_too_large_for_asymptote"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case NotNumeric:
		return ErrNotNumeric
	case MinExceedsMax:
		return ErrMinExceedsMax
	case MinEqualsMax:
		return ErrMinEqualsMax
	case RangeTooLarge:
		return ErrRangeTooLarge
	case ResolutionTooSmall:
		return ErrResolutionTooSmall
	case ResolutionTooLarge:
		return ErrResolutionTooLarge
	case ResolutionTooLargeForAsymptote:
		return ErrResolutionTooLargeForAsymptote
	default:
		return nil
	}
}

// ValidationError reports the first rule a raw parameter set violated.
type ValidationError struct {
	Kind ErrorKind
	// Field is the offending field index (FieldMinX…FieldB).
	Field int
	// Value is the raw offending string for NotNumeric, empty otherwise.
	Value string
	// Limit is the bound that was exceeded, when the rule has one.
	Limit float64
}

func (e *ValidationError) Error() string {
	return "plot: " + e.Reason()
}

// Unwrap exposes the rule sentinel to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind.sentinel()
}

// Reason is the human-readable rule violation, without the package prefix.
func (e *ValidationError) Reason() string {
	switch e.Kind {
	case NotNumeric:
		return fmt.Sprintf("%s: %q is not type int or float", FieldNames[e.Field], e.Value)
	case MinExceedsMax:
		return "min X is greater than max X"
	case MinEqualsMax:
		return "min X is equal to max X"
	case RangeTooLarge:
		return fmt.Sprintf("X range is too large (max %s)", formatValue(e.Limit))
	case ResolutionTooSmall:
		return fmt.Sprintf("negative or too small resolution value (min %s)", formatValue(e.Limit))
	case ResolutionTooLarge:
		return "resolution is too large for this range, must be able to plot two data points within range"
	case ResolutionTooLargeForAsymptote:
		return fmt.Sprintf("resolution is too large for this range, must be at most %s to plot both sides of the asymptote", formatValue(e.Limit))
	default:
		return "invalid parameters"
	}
}

// wrapf attaches formatted context to a sentinel while keeping it visible to
// errors.Is: "<sentinel>: <context>".
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

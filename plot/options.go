// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// options.go — functional options for the Validator.
//
// Contract (strict):
//   • Options are functional (type Option func(*validatorConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     validator itself never panics.
//   • Options may only tighten the built-in limits, so the 10⁶-sample bound
//     on any domain holds for every configuration.
//   • Later options override earlier ones.

package plot

import (
	"fmt"
	"math"
)

// Built-in limits. The asymptote ratio and split margin are not options: the
// ratio is tuned against the margin's index arithmetic (see split.go).
const (
	// DefaultMaxSpan is the largest accepted |maxX − minX|.
	DefaultMaxSpan = 1000.0
	// DefaultMinResolution is the smallest accepted resolution.
	DefaultMinResolution = 0.001
	// DefaultFractionalMinX replaces a negative minX when B is fractional.
	DefaultFractionalMinX = 0.01
	// AsymptoteSpanRatio bounds resolution ≤ span/AsymptoteSpanRatio for
	// Exponential curves with a negative integer exponent.
	AsymptoteSpanRatio = 6.5
	// SplitMargin is the fixed x-distance kept clear on each side of x=0.
	SplitMargin = 0.5
)

// Option customizes a Validator.
type Option func(*validatorConfig)

type validatorConfig struct {
	maxSpan        float64
	minResolution  float64
	fractionalMinX float64
}

func newValidatorConfig(opts ...Option) validatorConfig {
	cfg := validatorConfig{
		maxSpan:        DefaultMaxSpan,
		minResolution:  DefaultMinResolution,
		fractionalMinX: DefaultFractionalMinX,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxSpan lowers the accepted |maxX − minX|. Panics unless 0 < v ≤ 1000.
func WithMaxSpan(v float64) Option {
	if math.IsNaN(v) || v <= 0 || v > DefaultMaxSpan {
		panic(fmt.Sprintf("plot: WithMaxSpan(%v) outside (0,%v]", v, DefaultMaxSpan))
	}
	return func(c *validatorConfig) {
		c.maxSpan = v
	}
}

// WithMinResolution raises the smallest accepted resolution.
// Panics unless v ≥ 0.001 and finite.
func WithMinResolution(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < DefaultMinResolution {
		panic(fmt.Sprintf("plot: WithMinResolution(%v) below %v", v, DefaultMinResolution))
	}
	return func(c *validatorConfig) {
		c.minResolution = v
	}
}

// WithFractionalMinX sets the value a negative minX is repaired to when the
// Exponential exponent is fractional. Panics unless v > 0 and finite.
func WithFractionalMinX(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(fmt.Sprintf("plot: WithFractionalMinX(%v) must be > 0", v))
	}
	return func(c *validatorConfig) {
		c.fractionalMinX = v
	}
}

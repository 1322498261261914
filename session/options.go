// SPDX-License-Identifier: MIT
// Package: graphview/session
//
// options.go — functional options for New.
//
// Option constructors panic on nil arguments; New itself never fails.

package session

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/graphview/plot"
)

// Option customizes a Session.
type Option func(*Session)

// WithShell sets the UI shell that receives session output.
// Default: NopShell.
func WithShell(sh Shell) Option {
	if sh == nil {
		panic("session: WithShell(nil)")
	}
	return func(s *Session) {
		s.shell = sh
	}
}

// WithLogger sets the structured logger. Every record carries the session id.
// Default: discard.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.logger = l
	}
}

// WithMetrics records session activity into m.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("session: WithMetrics(nil)")
	}
	return func(s *Session) {
		s.metrics = m
	}
}

// WithPlotOptions builds the session's Validator from opts.
func WithPlotOptions(opts ...plot.Option) Option {
	v := plot.NewValidator(opts...)
	return func(s *Session) {
		s.validator = v
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

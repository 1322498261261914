// Package graphview plots one-parameter-family curves in the terminal:
// Sine (A·sin(Bx)), Sawtooth (period-3 triangle wave scaled by A, shifted
// by B) and Exponential (A·x^B).
//
// What is inside?
//
//	plot/    — ParameterSet, the ordered validation rules, sampling,
//	           evaluators and the asymptote split (pure, no I/O)
//	session/ — selection + committed parameters, rollback on bad input,
//	           slog logging and Prometheus metrics
//	render/  — ASCII canvas and sample tables for a plot.Curve
//	tui/     — bubbletea shell: function selector, five fields, Apply
//	config/  — YAML config with validator tags and env overrides
//	cmd/graphview — cobra CLI: `plot` (one shot) and `tui`
//
// Quick start:
//
//	p, _, err := plot.Validate([5]string{"-5", "5", "0.5", "2", "1"},
//		plot.SineFunction, plot.DefaultParameters())
//	if err != nil { /* previous parameters are still in p */ }
//	curve, _ := plot.Render(plot.SineFunction, p)
//	fmt.Println(render.NewCanvas(72, 20).Draw(curve))
package graphview

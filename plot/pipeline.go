// SPDX-License-Identifier: MIT
// Package: graphview/plot
//
// pipeline.go — Render: sampling, evaluation and the asymptote split.

package plot

// Render runs the sampling pipeline for sel over p:
// XValues → Evaluate → SplitAsymptote (when NeedsSplit).
//
// NoFunction returns ErrNoFunction; shells clear the plot in that case.
// The result depends on (sel, p) only.
func Render(sel Selection, p ParameterSet) (Curve, error) {
	ev, err := EvaluatorFor(sel)
	if err != nil {
		return Curve{}, err
	}

	xs := XValues(p)
	ys := ev.Evaluate(p, xs)
	title := Title(ev)

	if NeedsSplit(sel, p) {
		neg, pos := SplitAsymptote(p, xs, ys)

		return Curve{Title: title, Segments: []Segment{neg, pos}}, nil
	}

	return Curve{Title: title, Segments: []Segment{{X: xs, Y: ys}}}, nil
}

// RenderWith samples p and evaluates it with ev as a single segment.
// It is the extension point for evaluators outside the built-in families.
func RenderWith(ev Evaluator, p ParameterSet) Curve {
	xs := XValues(p)

	return Curve{Title: Title(ev), Segments: []Segment{{X: xs, Y: ev.Evaluate(p, xs)}}}
}

// Title formats "<Name>: <Label>", e.g. "Sine: Asin(Bx)".
func Title(ev Evaluator) string {
	return ev.Name() + ": " + ev.Label()
}

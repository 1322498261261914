// Package plot is the evaluation engine behind graphview: it turns a function
// selection plus five scalar parameters into one or more renderable (x, y)
// curves.
//
// What lives here:
//
//	• ParameterSet  — validated, immutable {minX, maxX, resolution, A, B}.
//	• Validator     — parses raw field strings and enforces the domain rules
//	                  in a fixed, short-circuit order (first failure wins).
//	• XValues       — the sample domain: minX, minX+res, …, exactly maxX.
//	• Evaluator     — Sine, Sawtooth and Exponential function families.
//	• SplitAsymptote— cuts an Exponential curve with a negative integer
//	                  exponent into two strokes around the singularity at x=0.
//	• Render        — the pipeline tying the above together.
//
// Validation rules (in order):
//
//  1. every field parses as a finite real number;
//  2. minX < maxX (rejecting both minX > maxX and minX == maxX);
//  3. |maxX − minX| ≤ 1000;
//  4. resolution ≥ 0.001;
//  5. resolution ≤ |maxX − minX| / 2, so at least two samples exist;
//  6. Exponential with a negative integer B: resolution ≤ span / 6.5;
//  7. Exponential with a fractional B and minX < 0: minX is repaired to 0.01
//     and the repair is reported as a Correction, not an error.
//
// Together rules 3 and 4 cap a domain at 10⁶+1 samples, so every call here is
// bounded and synchronous. Nothing in this package logs, blocks, or keeps
// state between calls.
//
// Quick start:
//
//	p, _, err := plot.Validate([plot.FieldCount]string{"-5", "5", "0.1", "2", "1"},
//		plot.SawtoothFunction, plot.DefaultParameters())
//	if err != nil {
//		// errors.Is(err, plot.ErrResolutionTooLarge) etc.
//	}
//	curve, _ := plot.Render(plot.SawtoothFunction, p)
//	fmt.Println(curve.Title, len(curve.Segments[0].X))
package plot

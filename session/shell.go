package session

import (
	"github.com/katalvlaran/graphview/plot"
)

// Shell is the UI side of a session. Implementations only display what they
// are given; they hold no plotting logic.
type Shell interface {
	// RenderCurve replaces the plot with c (one or two strokes).
	RenderCurve(c plot.Curve)
	// Clear empties the plot (blank function selection).
	Clear()
	// ShowError reports a rejected submission. The session has already
	// rolled back when this is called.
	ShowError(msg string)
	// ShowNotice reports an informational correction that was committed.
	ShowNotice(msg string)
	// RestoreFields re-displays the committed parameters.
	RestoreFields(fields [plot.FieldCount]string)
}

// NopShell discards every event.
type NopShell struct{}

func (NopShell) RenderCurve(plot.Curve)                {}
func (NopShell) Clear()                                {}
func (NopShell) ShowError(string)                      {}
func (NopShell) ShowNotice(string)                     {}
func (NopShell) RestoreFields([plot.FieldCount]string) {}

// EventKind tags a Recorder event.
type EventKind int

const (
	EventRender EventKind = iota
	EventClear
	EventError
	EventNotice
	EventRestore
)

func (k EventKind) String() string {
	switch k {
	case EventRender:
		return "render"
	case EventClear:
		return "clear"
	case EventError:
		return "error"
	case EventNotice:
		return "notice"
	case EventRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Event is one Shell call captured by a Recorder.
type Event struct {
	Kind    EventKind
	Curve   plot.Curve
	Message string
	Fields  [plot.FieldCount]string
}

// Recorder is a Shell that queues every call in order. Event-loop shells
// (bubbletea) use it to apply session output to their own model after each
// call; tests use it to assert on the exact event sequence.
//
// A Recorder is not safe for concurrent use on its own; the Session lock
// covers the writes, and Drain must be called from the goroutine that
// drives the Session.
type Recorder struct {
	events []Event
}

func (r *Recorder) RenderCurve(c plot.Curve) {
	r.events = append(r.events, Event{Kind: EventRender, Curve: c})
}

func (r *Recorder) Clear() {
	r.events = append(r.events, Event{Kind: EventClear})
}

func (r *Recorder) ShowError(msg string) {
	r.events = append(r.events, Event{Kind: EventError, Message: msg})
}

func (r *Recorder) ShowNotice(msg string) {
	r.events = append(r.events, Event{Kind: EventNotice, Message: msg})
}

func (r *Recorder) RestoreFields(fields [plot.FieldCount]string) {
	r.events = append(r.events, Event{Kind: EventRestore, Fields: fields})
}

// Drain returns the queued events and empties the queue.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil

	return out
}

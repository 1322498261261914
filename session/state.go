package session

import "github.com/katalvlaran/graphview/plot"

// State is the session lifecycle position.
type State int

const (
	// Idle: no function selected.
	Idle State = iota
	// Selected: a function is selected and parameters are at defaults.
	Selected
	// Committed: the last submission validated and was committed.
	Committed
	// Erroring: a submission failed; only observable from Shell callbacks
	// during rollback.
	Erroring
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selected:
		return "selected"
	case Committed:
		return "committed"
	case Erroring:
		return "erroring"
	default:
		return "unknown"
	}
}

// Outcome is what a session operation asked the shell to display.
type Outcome struct {
	// Curve is the rendered curve; zero when Cleared.
	Curve plot.Curve
	// Cleared reports that the plot was emptied (no function selected).
	Cleared bool
	// Correction is the repair applied during validation, if any.
	Correction *plot.Correction
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	Selection  plot.Selection
	State      State
	Parameters plot.ParameterSet
	Fields     [plot.FieldCount]string
}

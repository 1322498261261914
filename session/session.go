package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/graphview/plot"
)

// Session owns the current selection and the committed parameters of one
// plotting session. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	validator *plot.Validator
	shell     Shell
	logger    *slog.Logger
	metrics   *Metrics

	current   plot.Selection
	committed plot.ParameterSet
	state     State
}

// New returns an Idle session with default parameters.
func New(opts ...Option) *Session {
	s := &Session{
		id:        uuid.New(),
		validator: plot.NewValidator(),
		shell:     NopShell{},
		logger:    discardLogger(),
		current:   plot.NoFunction,
		committed: plot.DefaultParameters(),
		state:     Idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session_id", s.id.String()))

	return s
}

// ID returns the session identifier attached to every log record.
func (s *Session) ID() uuid.UUID { return s.id }

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Selection:  s.current,
		State:      s.state,
		Parameters: s.committed,
		Fields:     s.committed.Fields(),
	}
}

// SelectFunction switches the plotted function by display name ("" for none).
//
// Choosing a different function resets the parameters to their defaults;
// re-choosing the current one keeps them. Either way the shell fields are
// restored and the plot is redrawn (or cleared for the blank entry).
// An unknown name returns an error wrapping plot.ErrUnknownFunction and
// leaves the session untouched.
func (s *Session) SelectFunction(name string) (Outcome, error) {
	sel, err := plot.ParseSelection(name)
	if err != nil {
		return Outcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.observeSelection(sel)

	if sel != s.current {
		s.logger.Info("function selected",
			slog.String("from", s.current.String()),
			slog.String("to", sel.String()))
		s.current = sel
		s.committed = plot.DefaultParameters()
		if sel == plot.NoFunction {
			s.state = Idle
		} else {
			s.state = Selected
		}
	}

	s.shell.RestoreFields(s.committed.Fields())

	return s.redraw(nil)
}

// ApplyParameters validates raw against the current selection.
//
// On success the new set is committed, a repair (if any) is reported with
// ShowNotice, the fields are restored to the committed values and the plot
// is redrawn. On failure the committed set is kept, the shell gets
// ShowError followed by RestoreFields(committed), and the *plot.ValidationError
// is returned.
func (s *Session) ApplyParameters(raw [plot.FieldCount]string) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, fix, err := s.validator.Validate(raw, s.current, s.committed)
	if err != nil {
		s.rollback(err)

		return Outcome{}, err
	}

	s.committed = p
	if s.current != plot.NoFunction {
		s.state = Committed
	}

	if fix != nil {
		s.metrics.observeValidation(resultCorrected, "")
		s.logger.Info("parameters corrected",
			slog.String("field", plot.FieldNames[fix.Field]),
			slog.Float64("from", fix.From),
			slog.Float64("to", fix.To))
		s.shell.ShowNotice(fix.Message())
	} else {
		s.metrics.observeValidation(resultOK, "")
	}

	s.shell.RestoreFields(p.Fields())

	return s.redraw(fix)
}

// rollback runs the Erroring transition. The committed set is untouched;
// the state is restored once the shell has been told.
func (s *Session) rollback(err error) {
	prev := s.state
	s.state = Erroring

	kind, field := "", ""
	var verr *plot.ValidationError
	if errors.As(err, &verr) {
		kind = verr.Kind.String()
		field = plot.FieldNames[verr.Field]
	}
	s.metrics.observeValidation(resultRejected, kind)
	s.logger.Warn("parameters rejected",
		slog.String("kind", kind),
		slog.String("field", field),
		slog.String("function", s.current.String()))

	s.shell.ShowError(ErrorMessage(err))
	s.shell.RestoreFields(s.committed.Fields())

	s.state = prev
}

// redraw runs the pipeline for the current (selection, committed) pair.
// Caller holds s.mu.
func (s *Session) redraw(fix *plot.Correction) (Outcome, error) {
	if s.current == plot.NoFunction {
		s.shell.Clear()

		return Outcome{Cleared: true, Correction: fix}, nil
	}

	start := time.Now()
	c, err := plot.Render(s.current, s.committed)
	if err != nil {
		return Outcome{}, err
	}
	took := time.Since(start)

	s.metrics.observeRender(s.current, c.Points(), took)
	s.logger.Debug("curve rendered",
		slog.String("function", s.current.String()),
		slog.Int("points", c.Points()),
		slog.Int("segments", len(c.Segments)),
		slog.Duration("duration", took))

	s.shell.RenderCurve(c)

	return Outcome{Curve: c, Correction: fix}, nil
}

// ErrorMessage formats err as the message shown to the user after a
// rejected submission.
func ErrorMessage(err error) string {
	reason := err.Error()
	var verr *plot.ValidationError
	if errors.As(err, &verr) {
		reason = verr.Reason()
	}

	return fmt.Sprintf("Error: %s. Returning to previous parameters.", reason)
}

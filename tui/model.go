// Package tui is the interactive terminal shell for graphview.
//
// The Model owns a session.Session and a session.Recorder. Every key that
// reaches the session (function change, Apply) is followed by draining the
// recorder into the view state, so the session remains the only place
// where parameters are validated, committed and rolled back.
//
// # Thread Safety
//
// Model is used from the single bubbletea event loop and is not safe for
// use from other goroutines.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/graphview/plot"
	"github.com/katalvlaran/graphview/render"
	"github.com/katalvlaran/graphview/session"
)

// Focus order: selector, the five fields, Apply.
const (
	focusSelector = 0
	focusApply    = plot.FieldCount + 1
	focusCount    = plot.FieldCount + 2
)

const (
	fieldWidth     = 10
	fieldCharLimit = 32
	blankLabel     = "(none)"
)

// Model is the bubbletea model for one plotting session.
type Model struct {
	session *session.Session
	rec     *session.Recorder
	canvas  *render.Canvas
	maxW    int
	maxH    int

	funcIdx int
	inputs  [plot.FieldCount]textinput.Model
	focus   int

	curve   *plot.Curve
	chart   string
	notice  string
	modal   string
	lastErr error

	quitting bool
}

// New builds a Model drawing into canvas. opts configure the underlying
// session; WithShell is overridden by the model's own recorder.
func New(canvas *render.Canvas, opts ...session.Option) Model {
	rec := &session.Recorder{}
	opts = append(append([]session.Option(nil), opts...), session.WithShell(rec))
	s := session.New(opts...)

	w, h := canvas.Size()
	m := Model{
		session: s,
		rec:     rec,
		canvas:  canvas,
		maxW:    w,
		maxH:    h,
	}

	fields := s.Snapshot().Fields
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = plot.FieldNames[i] + ": "
		ti.CharLimit = fieldCharLimit
		ti.Width = fieldWidth
		ti.SetValue(fields[i])
		m.inputs[i] = ti
	}
	m.setFocus(focusSelector)

	return m
}

// Session exposes the underlying session (read-only use: Snapshot, ID).
func (m Model) Session() *session.Session { return m.session }

// Err returns the last rejected submission, if any.
func (m Model) Err() error { return m.lastErr }

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		// The error box swallows the key that dismisses it.
		if m.modal != "" {
			m.modal = ""
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab", "down":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	if m.focus == focusSelector {
		switch msg.String() {
		case "left", "h":
			m.cycleFunction(-1)
		case "right", "l", " ":
			m.cycleFunction(1)
		case "enter":
			m.selectFunction()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		m.apply()
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	i := m.focus - 1
	if i < 0 || i >= plot.FieldCount {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)

	return m, cmd
}

func (m *Model) setFocus(f int) {
	m.focus = f
	for i := range m.inputs {
		if i == f-1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *Model) cycleFunction(step int) {
	n := len(plot.Selections)
	m.funcIdx = (m.funcIdx + step + n) % n
	m.selectFunction()
}

func (m *Model) selectFunction() {
	m.notice = ""
	if _, err := m.session.SelectFunction(plot.Selections[m.funcIdx].String()); err != nil {
		m.modal = err.Error()
	}
	m.drain()
}

func (m *Model) apply() {
	var raw [plot.FieldCount]string
	for i := range m.inputs {
		raw[i] = m.inputs[i].Value()
	}
	m.notice = ""
	_, m.lastErr = m.session.ApplyParameters(raw)
	m.drain()
}

// drain applies the recorder's events to the view state, in order.
func (m *Model) drain() {
	for _, ev := range m.rec.Drain() {
		switch ev.Kind {
		case session.EventRender:
			c := ev.Curve
			m.curve = &c
			m.chart = m.canvas.Draw(c)
		case session.EventClear:
			m.curve = nil
			m.chart = ""
		case session.EventError:
			m.modal = ev.Message
		case session.EventNotice:
			m.notice = ev.Message
		case session.EventRestore:
			for i := range m.inputs {
				m.inputs[i].SetValue(ev.Fields[i])
			}
		}
	}
}

// resize fits the canvas into the terminal, never above the configured
// size, and redraws the last curve.
func (m *Model) resize(width, height int) {
	w := min(m.maxW, max(render.MinWidth, width-4))
	h := min(m.maxH, max(render.MinHeight, height-16))
	if cw, ch := m.canvas.Size(); cw == w && ch == h {
		return
	}
	m.canvas = render.NewCanvas(w, h)
	if m.curve != nil {
		m.chart = m.canvas.Draw(*m.curve)
	}
}

// View renders the form, the chart and any pending error box.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("graphview"))
	b.WriteString("\n\n")

	name := plot.Selections[m.funcIdx].String()
	if name == "" {
		name = blankLabel
	}
	sel := selectorStyle
	if m.focus == focusSelector {
		sel = selectorFocusedStyle
	}
	b.WriteString(labelStyle.Render("Function:"))
	b.WriteString(sel.Render("‹ " + name + " ›"))
	b.WriteString("\n")

	fields := make([]string, 0, plot.FieldCount)
	for i := range m.inputs {
		fields = append(fields, m.inputs[i].View())
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(fields)...))
	b.WriteString("\n")

	btn := buttonStyle
	if m.focus == focusApply {
		btn = buttonFocusedStyle
	}
	b.WriteString(btn.Render("Apply"))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.modal != "" {
		b.WriteString(modalStyle.Render(m.modal + "\n\npress any key"))
		b.WriteString("\n")
	} else if m.chart != "" {
		b.WriteString(chartStyle.Render(m.chart))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/↑↓ focus • ←/→ function • enter apply • esc quit"))

	return b.String()
}

func spaced(cols []string) []string {
	out := make([]string, 0, 2*len(cols))
	for i, c := range cols {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}

	return out
}

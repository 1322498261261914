package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/graphview/plot"
)

// cliShell is the one-shot session shell. Curves and fields are kept for
// the command to print once; errors and notices go straight to errOut.
type cliShell struct {
	errOut io.Writer
	styled bool

	curve   *plot.Curve
	cleared bool
	fields  [plot.FieldCount]string
}

var (
	cliErrorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	cliNoticeStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
	cliTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

func newCLIShell(errOut io.Writer) *cliShell {
	return &cliShell{errOut: errOut, styled: isTerminal(errOut)}
}

// isTerminal reports whether w is a terminal; styling is dropped otherwise
// so piped output stays plain.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && fileIsTerminal(f)
}

func isReaderTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)

	return ok && fileIsTerminal(f)
}

func fileIsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *cliShell) style(st lipgloss.Style, msg string) string {
	if !s.styled {
		return msg
	}

	return st.Render(msg)
}

func (s *cliShell) RenderCurve(c plot.Curve) {
	s.curve, s.cleared = &c, false
}

func (s *cliShell) Clear() {
	s.curve, s.cleared = nil, true
}

func (s *cliShell) ShowError(msg string) {
	fmt.Fprintln(s.errOut, s.style(cliErrorStyle, msg))
}

func (s *cliShell) ShowNotice(msg string) {
	fmt.Fprintln(s.errOut, s.style(cliNoticeStyle, msg))
}

func (s *cliShell) RestoreFields(fields [plot.FieldCount]string) {
	s.fields = fields
}

// fieldsLine formats the held fields as "Min X=-10 Max X=10 ...".
func (s *cliShell) fieldsLine() string {
	parts := make([]string, plot.FieldCount)
	for i, v := range s.fields {
		parts[i] = plot.FieldNames[i] + "=" + v
	}

	return strings.Join(parts, " ")
}

package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphview/render"
	"github.com/katalvlaran/graphview/tui"
)

const tuiCmdName = "tui"

var errNoTerminal = errors.New("tui needs an interactive terminal")

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   tuiCmdName,
		Short: "Open the interactive plotter",
		Args:  cobra.NoArgs,
		RunE: a.withTeardown(func(cmd *cobra.Command, _ []string) error {
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			if !isReaderTerminal(in) || !isTerminal(out) {
				return errNoTerminal
			}

			canvas := render.NewCanvas(a.cfg.View.Width, a.cfg.View.Height)
			m := tui.New(canvas, a.sessionOptions()...)
			a.logger.Info("tui started", "session_id", m.Session().ID().String())

			if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out)).Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}

			return nil
		}),
	}
}

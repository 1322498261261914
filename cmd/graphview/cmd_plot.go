package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphview/plot"
	"github.com/katalvlaran/graphview/render"
	"github.com/katalvlaran/graphview/session"
)

// Flag names, in plot.Field order.
var fieldFlags = [plot.FieldCount]string{"min-x", "max-x", "resolution", "a", "b"}

type plotFlags struct {
	function string
	format   string
	rows     int
	fields   [plot.FieldCount]string
}

func newPlotCmd(a *app) *cobra.Command {
	f := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Validate parameters and print one curve",
		Example: `  graphview plot --function Sine --min-x=-5 --max-x=5 --a 2
  graphview plot --function Exponential --b=-1 --resolution 0.5 --format table`,
		Args: cobra.NoArgs,
		RunE: a.withTeardown(func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, a, f)
		}),
	}

	cmd.Flags().StringVar(&f.function, "function", "", "function to plot: "+functionNames())
	cmd.Flags().StringVar(&f.format, "format", "", "output format: chart or table (default from config)")
	cmd.Flags().IntVar(&f.rows, "rows", render.DefaultTableRows, "maximum rows for --format table")
	defaults := plot.DefaultParameters().Fields()
	for i, name := range fieldFlags {
		cmd.Flags().StringVar(&f.fields[i], name, defaults[i], plot.FieldNames[i])
	}
	_ = cmd.MarkFlagRequired("function")

	return cmd
}

func functionNames() string {
	names := make([]string, 0, len(plot.Selections))
	for _, s := range plot.Selections {
		if s != plot.NoFunction {
			names = append(names, s.String())
		}
	}

	return strings.Join(names, ", ")
}

func runPlot(cmd *cobra.Command, a *app, f *plotFlags) error {
	format := a.cfg.View.Format
	if cmd.Flags().Changed("format") {
		format = f.format
	}
	if format != "chart" && format != "table" {
		return fmt.Errorf("unknown --format %q (want chart or table)", format)
	}

	sh := newCLIShell(cmd.ErrOrStderr())
	s := session.New(append(a.sessionOptions(), session.WithShell(sh))...)

	if _, err := s.SelectFunction(f.function); err != nil {
		return err
	}

	// Flags left unset keep the values the selection restored.
	raw := s.Snapshot().Fields
	for i, name := range fieldFlags {
		if cmd.Flags().Changed(name) {
			raw[i] = f.fields[i]
		}
	}

	out := cmd.OutOrStdout()
	if _, err := s.ApplyParameters(raw); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "kept:", sh.fieldsLine())
		return errReported
	}

	if sh.cleared || sh.curve == nil {
		fmt.Fprintln(out, "(no function selected)")
		return nil
	}

	if format == "table" {
		fmt.Fprintln(out, render.Table(*sh.curve, f.rows))
		return nil
	}
	chart := render.NewCanvas(a.cfg.View.Width, a.cfg.View.Height).Draw(*sh.curve)
	title, body, _ := strings.Cut(chart, "\n")
	if isTerminal(out) {
		title = cliTitleStyle.Render(title)
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, body)

	return nil
}

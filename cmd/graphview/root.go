package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphview/config"
	"github.com/katalvlaran/graphview/session"
)

// errReported marks failures the command already explained on stderr.
var errReported = errors.New("graphview: reported")

// app carries what PersistentPreRunE prepares for the subcommands. Each
// subcommand's RunE is wrapped by withTeardown, which releases it again.
type app struct {
	configPath string
	logLevel   string
	metrics    bool

	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
	registry  *prometheus.Registry
	sessionM  *session.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "graphview",
		Short: "Plot Sine, Sawtooth and Exponential curves in the terminal",
		Long: `graphview validates five curve parameters (Min X, Max X, Res X, A, B),
samples the selected function and draws it as an ASCII chart.

Invalid parameters are rejected and the previous values are kept.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(newPlotCmd(a))
	root.AddCommand(newTUICmd(a))

	return root
}

// setup loads the config, applies flag overrides and builds the logger and
// metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics.Enabled = a.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	w, err := a.logWriter(cmd)
	if err != nil {
		return err
	}
	a.logger = cfg.Log.NewLogger(w)

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.sessionM = session.NewMetrics(a.registry)
	}

	return nil
}

// logWriter picks the log destination: the configured file, else stderr for
// one-shot commands. The TUI owns the screen, so without a file it discards.
func (a *app) logWriter(cmd *cobra.Command) (io.Writer, error) {
	if a.cfg.Log.File != "" {
		f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.logCloser = f
		return f, nil
	}
	if cmd.Name() == tuiCmdName {
		return io.Discard, nil
	}

	return cmd.ErrOrStderr(), nil
}

// withTeardown runs teardown after run, also when run fails; cobra skips
// PersistentPostRunE in that case.
func (a *app) withTeardown(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if terr := a.teardown(cmd.ErrOrStderr()); err == nil {
				err = terr
			}
		}()

		return run(cmd, args)
	}
}

// teardown dumps metrics when enabled and closes the log file. Safe to call
// more than once.
func (a *app) teardown(w io.Writer) error {
	if a.registry != nil {
		if err := writeMetrics(w, a.registry); err != nil {
			return err
		}
		a.registry = nil
	}
	if a.logCloser != nil {
		c := a.logCloser
		a.logCloser = nil
		return c.Close()
	}

	return nil
}

// sessionOptions wires config, logger and metrics into a session.
func (a *app) sessionOptions() []session.Option {
	opts := []session.Option{
		session.WithLogger(a.logger),
		session.WithPlotOptions(a.cfg.PlotOptions()...),
	}
	if a.sessionM != nil {
		opts = append(opts, session.WithMetrics(a.sessionM))
	}

	return opts
}

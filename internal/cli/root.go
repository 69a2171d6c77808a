// Package cli implements the cefgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/telhawk-systems/telhawk-cef/internal/config"
	"github.com/telhawk-systems/telhawk-cef/internal/logging"
	"github.com/telhawk-systems/telhawk-cef/internal/metrics"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

const version = "0.1.0"

type app struct {
	cfgFile  string
	logLevel string

	cfg        *config.Config
	log        *logging.Logger
	serializer cef.Serializer[string]
	out        *output
}

// Execute runs cefgen with the process arguments and returns its exit code.
func Execute(ctx context.Context) int {
	return run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{out: newOutput(stderr), log: logging.Default()}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if werr := a.writeMetrics(); werr != nil {
		err = errors.Join(err, werr)
	}
	if err != nil {
		a.out.Error("%v", err)
		return 1
	}
	return 0
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cefgen",
		Short: "ArcSight CEF event composer",
		Long: `cefgen composes ArcSight Common Event Format (CEF) lines.

Events are described in YAML files or generated synthetically, validated,
escaped and printed one line per event on stdout. Logs go to stderr.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./cefgen.yaml, /etc/telhawk/cef/cefgen.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		a.renderCommand(),
		a.sampleCommand(),
		a.escapeCommand(),
		a.severityCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg

	a.log = logging.New(cmd.ErrOrStderr(), logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	logging.SetDefault(a.log)
	a.serializer = metrics.NewSerializer(cef.StdSerializer{})

	cmd.SetContext(logging.ContextWithRunID(cmd.Context(), uuid.NewString()))
	a.log.DebugContext(cmd.Context(), "configuration loaded",
		"command", cmd.Name(),
		"config_file", a.cfgFile,
	)
	return nil
}

func (a *app) writeMetrics() error {
	if a.cfg == nil || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	a.log.Debug("metrics written", logging.File(a.cfg.Metrics.Textfile))
	return nil
}

// emit serializes events to w and returns how many lines were written.
func (a *app) emit(ctx context.Context, w io.Writer, events []*cef.Event) (int, error) {
	for i, e := range events {
		line, err := a.serializer.Serialize(e)
		if err != nil {
			a.log.ErrorContext(ctx, "serialization failed", logging.EventID(e.ID()), logging.Error(err))
			return i, err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return i, fmt.Errorf("write: %w", err)
		}
		a.log.DebugContext(ctx, "event serialized", logging.Event(e)...)
	}
	return len(events), nil
}

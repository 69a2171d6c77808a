package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/telhawk-systems/telhawk-cef/internal/eventfile"
	"github.com/telhawk-systems/telhawk-cef/internal/logging"
	"github.com/telhawk-systems/telhawk-cef/internal/metrics"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

func (a *app) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <file>...",
		Short: "Render YAML event files as CEF lines",
		Long: `Decode one or more YAML event files and print one CEF line per event.

Events without a device use cef.device from the configuration. Use "-" to
read from stdin.

Example file:
  events:
    - id: some_event
      name: This event has been occurred
      severity: 10
      extension:
        ip: 10.91.161.67
        source: my_server`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.render,
	}
}

func (a *app) render(cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()

	device, err := a.cfg.CEF.Device.Device()
	if err != nil {
		return err
	}
	defaults := eventfile.Defaults{Version: a.cfg.CEF.Version, Device: &device}

	total := 0
	for _, path := range files {
		log := a.log.With(logging.File(path))

		events, err := a.decodeFile(cmd, path, defaults)
		if err != nil {
			if errors.Is(err, cef.ErrInvalidEvent) {
				field := metrics.FieldOf(err)
				metrics.EventsRejected.WithLabelValues(field).Inc()
				log.WarnContext(ctx, "event rejected", "field", field)
			}
			return fmt.Errorf("%s: %w", path, err)
		}
		if len(events) == 0 {
			a.out.Warn("%s: no events", path)
			continue
		}

		n, err := a.emit(ctx, cmd.OutOrStdout(), events)
		total += n
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.DebugContext(ctx, "file rendered", logging.Count(n))
	}

	a.log.InfoContext(ctx, "render complete", logging.Count(total))
	return nil
}

func (a *app) decodeFile(cmd *cobra.Command, path string, defaults eventfile.Defaults) ([]*cef.Event, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return eventfile.Decode(r, defaults)
}

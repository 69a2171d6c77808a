package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telhawk-systems/telhawk-cef/internal/config"
	"github.com/telhawk-systems/telhawk-cef/internal/logging"
	"github.com/telhawk-systems/telhawk-cef/internal/seeder"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

func (a *app) sampleCommand() *cobra.Command {
	var (
		count int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print synthetic security events",
		Long: `Generate realistic security events (auth failures, port scans, malware
detections, configuration changes) stamped with cef.device from the
configuration. The same non-zero seed always prints the same events.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Sample.Count
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Sample.Seed
			}
			return a.sample(cmd, count, seed)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of events (default sample.count)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for a random sequence (default sample.seed)")
	return cmd
}

func (a *app) sample(cmd *cobra.Command, count int, seed int64) error {
	if count < 1 || count > config.MaxSampleCount {
		return fmt.Errorf("count must be between 1 and %d, got %d", config.MaxSampleCount, count)
	}

	device, err := a.cfg.CEF.Device.Device()
	if err != nil {
		return err
	}

	s := seeder.New(device, seed)
	for i := 0; i < count; i++ {
		event, err := s.Next()
		if err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		if _, err := a.emit(cmd.Context(), cmd.OutOrStdout(), []*cef.Event{event}); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	a.log.InfoContext(cmd.Context(), "sample complete", logging.Count(count), "seed", seed, logging.Device(device))
	return nil
}

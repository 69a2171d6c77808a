package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

func (a *app) severityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "severity <n>",
		Short: "Print the level label for a severity",
		Long: `Print the level label for a CEF severity:
0-3 Low, 4-6 Medium, 7-8 High, 9-10 Very-High.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("severity must be an integer: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cef.SeverityLevel(n))
			return err
		},
	}
}

package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/telhawk-systems/telhawk-cef/pkg/cef"
)

var escapers = map[string]func(string) (string, error){
	"field": cef.EscapeField,
	"key":   cef.EscapeExtensionKey,
	"value": cef.EscapeExtensionValue,
}

func (a *app) escapeCommand() *cobra.Command {
	var escapeContext string

	cmd := &cobra.Command{
		Use:   "escape <text>",
		Short: "Escape text for one CEF context",
		Long: `Escape text the way the composer does for one context:

  field  prefix fields (vendor, product, version, id, name)
  key    extension keys
  value  extension values`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			escape, ok := escapers[escapeContext]
			if !ok {
				return fmt.Errorf("unknown context %q (want %s)", escapeContext, strings.Join(contexts(), ", "))
			}

			escaped, err := escape(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), escaped)
			return err
		},
	}

	cmd.Flags().StringVar(&escapeContext, "context", "value", "escaping context: "+strings.Join(contexts(), ", "))
	return cmd
}

func contexts() []string {
	names := make([]string, 0, len(escapers))
	for name := range escapers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

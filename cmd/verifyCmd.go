package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate configuration and the probes file without connecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if err := c.validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if c.Target != "" {
			if err := c.validateConnection(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
		}
		probes, err := probesFor(c)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration OK (%d probes)\n", len(probes))
		return nil
	},
}

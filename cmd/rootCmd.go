package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "runner-check",
	Short: "Check a CI runner agent on a remote host over SSH",
	Long: "Connects to one remote host over SSH, runs a fixed sequence of read-only probes covering the CI " +
		"runner agent, its logs and build artifacts, prints each result and disconnects.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		setupLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if err := c.validate(); err != nil {
			return err
		}
		probes, err := probesFor(c)
		if err != nil {
			return err
		}
		if c.Noop {
			return writePlan(cmd.OutOrStdout(), probes)
		}
		if err := c.validateConnection(); err != nil {
			return err
		}
		return diagnose(cmd.OutOrStdout(), c, probes)
	},
}

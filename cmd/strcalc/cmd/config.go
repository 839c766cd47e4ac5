package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspects the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the configuration after file and environment overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.cfg.Encode(cmd.OutOrStdout(), configFormat)
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Loads and validates the configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// setup already failed for an invalid configuration
		fmt.Fprintln(cmd.OutOrStdout(), "configuration ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format: toml, yaml")
}

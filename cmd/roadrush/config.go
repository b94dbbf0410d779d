package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roadrush/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in default configuration as YAML.

Save it to ~/.roadrush/config.yaml or ./configs/roadrush.yaml and edit it;
fields left out of a custom file keep their default values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), string(config.GetDefaultYAML()))
		return err
	},
}

package main

import (
	"github.com/Carmen-Shannon/orbitrig/config"
	"github.com/spf13/cobra"
)

var effectiveConfig bool

// configCmd prints configuration as YAML
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration as YAML",
	Long: `Prints the default configuration, ready to be saved as orbitrig.yaml.
With --effective, prints the configuration after loading the file and environment overrides.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config.DefaultConfig()
		if effectiveConfig {
			c = cfg
		}
		data, err := c.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().BoolVar(&effectiveConfig, "effective", false, "Print the loaded configuration instead of the defaults")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-blackbox/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying the config file, environment
and flags. With --default, prints the built-in config file, ready to be
copied to ~/.blackbox/configs/blackbox.yaml.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := yaml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

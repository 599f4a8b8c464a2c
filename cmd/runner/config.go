package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the runner configuration as YAML after applying --config and
--difficulty. Redirect it to ~/.lanerunner/configs/runner.yaml to customize.

Examples:
  runner config
  runner config --difficulty hard
  runner config --defaults > runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults verbatim")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration play and sim would use, as YAML, after the
config file, --difficulty and flag overrides are applied.

Config search order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --difficulty easy
  snake config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefaults bool

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file, ignoring overrides")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}
	cfg, err := effectiveConfig(globalSettings())
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

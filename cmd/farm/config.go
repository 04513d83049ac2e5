package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/registry"
)

var (
	flagDumpConfig string
	flagDumpLevel  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect farm configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump <variant>",
	Short: "Print the effective YAML config of a variant",
	Long: `Print the config a run of the variant would use, after the search path
and the difficulty preset are applied. The output is a valid config file:
save it to ~/.farm/configs/<variant>.yaml to customise the variant.

Examples:
  farm config dump farm
  farm config dump farm_classic --difficulty hard > classic-hard.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagDumpConfig, "config", "", "Path to custom farm config YAML")
	configDumpCmd.Flags().StringVar(&flagDumpLevel, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, args []string) error {
	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q", variant)
	}

	cfg, err := config.LoadFarm(variant, flagDumpConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDumpLevel)
	if err != nil {
		return err
	}
	if flagDumpLevel != "" {
		cfg = config.ApplyFarmPreset(cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/platform/tui"
	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a farm variant",
	Long: `Start a run of the specified variant.

Controls:
  Arrows/WASD  - Move the cursor
  Space/Enter  - Use the selected tool
  Z / X / C    - Plant / Harvest / Cure tool
  1-4          - Pick a crop (switches to the plant tool)
  Tab          - Toggle HP and growth bars
  P            - Pause
  R            - Restart
  ?            - All keys
  Esc/B        - Back to the difficulty picker
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More money, slower and weaker plague
  normal - The variant as configured
  hard   - Less money, faster and hungrier plague

Without --difficulty a picker is shown before the run.

Examples:
  farm play farm
  farm play farm --difficulty easy
  farm play farm_classic --difficulty hard
  farm play farm --config ./my-farm.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'farm list' to see available variants.")
		os.Exit(1)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the farm still works
		store = nil
	}

	for {
		back, playErr := playVariant(gameID, store, cfg)
		if playErr != nil {
			if store != nil {
				store.Close()
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", playErr)
			os.Exit(1)
		}
		// Back from a run returns to the picker; with a fixed difficulty
		// there is nothing to go back to.
		if !back || flagDifficulty != "" {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}

// runtimeConfig builds the runtime config from the terminal and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playVariant asks for a difficulty when none was given on the command line,
// then runs the variant. It reports whether the player went back, either
// from the picker or from the run.
func playVariant(gameID string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	difficulty := flagDifficulty
	if difficulty == "" {
		base, err := config.LoadFarm(gameID, flagConfig)
		if err != nil {
			return false, err
		}
		preset, err := tui.RunDifficultySelector(gameID, base, cfg)
		if err != nil {
			return false, err
		}
		if preset == "" {
			return false, nil
		}
		difficulty = string(preset)
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: difficulty,
	})
	if err != nil {
		return false, fmt.Errorf("creating farm: %w", err)
	}

	back, err := tui.Run(game, store, cfg)
	if err != nil {
		return false, fmt.Errorf("running farm: %w", err)
	}
	return back, nil
}

// farm is a terminal farm-defence game: grow crops while a cooperating
// plague tries to eat them.
//
// Usage:
//
//	farm list                 - List farm variants
//	farm play <variant>       - Play a variant
//	farm menu                 - Pick variants interactively
//	farm sim <script>         - Run a command script headlessly
//	farm serve                - Start SSH server for remote play
//	farm scores <variant>     - Show the best runs of a variant
//	farm config dump <variant> - Print the effective YAML config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.farm/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the farm variants
	_ "github.com/vovakirdan/tui-farm/internal/games/farmer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farm",
	Short: "Farmer vs. Plague - defend your crops in the terminal",
	Long: `Farmer vs. Plague is a terminal farm game. Plant crops, harvest them
for profit and cure the plague before it eats the whole field.
Plagues on neighbouring plots cooperate and eat faster together.

Available commands:
  list     - Show all farm variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Run a command script without a terminal UI
  serve    - Start SSH server for remote play
  scores   - View the best runs
  config   - Inspect variant configuration

Examples:
  farm list
  farm play farm
  farm play farm_classic --difficulty hard
  farm sim ./scenarios/opening.farm --seed 7
  farm serve --ssh :2222
  farm scores farm`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.farm/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

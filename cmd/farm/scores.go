package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-farm/internal/registry"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show the best runs of a variant",
	Long: `Display the best runs for the specified variant, ranked by crops
harvested and then by money left.

Examples:
  farm scores farm
  farm scores farm_classic --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'farm list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'farm play %s' to record the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-4s  %-6s  %-6s  %s\n",
		"Rank", "Crops", "Money", "Cured", "Lost", "Time", "Level", "Date")
	fmt.Printf("  %-4s  %-5s  %-6s  %-5s  %-4s  %-6s  %-6s  %s\n",
		"----", "-----", "-----", "-----", "----", "----", "-----", "----")

	for i, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-5d  %-6d  %-5d  %-4d  %-6s  %-6s  %s\n",
			i+1, r.Harvested, r.Money, r.Eliminated, r.Consumed,
			fmt.Sprintf("%.0fs", r.Duration), difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetVariantStats(gameID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d crops  Average: %.1f crops  Crops lost: %d\n",
			stats.Runs, stats.BestHarvest, stats.AvgHarvest, stats.TotalConsumed)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/byte-runner/internal/platform/tui"
	"github.com/vovakirdan/byte-runner/internal/storage"
)

const gameID = "runner"

var (
	flagInteractive bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs, ranked by coins and then distance.

Examples:
  byterunner scores
  byterunner scores --limit 25
  byterunner scores --interactive
  byterunner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if flagInteractive {
		rt := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, "Byte Runner", rt.ScreenW, rt.ScreenH)
		return err
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println("High Scores - Byte Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'byterunner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %-8s  %s\n", "Rank", "Player", "Coins", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-9s  %-8s  %s\n", "----", "------", "-----", "--------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-9s  %-8s  %s\n",
			i+1, r.Player, r.Score,
			fmt.Sprintf("%.0fm", r.Distance),
			fmt.Sprintf("%.1fs", r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: could not load stats: %v\n", err)
	}
	return nil
}

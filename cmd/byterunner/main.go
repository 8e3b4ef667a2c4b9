// byterunner is a side-scrolling arcade game for the terminal.
//
// Usage:
//
//	byterunner play          - Play a run
//	byterunner menu          - Start menu with play and high scores
//	byterunner serve         - Start SSH server for remote play
//	byterunner scores        - Show the best runs
//	byterunner questions     - List the quiz question bank
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.byterunner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "byterunner",
	Short: "Byte Runner - dodge, collect and answer in your terminal",
	Long: `Byte Runner is a side-scrolling arcade game. Fly past obstacles,
lasers and homing rockets, grab coins, and answer Go trivia to earn
shields, slowdowns and distance boosts.

Available commands:
  play       - Start a run directly
  menu       - Interactive menu
  serve      - Start SSH server for remote play
  scores     - View the best runs
  questions  - List the quiz questions

Examples:
  byterunner play
  byterunner play --difficulty hard --spectate :8080
  byterunner menu
  byterunner serve --ssh :2222
  byterunner scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.byterunner/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(questionsCmd)
}

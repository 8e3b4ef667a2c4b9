package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/byte-runner/internal/games/runner"
)

var flagAnswers bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the quiz questions",
	Long:  `Shows every question a power-up can ask, optionally with answers.`,
	Args:  cobra.NoArgs,
	Run:   runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagAnswers, "answers", false, "Mark the correct option")
}

func runQuestions(_ *cobra.Command, _ []string) {
	for i, q := range runner.Questions {
		fmt.Printf("%2d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			mark := " "
			if flagAnswers && j == q.Correct {
				mark = "*"
			}
			fmt.Printf("   %s %d) %s\n", mark, j+1, opt)
		}
		fmt.Println()
	}
	fmt.Printf("%d questions.\n", len(runner.Questions))
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/byte-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Leaving a run or the score table returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  byterunner menu
  byterunner menu --fps 30
  byterunner menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := runtimeConfig()
	for {
		choice, updated, err := tui.RunMenu(s.store, s.game.ID(), cfg)
		if err != nil {
			return err
		}
		cfg = updated

		switch choice {
		case tui.ChoicePlay:
			if err := tui.Run(s.game, s.modelConfig(cfg)); err != nil {
				return err
			}
		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(s.store, s.game.ID(), s.game.Title(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			return nil
		}
	}
}

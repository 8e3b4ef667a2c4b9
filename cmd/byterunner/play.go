package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/byte-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run straight away.

Controls:
  Space/W/Up  - Thrust (hold)
  1-4         - Answer a quiz question
  P           - Pause
  R           - Restart (after game over)
  Esc/B, Q    - Quit
  Ctrl+S      - Save a screenshot

Difficulty options:
  easy   - Start at lowest difficulty, longer quizzes
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, shorter quizzes, faster rockets
  fixed  - No progression, stays at config's initial level

Examples:
  byterunner play
  byterunner play --difficulty hard
  byterunner play --config ./my-runner.yaml --mute
  byterunner play --spectate :8080 --log-file run.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(s.game, s.modelConfig(runtimeConfig()))
}

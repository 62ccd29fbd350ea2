package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-runner/internal/core"
	"github.com/vovakirdan/pixel-runner/internal/platform/tui"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pixel Runner",
	Long: `Open the menu and play.

Controls:
  Up/Down/j/k   - Navigate menus
  Enter         - Select / start / restart / resume
  Space/Up/W    - Jump
  P             - Pause
  Esc/B         - Back to menu (when not running)
  Q/Ctrl+C      - Quit

Examples:
  pixelrun play
  pixelrun play --character ziggy
  pixelrun play --difficulty hard --fps 30
  pixelrun play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Skip the menu and play as this character")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := loadTuning(app); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: app.FPS,
			Seed:     app.Seed,
		},
		Difficulty: app.Difficulty,
		Character:  flagCharacter,
		Logger:     logger,
	})
}

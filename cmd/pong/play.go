package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: pong).

Controls against the computer:
  W/S or Up/Down  - Move your paddle
  Space/Enter     - Serve
  R               - Restart (after game over)
  Ctrl+S          - Screenshot (also copied to the clipboard)
  Q/Ctrl+C        - Quit

Hot-seat (pong-2p):
  W/S             - Left paddle
  Up/Down         - Right paddle

Difficulty options:
  easy   - AI starts slow, sharpens as the ball speeds up
  normal - AI starts at 30%, sharpens as the ball speeds up
  hard   - AI starts at 70%, sharpens as the ball speeds up
  fixed  - AI stays at the normal level

Examples:
  pong play
  pong play pong-2p
  pong play pong-classic --difficulty hard
  pong play --config ./my-pong.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "pong"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'pong list' to see available variants)", gameID)
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := gameFactory(cfg, logger)(gameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, tui.Options{
		Runtime:       runtimeConfig(),
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
		Clipboard:     true,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

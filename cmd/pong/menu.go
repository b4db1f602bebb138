package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start Pong in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
B or Esc in a game returns to the menu, Tab opens the simulation report.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Simulation report
  Q            - Quit

Examples:
  pong menu
  pong menu --fps 30
  pong menu --difficulty easy`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	pongCfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	newGame := gameFactory(pongCfg, logger)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsReport {
			if !showReport(cfg) {
				return nil
			}
			continue
		}

		game, err := newGame(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "variant", menuResult.GameID, "error", err)
			continue
		}

		exit, err := tui.Run(game, tui.Options{
			Runtime:       cfg,
			Logger:        logger,
			ScreenshotDir: tui.DefaultScreenshotDir(),
			Clipboard:     true,
		})
		if err != nil {
			return err
		}
		if exit == tui.ExitQuit {
			return nil
		}
	}
}

// showReport opens the report and reports whether to return to the menu.
func showReport(cfg core.RuntimeConfig) bool {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil // the report shows an empty state
	}
	if store != nil {
		defer store.Close()
	}

	goBack, err := tui.RunReport(store, cfg.ScreenW, cfg.ScreenH)
	return err == nil && goBack
}

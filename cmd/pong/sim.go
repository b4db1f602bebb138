package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/sim"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimVariant  string
	flagSimMatches  int
	flagSimMaxTicks int64
	flagSimCols     int
	flagSimRows     int
	flagSimNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless computer-vs-computer matches",
	Long: `Play matches with the computer on both paddles, without a terminal UI,
and record the results in the simulation database.

Match i of a run uses seed --seed + i, so a run is reproducible.
A match that hits --max-ticks is recorded as unfinished.

Examples:
  pong sim
  pong sim --matches 100 --variant pong-classic --seed 1
  pong sim --difficulty hard --max-ticks 50000
  pong sim --no-save --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimVariant, "variant", "pong", "Variant to simulate")
	simCmd.Flags().IntVar(&flagSimMatches, "matches", 10, "Number of matches")
	simCmd.Flags().Int64Var(&flagSimMaxTicks, "max-ticks", sim.DefaultMaxTicks, "Tick budget per match")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Court width in terminal columns")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Court height in terminal rows, HUD included")
	simCmd.Flags().BoolVar(&flagSimNoSave, "no-save", false, "Do not record matches in the database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	pongCfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	var recorder sim.Recorder
	if !flagSimNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = store
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := sim.NewRunner(pongCfg, recorder, logger)
	sum, err := runner.Run(ctx, sim.Options{
		Variant:    flagSimVariant,
		Difficulty: preset,
		Matches:    flagSimMatches,
		Seed:       seed,
		MaxTicks:   flagSimMaxTicks,
		Width:      float64(flagSimCols * game.CellW),
		Height:     float64((flagSimRows - game.HUDRows) * game.CellH),
	})
	printSummary(sum)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printSummary(sum sim.Summary) {
	if len(sum.Records) == 0 {
		fmt.Println("No matches played.")
		return
	}

	fmt.Printf("Run %s\n\n", sum.RunID)
	printRecords(sum.Records)
	fmt.Println()
	fmt.Printf("Player1 %d : %d Player2, %d unfinished\n", sum.Player1Wins, sum.Player2Wins, sum.Unfinished)
}

// Package sim plays headless computer-vs-computer matches and records their
// outcomes for tuning AI reactions.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// ErrUnknownVariant is returned for a variant ID that is not built in.
var ErrUnknownVariant = errors.New("sim: unknown variant")

// Default court, the pixel size of an 80x24 terminal minus the HUD row.
const (
	DefaultWidth    = 80 * game.CellW
	DefaultHeight   = (24 - game.HUDRows) * game.CellH
	DefaultMaxTicks = 200_000
)

// Recorder stores finished match records.
type Recorder interface {
	SaveMatch(r storage.MatchRecord) (int64, error)
}

// Options describe one batch of matches.
type Options struct {
	Variant    string
	Difficulty config.DifficultyPreset
	Matches    int
	// Seed of the first match; match i uses Seed+i.
	Seed     int64
	MaxTicks int64
	Width    float64
	Height   float64
}

func (o *Options) defaults() {
	if o.Variant == "" {
		o.Variant = "pong"
	}
	if o.Matches <= 0 {
		o.Matches = 1
	}
	if o.MaxTicks <= 0 {
		o.MaxTicks = DefaultMaxTicks
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
}

// Summary aggregates one batch.
type Summary struct {
	RunID       string
	Records     []storage.MatchRecord
	Player1Wins int
	Player2Wins int
	Unfinished  int
}

// Runner plays matches on a base configuration.
type Runner struct {
	base     config.PongConfig
	recorder Recorder
	logger   *log.Logger
	now      func() time.Time
}

// NewRunner creates a runner. A nil recorder keeps results in memory only.
func NewRunner(base config.PongConfig, recorder Recorder, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		base:     base,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// MatchConfig returns the configuration a simulated variant runs with:
// the variant's settings with both paddles handed to the computer.
func MatchConfig(base config.PongConfig, variant string, preset config.DifficultyPreset) (config.PongConfig, error) {
	v, ok := game.LookupVariant(variant)
	if !ok {
		return config.PongConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}
	cfg := v.Apply(base)
	config.ApplyPongPreset(&cfg, preset)
	cfg.Controllers.Paddle1 = config.ControllerAI
	cfg.Controllers.Paddle2 = config.ControllerAI
	cfg.Gameplay.RequireStart = false
	return cfg, nil
}

// Run plays a batch and records every match. It stops between matches when
// ctx is cancelled and returns what was played so far.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	opts.defaults()

	cfg, err := MatchConfig(r.base, opts.Variant, opts.Difficulty)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{RunID: uuid.NewString()}
	logger := r.logger.With("run", sum.RunID[:8], "variant", opts.Variant)
	logger.Info("simulation started", "matches", opts.Matches, "seed", opts.Seed, "max_ticks", opts.MaxTicks)

	for i := 0; i < opts.Matches; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		seed := opts.Seed + int64(i)
		rec, err := PlayMatch(cfg, seed, opts.MaxTicks, opts.Width, opts.Height)
		if err != nil {
			return sum, err
		}
		rec.RunID = sum.RunID
		rec.Variant = opts.Variant
		rec.Difficulty = string(opts.Difficulty)
		rec.CreatedAt = r.now()

		if r.recorder != nil {
			id, err := r.recorder.SaveMatch(rec)
			if err != nil {
				return sum, fmt.Errorf("sim: save match %d: %w", i+1, err)
			}
			rec.ID = id
		}

		switch {
		case !rec.Finished:
			sum.Unfinished++
		case rec.Winner == 1:
			sum.Player1Wins++
		default:
			sum.Player2Wins++
		}
		sum.Records = append(sum.Records, rec)

		logger.Debug("match done",
			"match", i+1,
			"seed", seed,
			"score", fmt.Sprintf("%d-%d", rec.Score1, rec.Score2),
			"ticks", rec.Ticks,
			"finished", rec.Finished,
		)
	}

	logger.Info("simulation finished",
		"p1_wins", sum.Player1Wins,
		"p2_wins", sum.Player2Wins,
		"unfinished", sum.Unfinished,
	)
	return sum, nil
}

// PlayMatch runs one headless match until it ends or maxTicks elapse.
// Identity fields of the record (run, variant, time) are left to the caller.
func PlayMatch(cfg config.PongConfig, seed, maxTicks int64, width, height float64) (storage.MatchRecord, error) {
	s, err := pong.NewSession(cfg, pong.Options{Width: width, Height: height, Seed: seed})
	if err != nil {
		return storage.MatchRecord{}, fmt.Errorf("sim: %w", err)
	}

	for int64(s.Stats().Ticks) < maxTicks && !s.Ended() {
		s.Tick()
	}

	st := s.Stats()
	rec := storage.MatchRecord{
		Seed:         seed,
		Score1:       s.Score(core.Player1),
		Score2:       s.Score(core.Player2),
		Finished:     s.Ended(),
		Ticks:        int64(st.Ticks),
		Serves:       st.Serves,
		Hits:         st.Hits,
		WallBounces:  st.WallBounces,
		LongestRally: st.LongestRally,
	}
	switch s.Winner() {
	case core.Player1:
		rec.Winner = 1
	case core.Player2:
		rec.Winner = 2
	}
	return rec, nil
}

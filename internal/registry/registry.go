// Package registry maps variant IDs to game factories.
// Variants register from init(), so hosts (CLI, menu, SSH sessions, headless
// simulation) discover them without importing the concrete game package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is the surface a host drives: fixed ticks in, a character screen out.
type Game interface {
	// ID is the variant identifier used on the command line and in records.
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh match for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts a running match to a new screen size in characters.
	Resize(width, height int) error

	// Step advances one tick with the frame's per-player actions.
	Step(in core.MultiInputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports scores, phase, and game over.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a variant. It panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	if info.ID == "" {
		panic("registry: empty variant id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered variant sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the metadata of a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a variant is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

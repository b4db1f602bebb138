package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// GameKeyMap holds the in-game key bindings.
// Against the computer both W/S and the arrows drive Player1; in hot-seat
// games W/S belong to Player1 and the arrows to Player2.
type GameKeyMap struct {
	P1Up       key.Binding
	P1Down     key.Binding
	P2Up       key.Binding
	P2Down     key.Binding
	Serve      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewGameKeyMap returns the bindings for a single-keyboard game.
func NewGameKeyMap(hotSeat bool) GameKeyMap {
	km := GameKeyMap{
		Serve: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "serve"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	if hotSeat {
		km.P1Up = key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "left paddle"))
		km.P1Down = key.NewBinding(key.WithKeys("s"))
		km.P2Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "right paddle"))
		km.P2Down = key.NewBinding(key.WithKeys("down"))
		return km
	}

	km.P1Up = key.NewBinding(key.WithKeys("w", "up"), key.WithHelp("w/↑", "up"))
	km.P1Down = key.NewBinding(key.WithKeys("s", "down"), key.WithHelp("s/↓", "down"))
	km.P2Up = key.NewBinding(key.WithDisabled())
	km.P2Down = key.NewBinding(key.WithDisabled())
	return km
}

// ShortHelp returns key bindings for the footer.
func (k GameKeyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.P1Up}
	if k.P2Up.Enabled() {
		bindings = append(bindings, k.P2Up)
	} else {
		bindings = append(bindings, k.P1Down)
	}
	return append(bindings, k.Serve, k.Back, k.Quit)
}

// FullHelp returns key bindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down, k.P2Up, k.P2Down},
		{k.Serve, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// PaddleKey is a movement key resolved to a player and direction.
type PaddleKey struct {
	Player core.PlayerID
	Action core.Action
}

// Paddle resolves a key message to a paddle movement.
func (k GameKeyMap) Paddle(msg tea.KeyMsg) (PaddleKey, bool) {
	switch {
	case key.Matches(msg, k.P1Up):
		return PaddleKey{core.Player1, core.ActionUp}, true
	case key.Matches(msg, k.P1Down):
		return PaddleKey{core.Player1, core.ActionDown}, true
	case key.Matches(msg, k.P2Up):
		return PaddleKey{core.Player2, core.ActionUp}, true
	case key.Matches(msg, k.P2Down):
		return PaddleKey{core.Player2, core.ActionDown}, true
	}
	return PaddleKey{}, false
}

// MenuKeyMap holds the bindings of the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Report key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Report: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sim report"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the menu footer.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Report, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-galaga/internal/core"
)

// KeyMap holds the game key bindings.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding

	Screenshot key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns arrows to move, space to fire, P to pause,
// R to restart and Esc or Q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// KeyState turns discrete terminal key presses into "is down" queries.
// Terminals report presses (and auto-repeats) but never releases, so an
// action counts as down for hold ticks after its latest press.
type KeyState struct {
	hold    int
	pressed map[core.Action]int
}

// NewKeyState creates a tracker; hold is clamped to at least one tick.
func NewKeyState(hold int) *KeyState {
	return &KeyState{
		hold:    max(hold, 1),
		pressed: make(map[core.Action]int),
	}
}

// Press records that a was pressed at tick.
func (s *KeyState) Press(a core.Action, tick int) {
	if a == core.ActionNone {
		return
	}
	s.pressed[a] = tick
}

// Release forgets a, so it reads as up immediately.
func (s *KeyState) Release(a core.Action) {
	delete(s.pressed, a)
}

// Frame returns the actions down at tick and drops expired presses.
// A press recorded at tick t is down for ticks t through t+hold-1.
func (s *KeyState) Frame(tick int) core.InputFrame {
	frame := core.NewInputFrame()
	for a, at := range s.pressed {
		if tick-at < s.hold {
			frame.Set(a)
		} else {
			delete(s.pressed, a)
		}
	}
	return frame
}

// Reset releases everything.
func (s *KeyState) Reset() {
	clear(s.pressed)
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/core"
)

// KeyMap defines the key bindings for a running session.
// It doubles as the help.KeyMap for the help bar.
type KeyMap struct {
	Pause      key.Binding
	Step       key.Binding
	Randomize  key.Binding
	Clear      key.Binding
	ToggleGrid key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Step, k.Randomize, k.Clear, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step},
		{k.Randomize, k.Clear},
		{k.ToggleGrid, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("f", "right"),
			key.WithHelp("f", "step"),
		),
		Randomize: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random"),
		),
		Clear: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blank"),
		),
		ToggleGrid: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "grid lines"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a session action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Step):
		return core.ActionStep, false
	case key.Matches(msg, k.Randomize):
		return core.ActionRandomize, false
	case key.Matches(msg, k.Clear):
		return core.ActionClear, false
	case key.Matches(msg, k.ToggleGrid):
		return core.ActionToggleGrid, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Help is handled by the model, not the session, so it is not recorded.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && action != core.ActionHelp && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse translates a mouse message to a pointer button. Presses and
// drags with the left button paint Alive, the right button paints Dead.
// Releases, wheel events and plain motion map to PointerNone.
func MapMouse(msg tea.MouseMsg) core.PointerButton {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return core.PointerNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.PointerLeft
	case tea.MouseButtonRight:
		return core.PointerRight
	}
	return core.PointerNone
}

package core

// Action represents a semantic driver command, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionStep              // F - advance exactly one generation
	ActionPause             // P - toggle automatic stepping
	ActionRandomize         // R - replace the grid with a random one
	ActionClear             // B - replace the grid with a blank one
	ActionToggleGrid        // G - toggle the grid-line overlay
	ActionHelp              // ? - toggle the full help view
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStep:
		return "Step"
	case ActionPause:
		return "Pause"
	case ActionRandomize:
		return "Randomize"
	case ActionClear:
		return "Clear"
	case ActionToggleGrid:
		return "ToggleGrid"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerButton identifies which pointer button produced an event.
type PointerButton int

const (
	PointerNone PointerButton = iota
	PointerLeft               // paints cells Alive
	PointerRight              // paints cells Dead
)

// PointerEvent is a pressed pointer at a screen position, in the driver's
// own units (terminal cells or window pixels).
type PointerEvent struct {
	X, Y   int
	Button PointerButton
}

// InputFrame collects everything the user did between two ticks.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds pointer presses and drags in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer event for this frame.
func (f *InputFrame) Press(x, y int, button PointerButton) {
	if button == PointerNone {
		return
	}
	f.Pointer = append(f.Pointer, PointerEvent{X: x, Y: y, Button: button})
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Pointer) == 0
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) = false after Set")
	}
	if f.Has(ActionStep) {
		t.Error("Has(ActionStep) = true without Set")
	}

	f.Clear()
	if f.Has(ActionPause) || !f.Empty() {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	f.Press(3, 4, PointerLeft)
	f.Press(5, 6, PointerNone) // ignored
	f.Press(7, 8, PointerRight)

	if len(f.Pointer) != 2 {
		t.Fatalf("expected 2 pointer events, got %d", len(f.Pointer))
	}
	if f.Pointer[0] != (PointerEvent{X: 3, Y: 4, Button: PointerLeft}) {
		t.Errorf("first event = %+v", f.Pointer[0])
	}
	if f.Pointer[1].Button != PointerRight {
		t.Errorf("second event button = %v, expected right", f.Pointer[1].Button)
	}

	f.Clear()
	if len(f.Pointer) != 0 {
		t.Error("Clear should drop pointer events")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionStep, "Step"},
		{ActionRandomize, "Randomize"},
		{ActionClear, "Clear"},
		{ActionToggleGrid, "ToggleGrid"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}

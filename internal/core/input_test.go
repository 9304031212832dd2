package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	f.Hold(KeyUp)
	f.Press(KeyEnter)

	if !f.IsHeld(KeyUp) {
		t.Error("KeyUp should be held")
	}
	if f.WasPressed(KeyUp) {
		t.Error("Holding a key should not mark it pressed")
	}
	if !f.WasPressed(KeyEnter) || !f.IsHeld(KeyEnter) {
		t.Error("Pressed key should be both pressed and held")
	}

	f.Clear()
	if f.IsHeld(KeyUp) || f.WasPressed(KeyEnter) {
		t.Error("Clear should reset all keys")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.IsHeld(KeySpace) || f.WasPressed(KeySpace) {
		t.Error("Zero frame should report nothing")
	}

	// Zero value must be usable without NewInputFrame
	f.Press(KeyReload)
	if !f.WasPressed(KeyReload) {
		t.Error("Press on zero frame should work")
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyLeft, "Left"},
		{KeyReload, "R"},
		{KeyEscape, "Esc"},
		{KeyQuit, "Quit"},
		{Key(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("Key(%d).String() = %q, expected %q", tc.key, got, tc.want)
		}
	}
}

package core

// Key is a logical key recognized by the game screens.
// Frontends translate their native key codes into these values.
type Key int

const (
	KeyNone   Key = iota
	KeyLeft       // rotate left
	KeyRight      // rotate right
	KeyUp         // thrust, menu up
	KeyDown       // menu down
	KeySpace      // shoot
	KeyReload     // R - start reloading
	KeyEscape     // open pause menu
	KeyEnter      // menu confirm
	KeyQuit       // window close / Ctrl+C
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyReload:
		return "R"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the keyboard state for one simulation tick.
//
// Held keys drive continuous controls (thrust, turning, shooting).
// Pressed keys are edge-triggered: a key appears in Pressed only on the
// tick it went down, which is what menus, reload and pause rely on.
type InputFrame struct {
	Held    map[Key]bool
	Pressed map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Key]bool),
		Pressed: make(map[Key]bool),
	}
}

// Hold marks a key as held down during this frame.
func (f *InputFrame) Hold(k Key) {
	if f.Held == nil {
		f.Held = make(map[Key]bool)
	}
	f.Held[k] = true
}

// Press marks a key as just pressed this frame. A pressed key is also held.
func (f *InputFrame) Press(k Key) {
	if f.Pressed == nil {
		f.Pressed = make(map[Key]bool)
	}
	f.Pressed[k] = true
	f.Hold(k)
}

// IsHeld returns true if the key is down during this frame.
func (f InputFrame) IsHeld(k Key) bool {
	return f.Held[k]
}

// WasPressed returns true if the key went down on this frame.
func (f InputFrame) WasPressed(k Key) bool {
	return f.Pressed[k]
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Package input tracks keyboard and mouse state across frames.
//
// Raw state comes from a Source polled once per frame; State derives the
// press and release edges the scenes react to.
package input

// Key identifies a keyboard key independently of the windowing backend.
type Key int

// Keys used by the labs.
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyR
	KeyP
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftShift
	KeyLeftCtrl
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF2
	KeyF3
	KeyF11
	KeyF12
	Key1
	Key2
	Key3

	keyCount
)

// MouseButton identifies a mouse button.
type MouseButton int

// Mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	buttonCount
)

// Source reports the raw device state for the current frame.
type Source interface {
	KeyDown(k Key) bool
	MouseDown(b MouseButton) bool
	MousePos() (x, y float32)
	// WantCapture reports whether the UI consumes keyboard or mouse input
	// this frame.
	WantCapture() (keyboard, mouse bool)
}

// WheelSource is implemented by sources that report scroll input.
type WheelSource interface {
	MouseWheel() float32
}

// Flags is the per-key state for one frame.
type Flags uint8

// Flag bits.
const (
	Pressed Flags = 1 << iota
	JustPressed
	JustReleased
)

// State holds the input state for the current frame.
type State struct {
	keys    [keyCount]Flags
	buttons [buttonCount]Flags

	MouseX, MouseY           float32
	MouseDeltaX, MouseDeltaY float32
	Wheel                    float32

	// UI capture for this frame; scenes ignore input the UI consumed.
	KeyboardCaptured bool
	MouseCaptured    bool

	initialized bool
}

// Update polls src and derives edges against the previous frame.
func (s *State) Update(src Source) {
	s.KeyboardCaptured, s.MouseCaptured = src.WantCapture()

	for k := Key(1); k < keyCount; k++ {
		s.keys[k] = next(s.keys[k], src.KeyDown(k))
	}
	for b := MouseButton(0); b < buttonCount; b++ {
		s.buttons[b] = next(s.buttons[b], src.MouseDown(b))
	}

	s.Wheel = 0
	if ws, ok := src.(WheelSource); ok {
		s.Wheel = ws.MouseWheel()
	}

	x, y := src.MousePos()
	if s.initialized {
		s.MouseDeltaX = x - s.MouseX
		s.MouseDeltaY = y - s.MouseY
	}
	s.MouseX, s.MouseY = x, y
	s.initialized = true
}

func next(prev Flags, down bool) Flags {
	was := prev&Pressed != 0
	switch {
	case down && !was:
		return Pressed | JustPressed
	case down:
		return Pressed
	case was:
		return JustReleased
	default:
		return 0
	}
}

// Key returns the raw flags of k.
func (s *State) Key(k Key) Flags {
	if k <= KeyUnknown || k >= keyCount {
		return 0
	}
	return s.keys[k]
}

// Pressed reports whether k is held down.
func (s *State) Pressed(k Key) bool { return s.Key(k)&Pressed != 0 }

// JustPressed reports whether k went down this frame.
func (s *State) JustPressed(k Key) bool { return s.Key(k)&JustPressed != 0 }

// JustReleased reports whether k went up this frame.
func (s *State) JustReleased(k Key) bool { return s.Key(k)&JustReleased != 0 }

// MouseDown reports whether b is held down.
func (s *State) MouseDown(b MouseButton) bool {
	return b >= 0 && b < buttonCount && s.buttons[b]&Pressed != 0
}

// MouseJustPressed reports whether b went down this frame.
func (s *State) MouseJustPressed(b MouseButton) bool {
	return b >= 0 && b < buttonCount && s.buttons[b]&JustPressed != 0
}

// SceneKey is Pressed filtered by UI keyboard capture.
func (s *State) SceneKey(k Key) bool {
	return !s.KeyboardCaptured && s.Pressed(k)
}

// SceneMouseDown is MouseDown filtered by UI mouse capture.
func (s *State) SceneMouseDown(b MouseButton) bool {
	return !s.MouseCaptured && s.MouseDown(b)
}

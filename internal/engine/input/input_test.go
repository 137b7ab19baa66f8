package input

import "testing"

type fakeSource struct {
	keys     map[Key]bool
	buttons  map[MouseButton]bool
	x, y     float32
	kbd, mse bool
}

func newFake() *fakeSource {
	return &fakeSource{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (f *fakeSource) KeyDown(k Key) bool { return f.keys[k] }

func (f *fakeSource) MouseDown(b MouseButton) bool { return f.buttons[b] }

func (f *fakeSource) MousePos() (float32, float32) { return f.x, f.y }

func (f *fakeSource) WantCapture() (keyboard, mouse bool) { return f.kbd, f.mse }

func TestKeyEdges(t *testing.T) {
	src := newFake()
	var s State

	frames := []struct {
		down                    bool
		pressed, just, released bool
	}{
		{false, false, false, false},
		{true, true, true, false},
		{true, true, false, false},
		{false, false, false, true},
		{false, false, false, false},
	}
	for i, f := range frames {
		src.keys[KeyR] = f.down
		s.Update(src)
		if s.Pressed(KeyR) != f.pressed || s.JustPressed(KeyR) != f.just || s.JustReleased(KeyR) != f.released {
			t.Errorf("frame %d: flags = %03b", i, s.Key(KeyR))
		}
	}
}

func TestMouseDelta(t *testing.T) {
	src := newFake()
	var s State

	src.x, src.y = 100, 50
	s.Update(src)
	if s.MouseDeltaX != 0 || s.MouseDeltaY != 0 {
		t.Errorf("first frame delta = (%v, %v), want zero", s.MouseDeltaX, s.MouseDeltaY)
	}

	src.x, src.y = 110, 45
	src.buttons[MouseLeft] = true
	s.Update(src)
	if s.MouseDeltaX != 10 || s.MouseDeltaY != -5 {
		t.Errorf("delta = (%v, %v), want (10, -5)", s.MouseDeltaX, s.MouseDeltaY)
	}
	if !s.MouseDown(MouseLeft) || !s.MouseJustPressed(MouseLeft) {
		t.Error("left button should be down and just pressed")
	}
}

func TestCaptureFiltersSceneInput(t *testing.T) {
	src := newFake()
	var s State

	src.keys[KeyW] = true
	src.buttons[MouseLeft] = true
	src.kbd, src.mse = true, true
	s.Update(src)

	if s.SceneKey(KeyW) || s.SceneMouseDown(MouseLeft) {
		t.Error("captured input leaked to the scene")
	}
	if !s.Pressed(KeyW) {
		t.Error("raw state should still report the key")
	}

	src.kbd, src.mse = false, false
	s.Update(src)
	if !s.SceneKey(KeyW) || !s.SceneMouseDown(MouseLeft) {
		t.Error("uncaptured input should reach the scene")
	}
}

func TestOutOfRangeKey(t *testing.T) {
	var s State
	if s.Pressed(Key(-1)) || s.Pressed(keyCount) {
		t.Error("out-of-range keys must read as released")
	}
}

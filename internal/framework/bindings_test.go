package framework

import (
	"slices"
	"testing"

	"github.com/Faultbox/bonobo-labs/internal/engine/input"
)

type keySource struct {
	down     map[input.Key]bool
	keyboard bool
}

func (s *keySource) KeyDown(k input.Key) bool            { return s.down[k] }
func (s *keySource) MouseDown(input.MouseButton) bool    { return false }
func (s *keySource) MousePos() (float32, float32)        { return 0, 0 }
func (s *keySource) WantCapture() (keyboard, mouse bool) { return s.keyboard, false }

// frames feeds one frame per key set and returns the resulting state.
func frames(sets ...[]input.Key) *input.State {
	src := &keySource{}
	in := &input.State{}
	for _, keys := range sets {
		src.down = map[input.Key]bool{}
		for _, k := range keys {
			src.down[k] = true
		}
		in.Update(src)
	}
	return in
}

func TestActions(t *testing.T) {
	k := func(keys ...input.Key) []input.Key { return keys }
	tests := []struct {
		name    string
		state   *input.State
		changed bool
		want    []Action
	}{
		{"nothing", frames(nil), false, nil},
		{"reload on press", frames(nil, k(input.KeyR)), false, []Action{ActionReloadShaders}},
		{"file change", frames(nil), true, []Action{ActionReloadShaders}},
		{"key and file change reload once", frames(nil, k(input.KeyR)), true, []Action{ActionReloadShaders}},
		{"toggle waits for release", frames(nil, k(input.KeyF2)), false, nil},
		{"gui and logs on release", frames(nil, k(input.KeyF2, input.KeyF3), nil), false, []Action{ActionToggleGUI, ActionToggleLogs}},
		{"fullscreen on release", frames(k(input.KeyF11), nil), false, []Action{ActionToggleFullscreen}},
		{"screenshot and quit", frames(nil, k(input.KeyF12, input.KeyEscape)), false, []Action{ActionScreenshot, ActionQuit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Actions(tt.state, tt.changed)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Actions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionsHeldKeyFiresOnce(t *testing.T) {
	src := &keySource{down: map[input.Key]bool{input.KeyR: true}}
	in := &input.State{}
	in.Update(src)
	if got := Actions(in, false); len(got) != 1 {
		t.Fatalf("first frame = %v", got)
	}
	in.Update(src)
	if got := Actions(in, false); len(got) != 0 {
		t.Errorf("held key repeated: %v", got)
	}
}

func TestActionsIgnoreCapturedKeyboard(t *testing.T) {
	src := &keySource{down: map[input.Key]bool{}, keyboard: true}
	in := &input.State{}
	in.Update(src)
	src.down[input.KeyR] = true
	in.Update(src)

	if got := Actions(in, false); len(got) != 0 {
		t.Errorf("Actions() with captured keyboard = %v", got)
	}
	if got := Actions(in, true); !slices.Equal(got, []Action{ActionReloadShaders}) {
		t.Errorf("file change while typing = %v", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleFullscreen.String() != "toggle fullscreen" {
		t.Errorf("String() = %q", ActionToggleFullscreen.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("out of range String() = %q", Action(99).String())
	}
}

package framework

import "github.com/Faultbox/bonobo-labs/internal/engine/input"

// Action is a global command bound to a key.
type Action int

// Actions handled by the App itself.
const (
	ActionReloadShaders Action = iota
	ActionToggleGUI
	ActionToggleLogs
	ActionToggleFullscreen
	ActionScreenshot
	ActionQuit
)

var actionNames = [...]string{"reload shaders", "toggle GUI", "toggle logs", "toggle fullscreen", "screenshot", "quit"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Binding ties a key edge to an action.
type Binding struct {
	Key    input.Key
	Edge   input.Flags // JustPressed or JustReleased
	Action Action
}

// Bindings maps keys to actions. Toggles fire on release so holding the key
// does not flicker the state.
var Bindings = []Binding{
	{input.KeyR, input.JustPressed, ActionReloadShaders},
	{input.KeyF2, input.JustReleased, ActionToggleGUI},
	{input.KeyF3, input.JustReleased, ActionToggleLogs},
	{input.KeyF11, input.JustReleased, ActionToggleFullscreen},
	{input.KeyF12, input.JustPressed, ActionScreenshot},
	{input.KeyEscape, input.JustPressed, ActionQuit},
}

// Actions returns the actions triggered this frame. Keys typed into a UI
// widget are ignored. A pending file change also queues a shader reload.
func Actions(in *input.State, shadersChanged bool) []Action {
	var out []Action
	reload := shadersChanged
	if !in.KeyboardCaptured {
		for _, b := range Bindings {
			if in.Key(b.Key)&b.Edge == 0 {
				continue
			}
			if b.Action == ActionReloadShaders {
				reload = true
				continue
			}
			out = append(out, b.Action)
		}
	}
	if reload {
		out = append([]Action{ActionReloadShaders}, out...)
	}
	return out
}

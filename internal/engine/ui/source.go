package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/bonobo-labs/internal/engine/input"
)

var keyMap = map[input.Key]imgui.Key{
	input.KeyW:         imgui.KeyW,
	input.KeyA:         imgui.KeyA,
	input.KeyS:         imgui.KeyS,
	input.KeyD:         imgui.KeyD,
	input.KeyQ:         imgui.KeyQ,
	input.KeyE:         imgui.KeyE,
	input.KeyR:         imgui.KeyR,
	input.KeyP:         imgui.KeyP,
	input.KeySpace:     imgui.KeySpace,
	input.KeyEnter:     imgui.KeyEnter,
	input.KeyEscape:    imgui.KeyEscape,
	input.KeyLeftShift: imgui.KeyLeftShift,
	input.KeyLeftCtrl:  imgui.KeyLeftCtrl,
	input.KeyUp:        imgui.KeyUpArrow,
	input.KeyDown:      imgui.KeyDownArrow,
	input.KeyLeft:      imgui.KeyLeftArrow,
	input.KeyRight:     imgui.KeyRightArrow,
	input.KeyF2:        imgui.KeyF2,
	input.KeyF3:        imgui.KeyF3,
	input.KeyF11:       imgui.KeyF11,
	input.KeyF12:       imgui.KeyF12,
	input.Key1:         imgui.Key1,
	input.Key2:         imgui.Key2,
	input.Key3:         imgui.Key3,
}

var buttonMap = map[input.MouseButton]imgui.MouseButton{
	input.MouseLeft:   imgui.MouseButtonLeft,
	input.MouseRight:  imgui.MouseButtonRight,
	input.MouseMiddle: imgui.MouseButtonMiddle,
}

// Source reads device state from the ImGui IO of the current frame.
type Source struct{}

var _ input.Source = Source{}

// KeyDown implements input.Source.
func (Source) KeyDown(k input.Key) bool {
	key, ok := keyMap[k]
	return ok && imgui.IsKeyDown(key)
}

// MouseDown implements input.Source.
func (Source) MouseDown(b input.MouseButton) bool {
	btn, ok := buttonMap[b]
	return ok && imgui.IsMouseDown(btn)
}

// MousePos implements input.Source.
func (Source) MousePos() (float32, float32) {
	p := imgui.MousePos()
	return p.X, p.Y
}

// MouseWheel implements input.WheelSource.
func (Source) MouseWheel() float32 {
	return imgui.CurrentIO().MouseWheel()
}

// WantCapture implements input.Source.
func (Source) WantCapture() (keyboard, mouse bool) {
	io := imgui.CurrentIO()
	return io.WantCaptureKeyboard(), io.WantCaptureMouse()
}

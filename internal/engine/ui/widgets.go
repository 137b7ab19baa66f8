package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// BeginPanel opens a fixed-width auto-resizing window anchored at the
// top-left corner, offset by index panels.
func BeginPanel(title string, index int, open *bool) bool {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10+float32(index)*30), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	return imgui.BeginV(title, open, imgui.WindowFlagsAlwaysAutoResize)
}

// Overlay draws a transparent, click-through text box at pos.
func Overlay(id string, pos imgui.Vec2, pivot imgui.Vec2, draw func()) {
	imgui.SetNextWindowPosV(pos, imgui.CondAlways, pivot)
	imgui.SetNextWindowBgAlpha(0.35)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoSavedSettings |
		imgui.WindowFlagsNoFocusOnAppearing
	if imgui.BeginV(id, nil, flags) {
		draw()
	}
	imgui.End()
}

// FPS draws a frame rate readout in the top-right corner.
func FPS() {
	work := imgui.MainViewport().WorkSize()
	Overlay("##fps", imgui.NewVec2(work.X-10, 10), imgui.NewVec2(1, 0), func() {
		rate := imgui.CurrentIO().Framerate()
		imgui.Text(fmt.Sprintf("%.0f FPS (%.2f ms)", rate, 1000/max(rate, 1)))
	})
}

// EnumCombo draws a combo over a set of named options and returns whether
// the selection changed.
func EnumCombo(label string, current *int32, names []string) bool {
	return imgui.ComboStrarr(label, current, names, int32(len(names)))
}

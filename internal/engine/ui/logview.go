package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

// LogView shows the in-memory log history.
type LogView struct {
	ring       *logger.Ring
	minLevel   int32 // index into viewLevels
	autoScroll bool
	seen       uint64
}

var viewLevels = []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}

// NewLogView creates a log window reading from ring.
func NewLogView(ring *logger.Ring) *LogView {
	return &LogView{ring: ring, autoScroll: true}
}

// Filter returns the entries at or above the selected level.
func (lv *LogView) Filter(entries []logger.Entry) []logger.Entry {
	lvl := viewLevels[lv.minLevel]
	out := entries[:0:0]
	for _, e := range entries {
		if e.Level >= lvl {
			out = append(out, e)
		}
	}
	return out
}

// SetMinLevel selects the lowest level shown.
func (lv *LogView) SetMinLevel(l zapcore.Level) {
	for i, v := range viewLevels {
		if v == l {
			lv.minLevel = int32(i)
			return
		}
	}
}

// Draw renders the window; open is cleared when the user closes it.
func (lv *LogView) Draw(open *bool) {
	work := imgui.MainViewport().WorkSize()
	imgui.SetNextWindowPosV(imgui.NewVec2(10, work.Y*0.6), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(work.X*0.5, work.Y*0.38), imgui.CondFirstUseEver)
	if !imgui.BeginV("Logs", open, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Clear") {
		lv.ring.Clear()
	}
	imgui.SameLine()
	imgui.Checkbox("Auto-scroll", &lv.autoScroll)
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	names := make([]string, len(viewLevels))
	for i, l := range viewLevels {
		names[i] = l.CapitalString()
	}
	imgui.ComboStrarr("Level", &lv.minLevel, names, int32(len(names)))
	imgui.Separator()

	if imgui.BeginChildStrV("##log_lines", imgui.NewVec2(0, 0), imgui.ChildFlagsNone, imgui.WindowFlagsHorizontalScrollbar) {
		for _, e := range lv.Filter(lv.ring.Entries()) {
			imgui.TextDisabled(e.Time.Format("15:04:05.000"))
			imgui.SameLine()
			imgui.TextColored(levelColor(e.Level), e.Level.CapitalString())
			imgui.SameLine()
			imgui.TextUnformatted(e.Message)
		}
		version := lv.ring.Version()
		if lv.autoScroll && version != lv.seen {
			imgui.SetScrollHereYV(1.0)
		}
		lv.seen = version
	}
	imgui.EndChild()
	imgui.End()
}

func levelColor(l zapcore.Level) imgui.Vec4 {
	switch {
	case l >= zapcore.ErrorLevel:
		return imgui.NewVec4(1, 0.35, 0.35, 1)
	case l == zapcore.WarnLevel:
		return imgui.NewVec4(1, 0.8, 0.3, 1)
	case l == zapcore.InfoLevel:
		return imgui.NewVec4(0.5, 0.85, 1, 1)
	default:
		return imgui.NewVec4(0.6, 0.6, 0.6, 1)
	}
}

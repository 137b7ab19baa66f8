package ui

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/bonobo-labs/internal/engine/input"
	"github.com/Faultbox/bonobo-labs/internal/logger"
)

func TestFramebufferSize(t *testing.T) {
	tests := []struct {
		w, h, sx, sy float32
		wantW, wantH int32
	}{
		{1280, 720, 1, 1, 1280, 720},
		{1280, 720, 2, 2, 2560, 1440},
		{800, 600, 0, 0, 800, 600},
	}
	for _, tt := range tests {
		w, h := framebufferSize(tt.w, tt.h, tt.sx, tt.sy)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("framebufferSize(%v, %v, %v, %v) = %d, %d; want %d, %d",
				tt.w, tt.h, tt.sx, tt.sy, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestKeyMapCoversBindings(t *testing.T) {
	for _, k := range []input.Key{input.KeyR, input.KeyF2, input.KeyF3, input.KeyF11, input.KeyF12, input.KeyEnter} {
		if _, ok := keyMap[k]; !ok {
			t.Errorf("key %d has no backend mapping", k)
		}
	}
}

func TestLogViewFilter(t *testing.T) {
	ring := logger.NewRing(8)
	now := time.Now()
	ring.Add(logger.Entry{Time: now, Level: zapcore.DebugLevel, Message: "debug"})
	ring.Add(logger.Entry{Time: now, Level: zapcore.InfoLevel, Message: "info"})
	ring.Add(logger.Entry{Time: now, Level: zapcore.ErrorLevel, Message: "error"})

	lv := NewLogView(ring)
	if got := len(lv.Filter(ring.Entries())); got != 3 {
		t.Errorf("debug filter kept %d entries, want 3", got)
	}

	lv.SetMinLevel(zapcore.WarnLevel)
	got := lv.Filter(ring.Entries())
	if len(got) != 1 || got[0].Message != "error" {
		t.Errorf("warn filter = %+v", got)
	}
}

package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/sqweek/dialog"
)

// notifying guards against stacking popups while one is open.
var notifying atomic.Bool

// NotifyError shows a native error popup without blocking the render loop.
// It returns false when another popup is still open.
func NotifyError(title, format string, args ...any) bool {
	if !notifying.CompareAndSwap(false, true) {
		return false
	}
	msg := fmt.Sprintf(format, args...)
	go func() {
		defer notifying.Store(false)
		dialog.Message("%s", msg).Title(title).Error()
	}()
	return true
}

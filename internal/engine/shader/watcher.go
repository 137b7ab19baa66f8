package shader

import (
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/bonobo-labs/internal/logger"
)

var shaderExts = map[string]bool{
	".vert": true,
	".frag": true,
	".geom": true,
	".glsl": true,
}

// Watcher flags a reload when a shader file under dir changes. The render
// loop polls Pending once per frame, so bursts of events collapse into a
// single reload.
type Watcher struct {
	watcher *fsnotify.Watcher
	pending atomic.Bool
	done    chan struct{}
}

// NewWatcher starts watching dir.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if relevant(event) {
				logger.Debug("shader changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
				w.pending.Store(true)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("shader watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !shaderExts[filepath.Ext(event.Name)] {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Pending reports whether a change arrived since the last call.
func (w *Watcher) Pending() bool {
	return w.pending.Swap(false)
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

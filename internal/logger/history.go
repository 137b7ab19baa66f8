package logger

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap/zapcore"
)

// Entry is one formatted line held by a Ring.
type Entry struct {
	Time    time.Time
	Level   zapcore.Level
	Message string // message followed by encoded fields
}

// Ring is a fixed-size, concurrency-safe buffer of the latest entries.
type Ring struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	version uint64
}

// NewRing returns a ring holding up to size entries.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = 1
	}
	return &Ring{entries: make([]Entry, size)}
}

// Add appends e, evicting the oldest entry once full.
func (r *Ring) Add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = e
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	r.version++
}

// Entries returns a copy of the stored entries, oldest first.
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return len(r.entries)
	}
	return r.next
}

// Version increases on every Add; the log window uses it to auto-scroll.
func (r *Ring) Version() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// Clear drops every entry.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
	r.next = 0
	r.full = false
	r.version++
}

// historyCore is a zapcore.Core writing into a Ring.
type historyCore struct {
	zapcore.LevelEnabler
	ring *Ring
	enc  zapcore.Encoder
}

// NewHistoryCore returns a core that records entries at or above lvl into ring.
func NewHistoryCore(ring *Ring, lvl zapcore.LevelEnabler) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		ConsoleSeparator: " ",
	})
	return &historyCore{LevelEnabler: lvl, ring: ring, enc: enc}
}

func (c *historyCore) With(fields []zapcore.Field) zapcore.Core {
	enc := c.enc.Clone()
	for _, f := range fields {
		f.AddTo(enc)
	}
	return &historyCore{LevelEnabler: c.LevelEnabler, ring: c.ring, enc: enc}
}

func (c *historyCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *historyCore) Write(e zapcore.Entry, fields []zapcore.Field) error {
	buf, err := c.enc.EncodeEntry(e, fields)
	if err != nil {
		return err
	}
	msg := strings.TrimRight(buf.String(), "\n")
	buf.Free()

	c.ring.Add(Entry{Time: e.Time, Level: e.Level, Message: msg})
	return nil
}

func (c *historyCore) Sync() error { return nil }

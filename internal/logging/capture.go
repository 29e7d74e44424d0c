package logging

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Entry is one captured log record.
type Entry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]slog.Value
}

// CaptureHandler is a slog.Handler that keeps records in memory. It is
// intended for tests that assert on emitted debug output:
//
//	h := logging.NewCaptureHandler(slog.LevelDebug)
//	logging.SetLogger(slog.New(h))
//	defer logging.SetLogger(nil)
type CaptureHandler struct {
	level  slog.Leveler
	store  *captureStore
	attrs  []slog.Attr
	prefix string
}

type captureStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewCaptureHandler captures records at or above level.
func NewCaptureHandler(level slog.Leveler) *CaptureHandler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &CaptureHandler{level: level, store: &captureStore{}}
}

// Enabled implements slog.Handler.
func (h *CaptureHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	e := Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]slog.Value, r.NumAttrs()+len(h.attrs)),
	}

	for _, a := range h.attrs {
		e.Attrs[a.Key] = a.Value.Resolve()
	}

	r.Attrs(func(a slog.Attr) bool {
		e.Attrs[h.prefix+a.Key] = a.Value.Resolve()
		return true
	})

	h.store.mu.Lock()
	h.store.entries = append(h.store.entries, e)
	h.store.mu.Unlock()

	return nil
}

// WithAttrs implements slog.Handler.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, a := range attrs {
		next.attrs = append(next.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &next
}

// WithGroup implements slog.Handler. Group names prefix attribute keys with
// "group.".
func (h *CaptureHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// Entries returns a copy of all captured records.
func (h *CaptureHandler) Entries() []Entry {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	out := make([]Entry, len(h.store.entries))
	copy(out, h.store.entries)
	return out
}

// Find returns captured records whose message equals msg.
func (h *CaptureHandler) Find(msg string) []Entry {
	var out []Entry
	for _, e := range h.Entries() {
		if e.Message == msg {
			out = append(out, e)
		}
	}
	return out
}

// Contains reports whether any captured message contains s.
func (h *CaptureHandler) Contains(s string) bool {
	for _, e := range h.Entries() {
		if strings.Contains(e.Message, s) {
			return true
		}
	}
	return false
}

// Reset discards all captured records.
func (h *CaptureHandler) Reset() {
	h.store.mu.Lock()
	h.store.entries = nil
	h.store.mu.Unlock()
}

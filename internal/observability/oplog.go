// Package observability provides the operation log that records what the
// task service does. Events go to an injectable sink so the interactive
// app can log to stdout while tests capture a buffer.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Event represents a single logged operation.
type Event struct {
	Time    time.Time      `json:"time"`
	Level   string         `json:"level"` // INFO, WARN, ERROR
	Type    string         `json:"type"`  // e.g. "task.added", "task.completed"
	Message string         `json:"msg"`
	Data    map[string]any `json:"data,omitempty"`
}

// Logger defines the interface for recording operation events.
type Logger interface {
	Log(event Event) error
}

// writerLogger writes one JSON line per event to the configured sink.
type writerLogger struct {
	out io.Writer
	mu  sync.Mutex
}

// NewWriterLogger creates a Logger that appends JSON lines to out.
func NewWriterLogger(out io.Writer) Logger {
	return &writerLogger{out: out}
}

// Log fills in defaults for missing time and level, then appends a
// JSON-encoded event followed by a newline to the sink.
func (l *writerLogger) Log(event Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Time.IsZero() {
		event.Time = time.Now()
	}
	if event.Level == "" {
		event.Level = "INFO"
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling event: %w", err)
	}
	data = append(data, '\n')

	if _, err := l.out.Write(data); err != nil {
		return fmt.Errorf("writing event: %w", err)
	}
	return nil
}

// Nop returns a Logger that discards every event.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Log(Event) error { return nil }

package ui

import (
	"fmt"
	"log/slog"
	"time"
)

// LogEntry represents a single log message shown in the footer
type LogEntry struct {
	Level     string
	Message   string
	Timestamp time.Time
}

func newLogEntry(r slog.Record) LogEntry {
	msg := r.Message
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "session" {
			return true
		}
		msg += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})
	return LogEntry{
		Level:     r.Level.String(),
		Message:   msg,
		Timestamp: r.Time,
	}
}

func (e LogEntry) String() string {
	return fmt.Sprintf("%s %s", e.Level, e.Message)
}

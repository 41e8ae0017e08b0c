package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogger wraps Logger with in-memory observation for assertions.
type TestLogger struct {
	*Logger
	Observed *observer.ObservedLogs
}

// NewTestLogger creates a logger that records every event in memory.
// Records pass through the same severity-injecting core as production
// output, so observed entries carry severity_number like real ones.
func NewTestLogger() *TestLogger {
	core, observed := observer.New(zapcore.DebugLevel)
	zl := zap.New(&otelCore{Core: core}).Named(LoggerName)
	return &TestLogger{
		Logger:   &Logger{zap: zl},
		Observed: observed,
	}
}

// Events returns all observed entries so far.
func (t *TestLogger) Events() []observer.LoggedEntry {
	return t.Observed.All()
}

// EventsWithName returns observed entries carrying the given event_name field.
func (t *TestLogger) EventsWithName(name string) []observer.LoggedEntry {
	var out []observer.LoggedEntry
	for _, entry := range t.Observed.All() {
		for _, f := range entry.Context {
			if f.Key == "event_name" && f.String == name {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

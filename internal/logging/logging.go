package logging

import (
	"errors"
	"io"
	"os"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerName identifies this component in every emitted record.
const LoggerName = "repo_indexer"

// Logger emits one JSON record per line on the diagnostic stream.
type Logger struct {
	zap *zap.Logger
}

// New creates a Logger writing to w at the given minimum level. traceID is
// attached to every record so all events from one scan share a correlation
// id. The caller generates the id once at run start and threads it through
// explicitly; there is no hidden global.
func New(w io.Writer, level zapcore.Level, traceID string) *Logger {
	core := &otelCore{Core: zapcore.NewCore(newEncoder(), zapcore.AddSync(w), level)}
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).
		Named(LoggerName).
		With(zap.String("trace_id", traceID))
	return &Logger{zap: zl}
}

// NewStderr creates a Logger on the process's diagnostic stream.
func NewStderr(level zapcore.Level, traceID string) *Logger {
	return New(os.Stderr, level, traceID)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// With returns a child logger carrying extra constant fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{zap: l.zap.With(fields...)}
}

// Sync flushes any buffered records.
func (l *Logger) Sync() error {
	err := l.zap.Sync()
	// Syncing stdout/stderr returns EINVAL or ENOTTY on Linux; harmless.
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}

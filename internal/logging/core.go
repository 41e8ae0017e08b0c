package logging

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// severityNumber maps a zap level to its OpenTelemetry severity number.
func severityNumber(level zapcore.Level) int {
	switch level {
	case zapcore.DebugLevel:
		return 5
	case zapcore.InfoLevel:
		return 9
	case zapcore.WarnLevel:
		return 13
	case zapcore.ErrorLevel:
		return 17
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return 21
	default:
		return 1
	}
}

// encodeLevel writes the OpenTelemetry severity text for a zap level.
// Zap's own names differ where it matters (WARN vs WARNING, FATAL vs
// CRITICAL), so the mapping is explicit.
func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch level {
	case zapcore.DebugLevel:
		enc.AppendString("DEBUG")
	case zapcore.InfoLevel:
		enc.AppendString("INFO")
	case zapcore.WarnLevel:
		enc.AppendString("WARNING")
	case zapcore.ErrorLevel:
		enc.AppendString("ERROR")
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		enc.AppendString("CRITICAL")
	default:
		enc.AppendString(level.CapitalString())
	}
}

// encodeTime writes UTC ISO-8601 with microsecond precision and a trailing Z.
func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000000") + "Z")
}

// newEncoder builds the JSON encoder with the OpenTelemetry field names.
func newEncoder() zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "severity_text",
		NameKey:        "logger.name",
		MessageKey:     "message",
		FunctionKey:    "code.function",
		CallerKey:      zapcore.OmitKey,
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewJSONEncoder(cfg)
}

// otelCore wraps a zapcore.Core to inject the numeric severity field and to
// trim the captured function name down to its bare identifier.
type otelCore struct {
	zapcore.Core
}

func (c *otelCore) With(fields []zapcore.Field) zapcore.Core {
	return &otelCore{Core: c.Core.With(fields)}
}

func (c *otelCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *otelCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Caller.Function = shortFunction(ent.Caller.Function)
	all := make([]zapcore.Field, 0, len(fields)+1)
	all = append(all, fields...)
	all = append(all, zap.Int("severity_number", severityNumber(ent.Level)))
	return c.Core.Write(ent, all)
}

// shortFunction trims "pkg/path.(*Type).Method" to "Method".
func shortFunction(fn string) string {
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}

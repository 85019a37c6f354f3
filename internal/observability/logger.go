package observability

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func levelFromString(l string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a logger writing to stderr, keeping stdout free for command output.
// dev selects the human readable console encoder.
func NewLogger(level string, dev bool) *zap.Logger {
	return NewLoggerTo(os.Stderr, level, dev)
}

// NewLoggerTo builds a logger writing to w.
func NewLoggerTo(w io.Writer, level string, dev bool) *zap.Logger {
	lvl := levelFromString(level)
	sink := zapcore.Lock(zapcore.AddSync(w))

	if dev {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, lvl)
		return zap.New(core, zap.AddCaller(), zap.Development())
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

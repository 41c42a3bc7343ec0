package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// defaultZapLevel defines the fallback log level when an unknown level string is provided.
const defaultZapLevel = zapcore.InfoLevel

// toZapLevel converts a textual level to zapcore.Level using known level constants.
func toZapLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return defaultZapLevel
	}
}

// newEncoder picks a JSON or console encoder; anything but "json" is console.
func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	if format == FormatJSON {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// newCore builds a zapcore.Core targeting the given writer.
func newCore(level zapcore.Level, format string, ws zapcore.WriteSyncer) zapcore.Core {
	return zapcore.NewCore(newEncoder(format), zapcore.Lock(ws), zap.NewAtomicLevelAt(level))
}

// newZapLogger constructs a sugared zap logger writing to stdout.
func newZapLogger(levelStr, format string) *Logger {
	core := newCore(toZapLevel(levelStr), format, zapcore.AddSync(os.Stdout))
	return &Logger{
		SugaredLogger: zap.New(core, zap.AddCaller()).Sugar().With("service", "catalog"),
	}
}

// Package logger holds the process-wide structured logger.
//
// Library packages log only at debug level through Logger; nothing is
// written until a binary calls Initialize. Tests and embedders that never
// call Initialize get a no-op logger.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured log entries.
const (
	FieldComponent = "component"
	FieldRule      = "rule"
	FieldToken     = "token"
	FieldIndex     = "index"
	FieldUsed      = "used"
	FieldInput     = "input"
	FieldResult    = "result"
	FieldError     = "error"
	FieldConfig    = "config"
)

var (
	// Logger is the global logger. Never nil.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether Initialize selected JSON encoding.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. level is one of debug, info, warn
// or error; anything else falls back to warn.
func Initialize(jsonOutput bool, level string) error {
	JSONOutput = jsonOutput
	lvl := ParseLevel(level)

	var (
		zapLogger *zap.Logger
		err       error
	)

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				lvl,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// ParseLevel maps a config string to a zap level.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}

// Cleanup flushes buffered entries.
func Cleanup() {
	_ = Logger.Sync()
}

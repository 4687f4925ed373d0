// Package logging provides structured logging for the tool: a zap-based
// Logger that tees human-readable console output and JSON file output, with
// lumberjack-backed rotation of the file.
package logging

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Standard field names used in JSON log output.
const (
	FieldTimestamp = "timestamp"
	FieldLevel     = "level"
	FieldCaller    = "caller"
	FieldMessage   = "message"
	FieldStack     = "stacktrace"
)

// NewEncoderConfig returns the encoder configuration for JSON file output:
// ISO8601 timestamps, lowercase level names, short caller paths.
func NewEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       FieldTimestamp,
		LevelKey:      FieldLevel,
		CallerKey:     FieldCaller,
		MessageKey:    FieldMessage,
		StacktraceKey: FieldStack,
		LineEnding:    zapcore.DefaultLineEnding,

		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewConsoleEncoderConfig returns the encoder configuration for console
// output: colored level names and compact timestamps.
func NewConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := NewEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("15:04:05.000"))
	}
	return cfg
}

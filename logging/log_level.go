package logging

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ParseLogLevelString parses a log level name, case-insensitively.
// Valid levels: debug, info, warn, warning, error, fatal. Empty or
// unrecognized input yields defaultLevel.
func ParseLogLevelString(levelStr string, defaultLevel zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return defaultLevel
	}
}

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the tool's logger.
//
// In dev mode the console output is colored and the default level is debug;
// otherwise output is JSON at info level. levelStr, when non-empty, overrides
// the default level (see ParseLogLevelString). The log file rotates
// automatically.
//
// The caller owns the returned logger and should defer a Sync.
func NewLogger(isDev bool, logFilePath, levelStr string) *zap.Logger {
	defaultLevel := zapcore.InfoLevel
	if isDev {
		defaultLevel = zapcore.DebugLevel
	}
	level := ParseLogLevelString(levelStr, defaultLevel)

	return zap.New(NewMultiCore(level, logFilePath, isDev), zap.AddCaller())
}

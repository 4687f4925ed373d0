package logging

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewMultiCore returns a core that tees log entries to the console and to a
// rotating log file.
//
// The file side always uses JSON encoding so logs stay machine-parseable. The
// console side is human-readable and colored in dev mode, JSON otherwise.
// Console output goes to stderr; stdout is reserved for the tool's own
// progress messages.
func NewMultiCore(level zapcore.Level, filePath string, isDev bool) zapcore.Core {
	return NewMultiCoreWithWriters(level, zapcore.AddSync(os.Stderr), NewFileWriter(filePath), isDev)
}

// NewMultiCoreWithWriters is NewMultiCore with explicit writers, which lets
// tests capture output in buffers.
func NewMultiCoreWithWriters(level zapcore.Level, consoleWriter, fileWriter zapcore.WriteSyncer, isDev bool) zapcore.Core {
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(NewEncoderConfig()),
		fileWriter,
		level,
	)

	var consoleEncoder zapcore.Encoder
	if isDev {
		consoleEncoder = zapcore.NewConsoleEncoder(NewConsoleEncoderConfig())
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(NewEncoderConfig())
	}
	consoleCore := zapcore.NewCore(consoleEncoder, consoleWriter, level)

	return zapcore.NewTee(consoleCore, fileCore)
}

package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wraps zap's sugared logger
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger creates a console logger writing to stderr. Verbose enables
// debug-level output.
func NewLogger(verbose bool) *Logger {
	core := zapcore.NewCore(
		newEncoder(),
		zapcore.Lock(os.Stderr),
		level(verbose),
	)
	return &Logger{zap.New(core).Sugar()}
}

// NewFileLogger creates a logger that writes to stderr and appends the same
// output to the file at path.
func NewFileLogger(verbose bool, path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(newEncoder(), zapcore.Lock(os.Stderr), level(verbose)),
		zapcore.NewCore(newEncoder(), zapcore.AddSync(file), level(verbose)),
	)
	return &Logger{zap.New(core).Sugar()}, nil
}

// NewNop returns a logger that discards all output.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func newEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Package log provides category-based structured logging for the shell.
// The TUI owns the terminal, so entries go to a file and only when debug
// logging is enabled via --debug or PGP_DEBUG.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category groups related log messages.
type Category string

const (
	CatAuth   Category = "auth"   // Login and logout
	CatTabs   Category = "tabs"   // Workspace tab transitions
	CatGrid   Category = "grid"   // Launcher grid filtering and selection
	CatUI     Category = "ui"     // Menus, notices, input routing
	CatConfig Category = "config" // Configuration loading and reload
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init points the global logger at path, creating it if needed.
// The returned function flushes buffered entries and must be called on exit.
func Init(path string, debug bool) (func(), error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	set(l)
	return func() { _ = l.Sync() }, nil
}

// Use replaces the global logger. Intended for tests.
func Use(l *zap.Logger) {
	set(l)
}

func set(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(zapcore.DebugLevel, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(zapcore.InfoLevel, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(zapcore.WarnLevel, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(zapcore.ErrorLevel, cat, msg, fields...)
}

func write(level zapcore.Level, cat Category, msg string, fields ...any) {
	l := get()
	ce := l.Check(level, msg)
	if ce == nil {
		return
	}

	zf := make([]zap.Field, 0, len(fields)/2+2)
	zf = append(zf, zap.String("cat", string(cat)))
	for i := 0; i+1 < len(fields); i += 2 {
		zf = append(zf, zap.Any(fmt.Sprint(fields[i]), fields[i+1]))
	}
	// Odd field count: keep the orphan key visible.
	if len(fields)%2 != 0 {
		zf = append(zf, zap.String(fmt.Sprint(fields[len(fields)-1]), "<missing>"))
	}
	ce.Write(zf...)
}

// Package output centralizes terminal output for the psm CLI.
//
// Diagnostics (Debug/Info/Warn/Error) go to stderr through a shared
// charmbracelet logger so they never pollute machine-readable output.
// Data (Print/Println) goes to stdout.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// timeFormat is the timestamp layout used by the stderr logger.
const timeFormat = "15:04:05"

// logger is the package-level logger. Reconfigured once at startup via
// SetupLogging; defaults are sane for code paths that log before setup.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      timeFormat,
})

// LogConfig controls the behavior of the shared logger.
type LogConfig struct {
	// Verbose enables debug level and caller reporting, and forces
	// timestamps on regardless of the Timestamps setting.
	Verbose bool

	// Timestamps toggles timestamp rendering. Nil means on.
	Timestamps *bool
}

// BoolPtr returns a pointer to b. Convenience for LogConfig.Timestamps.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging reconfigures the package logger. Called once from the root
// command after flags and config are resolved.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if !cfg.Verbose && cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      timeFormat,
	})
}

// Logger returns the shared logger for callers that need structured fields.
func Logger() *log.Logger {
	return logger
}

// TemplateLogger returns a logger scoped to a single template, prefixing
// every line with the template name.
func TemplateLogger(name string) *log.Logger {
	return logger.WithPrefix(name)
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an informational message with optional key-value pairs.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning with optional key-value pairs.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error with optional key-value pairs.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Print writes data output to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println writes data output to stdout with a trailing newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

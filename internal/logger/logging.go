// Package logger builds prefixed charmbracelet/log loggers for the other
// packages. Everything writes to stderr: stdout belongs to the msgpack
// IPC stream in server mode and must stay clean.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a prefixed logger at the global level.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a prefixed logger with explicit options.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}

// SetupDefault redirects the package-level default logger to stderr and
// applies the requested level. Called once from main before any package
// logs.
func SetupDefault(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
}

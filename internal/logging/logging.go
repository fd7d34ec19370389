// Package logging builds the structured loggers used by the commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at info level, or debug level when debug is set.
func New(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "ago",
	})
}

// Install makes logger the package-level default and returns it.
func Install(logger *log.Logger) *log.Logger {
	log.SetDefault(logger)
	return logger
}

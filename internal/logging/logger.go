// Package logging provides the process-wide diagnostic logger. All output
// goes to standard error so it never mixes with command output.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.WarnLevel,
		Prefix:          "todo",
		ReportTimestamp: false,
	})
	if DebugEnabled() {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return logger
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
// TODO_DEBUG always wins and keeps the logger at debug level.
func SetLevel(level string) error {
	if DebugEnabled() {
		logger.SetLevel(log.DebugLevel)
		return nil
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(level string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return 0, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Debugln logs its arguments at debug level, space separated
func Debugln(args ...interface{}) {
	logger.Debug(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

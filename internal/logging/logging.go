// =============================================================================
// Seasonal Augmenter - Logging
// =============================================================================
//
// Diagnostic logging for every module goes through the Logger interface.
// The implementation is backed by charmbracelet/log and writes leveled,
// key/value records to stderr. User-facing progress lines are not logs; the
// commands print those to stdout themselves.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the logging interface used across the application.
// Arguments after msg are alternating keys and values.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

// charmLogger adapts *log.Logger to Logger.
type charmLogger struct {
	l *log.Logger
}

func (c *charmLogger) Debug(msg string, keyvals ...interface{}) { c.l.Debug(msg, keyvals...) }
func (c *charmLogger) Info(msg string, keyvals ...interface{})  { c.l.Info(msg, keyvals...) }
func (c *charmLogger) Warn(msg string, keyvals ...interface{})  { c.l.Warn(msg, keyvals...) }
func (c *charmLogger) Error(msg string, keyvals ...interface{}) { c.l.Error(msg, keyvals...) }

// New creates a Logger writing to w at the named level.
// Valid levels: "debug", "info", "warn", "error".
func New(w io.Writer, level string) (Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	l := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "augmenter",
	})
	return &charmLogger{l: l}, nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &charmLogger{l: log.New(io.Discard)}
}

// package shared defines helpers used across the application
package shared

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewLogger creates a new [log.Logger] instance with the specified [io.Writer], with timestamps enabled.
//
// The writer defaults to [os.Stderr]
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := log.Options{ReportTimestamp: true}
	return log.NewWithOptions(w, opts)
}

// WithLogger creates a child [log.Logger] with the specified key-value pairs added to all log entries.
func WithLogger(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// SetLogLevel sets the level for the given [log.Logger] from a config level
// name, leaving the level untouched when the name doesn't parse.
func SetLogLevel(l *log.Logger, name string) {
	if name == "" {
		return
	}
	if ll, err := log.ParseLevel(name); err == nil {
		l.SetLevel(ll)
	}
}

// GenerateID generates a new v4 [uuid.UUID] as a string, used to correlate
// log lines belonging to one stats run.
func GenerateID() string {
	return uuid.New().String()
}

// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options configures New
type Options struct {
	Debug  bool
	Prefix string
	Output io.Writer // defaults to stderr
}

// New creates a timestamped logger at Info level, or Debug when requested
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := log.InfoLevel
	if opts.Debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}

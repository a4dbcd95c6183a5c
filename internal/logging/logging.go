// Package logging builds the diagnostics logger. Output goes to a file
// because the TUI owns stdout for the duration of the program.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New creates a structured logger writing to path. An empty path disables
// output. The returned func closes the log file.
func New(path, level string) (zerolog.Logger, func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = io.Discard
	closer := func() error { return nil }

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Nop(), closer, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		out = f
		closer = f.Close
	}

	log := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return log, closer, nil
}

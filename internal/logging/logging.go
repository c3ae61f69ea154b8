// Package logging sets up structured logging for the completion demo.
//
// The terminal belongs to Bubble Tea while the demo runs, so records go to a
// logfmt file through a charmbracelet/log handler installed behind log/slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
)

const prefix = "complete"

// Options configures Setup.
type Options struct {
	// Path of the log file. Empty disables logging.
	Path  string
	Level string
}

// New returns a slog logger writing logfmt records to w.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	charmLogger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
		Formatter:       charmlog.LogfmtFormatter,
	})
	return slog.New(charmLogger), nil
}

// Setup opens the log file, installs the logger as the slog default and
// returns it with a function that closes the file.
func Setup(opts Options) (*slog.Logger, func() error, error) {
	if opts.Path == "" {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger, err := New(f, opts.Level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	slog.SetDefault(logger)
	return logger, f.Close, nil
}

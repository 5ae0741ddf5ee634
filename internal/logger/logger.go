// Package logger writes the prototype's append-only log file.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Options struct {
	File   string
	Level  slog.Level
	Stderr bool
}

// Logger is a slog.Logger bound to an open log file. The file is framed
// by BEGIN LOG and END LOG records.
type Logger struct {
	*slog.Logger
	f *os.File
}

// Open appends to opts.File, creating it if needed, and writes BEGIN LOG.
func Open(opts Options) (*Logger, error) {
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", opts.File, err)
	}
	var w io.Writer = f
	if opts.Stderr {
		w = io.MultiWriter(f, os.Stderr)
	}
	l := &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.Level})),
		f:      f,
	}
	l.Info("BEGIN LOG")
	return l, nil
}

// Close writes END LOG and closes the file. Calling it twice is harmless.
func (l *Logger) Close() error {
	if l.f == nil {
		return nil
	}
	l.Info("END LOG")
	err := l.f.Close()
	l.f = nil
	l.Logger = slog.New(slog.DiscardHandler)
	return err
}

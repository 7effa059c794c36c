package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// newLogger returns a logger writing to $XDG_STATE_HOME/gstat/gstat.log.
// The TUI owns the terminal, so nothing may log to stderr; when no log
// file can be opened, logging is discarded.
func newLogger() zerolog.Logger {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return zerolog.New(io.Discard)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	dir = filepath.Join(dir, "gstat")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return zerolog.New(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, "gstat.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.New(io.Discard)
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

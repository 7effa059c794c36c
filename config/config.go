// Package config persists the dashboard view state between runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/stats"
)

// Default returns the out-of-the-box view state.
func Default() model.ViewState {
	return model.ViewState{
		Interval: time.Second,
		Columns:  stats.DefaultMask,
	}
}

// Path returns ~/.config/gstat/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gstat", "config.json")
}

// Load reads the persisted state from path. A missing file returns
// defaults silently; a corrupt file returns defaults with a warning.
// Either way the program starts.
func Load(path string, log zerolog.Logger) model.ViewState {
	st := Default()
	if path == "" {
		return st
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config parse error, using defaults")
		return Default()
	}
	if st.Interval <= 0 {
		st.Interval = time.Second
	}
	return st
}

// Save writes the state to path, creating the directory if needed.
func Save(path string, st model.ViewState) error {
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

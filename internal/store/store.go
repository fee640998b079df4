// Package store persists the small durable client state (auth token, theme
// preference) as a JSON file. Both values are optional; absence means
// logged-out and default theme.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const stateFile = "state.json"

// File is a file-backed key-value store for client state.
type File struct {
	path string

	mu    sync.Mutex
	state state
}

type state struct {
	Token string `json:"token,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Open ensures the state directory exists and loads any previous state.
// A missing or unreadable file yields empty state, not an error.
func Open(dir string) (*File, error) {
	if dir == "" {
		dir = ".eduplatform"
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	f := &File{path: filepath.Join(dir, stateFile)}
	if raw, err := os.ReadFile(f.path); err == nil {
		_ = json.Unmarshal(raw, &f.state)
	}
	return f, nil
}

// Token returns the persisted bearer token, or "" when logged out.
func (f *File) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Token
}

// SaveToken persists the bearer token.
func (f *File) SaveToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Token = token
	return f.flush()
}

// DeleteToken removes the persisted token.
func (f *File) DeleteToken() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Token = ""
	return f.flush()
}

// Theme returns the persisted theme preference, defaulting to "light".
func (f *File) Theme() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Theme == "" {
		return "light"
	}
	return f.state.Theme
}

// SaveTheme persists the theme preference.
func (f *File) SaveTheme(theme string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Theme = theme
	return f.flush()
}

func (f *File) flush() error {
	raw, err := json.MarshalIndent(f.state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

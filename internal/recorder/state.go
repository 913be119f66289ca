// Package recorder records tracked cube sessions to the session log.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AppState is the small amount of state kept between cubie invocations.
type AppState struct {
	DBPath          string    `json:"db_path"`
	ActiveSessionID string    `json:"active_session_id,omitempty"`
	LastSessionID   string    `json:"last_session_id,omitempty"`
	LastSeed        uint64    `json:"last_seed,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitzero"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// NewStateFile creates a state file manager, loading path if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	return nil
}

// Save writes the state to disk, creating the parent directory if needed.
func (sf *StateFile) Save() error {
	sf.state.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetDBPath sets the database path.
func (sf *StateFile) SetDBPath(path string) error {
	sf.state.DBPath = path
	return sf.Save()
}

// SetActiveSession marks a session as in progress.
func (sf *StateFile) SetActiveSession(sessionID string) error {
	sf.state.ActiveSessionID = sessionID
	return sf.Save()
}

// FinishSession clears the active session and remembers it as the last one.
func (sf *StateFile) FinishSession(sessionID string) error {
	if sf.state.ActiveSessionID == sessionID {
		sf.state.ActiveSessionID = ""
	}
	sf.state.LastSessionID = sessionID
	return sf.Save()
}

// SetLastSeed remembers the seed of the most recent seeded scramble.
func (sf *StateFile) SetLastSeed(seed uint64) error {
	sf.state.LastSeed = seed
	return sf.Save()
}

// HasActiveSession returns true if a session was started and not ended.
func (sf *StateFile) HasActiveSession() bool {
	return sf.state.ActiveSessionID != ""
}

// ActiveSessionID returns the active session ID.
func (sf *StateFile) ActiveSessionID() string {
	return sf.state.ActiveSessionID
}

// LastSessionID returns the most recently ended session ID.
func (sf *StateFile) LastSessionID() string {
	return sf.state.LastSessionID
}

// DBPath returns the database path.
func (sf *StateFile) DBPath() string {
	return sf.state.DBPath
}

// Package persist owns the state shape that survives a restart and its
// JSON file storage. Transient state (switcher visibility, in-flight drag
// state) is deliberately not part of the shape. Writes are atomic:
// temp file plus rename, so a crash mid-save never corrupts the previous
// snapshot.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"paneldeck/internal/layout"
	"paneldeck/internal/workspace"
)

const (
	// StateDirEnv is the env var override for the state directory.
	StateDirEnv = "PANELDECK_STATE_DIR"
	// DefaultStateBase is the default state directory under $HOME.
	DefaultStateBase = ".paneldeck"
	// StateFile is the snapshot file name inside the state directory.
	StateFile = "state.json"

	// SchemaVersion is bumped when the persisted shape changes.
	SchemaVersion = 1
)

// State is everything that must survive a restart.
type State struct {
	Version           int                   `json:"version"`
	Workspaces        []layout.Workspace    `json:"workspaces"`
	ActiveWorkspaceID string                `json:"activeWorkspaceId"`
	MonitorConfig     *layout.MonitorConfig `json:"monitorConfig,omitempty"`
}

// ResolveStateDir returns the state directory, using the PANELDECK_STATE_DIR
// env var if set, otherwise ~/.paneldeck.
func ResolveStateDir() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultStateBase), nil
}

// FileStore reads and writes snapshots at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to dir/state.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StateFile)}
}

// Path returns the snapshot file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the last snapshot. A missing file returns (nil, nil) so the
// caller seeds defaults; a corrupt or unreadable file returns an error.
func (f *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse state %s: %w", f.path, err)
	}
	return &st, nil
}

// Save writes the snapshot atomically.
func (f *FileStore) Save(st State) error {
	st.Version = SchemaVersion
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("commit state: %w", err)
	}
	return nil
}

// Snapshot projects a store into the persisted shape.
func Snapshot(s *workspace.Store) State {
	return State{
		Version:           SchemaVersion,
		Workspaces:        s.Workspaces(),
		ActiveWorkspaceID: s.ActiveWorkspaceID(),
		MonitorConfig:     s.MonitorConfig(),
	}
}

// Restore builds a store from a snapshot. A nil snapshot yields a store
// seeded with the default workspace.
func Restore(st *State) *workspace.Store {
	if st == nil {
		return workspace.New()
	}
	return workspace.NewFromState(st.Workspaces, st.ActiveWorkspaceID, st.MonitorConfig)
}

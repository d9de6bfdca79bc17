package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paneldeck/internal/layout"
	"paneldeck/internal/workspace"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	store := workspace.New()
	id := store.AddWorkspace("Research", nil)
	store.UpdateMonitorConfig(layout.MonitorConfig{
		Monitors: []layout.Monitor{{ID: "m1", Name: "Main", IsPrimary: true, Width: 1920, Height: 1080}},
	})

	require.NoError(t, fs.Save(Snapshot(store)))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, SchemaVersion, loaded.Version)
	assert.Equal(t, id, loaded.ActiveWorkspaceID)
	require.Len(t, loaded.Workspaces, 2)
	assert.Equal(t, "Research", loaded.Workspaces[1].Name)
	require.NotNil(t, loaded.MonitorConfig)
	assert.Equal(t, "m1", loaded.MonitorConfig.Monitors[0].ID)

	restored := Restore(loaded)
	assert.Equal(t, id, restored.ActiveWorkspaceID())
	assert.Equal(t, 2, restored.Count())
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	st, err := fs.Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFile), []byte("{not json"), 0o644))

	st, err := NewFileStore(dir).Load()
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "parse state")
}

func TestSaveCreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	fs := NewFileStore(dir)

	require.NoError(t, fs.Save(Snapshot(workspace.New())))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StateFile, entries[0].Name())
}

func TestSaveStampsSchemaVersion(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	st := Snapshot(workspace.New())
	st.Version = 999

	require.NoError(t, fs.Save(st))
	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, loaded.Version)
}

func TestRestoreNilSeedsDefault(t *testing.T) {
	s := Restore(nil)
	require.Equal(t, 1, s.Count())
	w, ok := s.ActiveWorkspace()
	require.True(t, ok)
	assert.Equal(t, "Workspace 1", w.Name)
}

func TestSnapshotUsesCamelCaseKeys(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Save(Snapshot(workspace.New())))

	data, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	body := string(data)
	for _, key := range []string{`"activeWorkspaceId"`, `"workspaces"`, `"isUnsaved"`, `"createdAt"`} {
		if !strings.Contains(body, key) {
			t.Errorf("snapshot missing key %s", key)
		}
	}
}

func TestResolveStateDirEnvOverride(t *testing.T) {
	t.Setenv(StateDirEnv, "/tmp/paneldeck-test")
	dir, err := ResolveStateDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/paneldeck-test", dir)
}

func TestResolveStateDirDefault(t *testing.T) {
	t.Setenv(StateDirEnv, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	dir, err := ResolveStateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultStateBase), dir)
}

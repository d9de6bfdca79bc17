package workspace

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paneldeck/internal/layout"
)

// testStore returns a store with deterministic ids ("ws-1", "ws-2", ...)
// and a fixed clock so scenarios can reference workspaces by id.
func testStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("ws-%d", n)
	}
	s.now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestNewSeedsDefaultWorkspace(t *testing.T) {
	s := New()
	require.Equal(t, 1, s.Count())
	w, ok := s.ActiveWorkspace()
	require.True(t, ok)
	assert.Equal(t, "Workspace 1", w.Name)
	assert.Len(t, w.Layout.Panels, 3)
	assert.False(t, w.IsUnsaved)
}

func TestAddDuplicateDeleteScenario(t *testing.T) {
	s := testStore(t)
	first := s.ActiveWorkspaceID()

	research := s.AddWorkspace("Research", nil)
	require.NotEmpty(t, research)
	assert.Equal(t, research, s.ActiveWorkspaceID())

	copyID := s.DuplicateWorkspace(research)
	require.NotEmpty(t, copyID)
	assert.Equal(t, copyID, s.ActiveWorkspaceID())

	copied, ok := s.Workspace(copyID)
	require.True(t, ok)
	assert.Equal(t, "Research (Copy)", copied.Name)

	require.True(t, s.DeleteWorkspace(research))
	assert.Equal(t, 2, s.Count())
	// Deleting a non-active workspace leaves activation alone.
	assert.Equal(t, copyID, s.ActiveWorkspaceID())

	require.True(t, s.DeleteWorkspace(copyID))
	assert.Equal(t, first, s.ActiveWorkspaceID())
}

func TestDeleteLastWorkspaceRefused(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	assert.False(t, s.DeleteWorkspace(id))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, id, s.ActiveWorkspaceID())
}

func TestDeleteActiveFallsBackToFirst(t *testing.T) {
	s := testStore(t)
	first := s.ActiveWorkspaceID()
	second := s.AddWorkspace("", nil)

	require.Equal(t, second, s.ActiveWorkspaceID())
	require.True(t, s.DeleteWorkspace(second))
	assert.Equal(t, first, s.ActiveWorkspaceID())
}

func TestDeleteUnknownIsNoOp(t *testing.T) {
	s := testStore(t)
	s.AddWorkspace("", nil)
	assert.False(t, s.DeleteWorkspace("nope"))
	assert.Equal(t, 2, s.Count())
}

func TestAddWorkspaceDefaultName(t *testing.T) {
	s := testStore(t)
	id := s.AddWorkspace("", nil)
	w, ok := s.Workspace(id)
	require.True(t, ok)
	assert.Equal(t, "Workspace 2", w.Name)
}

func TestAddWorkspaceDoesNotAliasGivenLayout(t *testing.T) {
	s := testStore(t)
	wl := layout.DefaultLayout()
	id := s.AddWorkspace("aliased?", &wl)

	wl.Panels[0].Title = "mutated"
	w, _ := s.Workspace(id)
	assert.NotEqual(t, "mutated", w.Layout.Panels[0].Title)
}

func TestRenameDoesNotMarkUnsaved(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	s.RenameWorkspace(id, "Trading")
	w, _ := s.Workspace(id)
	assert.Equal(t, "Trading", w.Name)
	assert.False(t, w.IsUnsaved)
}

func TestSetActiveWorkspaceUnknownIsNoOp(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	s.SetActiveWorkspace("nope")
	assert.Equal(t, id, s.ActiveWorkspaceID())
}

func TestReorderWorkspaces(t *testing.T) {
	s := testStore(t)
	a := s.ActiveWorkspaceID()
	b := s.AddWorkspace("B", nil)
	c := s.AddWorkspace("C", nil)

	s.ReorderWorkspaces([]string{c, a, b})
	ids := workspaceIDs(s)
	assert.Equal(t, []string{c, a, b}, ids)
}

func TestReorderIgnoresUnknownAndKeepsOmitted(t *testing.T) {
	s := testStore(t)
	a := s.ActiveWorkspaceID()
	b := s.AddWorkspace("B", nil)
	c := s.AddWorkspace("C", nil)

	// b is omitted, "ghost" is unknown; b must survive after the ordered ids.
	s.ReorderWorkspaces([]string{c, "ghost", a})
	ids := workspaceIDs(s)
	assert.Equal(t, []string{c, a, b}, ids)
	assert.Equal(t, 3, s.Count())
}

func workspaceIDs(s *Store) []string {
	ws := s.Workspaces()
	ids := make([]string, len(ws))
	for i, w := range ws {
		ids[i] = w.ID
	}
	return ids
}

func TestUpdateLayoutMarksUnsavedAndStampsMonitorConfig(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	s.UpdateMonitorConfig(layout.MonitorConfig{
		Monitors: []layout.Monitor{{ID: "m1", Name: "Main", IsPrimary: true, Width: 1920, Height: 1080}},
	})

	wl := layout.DefaultLayout()
	s.UpdateWorkspaceLayout(id, wl)

	w, _ := s.Workspace(id)
	assert.True(t, w.IsUnsaved)
	require.NotNil(t, w.Layout.MonitorConfig)
	assert.Equal(t, "m1", w.Layout.MonitorConfig.Monitors[0].ID)
}

func TestSaveAndMarkUnsaved(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()

	s.MarkWorkspaceAsUnsaved(id)
	w, _ := s.Workspace(id)
	require.True(t, w.IsUnsaved)

	s.SaveWorkspace(id)
	w, _ = s.Workspace(id)
	assert.False(t, w.IsUnsaved)
}

func TestResetWorkspaceLayout(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	s.RemovePanel(id, "chart")
	w, _ := s.Workspace(id)
	require.Len(t, w.Layout.Panels, 2)
	require.True(t, w.IsUnsaved)

	s.ResetWorkspaceLayout(id)
	w, _ = s.Workspace(id)
	assert.Len(t, w.Layout.Panels, 3)
	assert.False(t, w.IsUnsaved)
}

func TestLoadPresetClearsUnsaved(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	s.MarkWorkspaceAsUnsaved(id)

	s.LoadPreset("preset-trading")
	w, _ := s.Workspace(id)
	assert.False(t, w.IsUnsaved)
	assert.GreaterOrEqual(t, w.Layout.PanelIndex("order-book"), 0)
}

func TestLoadPresetUnknownIsNoOp(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()
	before, _ := s.Workspace(id)

	s.LoadPreset("preset-nope")
	after, _ := s.Workspace(id)
	assert.Equal(t, before.Layout, after.Layout)
	assert.False(t, after.IsUnsaved)
}

func TestSwitcherToggle(t *testing.T) {
	s := testStore(t)
	assert.False(t, s.SwitcherOpen())
	s.ToggleWorkspaceSwitcher()
	assert.True(t, s.SwitcherOpen())
	s.SetWorkspaceSwitcherOpen(false)
	assert.False(t, s.SwitcherOpen())
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s := testStore(t)
	var calls int
	s.SetOnChange(func() { calls++ })

	id := s.AddWorkspace("X", nil)
	s.RenameWorkspace(id, "Y")
	s.DeleteWorkspace(id)
	assert.Equal(t, 3, calls)
}

func TestOnChangeCanReadBack(t *testing.T) {
	s := testStore(t)
	var seen int
	s.SetOnChange(func() { seen = s.Count() })
	s.AddWorkspace("X", nil)
	assert.Equal(t, 2, seen)
}

func TestNewFromStateRestores(t *testing.T) {
	src := testStore(t)
	id := src.AddWorkspace("Restored", nil)
	ws := src.Workspaces()

	s := NewFromState(ws, id, nil)
	assert.Equal(t, id, s.ActiveWorkspaceID())
	assert.Equal(t, 2, s.Count())
}

func TestNewFromStateEmptySeedsDefault(t *testing.T) {
	s := NewFromState(nil, "", nil)
	require.Equal(t, 1, s.Count())
	w, ok := s.ActiveWorkspace()
	require.True(t, ok)
	assert.Equal(t, "Workspace 1", w.Name)
}

func TestNewFromStateUnknownActiveFallsBack(t *testing.T) {
	src := testStore(t)
	ws := src.Workspaces()

	s := NewFromState(ws, "nope", nil)
	assert.Equal(t, ws[0].ID, s.ActiveWorkspaceID())
}

func TestAccessorsReturnDeepCopies(t *testing.T) {
	s := testStore(t)
	id := s.ActiveWorkspaceID()

	w, _ := s.Workspace(id)
	w.Layout.Panels[0].Title = "mutated"

	again, _ := s.Workspace(id)
	assert.NotEqual(t, "mutated", again.Layout.Panels[0].Title)
}

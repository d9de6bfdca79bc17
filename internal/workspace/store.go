// Package workspace implements the owning state machine for all
// workspaces. Every mutation funnels through a single layout-replace entry
// point so invariant checking happens in one place, and consumers re-read
// state after each change via the onChange notification.
//
// All operations are total: unknown ids degrade to no-ops. The one
// business-rule refusal is deleting the last workspace; the collection is
// never allowed to become empty.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"paneldeck/internal/layout"
	"paneldeck/internal/logging"
)

// Store owns the workspace collection, the active workspace id, the last
// known monitor config and the switcher visibility flag. It is safe for
// concurrent use; interactive callers are expected to be a single event
// loop but async windowing continuations land here too.
type Store struct {
	mu            sync.RWMutex
	workspaces    []layout.Workspace
	activeID      string
	monitorConfig *layout.MonitorConfig
	switcherOpen  bool
	presets       []layout.LayoutPreset

	onChange func()

	logger *slog.Logger
	tracer oteltrace.Tracer
	now    func() time.Time
	newID  func() string
}

// New creates a store seeded with one default workspace so the non-empty
// invariant holds from the start.
func New() *Store {
	s := newStore()
	s.workspaces = []layout.Workspace{s.newWorkspace("Workspace 1", layout.DefaultLayout())}
	s.activeID = s.workspaces[0].ID
	return s
}

// NewFromState restores a store from persisted state. An empty workspace
// slice is replaced by the default seed; an unknown active id falls back
// to the first workspace.
func NewFromState(workspaces []layout.Workspace, activeID string, cfg *layout.MonitorConfig) *Store {
	s := newStore()
	for _, w := range workspaces {
		s.workspaces = append(s.workspaces, w.Clone())
	}
	if len(s.workspaces) == 0 {
		s.workspaces = []layout.Workspace{s.newWorkspace("Workspace 1", layout.DefaultLayout())}
	}
	s.activeID = activeID
	if s.indexOf(s.activeID) < 0 {
		s.activeID = s.workspaces[0].ID
	}
	s.monitorConfig = cfg.Clone()
	return s
}

func newStore() *Store {
	return &Store{
		presets: layout.BuiltinPresets(),
		logger:  logging.ForComponent("workspace.store"),
		tracer:  otel.Tracer("paneldeck/workspace"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// SetOnChange registers a callback invoked after every state change. The
// callback runs without the store lock held, so it may read back freely.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	fn := s.onChange
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (s *Store) span(op string, attrs ...attribute.KeyValue) oteltrace.Span {
	_, span := s.tracer.Start(context.Background(), "workspace."+op)
	span.SetAttributes(attrs...)
	return span
}

// indexOf returns the index of the workspace with the given id, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id string) int {
	for i := range s.workspaces {
		if s.workspaces[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) newWorkspace(name string, wl layout.WorkspaceLayout) layout.Workspace {
	now := s.now()
	return layout.Workspace{
		ID:        s.newID(),
		Name:      name,
		Layout:    wl,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// replaceLayout is the single mutation point every layout-affecting
// operation funnels through. It deep-clones the layout, stamps the current
// monitor config onto it, marks the workspace unsaved and bumps its
// update time. Invariant violations are logged, never raised. Callers
// must hold the lock.
func (s *Store) replaceLayout(idx int, wl layout.WorkspaceLayout) {
	clone := wl.Clone()
	if s.monitorConfig != nil {
		clone.MonitorConfig = s.monitorConfig.Clone()
	}
	for _, err := range clone.Validate() {
		s.logger.Warn("layout invariant violated", "workspace", s.workspaces[idx].ID, "violation", err)
	}
	s.workspaces[idx].Layout = clone
	s.workspaces[idx].IsUnsaved = true
	s.workspaces[idx].UpdatedAt = s.now()
}

// AddWorkspace appends and activates a new workspace. An empty name gets
// the default "Workspace {n+1}"; a nil layout gets a fresh clone of the
// built-in default so the template is never aliased. Returns the new
// workspace's id.
func (s *Store) AddWorkspace(name string, wl *layout.WorkspaceLayout) string {
	defer s.span("addWorkspace").End()

	s.mu.Lock()
	if name == "" {
		name = fmt.Sprintf("Workspace %d", len(s.workspaces)+1)
	}
	var nl layout.WorkspaceLayout
	if wl != nil {
		nl = wl.Clone()
	} else {
		nl = layout.DefaultLayout()
	}
	w := s.newWorkspace(name, nl)
	s.workspaces = append(s.workspaces, w)
	s.activeID = w.ID
	s.mu.Unlock()

	s.notify()
	return w.ID
}

// DuplicateWorkspace deep-clones the target into a new active workspace
// named "{name} (Copy)". Unknown id is a no-op; returns the new id or "".
func (s *Store) DuplicateWorkspace(id string) string {
	defer s.span("duplicateWorkspace", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ""
	}
	src := s.workspaces[idx]
	w := s.newWorkspace(src.Name+" (Copy)", src.Layout.Clone())
	s.workspaces = append(s.workspaces, w)
	s.activeID = w.ID
	s.mu.Unlock()

	s.notify()
	return w.ID
}

// DeleteWorkspace removes the workspace. Deleting the sole remaining
// workspace is refused. If the active workspace is deleted, activation
// falls back to the first remaining workspace. Returns whether a deletion
// happened.
func (s *Store) DeleteWorkspace(id string) bool {
	defer s.span("deleteWorkspace", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	if len(s.workspaces) <= 1 {
		s.mu.Unlock()
		s.logger.Debug("refusing to delete the last workspace", "workspace", id)
		return false
	}
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.workspaces = append(s.workspaces[:idx], s.workspaces[idx+1:]...)
	if s.activeID == id {
		s.activeID = s.workspaces[0].ID
	}
	s.mu.Unlock()

	s.notify()
	return true
}

// RenameWorkspace updates the name and update time only. A rename does not
// mark the workspace unsaved.
func (s *Store) RenameWorkspace(id, name string) {
	defer s.span("renameWorkspace", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.workspaces[idx].Name = name
	s.workspaces[idx].UpdatedAt = s.now()
	s.mu.Unlock()

	s.notify()
}

// SetActiveWorkspace activates the workspace. Unknown id is a no-op.
func (s *Store) SetActiveWorkspace(id string) {
	defer s.span("setActiveWorkspace", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	if s.indexOf(id) < 0 || s.activeID == id {
		s.mu.Unlock()
		return
	}
	s.activeID = id
	s.mu.Unlock()

	s.notify()
}

// ReorderWorkspaces projects the collection into the given id order.
// Unknown ids are ignored; workspaces missing from the order keep their
// relative position after the ordered ones, so a reorder can never drop a
// workspace. If the active id somehow leaves the collection, activation
// falls back to the first entry.
func (s *Store) ReorderWorkspaces(orderedIDs []string) {
	defer s.span("reorderWorkspaces").End()

	s.mu.Lock()
	seen := make(map[string]bool, len(orderedIDs))
	out := make([]layout.Workspace, 0, len(s.workspaces))
	for _, id := range orderedIDs {
		if idx := s.indexOf(id); idx >= 0 && !seen[id] {
			out = append(out, s.workspaces[idx])
			seen[id] = true
		}
	}
	for _, w := range s.workspaces {
		if !seen[w.ID] {
			out = append(out, w)
		}
	}
	s.workspaces = out
	if s.indexOf(s.activeID) < 0 {
		s.activeID = s.workspaces[0].ID
	}
	s.mu.Unlock()

	s.notify()
}

// UpdateWorkspaceLayout replaces the workspace's layout through the
// central funnel. Unknown id is a no-op.
func (s *Store) UpdateWorkspaceLayout(id string, wl layout.WorkspaceLayout) {
	defer s.span("updateWorkspaceLayout", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// MarkWorkspaceAsUnsaved flags unsaved changes without touching layout
// content.
func (s *Store) MarkWorkspaceAsUnsaved(id string) {
	s.setUnsaved(id, true)
}

// SaveWorkspace clears the unsaved flag without touching layout content.
func (s *Store) SaveWorkspace(id string) {
	s.setUnsaved(id, false)
}

func (s *Store) setUnsaved(id string, unsaved bool) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 || s.workspaces[idx].IsUnsaved == unsaved {
		s.mu.Unlock()
		return
	}
	s.workspaces[idx].IsUnsaved = unsaved
	s.mu.Unlock()

	s.notify()
}

// ResetWorkspaceLayout replaces the layout with a fresh clone of the
// built-in default and clears the unsaved flag.
func (s *Store) ResetWorkspaceLayout(id string) {
	defer s.span("resetWorkspaceLayout", attribute.String("workspace.id", id)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.replaceLayout(idx, layout.DefaultLayout())
	s.workspaces[idx].IsUnsaved = false
	s.mu.Unlock()

	s.notify()
}

// LoadPreset replaces the active workspace's layout with a clone of the
// preset's template and clears the unsaved flag. Unknown preset id or no
// active workspace is a no-op.
func (s *Store) LoadPreset(presetID string) {
	defer s.span("loadPreset", attribute.String("preset.id", presetID)).End()

	s.mu.Lock()
	var preset *layout.LayoutPreset
	for i := range s.presets {
		if s.presets[i].ID == presetID {
			preset = &s.presets[i]
			break
		}
	}
	idx := s.indexOf(s.activeID)
	if preset == nil || idx < 0 {
		s.mu.Unlock()
		return
	}
	s.replaceLayout(idx, preset.Layout.Clone())
	s.workspaces[idx].IsUnsaved = false
	s.mu.Unlock()

	s.notify()
}

// Presets returns the preset catalog.
func (s *Store) Presets() []layout.LayoutPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]layout.LayoutPreset(nil), s.presets...)
}

// ToggleWorkspaceSwitcher flips the switcher visibility flag.
func (s *Store) ToggleWorkspaceSwitcher() {
	s.mu.Lock()
	s.switcherOpen = !s.switcherOpen
	s.mu.Unlock()
	s.notify()
}

// SetWorkspaceSwitcherOpen sets the switcher visibility flag.
func (s *Store) SetWorkspaceSwitcherOpen(open bool) {
	s.mu.Lock()
	if s.switcherOpen == open {
		s.mu.Unlock()
		return
	}
	s.switcherOpen = open
	s.mu.Unlock()
	s.notify()
}

// SwitcherOpen reports the switcher visibility flag.
func (s *Store) SwitcherOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.switcherOpen
}

// UpdateMonitorConfig stores the latest display geometry. Stamping onto
// workspace layouts happens lazily at the next layout replacement.
func (s *Store) UpdateMonitorConfig(cfg layout.MonitorConfig) {
	defer s.span("updateMonitorConfig").End()

	s.mu.Lock()
	s.monitorConfig = cfg.Clone()
	s.mu.Unlock()

	s.notify()
}

// MonitorConfig returns a copy of the last known display geometry, or nil.
func (s *Store) MonitorConfig() *layout.MonitorConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.monitorConfig.Clone()
}

// ActiveWorkspaceID returns the id of the active workspace.
func (s *Store) ActiveWorkspaceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// ActiveWorkspace returns a deep copy of the active workspace.
func (s *Store) ActiveWorkspace() (layout.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(s.activeID)
	if idx < 0 {
		return layout.Workspace{}, false
	}
	return s.workspaces[idx].Clone(), true
}

// Workspace returns a deep copy of the workspace with the given id.
func (s *Store) Workspace(id string) (layout.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return layout.Workspace{}, false
	}
	return s.workspaces[idx].Clone(), true
}

// Workspaces returns deep copies of all workspaces in display order.
func (s *Store) Workspaces() []layout.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]layout.Workspace, len(s.workspaces))
	for i := range s.workspaces {
		out[i] = s.workspaces[i].Clone()
	}
	return out
}

// Count returns the number of workspaces.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.workspaces)
}

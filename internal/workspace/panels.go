package workspace

import (
	"go.opentelemetry.io/otel/attribute"

	"paneldeck/internal/grid"
	"paneldeck/internal/layout"
)

// Panel-level operations. Each one rebuilds the workspace layout and
// applies it through the replaceLayout funnel, so the invariants are
// checked in one place no matter how fine-grained the edit.

// AddPanel atomically appends a panel and its grid layout, keyed by the
// shared id. If the ids disagree, the grid layout is re-keyed to the
// panel's id. Adding a panel id that already exists is a no-op.
func (s *Store) AddPanel(id string, p layout.Panel, pl layout.PanelLayout) {
	defer s.span("addPanel", attribute.String("panel.id", p.ID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	if wl.PanelIndex(p.ID) >= 0 {
		s.mu.Unlock()
		return
	}
	pl.I = p.ID
	wl.Panels = append(wl.Panels, p)
	wl.Layouts = append(wl.Layouts, pl)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// RemovePanel atomically removes a panel, its grid layout, any floating
// window hosting it and its monitor assignment. Removing an unknown
// panel id is idempotent.
func (s *Store) RemovePanel(id, panelID string) {
	defer s.span("removePanel", attribute.String("panel.id", panelID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	pi := wl.PanelIndex(panelID)
	if pi < 0 {
		s.mu.Unlock()
		return
	}
	wl.Panels = append(wl.Panels[:pi], wl.Panels[pi+1:]...)
	if li := wl.LayoutIndex(panelID); li >= 0 {
		wl.Layouts = append(wl.Layouts[:li], wl.Layouts[li+1:]...)
	}
	for i := 0; i < len(wl.FloatingWindows); {
		if wl.FloatingWindows[i].PanelID == panelID {
			wl.FloatingWindows = append(wl.FloatingWindows[:i], wl.FloatingWindows[i+1:]...)
			continue
		}
		i++
	}
	wl.MonitorAssignments = layout.StripPanel(wl.MonitorAssignments, panelID)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// TogglePanelLock flips Panel.IsLocked together with the grid layout's
// static/draggable/resizable flags; the pair must never diverge.
func (s *Store) TogglePanelLock(id, panelID string) {
	defer s.span("togglePanelLock", attribute.String("panel.id", panelID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	pi := wl.PanelIndex(panelID)
	li := wl.LayoutIndex(panelID)
	if pi < 0 || li < 0 {
		s.mu.Unlock()
		return
	}
	locked := !wl.Panels[pi].IsLocked
	wl.Panels[pi].IsLocked = locked
	wl.Layouts[li].Static = locked
	movable := !locked
	wl.Layouts[li].IsDraggable = &movable
	wl.Layouts[li].IsResizable = &movable
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// TogglePanelMinimize flips the minimized flag. Grid geometry is
// untouched: a minimized panel keeps its slot, consumers just skip its
// content.
func (s *Store) TogglePanelMinimize(id, panelID string) {
	s.setMinimized(id, panelID, nil)
}

// SetPanelMinimized sets the minimized flag explicitly.
func (s *Store) SetPanelMinimized(id, panelID string, minimized bool) {
	s.setMinimized(id, panelID, &minimized)
}

func (s *Store) setMinimized(id, panelID string, to *bool) {
	defer s.span("setPanelMinimized", attribute.String("panel.id", panelID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	pi := wl.PanelIndex(panelID)
	if pi < 0 {
		s.mu.Unlock()
		return
	}
	if to != nil {
		wl.Panels[pi].IsMinimized = *to
	} else {
		wl.Panels[pi].IsMinimized = !wl.Panels[pi].IsMinimized
	}
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// MovePanel applies a drag rearrangement: the moved panel's new placement
// is resolved against the rest of the grid by the engine, and the result
// replaces the workspace's layouts wholesale. A nil engine applies the
// placement verbatim. Unknown panel id is a no-op.
func (s *Store) MovePanel(id string, moved layout.PanelLayout, eng grid.Engine) {
	defer s.span("movePanel", attribute.String("panel.id", moved.I)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	if wl.LayoutIndex(moved.I) < 0 {
		s.mu.Unlock()
		return
	}
	if eng == nil {
		eng = grid.Passthrough{}
	}
	wl.Layouts = eng.Arrange(wl.Layouts, moved)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// SetSplitSizes commits a split container's size vector, as produced by a
// completed resize gesture.
func (s *Store) SetSplitSizes(id, containerID string, cfg layout.SplitConfig) {
	defer s.span("setSplitSizes", attribute.String("split.id", containerID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	if wl.Splits == nil {
		wl.Splits = make(map[string]layout.SplitConfig, 1)
	}
	wl.Splits[containerID] = cfg.Clone()
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// AssignPanelToMonitor places the panel in the target monitor's
// assignment, stripping it from every other assignment and pruning any
// left empty. Applies to the active workspace.
func (s *Store) AssignPanelToMonitor(panelID, monitorID string) {
	defer s.span("assignPanelToMonitor",
		attribute.String("panel.id", panelID),
		attribute.String("monitor.id", monitorID)).End()

	s.mu.Lock()
	idx := s.indexOf(s.activeID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	if wl.PanelIndex(panelID) < 0 {
		s.mu.Unlock()
		return
	}
	wl.MonitorAssignments = layout.AssignPanel(wl.MonitorAssignments, panelID, monitorID)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// RemovePanelFromMonitor removes the panel from that monitor's assignment
// only, pruning it if emptied. Applies to the active workspace.
func (s *Store) RemovePanelFromMonitor(panelID, monitorID string) {
	defer s.span("removePanelFromMonitor",
		attribute.String("panel.id", panelID),
		attribute.String("monitor.id", monitorID)).End()

	s.mu.Lock()
	idx := s.indexOf(s.activeID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	wl := s.workspaces[idx].Layout.Clone()
	wl.MonitorAssignments = layout.UnassignPanel(wl.MonitorAssignments, panelID, monitorID)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
}

// AttachFloatingWindow records a materialized OS window: inserts the
// window state and flips the panel's floating fields in one layout
// replacement. Returns false (without mutating) if the workspace or panel
// is unknown, or the panel already floats. Monitor assignments are
// retained so the panel re-docks to its assigned display.
func (s *Store) AttachFloatingWindow(id string, win layout.FloatingWindowState) bool {
	defer s.span("attachFloatingWindow", attribute.String("window.id", win.ID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	wl := s.workspaces[idx].Layout.Clone()
	pi := wl.PanelIndex(win.PanelID)
	if pi < 0 || wl.Panels[pi].IsFloating {
		s.mu.Unlock()
		return false
	}
	wl.Panels[pi].IsFloating = true
	wl.Panels[pi].FloatingWindowID = win.ID
	wl.FloatingWindows = append(wl.FloatingWindows, win)
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
	return true
}

// DetachFloatingWindow removes the window state and clears the hosting
// panel's floating fields. Unknown window id is a no-op.
func (s *Store) DetachFloatingWindow(id, windowID string) bool {
	defer s.span("detachFloatingWindow", attribute.String("window.id", windowID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	wl := s.workspaces[idx].Layout.Clone()
	wi := wl.WindowIndex(windowID)
	if wi < 0 {
		s.mu.Unlock()
		return false
	}
	panelID := wl.FloatingWindows[wi].PanelID
	wl.FloatingWindows = append(wl.FloatingWindows[:wi], wl.FloatingWindows[wi+1:]...)
	if pi := wl.PanelIndex(panelID); pi >= 0 {
		wl.Panels[pi].IsFloating = false
		wl.Panels[pi].FloatingWindowID = ""
	}
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
	return true
}

// PatchFloatingWindow applies an in-place edit to one window's state
// through the layout funnel. Unknown window id is a no-op.
func (s *Store) PatchFloatingWindow(id, windowID string, patch func(*layout.FloatingWindowState)) bool {
	defer s.span("patchFloatingWindow", attribute.String("window.id", windowID)).End()

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	wl := s.workspaces[idx].Layout.Clone()
	wi := wl.WindowIndex(windowID)
	if wi < 0 {
		s.mu.Unlock()
		return false
	}
	patch(&wl.FloatingWindows[wi])
	s.replaceLayout(idx, wl)
	s.mu.Unlock()

	s.notify()
	return true
}

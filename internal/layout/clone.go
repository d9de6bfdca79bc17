package layout

// Explicit structural deep copies over the concrete model. Duplicating,
// resetting and preset loading must never alias nested slices between a
// template and a live workspace.

// Clone returns a deep copy of the panel layout, including the optional
// flag pointers.
func (l PanelLayout) Clone() PanelLayout {
	out := l
	if l.IsDraggable != nil {
		v := *l.IsDraggable
		out.IsDraggable = &v
	}
	if l.IsResizable != nil {
		v := *l.IsResizable
		out.IsResizable = &v
	}
	return out
}

// Clone returns a deep copy of the split config.
func (c SplitConfig) Clone() SplitConfig {
	out := c
	out.Sizes = append([]float64(nil), c.Sizes...)
	out.MinSizes = append([]float64(nil), c.MinSizes...)
	return out
}

// Clone returns a deep copy of the assignment's panel id set.
func (a MonitorLayoutAssignment) Clone() MonitorLayoutAssignment {
	out := a
	out.PanelIDs = append([]string(nil), a.PanelIDs...)
	return out
}

// Clone returns a deep copy of the monitor config.
func (c *MonitorConfig) Clone() *MonitorConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Monitors = append([]Monitor(nil), c.Monitors...)
	return &out
}

// Clone returns a deep copy of the workspace layout.
func (wl WorkspaceLayout) Clone() WorkspaceLayout {
	out := WorkspaceLayout{
		Panels:          append([]Panel(nil), wl.Panels...),
		FloatingWindows: append([]FloatingWindowState(nil), wl.FloatingWindows...),
		MonitorConfig:   wl.MonitorConfig.Clone(),
	}
	if wl.Layouts != nil {
		out.Layouts = make([]PanelLayout, len(wl.Layouts))
		for i := range wl.Layouts {
			out.Layouts[i] = wl.Layouts[i].Clone()
		}
	}
	if wl.MonitorAssignments != nil {
		out.MonitorAssignments = make([]MonitorLayoutAssignment, len(wl.MonitorAssignments))
		for i := range wl.MonitorAssignments {
			out.MonitorAssignments[i] = wl.MonitorAssignments[i].Clone()
		}
	}
	if wl.Splits != nil {
		out.Splits = make(map[string]SplitConfig, len(wl.Splits))
		for k, v := range wl.Splits {
			out.Splits[k] = v.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the workspace.
func (w Workspace) Clone() Workspace {
	out := w
	out.Layout = w.Layout.Clone()
	return out
}

package layout

// Pure projections over MonitorLayoutAssignment slices. The workspace store
// applies these through its layout-replace funnel; nothing here mutates its
// input.

// AssignPanel returns a new assignment set with panelID present in exactly
// the assignment for monitorID. The panel is stripped from every other
// assignment first, and assignments left empty are pruned.
func AssignPanel(assignments []MonitorLayoutAssignment, panelID, monitorID string) []MonitorLayoutAssignment {
	out := make([]MonitorLayoutAssignment, 0, len(assignments)+1)
	found := false
	for _, a := range assignments {
		ids := make([]string, 0, len(a.PanelIDs))
		for _, id := range a.PanelIDs {
			if id != panelID {
				ids = append(ids, id)
			}
		}
		if a.MonitorID == monitorID {
			ids = append(ids, panelID)
			found = true
		}
		if len(ids) == 0 {
			continue // prune emptied assignment
		}
		out = append(out, MonitorLayoutAssignment{MonitorID: a.MonitorID, PanelIDs: ids})
	}
	if !found {
		out = append(out, MonitorLayoutAssignment{MonitorID: monitorID, PanelIDs: []string{panelID}})
	}
	return out
}

// UnassignPanel returns a new assignment set with panelID removed from the
// assignment for monitorID only. Other assignments are untouched; an
// emptied assignment is pruned.
func UnassignPanel(assignments []MonitorLayoutAssignment, panelID, monitorID string) []MonitorLayoutAssignment {
	out := make([]MonitorLayoutAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.MonitorID != monitorID {
			out = append(out, a.Clone())
			continue
		}
		ids := make([]string, 0, len(a.PanelIDs))
		for _, id := range a.PanelIDs {
			if id != panelID {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		out = append(out, MonitorLayoutAssignment{MonitorID: a.MonitorID, PanelIDs: ids})
	}
	return out
}

// StripPanel returns a new assignment set with panelID removed everywhere.
// Used when a panel is deleted from the workspace.
func StripPanel(assignments []MonitorLayoutAssignment, panelID string) []MonitorLayoutAssignment {
	out := make([]MonitorLayoutAssignment, 0, len(assignments))
	for _, a := range assignments {
		ids := make([]string, 0, len(a.PanelIDs))
		for _, id := range a.PanelIDs {
			if id != panelID {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		out = append(out, MonitorLayoutAssignment{MonitorID: a.MonitorID, PanelIDs: ids})
	}
	return out
}

// MonitorFor returns the monitor id a panel is assigned to, or "".
func MonitorFor(assignments []MonitorLayoutAssignment, panelID string) string {
	for _, a := range assignments {
		for _, id := range a.PanelIDs {
			if id == panelID {
				return a.MonitorID
			}
		}
	}
	return ""
}

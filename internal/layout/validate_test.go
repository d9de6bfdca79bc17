package layout

import (
	"strings"
	"testing"
)

func TestValidateCleanLayout(t *testing.T) {
	wl := sampleLayout()
	if errs := wl.Validate(); len(errs) != 0 {
		t.Errorf("clean layout reported violations: %v", errs)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name string
		mut  func(wl *WorkspaceLayout)
		want string
	}{
		{
			"panel without layout",
			func(wl *WorkspaceLayout) { wl.Layouts = wl.Layouts[:1] },
			"no grid layout",
		},
		{
			"layout without panel",
			func(wl *WorkspaceLayout) { wl.Panels = wl.Panels[:1] },
			"no panel",
		},
		{
			"lock static divergence",
			func(wl *WorkspaceLayout) { wl.Panels[1].IsLocked = false },
			"isLocked",
		},
		{
			"floating without window",
			func(wl *WorkspaceLayout) { wl.Panels[0].IsFloating = true },
			"floating but has 0 windows",
		},
		{
			"window without floating flag",
			func(wl *WorkspaceLayout) {
				wl.FloatingWindows = append(wl.FloatingWindows, FloatingWindowState{ID: "w1", PanelID: "a"})
			},
			"docked but has 1 windows",
		},
		{
			"duplicate monitor assignment",
			func(wl *WorkspaceLayout) {
				wl.MonitorAssignments = append(wl.MonitorAssignments, MonitorLayoutAssignment{MonitorID: "m2", PanelIDs: []string{"a"}})
			},
			"assigned to monitors",
		},
		{
			"empty assignment",
			func(wl *WorkspaceLayout) {
				wl.MonitorAssignments = append(wl.MonitorAssignments, MonitorLayoutAssignment{MonitorID: "m2"})
			},
			"not pruned",
		},
	}
	for _, tt := range tests {
		wl := sampleLayout()
		tt.mut(&wl)
		errs := wl.Validate()
		if len(errs) == 0 {
			t.Errorf("%s: expected a violation", tt.name)
			continue
		}
		found := false
		for _, err := range errs {
			if strings.Contains(err.Error(), tt.want) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: no violation containing %q in %v", tt.name, tt.want, errs)
		}
	}
}

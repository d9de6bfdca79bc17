package layout

import "testing"

func sampleLayout() WorkspaceLayout {
	draggable := false
	return WorkspaceLayout{
		Panels: []Panel{
			{ID: "a", Type: "chart", Title: "A"},
			{ID: "b", Type: "news", Title: "B", IsLocked: true},
		},
		Layouts: []PanelLayout{
			{I: "a", X: 0, Y: 0, W: 6, H: 4},
			{I: "b", X: 6, Y: 0, W: 6, H: 4, Static: true, IsDraggable: &draggable, IsResizable: &draggable},
		},
		FloatingWindows: []FloatingWindowState{},
		MonitorAssignments: []MonitorLayoutAssignment{
			{MonitorID: "m1", PanelIDs: []string{"a"}},
		},
		Splits: map[string]SplitConfig{
			"rows": {Axis: Vertical, Sizes: []float64{60, 40}},
		},
	}
}

func TestCloneDoesNotAliasNestedData(t *testing.T) {
	orig := sampleLayout()
	clone := orig.Clone()

	clone.Panels[0].Title = "mutated"
	clone.Layouts[0].W = 1
	*clone.Layouts[1].IsDraggable = true
	clone.MonitorAssignments[0].PanelIDs[0] = "z"
	clone.Splits["rows"].Sizes[0] = 99

	if orig.Panels[0].Title != "A" {
		t.Errorf("panel title aliased: %q", orig.Panels[0].Title)
	}
	if orig.Layouts[0].W != 6 {
		t.Errorf("layout aliased: W=%d", orig.Layouts[0].W)
	}
	if *orig.Layouts[1].IsDraggable {
		t.Error("IsDraggable pointer aliased")
	}
	if orig.MonitorAssignments[0].PanelIDs[0] != "a" {
		t.Errorf("assignment panel ids aliased: %v", orig.MonitorAssignments[0].PanelIDs)
	}
	if orig.Splits["rows"].Sizes[0] != 60 {
		t.Errorf("split sizes aliased: %v", orig.Splits["rows"].Sizes)
	}
}

func TestWorkspaceCloneIsDeep(t *testing.T) {
	w := Workspace{ID: "w1", Name: "One", Layout: sampleLayout()}
	c := w.Clone()
	c.Layout.Panels[1].IsLocked = false
	if !w.Layout.Panels[1].IsLocked {
		t.Error("workspace clone aliased layout panels")
	}
}

func TestDraggableResizableDefaults(t *testing.T) {
	yes := true
	tests := []struct {
		name          string
		l             PanelLayout
		wantDraggable bool
		wantResizable bool
	}{
		{"unset non-static", PanelLayout{I: "a"}, true, true},
		{"unset static", PanelLayout{I: "a", Static: true}, false, false},
		{"explicit overrides static", PanelLayout{I: "a", Static: true, IsDraggable: &yes, IsResizable: &yes}, true, true},
	}
	for _, tt := range tests {
		if got := tt.l.Draggable(); got != tt.wantDraggable {
			t.Errorf("%s: Draggable() = %t, want %t", tt.name, got, tt.wantDraggable)
		}
		if got := tt.l.Resizable(); got != tt.wantResizable {
			t.Errorf("%s: Resizable() = %t, want %t", tt.name, got, tt.wantResizable)
		}
	}
}

func TestSnapEdgeValid(t *testing.T) {
	for _, e := range []SnapEdge{SnapLeft, SnapRight, SnapTop, SnapBottom, SnapTopLeft, SnapTopRight, SnapBottomLeft, SnapBottomRight} {
		if !e.Valid() {
			t.Errorf("%q should be valid", e)
		}
	}
	for _, e := range []SnapEdge{"center", "", "middle"} {
		if e.Valid() {
			t.Errorf("%q should be invalid", e)
		}
	}
}

func TestDefaultLayoutNeverAliasesTemplate(t *testing.T) {
	a := DefaultLayout()
	a.Panels[0].Title = "mutated"
	a.Layouts[0].W = 1
	b := DefaultLayout()
	if b.Panels[0].Title == "mutated" || b.Layouts[0].W == 1 {
		t.Error("DefaultLayout returned an aliased template")
	}
}

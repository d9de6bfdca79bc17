package ui

import (
	"testing"

	"paneldeck/internal/layout"
)

func focusLayout() layout.WorkspaceLayout {
	return layout.WorkspaceLayout{
		Panels: []layout.Panel{
			{ID: "a", Type: "chart"},
			{ID: "b", Type: "watchlist"},
			{ID: "c", Type: "portfolio"},
		},
	}
}

func TestFocusRotation(t *testing.T) {
	wl := focusLayout()
	f := &FocusManager{Current: "a"}

	if got := f.Next(&wl); got != "b" {
		t.Errorf("Next = %q", got)
	}
	if got := f.Next(&wl); got != "c" {
		t.Errorf("Next = %q", got)
	}
	if got := f.Next(&wl); got != "a" {
		t.Errorf("wraparound = %q", got)
	}
	if got := f.Prev(&wl); got != "c" {
		t.Errorf("Prev wraparound = %q", got)
	}
}

func TestFocusSkipsFloatingPanels(t *testing.T) {
	wl := focusLayout()
	wl.Panels[1].IsFloating = true
	f := &FocusManager{Current: "a"}

	if got := f.Next(&wl); got != "c" {
		t.Errorf("Next skipped to %q, want c", got)
	}
}

func TestFocusKeepsMinimizedPanels(t *testing.T) {
	wl := focusLayout()
	wl.Panels[1].IsMinimized = true
	f := &FocusManager{Current: "a"}

	if got := f.Next(&wl); got != "b" {
		t.Errorf("minimized panel skipped: %q", got)
	}
}

func TestSyncDropsVanishedFocus(t *testing.T) {
	wl := focusLayout()
	f := &FocusManager{Current: "b"}
	var from, to string
	f.OnChange = func(a, b string) { from, to = a, b }

	wl.Panels = append(wl.Panels[:1], wl.Panels[2:]...)
	f.Sync(&wl)

	if f.Current != "a" {
		t.Errorf("Sync focus = %q", f.Current)
	}
	if from != "b" || to != "a" {
		t.Errorf("OnChange(%q, %q)", from, to)
	}
}

func TestSyncNoOpWhenStillFocusable(t *testing.T) {
	wl := focusLayout()
	f := &FocusManager{Current: "b"}
	f.OnChange = func(string, string) { t.Error("OnChange fired") }
	f.Sync(&wl)
	if f.Current != "b" {
		t.Errorf("focus moved to %q", f.Current)
	}
}

func TestSetFocus(t *testing.T) {
	wl := focusLayout()
	wl.Panels[2].IsFloating = true
	f := &FocusManager{Current: "a"}

	if !f.SetFocus(&wl, "b") {
		t.Error("SetFocus(b) rejected")
	}
	if f.SetFocus(&wl, "c") {
		t.Error("SetFocus accepted a floating panel")
	}
	if f.Current != "b" {
		t.Errorf("focus = %q", f.Current)
	}
}

func TestRotateEmptyGrid(t *testing.T) {
	wl := layout.WorkspaceLayout{}
	f := &FocusManager{Current: "a"}
	if got := f.Next(&wl); got != "" {
		t.Errorf("Next on empty = %q", got)
	}
	if f.Current != "" {
		t.Errorf("focus retained: %q", f.Current)
	}
}

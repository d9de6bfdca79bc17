package ui

import "paneldeck/internal/layout"

// FocusManager tracks and rotates focus across the docked panels of the
// active workspace. Floating panels live in their own OS windows and are
// skipped; minimized panels keep their slot and stay focusable.
type FocusManager struct {
	Current  string // ID of the currently focused panel
	OnChange func(from, to string)
}

// order returns the focusable panel ids in grid order.
func focusOrder(wl *layout.WorkspaceLayout) []string {
	ids := make([]string, 0, len(wl.Panels))
	for _, p := range wl.Panels {
		if p.IsFloating {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

// Sync drops focus if the focused panel left the grid (removed or
// floated) and picks the first focusable panel instead.
func (f *FocusManager) Sync(wl *layout.WorkspaceLayout) {
	order := focusOrder(wl)
	for _, id := range order {
		if id == f.Current {
			return
		}
	}
	from := f.Current
	f.Current = ""
	if len(order) > 0 {
		f.Current = order[0]
	}
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
}

// Next advances focus to the next docked panel. Returns the new focus id.
func (f *FocusManager) Next(wl *layout.WorkspaceLayout) string {
	return f.rotate(wl, 1)
}

// Prev advances focus to the previous docked panel.
func (f *FocusManager) Prev(wl *layout.WorkspaceLayout) string {
	return f.rotate(wl, -1)
}

func (f *FocusManager) rotate(wl *layout.WorkspaceLayout, step int) string {
	order := focusOrder(wl)
	if len(order) == 0 {
		f.Current = ""
		return ""
	}
	idx := -1
	for i, id := range order {
		if id == f.Current {
			idx = i
			break
		}
	}
	from := f.Current
	next := (idx + step + len(order)) % len(order)
	f.Current = order[next]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}

// SetFocus sets focus to the given panel id if it is focusable.
func (f *FocusManager) SetFocus(wl *layout.WorkspaceLayout, id string) bool {
	for _, o := range focusOrder(wl) {
		if o == id {
			from := f.Current
			f.Current = id
			if f.OnChange != nil && from != id {
				f.OnChange(from, id)
			}
			return true
		}
	}
	return false
}

package layout

import "fmt"

// Validate checks the structural invariants the store funnels every layout
// replacement through:
//
//   - panels and grid layouts correspond 1:1 via Panel.ID == PanelLayout.I
//   - a locked panel's grid layout is static (and vice versa)
//   - Panel.IsFloating is true iff exactly one floating window hosts it
//   - a panel id appears in at most one monitor assignment, and no
//     assignment has an empty panel id set
//
// Violations are reported, not fixed: the store logs them as diagnostics
// and applies the layout anyway, matching the no-raise error policy.
func (wl *WorkspaceLayout) Validate() []error {
	var errs []error

	layoutByID := make(map[string]*PanelLayout, len(wl.Layouts))
	for i := range wl.Layouts {
		l := &wl.Layouts[i]
		if _, dup := layoutByID[l.I]; dup {
			errs = append(errs, fmt.Errorf("duplicate grid layout %q", l.I))
		}
		layoutByID[l.I] = l
	}

	windowsByPanel := make(map[string]int, len(wl.FloatingWindows))
	for i := range wl.FloatingWindows {
		windowsByPanel[wl.FloatingWindows[i].PanelID]++
	}

	panelIDs := make(map[string]bool, len(wl.Panels))
	for i := range wl.Panels {
		p := &wl.Panels[i]
		if panelIDs[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate panel %q", p.ID))
		}
		panelIDs[p.ID] = true

		l, ok := layoutByID[p.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("panel %q has no grid layout", p.ID))
		} else if p.IsLocked != l.Static {
			errs = append(errs, fmt.Errorf("panel %q: isLocked=%t but static=%t", p.ID, p.IsLocked, l.Static))
		}

		if n := windowsByPanel[p.ID]; p.IsFloating && n != 1 {
			errs = append(errs, fmt.Errorf("panel %q is floating but has %d windows", p.ID, n))
		} else if !p.IsFloating && n != 0 {
			errs = append(errs, fmt.Errorf("panel %q is docked but has %d windows", p.ID, n))
		}
	}

	for id := range layoutByID {
		if !panelIDs[id] {
			errs = append(errs, fmt.Errorf("grid layout %q has no panel", id))
		}
	}

	assigned := make(map[string]string, len(wl.Panels))
	for _, a := range wl.MonitorAssignments {
		if len(a.PanelIDs) == 0 {
			errs = append(errs, fmt.Errorf("monitor %q: empty assignment not pruned", a.MonitorID))
		}
		for _, id := range a.PanelIDs {
			if prev, dup := assigned[id]; dup {
				errs = append(errs, fmt.Errorf("panel %q assigned to monitors %q and %q", id, prev, a.MonitorID))
			}
			assigned[id] = a.MonitorID
		}
	}

	return errs
}

// Package layout defines the data model for workspaces, panels, grid
// layouts, floating windows and monitor assignments. Everything here is
// plain data: behavior lives in the workspace store and the coordinators
// that operate on these types.
package layout

import "time"

// Panel is a logical content slot in a workspace. Type is a renderer key
// owned by the host application; the engine never inspects it.
type Panel struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	IsMinimized      bool   `json:"isMinimized"`
	IsLocked         bool   `json:"isLocked"`
	IsFloating       bool   `json:"isFloating"`
	FloatingWindowID string `json:"floatingWindowId,omitempty"`
}

// PanelLayout is the grid placement for a panel. I matches the panel's ID.
// IsDraggable and IsResizable default to the negation of Static when unset.
type PanelLayout struct {
	I           string `json:"i"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	W           int    `json:"w"`
	H           int    `json:"h"`
	MinW        int    `json:"minW,omitempty"`
	MinH        int    `json:"minH,omitempty"`
	Static      bool   `json:"static"`
	IsDraggable *bool  `json:"isDraggable,omitempty"`
	IsResizable *bool  `json:"isResizable,omitempty"`
}

// Draggable resolves the effective draggable flag.
func (l PanelLayout) Draggable() bool {
	if l.IsDraggable != nil {
		return *l.IsDraggable
	}
	return !l.Static
}

// Resizable resolves the effective resizable flag.
func (l PanelLayout) Resizable() bool {
	if l.IsResizable != nil {
		return *l.IsResizable
	}
	return !l.Static
}

// Axis is the direction of a split-pane container.
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// SplitConfig describes a resizable multi-region container along one axis.
// Sizes are percentages summing to 100. MinSizes may be shorter than Sizes;
// missing entries fall back to the resizer's default minimum.
type SplitConfig struct {
	Axis     Axis      `json:"axis"`
	Sizes    []float64 `json:"sizes"`
	MinSizes []float64 `json:"minSizes,omitempty"`
}

// SnapEdge identifies one of the eight edges/corners a floating window can
// snap to. Center is not a snap target.
type SnapEdge string

const (
	SnapLeft        SnapEdge = "left"
	SnapRight       SnapEdge = "right"
	SnapTop         SnapEdge = "top"
	SnapBottom      SnapEdge = "bottom"
	SnapTopLeft     SnapEdge = "top-left"
	SnapTopRight    SnapEdge = "top-right"
	SnapBottomLeft  SnapEdge = "bottom-left"
	SnapBottomRight SnapEdge = "bottom-right"
)

// Valid reports whether e is one of the eight snap targets.
func (e SnapEdge) Valid() bool {
	switch e {
	case SnapLeft, SnapRight, SnapTop, SnapBottom,
		SnapTopLeft, SnapTopRight, SnapBottomLeft, SnapBottomRight:
		return true
	}
	return false
}

// FloatingWindowState records an OS-level window hosting one floated panel.
type FloatingWindowState struct {
	ID          string   `json:"id"`
	PanelID     string   `json:"panelId"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	MonitorID   string   `json:"monitorId,omitempty"`
	AlwaysOnTop bool     `json:"alwaysOnTop"`
	Transparent bool     `json:"transparent"`
	SnappedEdge SnapEdge `json:"snappedEdge,omitempty"`
	IsMaximized bool     `json:"isMaximized,omitempty"`
	IsMinimized bool     `json:"isMinimized,omitempty"`
}

// MonitorLayoutAssignment maps a physical display to the panels intended to
// render there. A panel id appears in at most one assignment at a time.
type MonitorLayoutAssignment struct {
	MonitorID string   `json:"monitorId"`
	PanelIDs  []string `json:"panelIds"`
}

// Monitor is externally reported display geometry.
type Monitor struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	X           int     `json:"x"`
	Y           int     `json:"y"`
	ScaleFactor float64 `json:"scaleFactor"`
	IsPrimary   bool    `json:"isPrimary"`
}

// MonitorConfig is the last known display topology. Stored for layout
// restoration only; live rendering reads the discovery service directly.
// Synthetic is set when discovery failed and a fallback monitor was
// fabricated from the main window bounds.
type MonitorConfig struct {
	Monitors   []Monitor `json:"monitors"`
	Synthetic  bool      `json:"synthetic,omitempty"`
	DetectedAt time.Time `json:"detectedAt"`
}

// WorkspaceLayout is the complete arrangement owned by one workspace.
// Panels and Layouts correspond 1:1 via Panel.ID == PanelLayout.I.
type WorkspaceLayout struct {
	Panels             []Panel                   `json:"panels"`
	Layouts            []PanelLayout             `json:"layouts"`
	FloatingWindows    []FloatingWindowState     `json:"floatingWindows"`
	MonitorAssignments []MonitorLayoutAssignment `json:"monitorAssignments"`
	MonitorConfig      *MonitorConfig            `json:"monitorConfig,omitempty"`
	// Splits holds committed split-pane size vectors keyed by container id.
	Splits map[string]SplitConfig `json:"splits,omitempty"`
}

// Workspace is a named, independently saved arrangement of panels.
type Workspace struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Layout    WorkspaceLayout `json:"layout"`
	IsUnsaved bool            `json:"isUnsaved"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// LayoutPreset is an immutable layout template. Loading a preset replaces
// the active workspace's layout wholesale.
type LayoutPreset struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Layout      WorkspaceLayout `json:"layout"`
}

// PanelIndex returns the index of the panel with the given id, or -1.
func (wl *WorkspaceLayout) PanelIndex(panelID string) int {
	for i := range wl.Panels {
		if wl.Panels[i].ID == panelID {
			return i
		}
	}
	return -1
}

// LayoutIndex returns the index of the grid layout with the given id, or -1.
func (wl *WorkspaceLayout) LayoutIndex(panelID string) int {
	for i := range wl.Layouts {
		if wl.Layouts[i].I == panelID {
			return i
		}
	}
	return -1
}

// WindowIndex returns the index of the floating window with the given
// window id, or -1.
func (wl *WorkspaceLayout) WindowIndex(windowID string) int {
	for i := range wl.FloatingWindows {
		if wl.FloatingWindows[i].ID == windowID {
			return i
		}
	}
	return -1
}

// WindowForPanel returns the floating window hosting panelID, or nil.
func (wl *WorkspaceLayout) WindowForPanel(panelID string) *FloatingWindowState {
	for i := range wl.FloatingWindows {
		if wl.FloatingWindows[i].PanelID == panelID {
			return &wl.FloatingWindows[i]
		}
	}
	return nil
}

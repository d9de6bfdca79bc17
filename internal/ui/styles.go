package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for degraded-state banners
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title       lipgloss.Style // Bold accent color - for main titles
	TabActive   lipgloss.Style // Active workspace tab
	TabInactive lipgloss.Style // Inactive workspace tab
	TabUnsaved  lipgloss.Style // Unsaved marker on a tab

	PanelBox        lipgloss.Style // Docked panel frame
	PanelBoxFocused lipgloss.Style // Focused panel frame
	PanelBoxLocked  lipgloss.Style // Locked panel frame
	PanelTitle      lipgloss.Style // Panel title bar text
	FloatingBadge   lipgloss.Style // Placeholder for a floated panel's grid slot

	Handle       lipgloss.Style // Split-pane resize handle
	HandleActive lipgloss.Style // Handle during drag

	Box      lipgloss.Style // Standard modal box
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Help/hint text
	Status   lipgloss.Style // Status line
	Warning  lipgloss.Style // Degraded-state banner (synthetic monitor etc.)
	Selected lipgloss.Style // Highlighted/selected items
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	TabUnsaved: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	PanelBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelBoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	PanelBoxLocked: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	PanelTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	FloatingBadge: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Handle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HandleActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Warning: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
}

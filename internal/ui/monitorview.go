package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paneldeck/internal/layout"
	"paneldeck/internal/workspace"
)

// MonitorView is the monitor editor: it lists detected displays and the
// panels assigned to each, and moves the focused panel between them.
// Assignments are independent of grid position.
type MonitorView struct {
	store    *workspace.Store
	selected int // index into the monitor list
	width    int
	height   int
}

var _ View = (*MonitorView)(nil)

// NewMonitorView creates the monitor editor.
func NewMonitorView(store *workspace.Store) *MonitorView {
	return &MonitorView{store: store}
}

// Init implements View.
func (m *MonitorView) Init() tea.Cmd {
	return nil
}

// SelectedMonitorID returns the id of the highlighted monitor, or "".
func (m *MonitorView) SelectedMonitorID() string {
	cfg := m.store.MonitorConfig()
	if cfg == nil || len(cfg.Monitors) == 0 {
		return ""
	}
	if m.selected >= len(cfg.Monitors) {
		return cfg.Monitors[len(cfg.Monitors)-1].ID
	}
	return cfg.Monitors[m.selected].ID
}

// Update implements View.
func (m *MonitorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		cfg := m.store.MonitorConfig()
		n := 0
		if cfg != nil {
			n = len(cfg.Monitors)
		}
		switch msg.String() {
		case "j", "down":
			if m.selected < n-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *MonitorView) View() string {
	cfg := m.store.MonitorConfig()
	ws, ok := m.store.ActiveWorkspace()
	if cfg == nil || !ok {
		return Styles.Muted.Render("no monitor configuration")
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render("Monitors"))
	if cfg.Synthetic {
		b.WriteString("  " + Styles.Warning.Render("(fallback)"))
	}
	b.WriteString("\n\n")

	cards := make([]string, 0, len(cfg.Monitors))
	for i, mon := range cfg.Monitors {
		cards = append(cards, m.renderMonitor(&ws.Layout, mon, i == m.selected))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")
	b.WriteString(Styles.Hint.Render("j/k: select monitor  a: assign focused panel  u: unassign  esc: back"))
	return b.String()
}

func (m *MonitorView) renderMonitor(wl *layout.WorkspaceLayout, mon layout.Monitor, selected bool) string {
	style := Styles.PanelBox
	if selected {
		style = Styles.PanelBoxFocused
	}

	var b strings.Builder
	name := mon.Name
	if mon.IsPrimary {
		name += " *"
	}
	b.WriteString(Styles.PanelTitle.Render(name))
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%dx%d @ %d,%d", mon.Width, mon.Height, mon.X, mon.Y)))
	b.WriteString("\n\n")

	assigned := false
	for _, a := range wl.MonitorAssignments {
		if a.MonitorID != mon.ID {
			continue
		}
		for _, pid := range a.PanelIDs {
			title := pid
			if pi := wl.PanelIndex(pid); pi >= 0 {
				title = wl.Panels[pi].Title
			}
			b.WriteString("- " + title + "\n")
			assigned = true
		}
	}
	if !assigned {
		b.WriteString(Styles.Muted.Render("no panels assigned"))
	}

	return style.Width(30).Render(b.String())
}

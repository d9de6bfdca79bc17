package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"paneldeck/internal/layout"
	"paneldeck/internal/splitpane"
	"paneldeck/internal/switcher"
	"paneldeck/internal/workspace"
)

// GridColumns is the logical grid width; panel layouts use x/w in these
// units.
const GridColumns = 12

// rowSplitID keys the committed row-band split in WorkspaceLayout.Splits.
const rowSplitID = "rows"

// GridView renders the active workspace: a tab strip, the panel grid
// arranged in horizontal bands, and resize handles between bands wired to
// the split-pane resizer. It is a thin consumer: every render re-reads
// the store.
type GridView struct {
	store    *workspace.Store
	registry *Registry
	Focus    *FocusManager

	width  int
	height int

	// resizer state for the current workspace's row bands
	resizer    *splitpane.Resizer
	resizerKey string

	// hit-test info captured during the last render
	gridTop    int
	gridHeight int
	handleRows map[int]int // terminal row -> handle index
}

var _ View = (*GridView)(nil)

// NewGridView creates the grid container for a store.
func NewGridView(store *workspace.Store, registry *Registry) *GridView {
	return &GridView{
		store:      store,
		registry:   registry,
		Focus:      &FocusManager{},
		handleRows: make(map[int]int),
	}
}

// Init implements View.
func (g *GridView) Init() tea.Cmd {
	return nil
}

// bands groups the docked panels into horizontal bands by grid Y origin,
// top to bottom. Floating panels keep a placeholder slot in their band.
type band struct {
	y      int
	panels []int // indexes into wl.Panels, sorted by X
}

func rowBands(wl *layout.WorkspaceLayout) []band {
	byY := make(map[int][]int)
	for i := range wl.Panels {
		li := wl.LayoutIndex(wl.Panels[i].ID)
		if li < 0 {
			continue
		}
		y := wl.Layouts[li].Y
		byY[y] = append(byY[y], i)
	}
	ys := make([]int, 0, len(byY))
	for y := range byY {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	out := make([]band, 0, len(ys))
	for _, y := range ys {
		idxs := byY[y]
		sort.Slice(idxs, func(a, b int) bool {
			la := wl.Layouts[wl.LayoutIndex(wl.Panels[idxs[a]].ID)]
			lb := wl.Layouts[wl.LayoutIndex(wl.Panels[idxs[b]].ID)]
			return la.X < lb.X
		})
		out = append(out, band{y: y, panels: idxs})
	}
	return out
}

// syncResizer rebuilds the resizer when the workspace or its band count
// changes, seeding sizes from the committed split or the bands' grid
// heights.
func (g *GridView) syncResizer(ws *layout.Workspace, bands []band) {
	key := fmt.Sprintf("%s/%d", ws.ID, len(bands))
	if g.resizer != nil && g.resizerKey == key {
		return
	}
	cfg, ok := ws.Layout.Splits[rowSplitID]
	if !ok || len(cfg.Sizes) != len(bands) {
		cfg = layout.SplitConfig{Axis: layout.Vertical, Sizes: defaultBandSizes(&ws.Layout, bands)}
	}
	wsID := ws.ID
	store := g.store
	g.resizer = splitpane.New(cfg, func(sizes []float64) {
		store.SetSplitSizes(wsID, rowSplitID, layout.SplitConfig{Axis: layout.Vertical, Sizes: sizes})
	})
	g.resizerKey = key
}

func defaultBandSizes(wl *layout.WorkspaceLayout, bands []band) []float64 {
	heights := make([]float64, len(bands))
	var total float64
	for i, b := range bands {
		h := 1
		for _, pi := range b.panels {
			if li := wl.LayoutIndex(wl.Panels[pi].ID); li >= 0 && wl.Layouts[li].H > h {
				h = wl.Layouts[li].H
			}
		}
		heights[i] = float64(h)
		total += float64(h)
	}
	if total == 0 {
		total = 1
	}
	for i := range heights {
		heights[i] = heights[i] / total * 100
	}
	return heights
}

// Update implements View.
func (g *GridView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.width = msg.Width
		g.height = msg.Height
	case tea.MouseMsg:
		g.handleMouse(msg)
	}
	return g, nil
}

func (g *GridView) handleMouse(msg tea.MouseMsg) {
	if g.resizer == nil {
		return
	}
	sample := splitpane.NormalizeMouse(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if handle, ok := g.handleRows[msg.Y]; ok {
			g.resizer.Press(handle)
		}
	case tea.MouseActionMotion:
		g.resizer.Move(sample, float64(g.gridTop), float64(g.gridHeight))
	case tea.MouseActionRelease:
		g.resizer.Release()
	}
}

// View implements View.
func (g *GridView) View() string {
	ws, ok := g.store.ActiveWorkspace()
	if !ok {
		return Styles.Muted.Render("no active workspace")
	}
	g.Focus.Sync(&ws.Layout)

	var b strings.Builder
	tabs := g.renderTabs()
	b.WriteString(tabs)
	b.WriteString("\n")

	headerRows := lipgloss.Height(tabs)
	if cfg := g.store.MonitorConfig(); cfg != nil && cfg.Synthetic {
		banner := Styles.Warning.Render("monitor discovery unavailable - using fallback display")
		b.WriteString(banner)
		b.WriteString("\n")
		headerRows += lipgloss.Height(banner)
	}

	bands := rowBands(&ws.Layout)
	g.syncResizer(&ws, bands)
	g.gridTop = headerRows
	g.gridHeight = g.height - headerRows - 1 // status line at the bottom
	if g.gridHeight < len(bands)*3 {
		g.gridHeight = len(bands) * 3
	}

	g.handleRows = make(map[int]int)
	sizes := g.resizer.Sizes()
	row := g.gridTop
	handleCount := len(bands) - 1
	usable := g.gridHeight - handleCount
	for i, bd := range bands {
		bandRows := int(float64(usable)*sizes[i]/100 + 0.5)
		if bandRows < 3 {
			bandRows = 3
		}
		b.WriteString(g.renderBand(&ws.Layout, bd, bandRows))
		b.WriteString("\n")
		row += bandRows
		if i < handleCount {
			b.WriteString(g.renderHandle(i))
			b.WriteString("\n")
			g.handleRows[row] = i
			row++
		}
	}

	b.WriteString(g.statusLine(&ws))
	return b.String()
}

func (g *GridView) renderTabs() string {
	tabs := switcher.Tabs(g.store.Workspaces(), g.store.ActiveWorkspaceID())
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		label := t.Name
		if t.IsUnsaved {
			label += Styles.TabUnsaved.Render("*")
		}
		if t.IsActive {
			parts = append(parts, Styles.TabActive.Render("["+label+"]"))
		} else {
			parts = append(parts, Styles.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (g *GridView) renderBand(wl *layout.WorkspaceLayout, bd band, rows int) string {
	cellW := g.width / GridColumns
	if cellW < 2 {
		cellW = 2
	}
	boxes := make([]string, 0, len(bd.panels))
	for _, pi := range bd.panels {
		p := wl.Panels[pi]
		li := wl.LayoutIndex(p.ID)
		w := cellW * wl.Layouts[li].W
		boxes = append(boxes, g.renderPanel(p, w, rows))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (g *GridView) renderPanel(p layout.Panel, width, height int) string {
	style := Styles.PanelBox
	switch {
	case p.ID == g.Focus.Current:
		style = Styles.PanelBoxFocused
	case p.IsLocked:
		style = Styles.PanelBoxLocked
	}
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	title := Styles.PanelTitle.Render(p.Title)
	if p.IsLocked {
		title += Styles.Muted.Render(" [locked]")
	}

	var body string
	switch {
	case p.IsFloating:
		body = Styles.FloatingBadge.Render("floating in window " + p.FloatingWindowID)
	case p.IsMinimized:
		body = Styles.Muted.Render("minimized")
	default:
		body = g.registry.Render(p, innerW, innerH-1)
	}

	content := title + "\n" + body
	return style.Width(innerW).Height(innerH).Render(content)
}

func (g *GridView) renderHandle(i int) string {
	style := Styles.Handle
	if g.resizer.Dragging() {
		style = Styles.HandleActive
	}
	w := g.width
	if w < 1 {
		w = 1
	}
	return style.Render(strings.Repeat("─", w))
}

func (g *GridView) statusLine(ws *layout.Workspace) string {
	status := fmt.Sprintf("%s  panels:%d floating:%d", ws.Name, len(ws.Layout.Panels), len(ws.Layout.FloatingWindows))
	hints := "tab:focus  f:float  d:dock  l:lock  m:minimize  SPC:menu"
	return Styles.Status.Render(status) + "  " + Styles.Hint.Render(hints)
}

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"paneldeck/internal/floating"
	"paneldeck/internal/workspace"
)

// storeChangedMsg forces a repaint after a keybind mutated the store.
type storeChangedMsg struct{}

// switcherOpenedMsg opens the switcher modal.
type switcherOpenedMsg struct{}

// windowCreatedMsg reports a completed float request.
type windowCreatedMsg struct {
	windowID string
}

// windowClosedMsg reports a completed dock request.
type windowClosedMsg struct {
	windowID string
}

// windowErrMsg carries a surfaced windowing-service error (creation only;
// background reconciliation failures are logged inside the coordinator).
type windowErrMsg struct {
	err error
}

// AppModel is the root model: it owns the grid and monitor views, the
// switcher modal, and dispatches float/dock requests to the coordinator
// off the event loop.
type AppModel struct {
	Mode    AppMode
	Grid    *GridView
	Monitor *MonitorView
	Modal   View

	Store       *workspace.Store
	Coordinator *floating.Coordinator
	KeyHandler  *KeyHandler

	lastErr error
}

// NewAppModel wires the root model. registry holds the host's panel
// renderers.
func NewAppModel(store *workspace.Store, coord *floating.Coordinator, registry *Registry) *AppModel {
	a := &AppModel{
		Mode:        ModeGrid,
		Grid:        NewGridView(store, registry),
		Monitor:     NewMonitorView(store),
		Store:       store,
		Coordinator: coord,
	}
	a.KeyHandler = NewKeyHandler(a.buildKeybinds())
	return a
}

func (a *AppModel) buildKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("SPC w", a.openSwitcher, "switch workspace")
	reg.Bind("SPC n", a.storeCmd(func() { a.Store.AddWorkspace("", nil) }), "new workspace")
	reg.Bind("SPC c", a.storeCmd(func() { a.Store.DuplicateWorkspace(a.Store.ActiveWorkspaceID()) }), "duplicate workspace")
	reg.Bind("SPC x", a.storeCmd(func() { a.Store.DeleteWorkspace(a.Store.ActiveWorkspaceID()) }), "delete workspace")
	reg.Bind("SPC s", a.storeCmd(func() { a.Store.SaveWorkspace(a.Store.ActiveWorkspaceID()) }), "save workspace")
	reg.Bind("SPC r", a.storeCmd(func() { a.Store.ResetWorkspaceLayout(a.Store.ActiveWorkspaceID()) }), "reset layout")
	reg.Bind("SPC p 1", a.storeCmd(func() { a.Store.LoadPreset("preset-default") }), "preset: default")
	reg.Bind("SPC p 2", a.storeCmd(func() { a.Store.LoadPreset("preset-trading") }), "preset: trading")
	reg.Bind("SPC p 3", a.storeCmd(func() { a.Store.LoadPreset("preset-research") }), "preset: research")
	return reg
}

// storeCmd wraps a synchronous store call as a tea.Cmd so keybinds stay
// declarative. The emitted message forces a repaint.
func (a *AppModel) storeCmd(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return storeChangedMsg{}
	}
}

func (a *AppModel) openSwitcher() tea.Msg {
	a.Store.SetWorkspaceSwitcherOpen(true)
	return switcherOpenedMsg{}
}

// AsTeaModel adapts the AppModel for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{a}
}

type appModelAdapter struct {
	*AppModel
}

var _ tea.Model = (*appModelAdapter)(nil)

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Grid.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectWorkspaceMsg:
		a.Store.SetActiveWorkspace(msg.ID)
		a.Store.SetWorkspaceSwitcherOpen(false)
		a.Modal = nil
		return a, nil
	case DismissModalMsg:
		a.Store.SetWorkspaceSwitcherOpen(false)
		a.Modal = nil
		return a, nil
	case storeChangedMsg, windowCreatedMsg, windowClosedMsg:
		return a, nil
	case switcherOpenedMsg:
		a.Modal = a.newSwitcherModal()
		return a, nil
	case windowErrMsg:
		a.lastErr = msg.err
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		// Both views track the terminal size.
		v, _ := a.Grid.Update(msg)
		a.Grid = v.(*GridView)
		v, _ = a.Monitor.Update(msg)
		a.Monitor = v.(*MonitorView)
		return a, nil
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal owns input while open.
	if a.Modal != nil {
		v, cmd := a.Modal.Update(msg)
		a.Modal = v
		return a, cmd
	}

	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return a, tea.Quit
	}

	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	switch msg.String() {
	case "M":
		if a.Mode == ModeGrid {
			a.Mode = ModeMonitors
		} else {
			a.Mode = ModeGrid
		}
		return a, nil
	case "esc":
		a.Mode = ModeGrid
		return a, nil
	}

	if a.Mode == ModeGrid {
		switch msg.String() {
		case "tab":
			ws, ok := a.Store.ActiveWorkspace()
			if ok {
				a.Grid.Focus.Next(&ws.Layout)
			}
			return a, nil
		case "f":
			return a, a.floatFocused()
		case "d":
			return a, a.dockFocused()
		case "l":
			if id := a.Grid.Focus.Current; id != "" {
				a.Store.TogglePanelLock(a.Store.ActiveWorkspaceID(), id)
			}
			return a, nil
		case "m":
			if id := a.Grid.Focus.Current; id != "" {
				a.Store.TogglePanelMinimize(a.Store.ActiveWorkspaceID(), id)
			}
			return a, nil
		}
	}

	if a.Mode == ModeMonitors {
		switch msg.String() {
		case "a":
			if id := a.Grid.Focus.Current; id != "" {
				a.Store.AssignPanelToMonitor(id, a.Monitor.SelectedMonitorID())
			}
			return a, nil
		case "u":
			if id := a.Grid.Focus.Current; id != "" {
				a.Store.RemovePanelFromMonitor(id, a.Monitor.SelectedMonitorID())
			}
			return a, nil
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// floatFocused floats the focused panel asynchronously; the store only
// changes after the windowing service succeeds.
func (a *appModelAdapter) floatFocused() tea.Cmd {
	panelID := a.Grid.Focus.Current
	if panelID == "" {
		return nil
	}
	coord := a.Coordinator
	return func() tea.Msg {
		winID, err := coord.CreateFloatingWindow(context.Background(), panelID, floating.CreateOptions{})
		if err != nil {
			return windowErrMsg{err: err}
		}
		return windowCreatedMsg{windowID: winID}
	}
}

// dockFocused docks the focused panel if it is floating.
func (a *appModelAdapter) dockFocused() tea.Cmd {
	ws, ok := a.Store.ActiveWorkspace()
	if !ok {
		return nil
	}
	panelID := a.Grid.Focus.Current
	win := ws.Layout.WindowForPanel(panelID)
	if win == nil {
		return nil
	}
	windowID := win.ID
	coord := a.Coordinator
	return func() tea.Msg {
		if err := coord.DockWindow(context.Background(), windowID); err != nil {
			return windowErrMsg{err: err}
		}
		return windowClosedMsg{windowID: windowID}
	}
}

func (a *appModelAdapter) newSwitcherModal() View {
	workspaces := a.Store.Workspaces()
	ids := make([]string, len(workspaces))
	names := make([]string, len(workspaces))
	for i, w := range workspaces {
		ids[i] = w.ID
		names[i] = w.Name
	}
	return NewWorkspaceSwitcherModal(ids, names)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Modal != nil {
		return a.Modal.View()
	}
	base := a.currentView().View()
	if a.lastErr != nil {
		base += "\n" + Styles.Warning.Render("window error: "+a.lastErr.Error())
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		hints := a.KeyHandler.Registry.LeaderHints(a.KeyHandler.Buffer())
		for _, h := range hints {
			base += "\n" + Styles.Hint.Render(h)
		}
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeMonitors {
		return a.Monitor
	}
	return a.Grid
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeMonitors:
		if m, ok := v.(*MonitorView); ok {
			a.Monitor = m
		}
	default:
		if g, ok := v.(*GridView); ok {
			a.Grid = g
		}
	}
}

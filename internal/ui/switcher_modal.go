package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectWorkspaceMsg is sent when the user picks a workspace in the
// switcher.
type SelectWorkspaceMsg struct {
	ID string
}

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// WorkspaceSwitcherModal is a modal for jumping to a workspace by name.
// Filtering is fuzzy, matching the tab strip's search behavior.
type WorkspaceSwitcherModal struct {
	list  list.Model
	ids   []string
	names []string
}

type workspaceItem struct {
	id   string
	name string
}

func (w workspaceItem) FilterValue() string { return w.name }
func (w workspaceItem) Title() string       { return w.name }
func (w workspaceItem) Description() string { return "" }

var _ View = (*WorkspaceSwitcherModal)(nil)

// NewWorkspaceSwitcherModal creates a picker over the workspace tabs in
// display order.
func NewWorkspaceSwitcherModal(ids, names []string) *WorkspaceSwitcherModal {
	items := make([]list.Item, len(ids))
	for i := range ids {
		items[i] = workspaceItem{id: ids[i], name: names[i]}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = Styles.Selected
	l := list.New(items, delegate, 40, 12)
	l.Title = "Switch workspace"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &WorkspaceSwitcherModal{
		list:  l,
		ids:   ids,
		names: names,
	}
}

// Init implements View.
func (m *WorkspaceSwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *WorkspaceSwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				id := sel.(workspaceItem).id
				return m, func() tea.Msg { return SelectWorkspaceMsg{ID: id} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *WorkspaceSwitcherModal) View() string {
	help := "Enter: select  Esc: cancel  /: filter"
	return Styles.Box.Render(m.list.View() + "\n" + Styles.Hint.Render(help))
}

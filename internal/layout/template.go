package layout

// Built-in layout templates. Callers must clone before installing one into
// a workspace; the store does this, so the package-level values stay
// pristine for the lifetime of the process.

// DefaultLayout returns a fresh deep copy of the default workspace layout:
// a chart with a watchlist beside it and a portfolio strip below, on a
// 12-column grid.
func DefaultLayout() WorkspaceLayout {
	return defaultTemplate.Clone()
}

var defaultTemplate = WorkspaceLayout{
	Panels: []Panel{
		{ID: "chart", Type: "chart", Title: "Chart"},
		{ID: "watchlist", Type: "watchlist", Title: "Watchlist"},
		{ID: "portfolio", Type: "portfolio", Title: "Portfolio"},
	},
	Layouts: []PanelLayout{
		{I: "chart", X: 0, Y: 0, W: 9, H: 8, MinW: 4, MinH: 4},
		{I: "watchlist", X: 9, Y: 0, W: 3, H: 8, MinW: 2, MinH: 3},
		{I: "portfolio", X: 0, Y: 8, W: 12, H: 4, MinW: 4, MinH: 2},
	},
}

// BuiltinPresets returns the immutable preset catalog. The store clones a
// preset's layout on load, so the returned slice can be shared.
func BuiltinPresets() []LayoutPreset {
	return builtinPresets
}

// PresetByID returns the built-in preset with the given id, or nil.
func PresetByID(id string) *LayoutPreset {
	for i := range builtinPresets {
		if builtinPresets[i].ID == id {
			return &builtinPresets[i]
		}
	}
	return nil
}

var builtinPresets = []LayoutPreset{
	{
		ID:          "preset-default",
		Name:        "Default",
		Description: "Chart, watchlist and portfolio",
		Layout:      defaultTemplate,
	},
	{
		ID:          "preset-trading",
		Name:        "Trading",
		Description: "Chart with order book and trade entry",
		Layout: WorkspaceLayout{
			Panels: []Panel{
				{ID: "chart", Type: "chart", Title: "Chart"},
				{ID: "order-book", Type: "order-book", Title: "Order Book"},
				{ID: "trade-form", Type: "trade-form", Title: "Trade"},
				{ID: "positions", Type: "positions", Title: "Positions"},
			},
			Layouts: []PanelLayout{
				{I: "chart", X: 0, Y: 0, W: 8, H: 8, MinW: 4, MinH: 4},
				{I: "order-book", X: 8, Y: 0, W: 4, H: 5, MinW: 2, MinH: 3},
				{I: "trade-form", X: 8, Y: 5, W: 4, H: 3, MinW: 2, MinH: 3},
				{I: "positions", X: 0, Y: 8, W: 12, H: 4, MinW: 4, MinH: 2},
			},
		},
	},
	{
		ID:          "preset-research",
		Name:        "Research",
		Description: "Side-by-side charts with news and notes",
		Layout: WorkspaceLayout{
			Panels: []Panel{
				{ID: "chart-a", Type: "chart", Title: "Chart A"},
				{ID: "chart-b", Type: "chart", Title: "Chart B"},
				{ID: "news", Type: "news", Title: "News"},
				{ID: "notes", Type: "notes", Title: "Notes"},
			},
			Layouts: []PanelLayout{
				{I: "chart-a", X: 0, Y: 0, W: 6, H: 7, MinW: 3, MinH: 4},
				{I: "chart-b", X: 6, Y: 0, W: 6, H: 7, MinW: 3, MinH: 4},
				{I: "news", X: 0, Y: 7, W: 6, H: 5, MinW: 3, MinH: 2},
				{I: "notes", X: 6, Y: 7, W: 6, H: 5, MinW: 3, MinH: 2},
			},
		},
	},
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"paneldeck/internal/floating"
	"paneldeck/internal/floating/tmuxwin"
	"paneldeck/internal/layout"
	"paneldeck/internal/logging"
	"paneldeck/internal/monitor"
	"paneldeck/internal/persist"
	"paneldeck/internal/tracing"
	"paneldeck/internal/ui"
	"paneldeck/internal/ui/shellpanel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	stateDir, err := persist.ResolveStateDir()
	if err != nil {
		return err
	}
	logging.Init(filepath.Join(stateDir, "paneldeck.log"))
	logger := logging.ForComponent("main")

	shutdownTracing, err := tracing.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// Restore persisted workspaces; a corrupt snapshot degrades to the
	// default seed rather than refusing to start.
	files := persist.NewFileStore(stateDir)
	state, err := files.Load()
	if err != nil {
		logger.Warn("state restore failed, starting fresh", "error", err)
	}
	store := persist.Restore(state)

	// Snapshot on every change. Failures are logged; the next change
	// retries anyway.
	store.SetOnChange(func() {
		if err := files.Save(persist.Snapshot(store)); err != nil {
			logger.Warn("state save failed", "error", err)
		}
	})

	// Monitor discovery: no host display service in the terminal, so
	// detection degrades to the synthetic primary sized from $COLUMNS
	// and $LINES when present.
	monitors := monitor.NewService(nil, envBounds)
	store.UpdateMonitorConfig(monitors.Detect(ctx))

	// Floating windows materialize as detached tmux sessions.
	winsvc, err := tmuxwin.New()
	if err != nil {
		return fmt.Errorf("floating windows need tmux: %w", err)
	}
	coord := floating.NewCoordinator(store, winsvc)

	registry := ui.NewRegistry()
	registerRenderers(registry)

	model := ui.NewAppModel(store, coord, registry).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	// Final snapshot so the last gesture always lands on disk.
	return files.Save(persist.Snapshot(store))
}

func envBounds() (int, int) {
	w := envInt("COLUMNS")
	h := envInt("LINES")
	return w, h
}

func envInt(key string) int {
	v := os.Getenv(key)
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// registerRenderers installs the sample panel bodies. Real deployments
// replace these with market views, charts and trade forms; the engine
// only ever sees the type keys.
func registerRenderers(registry *ui.Registry) {
	placeholder := func(label string) ui.Renderer {
		return func(p layout.Panel, width, height int) string {
			return label
		}
	}
	registry.Register("chart", placeholder("chart data unavailable offline"))
	registry.Register("watchlist", placeholder("AAPL  MSFT  GOOG"))
	registry.Register("portfolio", placeholder("portfolio idle"))
	registry.Register("order-book", placeholder("order book idle"))
	registry.Register("trade-form", placeholder("trade entry idle"))
	registry.Register("positions", placeholder("no open positions"))
	registry.Register("news", placeholder("no headlines"))
	registry.Register("notes", placeholder(""))

	// A live shell panel, when a shell is available.
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	if _, err := os.Stat(strings.TrimSpace(shell)); err == nil {
		sp := shellpanel.New(shellpanel.CreackPTY{}, shell, "-i")
		registry.Register("shell", sp.Renderer())
	}
}

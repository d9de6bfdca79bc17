package floating

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"paneldeck/internal/layout"
	"paneldeck/internal/logging"
	"paneldeck/internal/workspace"
)

// ErrCenterSnap is returned when a snap request names "center", which is
// not one of the eight snap targets. Rejected before any service call.
var ErrCenterSnap = errors.New("cannot snap to center")

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600
)

// CreateOptions are the caller-supplied parameters for floating a panel.
// Zero Width/Height fall back to the default window size.
type CreateOptions struct {
	Title       string
	X           int
	Y           int
	Width       int
	Height      int
	AlwaysOnTop bool
	Transparent bool
	MonitorID   string
}

// Coordinator drives the windowing service and reconciles the results
// into the workspace store. Window-creation failures surface to the
// caller; background reconciliation failures (move, resize, pin, snap)
// are logged and swallowed so interaction is never interrupted.
type Coordinator struct {
	store  *workspace.Store
	svc    Service
	logger *slog.Logger
	newID  func() string
}

// NewCoordinator wires a coordinator to its store and windowing service.
func NewCoordinator(store *workspace.Store, svc Service) *Coordinator {
	return &Coordinator{
		store:  store,
		svc:    svc,
		logger: logging.ForComponent("floating"),
		newID:  func() string { return "win-" + uuid.NewString() },
	}
}

// CreateFloatingWindow floats a panel of the active workspace into a new
// OS window. On service success the window state is inserted and the
// panel's floating fields flip in one layout replacement. On service
// failure no layout mutation happens and the error propagates; window
// creation is a user-visible action, so there is no automatic retry.
// An unknown or already-floating panel is a no-op returning "".
func (c *Coordinator) CreateFloatingWindow(ctx context.Context, panelID string, opts CreateOptions) (string, error) {
	ws, ok := c.store.ActiveWorkspace()
	if !ok {
		return "", nil
	}
	pi := ws.Layout.PanelIndex(panelID)
	if pi < 0 || ws.Layout.Panels[pi].IsFloating {
		c.logger.Debug("create ignored", "panel", panelID)
		return "", nil
	}

	win := layout.FloatingWindowState{
		ID:          c.newID(),
		PanelID:     panelID,
		X:           opts.X,
		Y:           opts.Y,
		Width:       opts.Width,
		Height:      opts.Height,
		MonitorID:   opts.MonitorID,
		AlwaysOnTop: opts.AlwaysOnTop,
		Transparent: opts.Transparent,
	}
	if win.Width <= 0 {
		win.Width = defaultWindowWidth
	}
	if win.Height <= 0 {
		win.Height = defaultWindowHeight
	}
	title := opts.Title
	if title == "" {
		title = ws.Layout.Panels[pi].Title
	}

	err := c.svc.Create(ctx, CreateRequest{
		WindowID:    win.ID,
		PanelID:     panelID,
		Title:       title,
		X:           win.X,
		Y:           win.Y,
		Width:       win.Width,
		Height:      win.Height,
		AlwaysOnTop: win.AlwaysOnTop,
		Transparent: win.Transparent,
		MonitorID:   win.MonitorID,
	})
	if err != nil {
		return "", err
	}

	if !c.store.AttachFloatingWindow(ws.ID, win) {
		// The panel disappeared or floated while the service call was in
		// flight. Tear the orphan window down again.
		c.logger.Warn("panel changed during window creation, closing orphan", "panel", panelID, "window", win.ID)
		if cerr := c.svc.Close(ctx, win.ID); cerr != nil {
			c.logger.Warn("failed to close orphan window", "window", win.ID, "error", cerr)
		}
		return "", nil
	}
	return win.ID, nil
}

// CloseFloatingWindow destroys the OS window and docks its panel back
// into the grid. Fails closed: if the service call errors, the error is
// logged and layout state is left unchanged. Unknown window id is a
// no-op.
func (c *Coordinator) CloseFloatingWindow(ctx context.Context, windowID string) error {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return nil
	}
	if err := c.svc.Close(ctx, windowID); err != nil {
		c.logger.Error("window close failed, keeping state", "window", windowID, "error", err)
		return err
	}
	c.store.DetachFloatingWindow(wsID, windowID)
	return nil
}

// DockWindow is an alias for CloseFloatingWindow: docking a floated panel
// is destroying its window.
func (c *Coordinator) DockWindow(ctx context.Context, windowID string) error {
	return c.CloseFloatingWindow(ctx, windowID)
}

// SetWindowPosition forwards the move to the OS window, then patches the
// recorded position. Failures are logged, not returned, so transient OS
// errors never interrupt interaction.
func (c *Coordinator) SetWindowPosition(ctx context.Context, windowID string, x, y int) {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return
	}
	if err := c.svc.SetPosition(ctx, windowID, x, y); err != nil {
		c.logger.Warn("set position failed", "window", windowID, "error", err)
		return
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.X = x
		w.Y = y
		w.SnappedEdge = ""
	})
}

// SetWindowSize forwards the resize, then patches the recorded size.
func (c *Coordinator) SetWindowSize(ctx context.Context, windowID string, width, height int) {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return
	}
	if err := c.svc.SetSize(ctx, windowID, width, height); err != nil {
		c.logger.Warn("set size failed", "window", windowID, "error", err)
		return
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.Width = width
		w.Height = height
	})
}

// SetWindowAlwaysOnTop forwards the pin change, then patches the flag.
func (c *Coordinator) SetWindowAlwaysOnTop(ctx context.Context, windowID string, alwaysOnTop bool) {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return
	}
	if err := c.svc.SetAlwaysOnTop(ctx, windowID, alwaysOnTop); err != nil {
		c.logger.Warn("set always-on-top failed", "window", windowID, "error", err)
		return
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.AlwaysOnTop = alwaysOnTop
	})
}

// SnapWindowToEdge repositions the window to one of the eight
// edges/corners of the target monitor's bounds. "center" (or any other
// non-edge) is rejected before the service call. Service failures are
// logged and swallowed like the other background reconciliations.
func (c *Coordinator) SnapWindowToEdge(ctx context.Context, windowID string, edge layout.SnapEdge, monitorID string) error {
	if edge == "center" {
		return ErrCenterSnap
	}
	if !edge.Valid() {
		return ErrCenterSnap
	}
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return nil
	}
	if err := c.svc.SnapToEdge(ctx, windowID, edge, monitorID); err != nil {
		c.logger.Warn("snap failed", "window", windowID, "edge", edge, "error", err)
		return nil
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.SnappedEdge = edge
		if monitorID != "" {
			w.MonitorID = monitorID
		}
	})
	return nil
}

// MaximizeWindow maximizes the OS window and records the flag.
func (c *Coordinator) MaximizeWindow(ctx context.Context, windowID string) {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return
	}
	if err := c.svc.Maximize(ctx, windowID); err != nil {
		c.logger.Warn("maximize failed", "window", windowID, "error", err)
		return
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.IsMaximized = true
		w.IsMinimized = false
	})
}

// MinimizeWindow minimizes the OS window and records the flag.
func (c *Coordinator) MinimizeWindow(ctx context.Context, windowID string) {
	wsID, ok := c.findWindow(windowID)
	if !ok {
		return
	}
	if err := c.svc.Minimize(ctx, windowID); err != nil {
		c.logger.Warn("minimize failed", "window", windowID, "error", err)
		return
	}
	c.store.PatchFloatingWindow(wsID, windowID, func(w *layout.FloatingWindowState) {
		w.IsMinimized = true
		w.IsMaximized = false
	})
}

// GetWindowPosition reads the live position from the windowing service.
func (c *Coordinator) GetWindowPosition(ctx context.Context, windowID string) (x, y int, err error) {
	return c.svc.Position(ctx, windowID)
}

// GetWindowSize reads the live size from the windowing service.
func (c *Coordinator) GetWindowSize(ctx context.Context, windowID string) (width, height int, err error) {
	return c.svc.Size(ctx, windowID)
}

// findWindow locates the workspace owning a floating window.
func (c *Coordinator) findWindow(windowID string) (wsID string, ok bool) {
	for _, ws := range c.store.Workspaces() {
		if ws.Layout.WindowIndex(windowID) >= 0 {
			return ws.ID, true
		}
	}
	return "", false
}

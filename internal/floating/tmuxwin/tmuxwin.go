// Package tmuxwin adapts the floating.Service interface onto tmux via
// gotmux. Each floating window materializes as a detached tmux session
// the user can attach to from any terminal, which is the closest thing a
// terminal host has to an independent OS window. tmux has no screen
// geometry, so position, size and snap requests are acknowledged and
// tracked here; the recorded geometry survives in the workspace layout
// and is replayed when the panel floats on a real windowing host.
package tmuxwin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/GianlucaP106/gotmux/gotmux"

	"paneldeck/internal/floating"
	"paneldeck/internal/layout"
	"paneldeck/internal/logging"
)

// ErrNoTmux is returned when the tmux binary or server is unavailable.
var ErrNoTmux = errors.New("tmux is not available")

// ErrUnknownWindow is returned for operations on windows this adapter
// never created.
var ErrUnknownWindow = errors.New("unknown window")

const sessionPrefix = "paneldeck-float-"

type rect struct {
	x, y, w, h int
}

// Adapter implements floating.Service on top of a local tmux server.
type Adapter struct {
	tmux   *gotmux.Tmux
	logger *slog.Logger

	mu      sync.Mutex
	geom    map[string]rect // windowID -> last acknowledged geometry
	session map[string]string
}

var _ floating.Service = (*Adapter)(nil)

// New connects to the default tmux server.
func New() (*Adapter, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTmux, err)
	}
	return &Adapter{
		tmux:    t,
		logger:  logging.ForComponent("tmuxwin"),
		geom:    make(map[string]rect),
		session: make(map[string]string),
	}, nil
}

// sessionName derives a tmux-safe session name from a window id. tmux
// forbids '.' and ':' in session names.
func sessionName(windowID string) string {
	r := strings.NewReplacer(".", "-", ":", "-")
	return sessionPrefix + r.Replace(windowID)
}

// Create implements floating.Service. The new session is created detached
// and named after the window so closes can find it again.
func (a *Adapter) Create(ctx context.Context, req floating.CreateRequest) error {
	name := sessionName(req.WindowID)
	if _, err := a.tmux.NewSession(&gotmux.SessionOptions{Name: name}); err != nil {
		return fmt.Errorf("create tmux session %q: %w", name, err)
	}
	a.mu.Lock()
	a.geom[req.WindowID] = rect{x: req.X, y: req.Y, w: req.Width, h: req.Height}
	a.session[req.WindowID] = name
	a.mu.Unlock()
	a.logger.Info("floating window materialized", "window", req.WindowID, "session", name, "panel", req.PanelID)
	return nil
}

// Close implements floating.Service.
func (a *Adapter) Close(ctx context.Context, windowID string) error {
	a.mu.Lock()
	name, ok := a.session[windowID]
	a.mu.Unlock()
	if !ok {
		return ErrUnknownWindow
	}
	sess, err := a.tmux.GetSessionByName(name)
	if err != nil {
		return fmt.Errorf("find tmux session %q: %w", name, err)
	}
	if sess != nil {
		if err := sess.Kill(); err != nil {
			return fmt.Errorf("kill tmux session %q: %w", name, err)
		}
	}
	a.mu.Lock()
	delete(a.geom, windowID)
	delete(a.session, windowID)
	a.mu.Unlock()
	return nil
}

// SetPosition implements floating.Service.
func (a *Adapter) SetPosition(ctx context.Context, windowID string, x, y int) error {
	return a.patch(windowID, func(r *rect) { r.x, r.y = x, y })
}

// SetSize implements floating.Service.
func (a *Adapter) SetSize(ctx context.Context, windowID string, width, height int) error {
	return a.patch(windowID, func(r *rect) { r.w, r.h = width, height })
}

// SetAlwaysOnTop implements floating.Service. tmux sessions have no
// stacking order; the request is acknowledged so the flag is recorded
// upstream.
func (a *Adapter) SetAlwaysOnTop(ctx context.Context, windowID string, alwaysOnTop bool) error {
	return a.patch(windowID, func(*rect) {})
}

// SnapToEdge implements floating.Service.
func (a *Adapter) SnapToEdge(ctx context.Context, windowID string, edge layout.SnapEdge, monitorID string) error {
	return a.patch(windowID, func(*rect) {})
}

// Position implements floating.Service.
func (a *Adapter) Position(ctx context.Context, windowID string) (int, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.geom[windowID]
	if !ok {
		return 0, 0, ErrUnknownWindow
	}
	return r.x, r.y, nil
}

// Size implements floating.Service.
func (a *Adapter) Size(ctx context.Context, windowID string) (int, int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.geom[windowID]
	if !ok {
		return 0, 0, ErrUnknownWindow
	}
	return r.w, r.h, nil
}

// Maximize implements floating.Service.
func (a *Adapter) Maximize(ctx context.Context, windowID string) error {
	return a.patch(windowID, func(*rect) {})
}

// Minimize implements floating.Service.
func (a *Adapter) Minimize(ctx context.Context, windowID string) error {
	return a.patch(windowID, func(*rect) {})
}

func (a *Adapter) patch(windowID string, fn func(*rect)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.geom[windowID]
	if !ok {
		return ErrUnknownWindow
	}
	fn(&r)
	a.geom[windowID] = r
	return nil
}

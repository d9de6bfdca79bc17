// Package floating reconciles panel float/dock requests with the
// workspace store, driving an external windowing service. The service is
// asynchronous from the interaction thread's point of view: callers run
// coordinator methods off the event loop (e.g. inside a tea.Cmd) and
// layout-visible effects apply only after the service call succeeds.
package floating

import (
	"context"

	"paneldeck/internal/layout"
)

// CreateRequest carries everything the windowing service needs to
// materialize one OS window for a panel.
type CreateRequest struct {
	WindowID    string
	PanelID     string
	Title       string
	X           int
	Y           int
	Width       int
	Height      int
	AlwaysOnTop bool
	Transparent bool
	MonitorID   string
}

// Service is the host windowing collaborator. Calls are request/response
// with no partial progress: an error means nothing happened on the OS
// side. Implementations must be safe for concurrent use.
type Service interface {
	Create(ctx context.Context, req CreateRequest) error
	Close(ctx context.Context, windowID string) error
	SetPosition(ctx context.Context, windowID string, x, y int) error
	SetSize(ctx context.Context, windowID string, width, height int) error
	SetAlwaysOnTop(ctx context.Context, windowID string, alwaysOnTop bool) error
	SnapToEdge(ctx context.Context, windowID string, edge layout.SnapEdge, monitorID string) error
	Position(ctx context.Context, windowID string) (x, y int, err error)
	Size(ctx context.Context, windowID string) (width, height int, err error)
	Maximize(ctx context.Context, windowID string) error
	Minimize(ctx context.Context, windowID string) error
}

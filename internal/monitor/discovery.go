// Package monitor reads display topology from the host and degrades to a
// synthetic single-primary fallback when discovery fails. The resulting
// MonitorConfig is stored for layout restoration only; it is not
// authoritative for live rendering.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"paneldeck/internal/layout"
	"paneldeck/internal/logging"
)

// Discovery reads the currently attached displays from the host.
type Discovery interface {
	Monitors(ctx context.Context) ([]layout.Monitor, error)
}

// BoundsFunc reports the main window bounds used to fabricate the
// fallback monitor when discovery fails.
type BoundsFunc func() (width, height int)

// Service wraps a Discovery with the fallback policy.
type Service struct {
	disc   Discovery
	bounds BoundsFunc
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a monitor service. bounds may be nil, in which case
// the fallback monitor gets a 1920x1080 extent.
func NewService(disc Discovery, bounds BoundsFunc) *Service {
	return &Service{
		disc:   disc,
		bounds: bounds,
		logger: logging.ForComponent("monitor"),
		now:    time.Now,
	}
}

// Detect returns the current display topology. Discovery failure (or an
// empty result) is recovered locally: a single synthetic primary monitor
// covering the window bounds, with the Synthetic diagnostic flag set so
// consumers can surface the degradation.
func (s *Service) Detect(ctx context.Context) layout.MonitorConfig {
	if s.disc != nil {
		monitors, err := s.disc.Monitors(ctx)
		if err == nil && len(monitors) > 0 {
			return layout.MonitorConfig{
				Monitors:   append([]layout.Monitor(nil), monitors...),
				DetectedAt: s.now(),
			}
		}
		if err != nil {
			s.logger.Warn("monitor discovery failed, using synthetic fallback", "error", err)
		}
	}
	return s.fallback()
}

func (s *Service) fallback() layout.MonitorConfig {
	w, h := 1920, 1080
	if s.bounds != nil {
		if bw, bh := s.bounds(); bw > 0 && bh > 0 {
			w, h = bw, bh
		}
	}
	return layout.MonitorConfig{
		Monitors: []layout.Monitor{{
			ID:          "synthetic-primary",
			Name:        "Primary (fallback)",
			Width:       w,
			Height:      h,
			ScaleFactor: 1,
			IsPrimary:   true,
		}},
		Synthetic:  true,
		DetectedAt: s.now(),
	}
}

// Static is a Discovery returning a fixed monitor list; used by tests and
// by hosts that learn topology out of band.
type Static []layout.Monitor

// Monitors implements Discovery.
func (s Static) Monitors(context.Context) ([]layout.Monitor, error) {
	return append([]layout.Monitor(nil), s...), nil
}

// Primary returns the primary monitor from a config, falling back to the
// first entry. ok is false for an empty config.
func Primary(cfg layout.MonitorConfig) (layout.Monitor, bool) {
	for _, m := range cfg.Monitors {
		if m.IsPrimary {
			return m, true
		}
	}
	if len(cfg.Monitors) > 0 {
		return cfg.Monitors[0], true
	}
	return layout.Monitor{}, false
}

// ByID returns the monitor with the given id from a config.
func ByID(cfg layout.MonitorConfig, id string) (layout.Monitor, bool) {
	for _, m := range cfg.Monitors {
		if m.ID == id {
			return m, true
		}
	}
	return layout.Monitor{}, false
}

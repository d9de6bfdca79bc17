package monitor

import (
	"context"
	"errors"
	"testing"

	"paneldeck/internal/layout"
)

type failingDiscovery struct{}

func (failingDiscovery) Monitors(context.Context) ([]layout.Monitor, error) {
	return nil, errors.New("display server unreachable")
}

func TestDetectUsesDiscovery(t *testing.T) {
	disc := Static{
		{ID: "m1", Name: "Main", Width: 2560, Height: 1440, IsPrimary: true},
		{ID: "m2", Name: "Side", Width: 1920, Height: 1080, X: 2560},
	}
	cfg := NewService(disc, nil).Detect(context.Background())

	if cfg.Synthetic {
		t.Error("Synthetic set despite successful discovery")
	}
	if len(cfg.Monitors) != 2 || cfg.Monitors[0].ID != "m1" {
		t.Errorf("monitors: %v", cfg.Monitors)
	}
	if cfg.DetectedAt.IsZero() {
		t.Error("DetectedAt not stamped")
	}
}

func TestDetectFallbackOnError(t *testing.T) {
	cfg := NewService(failingDiscovery{}, nil).Detect(context.Background())

	if !cfg.Synthetic {
		t.Fatal("Synthetic not set on discovery failure")
	}
	if len(cfg.Monitors) != 1 {
		t.Fatalf("monitors: %v", cfg.Monitors)
	}
	m := cfg.Monitors[0]
	if m.ID != "synthetic-primary" || !m.IsPrimary {
		t.Errorf("fallback monitor: %+v", m)
	}
	if m.Width != 1920 || m.Height != 1080 {
		t.Errorf("default bounds: %dx%d", m.Width, m.Height)
	}
}

func TestDetectFallbackOnEmptyResult(t *testing.T) {
	cfg := NewService(Static{}, nil).Detect(context.Background())
	if !cfg.Synthetic {
		t.Error("Synthetic not set for empty discovery")
	}
}

func TestDetectFallbackUsesBounds(t *testing.T) {
	svc := NewService(nil, func() (int, int) { return 240, 60 })
	cfg := svc.Detect(context.Background())

	m := cfg.Monitors[0]
	if m.Width != 240 || m.Height != 60 {
		t.Errorf("bounds: %dx%d", m.Width, m.Height)
	}
}

func TestDetectFallbackIgnoresZeroBounds(t *testing.T) {
	svc := NewService(nil, func() (int, int) { return 0, 0 })
	cfg := svc.Detect(context.Background())

	m := cfg.Monitors[0]
	if m.Width != 1920 || m.Height != 1080 {
		t.Errorf("bounds: %dx%d", m.Width, m.Height)
	}
}

func TestPrimary(t *testing.T) {
	cfg := layout.MonitorConfig{Monitors: []layout.Monitor{
		{ID: "m1"},
		{ID: "m2", IsPrimary: true},
	}}
	m, ok := Primary(cfg)
	if !ok || m.ID != "m2" {
		t.Errorf("primary: %+v ok=%t", m, ok)
	}

	cfg.Monitors[1].IsPrimary = false
	m, ok = Primary(cfg)
	if !ok || m.ID != "m1" {
		t.Errorf("first fallback: %+v ok=%t", m, ok)
	}

	if _, ok := Primary(layout.MonitorConfig{}); ok {
		t.Error("empty config reported a primary")
	}
}

func TestByID(t *testing.T) {
	cfg := layout.MonitorConfig{Monitors: []layout.Monitor{{ID: "m1"}, {ID: "m2"}}}
	if m, ok := ByID(cfg, "m2"); !ok || m.ID != "m2" {
		t.Errorf("ByID(m2): %+v ok=%t", m, ok)
	}
	if _, ok := ByID(cfg, "m3"); ok {
		t.Error("unknown id found")
	}
}

package tmuxwin

import (
	"context"
	"errors"
	"testing"
)

func TestSessionNameSanitizesForTmux(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"win-1", "paneldeck-float-win-1"},
		{"win.1:a", "paneldeck-float-win-1-a"},
	}
	for _, tt := range tests {
		if got := sessionName(tt.id); got != tt.want {
			t.Errorf("sessionName(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

// geometryAdapter exercises the tracked-geometry half of the adapter,
// which needs no tmux server.
func geometryAdapter() *Adapter {
	return &Adapter{
		geom:    map[string]rect{"w1": {x: 10, y: 20, w: 800, h: 600}},
		session: map[string]string{"w1": sessionName("w1")},
	}
}

func TestGeometryTracking(t *testing.T) {
	a := geometryAdapter()
	ctx := context.Background()

	if err := a.SetPosition(ctx, "w1", 30, 40); err != nil {
		t.Fatalf("SetPosition: %v", err)
	}
	if err := a.SetSize(ctx, "w1", 1024, 768); err != nil {
		t.Fatalf("SetSize: %v", err)
	}

	x, y, err := a.Position(ctx, "w1")
	if err != nil || x != 30 || y != 40 {
		t.Errorf("Position = %d,%d err=%v", x, y, err)
	}
	w, h, err := a.Size(ctx, "w1")
	if err != nil || w != 1024 || h != 768 {
		t.Errorf("Size = %dx%d err=%v", w, h, err)
	}
}

func TestUnknownWindowRejected(t *testing.T) {
	a := geometryAdapter()
	ctx := context.Background()

	if err := a.SetPosition(ctx, "nope", 0, 0); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("SetPosition: %v", err)
	}
	if _, _, err := a.Size(ctx, "nope"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("Size: %v", err)
	}
}

func TestAcknowledgedOpsKeepGeometry(t *testing.T) {
	a := geometryAdapter()
	ctx := context.Background()

	if err := a.SetAlwaysOnTop(ctx, "w1", true); err != nil {
		t.Fatalf("SetAlwaysOnTop: %v", err)
	}
	if err := a.Maximize(ctx, "w1"); err != nil {
		t.Fatalf("Maximize: %v", err)
	}

	x, y, _ := a.Position(ctx, "w1")
	if x != 10 || y != 20 {
		t.Errorf("geometry changed: %d,%d", x, y)
	}
}

package grid

import (
	"testing"

	"paneldeck/internal/layout"
)

func TestPassthroughAppliesMoveVerbatim(t *testing.T) {
	layouts := []layout.PanelLayout{
		{I: "a", X: 0, Y: 0, W: 6, H: 4},
		{I: "b", X: 6, Y: 0, W: 6, H: 4},
	}
	moved := layout.PanelLayout{I: "a", X: 2, Y: 1, W: 4, H: 4}

	out := Passthrough{}.Arrange(layouts, moved)
	if out[0].X != 2 || out[0].Y != 1 || out[0].W != 4 {
		t.Errorf("moved placement: %+v", out[0])
	}
	if out[1] != layouts[1] {
		t.Errorf("untouched panel changed: %+v", out[1])
	}
}

func TestPassthroughDoesNotMutateInput(t *testing.T) {
	layouts := []layout.PanelLayout{{I: "a", X: 0, W: 6, H: 4}}
	Passthrough{}.Arrange(layouts, layout.PanelLayout{I: "a", X: 9})
	if layouts[0].X != 0 {
		t.Errorf("input mutated: %+v", layouts[0])
	}
}

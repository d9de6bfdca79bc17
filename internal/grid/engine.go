// Package grid declares the external grid-rearrangement collaborator.
// Collision resolution and compaction during drag rearrangement are
// provided by an off-the-shelf grid library on the host side; the engine
// only carries the resulting placements through the layout funnel.
package grid

import "paneldeck/internal/layout"

// Engine resolves a proposed placement change against the rest of the
// grid: pushing colliding panels aside and compacting gaps. Inputs are
// never mutated; the returned slice is a complete replacement.
type Engine interface {
	Arrange(layouts []layout.PanelLayout, moved layout.PanelLayout) []layout.PanelLayout
}

// Passthrough is the identity Engine: the moved panel's placement is
// applied verbatim with no collision handling. Used when no host grid
// library is wired and in tests.
type Passthrough struct{}

// Arrange implements Engine.
func (Passthrough) Arrange(layouts []layout.PanelLayout, moved layout.PanelLayout) []layout.PanelLayout {
	out := make([]layout.PanelLayout, len(layouts))
	for i := range layouts {
		if layouts[i].I == moved.I {
			out[i] = moved.Clone()
			continue
		}
		out[i] = layouts[i].Clone()
	}
	return out
}

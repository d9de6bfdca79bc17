// Package splitpane converts pointer movement into a proportional size
// vector for N adjacent regions along one axis. Sizes are percentages
// summing to 100. Mouse and touch input are normalized into the same
// sample stream before they reach the resizer, so the algorithm never
// knows which device produced a gesture.
package splitpane

import (
	"time"

	"paneldeck/internal/layout"
)

const (
	// DefaultMinSize is the minimum region size (percent) when the split
	// config does not specify one.
	DefaultMinSize = 10.0

	// DoublePressWindow is the maximum gap between two presses on the same
	// handle for the second press to count as a reset gesture.
	DoublePressWindow = 300 * time.Millisecond
)

// Sample is one normalized pointer position in the container's coordinate
// space. NormalizeMouse and NormalizeTouch produce these from the two
// input sources.
type Sample struct {
	X float64
	Y float64
}

// NormalizeMouse converts integer mouse coordinates to a sample.
func NormalizeMouse(x, y int) Sample {
	return Sample{X: float64(x), Y: float64(y)}
}

// NormalizeTouch converts a touch point to a sample.
func NormalizeTouch(x, y float64) Sample {
	return Sample{X: x, Y: y}
}

// Resizer is the drag state machine for one split container. Release is
// the only commit point: an abandoned drag leaves committed sizes intact
// and the working sizes are recomputed on the next gesture.
type Resizer struct {
	axis      layout.Axis
	committed []float64
	working   []float64
	minSizes  []float64

	dragHandle  int // handle index being dragged, -1 when idle
	lastHandle  int
	lastPressAt time.Time

	onCommit func(sizes []float64)
	now      func() time.Time
}

// New builds a resizer from a split config. A config with no sizes gets a
// single full-width region; sizes are used as given and are expected to
// sum to 100.
func New(cfg layout.SplitConfig, onCommit func(sizes []float64)) *Resizer {
	sizes := append([]float64(nil), cfg.Sizes...)
	if len(sizes) == 0 {
		sizes = []float64{100}
	}
	return &Resizer{
		axis:       cfg.Axis,
		committed:  sizes,
		working:    append([]float64(nil), sizes...),
		minSizes:   append([]float64(nil), cfg.MinSizes...),
		dragHandle: -1,
		lastHandle: -1,
		onCommit:   onCommit,
		now:        time.Now,
	}
}

// Sizes returns the current working size vector, including any
// in-progress drag.
func (r *Resizer) Sizes() []float64 {
	return append([]float64(nil), r.working...)
}

// Dragging reports whether a handle is actively being dragged.
func (r *Resizer) Dragging() bool {
	return r.dragHandle >= 0
}

func (r *Resizer) minAt(i int) float64 {
	if i < len(r.minSizes) && r.minSizes[i] > 0 {
		return r.minSizes[i]
	}
	return DefaultMinSize
}

// Press begins a drag on the handle between region handle and handle+1.
// A second press on the same handle within DoublePressWindow resets all
// regions to equal size and commits immediately, bypassing the drag.
// Presses while another handle is dragging, or on an out-of-range handle,
// are ignored.
func (r *Resizer) Press(handle int) {
	if r.dragHandle >= 0 || handle < 0 || handle >= len(r.committed)-1 {
		return
	}
	now := r.now()
	if handle == r.lastHandle && now.Sub(r.lastPressAt) <= DoublePressWindow {
		r.resetEqual()
		r.lastHandle = -1
		return
	}
	r.lastHandle = handle
	r.lastPressAt = now
	r.dragHandle = handle
	copy(r.working, r.committed)
}

// resetEqual sets all N regions to 100/N and commits.
func (r *Resizer) resetEqual() {
	n := len(r.committed)
	each := 100.0 / float64(n)
	for i := range r.committed {
		r.committed[i] = each
	}
	copy(r.working, r.committed)
	r.dragHandle = -1
	if r.onCommit != nil {
		r.onCommit(r.Sizes())
	}
}

// Move updates the in-progress sizes from a pointer sample. origin and
// extent locate the container along the drag axis in sample coordinates.
// No-op when not dragging or the container has no extent.
func (r *Resizer) Move(s Sample, origin, extent float64) {
	if r.dragHandle < 0 || extent <= 0 {
		return
	}
	pos := s.X
	if r.axis == layout.Vertical {
		pos = s.Y
	}
	boundary := (pos - origin) / extent * 100

	k := r.dragHandle
	var before, after float64
	for i := 0; i < k; i++ {
		before += r.committed[i]
	}
	for i := k + 2; i < len(r.committed); i++ {
		after += r.committed[i]
	}
	// The two dragged regions share what the untouched regions leave over.
	pair := 100 - before - after
	minK := r.minAt(k)
	minK1 := r.minAt(k + 1)

	sizeK := boundary - before
	if sizeK > pair-minK1 {
		sizeK = pair - minK1
	}
	if sizeK < minK {
		sizeK = minK
	}
	sizeK1 := pair - sizeK
	if sizeK1 < minK1 {
		sizeK1 = minK1
		sizeK = pair - sizeK1
	}

	copy(r.working, r.committed)
	r.working[k] = sizeK
	r.working[k+1] = sizeK1
}

// Release commits the in-progress sizes. No-op when not dragging.
func (r *Resizer) Release() {
	if r.dragHandle < 0 {
		return
	}
	copy(r.committed, r.working)
	r.dragHandle = -1
	if r.onCommit != nil {
		r.onCommit(r.Sizes())
	}
}

// Cancel abandons an in-progress drag without committing, restoring the
// working sizes to the last committed vector.
func (r *Resizer) Cancel() {
	if r.dragHandle < 0 {
		return
	}
	copy(r.working, r.committed)
	r.dragHandle = -1
}

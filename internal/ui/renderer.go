package ui

import (
	"fmt"
	"sync"

	"paneldeck/internal/layout"
)

// Renderer produces the body content for one panel at the given inner
// dimensions. Renderers are owned by the host application and selected by
// Panel.Type; the engine never inspects what they draw.
type Renderer func(p layout.Panel, width, height int) string

// Registry maps panel type keys to renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register binds a renderer to a panel type key, replacing any previous
// binding.
func (r *Registry) Register(panelType string, fn Renderer) {
	r.mu.Lock()
	r.renderers[panelType] = fn
	r.mu.Unlock()
}

// Render draws a panel body, falling back to a placeholder for
// unregistered types so unknown content never breaks the grid.
func (r *Registry) Render(p layout.Panel, width, height int) string {
	r.mu.RLock()
	fn := r.renderers[p.Type]
	r.mu.RUnlock()
	if fn == nil {
		return Styles.Muted.Render(fmt.Sprintf("[%s]", p.Type))
	}
	return fn(p, width, height)
}

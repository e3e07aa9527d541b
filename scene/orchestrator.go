package scene

import (
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/status"
)

// Renderer is one render pass
type Renderer interface {
	Render(ctx Context, dst render.Surface)
}

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	cfg       *config.Config
	renderers []rendererEntry
	regCount  int
	stats     *status.Stats
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator(cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// NewDefaultOrchestrator registers the standard passes: backdrop, galaxy, legend
func NewDefaultOrchestrator(cfg *config.Config) *Orchestrator {
	o := NewOrchestrator(cfg)
	o.Register(NewBackdropRenderer(cfg.Galaxy.Seed), PriorityBackdrop)
	o.Register(NewGalaxyRenderer(), PriorityGalaxy)
	o.Register(NewLegendRenderer(), PriorityUI)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// SetStats attaches frame statistics for the HUD
func (o *Orchestrator) SetStats(s *status.Stats) {
	o.stats = s
}

// RenderFrame clears dst and runs every pass in priority order
func (o *Orchestrator) RenderFrame(s *galaxy.State, dst render.Surface) {
	w, h := dst.Size()
	ctx := NewContext(o.cfg, s, w, h)
	ctx.Stats = o.stats

	dst.Clear(visual.RgbSpace)
	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, dst)
	}
}

package scene

import (
	"sort"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/render"
)

// ItemKind selects the draw routine for a composited item
type ItemKind uint8

const (
	ItemBody ItemKind = iota
	ItemCompact
	ItemCompanion
)

// CompactDepth is the nominal depth of the compact-body marker
const CompactDepth = 0.0

// Item is one depth-tagged drawable, valid for a single frame
// Proj is computed once and used for both the sort key and the draw call
type Item struct {
	Depth     float64
	Kind      ItemKind
	Body      galaxy.Body
	Companion *galaxy.Companion
	Proj      camera.Projection
}

// Drawer dispatches per-kind draw routines
type Drawer interface {
	DrawBody(ctx Context, dst render.Surface, it Item)
	DrawCompact(ctx Context, dst render.Surface, it Item)
	DrawCompanion(ctx Context, dst render.Surface, it Item)
}

// Compositor collects and sorts drawables far to near; the item slice is reused across frames
type Compositor struct {
	items []Item
}

// Reset drops last frame's items, keeping capacity
func (c *Compositor) Reset() {
	c.items = c.items[:0]
}

// Add appends an item
func (c *Compositor) Add(it Item) {
	c.items = append(c.items, it)
}

// Items returns the current list in its present order
func (c *Compositor) Items() []Item {
	return c.items
}

// Collect projects every body and companion once, applies the lens, and adds the compact marker
// Items behind the camera plane are dropped
func (c *Compositor) Collect(ctx Context) {
	c.Reset()
	s := ctx.State

	for i, b := range s.Bodies {
		p := ctx.Frame.Project(s.Positions[i])
		if !p.Visible {
			continue
		}
		p = ctx.Lens.Apply(p)
		c.Add(Item{Depth: p.Depth, Kind: ItemBody, Body: b, Proj: p})
	}

	c.Add(Item{Depth: CompactDepth, Kind: ItemCompact, Proj: ctx.Compact})

	for _, comp := range s.Companions {
		p := ctx.Frame.Project(comp.Pos)
		if !p.Visible {
			continue
		}
		p = ctx.Lens.Apply(p)
		c.Add(Item{Depth: p.Depth, Kind: ItemCompanion, Companion: comp, Proj: p})
	}
}

// Sort orders items by descending depth, farthest first; equal depths keep insertion order
func (c *Compositor) Sort() {
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.items[i].Depth > c.items[j].Depth
	})
}

// Draw dispatches every item in current order
func (c *Compositor) Draw(ctx Context, dst render.Surface, d Drawer) {
	for _, it := range c.items {
		switch it.Kind {
		case ItemBody:
			d.DrawBody(ctx, dst, it)
		case ItemCompact:
			d.DrawCompact(ctx, dst, it)
		case ItemCompanion:
			d.DrawCompanion(ctx, dst, it)
		}
	}
}

// GalaxyRenderer is the painter's-algorithm pass over bodies, compact body and companions
type GalaxyRenderer struct {
	compositor Compositor
	drawer     *ItemDrawer
}

func NewGalaxyRenderer() *GalaxyRenderer {
	return &GalaxyRenderer{drawer: NewItemDrawer()}
}

func (r *GalaxyRenderer) Render(ctx Context, dst render.Surface) {
	r.compositor.Collect(ctx)
	r.compositor.Sort()
	r.compositor.Draw(ctx, dst, r.drawer)
}

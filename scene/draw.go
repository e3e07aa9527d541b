package scene

import (
	"image"
	"log"
	"math"

	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
)

// HomeLabel names the home body on screen
const HomeLabel = "Solar System (you)"

// ItemDrawer implements Drawer for all item kinds
type ItemDrawer struct {
	// spriteFailed records companions whose sprite already failed, logged once
	spriteFailed map[string]bool
}

func NewItemDrawer() *ItemDrawer {
	return &ItemDrawer{spriteFailed: make(map[string]bool)}
}

// DrawBody renders a body at its projected (and lensed) position
func (d *ItemDrawer) DrawBody(ctx Context, dst render.Surface, it Item) {
	if !it.Proj.InBounds(ctx.Width, ctx.Height) {
		return
	}
	look := it.Body.Appearance()

	if galaxy.IsHome(it.Body) {
		d.drawHome(ctx, dst, it, look)
		return
	}

	size := math.Floor(it.Proj.Radius(look.Size))
	if size <= 1 {
		dst.SetPixel(int(it.Proj.X), int(it.Proj.Y), look.Color)
		return
	}
	dst.FilledCircle(it.Proj.X, it.Proj.Y, size, look.Color.Alpha(parameter.BodyAlpha))
}

// drawHome renders the halo marker, plus ring and label when the legend is visible
func (d *ItemDrawer) drawHome(ctx Context, dst render.Surface, it Item, look galaxy.Look) {
	size := max(parameter.HomeMinSize, math.Floor(look.Size*it.Proj.Scale))
	x, y := it.Proj.X, it.Proj.Y

	dst.FilledCircle(x, y, size*2, visual.RgbHomeHalo.Alpha(parameter.HomeHaloAlpha))
	dst.FilledCircle(x, y, size, visual.RgbWhite.Alpha(parameter.HomeCoreAlpha))

	if !ctx.State.ShowLegend {
		return
	}
	ring(dst, x, y, size+parameter.HomeRingPad, visual.RgbHomeRing)
	if l, ok := dst.(render.Labeler); ok {
		lh := float64(l.LineHeight())
		l.Label(int(x+lh), int(y-lh), HomeLabel, visual.RgbHomeLabel)
	}
}

// ring plots a one-pixel circle outline
func ring(dst render.Surface, cx, cy, r float64, c render.RGB) {
	steps := max(8, int(2*math.Pi*r))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		dst.SetPixel(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))), c)
	}
}

// DrawCompact renders the photon halo and the event horizon
// Skipped when the horizon projects below one pixel
func (d *ItemDrawer) DrawCompact(ctx Context, dst render.Surface, it Item) {
	if !it.Proj.Visible {
		return
	}
	rv := parameter.CompactRadius * it.Proj.Scale
	if rv < 1 {
		return
	}
	x, y := it.Proj.X, it.Proj.Y

	dst.FilledCircle(x, y, math.Floor(rv*parameter.HaloOuterScale), visual.RgbHaloWarm.Alpha(parameter.HaloOuterAlpha))
	dst.FilledCircle(x, y, math.Floor(rv*parameter.HaloInnerScale), visual.RgbWhite.Alpha(parameter.HaloInnerAlpha))
	dst.FilledCircle(x, y, math.Floor(rv), visual.RgbBlack.Alpha(255))
}

// DrawCompanion renders a neighbor galaxy at its cached projection
func (d *ItemDrawer) DrawCompanion(ctx Context, dst render.Surface, it Item) {
	c := it.Companion
	size := c.Size * it.Proj.Scale
	if size < 0.5 {
		return
	}

	if c.Sprite != nil && !d.spriteFailed[c.Name] {
		rect := SpriteRect(it.Proj.X, it.Proj.Y, size, c.Sprite.Bounds(), parameter.CompanionSpriteCap)
		if err := dst.BlitScaled(c.Sprite, rect); err != nil {
			d.spriteFailed[c.Name] = true
			log.Printf("companion %s: sprite draw failed, using procedural shape: %v", c.Name, err)
		}
		return
	}

	switch c.Shape {
	case galaxy.ShapeCloud:
		drawCloud(dst, c, it.Proj.X, it.Proj.Y, size)
	default:
		drawSpiral(dst, c, it.Proj.X, it.Proj.Y, size)
	}
}

// SpriteRect centers a sprite of native radius size (pixels), preserving aspect
// The longer edge is capped so a close approach cannot allocate a huge scaled image
func SpriteRect(cx, cy, size float64, src image.Rectangle, capPx int) image.Rectangle {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw <= 0 || sh <= 0 {
		return image.Rectangle{}
	}

	long := min(2*size, float64(capPx))
	w, h := long, long*sh/sw
	if sh > sw {
		w, h = long*sw/sh, long
	}
	w, h = max(1, w), max(1, h)

	x0 := int(math.Round(cx - w/2))
	y0 := int(math.Round(cy - h/2))
	return image.Rect(x0, y0, x0+int(math.Round(w)), y0+int(math.Round(h)))
}

// drawSpiral is the procedural fallback: a tilted disk with a bright core
func drawSpiral(dst render.Surface, c *galaxy.Companion, x, y, size float64) {
	ellipse := func(rx, ry float64) image.Rectangle {
		return image.Rect(int(x-rx), int(y-ry), int(x+rx), int(y+ry))
	}

	dst.FilledEllipse(ellipse(size, size*c.Aspect), c.Color.Alpha(50))
	dst.FilledEllipse(ellipse(size*0.55, size*c.Aspect*0.55), c.Color.Alpha(90))
	dst.FilledCircle(x, y, max(1, size*0.12), render.Blend(c.Color, visual.RgbWhite, 0.6).Alpha(210))
}

// drawCloud is the procedural fallback for irregular galaxies
func drawCloud(dst render.Surface, c *galaxy.Companion, x, y, size float64) {
	for _, b := range c.Blobs {
		dst.FilledCircle(x+b.DX*size, y+b.DY*size, max(1, b.R*size), b.Color.Alpha(b.Alpha))
	}
}

package galaxy

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Shape selects the procedural fallback for a companion galaxy
type Shape uint8

const (
	ShapeSpiral Shape = iota
	ShapeCloud
)

// Blob is one translucent patch of a cloud companion, in units of Size
type Blob struct {
	DX, DY float64
	R      float64
	Alpha  uint8
	Color  render.RGB
}

// Companion is a distant neighbor galaxy at a fixed position, unaffected by kinematics
type Companion struct {
	Name   string
	Pos    vmath.Vec3F
	Color  render.RGB
	Size   float64 // Native radius
	Shape  Shape
	Aspect float64 // Minor/major axis ratio of the spiral ellipse

	// Sprite replaces the procedural shape when non-nil
	Sprite image.Image

	Blobs []Blob
}

// NewCompanion builds a companion; cloud blobs are sampled once from rng so the shape is stable
func NewCompanion(name string, pos vmath.Vec3F, col render.RGB, size float64, shape Shape, rng *rand.Rand) *Companion {
	c := &Companion{
		Name:   name,
		Pos:    pos,
		Color:  col,
		Size:   size,
		Shape:  shape,
		Aspect: 0.35,
	}
	if shape == ShapeCloud {
		c.Blobs = cloudBlobs(col, rng)
	}
	return c
}

// cloudBlobs scatters irregular patches, denser and brighter toward the center
func cloudBlobs(base render.RGB, rng *rand.Rand) []Blob {
	cool := colorful.Color{R: 0.75, G: 0.8, B: 1.0}
	warm := colorful.Color{R: float64(base.R) / 255, G: float64(base.G) / 255, B: float64(base.B) / 255}

	blobs := make([]Blob, parameter.CloudBlobCount)
	for i := range blobs {
		dist := math.Abs(rng.NormFloat64()) * 0.45
		angle := rng.Float64() * 2 * math.Pi
		tint := warm.BlendLab(cool, rng.Float64()*0.5).Clamped()
		blobs[i] = Blob{
			DX:    math.Cos(angle) * dist * 1.4, // Clouds stretch horizontally
			DY:    math.Sin(angle) * dist,
			R:     0.15 + rng.Float64()*0.3,
			Alpha: uint8(25 + rng.IntN(50)),
			Color: render.RGB{R: render.Clamp8(tint.R * 255), G: render.Clamp8(tint.G * 255), B: render.Clamp8(tint.B * 255)},
		}
	}
	return blobs
}

// DefaultCompanions returns the Local Group neighbors shown around the galaxy
func DefaultCompanions(rng *rand.Rand) []*Companion {
	return []*Companion{
		NewCompanion("Andromeda", vmath.Vec3F{X: -700, Y: -350, Z: 900}, render.RGB{R: 220, G: 210, B: 255}, 120, ShapeSpiral, rng),
		NewCompanion("Large Magellanic Cloud", vmath.Vec3F{X: 520, Y: 180, Z: -150}, render.RGB{R: 200, G: 215, B: 255}, 60, ShapeCloud, rng),
		NewCompanion("Small Magellanic Cloud", vmath.Vec3F{X: 430, Y: 260, Z: -60}, render.RGB{R: 210, G: 200, B: 240}, 35, ShapeCloud, rng),
	}
}

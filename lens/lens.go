// Package lens applies a cheap radial screen-space displacement that mimics
// gravitational lensing around the compact body
package lens

import (
	"math"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Lens is centered on the compact body's screen position
type Lens struct {
	Enabled       bool
	Strength      float64
	Normalization float64
	CX, CY        float64
}

// New centers a lens at (cx, cy)
func New(cfg config.Lens, cx, cy float64) Lens {
	return Lens{
		Enabled:       cfg.Enabled,
		Strength:      cfg.Strength,
		Normalization: cfg.Normalization,
		CX:            cx,
		CY:            cy,
	}
}

// EinsteinRadius is the screen radius of strong distortion at projection scale
func (l Lens) EinsteinRadius(scale float64) float64 {
	return math.Sqrt(l.Strength) * (scale / l.Normalization)
}

// Factor is the radial magnification for a point at distance from the center
// Returns 1 outside (LensMinDistance, LensReach * einstein)
func Factor(distance, einstein float64) float64 {
	if distance <= parameter.LensMinDistance || distance >= parameter.LensReach*einstein {
		return 1
	}
	deformation := einstein * einstein / distance
	return (distance + deformation) / distance
}

// Apply displaces p radially away from the lens center
// Only points behind the compact body's plane (Depth > 0) are affected
func (l Lens) Apply(p camera.Projection) camera.Projection {
	if !l.Enabled || !p.Visible || p.Depth <= 0 {
		return p
	}

	dx, dy := p.X-l.CX, p.Y-l.CY
	f := Factor(vmath.Magnitude2D(dx, dy), l.EinsteinRadius(p.Scale))
	if f == 1 {
		return p
	}

	p.X = l.CX + dx*f
	p.Y = l.CY + dy*f
	return p
}

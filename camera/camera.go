// Package camera projects disk-frame positions to screen pixels through a
// tilt-then-spin rotation and a perspective divide
package camera

import (
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// View is the fixed part of the camera for a given viewport
type View struct {
	Distance float64 // Camera offset from the galactic center along view Z
	Focal    float64 // Projection constant in pixels
	CX, CY   float64 // Screen center
}

// NewView sizes the view for a width x height surface
// Focal scales with height so the galaxy keeps its framing at any resolution
func NewView(cfg config.Camera, width, height int) View {
	return View{
		Distance: cfg.Distance,
		Focal:    cfg.Focal * float64(height) / cfg.ReferenceHeight,
		CX:       float64(width) / 2,
		CY:       float64(height) / 2,
	}
}

// Frame is a View with this frame's rotation pair, built fresh every frame
type Frame struct {
	View
	RX vmath.Mat3 // Tilt, applied first
	RY vmath.Mat3 // Spin, applied second
}

// Frame builds the rotation pair for the current view angles
func (v View) Frame(tilt, spin float64) Frame {
	return Frame{
		View: v,
		RX:   vmath.RotationX(tilt),
		RY:   vmath.RotationY(spin),
	}
}

// Projection is a body's screen placement for one frame
type Projection struct {
	X, Y    float64
	Scale   float64 // Pixels per native unit at this depth
	Depth   float64 // View-space Z, larger is farther
	Visible bool    // False when behind the camera plane
}

// Radius converts a native radius to pixels, never below one
func (p Projection) Radius(base float64) float64 {
	return max(1, base*p.Scale)
}

// Transform maps a disk-frame position to view space
func (f Frame) Transform(p vmath.Vec3F) vmath.Vec3F {
	return vmath.Mat3Apply(f.RY, vmath.Mat3Apply(f.RX, p))
}

// Project transforms p and applies the perspective divide
func (f Frame) Project(p vmath.Vec3F) Projection {
	v := f.Transform(p)
	denom := f.Distance + v.Z
	if denom <= 0 {
		return Projection{Depth: v.Z}
	}

	scale := f.Focal / denom
	return Projection{
		X:       f.CX + v.X*scale,
		Y:       f.CY + v.Y*scale,
		Scale:   scale,
		Depth:   v.Z,
		Visible: true,
	}
}

// InBounds reports whether the projection lands inside a width x height surface
func (p Projection) InBounds(width, height int) bool {
	return p.Visible && p.X >= 0 && p.X < float64(width) && p.Y >= 0 && p.Y < float64(height)
}

package galaxy

import (
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Class is the structural population a body was sampled from
type Class uint8

const (
	ClassTwinkle Class = iota
	ClassBulge
	ClassBar
	ClassArm
	ClassRogue
	ClassHome
)

var classNames = [...]string{
	ClassTwinkle: "twinkle",
	ClassBulge:   "bulge",
	ClassBar:     "bar",
	ClassArm:     "arm",
	ClassRogue:   "rogue",
	ClassHome:    "home",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

// Look is the visual state shared by all body variants
type Look struct {
	Color render.RGB
	Size  float64 // Apparent radius before projection scaling
	Phase float64 // Twinkle phase offset, radians
}

// Orbit holds native cylindrical coordinates in the disk frame
type Orbit struct {
	Radius float64
	Angle  float64
	Height float64
}

// Body is a galaxy member; the concrete type selects its kinematics
// Implemented by *Orbiter and *Rogue only
type Body interface {
	Class() Class
	Appearance() Look
	sealed()
}

// Orbiter follows a closed-form circular orbit: bulge, bar, arm and home bodies
type Orbiter struct {
	Kind  Class
	Orbit Orbit
	Look  Look

	// Generation-time provenance, kept for diagnostics and the legend
	Arm         string
	Thickness   float64
	Temperature float64
}

func (o *Orbiter) Class() Class     { return o.Kind }
func (o *Orbiter) Appearance() Look { return o.Look }
func (o *Orbiter) IsHome() bool     { return o.Kind == ClassHome }
func (*Orbiter) sealed()            {}

// Rogue moves in a straight line away from the core and respawns when it escapes
type Rogue struct {
	Pos  vmath.Vec3F
	Vel  vmath.Vec3F
	Look Look
}

func (r *Rogue) Class() Class     { return ClassRogue }
func (r *Rogue) Appearance() Look { return r.Look }
func (*Rogue) sealed()            {}

// Twinkle is a fixed backdrop point in screen space
type Twinkle struct {
	X, Y  float64
	Base  uint8 // Peak gray level
	Phase float64
}

// IsHome reports whether b is the designated home body
func IsHome(b Body) bool {
	o, ok := b.(*Orbiter)
	return ok && o.IsHome()
}

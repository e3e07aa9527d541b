package galaxy

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// RotationCurve maps orbital radius to orbital speed
type RotationCurve interface {
	Speed(r float64) float64
}

// Keplerian is the point-mass law v = Gain*sqrt(Mass/r)
type Keplerian struct {
	Mass float64
	Gain float64
}

func (k Keplerian) Speed(r float64) float64 {
	return k.Gain * math.Sqrt(k.Mass/r)
}

// Flat plateaus at Floor, emulating a dark matter halo
type Flat struct {
	Keplerian
	Floor float64
}

func (f Flat) Speed(r float64) float64 {
	return max(f.Keplerian.Speed(r), f.Floor)
}

// CurveFromConfig builds the configured rotation curve
func CurveFromConfig(cfg config.Kinematics) (RotationCurve, error) {
	kepler := Keplerian{Mass: cfg.Mass, Gain: cfg.Gain}
	switch cfg.Curve {
	case parameter.CurveKepler:
		return kepler, nil
	case parameter.CurveFlat:
		return Flat{Keplerian: kepler, Floor: cfg.HaloSpeedFloor}, nil
	default:
		return nil, fmt.Errorf("%w: unknown rotation curve %q", config.ErrInvalidConfig, cfg.Curve)
	}
}

// Kinematics advances body positions under a rotation curve
type Kinematics struct {
	Curve       RotationCurve
	RadiusFloor float64
	TimeScale   float64
}

// AngularVelocity returns w = v/r with r floored to avoid the central singularity
func (k Kinematics) AngularVelocity(r float64) float64 {
	eff := max(r, k.RadiusFloor)
	return k.Curve.Speed(eff) / eff
}

// OrbitPosition returns the disk-frame position of o at simulated time t
func (k Kinematics) OrbitPosition(o *Orbiter, t float64) vmath.Vec3F {
	angle := o.Orbit.Angle + t*k.AngularVelocity(o.Orbit.Radius)*k.TimeScale
	return vmath.V3FCylindrical(o.Orbit.Radius, angle, o.Orbit.Height)
}

// Advance moves the rogue one frame and respawns it from g once it escapes
func (r *Rogue) Advance(g *Generator) {
	r.Pos = vmath.V3FAdd(r.Pos, r.Vel)
	if vmath.V3FMag(r.Pos) > parameter.RogueEscapeRadius {
		g.reseedRogue(r)
	}
}

// Color returns the backdrop luminance at time t; jitter is a per-frame draw in [-1, 1]
// The fast sinusoid plus jitter reads as flicker; peaks flash pure white
func (tw Twinkle) Color(t, jitter float64) render.RGB {
	pulse := 0.5 + 0.5*math.Sin(t*parameter.TwinkleFrequency+tw.Phase)
	intensity := vmath.Clamp(pulse+jitter*parameter.TwinkleJitter, parameter.TwinkleFloor, 1)
	if intensity > parameter.TwinkleFlash {
		return visual.RgbWhite
	}
	return render.Gray(render.Clamp8(float64(tw.Base) * intensity))
}

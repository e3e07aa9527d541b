package galaxy

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Arm is a named spiral arm with its base angle at zero radius
type Arm struct {
	Name  string
	Angle float64
}

// MajorArms are chosen uniformly for arm bodies
var MajorArms = []Arm{
	{"Scutum-Centaurus", 0.0},
	{"Perseus", 2.2},
	{"Sagittarius", 3.8},
	{"Norma", 5.2},
}

// LocalArm hosts the home body and a small share of arm bodies
var LocalArm = Arm{"Orion", parameter.HomeArmAngle}

// Generator samples bodies from an injected random source
// Not safe for concurrent use, owned by the frame loop
type Generator struct {
	rng    *rand.Rand
	rogues int
}

// NewGenerator creates a generator; rogues is the rogue count appended by Populate
func NewGenerator(rng *rand.Rand, rogues int) *Generator {
	return &Generator{rng: rng, rogues: rogues}
}

// NewSeededRand builds the PCG source used across the simulation
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

func (g *Generator) gauss(mean, sigma float64) float64 {
	return mean + sigma*g.rng.NormFloat64()
}

// Classify maps a uniform draw in [0,1) to a galaxy class
func Classify(u float64) Class {
	switch {
	case u < parameter.BulgeThreshold:
		return ClassBulge
	case u < parameter.BarThreshold:
		return ClassBar
	default:
		return ClassArm
	}
}

// Body samples one galaxy body, class chosen by cumulative thresholds
func (g *Generator) Body() Body {
	var o *Orbiter
	switch Classify(g.rng.Float64()) {
	case ClassBulge:
		o = g.bulge()
	case ClassBar:
		o = g.bar()
	default:
		o = g.arm()
	}
	o.Orbit.Height = g.gauss(0, o.Thickness/parameter.HeightSigmaDivisor)
	o.Look.Color = TemperatureColor(o.Temperature)
	o.Look.Phase = g.uniform(0, 2*math.Pi)
	return o
}

// bulge samples the hot accretion disk near the core or the cool spheroidal bulge beyond it
func (g *Generator) bulge() *Orbiter {
	inner := parameter.CompactRadius + parameter.BulgeInnerGap
	r := g.uniform(inner, parameter.BulgeRadius)

	o := &Orbiter{
		Kind:  ClassBulge,
		Orbit: Orbit{Radius: r, Angle: g.uniform(0, 2*math.Pi)},
	}

	if r < parameter.AccretionRadius {
		// Heat rises toward the horizon
		heat := 1 - vmath.InvLerp(inner, parameter.AccretionRadius, r)
		o.Temperature = vmath.Lerp(15000, 40000, heat) * g.uniform(0.85, 1.0)
		o.Thickness = parameter.AccretionThickness
		o.Look.Size = g.uniform(1.0, 2.5)
	} else {
		o.Temperature = g.uniform(3000, 5000)
		o.Thickness = r * parameter.BulgeFlattening
		o.Look.Size = g.uniform(0.8, 1.6)
	}
	return o
}

// bar places old stars in a rotated rectangle, returned in polar form
func (g *Generator) bar() *Orbiter {
	along := (g.rng.Float64() - 0.5) * 2 * parameter.BarHalfLength
	across := g.gauss(0, parameter.BarWidth)

	c, s := math.Cos(parameter.BarAngle), math.Sin(parameter.BarAngle)
	x := along*c - across*s
	z := along*s + across*c

	return &Orbiter{
		Kind:        ClassBar,
		Orbit:       Orbit{Radius: math.Hypot(x, z), Angle: math.Atan2(z, x)},
		Look:        Look{Size: g.uniform(1.2, 2.2)},
		Thickness:   parameter.BarThickness,
		Temperature: g.uniform(2800, 4500),
	}
}

// arm places a body on a logarithmic spiral arm
func (g *Generator) arm() *Orbiter {
	arm := MajorArms[g.rng.IntN(len(MajorArms))]
	if g.rng.Float64() < parameter.LocalArmChance {
		arm = LocalArm
	}

	r := vmath.Clamp(g.gauss(parameter.ArmRadiusMean, parameter.ArmRadiusSigma), parameter.ArmRadiusMin, parameter.ArmRadiusMax)
	angle := arm.Angle + r*parameter.ArmPitch + g.gauss(0, parameter.ArmJitter)

	var temp float64
	if g.rng.Float64() < parameter.ArmYoungChance {
		temp = g.uniform(10000, 30000)
	} else {
		temp = g.uniform(3500, 6500)
	}

	return &Orbiter{
		Kind:        ClassArm,
		Orbit:       Orbit{Radius: r, Angle: angle},
		Look:        Look{Size: g.uniform(0.5, 1.8)},
		Arm:         arm.Name,
		Thickness:   parameter.ArmThicknessBase + parameter.ArmThicknessFlare/(r/10+1),
		Temperature: temp,
	}
}

// Rogue samples a hypervelocity body ejected from near the core
func (g *Generator) Rogue() *Rogue {
	r := &Rogue{}
	g.reseedRogue(r)
	return r
}

// reseedRogue overwrites r in place with fresh launch parameters
func (g *Generator) reseedRogue(r *Rogue) {
	r.Pos = vmath.Vec3F{
		X: g.uniform(-parameter.RogueSpreadXZ, parameter.RogueSpreadXZ),
		Y: g.uniform(-parameter.RogueSpreadY, parameter.RogueSpreadY),
		Z: g.uniform(-parameter.RogueSpreadXZ, parameter.RogueSpreadXZ),
	}

	var dir vmath.Vec3F
	for vmath.V3FMagSq(dir) < 1e-6 {
		dir = vmath.Vec3F{
			X: g.uniform(-1, 1),
			Y: g.uniform(-parameter.RogueDirYScale, parameter.RogueDirYScale),
			Z: g.uniform(-1, 1),
		}
	}
	speed := g.uniform(parameter.RogueSpeedMin, parameter.RogueSpeedMax)
	r.Vel = vmath.V3FScale(vmath.V3FNormalize(dir), speed)

	r.Look = Look{
		Color: visual.RgbRogue,
		Size:  g.uniform(1.0, 1.5),
		Phase: g.uniform(0, 2*math.Pi),
	}
}

// Home builds the designated home body at its fixed place on the local arm
func Home() *Orbiter {
	return &Orbiter{
		Kind: ClassHome,
		Orbit: Orbit{
			Radius: parameter.HomeRadius,
			Angle:  LocalArm.Angle + parameter.HomeRadius*parameter.ArmPitch,
		},
		Look:        Look{Color: visual.RgbHome, Size: parameter.HomeSize},
		Arm:         LocalArm.Name,
		Temperature: 5800,
	}
}

// Populate samples n galaxy bodies, the configured rogues, then appends home
// home may be nil, in which case a fresh home body is created
func (g *Generator) Populate(n int, home *Orbiter) []Body {
	bodies := make([]Body, 0, n+g.rogues+1)
	for i := 0; i < n; i++ {
		bodies = append(bodies, g.Body())
	}
	for i := 0; i < g.rogues; i++ {
		bodies = append(bodies, g.Rogue())
	}
	if home == nil {
		home = Home()
	}
	return append(bodies, home)
}

// Twinkles scatters n backdrop points uniformly over a w x h viewport
func (g *Generator) Twinkles(n, w, h int) []Twinkle {
	out := make([]Twinkle, n)
	for i := range out {
		out[i] = Twinkle{
			X:     g.uniform(0, float64(w)),
			Y:     g.uniform(0, float64(h)),
			Base:  uint8(parameter.TwinkleBaseMin + g.rng.IntN(parameter.TwinkleBaseMax-parameter.TwinkleBaseMin+1)),
			Phase: g.uniform(0, 2*math.Pi),
		}
	}
	return out
}

package galaxy

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

// Input is what the frame loop reads from the environment each frame
type Input struct {
	// Dragging is true while the primary pointer button is held
	Dragging bool
	DX, DY   float64

	Reset        bool
	ToggleLegend bool
}

// State is the complete simulation state, owned by a single frame loop
type State struct {
	Time  float64
	Frame uint64

	// View angles: Tilt about the horizontal axis, Spin about the vertical
	Tilt, Spin float64

	Bodies []Body
	// Positions holds this frame's disk-frame position per body, parallel to Bodies
	Positions  []vmath.Vec3F
	Twinkles   []Twinkle
	Companions []*Companion
	Home       *Orbiter

	ShowLegend bool
	Kinematics Kinematics

	cfg *config.Config
	gen *Generator
}

// NewState generates a full population for a width x height viewport
func NewState(cfg *config.Config, rng *rand.Rand, width, height int) (*State, error) {
	curve, err := CurveFromConfig(cfg.Kinematics)
	if err != nil {
		return nil, err
	}

	gen := NewGenerator(rng, cfg.Galaxy.Rogues)
	s := &State{
		Tilt:       cfg.Camera.Tilt,
		Spin:       cfg.Camera.Spin,
		Home:       Home(),
		ShowLegend: cfg.Render.Legend,
		Kinematics: Kinematics{
			Curve:       curve,
			RadiusFloor: cfg.Kinematics.RadiusFloor,
			TimeScale:   cfg.Kinematics.TimeAcceleration,
		},
		cfg: cfg,
		gen: gen,
	}
	s.Bodies = gen.Populate(cfg.Galaxy.Bodies, s.Home)
	s.Twinkles = gen.Twinkles(cfg.Galaxy.Twinkles, width, height)
	s.Companions = DefaultCompanions(rng)
	s.updatePositions()
	return s, nil
}

// Reset replaces the galaxy population wholesale, preserving the home body
func (s *State) Reset() {
	s.Bodies = s.gen.Populate(s.cfg.Galaxy.Bodies, s.Home)
	s.updatePositions()
}

// Resize rescatters the backdrop for a new viewport
func (s *State) Resize(width, height int) {
	s.Twinkles = s.gen.Twinkles(len(s.Twinkles), width, height)
}

// Step advances one frame: input, view angles, time, then body positions
func (s *State) Step(in Input) {
	if in.ToggleLegend {
		s.ShowLegend = !s.ShowLegend
	}
	if in.Reset {
		s.Reset()
	}

	if in.Dragging {
		s.Spin += in.DX * s.cfg.Camera.DragSensitivity
		s.Tilt += in.DY * s.cfg.Camera.DragSensitivity
	} else {
		s.Spin += s.cfg.Camera.AutoSpin
	}

	s.Time += s.cfg.Kinematics.SimStep
	s.Frame++

	for _, b := range s.Bodies {
		if r, ok := b.(*Rogue); ok {
			r.Advance(s.gen)
		}
	}
	s.updatePositions()
}

// updatePositions recomputes disk-frame positions so depth keys match drawn positions
func (s *State) updatePositions() {
	if cap(s.Positions) < len(s.Bodies) {
		s.Positions = make([]vmath.Vec3F, len(s.Bodies))
	}
	s.Positions = s.Positions[:len(s.Bodies)]

	for i, b := range s.Bodies {
		switch b := b.(type) {
		case *Orbiter:
			s.Positions[i] = s.Kinematics.OrbitPosition(b, s.Time)
		case *Rogue:
			s.Positions[i] = b.Pos
		}
	}
}

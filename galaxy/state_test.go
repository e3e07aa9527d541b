package galaxy

import (
	"testing"

	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

func newTestState(t *testing.T, bodies int, curve string) *State {
	t.Helper()
	cfg := config.Default()
	cfg.Galaxy.Bodies = bodies
	cfg.Kinematics.Curve = curve
	s, err := NewState(cfg, NewSeededRand(2024), 1200, 800)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return s
}

func countHomes(bodies []Body) int {
	n := 0
	for _, b := range bodies {
		if IsHome(b) {
			n++
		}
	}
	return n
}

func TestStateSingleHomeAcrossReset(t *testing.T) {
	s := newTestState(t, 500, parameter.CurveKepler)
	if n := countHomes(s.Bodies); n != 1 {
		t.Fatalf("homes after generation = %d", n)
	}
	home := s.Home

	for i := 0; i < 3; i++ {
		s.Step(Input{Reset: true})
		if n := countHomes(s.Bodies); n != 1 {
			t.Fatalf("homes after reset %d = %d", i, n)
		}
		if s.Bodies[len(s.Bodies)-1] != Body(home) {
			t.Fatal("reset did not preserve the home body")
		}
	}
	if len(s.Positions) != len(s.Bodies) {
		t.Errorf("positions %d != bodies %d", len(s.Positions), len(s.Bodies))
	}
}

func TestStateViewControl(t *testing.T) {
	s := newTestState(t, 10, parameter.CurveKepler)
	spin0, tilt0 := s.Spin, s.Tilt

	s.Step(Input{})
	if s.Spin-spin0 != parameter.AutoSpinRate || s.Tilt != tilt0 {
		t.Errorf("auto spin: spin %v->%v tilt %v->%v", spin0, s.Spin, tilt0, s.Tilt)
	}

	spin1 := s.Spin
	s.Step(Input{Dragging: true, DX: 10, DY: -4})
	if got, want := s.Spin-spin1, 10*parameter.DragSensitivity; got < want-1e-12 || got > want+1e-12 {
		t.Errorf("drag spin delta = %v, want %v", got, want)
	}
	if got, want := s.Tilt-tilt0, -4*parameter.DragSensitivity; got < want-1e-12 || got > want+1e-12 {
		t.Errorf("drag tilt delta = %v, want %v", got, want)
	}
}

func TestStateLegendToggle(t *testing.T) {
	s := newTestState(t, 10, parameter.CurveKepler)
	initial := s.ShowLegend
	s.Step(Input{ToggleLegend: true})
	if s.ShowLegend == initial {
		t.Error("legend did not toggle")
	}
	s.Step(Input{})
	if s.ShowLegend == initial {
		t.Error("legend toggled without input")
	}
}

func TestStateTimeAdvance(t *testing.T) {
	s := newTestState(t, 10, parameter.CurveKepler)
	for i := 0; i < 100; i++ {
		s.Step(Input{})
	}
	if d := s.Time - 100*parameter.SimStep; d > 1e-9 || d < -1e-9 {
		t.Errorf("time = %v after 100 frames", s.Time)
	}
	if s.Frame != 100 {
		t.Errorf("frame = %d", s.Frame)
	}
}

func TestLongRunStaysFinite(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}

	for _, curve := range []string{parameter.CurveKepler, parameter.CurveFlat} {
		t.Run(curve, func(t *testing.T) {
			s := newTestState(t, 1000, curve)
			for frame := 0; frame < 10000; frame++ {
				s.Step(Input{})
			}
			for i, p := range s.Positions {
				if !vmath.V3FFinite(p) {
					t.Fatalf("body %d (%v) non-finite at %+v", i, s.Bodies[i].Class(), p)
				}
			}
			for i, b := range s.Bodies {
				if r, ok := b.(*Rogue); ok && vmath.V3FMag(r.Pos) > parameter.RogueEscapeRadius {
					t.Errorf("rogue %d escaped without respawn: %v", i, vmath.V3FMag(r.Pos))
				}
			}
		})
	}
}

func TestPositionsTrackRogues(t *testing.T) {
	s := newTestState(t, 0, parameter.CurveKepler)
	s.Step(Input{})
	for i, b := range s.Bodies {
		if r, ok := b.(*Rogue); ok && s.Positions[i] != r.Pos {
			t.Fatalf("rogue %d position stale: %+v vs %+v", i, s.Positions[i], r.Pos)
		}
	}
}

package galaxy

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

func testKinematics(t *testing.T, curve string) Kinematics {
	t.Helper()
	cfg := config.Default().Kinematics
	cfg.Curve = curve
	c, err := CurveFromConfig(cfg)
	if err != nil {
		t.Fatalf("CurveFromConfig(%q): %v", curve, err)
	}
	return Kinematics{Curve: c, RadiusFloor: cfg.RadiusFloor, TimeScale: cfg.TimeAcceleration}
}

func TestKeplerAngularVelocityDecreasing(t *testing.T) {
	k := testKinematics(t, parameter.CurveKepler)
	prev := math.Inf(1)
	for r := parameter.OrbitRadiusFloor; r <= 5000; r += 5 {
		w := k.AngularVelocity(r)
		if w >= prev {
			t.Fatalf("w(%v) = %v not below previous %v", r, w, prev)
		}
		prev = w
	}
}

func TestFlatCurvePlateau(t *testing.T) {
	k := testKinematics(t, parameter.CurveFlat)

	// Crossover where Keplerian speed meets the halo floor
	crossover := parameter.CompactMass * math.Pow(parameter.OrbitGain/parameter.HaloSpeedFloor, 2)

	if got := k.Curve.Speed(crossover * 4); got != parameter.HaloSpeedFloor {
		t.Errorf("speed beyond crossover = %v, want plateau %v", got, parameter.HaloSpeedFloor)
	}

	tests := []struct {
		r1, r2 float64
	}{
		{crossover + 10, crossover + 110},
		{1000, 1100},
		{10000, 10100},
	}
	var prevGap float64 = math.Inf(1)
	for _, tt := range tests {
		w1, w2 := k.AngularVelocity(tt.r1), k.AngularVelocity(tt.r2)
		if w1 < w2 {
			t.Errorf("w(%v)=%v < w(%v)=%v", tt.r1, w1, tt.r2, w2)
		}
		gap := w1 - w2
		if gap >= prevGap {
			t.Errorf("gap at r=%v did not shrink: %v >= %v", tt.r1, gap, prevGap)
		}
		prevGap = gap
	}

	// Flat is never slower than Kepler
	kepler := testKinematics(t, parameter.CurveKepler)
	for _, r := range []float64{20, 200, 2000} {
		if k.AngularVelocity(r) < kepler.AngularVelocity(r) {
			t.Errorf("flat slower than kepler at r=%v", r)
		}
	}
}

func TestAngularVelocityFloor(t *testing.T) {
	k := testKinematics(t, parameter.CurveKepler)
	atFloor := k.AngularVelocity(parameter.OrbitRadiusFloor)
	for _, r := range []float64{0, 1e-12, 3} {
		w := k.AngularVelocity(r)
		if !vmath.Finite(w) || w != atFloor {
			t.Errorf("w(%v) = %v, want floored %v", r, w, atFloor)
		}
	}
}

func TestOrbitPosition(t *testing.T) {
	k := testKinematics(t, parameter.CurveKepler)
	o := &Orbiter{Orbit: Orbit{Radius: 200, Angle: 0.5, Height: -7}}

	p0 := k.OrbitPosition(o, 0)
	if !vmath.V3FNear(p0, vmath.V3FCylindrical(200, 0.5, -7), 1e-9) {
		t.Errorf("t=0 position %+v", p0)
	}

	p1 := k.OrbitPosition(o, 3)
	if r := math.Hypot(p1.X, p1.Z); math.Abs(r-200) > 1e-9 {
		t.Errorf("orbit radius drifted to %v", r)
	}
	if p1.Y != -7 {
		t.Errorf("height changed to %v", p1.Y)
	}
}

func TestCurveFromConfigRejectsUnknown(t *testing.T) {
	cfg := config.Default().Kinematics
	cfg.Curve = "mond"
	if _, err := CurveFromConfig(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestRogueAdvanceAndRespawn(t *testing.T) {
	g := NewGenerator(NewSeededRand(17), 0)

	r := &Rogue{Pos: vmath.Vec3F{X: 10}, Vel: vmath.Vec3F{X: 2}}
	r.Advance(g)
	if r.Pos.X != 12 {
		t.Errorf("linear advance gave %+v", r.Pos)
	}

	r.Pos = vmath.Vec3F{X: 799.5}
	r.Vel = vmath.Vec3F{X: 2}
	r.Advance(g)
	if d := vmath.V3FMag(r.Pos); d > 75 {
		t.Errorf("escaped rogue respawned at distance %v", d)
	}
	if speed := vmath.V3FMag(r.Vel); speed < parameter.RogueSpeedMin-1e-9 || speed > parameter.RogueSpeedMax+1e-9 {
		t.Errorf("respawned speed %v", speed)
	}
}

func TestTwinkleColor(t *testing.T) {
	tw := Twinkle{Base: 200, Phase: math.Pi / 2}

	if got := tw.Color(0, 0); got != visual.RgbWhite {
		t.Errorf("peak should flash white, got %+v", got)
	}

	trough := Twinkle{Base: 200, Phase: -math.Pi / 2}
	got := trough.Color(0, -1)
	want := uint8(200 * parameter.TwinkleFloor)
	if got.R < want-1 || got.R > want+1 || got.R != got.G || got.G != got.B {
		t.Errorf("trough = %+v, want gray %d", got, want)
	}

	// Jitter changes luminance between frames at the same phase
	mid := Twinkle{Base: 200}
	if mid.Color(0, -0.5) == mid.Color(0, 0.5) {
		t.Error("jitter had no effect")
	}
}

package scene

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lixenwraith/vi-galaxy/camera"
	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/galaxy"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
)

func newTestScene(t *testing.T, bodies int) (*config.Config, *galaxy.State) {
	t.Helper()
	cfg := config.Default()
	cfg.Galaxy.Bodies = bodies
	s, err := galaxy.NewState(cfg, galaxy.NewSeededRand(7), 400, 300)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return cfg, s
}

// recordingDrawer captures dispatch order
type recordingDrawer struct {
	depths []float64
	kinds  []ItemKind
}

func (d *recordingDrawer) record(it Item) {
	d.depths = append(d.depths, it.Depth)
	d.kinds = append(d.kinds, it.Kind)
}

func (d *recordingDrawer) DrawBody(_ Context, _ render.Surface, it Item)      { d.record(it) }
func (d *recordingDrawer) DrawCompact(_ Context, _ render.Surface, it Item)   { d.record(it) }
func (d *recordingDrawer) DrawCompanion(_ Context, _ render.Surface, it Item) { d.record(it) }

// labelSurface is a Canvas that also records label text
type labelSurface struct {
	*render.Canvas
	labels []string
}

func (s *labelSurface) Label(x, y int, text string, c render.RGB) {
	s.labels = append(s.labels, text)
	s.Canvas.Label(x, y, text, c)
}

func (s *labelSurface) has(text string) bool {
	for _, l := range s.labels {
		if l == text {
			return true
		}
	}
	return false
}

func TestCompositorSortFarthestFirst(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"mixed", []float64{5, -2, 10}, []float64{10, 5, -2}},
		{"sorted", []float64{3, 2, 1}, []float64{3, 2, 1}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Compositor
			for _, d := range tt.in {
				c.Add(Item{Depth: d})
			}
			c.Sort()

			var rec recordingDrawer
			c.Draw(Context{}, nil, &rec)
			if len(rec.depths) != len(tt.want) {
				t.Fatalf("drew %d items, want %d", len(rec.depths), len(tt.want))
			}
			for i := range tt.want {
				if rec.depths[i] != tt.want[i] {
					t.Errorf("order = %v, want %v", rec.depths, tt.want)
					break
				}
			}
		})
	}
}

func TestCompositorSortStableOnTies(t *testing.T) {
	var c Compositor
	c.Add(Item{Depth: 1, Kind: ItemBody})
	c.Add(Item{Depth: 1, Kind: ItemCompact})
	c.Add(Item{Depth: 1, Kind: ItemCompanion})
	c.Sort()

	want := []ItemKind{ItemBody, ItemCompact, ItemCompanion}
	for i, it := range c.Items() {
		if it.Kind != want[i] {
			t.Fatalf("tie order changed at %d: got %d, want %d", i, it.Kind, want[i])
		}
	}
}

func TestCollect(t *testing.T) {
	cfg, s := newTestScene(t, 300)
	ctx := NewContext(cfg, s, 400, 300)

	var c Compositor
	c.Collect(ctx)

	var bodies, compact, companions int
	for _, it := range c.Items() {
		switch it.Kind {
		case ItemBody:
			bodies++
			if it.Depth != it.Proj.Depth {
				t.Errorf("sort key %v differs from projected depth %v", it.Depth, it.Proj.Depth)
			}
		case ItemCompact:
			compact++
			if it.Depth != CompactDepth {
				t.Errorf("compact depth = %v", it.Depth)
			}
		case ItemCompanion:
			companions++
		}
	}

	if compact != 1 {
		t.Errorf("compact items = %d, want 1", compact)
	}
	if bodies == 0 || bodies > len(s.Bodies) {
		t.Errorf("body items = %d of %d", bodies, len(s.Bodies))
	}
	if companions > len(s.Companions) {
		t.Errorf("companion items = %d of %d", companions, len(s.Companions))
	}

	// Reuse keeps the item count stable for an unchanged state
	n := len(c.Items())
	c.Collect(ctx)
	if len(c.Items()) != n {
		t.Errorf("second collect = %d items, want %d", len(c.Items()), n)
	}
}

func TestRenderFrameCompactCenter(t *testing.T) {
	cfg, s := newTestScene(t, 100)
	s.Bodies, s.Positions, s.Companions = nil, nil, nil

	canvas := render.NewCanvas(400, 300)
	NewDefaultOrchestrator(cfg).RenderFrame(s, canvas)

	if got := canvas.At(200, 150); got != visual.RgbBlack {
		t.Errorf("center pixel = %v, want black horizon", got)
	}
}

func TestRenderFrameFullGalaxy(t *testing.T) {
	cfg, s := newTestScene(t, 2000)
	canvas := render.NewCanvas(400, 300)
	o := NewDefaultOrchestrator(cfg)

	for i := 0; i < 5; i++ {
		s.Step(galaxy.Input{})
		o.RenderFrame(s, canvas)
	}

	lit := 0
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if canvas.At(x, y) != visual.RgbSpace {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("frame has no drawn pixels")
	}
}

func TestHomeLabelFollowsLegend(t *testing.T) {
	for _, show := range []bool{true, false} {
		cfg, s := newTestScene(t, 50)
		s.ShowLegend = show
		// Face-on so the home body is in view
		s.Tilt, s.Spin = 0.9, 0

		surf := &labelSurface{Canvas: render.NewCanvas(1200, 800)}
		NewDefaultOrchestrator(cfg).RenderFrame(s, surf)

		if !surf.has(HelpText) {
			t.Errorf("legend=%v: help line missing", show)
		}
		if got := surf.has(HomeLabel); got != show {
			t.Errorf("legend=%v: home label drawn = %v", show, got)
		}
		if got := surf.has(LensText); got != show {
			t.Errorf("legend=%v: lens indicator drawn = %v", show, got)
		}
	}
}

// panicImage fails inside the scaler
type panicImage struct{}

func (panicImage) ColorModel() color.Model { return color.RGBAModel }
func (panicImage) Bounds() image.Rectangle { return image.Rect(0, 0, 64, 32) }
func (panicImage) At(x, y int) color.Color { panic("corrupt sprite") }

func TestCompanionSpriteFailureFallsBack(t *testing.T) {
	cfg, s := newTestScene(t, 10)
	s.Tilt, s.Spin = 0.9, 0
	ctx := NewContext(cfg, s, 400, 300)
	canvas := render.NewCanvas(400, 300)

	comp := s.Companions[0]
	comp.Sprite = panicImage{}
	it := Item{Kind: ItemCompanion, Companion: comp, Proj: ctx.Frame.Project(comp.Pos)}
	if !it.Proj.Visible {
		t.Fatalf("%s behind camera", comp.Name)
	}

	d := NewItemDrawer()
	d.DrawCompanion(ctx, canvas, it)
	if !d.spriteFailed[comp.Name] {
		t.Fatal("sprite failure not recorded")
	}
	// Later frames use the procedural shape without touching the sprite
	d.DrawCompanion(ctx, canvas, it)
}

func TestSpriteRect(t *testing.T) {
	tests := []struct {
		name  string
		size  float64
		src   image.Rectangle
		wantW int
		wantH int
	}{
		{"landscape", 50, image.Rect(0, 0, 200, 100), 100, 50},
		{"portrait", 50, image.Rect(0, 0, 100, 200), 50, 100},
		{"capped", 5000, image.Rect(0, 0, 200, 100), 600, 300},
		{"tiny", 0.1, image.Rect(0, 0, 10, 10), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SpriteRect(300, 200, tt.size, tt.src, 600)
			if r.Dx() != tt.wantW || r.Dy() != tt.wantH {
				t.Errorf("rect = %dx%d, want %dx%d", r.Dx(), r.Dy(), tt.wantW, tt.wantH)
			}
			if tt.wantW > 1 {
				cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
				if cx != 300 || cy != 200 {
					t.Errorf("center = (%d,%d), want (300,200)", cx, cy)
				}
			}
		})
	}
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	var order []string
	o := NewOrchestrator(config.Default())
	o.Register(passFunc(func() { order = append(order, "ui") }), PriorityUI)
	o.Register(passFunc(func() { order = append(order, "backdrop") }), PriorityBackdrop)
	o.Register(passFunc(func() { order = append(order, "galaxy") }), PriorityGalaxy)

	_, s := newTestScene(t, 10)
	o.RenderFrame(s, render.NewCanvas(40, 30))

	if got := strings.Join(order, ","); got != "backdrop,galaxy,ui" {
		t.Errorf("pass order = %s", got)
	}
}

type passFunc func()

func (f passFunc) Render(Context, render.Surface) { f() }

// stepScene advances a seeded state, optionally rendering each frame, then resets it
func stepScene(t *testing.T, frames int, rendered bool) *galaxy.State {
	t.Helper()
	cfg := config.Default()
	cfg.Galaxy.Seed = 42
	cfg.Galaxy.Bodies = 300
	s, err := galaxy.NewState(cfg, galaxy.NewSeededRand(cfg.Galaxy.Seed), 200, 150)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	o := NewDefaultOrchestrator(cfg)
	canvas := render.NewCanvas(200, 150)
	for range frames {
		s.Step(galaxy.Input{})
		if rendered {
			o.RenderFrame(s, canvas)
		}
	}
	s.Step(galaxy.Input{Reset: true})
	return s
}

func TestRenderingLeavesSimulationUntouched(t *testing.T) {
	headless := stepScene(t, 5, false)
	rendered := stepScene(t, 5, true)

	if len(headless.Positions) != len(rendered.Positions) {
		t.Fatalf("population size %d vs %d", len(headless.Positions), len(rendered.Positions))
	}
	for i := range headless.Positions {
		if headless.Positions[i] != rendered.Positions[i] {
			t.Fatalf("body %d after reset: %+v headless vs %+v rendered",
				i, headless.Positions[i], rendered.Positions[i])
		}
	}
}

func TestBackdropDependsOnFrameOnly(t *testing.T) {
	cfg, s := newTestScene(t, 0)
	for range 3 {
		s.Step(galaxy.Input{})
	}

	// A pass that rendered earlier frames must match a fresh one
	warm := NewBackdropRenderer(cfg.Galaxy.Seed)
	warm.Render(NewContext(cfg, s, 400, 300), render.NewCanvas(400, 300))
	s.Step(galaxy.Input{})

	a, b := render.NewCanvas(400, 300), render.NewCanvas(400, 300)
	a.Clear(render.RGB{})
	b.Clear(render.RGB{})
	ctx := NewContext(cfg, s, 400, 300)
	warm.Render(ctx, a)
	NewBackdropRenderer(cfg.Galaxy.Seed).Render(ctx, b)

	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs: %+v vs %+v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}

func TestDrawCompactRadiusThreshold(t *testing.T) {
	bg := render.RGB{B: 200}
	tests := []struct {
		name      string
		horizonPx float64
		drawn     bool
	}{
		{"well below one pixel", 0.5, false},
		{"just below one pixel", 0.99, false},
		{"just above one pixel", 1.01, true},
		{"large", 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := render.NewCanvas(100, 100)
			canvas.Clear(bg)
			it := Item{Kind: ItemCompact, Proj: camera.Projection{
				X: 50, Y: 50, Scale: tt.horizonPx / parameter.CompactRadius, Visible: true,
			}}
			NewItemDrawer().DrawCompact(Context{}, canvas, it)

			changed := 0
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					if canvas.At(x, y) != bg {
						changed++
					}
				}
			}
			if !tt.drawn && changed != 0 {
				t.Errorf("sub-pixel horizon changed %d pixels", changed)
			}
			if tt.drawn && canvas.At(50, 50) != visual.RgbBlack {
				t.Errorf("horizon center = %+v, want black", canvas.At(50, 50))
			}
		})
	}
}

func TestHelpTextListsBindings(t *testing.T) {
	for _, want := range []string{"drag: rotate", "space: reset", "l: legend", "n: next track", "m: mute", "+/-: volume", "q: quit"} {
		if !strings.Contains(HelpText, want) {
			t.Errorf("help line missing %q", want)
		}
	}
}

package scene

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-galaxy/render"
)

// BackdropRenderer draws the twinkle layer in screen space, ignoring depth
// Jitter is reseeded from (seed, frame) so rendering never consumes simulation randomness
type BackdropRenderer struct {
	seed uint64
	src  *rand.PCG
	rng  *rand.Rand
}

func NewBackdropRenderer(seed uint64) *BackdropRenderer {
	src := rand.NewPCG(seed, 0)
	return &BackdropRenderer{seed: seed, src: src, rng: rand.New(src)}
}

func (r *BackdropRenderer) Render(ctx Context, dst render.Surface) {
	r.src.Seed(r.seed, ctx.State.Frame)
	for _, tw := range ctx.State.Twinkles {
		jitter := r.rng.Float64()*2 - 1
		dst.SetPixel(int(tw.X), int(tw.Y), tw.Color(ctx.State.Time, jitter))
	}
}

package audio

import (
	"github.com/gopxl/beep"
)

// fader ramps a stream's gain linearly from its current level to a target
// A fader that reaches zero reports drained so the mixer drops it
type fader struct {
	streamer beep.Streamer
	gain     float64
	step     float64
	target   float64
}

func newFader(s beep.Streamer, gain float64) *fader {
	return &fader{streamer: s, gain: gain, target: gain}
}

// rampTo starts a linear ramp to target over n samples; n <= 0 jumps
func (f *fader) rampTo(target float64, n int) {
	f.target = target
	if n <= 0 {
		f.gain, f.step = target, 0
		return
	}
	f.step = (target - f.gain) / float64(n)
}

func (f *fader) silent() bool {
	return f.gain <= 0 && f.target <= 0
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.silent() {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.step != 0 {
			f.gain += f.step
			if (f.step > 0 && f.gain >= f.target) || (f.step < 0 && f.gain <= f.target) {
				f.gain, f.step = f.target, 0
			}
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

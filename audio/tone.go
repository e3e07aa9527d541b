package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSaw
)

// oscillator generates a raw periodic wave; duration 0 streams forever
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator; pass duration 0 for an endless tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping over a fixed length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s and ends it after duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tremolo modulates amplitude with a slow sine between 1-depth and 1
type tremolo struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	freq     float64
	depth    float64
	position int
}

func newTremolo(s beep.Streamer, freq, depth float64, rate beep.SampleRate) beep.Streamer {
	return &tremolo{streamer: s, rate: rate, freq: freq, depth: depth}
}

func (t *tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * t.freq * float64(t.position) / float64(t.rate)
		gain := 1 - t.depth*(0.5+0.5*math.Sin(phase))
		samples[i][0] *= gain
		samples[i][1] *= gain
		t.position++
	}
	return n, ok
}

func (t *tremolo) Err() error { return t.streamer.Err() }

// rumble is one-pole low-passed noise, a soft roar
type rumble struct {
	rng   *rand.Rand
	alpha float64
	state float64
	gain  float64
}

// newRumble smooths white noise with cutoff near cutoffHz
func newRumble(rng *rand.Rand, cutoffHz float64, rate beep.SampleRate) beep.Streamer {
	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / float64(rate)
	alpha := dt / (rc + dt)
	return &rumble{
		rng:   rng,
		alpha: alpha,
		// Low-passing removes most energy; restore a usable level
		gain: min(1/math.Sqrt(alpha), 8),
	}
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		r.state += r.alpha * (r.rng.Float64()*2 - 1 - r.state)
		v := max(-1, min(1, r.state*r.gain))
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

// arpeggio plays an endless sequence of enveloped notes picked from a scale
type arpeggio struct {
	rng     *rand.Rand
	rate    beep.SampleRate
	notes   []int
	step    time.Duration
	current beep.Streamer
}

func newArpeggio(rng *rand.Rand, notes []int, step time.Duration, rate beep.SampleRate) beep.Streamer {
	return &arpeggio{rng: rng, rate: rate, notes: notes, step: step}
}

func (a *arpeggio) next() beep.Streamer {
	freq := NoteFreq(a.notes[a.rng.IntN(len(a.notes))])
	osc := NewOscillator(freq, a.step, WaveTriangle, a.rate)
	return NewEnvelope(osc, a.step, a.step/8, a.step*3/4, a.rate)
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if a.current == nil {
			a.current = a.next()
		}
		m, ok := a.current.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			a.current = nil
		}
	}
	return n, true
}

func (a *arpeggio) Err() error { return nil }

// newVolume scales s by a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

package audio

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-galaxy/config"
	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player rotates ambient tracks with crossfaded transitions
// Lock order is speaker then p.mu; mixer changes happen under both
type Player struct {
	mu          sync.Mutex
	cfg         config.Audio
	rng         *rand.Rand
	tracks      []Track
	mixer       *beep.Mixer
	out         *beep.Ctrl
	current     *fader
	index       int
	started     time.Time
	initialized bool
	speakerOpen bool

	// now is the clock used for auto transitions
	now func() time.Time
}

// NewPlayer creates an idle player; Initialize opens the device
func NewPlayer(cfg config.Audio, rng *rand.Rand) *Player {
	return &Player{
		cfg:    cfg,
		rng:    rng,
		tracks: DefaultTracks,
		mixer:  &beep.Mixer{},
		index:  -1,
		now:    time.Now,
	}
}

// Initialize opens the speaker and starts the first track
// Failure leaves the player inert; callers treat audio as optional
func (p *Player) Initialize() error {
	p.mu.Lock()
	skip := p.initialized || !p.cfg.Enabled
	p.mu.Unlock()
	if skip {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Lock()
	p.mu.Lock()
	p.speakerOpen = true
	p.attachLocked()
	out := p.out
	p.mu.Unlock()
	speaker.Unlock()

	speaker.Play(out)
	return nil
}

// attachLocked builds the output chain and starts track 0 without fade
func (p *Player) attachLocked() {
	p.out = &beep.Ctrl{Streamer: &effects.Volume{Streamer: p.mixer, Base: 2, Volume: p.cfg.Volume}}
	p.initialized = true
	p.startLocked(0, 0)
}

// startLocked plays tracks[i], fading in over fade samples
func (p *Player) startLocked(i, fade int) {
	t := p.tracks[i]
	s, err := t.New(sampleRate, p.rng)
	if err != nil {
		log.Printf("audio: track %q: %v", t.Name, err)
		return
	}

	f := newFader(s, 1)
	if fade > 0 {
		f.gain = 0
		f.rampTo(1, fade)
	}
	p.mixer.Add(f)
	p.current = f
	p.index = i
	p.started = p.now()
	log.Printf("audio: now playing %q", t.Name)
}

// Next crossfades to the following track
func (p *Player) Next() {
	speaker.Lock()
	defer speaker.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextLocked()
}

func (p *Player) nextLocked() {
	if !p.initialized {
		return
	}
	fade := sampleRate.N(parameter.TrackCrossfade)
	if p.current != nil {
		p.current.rampTo(0, fade)
	}
	p.startLocked((p.index+1)%len(p.tracks), fade)
}

// Update advances to the next track once the current one has run its course
// Called once per frame by the main loop
func (p *Player) Update() {
	p.mu.Lock()
	due := p.initialized && p.now().Sub(p.started) >= parameter.TrackDuration
	p.mu.Unlock()

	if due {
		p.Next()
	}
}

// Toggle pauses or resumes output, returning true when paused
func (p *Player) Toggle() bool {
	speaker.Lock()
	defer speaker.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	p.out.Paused = !p.out.Paused
	return p.out.Paused
}

// Current returns the playing track name, empty when idle
func (p *Player) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.index < 0 {
		return ""
	}
	return p.tracks[p.index].Name
}

// AdjustVolume moves the master gain by step base 2 exponent units and returns the new gain
// Reaching VolumeMin silences output
func (p *Player) AdjustVolume(step float64) float64 {
	speaker.Lock()
	defer speaker.Unlock()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg.Volume = vmath.Clamp(p.cfg.Volume+step, parameter.VolumeMin, parameter.VolumeMax)
	if p.initialized {
		v := p.out.Streamer.(*effects.Volume)
		v.Volume = p.cfg.Volume
		v.Silent = p.cfg.Volume <= parameter.VolumeMin
	}
	return p.cfg.Volume
}

// Cleanup stops all tracks and closes the speaker
func (p *Player) Cleanup() {
	speaker.Lock()
	p.mu.Lock()
	if !p.initialized {
		p.mu.Unlock()
		speaker.Unlock()
		return
	}
	p.mixer.Clear()
	p.current = nil
	p.initialized = false
	closeSpeaker := p.speakerOpen
	p.speakerOpen = false
	p.mu.Unlock()
	speaker.Unlock()

	if closeSpeaker {
		speaker.Close()
	}
}

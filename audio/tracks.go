package audio

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Track is a named endless ambient generator
type Track struct {
	Name string
	New  func(rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error)
}

// DefaultTracks is the ambient rotation
var DefaultTracks = []Track{
	{Name: "Deep Field", New: deepField},
	{Name: "Event Horizon", New: eventHorizon},
	{Name: "Spiral Arms", New: spiralArms},
}

// deepField is a slow-breathing open fifth drone
func deepField(rate beep.SampleRate, _ *rand.Rand) (beep.Streamer, error) {
	notes := []struct {
		midi int
		gain float64
	}{
		{36, 0.30}, // C2
		{43, 0.20}, // G2
		{48, 0.12}, // C3
	}

	voices := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, NoteFreq(n.midi))
		if err != nil {
			return nil, fmt.Errorf("deep field tone %d: %w", n.midi, err)
		}
		voices = append(voices, newVolume(tone, n.gain))
	}
	return newTremolo(beep.Mix(voices...), 0.07, 0.5, rate), nil
}

// eventHorizon is a low roar under a sub tone, swelling slowly
func eventHorizon(rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	sub, err := generators.SineTone(rate, 41.2)
	if err != nil {
		return nil, fmt.Errorf("event horizon sub: %w", err)
	}
	roar := newRumble(rng, 120, rate)
	return newTremolo(beep.Mix(newVolume(sub, 0.35), newVolume(roar, 0.25)), 0.03, 0.6, rate), nil
}

// spiralArms is a sparse pentatonic arpeggio over a soft pad
func spiralArms(rate beep.SampleRate, rng *rand.Rand) (beep.Streamer, error) {
	pad, err := generators.SineTone(rate, NoteFreq(45))
	if err != nil {
		return nil, fmt.Errorf("spiral arms pad: %w", err)
	}
	scale := []int{57, 60, 62, 64, 67, 69, 72}
	arp := newArpeggio(rng, scale, 750*time.Millisecond, rate)
	return beep.Mix(newVolume(newTremolo(pad, 0.1, 0.4, rate), 0.2), newVolume(arp, 0.18)), nil
}

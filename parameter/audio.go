package parameter

import "time"

// Audio hardware
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Ambient tracks
const (
	// AmbientVolume is the master gain, beep volume base 2 exponent
	AmbientVolume = -2.5

	// VolumeStep is the gain change per volume key press
	VolumeStep = 0.5
	// VolumeMin silences output, VolumeMax is unity gain
	VolumeMin = -8.0
	VolumeMax = 0.0

	// TrackCrossfade is the transition length between ambient tracks
	TrackCrossfade = 3 * time.Second

	// TrackDuration is how long a track plays before auto transition
	TrackDuration = 90 * time.Second
)

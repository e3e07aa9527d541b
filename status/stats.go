// Package status holds live frame statistics written by the frame loop and read by the HUD
package status

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"
)

// fpsSmoothing is the weight of the newest frame in the running rate
const fpsSmoothing = 0.1

// MaxLabelLen bounds stored label text
const MaxLabelLen = 32

// Gauge is an atomic float64; zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is an atomic short string; zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store sets the text, truncated to at most MaxLabelLen bytes on a rune boundary
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		n := MaxLabelLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	l.ptr.Store(&s)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// Stats is the HUD's view of the running simulation
type Stats struct {
	FPS       Gauge
	FrameTime Gauge // Milliseconds between the last two frames
	Frames    atomic.Uint64
	Bodies    atomic.Int64
	Track     Label

	last time.Time
}

// RecordFrame notes a frame presented at now and updates the smoothed rate
// Only the frame loop calls this
func (s *Stats) RecordFrame(now time.Time) {
	s.Frames.Add(1)
	if !s.last.IsZero() {
		dt := now.Sub(s.last)
		if dt > 0 {
			s.FrameTime.Set(float64(dt) / float64(time.Millisecond))
			inst := float64(time.Second) / float64(dt)
			if prev := s.FPS.Get(); prev > 0 {
				inst = prev + fpsSmoothing*(inst-prev)
			}
			s.FPS.Set(inst)
		}
	}
	s.last = now
}

// Line formats the HUD text
func (s *Stats) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%.0f fps  %d bodies", s.FPS.Get(), s.Bodies.Load())
	if t := s.Track.Load(); t != "" {
		fmt.Fprintf(&b, "  ~ %s", t)
	}
	return b.String()
}

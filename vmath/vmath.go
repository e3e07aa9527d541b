package vmath

import (
	"math"
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a to b by t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InvLerp maps v from [a, b] to [0, 1], clamped
func InvLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return Clamp((v-a)/(b-a), 0, 1)
}

// Finite reports whether f is neither NaN nor infinite
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Magnitude2D returns the euclidean length of (dx, dy)
func Magnitude2D(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

package parameter

// Gravitational lens
const (
	// LensStrength sets the Einstein radius squared before scaling
	LensStrength = 3500.0

	// LensNormalization divides projection scale into screen units
	LensNormalization = 5.0

	// LensReach is the multiple of the Einstein radius beyond which no warp applies
	LensReach = 4.0

	// LensMinDistance guards the division near the lens center
	LensMinDistance = 1.0
)

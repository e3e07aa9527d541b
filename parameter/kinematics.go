package parameter

// Rotation curve
const (
	// OrbitGain multiplies the Keplerian speed sqrt(M/r)
	OrbitGain = 1.5

	// OrbitRadiusFloor avoids the singular angular velocity near the center
	OrbitRadiusFloor = 10.0

	// HaloSpeedFloor is the plateau speed of the flat rotation curve
	// Keplerian speed crosses it near r = 350
	HaloSpeedFloor = 4.0

	// TimeAcceleration scales simulated time into orbital angle
	TimeAcceleration = 5.0

	// SimStep is simulated time per frame
	SimStep = 0.005
)

// Rotation curve names accepted by configuration
const (
	CurveKepler = "kepler"
	CurveFlat   = "flat"
)

// Backdrop twinkle
const (
	// TwinkleFrequency is the fast flicker rate in radians per simulated time unit
	TwinkleFrequency = 40.0

	// TwinkleJitter bounds the per-frame random luminance term
	TwinkleJitter = 0.25

	TwinkleFloor = 0.15

	// TwinkleFlash promotes intensity above it to a pure white flash
	TwinkleFlash = 0.97

	TwinkleBaseMin = 150
	TwinkleBaseMax = 255
)

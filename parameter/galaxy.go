package parameter

// Population sizes
const (
	// GalaxyBodyCount is the number of sampled galaxy bodies, excluding rogues and home
	GalaxyBodyCount = 5000

	// TwinkleCount is the number of fixed backdrop bodies
	TwinkleCount = 200

	// RogueCount is the number of hypervelocity bodies appended to every population
	RogueCount = 30
)

// Structural class thresholds over a uniform draw in [0,1)
const (
	// BulgeThreshold: u < 0.05 selects bulge/accretion
	BulgeThreshold = 0.05

	// BarThreshold: 0.05 <= u < 0.20 selects bar, remaining 80% are arm bodies
	BarThreshold = 0.20

	// LocalArmChance is the share of arm bodies placed on the local arm
	LocalArmChance = 0.10
)

// Compact body
const (
	// CompactMass is the central mass used by the Keplerian law
	CompactMass = 2500.0

	// CompactRadius is the event horizon radius in native units
	CompactRadius = 15.0
)

// Bulge and accretion region
const (
	// BulgeInnerGap is the clearance between the horizon and the first accreting body
	BulgeInnerGap = 5.0

	// AccretionRadius separates the hot accretion disk from the cool stellar bulge
	AccretionRadius = 80.0

	// BulgeRadius is the outer edge of the bulge population
	BulgeRadius = 150.0

	// AccretionThickness keeps the accretion disk flat
	AccretionThickness = 2.0

	// BulgeFlattening scales halo thickness with radius, 1.0 would be spherical
	BulgeFlattening = 0.6
)

// Central bar
const (
	BarHalfLength = 140.0
	BarWidth      = 35.0
	// BarAngle is the bar's orientation in the disk plane (~45 degrees)
	BarAngle     = 0.78
	BarThickness = 15.0
)

// Spiral arms
const (
	ArmRadiusMean  = 300.0
	ArmRadiusSigma = 100.0
	ArmRadiusMin   = 120.0
	ArmRadiusMax   = 600.0

	// ArmPitch is the logarithmic-spiral twist in radians per native unit
	ArmPitch = 0.015

	// ArmJitter is the angular scatter around the arm center line
	ArmJitter = 0.2

	// ArmYoungChance is the share of hot young bodies in arms
	ArmYoungChance = 0.20

	// ArmThicknessBase plus ArmThicknessFlare/(r/10+1) gives disk thickness, thinning outward
	ArmThicknessBase  = 10.0
	ArmThicknessFlare = 250.0
)

// HeightSigmaDivisor converts class thickness into the vertical Gaussian sigma
const HeightSigmaDivisor = 1.5

// Rogue bodies
const (
	RogueSpreadXZ  = 50.0
	RogueSpreadY   = 20.0
	RogueSpeedMin  = 1.5
	RogueSpeedMax  = 2.5
	RogueDirYScale = 0.5

	// RogueEscapeRadius triggers in-place respawn
	RogueEscapeRadius = 800.0
)

// Home marker placement, on the local arm
const (
	HomeRadius   = 350.0
	HomeArmAngle = 1.1
	HomeSize     = 4.0
)

// Temperature model, kelvin
const (
	TemperatureMin = 1000.0
	TemperatureMax = 40000.0

	// TemperatureCool is the top of the red band
	TemperatureCool = 3500.0

	// TemperatureWarm is the top of the intermediate band
	TemperatureWarm = 6000.0
)

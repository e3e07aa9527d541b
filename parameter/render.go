package parameter

// Body sprites
const (
	// BodyAlpha is the opacity of multi-pixel bodies
	BodyAlpha = 180

	// CompanionSpriteCap limits scaled sprite edge length in pixels
	CompanionSpriteCap = 600

	// CloudBlobCount is the number of procedural blobs per cloud companion
	CloudBlobCount = 14
)

// Compact body halo
const (
	HaloOuterScale = 1.5
	HaloInnerScale = 1.1
	HaloOuterAlpha = 40
	HaloInnerAlpha = 100
)

// Home marker
const (
	HomeHaloAlpha = 50
	HomeCoreAlpha = 200
	HomeRingPad   = 5
	HomeMinSize   = 3
)

// Legend layout in pixels
const (
	LegendSwatch  = 15
	LegendSpacing = 20
	LegendMarginX = 10
)

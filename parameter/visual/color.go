package visual

import (
	"github.com/lixenwraith/vi-galaxy/render"
)

// Scene colors
var (
	RgbSpace = render.RGB{R: 5, G: 5, B: 10}
	RgbBlack = render.RGB{}
	RgbWhite = render.RGB{R: 255, G: 255, B: 255}

	// Fixed body colors
	RgbRogue = render.RGB{R: 200, G: 200, B: 255} // Hot blue, hypervelocity
	RgbHome  = render.RGB{R: 255, G: 255, B: 0}

	// Halos
	RgbHaloWarm  = render.RGB{R: 255, G: 200, B: 150}
	RgbHomeHalo  = render.RGB{R: 255, G: 255, B: 100}
	RgbHomeRing  = render.RGB{R: 255, G: 50, B: 50}
	RgbHomeLabel = render.RGB{R: 255, G: 255, B: 150}

	// Legend
	RgbLegendBar  = render.RGB{R: 255, G: 200, B: 100}
	RgbLegendArm  = render.RGB{R: 50, G: 150, B: 255}
	RgbLegendText = render.RGB{R: 200, G: 200, B: 200}
	RgbLensText   = render.RGB{R: 100, G: 255, B: 100}
	RgbHelpText   = render.RGB{R: 150, G: 150, B: 150}
)

// Temperature anchors, continuous across band edges
var (
	RgbTempDeepRed   = render.RGB{R: 255, G: 56, B: 0}    // 1000K
	RgbTempOrange    = render.RGB{R: 255, G: 166, B: 80}  // 3500K
	RgbTempWarmWhite = render.RGB{R: 255, G: 242, B: 230} // 6000K
	RgbTempBlueWhite = render.RGB{R: 155, G: 176, B: 255} // 40000K
)

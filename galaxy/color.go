package galaxy

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
	"github.com/lixenwraith/vi-galaxy/vmath"
)

type temperatureBand struct {
	lo, hi   float64
	from, to colorful.Color
}

func toColorful(c render.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Bands share anchor colors at their edges so the mapping is continuous
var temperatureBands = [...]temperatureBand{
	{parameter.TemperatureMin, parameter.TemperatureCool, toColorful(visual.RgbTempDeepRed), toColorful(visual.RgbTempOrange)},
	{parameter.TemperatureCool, parameter.TemperatureWarm, toColorful(visual.RgbTempOrange), toColorful(visual.RgbTempWarmWhite)},
	{parameter.TemperatureWarm, parameter.TemperatureMax, toColorful(visual.RgbTempWarmWhite), toColorful(visual.RgbTempBlueWhite)},
}

// TemperatureColor approximates black-body color for kelvin
// Input is clamped to [TemperatureMin, TemperatureMax]
func TemperatureColor(kelvin float64) render.RGB {
	k := vmath.Clamp(kelvin, parameter.TemperatureMin, parameter.TemperatureMax)

	band := temperatureBands[len(temperatureBands)-1]
	for _, b := range temperatureBands {
		if k <= b.hi {
			band = b
			break
		}
	}

	c := band.from.BlendRgb(band.to, vmath.InvLerp(band.lo, band.hi, k)).Clamped()
	return render.RGB{
		R: render.Clamp8(c.R * 255),
		G: render.Clamp8(c.G * 255),
		B: render.Clamp8(c.B * 255),
	}
}

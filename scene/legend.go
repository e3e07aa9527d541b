package scene

import (
	"image"

	"github.com/lixenwraith/vi-galaxy/parameter"
	"github.com/lixenwraith/vi-galaxy/parameter/visual"
	"github.com/lixenwraith/vi-galaxy/render"
)

// HelpText is always shown along the bottom edge
const HelpText = "drag: rotate  space: reset  l: legend  n: next track  m: mute  +/-: volume  q: quit"

// LensText marks that lensing is on
const LensText = "Gravitational lens active"

type legendEntry struct {
	color render.RGB
	text  string
}

var legendEntries = []legendEntry{
	{visual.RgbBlack, "Compact body (Sgr A*)"},
	{visual.RgbLegendBar, "Central bar"},
	{visual.RgbLegendArm, "Spiral arms"},
	{visual.RgbHome, "Solar System"},
}

// LegendRenderer draws swatches, the lens indicator and the help line
// Surfaces without text support get the swatches only
type LegendRenderer struct{}

func NewLegendRenderer() *LegendRenderer {
	return &LegendRenderer{}
}

func (r *LegendRenderer) Render(ctx Context, dst render.Surface) {
	labeler, hasText := dst.(render.Labeler)

	if hasText {
		labeler.Label(parameter.LegendMarginX, ctx.Height-labeler.LineHeight(), HelpText, visual.RgbLegendText)
	}
	if !ctx.State.ShowLegend {
		return
	}

	// Swatch and row pitch shrink with the surface's text row so cell surfaces stay compact
	row, swatch := parameter.LegendSpacing, parameter.LegendSwatch
	if hasText && labeler.LineHeight() < row {
		row = labeler.LineHeight()
		swatch = row
	}

	x, y := parameter.LegendMarginX, parameter.LegendMarginX
	for _, e := range legendEntries {
		rect := image.Rect(x, y, x+swatch, y+swatch)
		// Black swatch needs an outline to read against space
		if e.color == visual.RgbBlack {
			dst.FilledRect(rect.Inset(-1), visual.RgbLegendText.Alpha(255))
		}
		dst.FilledRect(rect, e.color.Alpha(255))
		if hasText {
			labeler.Label(x+swatch+parameter.LegendMarginX, y, e.text, visual.RgbLegendText)
		}
		y += row
	}

	if !hasText {
		return
	}
	y += row / 2
	if ctx.Lens.Enabled {
		labeler.Label(x, y, LensText, visual.RgbLegendText)
		y += labeler.LineHeight()
	}
	if ctx.Stats != nil {
		labeler.Label(x, y, ctx.Stats.Line(), visual.RgbLegendText)
	}
}

package render

import (
	"image"
)

// Surface is the drawable target the scene renders into
// Coordinates are pixels; out-of-bounds writes are clipped silently
type Surface interface {
	Size() (width, height int)
	Clear(c RGB)
	SetPixel(x, y int, c RGB)
	FilledCircle(cx, cy, r float64, c RGBA)
	FilledEllipse(rect image.Rectangle, c RGBA)
	FilledRect(rect image.Rectangle, c RGBA)

	// BlitScaled draws img scaled into rect with alpha compositing
	// Returns an error instead of panicking if the scaler fails
	BlitScaled(img image.Image, rect image.Rectangle) error
}

// Labeler is optionally implemented by surfaces that can draw text
// (x, y) is the top-left of the label in pixels
type Labeler interface {
	Label(x, y int, text string, c RGB)
	// LineHeight is the pixel height of one text row
	LineHeight() int
}

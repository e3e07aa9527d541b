package render

import (
	"image/color"
)

// RGB is an opaque 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA is RGB with straight (non-premultiplied) alpha
type RGBA struct {
	R, G, B, A uint8
}

// Alpha attaches opacity to c
func (c RGB) Alpha(a uint8) RGBA {
	return RGBA{c.R, c.G, c.B, a}
}

// Opaque drops alpha
func (c RGBA) Opaque() RGB {
	return RGB{c.R, c.G, c.B}
}

// NRGBA converts to the image/color straight-alpha type
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// NRGBA converts an opaque color to image/color
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Gray builds a neutral color
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Clamp8 rounds and saturates a channel value to [0,255]
func Clamp8(v float64) uint8 {
	return clamp(v + 0.5)
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Over composites straight-alpha src onto opaque dst
func Over(dst RGB, src RGBA) RGB {
	switch src.A {
	case 255:
		return src.Opaque()
	case 0:
		return dst
	}
	return Blend(dst, src.Opaque(), float64(src.A)/255.0)
}

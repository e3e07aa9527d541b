package render

import (
	"image"
	"math"
)

// plotFunc composites one pixel; callers guarantee bounds
type plotFunc func(x, y int, c RGBA)

// fillCircle rasterizes a disk by pixel-center containment
func fillCircle(w, h int, cx, cy, r float64, c RGBA, plot plotFunc) {
	if r <= 0.5 {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if x >= 0 && x < w && y >= 0 && y < h {
			plot(x, y, c)
		}
		return
	}

	x0 := max(0, int(math.Floor(cx-r)))
	x1 := min(w-1, int(math.Ceil(cx+r)))
	y0 := max(0, int(math.Floor(cy-r)))
	y1 := min(h-1, int(math.Ceil(cy+r)))
	rSq := r * r

	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		dySq := dy * dy
		if dySq > rSq {
			continue
		}
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dySq <= rSq {
				plot(x, y, c)
			}
		}
	}
}

// fillEllipse rasterizes the ellipse inscribed in rect
func fillEllipse(w, h int, rect image.Rectangle, c RGBA, plot plotFunc) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	cx := float64(rect.Min.X) + rx
	cy := float64(rect.Min.Y) + ry

	clip := rect.Intersect(image.Rect(0, 0, w, h))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		ny := (float64(y) + 0.5 - cy) / ry
		nySq := ny * ny
		if nySq > 1 {
			continue
		}
		for x := clip.Min.X; x < clip.Max.X; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			if nx*nx+nySq <= 1 {
				plot(x, y, c)
			}
		}
	}
}

// fillRect fills rect clipped to the surface
func fillRect(w, h int, rect image.Rectangle, c RGBA, plot plotFunc) {
	clip := rect.Canon().Intersect(image.Rect(0, 0, w, h))
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			plot(x, y, c)
		}
	}
}

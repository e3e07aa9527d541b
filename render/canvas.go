package render

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an in-memory RGBA surface, used by headless rendering and tests
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas of the given pixel size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the backing image for encoding
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the opaque color at (x, y)
func (c *Canvas) At(x, y int) RGB {
	p := c.img.RGBAAt(x, y)
	return RGB{p.R, p.G, p.B}
}

func (c *Canvas) Clear(col RGB) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) SetPixel(x, y int, col RGB) {
	c.img.SetRGBA(x, y, color.RGBA{R: col.R, G: col.G, B: col.B, A: 255})
}

// plot composites src over the existing pixel
func (c *Canvas) plot(x, y int, src RGBA) {
	c.SetPixel(x, y, Over(c.At(x, y), src))
}

func (c *Canvas) FilledCircle(cx, cy, r float64, col RGBA) {
	w, h := c.Size()
	fillCircle(w, h, cx, cy, r, col, c.plot)
}

func (c *Canvas) FilledEllipse(rect image.Rectangle, col RGBA) {
	w, h := c.Size()
	fillEllipse(w, h, rect, col, c.plot)
}

func (c *Canvas) FilledRect(rect image.Rectangle, col RGBA) {
	w, h := c.Size()
	fillRect(w, h, rect, col, c.plot)
}

// BlitScaled bilinear-scales img into rect, compositing over existing pixels
func (c *Canvas) BlitScaled(img image.Image, rect image.Rectangle) (err error) {
	if img == nil {
		return fmt.Errorf("blit: nil image")
	}
	rect = rect.Canon()
	if rect.Empty() || img.Bounds().Empty() {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("blit %v: %v", rect, r)
		}
	}()

	draw.BiLinear.Scale(c.img, rect, img, img.Bounds(), draw.Over, nil)
	return nil
}

// Label draws text with the 7x13 bitmap face
func (c *Canvas) Label(x, y int, text string, col RGB) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

func (c *Canvas) LineHeight() int {
	return basicfont.Face7x13.Height + 7
}

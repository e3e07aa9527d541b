package render

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the upper pixel as foreground, lower as background
const halfBlock = '▀'

type label struct {
	col, row int
	text     string
	fg       RGB
}

// CellBuffer is a pixel surface over terminal cells, two vertical pixels per cell
// Pixels are composited in memory and written once per frame by Flush
type CellBuffer struct {
	pix    []RGB
	labels []label
	width  int // Pixels, equal to terminal columns
	height int // Pixels, twice the terminal rows
}

// NewCellBuffer creates a buffer for a terminal of cols x rows cells
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(cols, rows)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows * 2
	if cap(b.pix) < size {
		b.pix = make([]RGB, size)
	} else {
		b.pix = b.pix[:size]
	}
	b.width = cols
	b.height = rows * 2
	b.labels = b.labels[:0]
}

func (b *CellBuffer) Size() (int, int) {
	return b.width, b.height
}

// Clear resets all pixels using exponential copy and drops pending labels
func (b *CellBuffer) Clear(c RGB) {
	b.labels = b.labels[:0]
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// inBounds returns true if in pixel bounds
func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y), black when out of bounds
func (b *CellBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGB{}
	}
	return b.pix[y*b.width+x]
}

func (b *CellBuffer) SetPixel(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

func (b *CellBuffer) plot(x, y int, c RGBA) {
	idx := y*b.width + x
	b.pix[idx] = Over(b.pix[idx], c)
}

func (b *CellBuffer) FilledCircle(cx, cy, r float64, c RGBA) {
	fillCircle(b.width, b.height, cx, cy, r, c, b.plot)
}

func (b *CellBuffer) FilledEllipse(rect image.Rectangle, c RGBA) {
	fillEllipse(b.width, b.height, rect, c, b.plot)
}

func (b *CellBuffer) FilledRect(rect image.Rectangle, c RGBA) {
	fillRect(b.width, b.height, rect, c, b.plot)
}

// BlitScaled resizes img to rect and composites the visible part
func (b *CellBuffer) BlitScaled(img image.Image, rect image.Rectangle) (err error) {
	if img == nil {
		return fmt.Errorf("blit: nil image")
	}
	rect = rect.Canon()
	clip := rect.Intersect(image.Rect(0, 0, b.width, b.height))
	if clip.Empty() || img.Bounds().Empty() {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("blit %v: %v", rect, r)
		}
	}()

	scaled := transform.Resize(img, rect.Dx(), rect.Dy(), transform.Linear)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			p := scaled.RGBAAt(x-rect.Min.X, y-rect.Min.Y)
			if p.A == 0 {
				continue
			}
			// bild returns premultiplied RGBA, undo for straight-alpha compositing
			src := RGBA{p.R, p.G, p.B, p.A}
			if p.A < 255 {
				k := 255.0 / float64(p.A)
				src.R, src.G, src.B = clamp(float64(p.R)*k), clamp(float64(p.G)*k), clamp(float64(p.B)*k)
			}
			b.plot(x, y, src)
		}
	}
	return nil
}

// Label queues text at pixel (x, y); it is drawn over the cell row containing y
func (b *CellBuffer) Label(x, y int, text string, c RGB) {
	b.labels = append(b.labels, label{col: x, row: y / 2, text: text, fg: c})
}

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// LineHeight is one terminal row, two half-block pixels
func (b *CellBuffer) LineHeight() int {
	return 2
}

// Flush writes the buffer to the screen and shows it
func (b *CellBuffer) Flush(screen tcell.Screen) {
	rows := b.height / 2
	for row := 0; row < rows; row++ {
		top := b.pix[(row*2)*b.width : (row*2+1)*b.width]
		bottom := b.pix[(row*2+1)*b.width : (row*2+2)*b.width]
		for col := 0; col < b.width; col++ {
			style := tcell.StyleDefault.Foreground(tcellColor(top[col])).Background(tcellColor(bottom[col]))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	for _, l := range b.labels {
		col := l.col
		for _, r := range l.text {
			if col >= b.width || l.row < 0 || l.row >= rows {
				break
			}
			if col >= 0 {
				bg := Blend(b.At(col, l.row*2), b.At(col, l.row*2+1), 0.5)
				style := tcell.StyleDefault.Foreground(tcellColor(l.fg)).Background(tcellColor(bg))
				screen.SetContent(col, l.row, r, nil, style)
			}
			col++
		}
	}

	screen.Show()
}

//go:build ebiten

package ui

import (
	"image/color"

	"psyca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type brushProvider interface {
	BrushRadius() int
	PixelSize() int
}

// Overlay outlines the area the brush will paint under the cursor.
type Overlay struct {
	brush brushProvider
	x, y  int
	show  bool
}

// NewOverlay constructs an overlay tracking the brush of b.
func NewOverlay(b brushProvider) *Overlay {
	return &Overlay{brush: b}
}

// Update records the cursor position in screen pixels.
func (o *Overlay) Update(x, y int, inside bool) {
	o.x, o.y = x, y
	o.show = inside
}

// Draw strokes the brush square snapped to the cell grid.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show {
		return
	}
	scale := o.brush.PixelSize()
	radius := o.brush.BrushRadius()
	cx, cy := core.FloorDiv(o.x, scale), core.FloorDiv(o.y, scale)

	x0, y0, span := cx-radius, cy-radius, 2*radius
	if radius <= 0 {
		x0, y0, span = cx, cy, 1
	}
	vector.StrokeRect(screen,
		float32(x0*scale), float32(y0*scale),
		float32(span*scale), float32(span*scale),
		1, color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xCC}, false)
}

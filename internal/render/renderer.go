//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter caches a palette-indexed board as a w*h RGBA image and draws it
// scaled so every cell covers a square of scale pixels.
type GridPainter struct {
	w, h    int
	scale   int
	palette []color.RGBA
	bg      color.Color
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h, scale int, palette []color.RGBA, bg color.Color) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	return &GridPainter{
		w:       w,
		h:       h,
		scale:   scale,
		palette: palette,
		bg:      bg,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
	}
}

// Update converts cells into the cached image. Mismatched buffers are ignored.
func (gp *GridPainter) Update(cells []uint8) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)
}

// Draw clears dst to the background colour and draws the cached image.
func (gp *GridPainter) Draw(dst *ebiten.Image) {
	dst.Fill(gp.bg)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(gp.img, op)
}

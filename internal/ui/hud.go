//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner of the board.
type HUD struct {
	source StatusSource
	panel  *ebiten.Image
	cache  statusCache
	lines  []string
}

// NewHUD constructs a HUD reading its values from source.
func NewHUD(source StatusSource) *HUD {
	return &HUD{source: source}
}

// Update refreshes the status lines when the source has changed.
func (h *HUD) Update() {
	if h == nil || h.source == nil {
		return
	}
	h.lines = h.cache.Lines(h.source)
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(h.lines)*lineHeight + 2*panelPadding

	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(h.panel, op)
}

const (
	panelMargin  = 6
	panelPadding = 6
	lineHeight   = 14
)

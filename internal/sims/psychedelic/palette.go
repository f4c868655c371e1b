package psychedelic

import "image/color"

// ColourCount is the number of colours a cell cycles through.
const ColourCount = 8

var palette = []color.RGBA{
	{R: 0xFF, G: 0x41, B: 0x36, A: 0xFF}, // red
	{R: 0xFF, G: 0x85, B: 0x1B, A: 0xFF}, // orange
	{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF}, // yellow
	{R: 0x2E, G: 0xCC, B: 0x40, A: 0xFF}, // green
	{R: 0x39, G: 0xCC, B: 0xCC, A: 0xFF}, // cyan
	{R: 0x00, G: 0x74, B: 0xD9, A: 0xFF}, // blue
	{R: 0xB1, G: 0x0D, B: 0xC9, A: 0xFF}, // purple
	{R: 0xF0, G: 0x12, B: 0xBE, A: 0xFF}, // fuchsia
}

// Background is the clear colour drawn behind the board.
var Background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Palette exposes the colour for each cell value. Callers must not modify it.
func (b *Board) Palette() []color.RGBA {
	return palette
}

// Colour returns the palette entry for v, falling back to the last entry for
// out-of-range values.
func Colour(v uint8) color.RGBA {
	if int(v) >= len(palette) {
		return palette[len(palette)-1]
	}
	return palette[v]
}

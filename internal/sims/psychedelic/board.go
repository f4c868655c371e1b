package psychedelic

import (
	"math"

	"psyca/internal/core"
)

// neighbourOffsets lists the Moore neighbourhood excluding the centre.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a grid of colour indices advanced by the psychedelic rule. Every
// cell always holds a value in [0, ColourCount).
type Board struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
	rng *core.RNG
}

// New creates a board of w*h cells seeded with seed. The cells start at
// colour 0; call Randomise or Reset to scatter colours.
func New(w, h int, seed int64) *Board {
	return &Board{
		cur: core.NewByteGrid(w, h),
		nxt: core.NewByteGrid(w, h),
		rng: core.NewRNG(seed),
	}
}

// NewWithConfig creates a board sized from cfg and randomised with cfg.Seed.
func NewWithConfig(cfg Config) *Board {
	b := New(cfg.Width, cfg.Height, cfg.Seed)
	b.Randomise()
	return b
}

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.cur.Size() }

// Cells exposes the current state buffer in row-major order.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// At returns the colour index at (x, y), or 0 outside the board.
func (b *Board) At(x, y int) uint8 { return b.cur.At(x, y) }

// Reset reseeds the board's RNG and randomises every cell.
func (b *Board) Reset(seed int64) {
	b.rng.Reseed(seed)
	b.Randomise()
}

// Randomise sets every cell to a uniformly random colour.
func (b *Board) Randomise() {
	core.FillUniform(b.rng.Source(), b.cur.Cells(), ColourCount)
}

// Paint sets the square [cx-radius, cx+radius) x [cy-radius, cy+radius),
// clipped to the board, to colour 0. A radius of zero (or less) paints only
// the cell under (cx, cy).
func (b *Board) Paint(cx, cy, radius int) {
	if radius <= 0 {
		b.cur.FillRect(cx, cy, cx+1, cy+1, 0)
		return
	}
	b.cur.FillRect(cx-radius, cy-radius, cx+radius, cy+radius, 0)
}

// Advance computes the next generation into the spare buffer and swaps it in.
// A temperature of zero leaves every cell unchanged.
func (b *Board) Advance(temperature int) {
	temperature = ClampTemperature(temperature)
	w, h := b.cur.W, b.cur.H
	src := b.cur.Cells()
	dst := b.nxt.Cells()

	var valid [8]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			c := src[idx]

			n := 0
			for i, off := range neighbourOffsets {
				if b.cur.InBounds(x+off[0], y+off[1]) {
					valid[n] = i
					n++
				}
			}
			if n == 0 || temperature == 0 {
				dst[idx] = c
				continue
			}
			off := neighbourOffsets[valid[b.rng.IntN(n)]]
			dst[idx] = nextColour(c, src[b.cur.Index(x+off[0], y+off[1])], temperature, ColourCount)
		}
	}
	b.cur.Swap(b.nxt)
}

// nextColour applies the cycling rule to a cell of colour c that sampled a
// neighbour, with k colours in the cycle.
func nextColour(c, neighbour uint8, temperature, k int) uint8 {
	dom := c
	for i := 1; i <= temperature; i++ {
		if int(neighbour) == (int(c)+i)%k {
			dom = uint8((int(c) + 1) % k)
		}
	}
	return dom
}

// Histogram counts how many cells hold each colour.
func (b *Board) Histogram() [ColourCount]int {
	var counts [ColourCount]int
	for _, c := range b.cur.Cells() {
		if int(c) < ColourCount {
			counts[c]++
		}
	}
	return counts
}

// Entropy returns the Shannon entropy, in bits, of the colour distribution.
func (b *Board) Entropy() float64 {
	counts := b.Histogram()
	total := float64(len(b.cur.Cells()))
	if total == 0 {
		return 0
	}
	var e float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		e -= p * math.Log2(p)
	}
	return e
}

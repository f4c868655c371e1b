package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Size reports the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-bounds reads return 0.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set writes v at (x, y). Out-of-bounds writes are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = v
}

// FillRect sets every cell of [x0,x1) x [y0,y1), clipped to the grid, to v.
func (g *ByteGrid) FillRect(x0, y0, x1, y1 int, v uint8) {
	x0, x1 = max(x0, 0), min(x1, g.W)
	y0, y1 = max(y0, 0), min(y1, g.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for y := y0; y < y1; y++ {
		row := g.data[g.Index(x0, y):g.Index(x1, y)]
		for i := range row {
			row[i] = v
		}
	}
}

// Swap exchanges the backing storage of g and other. Both grids must share
// dimensions; mismatched grids are left untouched.
func (g *ByteGrid) Swap(other *ByteGrid) {
	if other == nil || other.W != g.W || other.H != g.H {
		return
	}
	g.data, other.data = other.data, g.data
}

package app

// wheelAccumulator turns fractional wheel offsets, as reported by trackpads,
// into whole scroll steps. The remainder carries over between frames and
// keeps its sign.
type wheelAccumulator struct {
	acc float64
}

// Add records dy and returns the whole steps now due.
func (w *wheelAccumulator) Add(dy float64) int {
	w.acc += dy
	steps := int(w.acc)
	w.acc -= float64(steps)
	return steps
}

package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// FloorDiv divides rounding towards negative infinity, so screen positions
// left of or above the origin map to negative cells. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

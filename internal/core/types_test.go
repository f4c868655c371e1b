package core

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{a: 0, b: 4, want: 0},
		{a: 3, b: 4, want: 0},
		{a: 4, b: 4, want: 1},
		{a: 17, b: 4, want: 4},
		{a: -1, b: 4, want: -1},
		{a: -4, b: 4, want: -1},
		{a: -5, b: 4, want: -2},
		{a: -8, b: 1, want: -8},
	}
	for _, tc := range tests {
		if got := FloorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

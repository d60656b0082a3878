package mathutil

import "math"

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits x to [lo, hi] (search: int-math).
func IntClamp(x, lo, hi int) int {
	return IntMin(IntMax(x, lo), hi)
}

// FloorInt converts to the grid cell containing x. Unlike int(x) it rounds
// negative values down, so -0.25 lands in cell -1 (search: int-math).
func FloorInt(x float64) int {
	return int(math.Floor(x))
}

// Channel saturates a color component into [0, 255].
func Channel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

package common

import "github.com/jakecoffman/cp"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Advance returns the displacement for velocity v (px/ms) over elapsedMs.
func Advance(v cp.Vector, elapsedMs float64) cp.Vector {
	return v.Mult(elapsedMs)
}

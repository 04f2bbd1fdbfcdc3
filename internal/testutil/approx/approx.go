// Package approx compares floating point results that pass through
// non power-of-two factors and cannot be checked bit for bit.
package approx

import "math"

// RelTol suits float32 arithmetic, which is the default unit representation.
const RelTol = 1e-6

// Equal reports whether a and b agree within rel of the larger magnitude.
func Equal[F ~float32 | ~float64](a, b F, rel float64) bool {
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	diff := math.Abs(x - y)
	scale := math.Max(math.Abs(x), math.Abs(y))
	return diff <= rel*scale
}

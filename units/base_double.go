//go:build double_precision

package units

// Base is the scalar every unit wraps unless its catalog entry selects
// another representation.
type Base = float64

const baseBits = 64

//go:build !double_precision

package units

// Base is the scalar every unit wraps unless its catalog entry selects
// another representation. Build with -tags double_precision for float64.
type Base = float32

const baseBits = 32

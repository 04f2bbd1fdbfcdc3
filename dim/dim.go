package dim

import "golang.org/x/exp/constraints"

// Number is any representation a unit type may wrap.
type Number interface {
	constraints.Integer | constraints.Float
}

// Integer is any integer representation.
type Integer interface {
	constraints.Integer
}

// Float is a floating point representation.
type Float interface {
	constraints.Float
}

// Signed is a signed integer representation.
type Signed interface {
	constraints.Signed
}

// Unsigned is an unsigned integer representation.
type Unsigned interface {
	constraints.Unsigned
}

func Add[U Number](a, b U) U {
	return a + b
}

func Sub[U Number](a, b U) U {
	return a - b
}

// Scale multiplies u by the dimensionless k. It is the scalar-first form of
// the generated Mul method so a variable can lead: dim.Scale(n, units.Minute).
func Scale[U Number, K Number](k K, u U) U {
	return U(k) * u
}

// Div divides u by the dimensionless k.
func Div[U Number, K Number](u U, k K) U {
	return u / U(k)
}

// Ratio divides two values of the same unit. The unit cancels, so the result
// is returned in the bare representation R.
func Ratio[R Number, U Number](a, b U) R {
	return R(a / b)
}

// Quotient divides a dividend unit by a divisor unit into a third unit. The
// division runs on canonical magnitudes; zero divisors follow the
// representation's own rules.
func Quotient[O Number, D Number, V Number](d D, v V) O {
	return O(d) / O(v)
}

// Convert maps a into unit B by the factor k, where a*k is the canonical
// magnitude of the result. The product is taken in float64 and converted
// once, so A and B may use different representations.
func Convert[B Number, A Number, K Number](a A, k K) B {
	return B(float64(a) * float64(k))
}

// Invert undoes Convert with the same factor. An integer A truncates.
func Invert[A Number, B Number, K Number](b B, k K) A {
	return A(float64(b) / float64(k))
}

// ConvertInteger is Convert between two integer units with an integral
// factor. It never leaves integer arithmetic.
func ConvertInteger[B Integer, A Integer](a A, k int64) B {
	return B(a) * B(k)
}

// InvertInteger undoes ConvertInteger, truncating like integer division.
func InvertInteger[A Integer, B Integer](b B, k int64) A {
	return A(b) / A(k)
}

// Less compares canonical magnitudes with the representation's ordering.
func Less[U Number](a, b U) bool {
	return a < b
}

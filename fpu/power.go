package fpu

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Ring is the multiplicative structure Power needs: an identity and an
// associative multiplication. Mul must not modify its operands.
type Ring[T any] interface {
	One() T
	Mul(a, b T) T
}

// DivisionRing extends Ring with a multiplicative inverse, which
// enables negative exponents in Power.
type DivisionRing[T any] interface {
	Ring[T]
	Inv(a T) T
}

// Power raises x to the n-th power by binary exponentiation. No
// operation beyond the ring's own multiplications (and, for n < 0, one
// inversion) is performed, so the result is exact for exact rings:
// arbitrary-precision integers, rationals, exact decimals. n == 0
// yields the ring identity for any x. A negative n requires r to be a
// DivisionRing and computes Inv(Power(x, -n)); over a plain Ring it
// fails with ErrNoInverse. The exponent -2^63 cannot be negated and
// fails.
func Power[T any](r Ring[T], x T, n int64) (T, error) {
	if n < 0 {
		if n == math.MinInt64 {
			var zero T
			return zero, errors.Newf("exponent %d is out of range", n)
		}
		dr, ok := r.(DivisionRing[T])
		if !ok {
			var zero T
			return zero, ErrNoInverse
		}
		y, err := Power(r, x, -n)
		if err != nil {
			var zero T
			return zero, err
		}
		return dr.Inv(y), nil
	}

	// Decompose n into binary digits, least significant first.
	var digits []byte
	for n > 0 {
		digits = append(digits, byte(n&1))
		n >>= 1
	}

	// Fold most significant first: square, then multiply by x on a
	// set digit. n == 0 degenerates to zero iterations and yields the
	// identity (the empty product).
	result := r.One()
	for i := len(digits) - 1; i >= 0; i-- {
		result = r.Mul(result, result)
		if digits[i] == 1 {
			result = r.Mul(result, x)
		}
	}
	return result, nil
}

// Pow raises x to the y-th power. An integral y uses exact binary
// exponentiation over float64 multiplications, so the result carries
// only the rounding of those multiplications; a fractional y delegates
// to the type's generic exponentiation (math.Pow).
func Pow(x, y float64) float64 {
	if math.Trunc(y) != y || math.Abs(y) >= 1<<62 {
		return math.Pow(x, y)
	}
	v, _ := Power[float64](Float64Ring{}, x, int64(y))
	return v
}

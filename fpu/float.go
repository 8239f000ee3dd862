package fpu

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// FloatInfo describes a binary floating-point format: the gaps between
// 1.0 and its nearest representable neighbors above and below, and the
// stored mantissa width.
type FloatInfo struct {
	Epsilon      float64
	EpsilonNeg   float64
	MantissaBits int
}

// Float64Info describes the IEEE 754 binary64 format.
var Float64Info = FloatInfo{
	Epsilon:      0x1p-52,
	EpsilonNeg:   0x1p-53,
	MantissaBits: 52,
}

// IntRepr returns the integer pair (m, e) such that x == m * 2^e
// exactly, with m odd for nonzero x (the pair is fully reduced). The
// input MUST be finite; abs(m) never exceeds 2^53, so float64(m) is
// itself exact.
func IntRepr(x float64) (int64, int) {
	frac, exp := math.Frexp(x)
	// frac is in [0.5, 1): scaling by 2^53 lands in [2^52, 2^53) and
	// is an integer for every finite double.
	m := int64(frac * (1 << 53))
	e := exp - 53
	if m == 0 {
		return 0, 0
	}
	tz := bits.TrailingZeros64(uint64(m))
	return m >> uint(tz), e + tz
}

// Nudge moves x to its adjacent representable value in the requested
// direction; dir must be exactly +1 or -1, anything else fails with
// ErrInvalidDirection. The step is derived from x's binary exponent:
// first EpsilonNeg at x's scale is tried, and where that undershoots
// (at mantissa boundaries, where the gap widens) Epsilon is used
// instead. For zero and all finite normal x the result differs from x;
// deep in the subnormal range the scaled step can underflow.
func Nudge(x float64, dir int) (float64, error) {
	if dir != 1 && dir != -1 {
		return 0, errors.Wrapf(ErrInvalidDirection, "dir=%d", dir)
	}
	_, exp := math.Frexp(x)
	f := float64(dir) * math.Ldexp(1, exp-1)
	y := x + f*Float64Info.EpsilonNeg
	if y != x {
		return y, nil
	}
	return x + f*Float64Info.Epsilon, nil
}

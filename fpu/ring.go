package fpu

import (
	"math/big"

	apd "github.com/cockroachdb/apd/v3"
)

// Float64Ring is the double-precision multiplicative ring.
type Float64Ring struct{}

func (Float64Ring) One() float64 { return 1.0 }

func (Float64Ring) Mul(a, b float64) float64 { return a * b }

func (Float64Ring) Inv(a float64) float64 { return 1.0 / a }

// BigIntRing is the arbitrary-precision integer ring. Integers have no
// multiplicative inverse, so Power rejects negative exponents over it.
type BigIntRing struct{}

func (BigIntRing) One() *big.Int { return big.NewInt(1) }

func (BigIntRing) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

// BigRatRing is the field of arbitrary-precision rationals.
type BigRatRing struct{}

func (BigRatRing) One() *big.Rat { return big.NewRat(1, 1) }

func (BigRatRing) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (BigRatRing) Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) }

// DecimalRing multiplies in a caller-supplied apd context. With a
// context wide enough for the operands the multiplications are exact;
// with a narrow one each step is correctly rounded to the context's
// precision.
type DecimalRing struct {
	Ctx *apd.Context
}

func (r DecimalRing) One() *apd.Decimal { return apd.New(1, 0) }

func (r DecimalRing) Mul(a, b *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	r.Ctx.Mul(d, a, b)
	return d
}

func (r DecimalRing) Inv(a *apd.Decimal) *apd.Decimal {
	d := new(apd.Decimal)
	r.Ctx.Quo(d, apd.New(1, 0), a)
	return d
}

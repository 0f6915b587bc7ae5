// Package weierstrass implements the group of points on a short Weierstrass
// curve y² = x³ + ax + b over a prime field, for arbitrary a.
//
// crypto/elliptic's generic CurveParams arithmetic is only valid for curves
// with a = -3 mod p, which excludes (among others) the example curve of
// GB/T 32918.5. This package fills that gap with straightforward affine
// arithmetic. It is not constant-time and makes no performance claims; use it
// as a group provider for interoperability and testing, not as a replacement
// for an optimized curve implementation.
package weierstrass

import (
	"crypto/elliptic"
	"math/big"
)

// Curve is a short Weierstrass curve with an explicit a coefficient. It
// implements [elliptic.Curve]. The point at infinity is represented as (0, 0),
// matching the crypto/elliptic affine convention.
type Curve struct {
	params *elliptic.CurveParams
	a      *big.Int
}

// New returns a Curve over the given parameters with the given a coefficient.
// The A implied by params (a = -3) is ignored.
func New(params *elliptic.CurveParams, a *big.Int) *Curve {
	return &Curve{params: params, a: new(big.Int).Set(a)}
}

// Params returns the curve's parameters. They carry the field prime, order,
// base point, and bit size; the a coefficient lives on the Curve itself.
func (c *Curve) Params() *elliptic.CurveParams {
	return c.params
}

// A returns the curve's a coefficient.
func (c *Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. The point at
// infinity is not considered to be on the curve.
func (c *Curve) IsOnCurve(x, y *big.Int) bool {
	p := c.params.P
	if x.Sign() < 0 || x.Cmp(p) >= 0 || y.Sign() < 0 || y.Cmp(p) >= 0 {
		return false
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return false
	}

	// y² = x³ + ax + b
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	ax := new(big.Int).Mul(c.a, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.params.B)
	rhs.Mod(rhs, p)

	return lhs.Cmp(rhs) == 0
}

// Add returns the sum of (x1, y1) and (x2, y2).
func (c *Curve) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	if isInfinity(x1, y1) {
		return new(big.Int).Set(x2), new(big.Int).Set(y2)
	}
	if isInfinity(x2, y2) {
		return new(big.Int).Set(x1), new(big.Int).Set(y1)
	}

	p := c.params.P
	if x1.Cmp(x2) == 0 {
		if y1.Cmp(y2) != 0 || y1.Sign() == 0 {
			// (x, y) + (x, -y) = O, and 2*(x, 0) = O.
			return new(big.Int), new(big.Int)
		}
		return c.Double(x1, y1)
	}

	// λ = (y2 - y1) / (x2 - x1)
	num := new(big.Int).Sub(y2, y1)
	num.Mod(num, p)
	den := new(big.Int).Sub(x2, x1)
	den.Mod(den, p)
	den.ModInverse(den, p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, p)

	return c.chord(lambda, x1, y1, x2)
}

// Double returns 2*(x1, y1).
func (c *Curve) Double(x1, y1 *big.Int) (*big.Int, *big.Int) {
	if isInfinity(x1, y1) || y1.Sign() == 0 {
		return new(big.Int), new(big.Int)
	}

	p := c.params.P

	// λ = (3x1² + a) / 2y1
	num := new(big.Int).Mul(x1, x1)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.a)
	num.Mod(num, p)
	den := new(big.Int).Lsh(y1, 1)
	den.Mod(den, p)
	den.ModInverse(den, p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, p)

	return c.chord(lambda, x1, y1, x1)
}

// chord completes the chord-and-tangent rule given the slope λ:
// x3 = λ² - x1 - x2, y3 = λ(x1 - x3) - y1.
func (c *Curve) chord(lambda, x1, y1, x2 *big.Int) (*big.Int, *big.Int) {
	p := c.params.P

	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, x1)
	x3.Sub(x3, x2)
	x3.Mod(x3, p)

	y3 := new(big.Int).Sub(x1, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, y1)
	y3.Mod(y3, p)

	return x3, y3
}

// ScalarMult returns k*(Bx, By) where k is interpreted as a big-endian
// integer.
func (c *Curve) ScalarMult(Bx, By *big.Int, k []byte) (*big.Int, *big.Int) {
	x, y := new(big.Int), new(big.Int)
	for _, b := range k {
		for bit := 7; bit >= 0; bit-- {
			x, y = c.Double(x, y)
			if b>>uint(bit)&1 == 1 {
				x, y = c.Add(x, y, Bx, By)
			}
		}
	}
	return x, y
}

// ScalarBaseMult returns k*G where G is the curve's base point.
func (c *Curve) ScalarBaseMult(k []byte) (*big.Int, *big.Int) {
	return c.ScalarMult(c.params.Gx, c.params.Gy, k)
}

func isInfinity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

var _ elliptic.Curve = (*Curve)(nil)

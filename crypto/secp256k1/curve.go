// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)
//   [SEC2]: Recommended Elliptic Curve Domain Parameters
//     https://www.secg.org/sec2-v2.pdf

import (
	"math/big"
)

// CurveParams houses the constants that define the secp256k1 short
// Weierstrass curve y^2 = x^3 + 7 over GF(P).  A single immutable
// instance is constructed when the package loads and shared by reference
// through Params; nothing mutates it afterwards, so it is safe for
// concurrent use.
type CurveParams struct {
	// P is the prime of the underlying field.
	P *big.Int

	// N is the order of the group generated by G.
	N *big.Int

	// B is the constant term of the curve equation.
	B *big.Int

	// Gx and Gy are the affine coordinates of the generator point.
	Gx *big.Int
	Gy *big.Int

	// HalfN is floor(N/2), the boundary used for low-S signature
	// normalization.
	HalfN *big.Int

	// BitSize is the size of the field in bits and ByteSize the size of
	// serialized coordinates and scalars in bytes.
	BitSize  int
	ByteSize int
}

// hexToBigInt converts the passed hex string into a big integer and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToBigInt(hexStr string) *big.Int {
	val, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("failed to parse big integer from hex: " + hexStr)
	}
	return val
}

// curveParams is the one and only instance of the secp256k1 parameters.
var curveParams = func() *CurveParams {
	c := &CurveParams{
		P: hexToBigInt("fffffffffffffffffffffffffffffffffffffffffffffff" +
			"ffffffffefffffc2f"),
		N: hexToBigInt("fffffffffffffffffffffffffffffffebaaedce6af48a03" +
			"bbfd25e8cd0364141"),
		B:  big.NewInt(7),
		Gx: hexToBigInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d" +
			"959f2815b16f81798"),
		Gy: hexToBigInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a685541" +
			"99c47d08ffb10d4b8"),
		BitSize:  256,
		ByteSize: 32,
	}
	c.HalfN = new(big.Int).Rsh(c.N, 1)
	return c
}()

// Params returns the shared immutable secp256k1 curve parameters.
func Params() *CurveParams {
	return curveParams
}

// Point represents a point on the curve in affine coordinates.  The
// group identity (the point at infinity) is represented by the result of
// Infinity and reported by IsInfinity.  Points are treated as immutable
// by all of the arithmetic in this package.
type Point struct {
	X *big.Int
	Y *big.Int

	infinity bool
}

// NewPoint instantiates a point from affine coordinates.  It performs no
// curve membership check; use IsOnCurve when validating foreign input.
func NewPoint(x, y *big.Int) *Point {
	return &Point{X: x, Y: y}
}

// Infinity returns the group identity.
func Infinity() *Point {
	return &Point{infinity: true}
}

// IsInfinity returns whether or not the point is the group identity.
func (p *Point) IsInfinity() bool {
	return p.infinity
}

// IsEqual returns whether or not the two points represent the same group
// element.
func (p *Point) IsEqual(other *Point) bool {
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Negate returns the additive inverse of the point.
func (p *Point) Negate(c *CurveParams) *Point {
	if p.infinity {
		return Infinity()
	}
	return &Point{X: new(big.Int).Set(p.X), Y: ModSub(c.P, p.Y, c.P)}
}

// IsOnCurve returns whether or not the point satisfies the curve
// equation y^2 = x^3 + 7 (mod P).  The identity is considered on curve.
func (c *CurveParams) IsOnCurve(p *Point) bool {
	if p.infinity {
		return true
	}
	y2 := ModMul(p.Y, p.Y, c.P)
	x3 := ModMul(ModMul(p.X, p.X, c.P), p.X, c.P)
	return y2.Cmp(ModAdd(x3, c.B, c.P)) == 0
}

// G returns the generator point.
func (c *CurveParams) G() *Point {
	return &Point{X: c.Gx, Y: c.Gy}
}

// chord finishes the addition law once the slope of the chord (or
// tangent) through the operands is known:
//
//	x3 = lambda^2 - x1 - x2 (mod P)
//	y3 = lambda*(x1 - x3) - y1 (mod P)
func (c *CurveParams) chord(lambda, x1, y1, x2 *big.Int) *Point {
	x3 := ModSub(ModSub(ModMul(lambda, lambda, c.P), x1, c.P), x2, c.P)
	y3 := ModSub(ModMul(lambda, ModSub(x1, x3, c.P), c.P), y1, c.P)
	return &Point{X: x3, Y: y3}
}

// Add returns the group sum of the two points per the standard affine
// addition law given as algorithm 3.1 in [GECC].  The special cases are
// handled in order of precedence: either operand being the identity,
// mutually inverse operands, and doubling.
func (c *CurveParams) Add(p1, p2 *Point) *Point {
	switch {
	case p1.infinity:
		return p2
	case p2.infinity:
		return p1
	}

	if p1.X.Cmp(p2.X) == 0 {
		// Same x with different y means p2 = -p1.
		if p1.Y.Cmp(p2.Y) != 0 {
			return Infinity()
		}
		return c.Double(p1)
	}

	// lambda = (y2 - y1) / (x2 - x1) (mod P)
	num := ModSub(p2.Y, p1.Y, c.P)
	den := ModSub(p2.X, p1.X, c.P)
	lambda := ModMul(num, ModInverse(den, c.P), c.P)
	return c.chord(lambda, p1.X, p1.Y, p2.X)
}

// Double returns 2*p using the tangent formula
// lambda = 3*x^2 / (2*y) (mod P).
func (c *CurveParams) Double(p *Point) *Point {
	if p.infinity {
		return Infinity()
	}
	// A point with y = 0 would be its own inverse.  No such point exists
	// on secp256k1, but the case costs nothing to handle.
	if p.Y.Sign() == 0 {
		return Infinity()
	}

	num := ModMul(bigThree, ModMul(p.X, p.X, c.P), c.P)
	den := ModMul(bigTwo, p.Y, c.P)
	lambda := ModMul(num, ModInverse(den, c.P), c.P)
	return c.chord(lambda, p.X, p.Y, p.X)
}

// ScalarMult returns k*p computed with a double-and-add ladder over the
// bits of k from least significant to most significant, accumulating
// into a result initialized to the identity.
//
// The ladder is NOT constant time and its timing depends on the bits of
// k.  See the package documentation for the implications.
func (c *CurveParams) ScalarMult(k *big.Int, p *Point) *Point {
	result := Infinity()
	addend := p
	for i, bits := 0, k.BitLen(); i < bits; i++ {
		if k.Bit(i) == 1 {
			result = c.Add(result, addend)
		}
		addend = c.Double(addend)
	}
	return result
}

// ScalarBaseMult returns k*G for the curve generator G.
func (c *CurveParams) ScalarBaseMult(k *big.Int) *Point {
	return c.ScalarMult(k, c.G())
}

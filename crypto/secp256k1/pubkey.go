// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"
)

// These constants define the lengths and format identifiers of
// serialized public keys.
const (
	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65

	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
	pubkeyUncompressed   byte = 0x04
)

// PublicKey provides facilities for working with secp256k1 public keys,
// including serializing them in the compressed and uncompressed SEC
// (Standards for Efficient Cryptography) formats.
type PublicKey struct {
	x *big.Int
	y *big.Int
}

// NewPublicKey instantiates a new public key with the given X,Y
// coordinates.
func NewPublicKey(x, y *big.Int) *PublicKey {
	return &PublicKey{x: x, y: y}
}

// X returns the x coordinate of the public key.
func (p *PublicKey) X() *big.Int {
	return p.x
}

// Y returns the y coordinate of the public key.
func (p *PublicKey) Y() *big.Int {
	return p.y
}

// Point returns the public key as a curve point.
func (p *PublicKey) Point() *Point {
	return NewPoint(p.x, p.y)
}

// IsEqual compares this public key instance to the one passed, returning
// true if both public keys are equivalent.
func (p *PublicKey) IsEqual(other *PublicKey) bool {
	return p.x.Cmp(other.x) == 0 && p.y.Cmp(other.y) == 0
}

func isOdd(a *big.Int) bool {
	return a.Bit(0) == 1
}

// SerializeCompressed serializes a public key in the 33-byte compressed
// format.
func (p *PublicKey) SerializeCompressed() []byte {
	b := make([]byte, PubKeyBytesLenCompressed)
	b[0] = pubkeyCompressedEven
	if isOdd(p.y) {
		b[0] = pubkeyCompressedOdd
	}
	p.x.FillBytes(b[1:])
	return b
}

// SerializeUncompressed serializes a public key in the 65-byte
// uncompressed format.
func (p *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, PubKeyBytesLenUncompressed)
	b[0] = pubkeyUncompressed
	p.x.FillBytes(b[1:33])
	p.y.FillBytes(b[33:])
	return b
}

// decompressY solves the curve equation for y given x and the desired
// oddness of the result.  Since P = 3 (mod 4), the square root of a
// quadratic residue a is a^((P+1)/4) (mod P).
func decompressY(x *big.Int, odd bool) (*big.Int, error) {
	c := curveParams
	// y^2 = x^3 + 7 (mod P)
	x3 := ModMul(ModMul(x, x, c.P), x, c.P)
	y2 := ModAdd(x3, c.B, c.P)
	exp := new(big.Int).Add(c.P, bigOne)
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(y2, exp, c.P)

	// Reject x coordinates that are not on the curve, in which case the
	// candidate root does not square back to y^2.
	if ModMul(y, y, c.P).Cmp(y2) != 0 {
		str := fmt.Sprintf("invalid public key: x coordinate %x is not on "+
			"the secp256k1 curve", x)
		return nil, makeError(ErrPubKeyNotOnCurve, str)
	}
	if isOdd(y) != odd {
		y = ModSub(c.P, y, c.P)
	}
	return y, nil
}

// ParsePubKey parses a public key for the secp256k1 curve from bytes in
// either the compressed or uncompressed SEC format, verifying that the
// resulting point is actually on the curve.
func ParsePubKey(serialized []byte) (*PublicKey, error) {
	switch len(serialized) {
	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != pubkeyCompressedEven && format != pubkeyCompressedOdd {
			str := fmt.Sprintf("invalid public key: unsupported format %#02x",
				format)
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x := new(big.Int).SetBytes(serialized[1:])
		if x.Cmp(curveParams.P) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		y, err := decompressY(x, format == pubkeyCompressedOdd)
		if err != nil {
			return nil, err
		}
		return NewPublicKey(x, y), nil

	case PubKeyBytesLenUncompressed:
		if serialized[0] != pubkeyUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format %#02x",
				serialized[0])
			return nil, makeError(ErrPubKeyInvalidFormat, str)
		}
		x := new(big.Int).SetBytes(serialized[1:33])
		y := new(big.Int).SetBytes(serialized[33:])
		if x.Cmp(curveParams.P) >= 0 {
			str := "invalid public key: x >= field prime"
			return nil, makeError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(curveParams.P) >= 0 {
			str := "invalid public key: y >= field prime"
			return nil, makeError(ErrPubKeyYTooBig, str)
		}
		if !curveParams.IsOnCurve(NewPoint(x, y)) {
			str := fmt.Sprintf("invalid public key: [%x,%x] is not on the "+
				"secp256k1 curve", x, y)
			return nil, makeError(ErrPubKeyNotOnCurve, str)
		}
		return NewPublicKey(x, y), nil

	default:
		str := fmt.Sprintf("invalid public key length %d", len(serialized))
		return nil, makeError(ErrPubKeyBadLen, str)
	}
}

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// Mod returns a mod m normalized into the range [0, m).  Unlike a
// truncating remainder, the result is never negative, even when a is.
// The modulus m must be positive.
func Mod(a, m *big.Int) *big.Int {
	return new(big.Int).Mod(a, m)
}

// ModAdd returns (a + b) mod m normalized into [0, m).
func ModAdd(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Add(a, b), m)
}

// ModSub returns (a - b) mod m normalized into [0, m).
func ModSub(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(a, b), m)
}

// ModMul returns (a * b) mod m normalized into [0, m).
func ModMul(a, b, m *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(a, b), m)
}

// ModInverse returns the unique x in [0, m) such that a*x = 1 (mod m)
// using the extended Euclidean algorithm.  It returns nil when no such
// inverse exists, which can only happen when gcd(a, m) != 1.  Callers in
// this module only ever invoke it with a prime modulus and a value that
// is nonzero after reduction, so a nil result indicates a caller bug.
func ModInverse(a, m *big.Int) *big.Int {
	// Maintain the invariants t0*a = r0 (mod m) and t1*a = r1 (mod m)
	// while running the Euclidean reduction on (r0, r1).
	r0 := new(big.Int).Set(m)
	r1 := Mod(a, m)
	t0 := new(big.Int)
	t1 := big.NewInt(1)
	q := new(big.Int)
	tmp := new(big.Int)
	for r1.Sign() != 0 {
		q.Div(r0, r1)

		tmp.Mul(q, r1)
		r0.Sub(r0, tmp)
		r0, r1 = r1, r0

		tmp.Mul(q, t1)
		t0.Sub(t0, tmp)
		t0, t1 = t1, t0
	}
	if r0.Cmp(bigOne) != 0 {
		return nil
	}
	return Mod(t0, m)
}

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [GECC]: Guide to Elliptic Curve Cryptography (Hankerson, Menezes, Vanstone)

import (
	"fmt"
	"math/big"

	"github.com/infnet/infwallet/crypto/secp256k1"
)

// SignatureSize is the size of the fixed R || S serialization produced
// by Serialize, with each component encoded as a 32-byte big-endian
// value.
const SignatureSize = 64

// maxNonceAttempts bounds the signing retry loop.  A candidate nonce is
// only rejected when it produces R = 0 or S = 0, each of which occurs
// with probability around 2^-256, so the cap exists for auditability and
// is unreachable in practice.
const maxNonceAttempts = 32

// Signature is a type representing an ECDSA signature.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature instantiates a new signature given some r and s values.
func NewSignature(r, s *big.Int) *Signature {
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}
}

// R returns the r value of the signature.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns the s value of the signature.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsEqual compares this signature instance to the one passed, returning
// true if both signatures are equivalent.  A signature is equivalent to
// another if they both have the same scalar value for R and S.
func (sig *Signature) IsEqual(otherSig *Signature) bool {
	return sig.r.Cmp(otherSig.r) == 0 && sig.s.Cmp(otherSig.s) == 0
}

// Serialize returns the signature in the fixed 64-byte R || S format
// with both components encoded as 32-byte big-endian values.
func (sig *Signature) Serialize() []byte {
	b := make([]byte, SignatureSize)
	sig.r.FillBytes(b[:32])
	sig.s.FillBytes(b[32:])
	return b
}

// ParseSignature parses a signature from the fixed 64-byte R || S
// serialization, enforcing that both components are in [1, N-1].
func ParseSignature(serialized []byte) (*Signature, error) {
	if len(serialized) != SignatureSize {
		str := fmt.Sprintf("malformed signature: invalid length %d "+
			"(expected %d)", len(serialized), SignatureSize)
		return nil, signatureError(ErrSigInvalidLen, str)
	}
	curve := secp256k1.Params()
	r := new(big.Int).SetBytes(serialized[:32])
	s := new(big.Int).SetBytes(serialized[32:])
	switch {
	case r.Sign() == 0:
		return nil, signatureError(ErrSigRIsZero, "signature R is zero")
	case r.Cmp(curve.N) >= 0:
		return nil, signatureError(ErrSigRTooBig, "signature R >= group order")
	case s.Sign() == 0:
		return nil, signatureError(ErrSigSIsZero, "signature S is zero")
	case s.Cmp(curve.N) >= 0:
		return nil, signatureError(ErrSigSTooBig, "signature S >= group order")
	}
	return &Signature{r: r, s: s}, nil
}

// hashToInt converts a hash value to an integer by interpreting its
// leftmost 256 bits as a big-endian value, mirroring the bits2int
// treatment used during nonce generation.
func hashToInt(hash []byte) *big.Int {
	return bits2int(hash, secp256k1.Params().N.BitLen())
}

// Sign generates a deterministic ECDSA signature over the secp256k1
// curve for the provided message digest (which should be the SHA-256
// hash of a larger signing input) using the given private key.
//
// The algorithm for producing an ECDSA signature is given as algorithm
// 4.29 in [GECC], modified for deterministic nonces per RFC 6979 and
// canonicalized to the low-S form:
//
//  1. Derive nonce k in [1, N-1] via RFC 6979 from (key, digest)
//  2. Compute R = k*G and r = R.x mod N; restart with the RFC 6979
//     continuation when r = 0
//  3. Compute s = k^-1(e + r*d) mod N where e is the digest interpreted
//     as an integer; restart when s = 0
//  4. Replace s with N - s when s > N/2 since both are valid modulo the
//     order and forcing the smaller one removes signature malleability
//
// The same key and digest always produce the same signature, and the
// result agrees with any other RFC 6979 conforming implementation.
func Sign(priv *secp256k1.PrivateKey, hash []byte) (*Signature, error) {
	curve := secp256k1.Params()
	privBytes := priv.Serialize()
	defer zeroBytes(privBytes)

	e := hashToInt(hash)
	for iteration := uint32(0); iteration < maxNonceAttempts; iteration++ {
		// Step 1.
		k := NonceRFC6979(privBytes, hash, iteration)

		// Step 2.
		//
		// r = (k*G).x mod N
		kG := curve.ScalarBaseMult(k)
		r := secp256k1.Mod(kG.X, curve.N)
		if r.Sign() == 0 {
			continue
		}

		// Step 3.
		//
		// s = k^-1(e + r*d) mod N
		kInv := secp256k1.ModInverse(k, curve.N)
		s := secp256k1.ModMul(kInv,
			secp256k1.ModAdd(e, secp256k1.ModMul(r, priv.D, curve.N), curve.N),
			curve.N)
		if s.Sign() == 0 {
			continue
		}

		// Step 4.
		if s.Cmp(curve.HalfN) > 0 {
			s.Sub(curve.N, s)
		}
		return &Signature{r: r, s: s}, nil
	}

	str := fmt.Sprintf("no valid nonce after %d attempts", maxNonceAttempts)
	return nil, signatureError(ErrNonceExhausted, str)
}

// Verify returns whether or not the signature is valid for the provided
// message digest and secp256k1 public key, per algorithm 4.30 in [GECC].
func (sig *Signature) Verify(hash []byte, pubKey *secp256k1.PublicKey) bool {
	curve := secp256k1.Params()

	// Fail when R or S is not in [1, N-1].
	if sig.r.Sign() <= 0 || sig.r.Cmp(curve.N) >= 0 {
		return false
	}
	if sig.s.Sign() <= 0 || sig.s.Cmp(curve.N) >= 0 {
		return false
	}

	// w = S^-1 mod N, u1 = e*w mod N, u2 = R*w mod N
	e := hashToInt(hash)
	w := secp256k1.ModInverse(sig.s, curve.N)
	u1 := secp256k1.ModMul(e, w, curve.N)
	u2 := secp256k1.ModMul(sig.r, w, curve.N)

	// X = u1*G + u2*Q; fail when X is the point at infinity.
	X := curve.Add(curve.ScalarBaseMult(u1), curve.ScalarMult(u2, pubKey.Point()))
	if X.IsInfinity() {
		return false
	}

	// Verified when X.x mod N == R.
	return secp256k1.Mod(X.X, curve.N).Cmp(sig.r) == 0
}

// zeroBytes overwrites the passed slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0x00
	}
}

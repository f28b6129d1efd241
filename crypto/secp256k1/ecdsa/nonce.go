// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

// References:
//   [RFC6979]: Deterministic Usage of the Digital Signature Algorithm
//     (DSA) and Elliptic Curve Digital Signature Algorithm (ECDSA)
//     https://tools.ietf.org/html/rfc6979

import (
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/infnet/infwallet/crypto/secp256k1"
)

var (
	// singleZero and singleOne are the domain-separation bytes mixed into
	// the HMAC inputs during nonce generation.  They are provided here to
	// avoid the need to create them multiple times.
	singleZero = []byte{0x00}
	singleOne  = []byte{0x01}
)

// bits2int converts the leftmost qlen bits of the passed byte sequence
// into an integer per [RFC6979] section 2.3.2.  When the sequence holds
// more than qlen bits, the excess rightmost bits are discarded with a
// right shift.
func bits2int(b []byte, qlen int) *big.Int {
	v := new(big.Int).SetBytes(b)
	if blen := len(b) * 8; blen > qlen {
		v.Rsh(v, uint(blen-qlen))
	}
	return v
}

// int2octets converts an integer into the big-endian sequence of
// ceil(qlen/8) bytes per [RFC6979] section 2.3.3.  The value must be
// less than 2^qlen.
func int2octets(v *big.Int, qlen int) []byte {
	out := make([]byte, (qlen+7)/8)
	v.FillBytes(out)
	return out
}

// bits2octets converts a hash value into the encoding of its integer
// value reduced modulo the group order q, per [RFC6979] section 2.3.4.
// A single conditional subtraction suffices because bits2int yields a
// value less than 2^qlen < 2q.
func bits2octets(b []byte, q *big.Int, qlen int) []byte {
	z1 := bits2int(b, qlen)
	z2 := new(big.Int).Sub(z1, q)
	if z2.Sign() < 0 {
		z2 = z1
	}
	return int2octets(z2, qlen)
}

// hmacSHA256 returns HMAC-SHA256(key, chunks...).
func hmacSHA256(key []byte, chunks ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)
	for _, chunk := range chunks {
		mac.Write(chunk)
	}
	return mac.Sum(nil)
}

// NonceRFC6979 deterministically derives an ECDSA nonce in [1, N-1] from
// the serialized private key and message hash per [RFC6979] section 3.2,
// specialized to HMAC-SHA256 over the secp256k1 group order.
//
// The extraIterations parameter provides a method to produce a stream of
// deterministic nonces in the extremely unlikely event the original
// nonce results in an invalid signature (R = 0 or S = 0): each extra
// iteration runs the standard continuation step (K = HMAC_K(V || 0x00),
// V = HMAC_K(V)) one more time before accepting a candidate, exactly as
// the RFC prescribes for out-of-range candidates.  Signing code should
// start with 0 and increment it as needed.
func NonceRFC6979(privKey []byte, hash []byte, extraIterations uint32) *big.Int {
	q := secp256k1.Params().N
	qlen := q.BitLen()

	bx := int2octets(new(big.Int).SetBytes(privKey), qlen)
	bh := bits2octets(hash, q, qlen)

	// Step B.
	//
	// V = 0x01 0x01 0x01 ... 0x01 such that the length of V, in bits, is
	// equal to 8*ceil(hashLen/8).
	v := make([]byte, sha256.Size)
	for i := range v {
		v[i] = 0x01
	}

	// Step C.
	//
	// K = 0x00 0x00 0x00 ... 0x00 of the same length.
	k := make([]byte, sha256.Size)

	// Step D.
	//
	// K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleZero, bx, bh)

	// Step E.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step F.
	//
	// K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1))
	k = hmacSHA256(k, v, singleOne, bx, bh)

	// Step G.
	//
	// V = HMAC_K(V)
	v = hmacSHA256(k, v)

	// Step H.
	//
	// Repeat until the value is nonzero and less than the group order.
	var generated uint32
	for {
		// Step H1 and H2.
		//
		// Set T to the empty sequence, then append V = HMAC_K(V) until T
		// holds at least qlen bits.
		var t []byte
		for len(t)*8 < qlen {
			v = hmacSHA256(k, v)
			t = append(t, v...)
		}

		// Step H3.
		//
		// Accept secret = bits2int(T) when it is within [1, q-1],
		// otherwise run the continuation step and retry.  Requests for
		// extra iterations reject otherwise-valid candidates the same
		// way so the resulting stream stays on the RFC's update path.
		secret := bits2int(t, qlen)
		if secret.Sign() > 0 && secret.Cmp(q) < 0 {
			generated++
			if generated > extraIterations {
				return secret
			}
		}

		// K = HMAC_K(V || 0x00)
		k = hmacSHA256(k, v, singleZero)

		// V = HMAC_K(V)
		v = hmacSHA256(k, v)
	}
}

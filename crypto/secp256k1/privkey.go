// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/crypto/rand"
)

// PrivKeyBytesLen defines the length in bytes of a serialized private key.
const PrivKeyBytesLen = 32

// PrivateKey provides facilities for working with secp256k1 private keys
// within this module, such as serializing them and computing the
// associated public key.  Instances are expected to live only for the
// duration of a signing operation; call Zero when done.
type PrivateKey struct {
	D *big.Int
}

// PrivKeyFromBytes returns a private key built from the passed serialized
// scalar.  The serialization MUST be exactly 32 big-endian bytes and
// represent a scalar in [1, N-1]; shorter or longer input is rejected
// rather than padded or truncated.
func PrivKeyFromBytes(pk []byte) (*PrivateKey, error) {
	if len(pk) != PrivKeyBytesLen {
		str := fmt.Sprintf("invalid private key length: %d (expected %d)",
			len(pk), PrivKeyBytesLen)
		return nil, makeError(ErrPrivKeyBadLen, str)
	}
	d := new(big.Int).SetBytes(pk)
	if d.Sign() == 0 || d.Cmp(curveParams.N) >= 0 {
		str := "private key scalar is not in the range [1, N-1]"
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	return &PrivateKey{D: d}, nil
}

// NewPrivateKey instantiates a new private key from a scalar encoded as
// a big integer.  The scalar must be in [1, N-1].
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	if d.Sign() == 0 || d.Cmp(curveParams.N) >= 0 {
		str := "private key scalar is not in the range [1, N-1]"
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	return &PrivateKey{D: new(big.Int).Set(d)}, nil
}

// GeneratePrivateKey returns a private key that is suitable for use with
// secp256k1 by rejection sampling uniformly random 256-bit scalars.
func GeneratePrivateKey() (*PrivateKey, error) {
	var buf [PrivKeyBytesLen]byte
	for {
		rand.Read(buf[:])
		d := new(big.Int).SetBytes(buf[:])
		if d.Sign() == 0 || d.Cmp(curveParams.N) >= 0 {
			continue
		}
		zeroBytes(buf[:])
		return &PrivateKey{D: d}, nil
	}
}

// PubKey computes and returns the public key corresponding to this
// private key.
func (p *PrivateKey) PubKey() *PublicKey {
	pt := curveParams.ScalarBaseMult(p.D)
	return NewPublicKey(pt.X, pt.Y)
}

// Serialize returns the private key as a big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (p *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	p.D.FillBytes(b)
	return b
}

// Zero clears the private scalar so the backing words no longer hold key
// material.  The key must not be used afterwards.
func (p *PrivateKey) Zero() {
	p.D.SetInt64(0)
}

// zeroBytes overwrites the passed slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0x00
	}
}

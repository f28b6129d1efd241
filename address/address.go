// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address implements bech32 account address encoding and
// decoding for the infnet chain.
//
// An account address commits to a public key via the standard
// RIPEMD160(SHA256(compressed pubkey)) hash, wrapped in a checksummed
// bech32 string whose human-readable prefix identifies the network.
package address

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/bech32"
	"github.com/decred/dcrd/crypto/ripemd160"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
)

// Hash160Size is the size of the pubkey hash an account address commits
// to.
const Hash160Size = ripemd160.Size

// Hash160 returns RIPEMD160(SHA256(b)), the pubkey hash committed to by
// account addresses.
func Hash160(b []byte) []byte {
	sum := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// FromPubKey returns the bech32 account address of the passed public key
// on the given network.
func FromPubKey(pub *secp256k1.PublicKey, params *chaincfg.Params) (string, error) {
	return FromHash160(Hash160(pub.SerializeCompressed()), params)
}

// FromHash160 returns the bech32 account address committing to the
// passed 20-byte pubkey hash on the given network.
func FromHash160(hash160 []byte, params *chaincfg.Params) (string, error) {
	if len(hash160) != Hash160Size {
		return "", fmt.Errorf("invalid pubkey hash length %d (expected %d)",
			len(hash160), Hash160Size)
	}
	converted, err := bech32.ConvertBits(hash160, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(params.Bech32HRPAccount, converted)
}

// Decode decodes a bech32 account address into its human-readable prefix
// and the 20-byte pubkey hash it commits to.
func Decode(addr string) (string, []byte, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", nil, err
	}
	hash160, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	if len(hash160) != Hash160Size {
		return "", nil, fmt.Errorf("invalid address payload length %d "+
			"(expected %d)", len(hash160), Hash160Size)
	}
	return hrp, hash160, nil
}

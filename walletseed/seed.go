// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletseed provides wallet seed generation and mnemonic
// handling.
package walletseed

import (
	"crypto/sha512"
	"strings"

	"github.com/decred/dcrd/crypto/rand"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/infnet/infwallet/hdkeychain"
)

// GenerateRandomSeed returns a new seed created from a
// cryptographically-secure random source.  If the seed size is
// unacceptable (hdkeychain.MinSeedBytes > size >
// hdkeychain.MaxSeedBytes), hdkeychain.ErrInvalidSeedLen is returned.
func GenerateRandomSeed(size uint) ([]byte, error) {
	if size < hdkeychain.MinSeedBytes || size > hdkeychain.MaxSeedBytes {
		return nil, hdkeychain.ErrInvalidSeedLen
	}
	seed := make([]byte, size)
	rand.Read(seed)
	return seed, nil
}

// mnemonicIterations is the PBKDF2 iteration count used when stretching
// a mnemonic into a binary seed.
const mnemonicIterations = 2048

// SeedFromMnemonic stretches a mnemonic sentence and optional
// passphrase into a 64-byte binary seed suitable for master key
// derivation.  The mnemonic and passphrase are NFKD normalized and the
// seed is PBKDF2-HMAC-SHA512(mnemonic, "mnemonic"+passphrase, 2048).
//
// Whether the mnemonic sentence itself carries a valid wordlist
// checksum is not checked here.  Any sentence produces a seed, and
// different sentences produce unrelated seeds.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	password := norm.NFKD.String(strings.TrimSpace(mnemonic))
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), mnemonicIterations,
		sha512.Size, sha512.New)
}

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkeychain provides an API for infnet hierarchical
// deterministic extended keys.
package hdkeychain

// References:
//   [BIP32]: BIP0032 - Hierarchical Deterministic Wallets
//   https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	"github.com/decred/base58"
	"github.com/decred/dcrd/crypto/rand"

	"github.com/infnet/infwallet/address"
	"github.com/infnet/infwallet/crypto/secp256k1"
)

const (
	// RecommendedSeedLen is the recommended length in bytes for a seed to
	// a master node.
	RecommendedSeedLen = 32 // 256 bits

	// HardenedKeyStart is the index at which a hardened key starts.  Each
	// extended key has 2^31 normal child keys and 2^31 hardened child
	// keys, so the hardened key n is at index 2^31 + n.
	HardenedKeyStart = 0x80000000 // 2^31

	// MinSeedBytes is the minimum number of bytes allowed for a seed to a
	// master node.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed to a
	// master node.
	MaxSeedBytes = 64 // 512 bits

	// maxUint8 is the maximum positive integer which can be serialized in
	// a uint8.
	maxUint8 = 1<<8 - 1

	// serializedKeyLen is the length of a serialized extended key before
	// the checksum: 4 bytes version, 1 byte depth, 4 bytes fingerprint,
	// 4 bytes child number, 32 bytes chain code, and 33 bytes of key
	// data.
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33
)

var (
	// ErrDeriveHardFromPublic describes an error in which the caller
	// attempted to derive a hardened extended key from a public key.
	ErrDeriveHardFromPublic = errors.New("cannot derive a hardened key " +
		"from a public key")

	// ErrDeriveBeyondMaxDepth describes an error in which the caller
	// has attempted to derive more than 255 keys from a root key.
	ErrDeriveBeyondMaxDepth = errors.New("cannot derive a key with more " +
		"than 255 indices in its path")

	// ErrNotPrivExtKey describes an error in which the caller attempted
	// to extract a private key from a public extended key.
	ErrNotPrivExtKey = errors.New("unable to create private keys from a " +
		"public extended key")

	// ErrInvalidChild describes an error in which the child at a specific
	// index is invalid due to the derived key falling outside of the
	// valid range for secp256k1 private keys.  This error indicates the
	// caller should simply ignore the invalid child extended key at this
	// index and increment to the next index.
	ErrInvalidChild = errors.New("the extended key at this index is invalid")

	// ErrUnusableSeed describes an error in which the provided seed is
	// not usable due to the derived key falling outside of the valid
	// range for secp256k1 private keys.  This error indicates the caller
	// must choose another seed.
	ErrUnusableSeed = errors.New("unusable seed")

	// ErrInvalidSeedLen describes an error in which the provided seed or
	// seed length is not in the allowed range.
	ErrInvalidSeedLen = errors.New("seed length must be between 128 and " +
		"512 bits")

	// ErrBadChecksum describes an error in which the checksum encoded
	// with a serialized extended key was not valid.
	ErrBadChecksum = errors.New("bad extended key checksum")

	// ErrInvalidKeyLen describes an error in which the serialized key
	// length is not the expected length.
	ErrInvalidKeyLen = errors.New("the provided serialized extended key " +
		"length is invalid")
)

// masterKey is the master key used along with a random seed used to
// generate the master node in the hierarchical tree per [BIP32].
var masterKey = []byte("Bitcoin seed")

// NetworkParams defines an interface that is used throughout the package
// to access the hierarchical deterministic extended key version bytes
// for the network the key is associated with.
type NetworkParams interface {
	// HDPrivKeyVersion returns the extended private key version bytes.
	HDPrivKeyVersion() [4]byte

	// HDPubKeyVersion returns the extended public key version bytes.
	HDPubKeyVersion() [4]byte
}

// ExtendedKey houses all the information needed to support a
// hierarchical deterministic extended key.  See the package overview
// documentation for more details on how to use extended keys.
type ExtendedKey struct {
	privVer   [4]byte // Network version bytes for extended priv keys
	pubVer    [4]byte // Network version bytes for extended pub keys
	key       []byte  // This will be the pubkey for extended pub keys
	pubKey    []byte  // This will only be set for extended priv keys
	chainCode []byte
	parentFP  []byte
	childNum  uint32
	depth     uint8
	isPrivate bool
}

// newExtendedKey returns a new instance of an extended key with the
// given fields.  No error checking is performed here as it's only
// intended to be a convenience method used to create a populated struct.
func newExtendedKey(privVer, pubVer [4]byte, key, chainCode, parentFP []byte,
	depth uint8, childNum uint32, isPrivate bool) *ExtendedKey {

	return &ExtendedKey{
		privVer:   privVer,
		pubVer:    pubVer,
		key:       key,
		chainCode: chainCode,
		parentFP:  parentFP,
		childNum:  childNum,
		depth:     depth,
		isPrivate: isPrivate,
	}
}

// pubKeyBytes returns bytes for the serialized compressed public key
// associated with this extended key in an efficient manner including
// memoization as necessary.
//
// When the extended key is already a public key, the key is simply
// returned as is since it's already in the correct form.  However, when
// the extended key is a private key, the public key will be calculated
// and memoized so future accesses can simply return the cached result.
func (k *ExtendedKey) pubKeyBytes() []byte {
	// Just return the key if it's already an extended public key.
	if !k.isPrivate {
		return k.key
	}

	// This is a private extended key, so calculate and memoize the public
	// key if needed.
	if len(k.pubKey) == 0 {
		d := new(big.Int).SetBytes(k.key)
		pt := secp256k1.Params().ScalarBaseMult(d)
		k.pubKey = secp256k1.NewPublicKey(pt.X, pt.Y).SerializeCompressed()
	}

	return k.pubKey
}

// IsPrivate returns whether or not the extended key is a private
// extended key.
//
// A private extended key can be used to derive both hardened and
// non-hardened child private and public extended keys.  A public
// extended key can only be used to derive non-hardened child public
// extended keys.
func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

// ParentFingerprint returns a fingerprint of the parent extended key
// from which this one was derived.
func (k *ExtendedKey) ParentFingerprint() uint32 {
	return binary.BigEndian.Uint32(k.parentFP)
}

// Child returns a derived child extended key at the given index.  When
// this extended key is a private extended key (as determined by the
// IsPrivate function), a private extended key will be derived.
// Otherwise, the derived extended key will also be a public extended
// key.
//
// When the index is greater than or equal to the HardenedKeyStart
// constant, the derived extended key will be a hardened extended key.
// It is only possible to derive a hardened extended key from a private
// extended key.  Consequently, this function will return
// ErrDeriveHardFromPublic if a hardened child extended key is requested
// from a public extended key.
//
// A hardened extended key will not work with future versions of the
// master private key, while a non-hardened extended key will.
//
// There is an extremely small chance (< 1 in 2^127) the specific child
// index does not derive to a usable child.  The ErrInvalidChild error
// will be returned if this should occur, and the caller is expected to
// ignore the invalid child and simply increment to the next index.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	// Prevent derivation of children beyond the max allowed depth.
	if k.depth == maxUint8 {
		return nil, ErrDeriveBeyondMaxDepth
	}

	// There are four scenarios that could happen here:
	// 1) Private extended key -> Hardened child private extended key
	// 2) Private extended key -> Non-hardened child private extended key
	// 3) Public extended key -> Non-hardened child public extended key
	// 4) Public extended key -> Hardened child public extended key
	//    (INVALID!)

	// Case #4 is invalid, so error out early.
	// A hardened child extended key may not be created from a public
	// extended key.
	isChildHardened := i >= HardenedKeyStart
	if !k.isPrivate && isChildHardened {
		return nil, ErrDeriveHardFromPublic
	}

	// The data used to derive the child key depends on whether or not the
	// child is hardened per [BIP32].
	//
	// For hardened children:
	//   0x00 || ser256(parentKey) || ser32(i)
	//
	// For normal children:
	//   serP(parentPubKey) || ser32(i)
	keyLen := 33
	data := make([]byte, keyLen+4)
	if isChildHardened {
		copy(data[1:], k.key)
	} else {
		copy(data, k.pubKeyBytes())
	}
	binary.BigEndian.PutUint32(data[keyLen:], i)

	// Take the HMAC-SHA512 of the current key's chain code and the
	// derivation data:
	//   I = HMAC-SHA512(Key = chainCode, Data = data)
	hmac512 := hmac.New(sha512.New, k.chainCode)
	hmac512.Write(data)
	ilr := hmac512.Sum(nil)

	// Split "I" into two 32-byte sequences il and ir where:
	//   il = intermediate key used to derive the child
	//   ir = child chain code
	il := ilr[:len(ilr)/2]
	childChainCode := ilr[len(ilr)/2:]

	// Both derived public or private keys rely on treating the left
	// 32-byte sequence calculated above (il) as a 256-bit integer that
	// must be within the valid range for a secp256k1 private key.  There
	// is an extremely small chance (< 1 in 2^127) this condition will not
	// hold, and in that case, a child extended key can't be created for
	// this index and the caller should simply increment to the next
	// index.
	curve := secp256k1.Params()
	ilNum := new(big.Int).SetBytes(il)
	if ilNum.Cmp(curve.N) >= 0 || ilNum.Sign() == 0 {
		return nil, ErrInvalidChild
	}

	// The algorithm used to derive the child key depends on whether or
	// not a private or public child is being derived.
	//
	// For private children:
	//   childKey = parse256(il) + parentKey
	//
	// For public children:
	//   childKey = serP(point(parse256(il)) + parentKey)
	var isPrivate bool
	var childKey []byte
	if k.isPrivate {
		// Add the parent private key to the intermediate private key to
		// derive the final child key.
		keyNum := new(big.Int).SetBytes(k.key)
		childNum := secp256k1.ModAdd(ilNum, keyNum, curve.N)
		if childNum.Sign() == 0 {
			return nil, ErrInvalidChild
		}
		childKey = make([]byte, 32)
		childNum.FillBytes(childKey)
		isPrivate = true
	} else {
		// Calculate the corresponding intermediate public key for the
		// intermediate private key and add it to the parent public key to
		// derive the final child key.
		pub, err := secp256k1.ParsePubKey(k.key)
		if err != nil {
			return nil, err
		}
		childPt := curve.Add(curve.ScalarBaseMult(ilNum), pub.Point())
		if childPt.IsInfinity() {
			return nil, ErrInvalidChild
		}
		childKey = secp256k1.NewPublicKey(childPt.X, childPt.Y).
			SerializeCompressed()
	}

	// The fingerprint of the parent for the derived child is the first 4
	// bytes of the RIPEMD160(SHA256(parentPubKey)).
	parentFP := address.Hash160(k.pubKeyBytes())[:4]
	return newExtendedKey(k.privVer, k.pubVer, childKey, childChainCode,
		parentFP, k.depth+1, i, isPrivate), nil
}

// Derive is a convenience function that derives the extended key at the
// given path below this key, applying Child for each index in order.
func (k *ExtendedKey) Derive(path ...uint32) (*ExtendedKey, error) {
	key := k
	for _, i := range path {
		var err error
		key, err = key.Child(i)
		if err != nil {
			return nil, err
		}
	}
	return key, nil
}

// Neuter returns a new extended public key from this extended private
// key.  The same extended key will be returned unaltered when it is
// already an extended public key.
//
// As the name implies, an extended public key does not have access to
// the private key, so it is not capable of signing transactions or
// deriving child extended private keys.  However, it is capable of
// deriving further child extended public keys.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	// Already an extended public key.
	if !k.isPrivate {
		return k
	}

	// Convert it to an extended public key.  The key for the new extended
	// key will simply be the pubkey of the current extended private key.
	return newExtendedKey(k.privVer, k.pubVer, k.pubKeyBytes(), k.chainCode,
		k.parentFP, k.depth, k.childNum, false)
}

// SerializedPrivKey returns the serialized private key for the extended
// key, which callers feed to the signing engine.  An error is returned
// when the extended key is public.
func (k *ExtendedKey) SerializedPrivKey() ([]byte, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivExtKey
	}
	privKey := make([]byte, len(k.key))
	copy(privKey, k.key)
	return privKey, nil
}

// PrivKey returns the private key for the extended key as a secp256k1
// private key suitable for signing.  An error is returned when the
// extended key is public.
func (k *ExtendedKey) PrivKey() (*secp256k1.PrivateKey, error) {
	if !k.isPrivate {
		return nil, ErrNotPrivExtKey
	}
	return secp256k1.PrivKeyFromBytes(k.key)
}

// PubKeyBytes returns the serialized compressed public key associated
// with the extended key.
func (k *ExtendedKey) PubKeyBytes() []byte {
	pub := make([]byte, len(k.pubKeyBytes()))
	copy(pub, k.pubKeyBytes())
	return pub
}

// doubleHashChecksum returns the first four bytes of
// SHA256(SHA256(b)), the checksum appended to serialized extended keys.
func doubleHashChecksum(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// String returns the extended key as a base58-encoded string per the
// [BIP32] serialization format.
func (k *ExtendedKey) String() string {
	if len(k.key) == 0 {
		return "zeroed extended key"
	}

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	version := k.pubVer
	if k.isPrivate {
		version = k.privVer
	}
	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.childNum)

	serializedBytes := make([]byte, 0, serializedKeyLen+4)
	serializedBytes = append(serializedBytes, version[:]...)
	serializedBytes = append(serializedBytes, k.depth)
	serializedBytes = append(serializedBytes, k.parentFP...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.chainCode...)
	if k.isPrivate {
		serializedBytes = append(serializedBytes, 0x00)
		serializedBytes = append(serializedBytes, k.key...)
	} else {
		serializedBytes = append(serializedBytes, k.pubKeyBytes()...)
	}

	serializedBytes = append(serializedBytes,
		doubleHashChecksum(serializedBytes)...)
	return base58.Encode(serializedBytes)
}

// Zero manually clears all fields and bytes in the extended key.  This
// can be used to explicitly clear key material from memory for enhanced
// security against memory scraping.  The key becomes invalid for
// further use after this call.
func (k *ExtendedKey) Zero() {
	zero := func(b []byte) {
		for i := range b {
			b[i] = 0x00
		}
	}
	zero(k.key)
	zero(k.pubKey)
	zero(k.chainCode)
	zero(k.parentFP)
	k.privVer = [4]byte{}
	k.pubVer = [4]byte{}
	k.key = nil
	k.pubKey = nil
	k.chainCode = nil
	k.parentFP = nil
	k.depth = 0
	k.childNum = 0
	k.isPrivate = false
}

// NewMaster creates a new master node for use in creating a hierarchical
// deterministic key chain.  The seed must be between 128 and 512 bits
// and should be generated by a cryptographically secure random
// generation source.
func NewMaster(seed []byte, net NetworkParams) (*ExtendedKey, error) {
	// Per [BIP32], the seed must be in the range [MinSeedBytes,
	// MaxSeedBytes].
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	// First take the HMAC-SHA512 of the master key and the seed data:
	//   I = HMAC-SHA512(Key = "Bitcoin seed", Data = S)
	hmac512 := hmac.New(sha512.New, masterKey)
	hmac512.Write(seed)
	lr := hmac512.Sum(nil)

	// Split "I" into two 32-byte sequences il and ir where:
	//   il = master secret key
	//   ir = master chain code
	secretKey := lr[:len(lr)/2]
	chainCode := lr[len(lr)/2:]

	// Ensure the key is usable.
	secretKeyNum := new(big.Int).SetBytes(secretKey)
	if secretKeyNum.Cmp(secp256k1.Params().N) >= 0 ||
		secretKeyNum.Sign() == 0 {

		return nil, ErrUnusableSeed
	}

	parentFP := []byte{0x00, 0x00, 0x00, 0x00}
	return newExtendedKey(net.HDPrivKeyVersion(), net.HDPubKeyVersion(),
		secretKey, chainCode, parentFP, 0, 0, true), nil
}

// NewKeyFromString returns a new extended key instance from a base58
// encoded extended key for the provided network.
func NewKeyFromString(key string, net NetworkParams) (*ExtendedKey, error) {
	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4) ||
	//   child num (4) || chain code (32) || key data (33) || checksum (4)
	decoded := base58.Decode(key)
	if len(decoded) != serializedKeyLen+4 {
		return nil, ErrInvalidKeyLen
	}

	// Split the payload and checksum and ensure the checksum matches.
	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	if !bytes.Equal(checksum, doubleHashChecksum(payload)) {
		return nil, ErrBadChecksum
	}

	// Deserialize each of the payload fields.
	var version [4]byte
	copy(version[:], payload[:4])
	depth := payload[4]
	parentFP := payload[5:9]
	childNum := binary.BigEndian.Uint32(payload[9:13])
	chainCode := payload[13:45]
	keyData := payload[45:78]

	// The key data is a private key when it starts with 0x00.  Serialized
	// compressed pubkeys either start with 0x02 or 0x03.
	isPrivate := keyData[0] == 0x00
	if isPrivate {
		// Ensure the private key is valid.  It must be within the range
		// of the order of the secp256k1 curve and not be 0.
		keyData = keyData[1:]
		keyNum := new(big.Int).SetBytes(keyData)
		if keyNum.Cmp(secp256k1.Params().N) >= 0 || keyNum.Sign() == 0 {
			return nil, ErrUnusableSeed
		}
	} else {
		// Ensure the public key parses as a valid curve point.
		if _, err := secp256k1.ParsePubKey(keyData); err != nil {
			return nil, err
		}
	}

	return newExtendedKey(net.HDPrivKeyVersion(), net.HDPubKeyVersion(),
		keyData, chainCode, parentFP, depth, childNum, isPrivate), nil
}

// GenerateSeed returns a cryptographically secure random seed that can
// be used as the input for the NewMaster function to generate a new
// master node.
//
// The length is in bytes and it must be between 16 and 64 (128 to 512
// bits).  The recommended length is 32 (256 bits) as defined by the
// RecommendedSeedLen constant.
func GenerateSeed(length uint8) ([]byte, error) {
	// Per [BIP32], the seed must be in the range [MinSeedBytes,
	// MaxSeedBytes].
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	buf := make([]byte, length)
	rand.Read(buf)
	return buf, nil
}

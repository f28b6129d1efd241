// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/crypto/secp256k1/ecdsa"
)

// SignDoc is a direct-mode sign document.  BodyBytes and AuthInfoBytes
// are the already-serialized transaction body and auth info and are
// carried through opaquely.
type SignDoc struct {
	BodyBytes     []byte
	AuthInfoBytes []byte
	ChainID       string
	AccountNumber uint64
}

// Field numbers in the serialized sign document.
const (
	sdFieldBodyBytes     = 1
	sdFieldAuthInfoBytes = 2
	sdFieldChainID       = 3
	sdFieldAccountNumber = 4
)

// Wire types used by the serialization.
const (
	wireVarint = 0
	wireBytes  = 2
)

// appendTag appends the key for the given field number and wire type.
func appendTag(b []byte, fieldNum, wireType uint64) []byte {
	return binary.AppendUvarint(b, fieldNum<<3|wireType)
}

// appendBytesField appends a length-delimited field.  Empty values are
// omitted entirely so the serialization matches the proto3 form other
// chain software produces for the same document.
func appendBytesField(b []byte, fieldNum uint64, value []byte) []byte {
	if len(value) == 0 {
		return b
	}
	b = appendTag(b, fieldNum, wireBytes)
	b = binary.AppendUvarint(b, uint64(len(value)))
	return append(b, value...)
}

// appendVarintField appends a varint field, omitting zero values.
func appendVarintField(b []byte, fieldNum, value uint64) []byte {
	if value == 0 {
		return b
	}
	b = appendTag(b, fieldNum, wireVarint)
	return binary.AppendUvarint(b, value)
}

// SignBytes returns the serialization of the sign document that is
// hashed and signed in direct mode.
func (d *SignDoc) SignBytes() []byte {
	b := make([]byte, 0, len(d.BodyBytes)+len(d.AuthInfoBytes)+
		len(d.ChainID)+binary.MaxVarintLen64+16)
	b = appendBytesField(b, sdFieldBodyBytes, d.BodyBytes)
	b = appendBytesField(b, sdFieldAuthInfoBytes, d.AuthInfoBytes)
	b = appendBytesField(b, sdFieldChainID, []byte(d.ChainID))
	b = appendVarintField(b, sdFieldAccountNumber, d.AccountNumber)
	return b
}

// SignDirect signs the passed direct sign document with the provided
// private key and returns the signature envelope.
//
// As with amino mode, a signer address that does not match the address
// derived from the private key is a hard failure with kind
// ErrSignerMismatch.
func SignDirect(priv *secp256k1.PrivateKey, doc *SignDoc, signer string,
	params *chaincfg.Params) (*StdSignature, error) {

	if err := checkSigner(priv, signer, params); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(doc.SignBytes())
	sig, err := ecdsa.Sign(priv, digest[:])
	if err != nil {
		return nil, err
	}

	log.Debugf("Signed direct document for %s on chain %s", signer,
		doc.ChainID)
	return newStdSignature(priv.PubKey(), sig), nil
}

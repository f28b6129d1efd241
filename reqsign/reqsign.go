// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reqsign implements signing of inference request envelopes.
//
// A request signature covers the request payload, a nanosecond
// timestamp, and the transfer address the request pays to.  The signed
// message is the concatenation of the lowercase hex SHA-256 digest of
// the payload, the timestamp rendered as a decimal string, and the
// transfer address, in that order with no separators.  The SHA-256
// digest of that message is signed and the fixed 64-byte R || S
// serialization is returned base64 encoded.
package reqsign

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/crypto/secp256k1/ecdsa"
)

// Signer signs inference request envelopes with a fixed account key.
type Signer struct {
	priv *secp256k1.PrivateKey

	// nowMillis reports the current wall clock in milliseconds.  Tests
	// override it for deterministic output.
	nowMillis func() int64
}

// NewSigner returns a signer for the private key given as a hex string.
// An optional 0x prefix is accepted.  The decoded key must be exactly
// 32 bytes and within the valid secp256k1 range.
func NewSigner(hexKey string) (*Signer, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	keyBytes, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("malformed private key hex: %w", err)
	}
	priv, err := secp256k1.PrivKeyFromBytes(keyBytes)
	if err != nil {
		return nil, err
	}
	return &Signer{
		priv:      priv,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// NewSignerFromKey returns a signer for an already-parsed private key,
// such as one derived from an extended key.
func NewSignerFromKey(priv *secp256k1.PrivateKey) *Signer {
	return &Signer{
		priv:      priv,
		nowMillis: func() int64 { return time.Now().UnixMilli() },
	}
}

// PubKey returns the public key requests signed by this signer verify
// against.
func (s *Signer) PubKey() *secp256k1.PublicKey {
	return s.priv.PubKey()
}

// Sign signs an inference request for the given payload and transfer
// address.  It returns the base64 signature along with the nanosecond
// timestamp the signature commits to, which the caller must submit
// with the request.
//
// The timestamp has nanosecond units but only millisecond resolution.
// The clock is read in milliseconds and scaled by 1e6 because existing
// verifiers reconstruct the signed message from a millisecond clock
// read the same way, and a full-resolution timestamp would not match
// it.
func (s *Signer) Sign(payload []byte, transferAddress string) (string, int64, error) {
	tsNano := s.nowMillis() * int64(time.Millisecond)

	payloadDigest := sha256.Sum256(payload)
	msg := make([]byte, 0, hex.EncodedLen(sha256.Size)+20+len(transferAddress))
	msg = append(msg, hex.EncodeToString(payloadDigest[:])...)
	msg = strconv.AppendInt(msg, tsNano, 10)
	msg = append(msg, transferAddress...)

	digest := sha256.Sum256(msg)
	sig, err := ecdsa.Sign(s.priv, digest[:])
	if err != nil {
		return "", 0, err
	}

	// The signing engine already normalizes to the low-S form, but a
	// high-S signature here is rejected by every verifier, so recheck
	// the invariant before handing the bytes out.
	if sig.S().Cmp(secp256k1.Params().HalfN) > 0 {
		return "", 0, fmt.Errorf("signature is not in the low-S form")
	}
	serialized := sig.Serialize()

	log.Debugf("Signed request for %s at %d", transferAddress, tsNano)
	return base64.StdEncoding.EncodeToString(serialized), tsNano, nil
}

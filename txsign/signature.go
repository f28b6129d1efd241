// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"encoding/base64"
	"fmt"

	"github.com/infnet/infwallet/address"
	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/crypto/secp256k1/ecdsa"
)

// PubKeyAminoType is the registered amino type name for secp256k1
// public keys.  Verifiers use it to select the key algorithm when
// decoding a signature envelope.
const PubKeyAminoType = "tendermint/PubKeySecp256k1"

// StdPubKey is the public key portion of a signature envelope.  Value
// is the base64 encoding of the 33-byte compressed public key.
type StdPubKey struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// StdSignature is the signature envelope returned by the signing
// operations.  Signature is the base64 encoding of the fixed 64-byte
// R || S serialization.
type StdSignature struct {
	PubKey    StdPubKey `json:"pub_key"`
	Signature string    `json:"signature"`
}

// newStdSignature builds a signature envelope from a public key and a
// raw signature.
func newStdSignature(pub *secp256k1.PublicKey, sig *ecdsa.Signature) *StdSignature {
	return &StdSignature{
		PubKey: StdPubKey{
			Type:  PubKeyAminoType,
			Value: base64.StdEncoding.EncodeToString(pub.SerializeCompressed()),
		},
		Signature: base64.StdEncoding.EncodeToString(sig.Serialize()),
	}
}

// checkSigner ensures the signer address a request names matches the
// account address derived from the signing key.  Signing with a key
// other than the one the request names is never acceptable, so a
// mismatch is an error rather than a trigger for key selection.
func checkSigner(priv *secp256k1.PrivateKey, signer string,
	params *chaincfg.Params) error {

	derived, err := address.FromPubKey(priv.PubKey(), params)
	if err != nil {
		return err
	}
	if derived != signer {
		desc := fmt.Sprintf("signer address %q does not match the "+
			"signing key address %q", signer, derived)
		return signError(ErrSignerMismatch, desc)
	}
	return nil
}

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/crypto/secp256k1/ecdsa"
)

// StdSignDoc is an amino-mode sign document.  The JSON tags are
// declared in alphabetical order since that is the key order of the
// canonical serialization.
//
// AccountNumber and Sequence are decimal strings rather than integers
// so that values beyond the range of a double survive serialization
// unchanged.  Fee and Msgs carry caller-provided JSON which is
// re-serialized canonically before signing.
type StdSignDoc struct {
	AccountNumber string            `json:"account_number"`
	ChainID       string            `json:"chain_id"`
	Fee           json.RawMessage   `json:"fee"`
	Memo          string            `json:"memo"`
	Msgs          []json.RawMessage `json:"msgs"`
	Sequence      string            `json:"sequence"`
}

// canonicalJSON re-serializes the passed JSON value into its canonical
// form: object keys sorted lexicographically, no insignificant
// whitespace, and number literals preserved exactly.  It returns an
// error with kind ErrInvalidSignDoc when the input is not a single
// well-formed JSON value.
func canonicalJSON(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		desc := fmt.Sprintf("malformed JSON value: %v", err)
		return nil, signError(ErrInvalidSignDoc, desc)
	}
	var trailing interface{}
	if err := dec.Decode(&trailing); err == nil {
		desc := "trailing data after JSON value"
		return nil, signError(ErrInvalidSignDoc, desc)
	}

	// Marshaling the decoded value sorts object keys and drops all
	// insignificant whitespace.  json.Number round-trips number literals
	// byte for byte.
	out, err := json.Marshal(v)
	if err != nil {
		desc := fmt.Sprintf("unable to serialize JSON value: %v", err)
		return nil, signError(ErrInvalidSignDoc, desc)
	}
	return out, nil
}

// SignBytesAmino returns the canonical serialization of the sign
// document that is hashed and signed in amino mode.
func SignBytesAmino(doc *StdSignDoc) ([]byte, error) {
	if doc.Fee == nil {
		return nil, signError(ErrInvalidSignDoc, "sign document has no fee")
	}

	canonical := StdSignDoc{
		AccountNumber: doc.AccountNumber,
		ChainID:       doc.ChainID,
		Memo:          doc.Memo,
		Sequence:      doc.Sequence,
		Msgs:          make([]json.RawMessage, 0, len(doc.Msgs)),
	}
	var err error
	canonical.Fee, err = canonicalJSON(doc.Fee)
	if err != nil {
		return nil, err
	}
	for _, msg := range doc.Msgs {
		cm, err := canonicalJSON(msg)
		if err != nil {
			return nil, err
		}
		canonical.Msgs = append(canonical.Msgs, cm)
	}

	// The struct fields are declared in alphabetical tag order, so the
	// standard encoder emits the canonical key order directly.
	return json.Marshal(&canonical)
}

// SignAmino signs the passed amino sign document with the provided
// private key and returns the signature envelope.
//
// The signer address is the bech32 account address the request claims
// the signature is for.  When it does not match the address derived
// from the private key, an error with kind ErrSignerMismatch is
// returned and nothing is signed.
func SignAmino(priv *secp256k1.PrivateKey, doc *StdSignDoc, signer string,
	params *chaincfg.Params) (*StdSignature, error) {

	if err := checkSigner(priv, signer, params); err != nil {
		return nil, err
	}

	signBytes, err := SignBytesAmino(doc)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(signBytes)
	sig, err := ecdsa.Sign(priv, digest[:])
	if err != nil {
		return nil, err
	}

	log.Debugf("Signed amino document for %s on chain %s", signer,
		doc.ChainID)
	return newStdSignature(priv.PubKey(), sig), nil
}

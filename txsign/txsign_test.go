// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/crypto/secp256k1/ecdsa"
)

// hexToBytes converts the passed hex string into bytes and will panic
// if there is an error.  This is only provided for the hard-coded
// constants so errors in the source code can be detected.  It will only
// (and must only) be called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// testPrivKey returns the private key with scalar value 1.  Its
// mainnet account address is hard-coded in the tests below.
func testPrivKey(t *testing.T) *secp256k1.PrivateKey {
	t.Helper()
	key := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	priv, err := secp256k1.PrivKeyFromBytes(key)
	if err != nil {
		t.Fatalf("unexpected error creating private key: %v", err)
	}
	return priv
}

// testPrivKeyAddr is the mainnet account address derived from the
// private key returned by testPrivKey.
const testPrivKeyAddr = "inf1w508d6qejxtdg4y5r3zarvary0c5xw7kl3j3n0"

// TestSignBytesAmino ensures the amino serialization produces canonical
// JSON regardless of the formatting of the caller-provided fields.
func TestSignBytesAmino(t *testing.T) {
	tests := []struct {
		name string
		doc  StdSignDoc
		want string
	}{{
		name: "already canonical",
		doc: StdSignDoc{
			AccountNumber: "7",
			ChainID:       "infnet-1",
			Fee:           json.RawMessage(`{"amount":[{"amount":"2000","denom":"uinf"}],"gas":"200000"}`),
			Memo:          "test & memo",
			Msgs: []json.RawMessage{
				json.RawMessage(`{"type":"cosmos-sdk/MsgSend","value":{"amount":[{"amount":"1000000","denom":"uinf"}],"from_address":"inf1senderaddr","to_address":"inf1recvaddr"}}`),
			},
			Sequence: "42",
		},
		want: `{"account_number":"7","chain_id":"infnet-1","fee":{"amount":[{"amount":"2000","denom":"uinf"}],"gas":"200000"},"memo":"test \u0026 memo","msgs":[{"type":"cosmos-sdk/MsgSend","value":{"amount":[{"amount":"1000000","denom":"uinf"}],"from_address":"inf1senderaddr","to_address":"inf1recvaddr"}}],"sequence":"42"}`,
	}, {
		name: "unsorted keys and whitespace",
		doc: StdSignDoc{
			AccountNumber: "7",
			ChainID:       "infnet-1",
			Fee:           json.RawMessage(`{ "gas": "200000", "amount": [ { "denom": "uinf", "amount": "2000" } ] }`),
			Memo:          "test & memo",
			Msgs: []json.RawMessage{
				json.RawMessage(`{
					"value": {
						"to_address": "inf1recvaddr",
						"from_address": "inf1senderaddr",
						"amount": [{"denom": "uinf", "amount": "1000000"}]
					},
					"type": "cosmos-sdk/MsgSend"
				}`),
			},
			Sequence: "42",
		},
		want: `{"account_number":"7","chain_id":"infnet-1","fee":{"amount":[{"amount":"2000","denom":"uinf"}],"gas":"200000"},"memo":"test \u0026 memo","msgs":[{"type":"cosmos-sdk/MsgSend","value":{"amount":[{"amount":"1000000","denom":"uinf"}],"from_address":"inf1senderaddr","to_address":"inf1recvaddr"}}],"sequence":"42"}`,
	}, {
		name: "empty memo and no msgs",
		doc: StdSignDoc{
			AccountNumber: "0",
			ChainID:       "infnet-1",
			Fee:           json.RawMessage(`{"amount":[],"gas":"0"}`),
			Sequence:      "0",
		},
		want: `{"account_number":"0","chain_id":"infnet-1","fee":{"amount":[],"gas":"0"},"memo":"","msgs":[],"sequence":"0"}`,
	}}

	for _, test := range tests {
		got, err := SignBytesAmino(&test.doc)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("%s: mismatched sign bytes\n got: %s\nwant: %s",
				test.name, got, test.want)
		}
	}
}

// TestSignBytesAminoErrors ensures structurally invalid sign documents
// are rejected with ErrInvalidSignDoc.
func TestSignBytesAminoErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  StdSignDoc
	}{{
		name: "missing fee",
		doc:  StdSignDoc{ChainID: "infnet-1"},
	}, {
		name: "malformed fee",
		doc: StdSignDoc{
			ChainID: "infnet-1",
			Fee:     json.RawMessage(`{"gas":`),
		},
	}, {
		name: "fee with trailing data",
		doc: StdSignDoc{
			ChainID: "infnet-1",
			Fee:     json.RawMessage(`{"gas":"0"} extra`),
		},
	}, {
		name: "malformed msg",
		doc: StdSignDoc{
			ChainID: "infnet-1",
			Fee:     json.RawMessage(`{"gas":"0"}`),
			Msgs:    []json.RawMessage{json.RawMessage(`[1,`)},
		},
	}}

	for _, test := range tests {
		_, err := SignBytesAmino(&test.doc)
		if !errors.Is(err, ErrInvalidSignDoc) {
			t.Errorf("%s: mismatched error -- got: %v, want: %v",
				test.name, err, ErrInvalidSignDoc)
		}
	}
}

// TestSignDocSignBytes ensures the direct serialization produces the
// expected bytes, including field omission for empty values.
func TestSignDocSignBytes(t *testing.T) {
	tests := []struct {
		name string
		doc  SignDoc
		want string
	}{{
		name: "all fields",
		doc: SignDoc{
			BodyBytes:     hexToBytes("0a1e0a1c2f636f736d6f732e62616e6b2e763162657461312e4d736753656e64"),
			AuthInfoBytes: hexToBytes("0a509a01020304"),
			ChainID:       "infnet-1",
			AccountNumber: 7,
		},
		want: "0a200a1e0a1c2f636f736d6f732e62616e6b2e763162657461312e4d73" +
			"6753656e6412070a509a010203041a08696e666e65742d312007",
	}, {
		name: "empty doc",
		doc:  SignDoc{},
		want: "",
	}, {
		name: "account number only",
		doc:  SignDoc{AccountNumber: 300},
		want: "20ac02",
	}}

	for _, test := range tests {
		got := test.doc.SignBytes()
		if !bytes.Equal(got, hexToBytes(test.want)) {
			t.Errorf("%s: mismatched sign bytes -- got: %x, want: %s",
				test.name, got, test.want)
		}
	}
}

// verifyEnvelope decodes a signature envelope and verifies the
// signature it carries over the given digest.
func verifyEnvelope(t *testing.T, env *StdSignature, digest []byte) {
	t.Helper()

	if env.PubKey.Type != PubKeyAminoType {
		t.Fatalf("mismatched pubkey type -- got: %s, want: %s",
			env.PubKey.Type, PubKeyAminoType)
	}
	pubBytes, err := base64.StdEncoding.DecodeString(env.PubKey.Value)
	if err != nil {
		t.Fatalf("unexpected error decoding pubkey: %v", err)
	}
	pub, err := secp256k1.ParsePubKey(pubBytes)
	if err != nil {
		t.Fatalf("unexpected error parsing pubkey: %v", err)
	}
	sigBytes, err := base64.StdEncoding.DecodeString(env.Signature)
	if err != nil {
		t.Fatalf("unexpected error decoding signature: %v", err)
	}
	sig, err := ecdsa.ParseSignature(sigBytes)
	if err != nil {
		t.Fatalf("unexpected error parsing signature: %v", err)
	}
	if !sig.Verify(digest, pub) {
		t.Fatalf("signature failed to verify for envelope %s",
			spew.Sdump(env))
	}
}

// TestSignAmino ensures amino signing produces a verifiable envelope
// and enforces the signer address check.
func TestSignAmino(t *testing.T) {
	priv := testPrivKey(t)
	doc := StdSignDoc{
		AccountNumber: "7",
		ChainID:       chaincfg.MainNetParams.ChainID,
		Fee:           json.RawMessage(`{"amount":[],"gas":"200000"}`),
		Sequence:      "42",
	}

	env, err := SignAmino(priv, &doc, testPrivKeyAddr, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signBytes, err := SignBytesAmino(&doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	digest := sha256.Sum256(signBytes)
	verifyEnvelope(t, env, digest[:])

	// Signing must be deterministic.
	env2, err := SignAmino(priv, &doc, testPrivKeyAddr, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env2.Signature != env.Signature {
		t.Fatal("signing the same document twice produced different signatures")
	}

	// A signer address for a different key must be rejected.
	_, err = SignAmino(priv, &doc, "inf1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqm0tksu",
		&chaincfg.MainNetParams)
	if !errors.Is(err, ErrSignerMismatch) {
		t.Fatalf("mismatched error -- got: %v, want: %v", err,
			ErrSignerMismatch)
	}
}

// TestSignDirect ensures direct signing produces a verifiable envelope
// and enforces the signer address check.
func TestSignDirect(t *testing.T) {
	priv := testPrivKey(t)
	doc := SignDoc{
		BodyBytes:     hexToBytes("0a1e0a1c2f636f736d6f732e62616e6b2e763162657461312e4d736753656e64"),
		AuthInfoBytes: hexToBytes("0a509a01020304"),
		ChainID:       chaincfg.MainNetParams.ChainID,
		AccountNumber: 7,
	}

	env, err := SignDirect(priv, &doc, testPrivKeyAddr, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	digest := sha256.Sum256(doc.SignBytes())
	verifyEnvelope(t, env, digest[:])

	_, err = SignDirect(priv, &doc, "inf1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqm0tksu",
		&chaincfg.MainNetParams)
	if !errors.Is(err, ErrSignerMismatch) {
		t.Fatalf("mismatched error -- got: %v, want: %v", err,
			ErrSignerMismatch)
	}
}

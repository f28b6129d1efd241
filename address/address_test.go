// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
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

// TestFromPubKey ensures account addresses derived from public keys
// match the expected bech32 strings per network.
func TestFromPubKey(t *testing.T) {
	tests := []struct {
		name   string
		pubKey string
		params *chaincfg.Params
		want   string
	}{{
		name:   "generator key mainnet",
		pubKey: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		params: &chaincfg.MainNetParams,
		want:   "inf1w508d6qejxtdg4y5r3zarvary0c5xw7kl3j3n0",
	}, {
		name:   "known key mainnet",
		pubKey: "0292df7b245b81aa637ab4e867c8d511008f79161a97d64f2ac709600352f7acbc",
		params: &chaincfg.MainNetParams,
		want:   "inf1ehrk7gnnhmjskhhgan8885cwm4kf396gu2lgzx",
	}, {
		name:   "known key testnet",
		pubKey: "0292df7b245b81aa637ab4e867c8d511008f79161a97d64f2ac709600352f7acbc",
		params: &chaincfg.TestNetParams,
		want:   "tinf1ehrk7gnnhmjskhhgan8885cwm4kf396gjlkvzh",
	}}

	for _, test := range tests {
		pub, err := secp256k1.ParsePubKey(hexToBytes(test.pubKey))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		got, err := FromPubKey(pub, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: mismatched address -- got: %s, want: %s",
				test.name, got, test.want)
		}
	}
}

// TestHash160 ensures the pubkey hash matches the known value for a
// known key.
func TestHash160(t *testing.T) {
	pubKey := hexToBytes(
		"0292df7b245b81aa637ab4e867c8d511008f79161a97d64f2ac709600352f7acbc")
	want := hexToBytes("cdc76f2273bee50b5ee8ecce73d30edd6c989748")
	if got := Hash160(pubKey); !bytes.Equal(got, want) {
		t.Fatalf("mismatched hash -- got: %x, want: %x", got, want)
	}
}

// TestDecode ensures address decoding recovers the network prefix and
// pubkey hash and rejects malformed addresses.
func TestDecode(t *testing.T) {
	hrp, hash160, err := Decode("inf1ehrk7gnnhmjskhhgan8885cwm4kf396gu2lgzx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hrp != chaincfg.MainNetParams.Bech32HRPAccount {
		t.Fatalf("mismatched prefix -- got: %s, want: %s", hrp,
			chaincfg.MainNetParams.Bech32HRPAccount)
	}
	wantHash := hexToBytes("cdc76f2273bee50b5ee8ecce73d30edd6c989748")
	if !bytes.Equal(hash160, wantHash) {
		t.Fatalf("mismatched hash -- got: %x, want: %x", hash160, wantHash)
	}

	tests := []struct {
		name string
		addr string
	}{{
		name: "empty",
		addr: "",
	}, {
		name: "no separator",
		addr: "infqqqqqq",
	}, {
		name: "bad checksum",
		addr: "inf1ehrk7gnnhmjskhhgan8885cwm4kf396gu2lgzy",
	}, {
		name: "mixed case",
		addr: "inf1EHRK7gnnhmjskhhgan8885cwm4kf396gu2lgzx",
	}}
	for _, test := range tests {
		if _, _, err := Decode(test.addr); err == nil {
			t.Errorf("%s: no error for malformed address", test.name)
		}
	}
}

// TestFromHash160 ensures hashes of the wrong size are rejected and a
// derived address round trips through Decode.
func TestFromHash160(t *testing.T) {
	if _, err := FromHash160(make([]byte, 19), &chaincfg.MainNetParams); err == nil {
		t.Fatal("no error for short hash")
	}
	if _, err := FromHash160(make([]byte, 21), &chaincfg.MainNetParams); err == nil {
		t.Fatal("no error for long hash")
	}

	hash := hexToBytes("cdc76f2273bee50b5ee8ecce73d30edd6c989748")
	addr, err := FromHash160(hash, &chaincfg.SimNetParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hrp, gotHash, err := Decode(addr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hrp != chaincfg.SimNetParams.Bech32HRPAccount {
		t.Fatalf("mismatched prefix -- got: %s, want: %s", hrp,
			chaincfg.SimNetParams.Bech32HRPAccount)
	}
	if !bytes.Equal(gotHash, hash) {
		t.Fatalf("mismatched hash -- got: %x, want: %x", gotHash, hash)
	}
}

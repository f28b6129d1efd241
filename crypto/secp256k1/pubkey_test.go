// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"errors"
	"testing"
)

// TestParsePubKey ensures parsing of compressed and uncompressed public
// keys works as expected, including rejection of malformed input.
func TestParsePubKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		err  error
	}{{
		name: "compressed even y (generator)",
		key:  "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name: "compressed odd y (6*G)",
		key:  "03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556",
	}, {
		name: "uncompressed (generator)",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16" +
			"f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d0" +
			"8ffb10d4b8",
	}, {
		name: "empty",
		key:  "",
		err:  ErrPubKeyBadLen,
	}, {
		name: "wrong length",
		key:  "0279be66",
		err:  ErrPubKeyBadLen,
	}, {
		name: "compressed with unsupported format byte",
		key:  "0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "uncompressed with unsupported format byte",
		key: "0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16" +
			"f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d0" +
			"8ffb10d4b8",
		err: ErrPubKeyInvalidFormat,
	}, {
		name: "compressed x >= field prime",
		key:  "02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		err:  ErrPubKeyXTooBig,
	}, {
		name: "compressed x not on curve",
		key:  "020000000000000000000000000000000000000000000000000000000000000005",
		err:  ErrPubKeyNotOnCurve,
	}, {
		name: "uncompressed x >= field prime",
		key: "04fffffffffffffffffffffffffffffffffffffffffffffffffffffffeff" +
			"fffc2f483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d0" +
			"8ffb10d4b8",
		err: ErrPubKeyXTooBig,
	}, {
		name: "uncompressed y >= field prime",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16" +
			"f81798ffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
			"fefffffc2f",
		err: ErrPubKeyYTooBig,
	}, {
		name: "uncompressed point not on curve",
		key: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16" +
			"f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d0" +
			"8ffb10d4b9",
		err: ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		pub, err := ParsePubKey(hexToBytes(test.key))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched error -- got: %v, want: %v",
				test.name, err, test.err)
			continue
		}
		if test.err != nil {
			continue
		}

		// The parsed point must be on the curve and survive a
		// serialization round trip in the original format.
		if !curveParams.IsOnCurve(pub.Point()) {
			t.Errorf("%s: parsed point is not on the curve", test.name)
			continue
		}
		var serialized []byte
		switch len(test.key) / 2 {
		case PubKeyBytesLenCompressed:
			serialized = pub.SerializeCompressed()
		case PubKeyBytesLenUncompressed:
			serialized = pub.SerializeUncompressed()
		}
		if !bytes.Equal(serialized, hexToBytes(test.key)) {
			t.Errorf("%s: mismatched round trip -- got: %x, want: %s",
				test.name, serialized, test.key)
		}
	}
}

// TestPubKeyIsEqual ensures public key equality works as intended.
func TestPubKeyIsEqual(t *testing.T) {
	pub1, err := ParsePubKey(hexToBytes(
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pub2, err := ParsePubKey(hexToBytes(
		"03fff97bd5755eeea420453a14355235d382f6472f8568a18b2f057a1460297556"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !pub1.IsEqual(pub1) {
		t.Fatal("pubkey not equal to itself")
	}
	if pub1.IsEqual(pub2) {
		t.Fatal("distinct pubkeys reported equal")
	}
}

// TestParsePubKeyCompressedMatchesUncompressed ensures decompression
// recovers the same point as the uncompressed serialization.
func TestParsePubKeyCompressedMatchesUncompressed(t *testing.T) {
	compressed, err := ParsePubKey(hexToBytes(
		"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uncompressed, err := ParsePubKey(hexToBytes(
		"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16" +
			"f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d0" +
			"8ffb10d4b8"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !compressed.IsEqual(uncompressed) {
		t.Fatal("compressed and uncompressed forms parse to different points")
	}
}

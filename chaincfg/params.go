// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the immutable per-network parameters for the
// infnet chain.  Components never reach for hidden globals; they take a
// *Params and read what they need from it.
package chaincfg

// Params defines an infnet network by its parameters.  These parameters
// may be used by wallet tooling to differentiate networks as well as
// addresses and keys for one network from those intended for use on
// another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// ChainID is the canonical chain identifier embedded in every signed
	// transaction document for replay protection across networks.
	ChainID string

	// Bech32HRPAccount is the human-readable prefix of bech32 account
	// addresses on this network.
	Bech32HRPAccount string

	// HDCoinType is the BIP44 coin type used by the hierarchical
	// deterministic key derivation path m/44'/coin'/account'/branch/index.
	HDCoinType uint32

	// HDPrivateKeyID and HDPublicKeyID are the version bytes that prefix
	// serialized hierarchical deterministic extended keys for this
	// network.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// HDPrivKeyVersion returns the extended private key version bytes for
// the network.
//
// This is part of the hdkeychain.NetworkParams interface.
func (p *Params) HDPrivKeyVersion() [4]byte {
	return p.HDPrivateKeyID
}

// HDPubKeyVersion returns the extended public key version bytes for the
// network.
//
// This is part of the hdkeychain.NetworkParams interface.
func (p *Params) HDPubKeyVersion() [4]byte {
	return p.HDPublicKeyID
}

// MainNetParams defines the network parameters for the main infnet
// network.
var MainNetParams = Params{
	Name:             "mainnet",
	ChainID:          "infnet-1",
	Bech32HRPAccount: "inf",
	HDCoinType:       118,
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
}

// TestNetParams defines the network parameters for the test infnet
// network.
var TestNetParams = Params{
	Name:             "testnet",
	ChainID:          "infnet-testnet-2",
	Bech32HRPAccount: "tinf",
	HDCoinType:       1,
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
}

// SimNetParams defines the network parameters for the simulation network
// used by automated tests and local development harnesses.
var SimNetParams = Params{
	Name:             "simnet",
	ChainID:          "infnet-sim-1",
	Bech32HRPAccount: "sinf",
	HDCoinType:       1,
	HDPrivateKeyID:   [4]byte{0x04, 0x20, 0xb9, 0x00}, // starts with sprv
	HDPublicKeyID:    [4]byte{0x04, 0x20, 0xbd, 0x3a}, // starts with spub
}

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genseed generates a cryptographically secure random wallet seed and
// prints it as hex.  It can optionally print the extended public key of
// the master node the seed derives so the result can be sanity checked
// against another wallet implementation.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/hdkeychain"
	"github.com/infnet/infwallet/walletseed"
)

var (
	size = flag.Uint("size", hdkeychain.RecommendedSeedLen,
		"seed size in bytes, between 16 and 64")
	xpub = flag.Bool("xpub", false,
		"also print the mainnet extended public key of the master node")
)

func main() {
	flag.Parse()

	seed, err := walletseed.GenerateRandomSeed(*size)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(seed))

	if *xpub {
		master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer master.Zero()
		fmt.Println(master.Neuter().String())
	}
}

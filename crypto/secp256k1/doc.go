// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements support for the elliptic curve used by the
infnet chain for account keys and transaction signatures.

The implementation is deliberately self-contained: modular arithmetic is
performed with math/big integers using true mathematical reduction, the
group law is evaluated in affine coordinates, and scalar multiplication
uses a plain double-and-add ladder.  The curve constants live in a single
immutable CurveParams value that is constructed once and shared by
reference.

The arithmetic here is not constant time and therefore may leak timing
information about secret scalars.  That limitation matches the wallet
baseline this package reproduces and is documented rather than hidden;
deployments with stronger side-channel requirements should use a
hardened library instead.
*/
package secp256k1

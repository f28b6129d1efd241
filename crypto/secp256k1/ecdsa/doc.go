// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package ecdsa provides deterministic ECDSA signing and verification over
the secp256k1 curve.

Nonces are derived per RFC 6979 with HMAC-SHA256, so signing the same
message digest with the same private key always yields the same
signature, and the generator agrees byte for byte with any other
conforming implementation.  Produced signatures are canonicalized to the
low-S form and serialized as a fixed 64-byte R || S pair, the wire
format used by infnet transaction envelopes and inference-request
signatures.
*/
package ecdsa

// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txsign implements transaction signing for the infnet chain.

Two sign modes are supported:

Amino mode serializes a sign document as canonical JSON with
alphabetically sorted keys and no insignificant whitespace, hashes the
result with SHA-256, and signs the digest.

Direct mode serializes a sign document as a protobuf message containing
the raw transaction body and auth info bytes, hashes the result with
SHA-256, and signs the digest.

Both modes refuse to sign when the signer address recorded in the
request does not match the address derived from the provided private
key.  The mismatch is a hard failure rather than a fallback to another
key.
*/
package txsign

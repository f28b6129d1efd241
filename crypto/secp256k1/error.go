// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
)

// ErrorCode identifies a kind of key error.  It has full support for
// errors.Is and errors.As, so the caller can directly check against an
// error code when determining the reason for an error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrPrivKeyBadLen is returned when raw private key material is not
	// exactly 32 bytes.  Keys are never padded or truncated to fit.
	ErrPrivKeyBadLen ErrorCode = iota

	// ErrPrivKeyOutOfRange is returned when a private scalar is zero or
	// not less than the group order.
	ErrPrivKeyOutOfRange

	// ErrPubKeyBadLen is returned when a serialized public key is not a
	// recognized length.
	ErrPubKeyBadLen

	// ErrPubKeyInvalidFormat is returned when a serialized public key
	// does not start with a supported format identifier byte.
	ErrPubKeyInvalidFormat

	// ErrPubKeyXTooBig is returned when the x coordinate of a serialized
	// public key is not less than the field prime.
	ErrPubKeyXTooBig

	// ErrPubKeyYTooBig is returned when the y coordinate of a serialized
	// public key is not less than the field prime.
	ErrPubKeyYTooBig

	// ErrPubKeyNotOnCurve is returned when a public key's coordinates do
	// not satisfy the curve equation.
	ErrPubKeyNotOnCurve

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrPrivKeyBadLen:           "ErrPrivKeyBadLen",
	ErrPrivKeyOutOfRange:       "ErrPrivKeyOutOfRange",
	ErrPubKeyBadLen:            "ErrPubKeyBadLen",
	ErrPubKeyInvalidFormat:     "ErrPubKeyInvalidFormat",
	ErrPubKeyXTooBig:           "ErrPubKeyXTooBig",
	ErrPubKeyYTooBig:           "ErrPubKeyYTooBig",
	ErrPubKeyNotOnCurve:        "ErrPubKeyNotOnCurve",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error implements the error interface.
func (e ErrorCode) Error() string {
	return e.String()
}

// Is implements the interface to work with the standard library's errors.Is.
//
// It returns true in the following cases:
// - The target is a Error and the error codes match
// - The target is a ErrorCode and the error codes match
func (e ErrorCode) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e == target.ErrorCode

	case ErrorCode:
		return e == target
	}

	return false
}

// Error identifies a key-related error.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific
// reason for the error by checking the underlying error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's errors.Is.
//
// It returns true in the following cases:
// - The target is a Error and the error codes match
// - The target is a ErrorCode and the error codes match
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return e.ErrorCode == target.ErrorCode

	case ErrorCode:
		return target == e.ErrorCode
	}

	return false
}

// Unwrap returns the underlying wrapped error code.
func (e Error) Unwrap() error {
	return e.ErrorCode
}

// makeError creates a Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

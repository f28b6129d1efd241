// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecdsa

import (
	"fmt"
)

// ErrorCode identifies a kind of signature error.  It has full support
// for errors.Is and errors.As, so the caller can directly check against
// an error code when determining the reason for an error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrSigInvalidLen is returned when a signature that should be in the
	// fixed 64-byte R || S serialization has a different length.
	ErrSigInvalidLen ErrorCode = iota

	// ErrSigRIsZero is returned when a signature has R set to the value
	// zero.
	ErrSigRIsZero

	// ErrSigRTooBig is returned when a signature has R with a value that
	// is greater than or equal to the group order.
	ErrSigRTooBig

	// ErrSigSIsZero is returned when a signature has S set to the value
	// zero.
	ErrSigSIsZero

	// ErrSigSTooBig is returned when a signature has S with a value that
	// is greater than or equal to the group order.
	ErrSigSTooBig

	// ErrNonceExhausted is returned when the bounded retry loop failed to
	// produce a usable nonce.  Any nonce candidate is rejected with
	// probability around 2^-256, so reaching the cap in practice
	// indicates a defect rather than bad luck.
	ErrNonceExhausted

	// numErrorCodes is the maximum error code number used in tests.  This
	// entry MUST be the last entry in the enum.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrSigInvalidLen:  "ErrSigInvalidLen",
	ErrSigRIsZero:     "ErrSigRIsZero",
	ErrSigRTooBig:     "ErrSigRTooBig",
	ErrSigSIsZero:     "ErrSigSIsZero",
	ErrSigSTooBig:     "ErrSigSTooBig",
	ErrNonceExhausted: "ErrNonceExhausted",
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

// Error identifies a signature-related error.  It has full support for
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

// signatureError creates a Error given a set of arguments.
func signatureError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

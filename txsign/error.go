// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrSignerMismatch indicates the signer address in a sign request
	// does not match the address derived from the signing key.
	ErrSignerMismatch ErrorCode = iota

	// ErrInvalidSignDoc indicates a sign document is structurally
	// invalid, such as a fee or message field that is not well-formed
	// JSON.
	ErrInvalidSignDoc

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty
// printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrSignerMismatch: "ErrSignerMismatch",
	ErrInvalidSignDoc: "ErrInvalidSignDoc",
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

// Is implements the interface to work with the standard library errors
// package.
func (e ErrorCode) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return target.ErrorCode == e

	case ErrorCode:
		return target == e
	}

	return false
}

// Error identifies an error related to transaction signing.  It has
// full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the
// underlying error code.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library errors
// package.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case Error:
		return target.ErrorCode == e.ErrorCode

	case ErrorCode:
		return target == e.ErrorCode
	}

	return false
}

// Unwrap returns the underlying wrapped error code.
func (e Error) Unwrap() error {
	return e.ErrorCode
}

// signError creates an Error given a set of arguments.
func signError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

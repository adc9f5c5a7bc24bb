// SPDX-License-Identifier: MIT
// Package harness: sentinel error set.

package harness

import "errors"

var (
	// ErrToleranceExceeded marks a value mismatch beyond the configured
	// absolute tolerance.
	ErrToleranceExceeded = errors.New("harness: deviation exceeds tolerance")

	// ErrExternalInvocation marks an implementation under test that could not
	// be run at all or terminated in an unrecoverable way. A plain non-zero
	// exit is NOT this error; its output is still parsed.
	ErrExternalInvocation = errors.New("harness: external invocation failed")

	// ErrValueCount marks an external output that yielded a different number
	// of comparable values than the oracle produced.
	ErrValueCount = errors.New("harness: value count mismatch")
)

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package errs defines the sentinel error values shared by every layer of the
// library (bn, fp, fptower, curve, pairing, delegate, params). Callers test
// for these with errors.Is; wrapped context ("invert: %w", ErrNoValid) is
// added at the call site, not here.
package errs

import "errors"

var (
	// ErrNoMemory reports that an allocation failed.
	ErrNoMemory = errors.New("allocation failed")

	// ErrNoValid reports that an invariant was violated by caller input: a
	// non-invertible element, a point not on the curve, a point outside the
	// expected prime-order subgroup, or a malformed encoding.
	ErrNoValid = errors.New("invalid value")

	// ErrNoBuffer reports that a supplied output buffer was too small, or
	// an input buffer had the wrong length.
	ErrNoBuffer = errors.New("invalid buffer length")

	// ErrNoField reports that the requested field operation is undefined
	// for the current prime or extension degree.
	ErrNoField = errors.New("invalid field")

	// ErrNoCurve reports that the requested operation is undefined for the
	// current curve, e.g. a pairing call on a curve with no configured twist.
	ErrNoCurve = errors.New("invalid curve")

	// ErrNoConfig reports that the compiled/selected configuration does not
	// support the requested operation, e.g. requesting the quick reduction
	// on a dense (non pseudo-Mersenne) prime.
	ErrNoConfig = errors.New("unsupported configuration")

	// ErrNoPreci reports that a precomputation table required by the
	// requested operation was never built.
	ErrNoPreci = errors.New("missing precomputation")

	// ErrNoRead reports a platform I/O failure reading randomness.
	ErrNoRead = errors.New("read failed")

	// ErrNoFile reports a platform I/O failure opening a resource.
	ErrNoFile = errors.New("file not found")

	// ErrCaught reports that an error was re-raised across a cleanup
	// boundary; the original error is wrapped with %w by the caller.
	ErrCaught = errors.New("error propagated across cleanup boundary")
)

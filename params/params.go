// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package params registers the stable numeric parameter identifiers for
// every supported curve/field family (BN_P254, B12_P381, K18_P638,
// NIST_P256, ED25519) and builds the read-only Context for each of them
// except K18_P638, which is registered without a builder: field
// parameters, curve/twist coefficients, generators, and (for BN_P254 only)
// the pairing.Context a Miller loop runs against.
//
// Grounded on the bytemare/cryptotools `ciphersuite` registry
// (`group/ciphersuite/suites.go`): a byte-sized Identifier type,
// a package-level `map[Identifier]*params` populated once from `init`,
// and an `Available`/`register` pair gating lookups. That registry is
// reused here only for its read-only "which IDs exist, which builder do
// they map to" bookkeeping; the source registry's per-call
// `registered[i].newGroup()` pattern still constructs a fresh value, but
// this package's constructors return an explicit, immutable *Context
// rather than mutating any process-wide "current parameter set".
// Build is a pure function from ID to Context, and there is no
// param_set/param_get global to race on: an explicit builder returns a
// read-only context after validation, and mid-operation mutation is never
// permitted.
package params

import (
	"fmt"

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/internal/errs"
	"github.com/relic-go/relic/pairing"
)

// ID is a stable numeric identifier for a registered parameter set.
type ID byte

const (
	// BNP254 identifies the 254-bit Barreto-Naehrig curve (k=12).
	BNP254 ID = 1 + iota

	// B12P381 identifies BLS12-381 (k=12).
	B12P381

	// K18P638 identifies the 638-bit KSS18 curve (k=18).
	K18P638

	// NISTP256 identifies NIST P-256 / secp256r1 (k=1, no pairing).
	NISTP256

	// ED25519 identifies Curve25519's twisted-Edwards form (no pairing).
	ED25519

	maxID

	// Default falls back to BN_P254, the narrowest pairing-friendly
	// family in scope.
	Default = BNP254
)

// String names id, or "unknown" if id is not a registered identifier.
func (i ID) String() string {
	switch i {
	case BNP254:
		return "BN_P254"
	case B12P381:
		return "B12_P381"
	case K18P638:
		return "K18_P638"
	case NISTP256:
		return "NIST_P256"
	case ED25519:
		return "ED25519"
	default:
		return "unknown"
	}
}

// Available reports whether id names a registered parameter set and a
// builder exists for it in this binary.
func (i ID) Available() bool {
	_, ok := builders[i]
	return i > 0 && i < maxID && ok
}

type builderFunc func() (*Context, error)

var builders = map[ID]builderFunc{
	BNP254:   buildBN254,
	B12P381:  buildBLS12381,
	NISTP256: buildNISTP256,
	ED25519:  buildEd25519,
}

// Context is the read-only, builder-constructed set of field, curve, and
// (where applicable) pairing parameters behind one registered ID.
type Context struct {
	ID ID

	// FieldParams is the base-field F_p this context's group arithmetic
	// runs over. Absent (nil) only for ED25519, whose field is entirely
	// owned by filippo.io/edwards25519.
	FieldParams *fp.Params

	// G1 describes the base-field curve and its generator. Absent for
	// ED25519.
	G1     *curve.G1Params
	G1GenX *fp.Elt
	G1GenY *fp.Elt

	// G2 describes the twist curve over F_{p^2} and its generator,
	// present only for BN_P254; B12_P381 leaves it nil.
	G2     *curve.G2Params
	G2GenX *fptower.Fp2
	G2GenY *fptower.Fp2

	// G2Twist records which sextic-twist convention G2's b coefficient was
	// derived under (curve.DTwist for every k=12 family registered so
	// far; a future k=16/k=18/k=48 family would set curve.MTwist instead
	// — see relic_pp_map_k16.c/_k18.c/_k48.c in the original C sources).
	G2Twist curve.TwistType

	// Pairing is the Miller-loop/final-exponentiation context for this
	// family, present only where G2 is.
	Pairing *pairing.Context
}

// Build constructs the Context named by id, or an error if id is not a
// registered/available parameter set.
func Build(id ID) (*Context, error) {
	b, ok := builders[id]
	if !id.Available() || !ok {
		return nil, fmt.Errorf("params: build %s: %w", id, errs.ErrNoConfig)
	}

	return b()
}

// BuildAny picks a default parameter set for the compiled build.
// This module is not specialised per field width at compile time, so it
// always returns the Default identifier's context.
func BuildAny() (*Context, error) { return Build(Default) }

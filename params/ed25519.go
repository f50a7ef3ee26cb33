// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

// buildEd25519 returns the ED25519 Context. Unlike the Weierstrass
// families, ED25519's field, curve, and generator are entirely owned by
// filippo.io/edwards25519 (package curve's Ed25519Point wraps it rather
// than instantiating the generic Point[F] machinery), so none of
// Context's FieldParams/G1/G2/Pairing fields apply here: callers working
// with ED25519 use curve.Ed25519Generator/Ed25519Identity/Ed25519FromBytes
// directly rather than through this Context.
func buildEd25519() (*Context, error) {
	return &Context{ID: ED25519}, nil
}

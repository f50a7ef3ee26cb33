// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package curve implements elliptic-curve group arithmetic over F_p (G1)
// and its twist (G2): Jacobian points with affine conversion (there is no
// separate projective or affine point type; extended-Edwards coordinates
// exist only inside the filippo.io/edwards25519 wrapper), the six scalar-
// multiplication strategies, Frobenius-based cofactor clearing on G2, and
// hash-to-curve.
//
// Grounded on the self-referential generic pattern of a single-curve point
// type parametrised over its own type (so Add/Double/Neg return the same
// concrete point type the receiver is), generalised here one level further:
// Point[F] is parametrised over its *coordinate field* F, so the same
// Jacobian arithmetic serves both G1 (F = *fp.Elt) and G2
// (F = *fptower.Fp2) without duplicating the addition/doubling formulas.
package curve

// Field is the arithmetic surface Point[F] needs from its coordinate
// field. *fp.Elt and *fptower.Fp2 both satisfy it.
type Field[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Sqr(a T) T
	Inv(a T) (T, error)
	IsZero() bool
	Equal(o T) bool
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/fp"
)

// G1 is the r-torsion subgroup of E(F_p), the base-field instantiation of
// the generic Jacobian point type.
type G1 = Point[*fp.Elt]

// G1Params describes a concrete G1 curve: its coefficients over F_p and the
// subgroup order/cofactor.
type G1Params = Params[*fp.Elt]

// NewG1Params builds the G1 curve parameters y^2 = x^3 + a*x + b over the
// field described by fieldParams.
func NewG1Params(fieldParams *fp.Params, a, b *fp.Elt, order, cofactor []byte) *G1Params {
	return &G1Params{
		A:        a,
		B:        b,
		Order:    order,
		Cofactor: cofactor,
		Zero:     func() *fp.Elt { return fp.Zero(fieldParams) },
		One:      func() *fp.Elt { return fp.One(fieldParams) },
	}
}

// NewG1Affine returns the affine point (x, y) on curve.
func NewG1Affine(curve *G1Params, x, y *fp.Elt) *G1 { return NewAffine(curve, x, y) }

// G1Infinity returns the identity element of G1.
func G1Infinity(curve *G1Params) *G1 { return Infinity(curve) }

// ClearCofactorG1 multiplies p by the curve's cofactor, projecting an
// arbitrary point on the curve into the r-torsion subgroup G1. G1's cofactor is
// small for every parameter set in scope, so plain binary multiplication is
// used rather than an endomorphism-accelerated strategy.
func ClearCofactorG1(p *G1) *G1 {
	h := bn.New().SetBytes(p.curve.Cofactor)
	return MulBinary(p, h)
}

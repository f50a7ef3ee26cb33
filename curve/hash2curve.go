// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"crypto"
	"fmt"

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/hash2curve"
	"github.com/relic-go/relic/internal/errs"
)

// HashTryIncrement maps msg to a point on curve by the try-and-increment
// strategy : hash msg under dst||counter to a candidate x-coordinate,
// accept the first counter for which x^3+a*x+b is a square in F_p, then
// clear the cofactor. Variable-time in the counter, acceptable only when
// msg is not secret.
func HashTryIncrement(curve *G1Params, fieldParams *fp.Params, id crypto.Hash, msg, dst []byte, maxTries int) (*G1, error) {
	for counter := 0; counter < maxTries; counter++ {
		candidateDST := append(append([]byte{}, dst...), byte(counter))

		xs := hash2curve.HashToFieldXMD(id, msg, candidateDST, 1, 1, 48, fieldParams.Prime())
		x := fp.FromBig(fieldParams, xs[0])

		rhs := curveRHS(curve, x)

		y, ok := fp.Zero(fieldParams).Sqrt(rhs)
		if !ok {
			continue
		}

		return ClearCofactorG1(NewG1Affine(curve, x, y)), nil
	}

	return nil, fmt.Errorf("curve: hash-try-increment: %w", errs.ErrNoValid)
}

// curveRHS evaluates x^3 + a*x + b over the base field.
func curveRHS(curve *G1Params, x *fp.Elt) *fp.Elt {
	x3 := fp.Zero(x.Params()).Sqr(x)
	x3 = fp.Zero(x.Params()).Mul(x3, x)

	ax := fp.Zero(x.Params()).Mul(curve.A, x)

	rhs := fp.Zero(x.Params()).Add(x3, ax)
	rhs = fp.Zero(x.Params()).Add(rhs, curve.B)

	return rhs
}

// SSWUParams carries the alternate (isogenous) curve constants and the
// 3-isogeny map-back coefficients used by the simplified SWU strategy. z is the
// non-square constant SSWU requires; the isogeny map is expressed as ratios
// of polynomials in x (numerator/denominator pairs), evaluated via Horner's
// method.
type SSWUParams struct {
	Curve *G1Params
	Z     *fp.Elt

	// Isogenous curve E' that SSWU maps onto before applying the isogeny.
	IsoA, IsoB *fp.Elt

	// 3-isogeny rational maps x -> xNum(x)/xDen(x), y -> y*yNum(x)/yDen(x),
	// coefficients listed from the constant term up (Horner order).
	XNum, XDen, YNum, YDen []*fp.Elt
}

// HashSSWU maps msg to a point on curve via SSWU onto the isogenous curve
// followed by the 3-isogeny map-back and cofactor clearing. It branches on
// the outcome of the inversion and the square test and on the sign of u, all
// of which depend on msg, so it is not constant-time.
func HashSSWU(params *SSWUParams, fieldParams *fp.Params, id crypto.Hash, msg, dst []byte) (*G1, error) {
	us := hash2curve.HashToFieldXMD(id, msg, dst, 2, 1, 48, fieldParams.Prime())

	p1, err := mapToCurveSSWU(params, fp.FromBig(fieldParams, us[0]))
	if err != nil {
		return nil, err
	}

	p2, err := mapToCurveSSWU(params, fp.FromBig(fieldParams, us[1]))
	if err != nil {
		return nil, err
	}

	sum := p1.Add(p2)

	return ClearCofactorG1(isogenyMap(params, sum)), nil
}

// mapToCurveSSWU implements the core simplified-SWU map from a field
// element u onto an affine point on the isogenous curve IsoA/IsoB.
func mapToCurveSSWU(params *SSWUParams, u *fp.Elt) (*G1, error) {
	pr := u.Params()

	zu2 := fp.Zero(pr).Mul(params.Z, fp.Zero(pr).Sqr(u))
	zu2sq := fp.Zero(pr).Sqr(zu2)

	tv1 := fp.Zero(pr).Add(zu2sq, zu2)

	tv1Inv, err := fp.Zero(pr).Inv(tv1)

	var x1 *fp.Elt
	if err != nil {
		bOverA, errDiv := fp.Zero(pr).Inv(params.IsoA)
		if errDiv != nil {
			return nil, fmt.Errorf("curve: sswu: %w", errs.ErrNoValid)
		}

		x1 = fp.Zero(pr).Mul(params.IsoB, bOverA)
		x1 = fp.Zero(pr).Neg(x1)
	} else {
		tv2 := fp.Zero(pr).Add(tv1Inv, fp.One(pr))
		bOverA, _ := fp.Zero(pr).Inv(params.IsoA)
		bOverA = fp.Zero(pr).Neg(fp.Zero(pr).Mul(params.IsoB, bOverA))
		x1 = fp.Zero(pr).Mul(bOverA, tv2)
	}

	gx1 := curveRHSIso(params, x1)

	if y1, ok := fp.Zero(pr).Sqrt(gx1); ok {
		if negativeLexLarger(u, y1) {
			y1 = fp.Zero(pr).Neg(y1)
		}

		return NewAffine(params.Curve, x1, y1), nil
	}

	x2 := fp.Zero(pr).Mul(zu2, x1)
	gx2 := curveRHSIso(params, x2)

	y2, ok := fp.Zero(pr).Sqrt(gx2)
	if !ok {
		return nil, fmt.Errorf("curve: sswu: %w", errs.ErrNoValid)
	}

	if negativeLexLarger(u, y2) {
		y2 = fp.Zero(pr).Neg(y2)
	}

	return NewAffine(params.Curve, x2, y2), nil
}

func curveRHSIso(params *SSWUParams, x *fp.Elt) *fp.Elt {
	pr := x.Params()

	x3 := fp.Zero(pr).Sqr(x)
	x3 = fp.Zero(pr).Mul(x3, x)

	ax := fp.Zero(pr).Mul(params.IsoA, x)

	rhs := fp.Zero(pr).Add(x3, ax)

	return fp.Zero(pr).Add(rhs, params.IsoB)
}

// negativeLexLarger implements the RFC 9380 sign-selection rule sgn0(u) ==
// sgn0(y): choose the root whose "sign" (lexicographic parity of its
// canonical representative) disagrees with u's, then negate.
func negativeLexLarger(u, y *fp.Elt) bool {
	return sgn0(u) != sgn0(y)
}

func sgn0(a *fp.Elt) int { return int(a.Big().Bit(0)) }

// isogenyMap evaluates the 3-isogeny from the isogenous curve back onto
// curve, via Horner's method over XNum/XDen/YNum/YDen.
func isogenyMap(params *SSWUParams, p *G1) *G1 {
	if p.IsInfinity() {
		return Infinity(params.Curve)
	}

	x, y, err := p.Affine()
	if err != nil {
		return Infinity(params.Curve)
	}

	xNum := horner(params.XNum, x)
	xDen := horner(params.XDen, x)
	yNum := horner(params.YNum, x)
	yDen := horner(params.YDen, x)

	pr := x.Params()

	xDenInv, err := fp.Zero(pr).Inv(xDen)
	if err != nil {
		return Infinity(params.Curve)
	}

	yDenInv, err := fp.Zero(pr).Inv(yDen)
	if err != nil {
		return Infinity(params.Curve)
	}

	xOut := fp.Zero(pr).Mul(xNum, xDenInv)

	yOut := fp.Zero(pr).Mul(yNum, yDenInv)
	yOut = fp.Zero(pr).Mul(yOut, y)

	return NewAffine(params.Curve, xOut, yOut)
}

func horner(coeffs []*fp.Elt, x *fp.Elt) *fp.Elt {
	pr := x.Params()

	acc := fp.Zero(pr).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = fp.Zero(pr).Mul(acc, x)
		acc = fp.Zero(pr).Add(acc, coeffs[i])
	}

	return acc
}

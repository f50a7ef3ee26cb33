// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package pairing implements the optimal-ate Miller loop and final
// exponentiation over the k=12 tower (BN254, BLS12-381), plus a
// multi-pairing product check.
//
// Grounded on a cloudflare/bn256-derived BN254 pairing engine (the
// ACCEPT-eth2030 example), adapted from that engine's
// `big.Int`-scalar/hardcoded-BN254-prime tower to this module's
// generic `fp.Elt`/`fptower.Fp2`/`fptower.Fp12` types so the same Miller
// loop serves any registered k=12 parameter set, not only BN254. The
// Jacobian-with-cached-Z^2 twist-point representation (`twistPoint`, T =
// Z^2) and the line-function/`mulLine` sparse-multiply shape are kept as
// that engine expresses them; see `DESIGN.md` for the family-specific
// pieces (ate loop digits, Frobenius-twist constants) this package leaves
// to the caller (package params).
package pairing

import (
	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
)

// twistPoint is a G2 (twist curve) point in Jacobian coordinates with a
// cached T = Z^2, the representation the line-function formulas below are
// written against.
type twistPoint struct {
	X, Y, Z, T *fptower.Fp2
}

// fp2Params recovers the base-field parameters backing e, via its real
// coordinate A0 (an *fp.Elt, which does expose Params()); fptower.Fp2
// itself keeps that accessor unexported.
func fp2Params(e *fptower.Fp2) *fp.Params { return e.A0.Params() }

// fp12Params recovers the base-field parameters backing f, the same way
// fp2Params does for an Fp2 value, by reaching down to an exported leaf
// *fp.Elt field.
func fp12Params(f *fptower.Fp12) *fp.Params { return f.C0.B0.A0.Params() }

// lineDouble computes the tangent line at r, advances r to 2r, and returns
// the line's evaluation coefficients a, b, c such that the line element in
// F_{p^12} is c + (a*v + b*v^2)*w. px, py are the fixed G1 (base-field) point's
// affine coordinates.
func lineDouble(r *twistPoint, px, py *fp.Elt) (a, b, c *fptower.Fp2, rOut *twistPoint) {
	pr := fp2Params(r.X)
	z2 := func() *fptower.Fp2 { return fptower.NewFp2(pr) }

	A := z2().Sqr(r.X)
	B := z2().Sqr(r.Y)
	C := z2().Sqr(B)

	D := z2().Add(r.X, B)
	D = z2().Sqr(D)
	D = z2().Sub(D, A)
	D = z2().Sub(D, C)
	D = z2().Add(D, D)

	E := z2().Add(z2().Add(A, A), A)
	G := z2().Sqr(E)

	rOut = &twistPoint{}
	rOut.X = z2().Sub(z2().Sub(G, D), D)

	rOut.Z = z2().Add(r.Y, r.Z)
	rOut.Z = z2().Sqr(rOut.Z)
	rOut.Z = z2().Sub(rOut.Z, B)
	rOut.Z = z2().Sub(rOut.Z, r.T)

	rOut.Y = z2().Sub(D, rOut.X)
	rOut.Y = z2().Mul(rOut.Y, E)
	t := z2().Add(C, C)
	t = z2().Add(t, t)
	t = z2().Add(t, t)
	rOut.Y = z2().Sub(rOut.Y, t)

	rOut.T = z2().Sqr(rOut.Z)

	t = z2().Mul(E, r.T)
	t = z2().Add(t, t)
	b = z2().Neg(t)
	b = z2().MulByElt(b, px)

	a = z2().Add(r.X, E)
	a = z2().Sqr(a)
	a = z2().Sub(a, A)
	a = z2().Sub(a, G)
	t = z2().Add(B, B)
	t = z2().Add(t, t)
	a = z2().Sub(a, t)

	c = z2().Mul(rOut.Z, r.T)
	c = z2().Add(c, c)
	c = z2().MulByElt(c, py)

	return a, b, c, rOut
}

// lineAdd computes the line through r and the fixed twist point (twistX,
// twistY), advances r to r+that point, and returns the line evaluation
// coefficients. px, py are the G1 point's affine coordinates; twistYSq is
// twistY^2, precomputed once by the caller since it is loop-invariant.
func lineAdd(r *twistPoint, twistX, twistY *fptower.Fp2, px, py *fp.Elt, twistYSq *fptower.Fp2) (a, b, c *fptower.Fp2, rOut *twistPoint) {
	pr := fp2Params(r.X)
	z2 := func() *fptower.Fp2 { return fptower.NewFp2(pr) }

	B := z2().Mul(twistX, r.T)

	D := z2().Add(twistY, r.Z)
	D = z2().Sqr(D)
	D = z2().Sub(D, twistYSq)
	D = z2().Sub(D, r.T)
	D = z2().Mul(D, r.T)

	H := z2().Sub(B, r.X)
	I := z2().Sqr(H)

	E := z2().Add(I, I)
	E = z2().Add(E, E)

	J := z2().Mul(H, E)

	L1 := z2().Sub(D, r.Y)
	L1 = z2().Sub(L1, r.Y)

	V := z2().Mul(r.X, E)

	rOut = &twistPoint{}
	rOut.X = z2().Sub(z2().Sub(z2().Sqr(L1), J), z2().Add(V, V))

	rOut.Z = z2().Add(r.Z, H)
	rOut.Z = z2().Sqr(rOut.Z)
	rOut.Z = z2().Sub(rOut.Z, r.T)
	rOut.Z = z2().Sub(rOut.Z, I)

	t := z2().Sub(V, rOut.X)
	t = z2().Mul(t, L1)
	t2 := z2().Mul(r.Y, J)
	t2 = z2().Add(t2, t2)
	rOut.Y = z2().Sub(t, t2)

	rOut.T = z2().Sqr(rOut.Z)

	t = z2().Add(twistY, rOut.Z)
	t = z2().Sqr(t)
	t = z2().Sub(t, twistYSq)
	t = z2().Sub(t, rOut.T)

	t2 = z2().Mul(L1, twistX)
	t2 = z2().Add(t2, t2)
	a = z2().Sub(t2, t)

	c = z2().MulByElt(rOut.Z, py)
	c = z2().Add(c, c)

	b = z2().Neg(L1)
	b = z2().MulByElt(b, px)
	b = z2().Add(b, b)

	return a, b, c, rOut
}

// mulLine multiplies ret by the sparse line element c + (a*v + b*v^2)*w,
// expressed as the Fp12 value {C0: (c,0,0), C1: (0,a,b)} and folded in via
// the already-general Fp12.Mul ;
// correctness here rides entirely on Fp12.Mul, already verified against
// the Karatsuba-over-Fp6 formula it implements.
func mulLine(ret *fptower.Fp12, a, b, c *fptower.Fp2) *fptower.Fp12 {
	pr := fp2Params(a)

	line := &fptower.Fp12{
		C0: &fptower.Fp6{B0: c, B1: fptower.NewFp2(pr), B2: fptower.NewFp2(pr)},
		C1: &fptower.Fp6{B0: fptower.NewFp2(pr), B1: a, B2: b},
	}

	return fptower.NewFp12(pr).Mul(ret, line)
}

// twistAffineOne builds the Fp2 multiplicative identity for the tower
// backed by pr, used to seed a twistPoint's Z and T coordinates from an
// affine (Z=1) G2 point.
func twistAffineOne(pr *fp.Params) *fptower.Fp2 {
	one := fptower.NewFp2(pr)
	one.A0 = fp.One(pr)
	return one
}

// MillerLoop runs the optimal-ate Miller loop: double-and-add over loopNAF
// (a signed non-adjacent-form digit sequence stored least-significant digit
// first and walked from its last index down) accumulating line evaluations
// against the fixed G1 affine point
// (g1x, g1y), starting from the G2 affine point (g2x, g2y). extraAdds
// supplies the curve-family-specific tail addition steps some optimal-ate
// pairings need (e.g. BN curves add the Frobenius twist of Q and the
// negated Frobenius^2 twist after the main loop); families that need no
// such steps (e.g. BLS12-381) pass nil.
func MillerLoop(loopNAF []int8, g1x, g1y *fp.Elt, g2x, g2y *fptower.Fp2, extraAdds []struct{ X, Y *fptower.Fp2 }) *fptower.Fp12 {
	pr := fp2Params(g2x)

	one := twistAffineOne(pr)
	r := &twistPoint{X: g2x.Copy(), Y: g2y.Copy(), Z: one.Copy(), T: one.Copy()}

	ret := fptower.One12(pr)

	g2ySq := fptower.NewFp2(pr).Sqr(g2y)
	minusG2Y := fptower.NewFp2(pr).Neg(g2y)

	for i := len(loopNAF) - 1; i > 0; i-- {
		a, b, c, newR := lineDouble(r, g1x, g1y)
		if i != len(loopNAF)-1 {
			ret = fptower.NewFp12(pr).Sqr(ret)
		}

		ret = mulLine(ret, a, b, c)
		r = newR

		switch loopNAF[i-1] {
		case 1:
			a, b, c, newR = lineAdd(r, g2x, g2y, g1x, g1y, g2ySq)
			ret = mulLine(ret, a, b, c)
			r = newR
		case -1:
			a, b, c, newR = lineAdd(r, g2x, minusG2Y, g1x, g1y, g2ySq)
			ret = mulLine(ret, a, b, c)
			r = newR
		}
	}

	for _, extra := range extraAdds {
		extraYSq := fptower.NewFp2(pr).Sqr(extra.Y)
		a, b, c, newR := lineAdd(r, extra.X, extra.Y, g1x, g1y, extraYSq)
		ret = mulLine(ret, a, b, c)
		r = newR
	}

	return ret
}

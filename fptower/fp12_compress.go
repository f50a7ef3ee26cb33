// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fptower

import (
	"fmt"

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/internal/errs"
)

// Compressed holds four of the six F_{p^2} coordinates of a cyclotomic
// F_{p^12} element, in the layout C0 = (z0, z4, z3), C1 = (z2, z1, z5).
// z0 and z5 are dropped;
// Decompress recovers both from the norm-one subgroup relation
// c0^2 - v*c1^2 = 1 (v the F_{p^6} element adjoined to build F_{p^12}).
type Compressed struct {
	G1, G2, G3, G4 *Fp2 // z1, z2, z3, z4
}

// Compress extracts the Karabina-style compressed representation of a. a
// must already lie in the cyclotomic subgroup (the norm-one elements
// reached after final exponentiation's easy part) — a caller invariant,
// not checked here.
func Compress(a *Fp12) *Compressed {
	return &Compressed{
		G1: a.C1.B1.Copy(), // z1
		G2: a.C1.B0.Copy(), // z2
		G3: a.C0.B2.Copy(), // z3
		G4: a.C0.B1.Copy(), // z4
	}
}

// Decompress recovers the full Fp12 value from a Compressed element. It
// returns ErrNoValid if the compressed coordinates do not satisfy the
// cyclotomic norm-one relation for any choice of z0, z5 (no square root
// exists), or if z4 is zero (the degenerate case this routine does not
// handle — z4 == 0 only arises from the identity-adjacent slice of the
// subgroup and callers fall back to the uncompressed accumulator there).
func Decompress(c *Compressed) (*Fp12, error) {
	pr := c.G1.params()

	z1, z2, z3, z4 := c.G1, c.G2, c.G3, c.G4

	if z4.IsZero() {
		return nil, fmt.Errorf("fptower: decompress: %w", errs.ErrNoValid)
	}

	two := fp.FromInt64(pr, 2)
	twoFp2 := &Fp2{A0: two, A1: fp.Zero(pr)}

	twoZ4, err := NewFp2(pr).Inv(NewFp2(pr).Mul(twoFp2, z4))
	if err != nil {
		return nil, fmt.Errorf("fptower: decompress: %w", err)
	}

	// z0 = P + Q*z5, from 2*z0*z4 + xi*z3^2 = z2^2 + 2*xi*z1*z5.
	k := NewFp2(pr).Sub(NewFp2(pr).Sqr(z2), NewFp2(pr).MulByNonResidue(NewFp2(pr).Sqr(z3)))
	p := NewFp2(pr).Mul(k, twoZ4)

	a := NewFp2(pr).MulByNonResidue(z1)
	q := NewFp2(pr).Mul(a, twoZ4)
	q.Add(q, q)

	// Quadratic in z5: Q^2*z5^2 + (2PQ - 2*xi*z2)*z5 + (P^2 + 2*xi*z4*z3 - 1 - xi*z1^2) = 0.
	aCoef := NewFp2(pr).Sqr(q)

	bCoef := NewFp2(pr).Mul(p, q)
	bCoef.Add(bCoef, bCoef)
	xiZ2 := NewFp2(pr).MulByNonResidue(z2)
	bCoef.Sub(bCoef, xiZ2)
	bCoef.Sub(bCoef, xiZ2)

	cCoef := NewFp2(pr).Sqr(p)
	xiZ4Z3 := NewFp2(pr).MulByNonResidue(NewFp2(pr).Mul(z4, z3))
	cCoef.Add(cCoef, xiZ4Z3)
	cCoef.Add(cCoef, xiZ4Z3)
	one := &Fp2{A0: fp.One(pr), A1: fp.Zero(pr)}
	cCoef.Sub(cCoef, one)
	xiZ1Sq := NewFp2(pr).MulByNonResidue(NewFp2(pr).Sqr(z1))
	cCoef.Sub(cCoef, xiZ1Sq)

	if aCoef.IsZero() {
		return nil, fmt.Errorf("fptower: decompress: %w", errs.ErrNoValid)
	}

	// discriminant = b^2 - 4ac
	disc := NewFp2(pr).Sqr(bCoef)
	four := NewFp2(pr).Mul(twoFp2, twoFp2)
	fourAC := NewFp2(pr).Mul(four, NewFp2(pr).Mul(aCoef, cCoef))
	disc.Sub(disc, fourAC)

	sqrtDisc, ok := fp2Sqrt(disc)
	if !ok {
		return nil, fmt.Errorf("fptower: decompress: %w", errs.ErrNoValid)
	}

	twoA, err := NewFp2(pr).Inv(NewFp2(pr).Mul(twoFp2, aCoef))
	if err != nil {
		return nil, fmt.Errorf("fptower: decompress: %w", err)
	}

	numer := NewFp2(pr).Neg(bCoef)
	numer.Add(numer, sqrtDisc)
	z5 := NewFp2(pr).Mul(numer, twoA)

	z0 := NewFp2(pr).Mul(q, z5)
	z0.Add(z0, p)

	out := NewFp12(pr)
	out.C0 = &Fp6{B0: z0, B1: z4.Copy(), B2: z3.Copy()}
	out.C1 = &Fp6{B0: z2.Copy(), B1: z1.Copy(), B2: z5}

	if !NewFp12(pr).Mul(out, NewFp12(pr).Conjugate(out)).Equal(One12(pr)) {
		numer.Sub(numer, sqrtDisc)
		numer.Sub(numer, sqrtDisc)
		z5 = NewFp2(pr).Mul(numer, twoA)
		z0 = NewFp2(pr).Mul(q, z5)
		z0.Add(z0, p)
		out.C0.B0, out.C1.B2 = z0, z5
	}

	return out, nil
}

// fp2Sqrt computes a square root of a in F_{p^2} via the norm-reduction
// method (Scott's complex-square-root trick): delta = sqrt(Norm(a)) in
// F_p, then x0 = sqrt((a0±delta)/2), x1 = a1/(2*x0). Returns (root, true)
// if a is a square, (nil, false) otherwise.
func fp2Sqrt(a *Fp2) (*Fp2, bool) {
	pr := a.params()
	qnr := fp.FromBig(pr, pr.QNR())

	if a.A1.IsZero() {
		if r, ok := fp.Zero(pr).Sqrt(a.A0); ok {
			return &Fp2{A0: r, A1: fp.Zero(pr)}, true
		}

		qnrInv, err := fp.Zero(pr).Inv(qnr)
		if err != nil {
			return nil, false
		}

		cand := fp.Zero(pr).Mul(a.A0, qnrInv)

		r, ok := fp.Zero(pr).Sqrt(cand)
		if !ok {
			return nil, false
		}

		return &Fp2{A0: fp.Zero(pr), A1: r}, true
	}

	a0Sq := fp.Zero(pr).Sqr(a.A0)
	a1Sq := fp.Zero(pr).Sqr(a.A1)
	qnrA1Sq := fp.Zero(pr).Mul(qnr, a1Sq)

	norm := fp.Zero(pr).Sub(a0Sq, qnrA1Sq)

	delta, ok := fp.Zero(pr).Sqrt(norm)
	if !ok {
		return nil, false
	}

	two := fp.FromInt64(pr, 2)
	twoInv, err := fp.Zero(pr).Inv(two)
	if err != nil {
		return nil, false
	}

	t := fp.Zero(pr).Add(a.A0, delta)
	t.Mul(t, twoInv)

	x0, ok := fp.Zero(pr).Sqrt(t)
	if !ok {
		t2 := fp.Zero(pr).Sub(a.A0, delta)
		t2.Mul(t2, twoInv)

		x0, ok = fp.Zero(pr).Sqrt(t2)
		if !ok {
			return nil, false
		}
	}

	x0Inv, err := fp.Zero(pr).Inv(x0)
	if err != nil {
		return nil, false
	}

	x1 := fp.Zero(pr).Mul(a.A1, twoInv)
	x1.Mul(x1, x0Inv)

	return &Fp2{A0: x0, A1: x1}, true
}

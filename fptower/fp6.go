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

// Fp6 is an element b0 + b1*v + b2*v^2 of F_{p^6}, a cubic extension of
// F_{p^2} with v^3 = xi. Grounded on the B0/B1/B2 E2-triple shape a gnark-style
// pairing precompile uses for its E6 (observed through the sparse 034/01234
// line-multiplication helpers in the pairing engine this module's `pairing`
// package is grounded on).
type Fp6 struct {
	B0, B1, B2 *Fp2
}

// NewFp6 returns the zero element of F_{p^6} over params.
func NewFp6(params *fp.Params) *Fp6 {
	return &Fp6{B0: NewFp2(params), B1: NewFp2(params), B2: NewFp2(params)}
}

func (z *Fp6) params() *fp.Params { return z.B0.params() }

// Set sets z = a and returns z.
func (z *Fp6) Set(a *Fp6) *Fp6 {
	z.B0 = a.B0.Copy()
	z.B1 = a.B1.Copy()
	z.B2 = a.B2.Copy()
	return z
}

// Copy returns a new Fp6 with the same value.
func (z *Fp6) Copy() *Fp6 { return NewFp6(z.params()).Set(z) }

// IsZero reports whether z is the additive identity.
func (z *Fp6) IsZero() bool { return z.B0.IsZero() && z.B1.IsZero() && z.B2.IsZero() }

// Add sets z = a + b and returns z.
func (z *Fp6) Add(a, b *Fp6) *Fp6 {
	z.B0 = NewFp2(a.params()).Add(a.B0, b.B0)
	z.B1 = NewFp2(a.params()).Add(a.B1, b.B1)
	z.B2 = NewFp2(a.params()).Add(a.B2, b.B2)
	return z
}

// Sub sets z = a - b and returns z.
func (z *Fp6) Sub(a, b *Fp6) *Fp6 {
	z.B0 = NewFp2(a.params()).Sub(a.B0, b.B0)
	z.B1 = NewFp2(a.params()).Sub(a.B1, b.B1)
	z.B2 = NewFp2(a.params()).Sub(a.B2, b.B2)
	return z
}

// Neg sets z = -a and returns z.
func (z *Fp6) Neg(a *Fp6) *Fp6 {
	z.B0 = NewFp2(a.params()).Neg(a.B0)
	z.B1 = NewFp2(a.params()).Neg(a.B1)
	z.B2 = NewFp2(a.params()).Neg(a.B2)
	return z
}

// MulByNonResidue sets z = a * v, v the cube root of the F_{p^2}-non-residue
// xi that closes F_{p^6}: (b0 + b1 v + b2 v^2) * v = b2*xi + b0 v + b1 v^2.
func (z *Fp6) MulByNonResidue(a *Fp6) *Fp6 {
	pr := a.params()
	b0 := NewFp2(pr).MulByNonResidue(a.B2)
	z.B0, z.B1, z.B2 = b0, a.B0.Copy(), a.B1.Copy()
	return z
}

// Mul sets z = a*b via the Devegili-Scott degree-3 Karatsuba-style formulas
// and returns z.
func (z *Fp6) Mul(a, b *Fp6) *Fp6 {
	pr := a.params()

	t0 := NewFp2(pr).Mul(a.B0, b.B0)
	t1 := NewFp2(pr).Mul(a.B1, b.B1)
	t2 := NewFp2(pr).Mul(a.B2, b.B2)

	// c0 = t0 + xi*((a1+a2)(b1+b2) - t1 - t2)
	c0 := NewFp2(pr).Add(a.B1, a.B2)
	tmp := NewFp2(pr).Add(b.B1, b.B2)
	c0.Mul(c0, tmp)
	c0.Sub(c0, t1)
	c0.Sub(c0, t2)
	c0.MulByNonResidue(c0)
	c0.Add(c0, t0)

	// c1 = (a0+a1)(b0+b1) - t0 - t1 + xi*t2
	c1 := NewFp2(pr).Add(a.B0, a.B1)
	tmp.Add(b.B0, b.B1)
	c1.Mul(c1, tmp)
	c1.Sub(c1, t0)
	c1.Sub(c1, t1)
	xiT2 := NewFp2(pr).MulByNonResidue(t2)
	c1.Add(c1, xiT2)

	// c2 = (a0+a2)(b0+b2) - t0 - t2 + t1
	c2 := NewFp2(pr).Add(a.B0, a.B2)
	tmp.Add(b.B0, b.B2)
	c2.Mul(c2, tmp)
	c2.Sub(c2, t0)
	c2.Sub(c2, t2)
	c2.Add(c2, t1)

	z.B0, z.B1, z.B2 = c0, c1, c2

	return z
}

// Sqr sets z = a*a by calling Mul(a, a) and returns z; there is no
// dedicated squaring formula.
func (z *Fp6) Sqr(a *Fp6) *Fp6 { return z.Mul(a, a) }

// MulBy01 sets z = a*(c0 + c1*v) for a sparse element with zero b2
// coordinate, the shape of a Miller-loop line function lifted into F_{p^6}
// before the final F_{p^12} dense-by-sparse multiply.
func (z *Fp6) MulBy01(a *Fp6, c0, c1 *Fp2) *Fp6 {
	pr := a.params()

	t0 := NewFp2(pr).Mul(a.B0, c0)
	t1 := NewFp2(pr).Mul(a.B1, c1)

	rc0 := NewFp2(pr).Add(a.B1, a.B2)
	rc0.Mul(rc0, c1)
	rc0.Sub(rc0, t1)
	rc0.MulByNonResidue(rc0)
	rc0.Add(rc0, t0)

	rc1 := NewFp2(pr).Add(a.B0, a.B1)
	tmp := NewFp2(pr).Add(c0, c1)
	rc1.Mul(rc1, tmp)
	rc1.Sub(rc1, t0)
	rc1.Sub(rc1, t1)

	rc2 := NewFp2(pr).Add(a.B0, a.B2)
	rc2.Mul(rc2, c0)
	rc2.Sub(rc2, t0)
	rc2.Add(rc2, t1)

	z.B0, z.B1, z.B2 = rc0, rc1, rc2

	return z
}

// Inv sets z = a^-1 and returns (z, nil), or ErrNoValid if a is zero.
func (z *Fp6) Inv(a *Fp6) (*Fp6, error) {
	if a.IsZero() {
		return z, fmt.Errorf("fptower: fp6 inv: %w", errs.ErrNoValid)
	}

	pr := a.params()

	t0 := NewFp2(pr).Sqr(a.B0)
	t1 := NewFp2(pr).Sqr(a.B1)
	t2 := NewFp2(pr).Sqr(a.B2)

	t3 := NewFp2(pr).Mul(a.B0, a.B1)
	t4 := NewFp2(pr).Mul(a.B0, a.B2)
	t5 := NewFp2(pr).Mul(a.B1, a.B2)

	c0 := NewFp2(pr).MulByNonResidue(t5)
	c0.Neg(c0)
	c0.Add(c0, t0)

	c1 := NewFp2(pr).MulByNonResidue(t2)
	c1.Sub(c1, t3)

	c2 := NewFp2(pr).Sub(t1, t4)

	det := NewFp2(pr).Mul(a.B2, c1)
	tmp := NewFp2(pr).Mul(a.B1, c2)
	det.Add(det, tmp)
	det.MulByNonResidue(det)
	tmp.Mul(a.B0, c0)
	det.Add(det, tmp)

	detInv, err := NewFp2(pr).Inv(det)
	if err != nil {
		return z, fmt.Errorf("fptower: fp6 inv: %w", err)
	}

	z.B0 = NewFp2(pr).Mul(c0, detInv)
	z.B1 = NewFp2(pr).Mul(c1, detInv)
	z.B2 = NewFp2(pr).Mul(c2, detInv)

	return z, nil
}

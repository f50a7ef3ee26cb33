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
	"math/big"

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/internal/errs"
)

// Fp12 is an element c0 + c1*w of F_{p^12}, a quadratic extension of
// F_{p^6} with w^2 = v. This is the target field of the
// Miller loop for every k=12 family in scope (BN254, BLS12-381), and the
// shape (C0, C1 each an Fp6) mirrors the E12{C0, C1 E6} layout observed in
// the gnark-style pairing engine this package's Miller-loop caller
// (package pairing) is grounded on.
type Fp12 struct {
	C0, C1 *Fp6
}

// NewFp12 returns the zero element of F_{p^12} over params.
func NewFp12(params *fp.Params) *Fp12 {
	return &Fp12{C0: NewFp6(params), C1: NewFp6(params)}
}

// One12 returns the multiplicative identity of F_{p^12} over params.
func One12(params *fp.Params) *Fp12 {
	z := NewFp12(params)
	z.C0.B0 = NewFp2(params)
	z.C0.B0.A0 = fp.One(params)
	return z
}

func (z *Fp12) params() *fp.Params { return z.C0.params() }

// Params returns the base-field parameters backing z, for callers outside
// this package (e.g. package delegate) that need to build fresh Fp12/Fp2
// values of the same field without threading params through separately.
func (z *Fp12) Params() *fp.Params { return z.params() }

// Set sets z = a and returns z.
func (z *Fp12) Set(a *Fp12) *Fp12 {
	z.C0 = a.C0.Copy()
	z.C1 = a.C1.Copy()
	return z
}

// Copy returns a new Fp12 with the same value.
func (z *Fp12) Copy() *Fp12 { return NewFp12(z.params()).Set(z) }

// IsZero reports whether z is the additive identity.
func (z *Fp12) IsZero() bool { return z.C0.IsZero() && z.C1.IsZero() }

// Equal reports whether z and o hold the same value.
func (z *Fp12) Equal(o *Fp12) bool {
	return z.C0.B0.Equal(o.C0.B0) && z.C0.B1.Equal(o.C0.B1) && z.C0.B2.Equal(o.C0.B2) &&
		z.C1.B0.Equal(o.C1.B0) && z.C1.B1.Equal(o.C1.B1) && z.C1.B2.Equal(o.C1.B2)
}

// Add sets z = a + b and returns z.
func (z *Fp12) Add(a, b *Fp12) *Fp12 {
	z.C0 = NewFp6(a.params()).Add(a.C0, b.C0)
	z.C1 = NewFp6(a.params()).Add(a.C1, b.C1)
	return z
}

// Sub sets z = a - b and returns z.
func (z *Fp12) Sub(a, b *Fp12) *Fp12 {
	z.C0 = NewFp6(a.params()).Sub(a.C0, b.C0)
	z.C1 = NewFp6(a.params()).Sub(a.C1, b.C1)
	return z
}

// Neg sets z = -a and returns z.
func (z *Fp12) Neg(a *Fp12) *Fp12 {
	z.C0 = NewFp6(a.params()).Neg(a.C0)
	z.C1 = NewFp6(a.params()).Neg(a.C1)
	return z
}

// Conjugate sets z = c0 - c1*w (the F_{p^12}/F_{p^6} Galois conjugate used
// by cyclotomic inversion) and returns z.
func (z *Fp12) Conjugate(a *Fp12) *Fp12 {
	z.C0 = a.C0.Copy()
	z.C1 = NewFp6(a.params()).Neg(a.C1)
	return z
}

// Mul sets z = a*b via Karatsuba over F_{p^6} and returns z.
func (z *Fp12) Mul(a, b *Fp12) *Fp12 {
	pr := a.params()

	t0 := NewFp6(pr).Mul(a.C0, b.C0)
	t1 := NewFp6(pr).Mul(a.C1, b.C1)

	c0 := NewFp6(pr).MulByNonResidue(t1)
	c0.Add(c0, t0)

	c1 := NewFp6(pr).Add(a.C0, a.C1)
	tmp := NewFp6(pr).Add(b.C0, b.C1)
	c1.Mul(c1, tmp)
	c1.Sub(c1, t0)
	c1.Sub(c1, t1)

	z.C0, z.C1 = c0, c1

	return z
}

// Sqr sets z = a*a via complex squaring over F_{p^6} and returns z.
func (z *Fp12) Sqr(a *Fp12) *Fp12 {
	pr := a.params()

	c0c1 := NewFp6(pr).Add(a.C0, a.C1)
	c0NrC1 := NewFp6(pr).MulByNonResidue(a.C1)
	c0NrC1.Add(c0NrC1, a.C0)

	tmp := NewFp6(pr).Mul(c0c1, c0NrC1)
	c0c1Prod := NewFp6(pr).Mul(a.C0, a.C1)

	c0 := NewFp6(pr).MulByNonResidue(c0c1Prod)
	c0.Neg(c0)
	c0.Add(c0, tmp)
	c0.Sub(c0, c0c1Prod)

	c1 := NewFp6(pr).Add(c0c1Prod, c0c1Prod)

	z.C0, z.C1 = c0, c1

	return z
}

// CyclotomicSqr sets z = a*a using the Granger-Scott squaring formula valid
// only when a is known to lie in the cyclotomic subgroup (the image of
// x -> x^(p^6-1) reached right after the easy part of final exponentiation,
// where the dedicated faster squaring applies), and returns z. Callers
// outside package pairing's final-exponentiation hard part should use Sqr.
func (z *Fp12) CyclotomicSqr(a *Fp12) *Fp12 {
	pr := a.params()

	z0 := a.C0.B0
	z4 := a.C0.B1
	z3 := a.C0.B2
	z2 := a.C1.B0
	z1 := a.C1.B1
	z5 := a.C1.B2

	t0, t1 := NewFp2(pr), NewFp2(pr)
	t2, t3 := NewFp2(pr), NewFp2(pr)
	t4, t5 := NewFp2(pr), NewFp2(pr)
	tmp := NewFp2(pr)

	// t0+t1*w = (z0+z1*w)^2 in F_{p^4} built over F_{p^2} with w^2=xi.
	sqr2 := func(dst0, dst1, a0, a1 *Fp2) {
		t := NewFp2(pr).Mul(a0, a1)
		c0 := NewFp2(pr).Add(a0, a1)
		tmp2 := NewFp2(pr).MulByNonResidue(a1)
		tmp2.Add(tmp2, a0)
		c0.Mul(c0, tmp2)
		c0.Sub(c0, t)
		nrT := NewFp2(pr).MulByNonResidue(t)
		c0.Sub(c0, nrT)
		c1 := NewFp2(pr).Add(t, t)
		dst0.Set(c0)
		dst1.Set(c1)
	}

	sqr2(t0, t1, z0, z1)
	sqr2(t2, t3, z2, z3)
	sqr2(t4, t5, z4, z5)

	// z0 = 3*t0 - 2*z0
	tmp.Set(t0)
	tmp.Sub(tmp, z0)
	tmp.Add(tmp, tmp)
	z0n := NewFp2(pr).Add(t0, tmp)

	// z1 = 3*t1 + 2*z1
	tmp.Set(t1)
	tmp.Add(tmp, z1)
	tmp.Add(tmp, tmp)
	z1n := NewFp2(pr).Add(t1, tmp)

	// z2 = 3*(xi*t5) + 2*z2
	nrT5 := NewFp2(pr).MulByNonResidue(t5)
	tmp.Set(nrT5)
	tmp.Add(tmp, z2)
	tmp.Add(tmp, tmp)
	z2n := NewFp2(pr).Add(nrT5, tmp)

	// z3 = 3*t4 - 2*z3
	tmp.Set(t4)
	tmp.Sub(tmp, z3)
	tmp.Add(tmp, tmp)
	z3n := NewFp2(pr).Add(t4, tmp)

	// z4 = 3*t2 - 2*z4
	tmp.Set(t2)
	tmp.Sub(tmp, z4)
	tmp.Add(tmp, tmp)
	z4n := NewFp2(pr).Add(t2, tmp)

	// z5 = 3*t3 + 2*z5
	tmp.Set(t3)
	tmp.Add(tmp, z5)
	tmp.Add(tmp, tmp)
	z5n := NewFp2(pr).Add(t3, tmp)

	z.C0 = &Fp6{B0: z0n, B1: z4n, B2: z3n}
	z.C1 = &Fp6{B0: z2n, B1: z1n, B2: z5n}

	return z
}

// Inv sets z = a^-1 and returns (z, nil), or ErrNoValid if a is zero:
// a^-1 = conj(a) / Norm(a), Norm(a) = (c0^2 - v*c1^2 in F_{p^6}).
func (z *Fp12) Inv(a *Fp12) (*Fp12, error) {
	pr := a.params()

	c0Sq := NewFp6(pr).Sqr(a.C0)
	c1Sq := NewFp6(pr).Sqr(a.C1)
	nrC1Sq := NewFp6(pr).MulByNonResidue(c1Sq)

	norm := NewFp6(pr).Sub(c0Sq, nrC1Sq)
	if norm.IsZero() {
		return z, fmt.Errorf("fptower: fp12 inv: %w", errs.ErrNoValid)
	}

	normInv, err := NewFp6(pr).Inv(norm)
	if err != nil {
		return z, fmt.Errorf("fptower: fp12 inv: %w", err)
	}

	z.C0 = NewFp6(pr).Mul(a.C0, normInv)
	z.C1 = NewFp6(pr).Neg(NewFp6(pr).Mul(a.C1, normInv))

	return z, nil
}

// CyclotomicInv sets z = a^-1 = conj(a) for a known to already lie on the
// norm-one cyclotomic subgroup , and
// returns z; far cheaper than the general Inv above because no F_{p^6}
// inversion is needed.
func (z *Fp12) CyclotomicInv(a *Fp12) *Fp12 { return z.Conjugate(a) }

// Frobenius sets z = a^p using the precomputed gamma constants for degree
// 12 and returns z. gamma must hold the five F_{p^2} Frobenius
// coefficients for this field's prime, computed once by package params at
// context construction.
func (z *Fp12) Frobenius(a *Fp12, gamma *FrobeniusConstants) *Fp12 {
	pr := a.params()

	conjB0 := NewFp2(pr).Conjugate(a.C0.B0)
	conjB1 := NewFp2(pr).Conjugate(a.C0.B1)
	conjB2 := NewFp2(pr).Conjugate(a.C0.B2)
	conjD0 := NewFp2(pr).Conjugate(a.C1.B0)
	conjD1 := NewFp2(pr).Conjugate(a.C1.B1)
	conjD2 := NewFp2(pr).Conjugate(a.C1.B2)

	z.C0 = &Fp6{
		B0: conjB0,
		B1: NewFp2(pr).Mul(conjB1, gamma.Gamma[1]),
		B2: NewFp2(pr).Mul(conjB2, gamma.Gamma[3]),
	}
	z.C1 = &Fp6{
		B0: NewFp2(pr).Mul(conjD0, gamma.Gamma[0]),
		B1: NewFp2(pr).Mul(conjD1, gamma.Gamma[2]),
		B2: NewFp2(pr).Mul(conjD2, gamma.Gamma[4]),
	}

	return z
}

// Exp sets z = a^e via plain right-to-left square-and-multiply and returns
// z. Used by the final-exponentiation hard part (package pairing) to raise
// the easy-part output to the curve seed u; callers who know a already lies
// in the cyclotomic subgroup may get a faster equivalent result by repeating
// CyclotomicSqr/Mul manually instead of calling this.
func (z *Fp12) Exp(a *Fp12, e *big.Int) *Fp12 {
	result := One12(a.params())
	base := a.Copy()

	abs := new(big.Int).Abs(e)

	for i := 0; i < abs.BitLen(); i++ {
		if abs.Bit(i) == 1 {
			result.Mul(result, base)
		}

		base.Sqr(base)
	}

	if e.Sign() < 0 {
		inv, err := NewFp12(a.params()).Inv(result)
		if err == nil {
			result = inv
		}
	}

	z.Set(result)

	return z
}

// FrobeniusConstants holds the per-prime gamma_{i,j} = xi^((p^i-1)*j/6)
// Frobenius coefficients needed for degree-12 Frobenius, computed once at
// field initialisation and stored on the curve/pairing context (package
// params).
type FrobeniusConstants struct {
	Gamma [5]*Fp2
}

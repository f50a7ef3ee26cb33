// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package fptower implements the extension-field tower F_{p^2} through
// F_{p^48}: Karatsuba at every degree-2 step, Devegili-Scott at degree-3
// steps, Frobenius via precomputed gamma constants, and the
// cyclotomic-subgroup squaring/compression used by the final
// exponentiation in package pairing.
//
// Fp2/Fp6/Fp12 are hand-specialised (the path every BN254/BLS12-381-style
// curve in scope actually uses), ported from the in-circuit emulated E2/E6/
// E12 arithmetic of a gnark-style pairing precompile into native fp.Elt
// arithmetic. The generic degree-2/degree-3 lifts in ext.go serve the rarer
// towers instead of hand-optimised code; of those only F_{p^18} is
// instantiated (fp18.go), and F_{p^3}, F_{p^4}, F_{p^8}, F_{p^24} and
// F_{p^48} have no type in this package.
package fptower

import (
	"fmt"
	"math/big"

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/internal/errs"
)

// Fp2 is an element a0 + a1*i of F_{p^2}, i^2 = qnr.
type Fp2 struct {
	A0, A1 *fp.Elt
}

// NewFp2 returns the zero element of F_{p^2} over params.
func NewFp2(params *fp.Params) *Fp2 {
	return &Fp2{A0: fp.Zero(params), A1: fp.Zero(params)}
}

func (z *Fp2) params() *fp.Params { return z.A0.Params() }

// Params returns the base-field parameters backing z, for callers outside
// this package (e.g. package serialize, package delegate) that need to
// construct fresh Fp2 values of the same field.
func (z *Fp2) Params() *fp.Params { return z.params() }

// Set sets z = a and returns z.
func (z *Fp2) Set(a *Fp2) *Fp2 {
	z.A0 = fp.Zero(a.params()).Set(a.A0)
	z.A1 = fp.Zero(a.params()).Set(a.A1)
	return z
}

// Copy returns a new Fp2 with the same value.
func (z *Fp2) Copy() *Fp2 { return NewFp2(z.params()).Set(z) }

// IsZero reports whether z is the additive identity.
func (z *Fp2) IsZero() bool { return z.A0.IsZero() && z.A1.IsZero() }

// Equal reports whether z and o hold the same value.
func (z *Fp2) Equal(o *Fp2) bool { return z.A0.Equal(o.A0) && z.A1.Equal(o.A1) }

// Add sets z = a + b and returns z.
func (z *Fp2) Add(a, b *Fp2) *Fp2 {
	z.A0 = fp.Zero(a.params()).Add(a.A0, b.A0)
	z.A1 = fp.Zero(a.params()).Add(a.A1, b.A1)
	return z
}

// Sub sets z = a - b and returns z.
func (z *Fp2) Sub(a, b *Fp2) *Fp2 {
	z.A0 = fp.Zero(a.params()).Sub(a.A0, b.A0)
	z.A1 = fp.Zero(a.params()).Sub(a.A1, b.A1)
	return z
}

// Neg sets z = -a and returns z.
func (z *Fp2) Neg(a *Fp2) *Fp2 {
	z.A0 = fp.Zero(a.params()).Neg(a.A0)
	z.A1 = fp.Zero(a.params()).Neg(a.A1)
	return z
}

// Conjugate sets z = a0 - a1*i (the nontrivial F_{p^2}/F_p Galois
// automorphism, i.e. Frobenius at degree 2) and returns z.
func (z *Fp2) Conjugate(a *Fp2) *Fp2 {
	z.A0 = fp.Zero(a.params()).Set(a.A0)
	z.A1 = fp.Zero(a.params()).Neg(a.A1)
	return z
}

// MulByNonResidue sets z = a * i and returns z, where i^2 = qnr. Since
// i*i = qnr, a*i = a0*i + a1*i^2 = a1*qnr + a0*i.
func (z *Fp2) MulByNonResidue(a *Fp2) *Fp2 {
	pr := a.params()
	qnr := fp.FromBig(pr, pr.QNR())

	a0 := fp.Zero(pr).Mul(a.A1, qnr)
	a1 := fp.Zero(pr).Set(a.A0)

	z.A0, z.A1 = a0, a1

	return z
}

// Mul sets z = a*b via Karatsuba and returns z: (a0+a1 i)(b0+b1 i) = (a0 b0 - a1 b1) + ((a0+a1)(b0+b1) - a0 b0 - a1 b1) i,
// with the `-a1 b1` cross term folded through the non-residue.
func (z *Fp2) Mul(a, b *Fp2) *Fp2 {
	pr := a.params()
	qnr := fp.FromBig(pr, pr.QNR())

	ac := fp.Zero(pr).Mul(a.A0, b.A0)
	bd := fp.Zero(pr).Mul(a.A1, b.A1)

	aPlusB := fp.Zero(pr).Add(a.A0, a.A1)
	cPlusD := fp.Zero(pr).Add(b.A0, b.A1)
	cross := fp.Zero(pr).Mul(aPlusB, cPlusD)
	cross.Sub(cross, ac)
	cross.Sub(cross, bd)

	bdNr := fp.Zero(pr).Mul(bd, qnr)

	z.A0 = fp.Zero(pr).Add(ac, bdNr)
	z.A1 = cross

	return z
}

// Sqr sets z = a*a via the Complex-method squaring (the degree-2
// specialisation of Karatsuba squaring) and returns z.
func (z *Fp2) Sqr(a *Fp2) *Fp2 {
	pr := a.params()
	qnr := fp.FromBig(pr, pr.QNR())

	sum := fp.Zero(pr).Add(a.A0, a.A1)
	diff := fp.Zero(pr).Sub(a.A0, a.A1)

	a0a1 := fp.Zero(pr).Mul(a.A0, a.A1)

	c0 := fp.Zero(pr).Mul(sum, diff)
	// sum*diff = a0^2 - a1^2; we want a0^2 + qnr*a1^2, so add back (qnr+1)*a1^2.
	a1Sq := fp.Zero(pr).Sqr(a.A1)
	adj := fp.Zero(pr).Mul(a1Sq, fp.Zero(pr).Add(qnr, fp.One(pr)))
	c0.Add(c0, adj)

	c1 := fp.Zero(pr).Dbl(a0a1)

	z.A0, z.A1 = c0, c1

	return z
}

// MulByElt sets z = a*c for a scalar c in the base field F_p and returns z.
func (z *Fp2) MulByElt(a *Fp2, c *fp.Elt) *Fp2 {
	z.A0 = fp.Zero(a.params()).Mul(a.A0, c)
	z.A1 = fp.Zero(a.params()).Mul(a.A1, c)
	return z
}

// Inv sets z = a^-1 and returns (z, nil), or returns ErrNoValid when a is
// zero: a^-1 = conj(a) / (a0^2 - qnr*a1^2).
func (z *Fp2) Inv(a *Fp2) (*Fp2, error) {
	if a.IsZero() {
		return z, fmt.Errorf("fptower: fp2 inv: %w", errs.ErrNoValid)
	}

	pr := a.params()
	qnr := fp.FromBig(pr, pr.QNR())

	a0Sq := fp.Zero(pr).Sqr(a.A0)
	a1Sq := fp.Zero(pr).Sqr(a.A1)
	a1SqNr := fp.Zero(pr).Mul(a1Sq, qnr)

	norm := fp.Zero(pr).Sub(a0Sq, a1SqNr)

	normInv, err := fp.Zero(pr).Inv(norm)
	if err != nil {
		return z, fmt.Errorf("fptower: fp2 inv: %w", err)
	}

	z.A0 = fp.Zero(pr).Mul(a.A0, normInv)
	z.A1 = fp.Zero(pr).Neg(fp.Zero(pr).Mul(a.A1, normInv))

	return z, nil
}

// Frobenius sets z = a^p = conj(a) (the F_{p^2} Frobenius is exactly
// conjugation) and returns z.
func (z *Fp2) Frobenius(a *Fp2) *Fp2 { return z.Conjugate(a) }

// Exp sets z = a^e via right-to-left square-and-multiply and returns z.
// Used by package params to compute the degree-12 Frobenius gamma
// constants (xi raised to the per-prime exponents) from the field's own
// quadratic non-residue rather than a hardcoded table.
func (z *Fp2) Exp(a *Fp2, e *big.Int) *Fp2 {
	pr := a.params()
	result := NewFp2(pr)
	result.A0 = fp.One(pr)
	base := a.Copy()

	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			result.Mul(result, base)
		}

		base.Sqr(base)
	}

	z.Set(result)

	return z
}

// Sqrt computes a square root of a in F_{p^2} via the norm-reduction
// method. Returns (root, true) if a is a square, or sets z to zero and
// returns false otherwise.
func (z *Fp2) Sqrt(a *Fp2) (*Fp2, bool) {
	r, ok := fp2Sqrt(a)
	if !ok {
		z.Set(NewFp2(a.params()))
		return z, false
	}

	z.Set(r)

	return z, true
}

// Sign returns the parity bit used by point compression: the parity of
// A1's canonical lift when A1 is nonzero, else the parity of A0. This
// matches the usual convention for coordinate-by-coordinate compression
// schemes over towers built on F_{p^2} (the highest-degree nonzero
// coefficient carries the sign).
func (z *Fp2) Sign() int {
	if !z.A1.IsZero() {
		return int(z.A1.Big().Bit(0))
	}

	return int(z.A0.Big().Bit(0))
}

// Bytes encodes z coordinate-by-coordinate from the lowest basis element
// upward (A0 then A1), each as a fixed ByteLen()-width big-endian field.
func (z *Fp2) Bytes() []byte {
	return append(z.A0.Bytes(), z.A1.Bytes()...)
}

// SetBytesFp2 decodes the encoding produced by Bytes into a fresh Fp2 over
// pr, rejecting a buffer of the wrong length or either half-coordinate not
// being canonically less than p.
func SetBytesFp2(pr *fp.Params, buf []byte) (*Fp2, error) {
	n := pr.ByteLen()
	if len(buf) != 2*n {
		return nil, fmt.Errorf("fptower: fp2 set bytes: %w", errs.ErrNoBuffer)
	}

	a0, err := fp.SetBytes(pr, buf[:n])
	if err != nil {
		return nil, fmt.Errorf("fptower: fp2 set bytes: %w", err)
	}

	a1, err := fp.SetBytes(pr, buf[n:])
	if err != nil {
		return nil, fmt.Errorf("fptower: fp2 set bytes: %w", err)
	}

	return &Fp2{A0: a0, A1: a1}, nil
}

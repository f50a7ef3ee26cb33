// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package pairing

import (
	"math/big"

	"github.com/relic-go/relic/fptower"
)

// FinalExpEasy performs the family-independent "easy part" of final
// exponentiation: raising f to (p^6-1)*(p^2+1). The result lands in the
// cyclotomic subgroup, the input every hard part below expects.
func FinalExpEasy(f *fptower.Fp12, gamma *fptower.FrobeniusConstants) *fptower.Fp12 {
	pr := f.C0.B0.A0.Params()

	fInv, err := fptower.NewFp12(pr).Inv(f)
	if err != nil {
		// f had no inverse, i.e. f == 0; no finite pairing value is zero, so
		// this can only mean the caller passed a degenerate input. Propagate
		// f unchanged rather than panicking; callers should treat a
		// subsequent pairing check against it as failing.
		return f.Copy()
	}

	f1 := fptower.NewFp12(pr).Conjugate(f)
	f1.Mul(f1, fInv)

	f1FrobSq := fptower.NewFp12(pr).Frobenius(f1, gamma)
	f1FrobSq = fptower.NewFp12(pr).Frobenius(f1FrobSq, gamma)

	f2 := fptower.NewFp12(pr).Mul(f1FrobSq, f1)

	return f2
}

// FinalExpHardBN performs the BN-family hard part: raising the easy-part
// output f (already known to lie in the cyclotomic subgroup) to
// (p^4-p^2+1)/r, expressed as the addition chain in powers of the curve
// seed u. Grounded directly on a cloudflare/bn256-derived finalExpHard
// routine (the wyf-ACCEPT-eth2030 retrieval-pack example), generalised
// from that routine's hardcoded BN254 seed to any BN-family u and gamma.
func FinalExpHardBN(f *fptower.Fp12, u *big.Int, gamma *fptower.FrobeniusConstants) *fptower.Fp12 {
	pr := f.C0.B0.A0.Params()
	z12 := func() *fptower.Fp12 { return fptower.NewFp12(pr) }

	fu := z12().Exp(f, u)
	fu2 := z12().Exp(fu, u)
	fu3 := z12().Exp(fu2, u)

	y3 := z12().Frobenius(fu, gamma)

	fu2p := z12().Frobenius(fu2, gamma)
	fu3p := z12().Frobenius(fu3, gamma)
	fFrob2 := z12().Frobenius(f, gamma)
	fFrob2 = z12().Frobenius(fFrob2, gamma)

	y2 := z12().Frobenius(fFrob2, gamma)

	y0 := z12().Mul(fFrob2, fu2p)
	y0.Mul(y0, fu3p)

	y1 := z12().Conjugate(f)
	y5 := z12().Conjugate(fu2)
	y3.Conjugate(y3)
	y4 := z12().Mul(fu, fu2p)
	y4.Conjugate(y4)
	y6 := z12().Mul(fu3, fu3p)
	y6.Conjugate(y6)

	t0 := z12().Sqr(y6)
	t0.Mul(t0, y4)
	t0.Mul(t0, y5)

	t1 := z12().Mul(y3, y5)
	t1.Mul(t1, t0)

	t0.Mul(t0, y2)

	t1 = z12().Sqr(t1)
	t1.Mul(t1, t0)
	t1 = z12().Sqr(t1)

	t0.Mul(t1, y1)
	t1.Mul(t1, y0)

	t0 = z12().Sqr(t0)
	t0.Mul(t0, t1)

	return t0
}

// FinalExpHardGeneric performs a family-agnostic hard part by direct
// exponentiation to exponent. Correct for every k=12 family
// (BLS12-381, ...) but far slower than a
// tailored addition chain like FinalExpHardBN; package params supplies
// exponent for families it has not been given a dedicated routine for.
func FinalExpHardGeneric(f *fptower.Fp12, exponent *big.Int) *fptower.Fp12 {
	return fptower.NewFp12(f.C0.B0.A0.Params()).Exp(f, exponent)
}

// FinalExponentiation raises the Miller loop's output to the full final
// exponent (p^12-1)/r, the easy part run unconditionally and the hard
// part supplied by the caller (FinalExpHardBN for BN-family curves,
// FinalExpHardGeneric otherwise).
func FinalExponentiation(f *fptower.Fp12, gamma *fptower.FrobeniusConstants, hard func(*fptower.Fp12) *fptower.Fp12) *fptower.Fp12 {
	easy := FinalExpEasy(f, gamma)
	return hard(easy)
}

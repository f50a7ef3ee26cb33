// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package pairing

import (
	"fmt"
	"math/big"

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/internal/errs"
)

// ExtraTwistAdd is one curve-family-specific tail addition step fed to the
// Miller loop after its main double-and-add pass ; BN curves
// need two (the Frobenius twist of Q, and the negated Frobenius^2 twist),
// BLS12-381 needs none.
type ExtraTwistAdd = struct{ X, Y *fptower.Fp2 }

// Context bundles everything a k=12 pairing needs beyond the two input
// points: the family's ate-loop NAF digits, Frobenius constants, and
// hard-part routine. Package params constructs one of these for BN_P254,
// the only parameter ID it builds a pairing for, and hands it to the
// functions below; this package stays free of any hardcoded per-family
// numeric constant.
type Context struct {
	// LoopNAF is the signed NAF digit sequence of the optimal ate loop
	// count, least-significant digit first.
	LoopNAF []int8

	// Gamma holds the degree-12 Frobenius coefficients for this family's
	// prime.
	Gamma *fptower.FrobeniusConstants

	// ExtraAdds supplies the tail addition steps described on
	// ExtraTwistAdd's doc comment; nil for families that need none.
	ExtraAdds []ExtraTwistAdd

	// HardPart computes the family-specific hard part of final
	// exponentiation given the easy part's output.
	HardPart func(*fptower.Fp12) *fptower.Fp12
}

// Pair computes the optimal-ate pairing e(p, q).
func Pair(ctx *Context, p *curve.G1, q *curve.G2) (*fptower.Fp12, error) {
	g1x, g1y, err := p.Affine()
	if err != nil {
		return nil, fmt.Errorf("pairing: pair: %w", err)
	}

	g2x, g2y, err := q.Affine()
	if err != nil {
		return nil, fmt.Errorf("pairing: pair: %w", err)
	}

	f := MillerLoop(ctx.LoopNAF, g1x, g1y, g2x, g2y, ctx.ExtraAdds)

	return FinalExponentiation(f, ctx.Gamma, ctx.HardPart), nil
}

// MultiPairing computes the product Miller loop prod_i e(ps[i], qs[i])
// before applying a single final exponentiation, the standard
// multi-pairing optimisation. ps and qs
// must have equal, nonzero length.
func MultiPairing(ctx *Context, ps []*curve.G1, qs []*curve.G2) (*fptower.Fp12, error) {
	if len(ps) == 0 || len(ps) != len(qs) {
		return nil, fmt.Errorf("pairing: multi pairing: %w", errs.ErrNoValid)
	}

	var prod *fptower.Fp12

	for i := range ps {
		g1x, g1y, err := ps[i].Affine()
		if err != nil {
			return nil, fmt.Errorf("pairing: multi pairing: %w", err)
		}

		g2x, g2y, err := qs[i].Affine()
		if err != nil {
			return nil, fmt.Errorf("pairing: multi pairing: %w", err)
		}

		f := MillerLoop(ctx.LoopNAF, g1x, g1y, g2x, g2y, ctx.ExtraAdds)

		if prod == nil {
			prod = f
		} else {
			prod = fptower.NewFp12(fp12Params(f)).Mul(prod, f)
		}
	}

	return FinalExponentiation(prod, ctx.Gamma, ctx.HardPart), nil
}

// MultiPairingCheck reports whether prod_i e(ps[i], qs[i]) == 1, the
// batched bilinearity check most protocols actually need : it
// avoids computing a final exponentiation per pair, needing only one for
// the whole product.
func MultiPairingCheck(ctx *Context, ps []*curve.G1, qs []*curve.G2) (bool, error) {
	prod, err := MultiPairing(ctx, ps, qs)
	if err != nil {
		return false, err
	}

	return prod.Equal(fptower.One12(fp12Params(prod))), nil
}

// BNSeedHardPart returns a Context.HardPart implementation bound to a
// specific BN-family curve seed u, wrapping FinalExpHardBN.
func BNSeedHardPart(u *big.Int, gamma *fptower.FrobeniusConstants) func(*fptower.Fp12) *fptower.Fp12 {
	return func(f *fptower.Fp12) *fptower.Fp12 { return FinalExpHardBN(f, u, gamma) }
}

// GenericHardPart returns a Context.HardPart implementation that raises
// directly to the supplied hard-part exponent, wrapping
// FinalExpHardGeneric for families with no dedicated addition chain.
func GenericHardPart(exponent *big.Int) func(*fptower.Fp12) *fptower.Fp12 {
	return func(f *fptower.Fp12) *fptower.Fp12 { return FinalExpHardGeneric(f, exponent) }
}

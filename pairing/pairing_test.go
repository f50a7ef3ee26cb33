// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package pairing_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/pairing"
)

func testFieldParams(t *testing.T) *fp.Params {
	t.Helper()

	p := big.NewInt(101) // a small prime with 101 mod 4 == 1, good enough for Fp2 tests below

	pr, err := fp.NewParams(p, fp.Montgomery, 0, 0)
	require.NoError(t, err)

	return pr
}

func zeroGamma(pr *fp.Params) *fptower.FrobeniusConstants {
	g := &fptower.FrobeniusConstants{}
	for i := range g.Gamma {
		g.Gamma[i] = fptower.NewFp2(pr)
	}

	return g
}

func TestFinalExpEasyOfIdentityIsIdentity(t *testing.T) {
	pr := testFieldParams(t)
	one := fptower.One12(pr)

	got := pairing.FinalExpEasy(one, zeroGamma(pr))

	require.True(t, got.Equal(fptower.One12(pr)))
}

func TestFinalExpHardGenericOfIdentityIsIdentity(t *testing.T) {
	pr := testFieldParams(t)
	one := fptower.One12(pr)

	got := pairing.FinalExpHardGeneric(one, big.NewInt(5))

	require.True(t, got.Equal(fptower.One12(pr)))
}

func TestFinalExponentiationOfIdentityIsIdentity(t *testing.T) {
	pr := testFieldParams(t)
	one := fptower.One12(pr)

	got := pairing.FinalExponentiation(one, zeroGamma(pr), pairing.GenericHardPart(big.NewInt(7)))

	require.True(t, got.Equal(fptower.One12(pr)))
}

// A single-digit loop NAF means MillerLoop's double-and-add body never
// runs (there is no following digit to pair a doubling with), so the
// accumulator must come back unchanged from its One12 seed regardless of
// the input points — a property that holds independently of whether those
// points lie on any particular curve, so this exercises the loop-bounds
// guard without needing real curve parameters.
func TestMillerLoopSingleDigitLoopIsIdentity(t *testing.T) {
	pr := testFieldParams(t)

	g1x := fp.FromInt64(pr, 3)
	g1y := fp.FromInt64(pr, 4)

	g2x := fptower.NewFp2(pr)
	g2x.A0 = fp.FromInt64(pr, 5)
	g2y := fptower.NewFp2(pr)
	g2y.A0 = fp.FromInt64(pr, 6)

	got := pairing.MillerLoop([]int8{0}, g1x, g1y, g2x, g2y, nil)

	require.True(t, got.Equal(fptower.One12(pr)))
}

func TestPairRejectsInfinity(t *testing.T) {
	pr := testFieldParams(t)

	g1Params := curve.NewG1Params(pr, fp.Zero(pr), fp.Zero(pr), big.NewInt(101).Bytes(), []byte{1})
	inf := curve.G1Infinity(g1Params)

	g2Params := curve.NewG2Params(pr, fptower.NewFp2(pr), fptower.NewFp2(pr), big.NewInt(101).Bytes(), []byte{1})
	q := curve.NewG2Affine(g2Params, fptower.NewFp2(pr), fptower.NewFp2(pr))

	ctx := &pairing.Context{
		LoopNAF:  []int8{0},
		Gamma:    zeroGamma(pr),
		HardPart: pairing.GenericHardPart(big.NewInt(1)),
	}

	_, err := pairing.Pair(ctx, inf, q)
	require.Error(t, err)
}

func TestMultiPairingRejectsMismatchedLengths(t *testing.T) {
	pr := testFieldParams(t)

	ctx := &pairing.Context{
		LoopNAF:  []int8{0},
		Gamma:    zeroGamma(pr),
		HardPart: pairing.GenericHardPart(big.NewInt(1)),
	}

	_, err := pairing.MultiPairing(ctx, nil, nil)
	require.Error(t, err)
}

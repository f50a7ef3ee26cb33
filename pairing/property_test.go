// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package pairing_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/pairing"
	"github.com/relic-go/relic/params"
)

// TestBilinearityProperty checks the pairing's core bilinearity law,
// e(k*P, Q) == e(P, Q)^k, over randomly sampled small scalars on BN254,
// using gopter the same way TestFp2AlgebraicLaws exercises the field-law
// suite. Scalars are kept small since each draw costs a full Miller loop
// plus final exponentiation.
func TestBilinearityProperty(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	if err != nil {
		t.Fatalf("build bn254: %v", err)
	}

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	base, err := pairing.Pair(ctx.Pairing, g, q)
	if err != nil {
		t.Fatalf("pair(g, q): %v", err)
	}

	scalar := gen.Int64Range(1, 64)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5

	properties := gopter.NewProperties(parameters)

	properties.Property("e(k*G, Q) == e(G, Q)^k", prop.ForAll(
		func(k int64) bool {
			kp := curve.MulBinary(g, bn.FromInt64(k))

			lhs, err := pairing.Pair(ctx.Pairing, kp, q)
			if err != nil {
				return false
			}

			rhs := fptower.NewFp12(ctx.FieldParams).Exp(base, bn.FromInt64(k).Big())

			return lhs.Equal(rhs)
		}, scalar))

	properties.TestingRun(t)
}

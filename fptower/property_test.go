// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fptower_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/params"
)

// fp2Params returns the F_{p^2} base field behind BN254, the one pairing-
// friendly family always available in this build.
func fp2Params(t *testing.T) *fp.Params {
	t.Helper()

	ctx, err := params.Build(params.BNP254)
	if err != nil {
		t.Fatalf("build bn254: %v", err)
	}

	return ctx.FieldParams
}

// genFp2 produces an F_{p^2}-element generator for gopter's property
// runner, each draw derived from a seed that gopter's Int64Range supplies.
func genFp2(pr *fp.Params) gopter.Gen {
	return gen.Int64Range(0, 1<<62).Map(func(seed int64) *fptower.Fp2 {
		a0 := fp.FromBig(pr, big.NewInt(seed))
		a1 := fp.FromBig(pr, big.NewInt(seed^0x5bd1e995))
		return &fptower.Fp2{A0: a0, A1: a1}
	})
}

// TestFp2AlgebraicLaws checks the universal algebraic laws (additive group,
// multiplicative group, distributivity, squaring) over F_{p^2} using
// gopter's property-based generator/shrinker, the same property-testing
// approach gnark/gnark-crypto-style pairing libraries use
// (github.com/leanovate/gopter) for exhaustive field-law fuzzing.
func TestFp2AlgebraicLaws(t *testing.T) {
	pr := fp2Params(t)
	elt := genFp2(pr)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b *fptower.Fp2) bool {
			lhs := fptower.NewFp2(pr).Add(a, b)
			rhs := fptower.NewFp2(pr).Add(b, a)
			return lhs.Equal(rhs)
		}, elt, elt))

	properties.Property("addition is associative", prop.ForAll(
		func(a, b, c *fptower.Fp2) bool {
			lhs := fptower.NewFp2(pr).Add(fptower.NewFp2(pr).Add(a, b), c)
			rhs := fptower.NewFp2(pr).Add(a, fptower.NewFp2(pr).Add(b, c))
			return lhs.Equal(rhs)
		}, elt, elt, elt))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a *fptower.Fp2) bool {
			sum := fptower.NewFp2(pr).Add(a, fptower.NewFp2(pr).Neg(a))
			return sum.IsZero()
		}, elt))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b *fptower.Fp2) bool {
			lhs := fptower.NewFp2(pr).Mul(a, b)
			rhs := fptower.NewFp2(pr).Mul(b, a)
			return lhs.Equal(rhs)
		}, elt, elt))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c *fptower.Fp2) bool {
			lhs := fptower.NewFp2(pr).Mul(fptower.NewFp2(pr).Mul(a, b), c)
			rhs := fptower.NewFp2(pr).Mul(a, fptower.NewFp2(pr).Mul(b, c))
			return lhs.Equal(rhs)
		}, elt, elt, elt))

	properties.Property("distributivity: a*(b+c) == a*b + a*c", prop.ForAll(
		func(a, b, c *fptower.Fp2) bool {
			lhs := fptower.NewFp2(pr).Mul(a, fptower.NewFp2(pr).Add(b, c))
			rhs := fptower.NewFp2(pr).Add(fptower.NewFp2(pr).Mul(a, b), fptower.NewFp2(pr).Mul(a, c))
			return lhs.Equal(rhs)
		}, elt, elt, elt))

	properties.Property("squaring matches self-multiplication", prop.ForAll(
		func(a *fptower.Fp2) bool {
			sqr := fptower.NewFp2(pr).Sqr(a)
			mul := fptower.NewFp2(pr).Mul(a, a)
			return sqr.Equal(mul)
		}, elt))

	properties.Property("a * a^-1 == 1 for nonzero a", prop.ForAll(
		func(a *fptower.Fp2) bool {
			if a.IsZero() {
				return true
			}

			inv, err := fptower.NewFp2(pr).Inv(a)
			if err != nil {
				return false
			}

			one := fptower.NewFp2(pr).Mul(a, inv)
			return one.Equal(&fptower.Fp2{A0: fp.One(pr), A1: fp.Zero(pr)})
		}, elt))

	properties.Property("Frobenius is an involution over F_{p^2}", prop.ForAll(
		func(a *fptower.Fp2) bool {
			twice := fptower.NewFp2(pr).Frobenius(fptower.NewFp2(pr).Frobenius(a))
			return twice.Equal(a)
		}, elt))

	properties.Property("round trip through Bytes/SetBytesFp2", prop.ForAll(
		func(a *fptower.Fp2) bool {
			got, err := fptower.SetBytesFp2(pr, a.Bytes())
			return err == nil && got.Equal(a)
		}, elt))

	properties.TestingRun(t)
}

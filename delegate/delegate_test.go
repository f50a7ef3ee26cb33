// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package delegate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/delegate"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/pairing"
	"github.com/relic-go/relic/params"
)

func bn254(t *testing.T) *params.Context {
	t.Helper()

	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	return ctx
}

func TestPDBatAcceptsHonestProver(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	p := curve.MulBinary(g, bn.FromInt64(7))

	claimed, err := pairing.Pair(ctx.Pairing, p, q)
	require.NoError(t, err)

	ok, err := delegate.PDBat(ctx.Pairing, p, q, claimed, 80)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPDBatRejectsLyingProverAndZeroesOutput(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	p := curve.MulBinary(g, bn.FromInt64(7))

	honest, err := pairing.Pair(ctx.Pairing, p, q)
	require.NoError(t, err)

	forged := fptower.NewFp12(ctx.FieldParams).Add(honest, fptower.One12(ctx.FieldParams))

	ok, err := delegate.PDBat(ctx.Pairing, p, q, forged, 80)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, forged.IsZero())
}

func TestMVBatAcceptsHonestBatch(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	pairs := make([]delegate.Pair, 3)
	claimed := make([]*fptower.Fp12, 3)

	for i := range pairs {
		p := curve.MulBinary(g, bn.FromInt64(int64(i+2)))
		pairs[i] = delegate.Pair{P: p, Q: q}

		val, err := pairing.Pair(ctx.Pairing, p, q)
		require.NoError(t, err)
		claimed[i] = val
	}

	ok, err := delegate.MVBat(ctx.Pairing, pairs, claimed, 80)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMVBatRejectsOneForgedEntry(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	pairs := make([]delegate.Pair, 3)
	claimed := make([]*fptower.Fp12, 3)

	for i := range pairs {
		p := curve.MulBinary(g, bn.FromInt64(int64(i+2)))
		pairs[i] = delegate.Pair{P: p, Q: q}

		val, err := pairing.Pair(ctx.Pairing, p, q)
		require.NoError(t, err)
		claimed[i] = val
	}

	claimed[1] = fptower.NewFp12(ctx.FieldParams).Add(claimed[1], fptower.One12(ctx.FieldParams))

	ok, err := delegate.MVBat(ctx.Pairing, pairs, claimed, 80)
	require.NoError(t, err)
	require.False(t, ok)

	for _, c := range claimed {
		require.True(t, c.IsZero())
	}
}

func TestAmBatAcceptsSharedQ(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	ps := make([]*curve.G1, 3)
	claimed := make([]*fptower.Fp12, 3)

	for i := range ps {
		p := curve.MulBinary(g, bn.FromInt64(int64(i+3)))
		ps[i] = p

		val, err := pairing.Pair(ctx.Pairing, p, q)
		require.NoError(t, err)
		claimed[i] = val
	}

	ok, err := delegate.AmBat(ctx.Pairing, ps, q, claimed, 64)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBatchLengthMismatchErrors(t *testing.T) {
	ctx := bn254(t)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	_, err := delegate.MVBat(ctx.Pairing, []delegate.Pair{{P: g, Q: q}}, nil, 32)
	require.Error(t, err)
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package serialize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/params"
	"github.com/relic-go/relic/serialize"
)

func TestG1CompressedRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)

	buf, err := serialize.EncodeG1(g, ctx.FieldParams, true)
	require.NoError(t, err)
	require.Equal(t, 1+ctx.FieldParams.ByteLen(), len(buf))

	got, err := serialize.DecodeG1(ctx.G1, ctx.FieldParams, buf)
	require.NoError(t, err)
	require.True(t, g.Equal(got))
}

func TestG1UncompressedRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	g = curve.MulBinary(g, bn.FromInt64(12345))

	buf, err := serialize.EncodeG1(g, ctx.FieldParams, false)
	require.NoError(t, err)
	require.Equal(t, 1+2*ctx.FieldParams.ByteLen(), len(buf))
	require.Equal(t, byte(0x04), buf[0])

	got, err := serialize.DecodeG1(ctx.G1, ctx.FieldParams, buf)
	require.NoError(t, err)
	require.True(t, g.Equal(got))
}

func TestG1InfinityRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	inf := curve.G1Infinity(ctx.G1)

	for _, compressed := range []bool{true, false} {
		buf, err := serialize.EncodeG1(inf, ctx.FieldParams, compressed)
		require.NoError(t, err)
		require.Equal(t, byte(0x00), buf[0])

		for _, b := range buf[1:] {
			require.Equal(t, byte(0), b)
		}

		got, err := serialize.DecodeG1(ctx.G1, ctx.FieldParams, buf)
		require.NoError(t, err)
		require.True(t, got.IsInfinity())
	}
}

func TestG1DecodeRejectsWrongLength(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	_, err = serialize.DecodeG1(ctx.G1, ctx.FieldParams, []byte{0x04, 0x00})
	require.Error(t, err)
}

func TestG1DecodeRejectsOffCurvePoint(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	buf, err := serialize.EncodeG1(g, ctx.FieldParams, false)
	require.NoError(t, err)

	// Flip a byte in the y coordinate so the curve equation no longer
	// holds.
	buf[len(buf)-1] ^= 0xFF

	_, err = serialize.DecodeG1(ctx.G1, ctx.FieldParams, buf)
	require.Error(t, err)
}

func TestG2CompressedRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	buf, err := serialize.EncodeG2(q, ctx.FieldParams, true)
	require.NoError(t, err)

	got, err := serialize.DecodeG2(ctx.G2, ctx.FieldParams, buf)
	require.NoError(t, err)
	require.True(t, q.Equal(got))
}

func TestG2UncompressedRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)
	q = curve.MulBinary(q, bn.FromInt64(777))

	buf, err := serialize.EncodeG2(q, ctx.FieldParams, false)
	require.NoError(t, err)

	got, err := serialize.DecodeG2(ctx.G2, ctx.FieldParams, buf)
	require.NoError(t, err)
	require.True(t, q.Equal(got))
}

func TestG2InfinityRoundTrip(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	inf := curve.G2Infinity(ctx.G2)

	buf, err := serialize.EncodeG2(inf, ctx.FieldParams, true)
	require.NoError(t, err)

	got, err := serialize.DecodeG2(ctx.G2, ctx.FieldParams, buf)
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

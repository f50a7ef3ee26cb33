// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/pairing"
	"github.com/relic-go/relic/params"
)

func TestIDStringNamesEveryRegisteredFamily(t *testing.T) {
	cases := map[params.ID]string{
		params.BNP254:   "BN_P254",
		params.B12P381:  "B12_P381",
		params.K18P638:  "K18_P638",
		params.NISTP256: "NIST_P256",
		params.ED25519:  "ED25519",
	}

	for id, want := range cases {
		require.Equal(t, want, id.String())
	}

	require.Equal(t, "unknown", params.ID(0).String())
}

func TestK18P638IsRegisteredButUnavailable(t *testing.T) {
	require.False(t, params.K18P638.Available())

	_, err := params.Build(params.K18P638)
	require.Error(t, err)
}

func TestBuildUnknownIDFails(t *testing.T) {
	_, err := params.Build(params.ID(200))
	require.Error(t, err)
}

func TestBuildAnyReturnsBN254(t *testing.T) {
	ctx, err := params.BuildAny()
	require.NoError(t, err)
	require.Equal(t, params.BNP254, ctx.ID)
}

func TestBuildBN254G1GeneratorIsOnCurve(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)
	require.True(t, params.BNP254.Available())

	require.NotNil(t, ctx.FieldParams)
	require.NotNil(t, ctx.G1)
	require.NotNil(t, ctx.G2)
	require.NotNil(t, ctx.Pairing)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	require.True(t, g.IsOnCurve())

	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)
	require.True(t, q.IsOnCurve())

	require.Equal(t, curve.DTwist, ctx.G2Twist)
}

func TestBuildBN254PairingRejectsMismatchedMultiPairingLengths(t *testing.T) {
	ctx, err := params.Build(params.BNP254)
	require.NoError(t, err)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	q := curve.NewG2Affine(ctx.G2, ctx.G2GenX, ctx.G2GenY)

	_, err = pairing.MultiPairing(ctx.Pairing, []*curve.G1{g}, []*curve.G2{q, q})
	require.Error(t, err)
}

func TestBuildBLS12381HasNoG2OrPairingYet(t *testing.T) {
	ctx, err := params.Build(params.B12P381)
	require.NoError(t, err)

	require.NotNil(t, ctx.FieldParams)
	require.NotNil(t, ctx.G1)
	require.Nil(t, ctx.G2)
	require.Nil(t, ctx.Pairing)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	require.True(t, g.IsOnCurve())
}

func TestBuildNISTP256HasNoTwistOrPairing(t *testing.T) {
	ctx, err := params.Build(params.NISTP256)
	require.NoError(t, err)

	require.NotNil(t, ctx.G1)
	require.Nil(t, ctx.G2)
	require.Nil(t, ctx.Pairing)

	g := curve.NewG1Affine(ctx.G1, ctx.G1GenX, ctx.G1GenY)
	require.True(t, g.IsOnCurve())
}

func TestBuildEd25519LeavesCurveFieldsNil(t *testing.T) {
	ctx, err := params.Build(params.ED25519)
	require.NoError(t, err)

	require.Equal(t, params.ED25519, ctx.ID)
	require.Nil(t, ctx.FieldParams)
	require.Nil(t, ctx.G1)
	require.Nil(t, ctx.G2)
	require.Nil(t, ctx.Pairing)
}

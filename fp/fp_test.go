// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fp_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/fp"
)

// smallDensePrime builds a Dense-strategy field over a small prime, enough
// to exercise every Elt method without a full-size curve prime.
func smallDensePrime(t *testing.T) *fp.Params {
	t.Helper()

	p := big.NewInt(101) // 101 mod 4 == 1, 101 mod 8 == 5: exercises the general Tonelli-Shanks path.

	pr, err := fp.NewParams(p, fp.Dense, 0, 0)
	require.NoError(t, err)

	return pr
}

func TestAdditiveGroupLaws(t *testing.T) {
	pr := smallDensePrime(t)

	a := fp.FromInt64(pr, 37)
	b := fp.FromInt64(pr, 58)
	c := fp.FromInt64(pr, 91)
	zero := fp.Zero(pr)

	require.True(t, fp.Zero(pr).Add(a, zero).Equal(a))
	require.True(t, fp.Zero(pr).Add(a, fp.Zero(pr).Neg(a)).IsZero())
	require.True(t, fp.Zero(pr).Add(fp.Zero(pr).Add(a, b), c).Equal(fp.Zero(pr).Add(a, fp.Zero(pr).Add(b, c))))
	require.True(t, fp.Zero(pr).Add(a, b).Equal(fp.Zero(pr).Add(b, a)))
}

func TestMultiplicativeGroupLaws(t *testing.T) {
	pr := smallDensePrime(t)

	a := fp.FromInt64(pr, 37)
	b := fp.FromInt64(pr, 58)
	c := fp.FromInt64(pr, 91)
	one := fp.One(pr)

	require.True(t, fp.Zero(pr).Mul(a, one).Equal(a))

	inv, err := fp.Zero(pr).Inv(a)
	require.NoError(t, err)
	require.True(t, fp.Zero(pr).Mul(a, inv).Equal(one))

	require.True(t, fp.Zero(pr).Mul(fp.Zero(pr).Mul(a, b), c).Equal(fp.Zero(pr).Mul(a, fp.Zero(pr).Mul(b, c))))
	require.True(t, fp.Zero(pr).Mul(a, b).Equal(fp.Zero(pr).Mul(b, a)))
}

func TestDistributivity(t *testing.T) {
	pr := smallDensePrime(t)

	a := fp.FromInt64(pr, 12)
	b := fp.FromInt64(pr, 34)
	c := fp.FromInt64(pr, 56)

	lhs := fp.Zero(pr).Mul(a, fp.Zero(pr).Add(b, c))
	rhs := fp.Zero(pr).Add(fp.Zero(pr).Mul(a, b), fp.Zero(pr).Mul(a, c))

	require.True(t, lhs.Equal(rhs))
}

func TestSquaringMatchesSelfMultiplication(t *testing.T) {
	pr := smallDensePrime(t)
	a := fp.FromInt64(pr, 42)

	require.True(t, fp.Zero(pr).Sqr(a).Equal(fp.Zero(pr).Mul(a, a)))
}

func TestInverseOfZeroFails(t *testing.T) {
	pr := smallDensePrime(t)

	_, err := fp.Zero(pr).Inv(fp.Zero(pr))
	require.Error(t, err)
}

func TestSqrtRoundTrip(t *testing.T) {
	pr := smallDensePrime(t)

	for x := int64(1); x < 101; x++ {
		a := fp.FromInt64(pr, x)
		sq := fp.Zero(pr).Sqr(a)

		root, ok := fp.Zero(pr).Sqrt(sq)
		require.True(t, ok)
		require.True(t, fp.Zero(pr).Sqr(root).Equal(sq))
	}
}

func TestSqrtRejectsNonResidue(t *testing.T) {
	pr := smallDensePrime(t)

	// 2 is a non-residue mod 101 (101 = 8k+5 case).
	_, ok := fp.Zero(pr).Sqrt(fp.FromInt64(pr, 2))
	require.False(t, ok)
}

func TestBytesRoundTrip(t *testing.T) {
	pr := smallDensePrime(t)
	a := fp.FromInt64(pr, 73)

	buf := a.Bytes()
	require.Equal(t, pr.ByteLen(), len(buf))

	got, err := fp.SetBytes(pr, buf)
	require.NoError(t, err)
	require.True(t, a.Equal(got))
}

func TestSetBytesRejectsValueAboveP(t *testing.T) {
	pr := smallDensePrime(t)

	buf := make([]byte, pr.ByteLen())
	buf[len(buf)-1] = 255 // 255 >= 101

	_, err := fp.SetBytes(pr, buf)
	require.Error(t, err)
}

func TestSetBytesRejectsWrongLength(t *testing.T) {
	pr := smallDensePrime(t)

	_, err := fp.SetBytes(pr, make([]byte, pr.ByteLen()+1))
	require.Error(t, err)
}

func TestCopySecSelectsConstantTime(t *testing.T) {
	pr := smallDensePrime(t)

	a := fp.FromInt64(pr, 5)
	c := fp.FromInt64(pr, 9)

	require.True(t, fp.Zero(pr).CopySec(c, a, 1).Equal(a))
	require.True(t, fp.Zero(pr).CopySec(c, a, 0).Equal(c))
}

// TestQuickReductionPseudoMersenne exercises the Quick reduction strategy
// over a literal pseudo-Mersenne prime (2^13 - 1 = 8191, a Mersenne prime),
// checking that Mul still reduces to canonical form.
func TestQuickReductionPseudoMersenne(t *testing.T) {
	p := big.NewInt(8191)

	pr, err := fp.NewParams(p, fp.Quick, 13, 1)
	require.NoError(t, err)

	a := fp.FromInt64(pr, 8000)
	b := fp.FromInt64(pr, 7000)

	got := fp.Zero(pr).Mul(a, b)

	want := new(big.Int).Mod(new(big.Int).Mul(big.NewInt(8000), big.NewInt(7000)), p)
	require.Equal(t, want, got.Big())
}

func TestQuickReductionRejectsWrongShape(t *testing.T) {
	p := big.NewInt(101)

	_, err := fp.NewParams(p, fp.Quick, 13, 1)
	require.Error(t, err)
}

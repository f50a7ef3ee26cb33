// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relic-go/relic/bn"
)

func TestAddSubNeg(t *testing.T) {
	a := bn.FromInt64(17)
	b := bn.FromInt64(5)

	sum := bn.New().Add(a, b)
	require.Equal(t, "22", sum.String())

	diff := bn.New().Sub(a, b)
	require.Equal(t, "12", diff.String())

	neg := bn.New().Neg(a)
	require.Equal(t, "-17", neg.String())
}

func TestModInverse(t *testing.T) {
	p := bn.FromInt64(101)
	a := bn.FromInt64(17)

	inv, ok := bn.New().ModInverse(a, p)
	require.True(t, ok)

	product := bn.New().Mod(bn.New().Mul(a, inv), p)
	require.Equal(t, "1", product.String())
}

func TestModInverseOfZeroFails(t *testing.T) {
	p := bn.FromInt64(101)
	_, ok := bn.New().ModInverse(bn.FromInt64(0), p)
	require.False(t, ok)
}

func TestNAFRecodesBackToValue(t *testing.T) {
	k := bn.FromInt64(987654321)
	digits := bn.NAF(k)

	got := bn.New()
	pow := bn.FromInt64(1)

	for _, d := range digits {
		got.Add(got, bn.New().Mul(bn.FromInt64(int64(d)), pow))
		pow = bn.New().Lsh(pow, 1)
	}

	require.Equal(t, k.String(), got.String())

	// Non-adjacency: no two consecutive nonzero digits.
	for i := 0; i+1 < len(digits); i++ {
		if digits[i] != 0 {
			require.Zero(t, int(digits[i+1]), "adjacent nonzero NAF digits at %d", i)
		}
	}
}

func TestWNAFRecodesBackToValue(t *testing.T) {
	k := bn.FromInt64(123456789)
	digits := bn.WNAF(k, 4)

	got := bn.New()
	pow := bn.FromInt64(1)

	for _, d := range digits {
		got.Add(got, bn.New().Mul(bn.FromInt64(int64(d)), pow))
		pow = bn.New().Lsh(pow, 1)
	}

	require.Equal(t, k.String(), got.String())
}

func TestJSFRecodesBothValues(t *testing.T) {
	k1 := bn.FromInt64(12345)
	k2 := bn.FromInt64(67890)

	d1, d2 := bn.JSF(k1, k2)
	require.Equal(t, len(d1), len(d2))

	got1, got2 := bn.New(), bn.New()
	pow := bn.FromInt64(1)

	for i := range d1 {
		got1.Add(got1, bn.New().Mul(bn.FromInt64(int64(d1[i])), pow))
		got2.Add(got2, bn.New().Mul(bn.FromInt64(int64(d2[i])), pow))
		pow = bn.New().Lsh(pow, 1)
	}

	require.Equal(t, k1.String(), got1.String())
	require.Equal(t, k2.String(), got2.String())
}

func TestClassifyPseudoMersenne(t *testing.T) {
	// 2^255 - 19.
	p, ok := bn.New().SetString("57896044618658097711785492504343953926634992332820282019728792003956564819949", 10)
	require.True(t, ok)
	require.Equal(t, bn.PseudoMersenne, bn.ClassifyPrime(p))
}

func TestIsProbablyPrime(t *testing.T) {
	require.True(t, bn.IsProbablyPrime(bn.FromInt64(104729), 0))
	require.False(t, bn.IsProbablyPrime(bn.FromInt64(104730), 0))
}

func TestJacobi(t *testing.T) {
	// 2 is a QR mod 7 (3^2 = 9 = 2 mod 7).
	require.Equal(t, 1, bn.Jacobi(bn.FromInt64(2), bn.FromInt64(7)))
	// 3 is not a QR mod 7.
	require.Equal(t, -1, bn.Jacobi(bn.FromInt64(3), bn.FromInt64(7)))
}

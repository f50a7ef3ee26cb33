// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

import (
	"math/big"

	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/pairing"
)

// BN254's standard public parameters: the Barreto-Naehrig prime, r-torsion
// order, curve y^2=x^3+3 over F_p, its sextic twist over F_{p^2}, and the
// curve seed u. These are the same widely published
// constants used by e.g. the Ethereum alt_bn128 precompile and
// cloudflare/bn256 (the engine package pairing's Miller loop is grounded
// on): p = 36u^4+36u^3+24u^2+6u+1 for u = 4965661367192848881.
const (
	bn254P = "21888242871839275222246405745257275088696311157297823662689037894645226208583"
	bn254R = "21888242871839275222246405745257275088548364400416034343698204186575808495617"
	bn254U = "4965661367192848881"
	bn254B = "3"

	bn254G1X = "1"
	bn254G1Y = "2"

	bn254G2X0 = "10857046999023057135944570762232829481370756359578518086990519993285655852781"
	bn254G2X1 = "11559732032986387107991004021392285783925812861821192530917403151452391805634"
	bn254G2Y0 = "8495653923123431417604973247489272438418190587263600148770280649306958101930"
	bn254G2Y1 = "4082367875863433681332203403145435568316851327593401208105741076214120093531"
)

func buildBN254() (*Context, error) {
	p, _ := new(big.Int).SetString(bn254P, 10)
	r, _ := new(big.Int).SetString(bn254R, 10)
	u, _ := new(big.Int).SetString(bn254U, 10)
	b, _ := new(big.Int).SetString(bn254B, 10)

	fieldParams, err := fp.NewParams(p, fp.Montgomery, 0, 0)
	if err != nil {
		return nil, err
	}

	a := fp.Zero(fieldParams)
	bElt := fp.FromBig(fieldParams, b)

	g1Params := curve.NewG1Params(fieldParams, a, bElt, r.Bytes(), []byte{1})

	g1x, _ := new(big.Int).SetString(bn254G1X, 10)
	g1y, _ := new(big.Int).SetString(bn254G1Y, 10)
	genX := fp.FromBig(fieldParams, g1x)
	genY := fp.FromBig(fieldParams, g1y)

	// The sextic twist's b' coefficient over F_{p^2}, b' = b / xi (xi the
	// same Fp2 generator frobeniusConstants uses), so that a point on the
	// twist corresponds to a point on E(F_{p^12}) under the untwist map.
	gamma := frobeniusConstants(fieldParams)

	xi := fptower.NewFp2(fieldParams)
	xi.A1 = fp.One(fieldParams)
	xiInv, err := fptower.NewFp2(fieldParams).Inv(xi)
	if err != nil {
		return nil, err
	}

	bTwist := fptower.NewFp2(fieldParams).MulByElt(xiInv, bElt)

	g2Params := curve.NewG2Params(fieldParams, fptower.NewFp2(fieldParams), bTwist, r.Bytes(), nil)

	g2x := fptower.NewFp2(fieldParams)
	g2x0, _ := new(big.Int).SetString(bn254G2X0, 10)
	g2x1, _ := new(big.Int).SetString(bn254G2X1, 10)
	g2x.A0 = fp.FromBig(fieldParams, g2x0)
	g2x.A1 = fp.FromBig(fieldParams, g2x1)

	g2y := fptower.NewFp2(fieldParams)
	g2y0, _ := new(big.Int).SetString(bn254G2Y0, 10)
	g2y1, _ := new(big.Int).SetString(bn254G2Y1, 10)
	g2y.A0 = fp.FromBig(fieldParams, g2y0)
	g2y.A1 = fp.FromBig(fieldParams, g2y1)

	// The optimal-ate loop count for a BN curve is 6u+2, computed here
	// through this module's own bn.NAF rather than a hand-transcribed
	// digit table, since 6u+2 does not fit an int64.
	six := bn.FromInt64(6)
	loopConst := bn.New().Add(bn.New().Mul(six, bn.FromInt64(4965661367192848881)), bn.FromInt64(2))
	loopNAF := bn.NAF(loopConst)

	loopNAFi8 := make([]int8, len(loopNAF))
	for i, d := range loopNAF {
		loopNAFi8[i] = int8(d)
	}

	pairingCtx := &pairing.Context{
		LoopNAF:   loopNAFi8,
		Gamma:     gamma,
		ExtraAdds: bn254ExtraAdds(fieldParams, g2Params, g2x, g2y),
		HardPart:  pairing.BNSeedHardPart(u, gamma),
	}

	return &Context{
		ID:          BNP254,
		FieldParams: fieldParams,
		G1:          g1Params,
		G1GenX:      genX,
		G1GenY:      genY,
		G2:          g2Params,
		G2GenX:      g2x,
		G2GenY:      g2y,
		G2Twist:     curve.DTwist,
		Pairing:     pairingCtx,
	}, nil
}

// bn254ExtraAdds computes the two BN-curve-specific tail addition steps
// the optimal ate pairing needs after its main NAF loop: the Frobenius
// twist of Q, and the negated double-Frobenius twist , expressed generically via
// curve.Frobenius rather than the precomputed coefficient constants a
// from-scratch derivation would otherwise need.
func bn254ExtraAdds(fieldParams *fp.Params, g2Params *curve.G2Params, g2x, g2y *fptower.Fp2) []pairing.ExtraTwistAdd {
	q := curve.NewG2Affine(g2Params, g2x, g2y)

	q1 := curve.Frobenius(q, 1)
	q1x, q1y, err := q1.Affine()
	if err != nil {
		return nil
	}

	q2 := curve.Frobenius(q, 2)
	q2x, q2y, err := q2.Affine()
	if err != nil {
		return nil
	}

	negQ2Y := fptower.NewFp2(fieldParams).Neg(q2y)

	return []pairing.ExtraTwistAdd{
		{X: q1x, Y: q1y},
		{X: q2x, Y: negQ2Y},
	}
}

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

	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
)

// frobeniusConstants computes the degree-12 Frobenius coefficients for
// the field described by pr.
//
// Fp12's basis over F_{p^2} is {v^k w^m : k in 0..2, m in 0..1}, flattened
// in the order fptower.Fp12.Frobenius already multiplies against (verified
// against that method's C0.B1/C0.B2/C1.B0/C1.B1/C1.B2 slot assignments):
// flat index = 2k+m, so Gamma[i] (i=0..4) holds xi^((i+1)*(p-1)/6) for the
// flat index i+1, where xi is the Fp2 element (0,1) — the same generator
// Fp2.MulByNonResidue and therefore Fp6's v^3=xi relation already use, so
// this needs no separate curve-specific non-residue constant.
func frobeniusConstants(pr *fp.Params) *fptower.FrobeniusConstants {
	xi := fptower.NewFp2(pr)
	xi.A1 = fp.One(pr)

	pMinus1 := new(big.Int).Sub(pr.Prime(), big.NewInt(1))
	sixth := new(big.Int).Div(pMinus1, big.NewInt(6))

	gamma := &fptower.FrobeniusConstants{}

	for i := range gamma.Gamma {
		j := big.NewInt(int64(i + 1))
		exp := new(big.Int).Mul(sixth, j)
		gamma.Gamma[i] = fptower.NewFp2(pr).Exp(xi, exp)
	}

	return gamma
}

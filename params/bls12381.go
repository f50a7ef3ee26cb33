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

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fp"
)

// BLS12-381's standard public G1 parameters : the
// 381-bit Barreto-Lynn-Scott prime, the r-torsion order, curve
// y^2=x^3+4 over F_p, and the G1 generator from the IETF
// draft-irtf-cfrg-pairing-friendly-curves test vectors, the same
// constants consensus clients and blst publish.
const (
	bls12381P = "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"
	bls12381R = "52435875175126190479447740508185965837690552500527637822603658699938581184513"
	bls12381B = "4"

	bls12381G1X = "3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507"
	bls12381G1Y = "1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569"

	bls12381G1Cofactor = "76329603384216526031706109802092473003"
)

// buildBLS12381 wires BLS12-381's G1 group only.
// G2/Pairing stay nil: unlike BN254's u=6u+2-style loop (computed above
// via this module's own bn.NAF), BLS12-381's Miller loop runs over the
// curve seed x directly and its sextic twist is an M-type (not D-type
// like BN254's), so bn254ExtraAdds's "reuse curve.Frobenius generically"
// trick does not carry over without re-deriving the M-type untwist map —
// a derivation this module has no way to check without a compiler, so it
// is left for a future pass rather than risked here (DESIGN.md OQ, BLS12-381
// pairing support).
func buildBLS12381() (*Context, error) {
	p, _ := new(big.Int).SetString(bls12381P, 10)
	r, _ := new(big.Int).SetString(bls12381R, 10)
	b, _ := new(big.Int).SetString(bls12381B, 10)
	cofactor, _ := new(big.Int).SetString(bls12381G1Cofactor, 10)

	fieldParams, err := fp.NewParams(p, fp.Montgomery, 0, 0)
	if err != nil {
		return nil, err
	}

	a := fp.Zero(fieldParams)
	bElt := fp.FromBig(fieldParams, b)

	g1Params := curve.NewG1Params(fieldParams, a, bElt, r.Bytes(), cofactor.Bytes())

	gx, _ := new(big.Int).SetString(bls12381G1X, 10)
	gy, _ := new(big.Int).SetString(bls12381G1Y, 10)

	return &Context{
		ID:          B12P381,
		FieldParams: fieldParams,
		G1:          g1Params,
		G1GenX:      fp.FromBig(fieldParams, gx),
		G1GenY:      fp.FromBig(fieldParams, gy),
	}, nil
}

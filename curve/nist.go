// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"math/big"

	"github.com/relic-go/relic/fp"
)

// NIST P-256 (secp256r1) constants: Weierstrass curve y^2 = x^3 - 3x + b
// over F_p, k=1 (no pairing), the plain G1-shaped instantiation of the
// generic Point[*fp.Elt] with no extension tower needed.
const (
	nistP256P = "115792089210356248762697446949407573530086143415290314195533631308867097853951"
	nistP256N = "115792089210356248762697446949407573529996955224135760342422259061068512044369"
	nistP256B = "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b"
	nistP256X = "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"
	nistP256Y = "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"
)

// NISTP256Params builds the NIST P-256 field and curve parameters.
func NISTP256Params() (*fp.Params, *G1Params, *fp.Elt, *fp.Elt, error) {
	p, _ := new(big.Int).SetString(nistP256P, 10)

	fieldParams, err := fp.NewParams(p, fp.Montgomery, 0, 0)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	order, _ := new(big.Int).SetString(nistP256N, 10)
	b, _ := new(big.Int).SetString(nistP256B, 16)

	a := fp.Zero(fieldParams).Neg(fp.FromInt64(fieldParams, 3))
	bElt := fp.FromBig(fieldParams, b)

	curve := NewG1Params(fieldParams, a, bElt, order.Bytes(), []byte{1})

	gx, _ := new(big.Int).SetString(nistP256X, 16)
	gy, _ := new(big.Int).SetString(nistP256Y, 16)

	genX := fp.FromBig(fieldParams, gx)
	genY := fp.FromBig(fieldParams, gy)

	return fieldParams, curve, genX, genY, nil
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package params

import "github.com/relic-go/relic/curve"

// buildNISTP256 wires the NIST_P256 parameter set straight from
// curve.NISTP256Params: a k=1 family with no twist and no pairing, so
// G2/Pairing stay nil.
func buildNISTP256() (*Context, error) {
	fieldParams, g1Params, genX, genY, err := curve.NISTP256Params()
	if err != nil {
		return nil, err
	}

	return &Context{
		ID:          NISTP256,
		FieldParams: fieldParams,
		G1:          g1Params,
		G1GenX:      genX,
		G1GenY:      genY,
	}, nil
}

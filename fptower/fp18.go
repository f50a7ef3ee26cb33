// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package fptower

import "github.com/relic-go/relic/fp"

// Fp18 is F_{p^18}, a cubic extension of F_{p^6} , the target field of the Miller loop
// for the K18_P638 (KSS18) parameter set. Built from the generic Ext3 lift
// over the hand-specialised Fp6 rather than a seventh hand-tuned
// degree-3-over-degree-6 specialisation (see ext.go's BaseElt doc comment
// and DESIGN.md OQ-2): KSS18 is the only registered parameter set needing
// this tower, so the generic path pays for itself immediately without
// needing to also be hand-optimised.
type Fp18 = Ext3[*Fp6]

// NewFp18 returns the zero element of F_{p^18} over params.
func NewFp18(params *fp.Params) *Fp18 {
	zero := func() *Fp6 { return NewFp6(params) }
	mulNonRes := func(a *Fp6) *Fp6 { return NewFp6(params).MulByNonResidue(a) }

	return NewExt3[*Fp6](zero, mulNonRes)
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

// TwistType identifies which of the two sextic-twist conventions a pairing
// family's G2 curve uses. D-twist derives the twist's b coefficient as
// b/xi; M-twist derives it as b*xi. BN254 uses D-twist; BLS12-381 and the
// k=16/k=18/k=48 families commonly use M-twist instead, so
// the convention is carried explicitly per parameter set rather than
// assumed.
type TwistType int

const (
	DTwist TwistType = iota
	MTwist
)

func (t TwistType) String() string {
	switch t {
	case DTwist:
		return "D-twist"
	case MTwist:
		return "M-twist"
	default:
		return "unknown twist"
	}
}

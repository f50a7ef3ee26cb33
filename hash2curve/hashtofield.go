// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hash2curve

import (
	"crypto"
	"math/big"
)

// HashToFieldXMD hashes input and dst to count field elements modulo modulo,
// per RFC 9380 §5.2. ext is the field extension degree (1 for a prime field);
// it only sizes the expanded output: each of the count results is a single
// integer reduced from one securityLength-byte slice, so for ext > 1 the
// extra bytes are unused and no extension-field coordinates are returned.
func HashToFieldXMD(id crypto.Hash, input, dst []byte, count, ext, securityLength int, modulo *big.Int) []*big.Int {
	expLength := count * ext * securityLength
	uniform := ExpandXMD(id, input, dst, expLength)

	res := make([]*big.Int, count)
	for i := 0; i < count; i++ {
		offset := i * securityLength
		res[i] = reduce(uniform[offset:offset+securityLength], modulo)
	}

	return res
}

func reduce(input []byte, modulo *big.Int) *big.Int {
	i := new(big.Int).SetBytes(input)
	i.Mod(i, modulo)

	return i
}

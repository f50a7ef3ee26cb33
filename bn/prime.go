// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bn

import "math/big"

// Shape classifies a prime's exploitable structure, grounded on the RELIC
// toolkit's relic_fp_param.c and relic_fp_prime.c, which dispatch the
// reduction routine on exactly this three-way split.
type Shape int

const (
	// Dense marks a prime with no known exploitable structure; reduced via
	// plain Montgomery or Barrett reduction.
	Dense Shape = iota

	// PseudoMersenne marks a prime of the form 2^m - c for a small c,
	// enabling the quick fold-based reduction.
	PseudoMersenne

	// PairingParametric marks a prime expressed as a fixed polynomial in a
	// small curve parameter x (BN, BLS12, KSS16/18, ...).
	PairingParametric
)

// ClassifyPrime inspects p and reports its Shape. A prime is classified as
// PseudoMersenne when p+c or p-c is a power of two for some c with
// bit-length well below p's, mirroring relic_fp_param.c's PMers detection
// (which walks the sparse {+1,-1} representation of p against 2^m).
// PairingParametric is a caller-asserted shape: there is no way to recover
// the generating polynomial from p alone, so callers of a pairing-friendly
// family construct their Params with that shape directly (see package
// params) and never call ClassifyPrime for it.
func ClassifyPrime(p *Int) Shape {
	m := p.BitLen()

	// Candidates 2^m - c and 2^m + c, c small (fits in a machine word), for
	// m and m-1 (covers p just under or over a power of two).
	for _, bits := range []int{m, m - 1} {
		if bits <= 0 {
			continue
		}

		pow := new(big.Int).Lsh(big.NewInt(1), uint(bits))

		diff := new(big.Int).Sub(pow, &p.v)
		diff.Abs(diff)

		if diff.Sign() != 0 && diff.BitLen() <= 32 {
			return PseudoMersenne
		}
	}

	return Dense
}

// IsProbablyPrime runs Miller-Rabin (via math/big's implementation, which
// also does a Baillie-PSW style base-2 strong test and small-prime trial
// division first) for the given number of rounds. rounds <= 0 uses a
// conservative default appropriate for cryptographic key generation.
func IsProbablyPrime(n *Int, rounds int) bool {
	if rounds <= 0 {
		rounds = 40
	}

	return n.v.ProbablyPrime(rounds)
}

// GeneratePrime returns a random prime of the requested bit length, found by
// trial division against small primes followed by Miller-Rabin.
func GeneratePrime(bits int) (*Int, error) {
	p, err := randomPrimeCandidate(bits)
	if err != nil {
		return nil, err
	}

	return FromBig(p), nil
}

func randomPrimeCandidate(bits int) (*big.Int, error) {
	for {
		cand, err := New().Random(FromBig(new(big.Int).Lsh(big.NewInt(1), uint(bits))))
		if err != nil {
			return nil, err
		}

		cand.v.SetBit(&cand.v, bits-1, 1) // force top bit
		cand.v.SetBit(&cand.v, 0, 1)      // force odd

		if !trialDivides(&cand.v) && cand.v.ProbablyPrime(40) {
			return &cand.v, nil
		}
	}
}

var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

func trialDivides(n *big.Int) bool {
	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return false
		}

		if new(big.Int).Mod(n, p).Sign() == 0 {
			return true
		}
	}

	return false
}

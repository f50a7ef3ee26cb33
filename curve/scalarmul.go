// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"github.com/relic-go/relic/bn"
)

// MulBinary computes k*p via left-to-right binary double-and-add,
// variable-time in k.
func MulBinary[F Field[F]](p *Point[F], k *bn.Int) *Point[F] {
	acc := Infinity(p.curve)

	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = acc.Double()

		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
	}

	return acc
}

// MulNAF computes k*p via double-and-add over the non-adjacent form of k,
// here using plain NAF (window 2) since a single-point multiplication does
// not amortise a larger odd-multiples table.
func MulNAF[F Field[F]](p *Point[F], k *bn.Int) *Point[F] {
	digits := bn.NAF(k)

	acc := Infinity(p.curve)
	pNeg := p.Neg()

	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()

		switch digits[i] {
		case 1:
			acc = acc.Add(p)
		case -1:
			acc = acc.Add(pNeg)
		}
	}

	return acc
}

// MulWNAF computes k*p via sliding-window w-NAF: precomputes odd multiples
// 1*P, 3*P, ..., (2^(w-1)-1)*P and then double-and-adds over the w-NAF
// recoding of k.
func MulWNAF[F Field[F]](p *Point[F], k *bn.Int, w uint) *Point[F] {
	digits := bn.WNAF(k, w)

	half := int64(1) << (w - 1)
	table := make(map[int64]*Point[F], half)
	table[1] = p.Copy()

	twiceP := p.Double()

	for d := int64(3); d < half; d += 2 {
		table[d] = table[d-2].Add(twiceP)
	}

	acc := Infinity(p.curve)

	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()

		d := int64(digits[i])
		if d == 0 {
			continue
		}

		if d > 0 {
			acc = acc.Add(table[d])
		} else {
			acc = acc.Add(table[-d].Neg())
		}
	}

	return acc
}

// MulLadder computes k*p via the Montgomery ladder: one double and one add
// per bit, for the low bits bits of k. It selects the update with an if/else
// on each bit of k, and Add/Double branch on their inputs, so its running
// time is not independent of k.
func MulLadder[F Field[F]](p *Point[F], k *bn.Int, bits int) *Point[F] {
	r0 := Infinity(p.curve)
	r1 := p.Copy()

	for i := bits - 1; i >= 0; i-- {
		bit := k.Bit(i)

		if bit == 1 {
			r0, r1 = r0.Add(r1), r1.Double()
		} else {
			r1, r0 = r0.Add(r1), r0.Double()
		}
	}

	return r0
}

// MulFixedWindow computes k*p via the regular fixed-window (LWREG)
// strategy: k is recoded to signed odd digits in
// {+-1, +-3, ..., +-(2^w-1)} with no zero digit, then the routine performs
// one table lookup (by linear scan, to avoid a secret-dependent memory
// index) and one add per window. An even k is recoded as k+1 and p is
// subtracted from the result.
func MulFixedWindow[F Field[F]](p *Point[F], k *bn.Int, w uint) *Point[F] {
	kk := k.Copy()
	even := kk.Bit(0) == 0
	if even {
		kk.Add(kk, bn.FromInt64(1))
	}

	digits := regularRecode(kk, w)

	half := int64(1) << (w - 1)
	table := make([]*Point[F], half)
	table[0] = p.Copy()

	twiceP := p.Double()
	for i := int64(1); i < half; i++ {
		table[i] = table[i-1].Add(twiceP)
	}

	lookup := func(d int64) *Point[F] {
		abs := d
		neg := false

		if abs < 0 {
			abs = -abs
			neg = true
		}

		idx := (abs - 1) / 2

		var sel *Point[F]
		for i := int64(0); i < half; i++ {
			if i == idx {
				sel = table[i]
			}
		}

		if neg {
			return sel.Neg()
		}

		return sel
	}

	acc := Infinity(p.curve)
	for i := len(digits) - 1; i >= 0; i-- {
		for j := uint(0); j < w; j++ {
			acc = acc.Double()
		}

		acc = acc.Add(lookup(int64(digits[i])))
	}

	if even {
		acc = acc.Sub(p)
	}

	return acc
}

// regularRecode produces a no-zero-digit signed recoding of an odd k in odd
// digits in {+-1, +-3, ..., +-(2^w-1)}, least-significant digit first, with
// sum(d_i * 2^(w*i)) == k: while k > 2^w it takes d = (k mod 2^(w+1)) - 2^w,
// which keeps (k - d) / 2^w odd, and the remaining k is the last digit. An
// even k is not handled here; MulFixedWindow recodes k+1 in that case.
func regularRecode(k *bn.Int, w uint) []bn.Digit {
	n := k.Copy()
	windows := (n.BitLen() + int(w) - 1) / int(w)
	if windows == 0 {
		windows = 1
	}

	digits := make([]bn.Digit, 0, windows+1)
	modulus := int64(1) << (w + 1)
	half := modulus / 2

	for n.Cmp(bn.FromInt64(half)) > 0 {
		d := int64(n.Bit(0))
		for b := uint(1); b <= w; b++ {
			d |= int64(n.Bit(int(b))) << b
		}

		d -= half

		digits = append(digits, bn.Digit(d))

		n.Sub(n, bn.FromInt64(d))
		n.Rsh(n, w)
	}

	return append(digits, bn.Digit(n.Big().Int64()))
}

// MulSim computes k*p + m*q using a joint double-and-add over bn.JSF's
// signed-digit recoding of (k, m), cheaper than two independent scalar
// multiplications.
func MulSim[F Field[F]](p *Point[F], k *bn.Int, q *Point[F], m *bn.Int) *Point[F] {
	d1, d2 := bn.JSF(k, m)

	pNeg := p.Neg()
	qNeg := q.Neg()

	acc := Infinity(p.curve)

	for i := len(d1) - 1; i >= 0; i-- {
		acc = acc.Double()

		switch d1[i] {
		case 1:
			acc = acc.Add(p)
		case -1:
			acc = acc.Add(pNeg)
		}

		switch d2[i] {
		case 1:
			acc = acc.Add(q)
		case -1:
			acc = acc.Add(qNeg)
		}
	}

	return acc
}

// MultiMul computes the sum of k_i*p_i for n points via Pippenger-style
// bucketing : the scalars are partitioned into windowBits-bit
// windows, each window accumulates buckets keyed by digit value, and the
// buckets are folded together with a running-sum technique before being
// combined across windows by repeated doubling.
func MultiMul[F Field[F]](curve *Params[F], points []*Point[F], scalars []*bn.Int, windowBits uint) *Point[F] {
	if len(points) == 0 {
		return Infinity(curve)
	}

	maxBits := 0
	for _, s := range scalars {
		if b := s.BitLen(); b > maxBits {
			maxBits = b
		}
	}

	numWindows := (maxBits + int(windowBits) - 1) / int(windowBits)
	if numWindows == 0 {
		numWindows = 1
	}

	result := Infinity(curve)
	numBuckets := 1 << windowBits

	for w := numWindows - 1; w >= 0; w-- {
		for i := uint(0); i < windowBits; i++ {
			result = result.Double()
		}

		buckets := make([]*Point[F], numBuckets)

		for i, s := range scalars {
			digit := windowDigit(s, uint(w)*windowBits, windowBits)
			if digit == 0 {
				continue
			}

			if buckets[digit] == nil {
				buckets[digit] = points[i].Copy()
			} else {
				buckets[digit] = buckets[digit].Add(points[i])
			}
		}

		running := Infinity(curve)
		windowSum := Infinity(curve)

		for b := numBuckets - 1; b >= 1; b-- {
			if buckets[b] != nil {
				running = running.Add(buckets[b])
			}

			windowSum = windowSum.Add(running)
		}

		result = result.Add(windowSum)
	}

	return result
}

func windowDigit(s *bn.Int, offset, width uint) int {
	d := 0
	for i := uint(0); i < width; i++ {
		d |= int(s.Bit(int(offset+i))) << i
	}

	return d
}

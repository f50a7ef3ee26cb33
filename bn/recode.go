// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package bn

// Digit is one signed digit of a recoded scalar.
type Digit int8

// NAF returns the non-adjacent form of k: a signed-digit representation in
// {-1, 0, 1} with no two adjacent nonzero digits, least-significant digit
// first. On average a third of the digits are nonzero versus half for plain
// binary, which is what makes double-and-add over NAF cheaper.
func NAF(k *Int) []Digit {
	n := k.Copy()
	var out []Digit

	for !n.IsZero() {
		if n.Bit(0) == 1 {
			// d = 2 - (n mod 4); always odd, so d in {-1, 1}.
			mod4 := n.Bit(1)
			var d Digit
			if mod4 == 0 {
				d = 1
			} else {
				d = -1
			}

			out = append(out, d)

			if d == 1 {
				n.Sub(n, FromInt64(1))
			} else {
				n.Add(n, FromInt64(1))
			}
		} else {
			out = append(out, 0)
		}

		n.Rsh(n, 1)
	}

	return out
}

// WNAF returns the width-w NAF of k: signed odd digits in
// {±1, ±3, ..., ±(2^(w-1)-1)} (plus zero digits), least-significant digit
// first, such that at most one in every w digits is nonzero. w must be >= 2.
// Used to drive the sliding-window and w-NAF scalar-multiplication
// strategies against a precomputed odd-multiples table.
func WNAF(k *Int, w uint) []Digit {
	if w < 2 {
		w = 2
	}

	modulus := int64(1) << w
	half := modulus / 2

	n := k.Copy()
	var out []Digit

	for !n.IsZero() {
		if n.Bit(0) == 1 {
			mod := int64(n.v.Bits()[0]) & (modulus - 1)

			d := mod
			if d >= half {
				d -= modulus
			}

			out = append(out, Digit(d))
			n.Sub(n, FromInt64(d))
		} else {
			out = append(out, 0)
		}

		n.Rsh(n, 1)
	}

	return out
}

// JSF returns two equal-length signed-digit sequences for (k1, k2),
// least-significant digit first, used by mul_sim. Each scalar is recoded on
// its own by the NAF rule of jsfDigit and the shorter one is padded with
// zero digits; the pair is not the canonical joint sparse form, and its
// density of nonzero digit-pairs is that of two independent NAFs.
func JSF(k1, k2 *Int) (d1, d2 []Digit) {
	a, b := k1.Copy(), k2.Copy()

	for !a.IsZero() || !b.IsZero() {
		u1 := jsfDigit(a)
		u2 := jsfDigit(b)

		d1 = append(d1, u1)
		d2 = append(d2, u2)

		if u1 != 0 {
			a.Sub(a, FromInt64(int64(u1)))
		}
		if u2 != 0 {
			b.Sub(b, FromInt64(int64(u2)))
		}

		a.Rsh(a, 1)
		b.Rsh(b, 1)
	}

	return d1, d2
}

// jsfDigit computes the next digit of one scalar's recoding by the
// single-scalar NAF rule: 0 for even n, otherwise +1 or -1 from n mod 4. It
// looks only at n, never at the other scalar of the pair, so no joint
// lookahead takes place; the digits still sum to n, and only sparsity
// differs from the joint sparse form.
func jsfDigit(n *Int) Digit {
	if n.Bit(0) == 0 {
		return 0
	}

	mod4 := n.Bit(1)
	if mod4 == 0 {
		return 1
	}

	return -1
}

// FrobeniusExpansion recodes a scalar k in base lambda, where lambda is the
// curve's Frobenius/GLV eigenvalue, returning coefficients c0, c1, ... with
// k = sum(ci * lambda^i). Used by the GLV/GLS multi-scalar decomposition
// (k = k1 + k2*lambda, |k1|,|k2| <= sqrt(r)) and, more generally, by
// endomorphism-based scalar recoding on curves with a degree-d twist.
func FrobeniusExpansion(k, lambda *Int, digits int) []*Int {
	coeffs := make([]*Int, 0, digits)
	rem := k.Copy()

	for i := 0; i < digits; i++ {
		q, r, err := DivMod(rem, lambda)
		if err != nil {
			// lambda == 0: degenerate expansion, remaining coefficients are 0.
			coeffs = append(coeffs, New())
			continue
		}

		coeffs = append(coeffs, r)
		rem = q
	}

	return coeffs
}

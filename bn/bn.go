// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package bn provides the variable-length big-integer layer:
// scalars, moduli, and the recodings (NAF, w-NAF, JSF, Frobenius-expansion)
// consumed by the scalar-multiplication menu in package curve.
//
// Int wraps math/big.Int rather than reimplementing schoolbook long
// arithmetic on machine words: math/big already gives a correct,
// well-tested variable-length digit vector with sign. The recodings and
// primality tests below are the part of this layer that math/big does not
// provide.
package bn

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/relic-go/relic/internal/errs"
)

// Int is a variable-length signed integer: a digit vector (delegated to
// math/big.Int), a sign carried by math/big.Int itself, and a "used
// length" implicit in big.Int's normalized form (it never keeps leading
// zero words, so the canonical-form invariant holds by construction).
type Int struct {
	v big.Int
}

// New returns the zero Int.
func New() *Int { return &Int{} }

// FromBig wraps a *big.Int. The argument is copied; mutating it afterwards
// does not affect the returned Int.
func FromBig(x *big.Int) *Int {
	i := New()
	i.v.Set(x)
	return i
}

// FromInt64 returns the Int representation of n.
func FromInt64(n int64) *Int {
	i := New()
	i.v.SetInt64(n)
	return i
}

// Big returns the underlying *big.Int. The caller must not mutate it.
func (i *Int) Big() *big.Int { return &i.v }

// Sign returns -1, 0, or 1, matching math/big.Int.Sign. Zero is canonically
// positive.
func (i *Int) Sign() int { return i.v.Sign() }

// BitLen returns the number of bits required to represent the absolute value.
func (i *Int) BitLen() int { return i.v.BitLen() }

// IsZero reports whether the value is zero.
func (i *Int) IsZero() bool { return i.v.Sign() == 0 }

// Set sets i to x and returns i.
func (i *Int) Set(x *Int) *Int {
	i.v.Set(&x.v)
	return i
}

// Copy returns a new Int with the same value.
func (i *Int) Copy() *Int { return FromBig(&i.v) }

// Add sets i = a + b and returns i.
func (i *Int) Add(a, b *Int) *Int {
	i.v.Add(&a.v, &b.v)
	return i
}

// Sub sets i = a - b and returns i.
func (i *Int) Sub(a, b *Int) *Int {
	i.v.Sub(&a.v, &b.v)
	return i
}

// Neg sets i = -a and returns i.
func (i *Int) Neg(a *Int) *Int {
	i.v.Neg(&a.v)
	return i
}

// Mul sets i = a * b and returns i.
func (i *Int) Mul(a, b *Int) *Int {
	i.v.Mul(&a.v, &b.v)
	return i
}

// Sqr sets i = a * a and returns i.
func (i *Int) Sqr(a *Int) *Int {
	i.v.Mul(&a.v, &a.v)
	return i
}

// DivMod sets q = a/b, r = a%b (Euclidean division with 0 <= r < |b|), and
// returns (q, r), along with an ErrNoValid error instead of panicking when
// b is zero.
func DivMod(a, b *Int) (q, r *Int, err error) {
	if b.IsZero() {
		return nil, nil, fmt.Errorf("bn: div: %w", errs.ErrNoValid)
	}

	q, r = New(), New()
	q.v.DivMod(&a.v, &b.v, &r.v)

	return q, r, nil
}

// Mod sets i = a mod m (0 <= i < m) using the Barrett-equivalent reduction
// math/big performs internally, and returns i.
func (i *Int) Mod(a, m *Int) *Int {
	i.v.Mod(&a.v, &m.v)
	return i
}

// Exp sets i = a^e mod m (or a^e if m is nil) and returns i.
func (i *Int) Exp(a, e, m *Int) *Int {
	var mod *big.Int
	if m != nil {
		mod = &m.v
	}

	i.v.Exp(&a.v, &e.v, mod)

	return i
}

// GCD sets i to gcd(a, b) and, if x, y are non-nil, sets x, y to Bezout
// coefficients such that a*x + b*y = i (extended Euclidean algorithm).
func GCD(x, y, a, b *Int) *Int {
	i := New()

	var bx, by *big.Int
	if x != nil {
		bx = &x.v
	}
	if y != nil {
		by = &y.v
	}

	i.v.GCD(bx, by, &a.v, &b.v)

	return i
}

// ModInverse sets i = a^-1 mod m and returns (i, true), or returns (nil,
// false) if a has no inverse modulo m.
func (i *Int) ModInverse(a, m *Int) (*Int, bool) {
	if i.v.ModInverse(&a.v, &m.v) == nil {
		return nil, false
	}

	return i, true
}

// Jacobi returns the Jacobi symbol (x/y), computed via the extended-GCD
// variant math/big implements internally.
func Jacobi(x, y *Int) int {
	return big.Jacobi(&x.v, &y.v)
}

// Cmp compares i and x, returning -1, 0, or +1.
func (i *Int) Cmp(x *Int) int { return i.v.Cmp(&x.v) }

// Lsh sets i = a << n and returns i.
func (i *Int) Lsh(a *Int, n uint) *Int {
	i.v.Lsh(&a.v, n)
	return i
}

// Rsh sets i = a >> n and returns i.
func (i *Int) Rsh(a *Int, n uint) *Int {
	i.v.Rsh(&a.v, n)
	return i
}

// Bit returns the value of the n-th bit of i.
func (i *Int) Bit(n int) uint { return i.v.Bit(n) }

// Bytes returns the big-endian byte representation of |i| with no leading
// zero byte stripped beyond what math/big already strips.
func (i *Int) Bytes() []byte { return i.v.Bytes() }

// SetBytes interprets buf as the big-endian encoding of an unsigned integer,
// sets i to that value, and returns i.
func (i *Int) SetBytes(buf []byte) *Int {
	i.v.SetBytes(buf)
	return i
}

// String returns i in base-10.
func (i *Int) String() string { return i.v.String() }

// SetString sets i from s in the given base (0 autodetects 0x/0o/0b
// prefixes, matching math/big.Int.SetString) and returns (i, true), or
// (nil, false) on a malformed string.
func (i *Int) SetString(s string, base int) (*Int, bool) {
	if _, ok := i.v.SetString(s, base); !ok {
		return nil, false
	}

	return i, true
}

// Random sets i to a uniform random value in [0, max) using crypto/rand.
func (i *Int) Random(max *Int) (*Int, error) {
	v, err := rand.Int(rand.Reader, &max.v)
	if err != nil {
		return nil, fmt.Errorf("bn: random: %w", err)
	}

	i.v.Set(v)

	return i, nil
}

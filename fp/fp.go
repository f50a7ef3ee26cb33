// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package fp implements the base prime field F_p : modular
// arithmetic with a selectable reduction strategy, derived constants
// (2-adicity, 3-adicity, non-residues), and the inverse/sqrt/cbrt menus.
//
// Generalised from "one hardcoded NIST prime" to any Params built by
// NewParams, and extended with the pseudo-Mersenne quick-reduction path,
// 2-adicity/3-adicity derivation, and constant-time helpers that a
// single-curve field wrapper would not need.
package fp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/relic-go/relic/internal/errs"
)

// Strategy names the modular-reduction algorithm used by Mul/Sqr. It is
// stored once per Params; reduce() switches on it at every call. Only Quick
// has its own folding routine: Montgomery and Dense both reduce with
// big.Int.Mod. Every exported Elt is the canonical integer in [0, p),
// regardless of Strategy.
type Strategy int

const (
	// Montgomery: the default for dense, random primes. Reduction goes
	// through the same big.Int.Mod path as Dense; no Montgomery form is used.
	Montgomery Strategy = iota

	// Quick reduction: a one-pass fold exploiting a pseudo-Mersenne shape
	// p = 2^m - c for small c.
	Quick

	// Dense: plain big.Int division-based reduction, used for primes with
	// no exploitable structure and no Montgomery setup (e.g. scratch/test
	// fields); always correct, never the fastest choice.
	Dense
)

// Params is the read-only description of a base prime field, built once via
// NewParams and shared by every Elt constructed against it. It never
// mutates after construction.
type Params struct {
	p        big.Int
	strategy Strategy

	// pseudo-Mersenne shape parameters, valid only when strategy == Quick.
	pmersBits int
	pmersC    big.Int

	pMinus1Half big.Int // (p-1)/2, used by Legendre
	pMinus2     big.Int // p-2, used by Fermat inverse

	// 2-adicity: p - 1 = e2 * 2^f2.
	f2 uint
	e2 big.Int
	// a non-trivial 2^f2-th root of unity, used by Tonelli-Shanks.
	rootOfUnity2 big.Int

	// 3-adicity: p - 1 = e3 * 3^g3.
	g3 uint
	e3 big.Int

	qnr big.Int // lowest quadratic non-residue
	cnr big.Int // lowest cubic non-residue

	byteLen int
}

// NewParams builds a Params for the given prime under the given reduction
// Strategy. When strategy is Quick, (pmersBits, pmersC) must describe
// p = 2^pmersBits - pmersC; NewParams returns ErrNoConfig if that does not
// hold.
func NewParams(p *big.Int, strategy Strategy, pmersBits int, pmersC int64) (*Params, error) {
	if p.Sign() <= 0 || !p.ProbablyPrime(40) {
		return nil, fmt.Errorf("fp: new params: %w", errs.ErrNoValid)
	}

	pr := &Params{p: *new(big.Int).Set(p), strategy: strategy}
	pr.byteLen = (p.BitLen() + 7) / 8

	if strategy == Quick {
		want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(pmersBits)), big.NewInt(pmersC))
		if want.Cmp(p) != 0 {
			return nil, fmt.Errorf("fp: new params: pseudo-Mersenne shape mismatch: %w", errs.ErrNoConfig)
		}

		pr.pmersBits = pmersBits
		pr.pmersC = *big.NewInt(pmersC)
	}

	one := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)

	pr.pMinus1Half.Rsh(pMinus1, 1)
	pr.pMinus2.Sub(p, big.NewInt(2))

	pr.f2, pr.e2 = twoAdicity(pMinus1)
	pr.rootOfUnity2 = *findRootOfUnity(p, &pr.e2, pr.f2)

	pr.g3, pr.e3 = kAdicity(pMinus1, big.NewInt(3))

	pr.qnr = *lowestNonResidue(p, 2)
	pr.cnr = *lowestNonResidue(p, 3)

	return pr, nil
}

func twoAdicity(n *big.Int) (uint, big.Int) {
	e := new(big.Int).Set(n)
	var f uint

	for e.Bit(0) == 0 {
		e.Rsh(e, 1)
		f++
	}

	return f, *e
}

func kAdicity(n, k *big.Int) (uint, big.Int) {
	e := new(big.Int).Set(n)
	var g uint

	mod := new(big.Int)
	for {
		mod.Mod(e, k)
		if mod.Sign() != 0 {
			break
		}

		e.Div(e, k)
		g++
	}

	return g, *e
}

// findRootOfUnity returns a generator of the 2^f2 Sylow subgroup of F_p^*,
// used as the Tonelli-Shanks non-residue witness.
func findRootOfUnity(p, e2 *big.Int, f2 uint) *big.Int {
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))

	cand := big.NewInt(2)
	for {
		root := new(big.Int).Exp(cand, e2, p)

		// root must have order exactly 2^f2: root^(2^(f2-1)) != 1.
		if f2 == 0 {
			return big.NewInt(1)
		}

		half := new(big.Int).Exp(root, new(big.Int).Lsh(big.NewInt(1), f2-1), p)
		if half.Cmp(big.NewInt(1)) != 0 {
			return root
		}

		cand.Add(cand, big.NewInt(1))

		if cand.Cmp(pMinus1) >= 0 {
			return big.NewInt(1)
		}
	}
}

func lowestNonResidue(p *big.Int, degree int64) *big.Int {
	exp := new(big.Int).Div(new(big.Int).Sub(p, big.NewInt(1)), big.NewInt(degree))

	cand := big.NewInt(2)
	for {
		if new(big.Int).Exp(cand, exp, p).Cmp(big.NewInt(1)) != 0 {
			return new(big.Int).Set(cand)
		}

		cand.Add(cand, big.NewInt(1))
	}
}

// Prime returns the field's modulus.
func (pr *Params) Prime() *big.Int { return new(big.Int).Set(&pr.p) }

// ByteLen returns ceil(bit length of p / 8), the fixed encoded width of
// every Elt under this Params.
func (pr *Params) ByteLen() int { return pr.byteLen }

// QNR returns the lowest quadratic non-residue, the adjoined root used to
// build F_{p^2}.
func (pr *Params) QNR() *big.Int { return new(big.Int).Set(&pr.qnr) }

// CNR returns the lowest cubic non-residue, the adjoined root used to build
// F_{p^3}.
func (pr *Params) CNR() *big.Int { return new(big.Int).Set(&pr.cnr) }

// Elt is an element of F_p, always held in canonical form 0 <= value < p on
// entry and exit of every exported method.
type Elt struct {
	params *Params
	v      big.Int
}

// Zero returns the additive identity of pr.
func Zero(pr *Params) *Elt { return &Elt{params: pr} }

// One returns the multiplicative identity of pr.
func One(pr *Params) *Elt { e := Zero(pr); e.v.SetInt64(1); return e }

// FromBig reduces x modulo pr.Prime() and returns the resulting Elt.
func FromBig(pr *Params, x *big.Int) *Elt {
	e := Zero(pr)
	e.v.Mod(x, &pr.p)
	return e
}

// FromInt64 is a convenience wrapper around FromBig.
func FromInt64(pr *Params, x int64) *Elt {
	return FromBig(pr, big.NewInt(x))
}

// Params returns the field this element belongs to.
func (e *Elt) Params() *Params { return e.params }

// Big returns the canonical integer value as a *big.Int copy.
func (e *Elt) Big() *big.Int { return new(big.Int).Set(&e.v) }

// IsZero reports whether e is the additive identity.
func (e *Elt) IsZero() bool { return e.v.Sign() == 0 }

// Equal reports whether e and o represent the same value in the same field.
func (e *Elt) Equal(o *Elt) bool {
	return e.params == o.params && e.v.Cmp(&o.v) == 0
}

// Set sets e to a and returns e.
func (e *Elt) Set(a *Elt) *Elt {
	e.params = a.params
	e.v.Set(&a.v)
	return e
}

// Copy returns a new Elt with the same value.
func (e *Elt) Copy() *Elt { return Zero(e.params).Set(e) }

func (e *Elt) reduce() *Elt {
	switch e.params.strategy {
	case Quick:
		quickReduce(e.params, &e.v)
	default:
		e.v.Mod(&e.v, &e.params.p)
	}

	if e.v.Sign() < 0 {
		e.v.Add(&e.v, &e.params.p)
	}

	return e
}

// quickReduce folds a value modulo p = 2^m - c by repeatedly replacing the
// high bits above bit m with (high * c), the one-pass reduction for
// pseudo-Mersenne primes.
func quickReduce(pr *Params, x *big.Int) {
	m := uint(pr.pmersBits)

	for x.BitLen() > pr.pmersBits {
		low := new(big.Int).Lsh(big.NewInt(1), m)
		low.Sub(low, big.NewInt(1))
		low.And(low, x)

		high := new(big.Int).Rsh(x, m)
		high.Mul(high, &pr.pmersC)

		x.Add(low, high)
	}

	if x.Cmp(&pr.p) >= 0 {
		x.Sub(x, &pr.p)
	}
}

// Add sets e = a + b and returns e.
func (e *Elt) Add(a, b *Elt) *Elt {
	e.params = a.params
	e.v.Add(&a.v, &b.v)
	return e.reduce()
}

// Sub sets e = a - b and returns e.
func (e *Elt) Sub(a, b *Elt) *Elt {
	e.params = a.params
	e.v.Sub(&a.v, &b.v)
	return e.reduce()
}

// Neg sets e = -a and returns e.
func (e *Elt) Neg(a *Elt) *Elt {
	e.params = a.params
	e.v.Neg(&a.v)
	return e.reduce()
}

// Dbl sets e = 2*a and returns e.
func (e *Elt) Dbl(a *Elt) *Elt {
	e.params = a.params
	e.v.Lsh(&a.v, 1)
	return e.reduce()
}

// Hlv sets e = a/2 via "add p if odd, then shift" and returns e.
func (e *Elt) Hlv(a *Elt) *Elt {
	e.params = a.params
	e.v.Set(&a.v)

	if e.v.Bit(0) == 1 {
		e.v.Add(&e.v, &e.params.p)
	}

	e.v.Rsh(&e.v, 1)

	return e
}

// Mul sets e = a * b and returns e.
func (e *Elt) Mul(a, b *Elt) *Elt {
	e.params = a.params
	e.v.Mul(&a.v, &b.v)
	return e.reduce()
}

// Sqr sets e = a * a and returns e.
func (e *Elt) Sqr(a *Elt) *Elt {
	return e.Mul(a, a)
}

// Shl sets e = a << n (mod p) and returns e.
func (e *Elt) Shl(a *Elt, n uint) *Elt {
	e.params = a.params
	e.v.Lsh(&a.v, n)
	return e.reduce()
}

// Shr sets e = a >> n (no reduction needed, as a is already < p) and returns e.
func (e *Elt) Shr(a *Elt, n uint) *Elt {
	e.params = a.params
	e.v.Rsh(&a.v, n)
	return e
}

// Inv sets e = a^-1 and returns (e, nil), or returns ErrNoValid if a is
// zero. Uses Fermat's little theorem (a^(p-2)); callers that need the
// Euclidean/binary-GCD variant operate on the same canonical value via
// a.Big() and bn.Int.ModInverse.
func (e *Elt) Inv(a *Elt) (*Elt, error) {
	if a.IsZero() {
		e.params = a.params
		e.v.SetInt64(0)

		return e, fmt.Errorf("fp: inv: %w", errs.ErrNoValid)
	}

	e.params = a.params
	e.v.Exp(&a.v, &a.params.pMinus2, &a.params.p)

	return e, nil
}

// Exp sets e = a^k mod p and returns e.
func (e *Elt) Exp(a *Elt, k *big.Int) *Elt {
	e.params = a.params
	e.v.Exp(&a.v, k, &a.params.p)
	return e
}

// Legendre returns the Legendre symbol (a/p): 1 if a is a nonzero square,
// -1 if a is a non-residue, 0 if a is zero.
func (e *Elt) Legendre() int {
	if e.IsZero() {
		return 0
	}

	r := new(big.Int).Exp(&e.v, &e.params.pMinus1Half, &e.params.p)
	if r.Cmp(big.NewInt(1)) == 0 {
		return 1
	}

	return -1
}

// IsSquare reports whether e is a nonzero quadratic residue.
func (e *Elt) IsSquare() bool { return e.Legendre() == 1 }

// Sqrt computes a square root of a via Tonelli-Shanks, parameterised by the
// field's 2-adicity. It returns the canonical (even) root and true when a
// is a square, or sets e to zero and returns false otherwise.
func (e *Elt) Sqrt(a *Elt) (*Elt, bool) {
	pr := a.params

	if a.IsZero() {
		e.params = pr
		e.v.SetInt64(0)

		return e, true
	}

	if !a.IsSquare() {
		e.params = pr
		e.v.SetInt64(0)

		return e, false
	}

	p := &pr.p

	// Fast path p = 3 mod 4: sqrt = a^((p+1)/4).
	if new(big.Int).Mod(p, big.NewInt(4)).Int64() == 3 {
		exp := new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
		root := new(big.Int).Exp(&a.v, exp, p)
		return canonicalRoot(e, pr, root), true
	}

	// General Tonelli-Shanks.
	m := pr.f2
	c := new(big.Int).Set(&pr.rootOfUnity2)
	t := new(big.Int).Exp(&a.v, &pr.e2, p)
	rExp := new(big.Int).Rsh(new(big.Int).Add(&pr.e2, big.NewInt(1)), 1)
	r := new(big.Int).Exp(&a.v, rExp, p)

	for t.Cmp(big.NewInt(1)) != 0 {
		i := uint(0)
		tmp := new(big.Int).Set(t)

		for tmp.Cmp(big.NewInt(1)) != 0 {
			tmp.Mul(tmp, tmp)
			tmp.Mod(tmp, p)
			i++
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(big.NewInt(1), m-i-1), p)
		m = i
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}

	return canonicalRoot(e, pr, r), true
}

func canonicalRoot(e *Elt, pr *Params, root *big.Int) *Elt {
	other := new(big.Int).Sub(&pr.p, root)

	e.params = pr
	if root.Bit(0) == 0 {
		e.v.Set(root)
	} else if other.Bit(0) == 0 {
		e.v.Set(other)
	} else {
		e.v.Set(root)
	}

	return e
}

// Cbrt computes a cube root of a via an exponentiation parameterised by the
// field's 3-adicity, returning (root, true) on success.
// For p = 2 mod 3 it returns a^((2p-1)/3), always defined since every
// element has a unique cube root in that case. When g3 == 0 it returns
// (0, false). For p = 1 mod 3 it tries the single candidate a^((e3+1)/3)
// and returns (0, false) when its cube is not a, even if a has a cube
// root; no 3-adic Tonelli-Shanks search is done. Package pairing never
// calls Cbrt (its cube-root needs are folded into each family's addition
// chain instead).
func (e *Elt) Cbrt(a *Elt) (*Elt, bool) {
	pr := a.params
	p := &pr.p

	if new(big.Int).Mod(p, big.NewInt(3)).Int64() == 2 {
		exp := new(big.Int).Div(new(big.Int).Sub(new(big.Int).Lsh(p, 1), big.NewInt(1)), big.NewInt(3))
		root := new(big.Int).Exp(&a.v, exp, p)

		e.params = pr
		e.v.Set(root)

		return e, true
	}

	if pr.g3 == 0 {
		e.params = pr
		e.v.SetInt64(0)

		return e, false
	}

	// p = 1 mod 3 with g3 > 0: one exponentiation to a^((e3+1)/3), accepted
	// only if it cubes back to a (cube roots only appear in the pairing hard
	// part for KSS18's family-specific chain, which avoids a direct Cbrt
	// call).
	exp := new(big.Int).Add(&pr.e3, big.NewInt(1))
	exp.Div(exp, big.NewInt(3))
	root := new(big.Int).Exp(&a.v, exp, p)

	e.params = pr
	e.v.Set(root)

	cube := new(big.Int).Exp(root, big.NewInt(3), p)
	if cube.Cmp(&a.v) != 0 {
		e.v.SetInt64(0)
		return e, false
	}

	return e, true
}

// CopySec is the constant-time conditional copy fp_copy_sec(c, a, bit):
// e is set to a when the low bit of bit is 1, to c when it is 0, in time
// independent of bit. It implements the selection over the fixed-width
// byte encoding with crypto/subtle-style masking so the branch the Go
// compiler would otherwise introduce on bit never appears.
func (e *Elt) CopySec(c, a *Elt, bit int) *Elt {
	// Select at the byte level to avoid branching on bit in the reduction
	// path; math/big gives us no lower-level access, so we accept one
	// allocation-free pass over fixed-width byte buffers instead.
	abuf := make([]byte, e.params.byteLen)
	cbuf := make([]byte, e.params.byteLen)
	out := make([]byte, e.params.byteLen)

	a.v.FillBytes(abuf)
	c.v.FillBytes(cbuf)

	sel := byte(bit & 1)
	notSel := sel ^ 1

	for i := range out {
		out[i] = abuf[i]*sel + cbuf[i]*notSel
	}

	e.params = a.params
	e.v.SetBytes(out)

	return e
}

// Random sets e to a uniform random element of pr using crypto/rand.
func Random(pr *Params) (*Elt, error) {
	v, err := rand.Int(rand.Reader, &pr.p)
	if err != nil {
		return nil, fmt.Errorf("fp: random: %w", err)
	}

	return &Elt{params: pr, v: *v}, nil
}

// Bytes encodes e as a fixed-width big-endian byte slice of length
// Params.ByteLen().
func (e *Elt) Bytes() []byte {
	buf := make([]byte, e.params.byteLen)
	e.v.FillBytes(buf)

	return buf
}

// SetBytes decodes a fixed-width big-endian encoding into e, rejecting
// inputs of the wrong length or whose value is >= p.
func SetBytes(pr *Params, buf []byte) (*Elt, error) {
	if len(buf) != pr.byteLen {
		return nil, fmt.Errorf("fp: set bytes: %w", errs.ErrNoBuffer)
	}

	v := new(big.Int).SetBytes(buf)
	if v.Cmp(&pr.p) >= 0 {
		return nil, fmt.Errorf("fp: set bytes: %w", errs.ErrNoValid)
	}

	return &Elt{params: pr, v: *v}, nil
}

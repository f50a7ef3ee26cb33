// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import "fmt"

// Point is a Weierstrass curve point in Jacobian coordinates (X:Y:Z)
// mapping to the affine point (X/Z^2, Y/Z^3) , over a curve
// y^2 = x^3 + a*x + b for coordinate field F. The point at infinity is
// Z == 0.
type Point[F Field[F]] struct {
	X, Y, Z F
	curve   *Params[F]
}

// Params describes one Weierstrass curve over coordinate field F: its
// coefficients, subgroup order and cofactor. The generator is not part of
// it.
type Params[F Field[F]] struct {
	A, B     F
	Order    []byte // big-endian r, the prime subgroup order
	Cofactor []byte // big-endian h
	Zero     func() F
	One      func() F
}

// Infinity returns the identity element of curve.
func Infinity[F Field[F]](curve *Params[F]) *Point[F] {
	return &Point[F]{X: curve.One(), Y: curve.One(), Z: curve.Zero(), curve: curve}
}

// NewAffine returns the point (x, y) on curve, in Jacobian form with Z = 1.
func NewAffine[F Field[F]](curve *Params[F], x, y F) *Point[F] {
	return &Point[F]{X: x, Y: y, Z: curve.One(), curve: curve}
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point[F]) IsInfinity() bool { return p.Z.IsZero() }

// Copy returns a new Point with the same value.
func (p *Point[F]) Copy() *Point[F] {
	return &Point[F]{X: p.X, Y: p.Y, Z: p.Z, curve: p.curve}
}

// Equal reports whether p and q represent the same affine point, comparing
// the cross-multiplied Jacobian representatives.
func (p *Point[F]) Equal(q *Point[F]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}

	z1z1 := p.curve.sqr(p.Z)
	z2z2 := p.curve.sqr(q.Z)

	u1 := p.curve.mul(p.X, z2z2)
	u2 := p.curve.mul(q.X, z1z1)

	if !u1.Equal(u2) {
		return false
	}

	z1Cubed := p.curve.mul(z1z1, p.Z)
	z2Cubed := p.curve.mul(z2z2, q.Z)

	s1 := p.curve.mul(p.Y, z2Cubed)
	s2 := p.curve.mul(q.Y, z1Cubed)

	return s1.Equal(s2)
}

func (c *Params[F]) add(a, b F) F  { return c.Zero().Add(a, b) }
func (c *Params[F]) sub(a, b F) F  { return c.Zero().Sub(a, b) }
func (c *Params[F]) neg(a F) F     { return c.Zero().Neg(a) }
func (c *Params[F]) mul(a, b F) F  { return c.Zero().Mul(a, b) }
func (c *Params[F]) sqr(a F) F     { return c.Zero().Sqr(a) }
func (c *Params[F]) dbl(a F) F     { return c.Zero().Add(a, a) }

// Neg returns -p.
func (p *Point[F]) Neg() *Point[F] {
	return &Point[F]{X: p.X, Y: p.curve.neg(p.Y), Z: p.Z, curve: p.curve}
}

// Double returns 2p, using the a=0 "dbl-2009-l"-style formula when A is
// zero and the general a-arbitrary formula otherwise.
func (p *Point[F]) Double() *Point[F] {
	c := p.curve

	if p.IsInfinity() || p.Y.IsZero() {
		return Infinity(c)
	}

	xx := c.sqr(p.X)
	yy := c.sqr(p.Y)
	yyyy := c.sqr(yy)
	zz := c.sqr(p.Z)

	var m F
	if c.A.IsZero() {
		m = c.add(c.dbl(xx), xx)
	} else {
		azz2 := c.sqr(zz)
		azz2 = c.mul(c.A, azz2)
		m = c.add(c.add(xx, xx), xx)
		m = c.add(m, azz2)
	}

	s := c.mul(p.X, yy)
	s = c.dbl(s)
	s = c.dbl(s)

	t := c.sub(c.sqr(m), c.dbl(s))

	yNew := c.sub(s, t)
	yNew = c.mul(m, yNew)
	yNew = c.sub(yNew, c.dbl(c.dbl(c.dbl(yyyy))))

	zNew := c.mul(p.Y, p.Z)
	zNew = c.dbl(zNew)

	return &Point[F]{X: t, Y: yNew, Z: zNew, curve: c}
}

// Add returns p+q, using the general Jacobian addition formula (add-2007-bl
// family); falls back to Double when p == q and to the identity laws when
// either operand is infinity.
func (p *Point[F]) Add(q *Point[F]) *Point[F] {
	c := p.curve

	if p.IsInfinity() {
		return q.Copy()
	}

	if q.IsInfinity() {
		return p.Copy()
	}

	z1z1 := c.sqr(p.Z)
	z2z2 := c.sqr(q.Z)

	u1 := c.mul(p.X, z2z2)
	u2 := c.mul(q.X, z1z1)

	z1Cubed := c.mul(z1z1, p.Z)
	z2Cubed := c.mul(z2z2, q.Z)

	s1 := c.mul(p.Y, z2Cubed)
	s2 := c.mul(q.Y, z1Cubed)

	if u1.Equal(u2) {
		if !s1.Equal(s2) {
			return Infinity(c)
		}

		return p.Double()
	}

	h := c.sub(u2, u1)
	i := c.sqr(c.dbl(h))
	j := c.mul(h, i)
	r := c.dbl(c.sub(s2, s1))
	v := c.mul(u1, i)

	xNew := c.sub(c.sub(c.sqr(r), j), c.dbl(v))
	yNew := c.sub(c.mul(r, c.sub(v, xNew)), c.dbl(c.mul(s1, j)))

	z1PlusZ2 := c.add(p.Z, q.Z)
	zNew := c.sub(c.sub(c.sqr(z1PlusZ2), z1z1), z2z2)
	zNew = c.mul(zNew, h)

	return &Point[F]{X: xNew, Y: yNew, Z: zNew, curve: c}
}

// Sub returns p-q.
func (p *Point[F]) Sub(q *Point[F]) *Point[F] { return p.Add(q.Neg()) }

// Affine returns the affine (x, y) coordinates, or an error if p is
// infinity (callers should check IsInfinity first if that is a valid
// input).
func (p *Point[F]) Affine() (x, y F, err error) {
	if p.IsInfinity() {
		var zero F
		return zero, zero, fmt.Errorf("curve: affine: point at infinity")
	}

	c := p.curve

	zInv, err := c.Zero().Inv(p.Z)
	if err != nil {
		var zero F
		return zero, zero, err
	}

	zInv2 := c.sqr(zInv)
	zInv3 := c.mul(zInv2, zInv)

	return c.mul(p.X, zInv2), c.mul(p.Y, zInv3), nil
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b in Jacobian
// form (Y^2 = X^3 + a*X*Z^4 + b*Z^6), without normalising to affine first.
func (p *Point[F]) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}

	c := p.curve

	lhs := c.sqr(p.Y)

	x3 := c.mul(c.sqr(p.X), p.X)
	z2 := c.sqr(p.Z)
	z4 := c.sqr(z2)
	z6 := c.mul(z4, z2)

	ax := c.mul(c.A, p.X)
	ax = c.mul(ax, z4)

	bz6 := c.mul(c.B, z6)

	rhs := c.add(x3, ax)
	rhs = c.add(rhs, bz6)

	return lhs.Equal(rhs)
}

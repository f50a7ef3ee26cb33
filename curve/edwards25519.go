// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package curve

import (
	"fmt"

	edwards "filippo.io/edwards25519"

	"github.com/relic-go/relic/internal/errs"
)

// Ed25519Point wraps filippo.io/edwards25519's extended-coordinates point,
// the ED25519 parameter set standing outside the generic Weierstrass
// Point[F] machinery: twisted-Edwards addition has no a, b coefficients
// and no point at infinity in affine form, so it is not a
// Field[T]-parametrised instantiation of Point[F] but its own thin wrapper
// over the well-audited constant-time implementation.
type Ed25519Point struct {
	p *edwards.Point
}

// Ed25519Identity returns the neutral element of the Ed25519 group.
func Ed25519Identity() *Ed25519Point {
	return &Ed25519Point{p: edwards.NewIdentityPoint()}
}

// Ed25519Generator returns the standard base point B.
func Ed25519Generator() *Ed25519Point {
	return &Ed25519Point{p: edwards.NewGeneratorPoint()}
}

// Ed25519FromBytes decodes a 32-byte compressed encoding.
func Ed25519FromBytes(data []byte) (*Ed25519Point, error) {
	p, err := edwards.NewIdentityPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("curve: ed25519: decode: %w", errs.ErrNoValid)
	}

	return &Ed25519Point{p: p}, nil
}

// Bytes returns the 32-byte compressed encoding of p.
func (p *Ed25519Point) Bytes() []byte { return p.p.Bytes() }

// Add returns p+q.
func (p *Ed25519Point) Add(q *Ed25519Point) *Ed25519Point {
	return &Ed25519Point{p: edwards.NewIdentityPoint().Add(p.p, q.p)}
}

// Sub returns p-q.
func (p *Ed25519Point) Sub(q *Ed25519Point) *Ed25519Point {
	return &Ed25519Point{p: edwards.NewIdentityPoint().Subtract(p.p, q.p)}
}

// Neg returns -p.
func (p *Ed25519Point) Neg() *Ed25519Point {
	return &Ed25519Point{p: edwards.NewIdentityPoint().Negate(p.p)}
}

// Equal reports whether p and q represent the same point.
func (p *Ed25519Point) Equal(q *Ed25519Point) bool { return p.p.Equal(q.p) == 1 }

// ScalarMul returns k*p for a scalar given as its 32-byte little-endian
// canonical encoding.
func (p *Ed25519Point) ScalarMul(scalar []byte) (*Ed25519Point, error) {
	s, err := edwards.NewScalar().SetCanonicalBytes(scalar)
	if err != nil {
		return nil, fmt.Errorf("curve: ed25519: scalar: %w", errs.ErrNoValid)
	}

	return &Ed25519Point{p: edwards.NewIdentityPoint().ScalarMult(s, p.p)}, nil
}

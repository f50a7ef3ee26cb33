// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package serialize implements point (de)serialization for G1 and G2: the
// big-endian uncompressed (0x04 || x || y), compressed (0x02/0x03 || x, low
// tag bit the parity of y), and point-at-infinity (0x00, padded to the
// slot's full width) wire forms. Field-element encoding itself (fixed
// ByteLen-width big-endian, coordinate-by-coordinate for extension fields)
// already lives on fp.Elt/fptower.Fp2 (Bytes/SetBytes, SetBytesFp2); this
// package only adds the point-level tag byte and the on-curve check every
// decode performs. Decoding does not check membership in the prime-order
// subgroup.
//
// Grounded on an upstream encoding/encoding.go I2OSP/OS2IP tag-byte
// pattern (per DESIGN.md's disposition notes) and RFC 9380-adjacent
// point-compression conventions common to BLS12-381-family curve
// implementations.
package serialize

import (
	"fmt"

	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fp"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/internal/errs"
)

const (
	tagInfinity     byte = 0x00
	tagCompressedEv byte = 0x02
	tagCompressedOd byte = 0x03
	tagUncompressed byte = 0x04
)

// EncodeG1 serialises p in either compressed (33/49/65-ish byte, curve-
// dependent) or uncompressed form.
func EncodeG1(p *curve.G1, fieldParams *fp.Params, compressed bool) ([]byte, error) {
	n := fieldParams.ByteLen()

	if p.IsInfinity() {
		if compressed {
			return make([]byte, 1+n), nil
		}

		return make([]byte, 1+2*n), nil
	}

	x, y, err := p.Affine()
	if err != nil {
		return nil, fmt.Errorf("serialize: encode g1: %w", err)
	}

	if compressed {
		out := make([]byte, 1+n)

		if y.Big().Bit(0) == 0 {
			out[0] = tagCompressedEv
		} else {
			out[0] = tagCompressedOd
		}

		copy(out[1:], x.Bytes())

		return out, nil
	}

	out := make([]byte, 1+2*n)
	out[0] = tagUncompressed
	copy(out[1:1+n], x.Bytes())
	copy(out[1+n:], y.Bytes())

	return out, nil
}

// DecodeG1 deserialises buf, auto-detecting compressed/uncompressed/
// infinity form from its length and tag byte, validating the curve
// equation.
func DecodeG1(curveParams *curve.G1Params, fieldParams *fp.Params, buf []byte) (*curve.G1, error) {
	n := fieldParams.ByteLen()

	switch len(buf) {
	case 1 + n:
		return decodeG1Compressed(curveParams, fieldParams, buf, n)
	case 1 + 2*n:
		return decodeG1Uncompressed(curveParams, fieldParams, buf, n)
	default:
		return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoBuffer)
	}
}

func decodeG1Compressed(curveParams *curve.G1Params, fieldParams *fp.Params, buf []byte, n int) (*curve.G1, error) {
	switch buf[0] {
	case tagInfinity:
		return curve.G1Infinity(curveParams), nil
	case tagCompressedEv, tagCompressedOd:
		x, err := fp.SetBytes(fieldParams, buf[1:])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g1: %w", err)
		}

		rhs := g1RHS(curveParams, fieldParams, x)

		y, ok := fp.Zero(fieldParams).Sqrt(rhs)
		if !ok {
			return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoValid)
		}

		wantOdd := buf[0] == tagCompressedOd
		if (y.Big().Bit(0) == 1) != wantOdd {
			y = fp.Zero(fieldParams).Neg(y)
		}

		p := curve.NewG1Affine(curveParams, x, y)
		if !p.IsOnCurve() {
			return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoValid)
		}

		return p, nil
	default:
		return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoValid)
	}
}

func decodeG1Uncompressed(curveParams *curve.G1Params, fieldParams *fp.Params, buf []byte, n int) (*curve.G1, error) {
	switch buf[0] {
	case tagInfinity:
		return curve.G1Infinity(curveParams), nil
	case tagUncompressed:
		x, err := fp.SetBytes(fieldParams, buf[1:1+n])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g1: %w", err)
		}

		y, err := fp.SetBytes(fieldParams, buf[1+n:])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g1: %w", err)
		}

		p := curve.NewG1Affine(curveParams, x, y)
		if !p.IsOnCurve() {
			return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoValid)
		}

		return p, nil
	default:
		return nil, fmt.Errorf("serialize: decode g1: %w", errs.ErrNoValid)
	}
}

// g1RHS evaluates x^3 + a*x + b, the quantity a compressed decode must take
// a square root of to recover y.
func g1RHS(curveParams *curve.G1Params, fieldParams *fp.Params, x *fp.Elt) *fp.Elt {
	x3 := fp.Zero(fieldParams).Mul(fp.Zero(fieldParams).Sqr(x), x)
	ax := fp.Zero(fieldParams).Mul(curveParams.A, x)

	rhs := fp.Zero(fieldParams).Add(x3, ax)
	rhs.Add(rhs, curveParams.B)

	return rhs
}

// EncodeG2 serialises p over its F_{p^2} coordinates analogously to
// EncodeG1, each coordinate using Fp2.Bytes.
func EncodeG2(p *curve.G2, fieldParams *fp.Params, compressed bool) ([]byte, error) {
	n := 2 * fieldParams.ByteLen()

	if p.IsInfinity() {
		if compressed {
			return make([]byte, 1+n), nil
		}

		return make([]byte, 1+2*n), nil
	}

	x, y, err := p.Affine()
	if err != nil {
		return nil, fmt.Errorf("serialize: encode g2: %w", err)
	}

	if compressed {
		out := make([]byte, 1+n)

		if y.Sign() == 0 {
			out[0] = tagCompressedEv
		} else {
			out[0] = tagCompressedOd
		}

		copy(out[1:], x.Bytes())

		return out, nil
	}

	out := make([]byte, 1+2*n)
	out[0] = tagUncompressed
	copy(out[1:1+n], x.Bytes())
	copy(out[1+n:], y.Bytes())

	return out, nil
}

// DecodeG2 is EncodeG2's inverse, with the same tag/length auto-detection
// and curve-equation validation as DecodeG1.
func DecodeG2(curveParams *curve.G2Params, fieldParams *fp.Params, buf []byte) (*curve.G2, error) {
	n := 2 * fieldParams.ByteLen()

	switch len(buf) {
	case 1 + n:
		return decodeG2Compressed(curveParams, fieldParams, buf, n)
	case 1 + 2*n:
		return decodeG2Uncompressed(curveParams, fieldParams, buf, n)
	default:
		return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoBuffer)
	}
}

func decodeG2Compressed(curveParams *curve.G2Params, fieldParams *fp.Params, buf []byte, n int) (*curve.G2, error) {
	switch buf[0] {
	case tagInfinity:
		return curve.G2Infinity(curveParams), nil
	case tagCompressedEv, tagCompressedOd:
		x, err := fptower.SetBytesFp2(fieldParams, buf[1:])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g2: %w", err)
		}

		rhs := g2RHS(curveParams, x)

		y, ok := fptower.NewFp2(fieldParams).Sqrt(rhs)
		if !ok {
			return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoValid)
		}

		wantOdd := buf[0] == tagCompressedOd
		if (y.Sign() == 1) != wantOdd {
			y = fptower.NewFp2(fieldParams).Neg(y)
		}

		p := curve.NewG2Affine(curveParams, x, y)
		if !p.IsOnCurve() {
			return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoValid)
		}

		return p, nil
	default:
		return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoValid)
	}
}

func decodeG2Uncompressed(curveParams *curve.G2Params, fieldParams *fp.Params, buf []byte, n int) (*curve.G2, error) {
	switch buf[0] {
	case tagInfinity:
		return curve.G2Infinity(curveParams), nil
	case tagUncompressed:
		x, err := fptower.SetBytesFp2(fieldParams, buf[1:1+n])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g2: %w", err)
		}

		y, err := fptower.SetBytesFp2(fieldParams, buf[1+n:])
		if err != nil {
			return nil, fmt.Errorf("serialize: decode g2: %w", err)
		}

		p := curve.NewG2Affine(curveParams, x, y)
		if !p.IsOnCurve() {
			return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoValid)
		}

		return p, nil
	default:
		return nil, fmt.Errorf("serialize: decode g2: %w", errs.ErrNoValid)
	}
}

func g2RHS(curveParams *curve.G2Params, x *fptower.Fp2) *fptower.Fp2 {
	pr := x.Params()

	x3 := fptower.NewFp2(pr).Mul(fptower.NewFp2(pr).Sqr(x), x)
	ax := fptower.NewFp2(pr).Mul(curveParams.A, x)

	rhs := fptower.NewFp2(pr).Add(x3, ax)
	rhs.Add(rhs, curveParams.B)

	return rhs
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2021 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package delegate implements a pairing batch-delegation protocol family: a
// constrained verifier hands a vector of (G1, G2) pairs to an untrusted
// prover, the prover returns purported pairing values, and the verifier
// checks the whole batch with a single multi-pairing call plus a handful
// of target-field exponentiations rather than one pairing per entry.
//
// Grounded on the RELIC toolkit's relic_cp_pdbat.c three-routine family
// (pdbat, mvbat, ambat), which share one blinded-batch-check core
// differing only in whether the G1 side, the G2 side, or both vary across
// the batch. That source's own comments reference a `g2_free(_1[i])` call
// and an undeclared `s` that do not correspond to any variable the routine
// actually declares: this package has no free-list to leak (Go's GC
// retires the per-call allocations) and names its single blinding scalar
// per pair explicitly (coeffs[i] below), so neither typo has a surviving
// analogue to carry forward.
//
// All three entry points share the same verification shape: sample a
// blinding coefficient c_i in [0, 2^sigma) per batch entry, scale the G1
// side of pair i by c_i, run one multi-pairing over the scaled pairs, and
// compare the result against the product of the prover's claimed values
// raised to the same c_i. A cheating prover who supplied even one wrong
// value survives this check only if the random c_i happen to cancel the
// error, which occurs with probability at most 2^-sigma (the "randomness
// distance") independent of an adversary who has prepared up to 2^tau
// precomputed forgeries ("adversary storage tau").
package delegate

import (
	"fmt"

	"github.com/relic-go/relic/bn"
	"github.com/relic-go/relic/curve"
	"github.com/relic-go/relic/fptower"
	"github.com/relic-go/relic/internal/errs"
	"github.com/relic-go/relic/pairing"
)

// Pair is one (P, Q) input to a delegated pairing computation.
type Pair struct {
	P *curve.G1
	Q *curve.G2
}

// blindingCoeffs samples n uniform coefficients in [0, 2^sigma), the
// randomness-distance parameter of the batch check.
func blindingCoeffs(n int, sigma uint) ([]*bn.Int, error) {
	bound := bn.New().Lsh(bn.FromInt64(1), sigma)

	coeffs := make([]*bn.Int, n)

	for i := range coeffs {
		c, err := bn.New().Random(bound)
		if err != nil {
			return nil, fmt.Errorf("delegate: blinding coeffs: %w", err)
		}

		coeffs[i] = c
	}

	return coeffs, nil
}

// verifyBatch is the shared check core: given pairs, the prover's claimed
// per-pair pairing values, and freshly sampled blinding coefficients, it
// computes prod_i e(c_i*P_i, Q_i) via one multi-pairing call and compares it
// against prod_i claimed_i^c_i. On mismatch it zeroes every entry of
// claimed in place.
func verifyBatch(ctx *pairing.Context, pairs []Pair, claimed []*fptower.Fp12, sigma uint) (bool, error) {
	if len(pairs) == 0 || len(pairs) != len(claimed) {
		return false, fmt.Errorf("delegate: verify batch: %w", errs.ErrNoValid)
	}

	coeffs, err := blindingCoeffs(len(pairs), sigma)
	if err != nil {
		return false, err
	}

	scaledP := make([]*curve.G1, len(pairs))
	qs := make([]*curve.G2, len(pairs))

	for i, pr := range pairs {
		scaledP[i] = curve.MulBinary(pr.P, coeffs[i])
		qs[i] = pr.Q
	}

	lhs, err := pairing.MultiPairing(ctx, scaledP, qs)
	if err != nil {
		return false, fmt.Errorf("delegate: verify batch: %w", err)
	}

	var rhs *fptower.Fp12

	for i, c := range claimed {
		powered := fptower.NewFp12(c.Params()).Exp(c, coeffs[i].Big())

		if rhs == nil {
			rhs = powered
		} else {
			rhs = fptower.NewFp12(c.Params()).Mul(rhs, powered)
		}
	}

	if lhs.Equal(rhs) {
		return true, nil
	}

	zeroClaimed(claimed)

	return false, nil
}

func zeroClaimed(claimed []*fptower.Fp12) {
	for i, c := range claimed {
		if c == nil {
			continue
		}

		claimed[i] = fptower.NewFp12(c.Params())
	}
}

// PDBat ("pairing delegation with batch verification") checks a single
// delegated pairing e(p, q) against the prover's claimed value with one
// pairing call and one exponentiation.
func PDBat(ctx *pairing.Context, p *curve.G1, q *curve.G2, claimed *fptower.Fp12, sigma uint) (bool, error) {
	values := []*fptower.Fp12{claimed}

	ok, err := verifyBatch(ctx, []Pair{{P: p, Q: q}}, values, sigma)
	if err != nil {
		return false, fmt.Errorf("delegate: pdbat: %w", err)
	}

	claimed.Set(values[0])

	return ok, nil
}

// MVBat ("multi-verifier batch") checks a batch of independently-keyed
// pairs in one call, the shape several verifiers pooling their delegated
// pairings into a single proof-check round needs.
func MVBat(ctx *pairing.Context, pairs []Pair, claimed []*fptower.Fp12, sigma uint) (bool, error) {
	ok, err := verifyBatch(ctx, pairs, claimed, sigma)
	if err != nil {
		return false, fmt.Errorf("delegate: mvbat: %w", err)
	}

	return ok, nil
}

// AmBat ("asymmetric multi-batch") checks e(p_i, q) for a fixed q across a
// vector of G1 inputs.
func AmBat(ctx *pairing.Context, ps []*curve.G1, q *curve.G2, claimed []*fptower.Fp12, sigma uint) (bool, error) {
	if len(ps) == 0 || len(ps) != len(claimed) {
		return false, fmt.Errorf("delegate: ambat: %w", errs.ErrNoValid)
	}

	pairs := make([]Pair, len(ps))
	for i, p := range ps {
		pairs[i] = Pair{P: p, Q: q}
	}

	ok, err := verifyBatch(ctx, pairs, claimed, sigma)
	if err != nil {
		return false, fmt.Errorf("delegate: ambat: %w", err)
	}

	return ok, nil
}

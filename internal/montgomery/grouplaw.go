// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package montgomery

import (
	"math/big"

	"github.com/bytemare/edx25519/internal/field"
)

// GroupLaw implements the full affine (x, y) Weierstrass-style group law
// for the Montgomery curve (spec §4.3.4), used to validate the x-only
// ladders rather than for performance. Unlike the ladders, it can
// observe and must surface the identity element.
type GroupLaw struct{}

// Add returns p + q using the textbook chord-and-tangent group law.
// Adding a point to its negation yields the identity.
func (GroupLaw) Add(p, q AffinePoint) AffinePoint {
	if p.IsIdentity() {
		return q
	}

	if q.IsIdentity() {
		return p
	}

	px, py := p.XY()
	qx, qy := q.XY()

	if field.Equal(px, qx) {
		if field.Equal(py, field.Neg(qy)) || field.IsZero(py) {
			return Identity()
		}

		return GroupLaw{}.Double(p)
	}

	lambda := field.Mul(field.Sub(qy, py), field.Inverse(field.Sub(qx, px)))

	return addFromSlope(px, py, qx, lambda)
}

// Double returns 2p. A point with y = 0 doubles to the identity.
func (GroupLaw) Double(p AffinePoint) AffinePoint {
	if p.IsIdentity() {
		return p
	}

	x, y := p.XY()
	if field.IsZero(y) {
		return Identity()
	}

	num := field.Add(field.Add(field.Mul(field.Mul(big.NewInt(3), x), x), field.Mul(field.Mul(big.NewInt(2), CoeffA), x)), field.One())
	den := field.Mul(big.NewInt(2), y)
	lambda := field.Mul(num, field.Inverse(den))

	return addFromSlope(x, y, x, lambda)
}

// addFromSlope finishes an addition (or doubling, when qx == px) given
// the chord/tangent slope lambda, following
// x3 = lambda^2 - A - x1 - x2, y3 = lambda*(x1 - x3) - y1.
func addFromSlope(px, py, qx, lambda *big.Int) AffinePoint {
	x3 := field.Sub(field.Sub(field.Sub(field.Square(lambda), CoeffA), px), qx)
	y3 := field.Sub(field.Mul(lambda, field.Sub(px, x3)), py)

	return NewAffinePoint(x3, y3)
}

// Negate returns -p (the reflection of p across the x-axis).
func (GroupLaw) Negate(p AffinePoint) AffinePoint {
	if p.IsIdentity() {
		return p
	}

	x, y := p.XY()

	return NewAffinePoint(x, field.Neg(y))
}

// ScalarMult computes k*P via double-and-add over the bits of k, using
// a point recovered from its x-coordinate (RecoverPoint). It surfaces
// ErrPointAtInfinity if the final result is the identity, since
// spec.md treats that as an invalid X25519 input on this path.
func (g GroupLaw) ScalarMult(k *big.Int, base AffinePoint) (AffinePoint, error) {
	result := Identity()
	addend := base

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = g.Add(result, addend)
		}

		addend = g.Double(addend)
	}

	if result.IsIdentity() {
		return AffinePoint{}, ErrPointAtInfinity
	}

	return result, nil
}

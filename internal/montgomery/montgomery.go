// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package montgomery implements Curve25519 point arithmetic: three
// interchangeable x-only scalar-multiplication ladders (spec §4.3.1-3)
// plus a full affine group law (§4.3.4) used to cross-check them.
package montgomery

import (
	"errors"
	"math/big"

	"github.com/bytemare/edx25519/internal/field"
)

// ErrPointAtInfinity signals that the group-law strategy reached the
// curve's identity element, which spec.md treats as a hard error for
// X25519 inputs (the ladders themselves never emit it).
var ErrPointAtInfinity = errors.New("montgomery: reached point at infinity")

var (
	// CoeffA is the Montgomery curve coefficient A in y^2 = x^3 + A*x^2 + x.
	CoeffA = big.NewInt(486662)

	// A24 is (A-2)/4, the constant folded into the ladder step.
	A24 = big.NewInt(121665)

	// BaseU is the standard base point's u-coordinate, 9.
	BaseU = big.NewInt(9)
)

// Strategy is the capability spec §9 describes: any type that can
// compute the x-only scalar multiplication of a clamped scalar k against
// a u-coordinate satisfies the Curve25519 contract.
type Strategy interface {
	ScalarMult(k, u *big.Int) *big.Int
}

// AffinePoint is a full (x, y) point on the Montgomery curve, or the
// distinguished identity value — spec's "tagged identity" design note,
// made concrete instead of relying on a nullable sentinel.
type AffinePoint struct {
	identity bool
	x, y     *big.Int
}

// Identity returns the Montgomery curve's point at infinity.
func Identity() AffinePoint {
	return AffinePoint{identity: true}
}

// NewAffinePoint builds a non-identity point from its coordinates. The
// caller is responsible for having validated the curve equation (see
// RecoverPoint, which does).
func NewAffinePoint(x, y *big.Int) AffinePoint {
	return AffinePoint{x: field.Mod(x), y: field.Mod(y)}
}

// IsIdentity reports whether p is the point at infinity.
func (p AffinePoint) IsIdentity() bool {
	return p.identity
}

// XY returns the affine coordinates of a non-identity point.
func (p AffinePoint) XY() (*big.Int, *big.Int) {
	return p.x, p.y
}

// onCurve reports whether y^2 == x^3 + A*x^2 + x (mod p).
func onCurve(x, y *big.Int) bool {
	lhs := field.Square(y)

	x2 := field.Square(x)
	x3 := field.Mul(x2, x)
	ax2 := field.Mul(CoeffA, x2)
	rhs := field.Add(field.Add(x3, ax2), x)

	return field.Equal(lhs, rhs)
}

// RecoverPoint recovers a point on the Montgomery curve from its
// x-coordinate, using the prime-agnostic Tonelli-Shanks routine per
// spec §4.3.4 (the group-law strategy's documented y-recovery path).
func RecoverPoint(x *big.Int) (AffinePoint, error) {
	x = field.Mod(x)

	x2 := field.Square(x)
	x3 := field.Mul(x2, x)
	ax2 := field.Mul(CoeffA, x2)
	rhs := field.Add(field.Add(x3, ax2), x)

	y, ok, err := field.Tonelli(rhs)
	if err != nil {
		return AffinePoint{}, err
	}

	if !ok {
		return AffinePoint{}, field.ErrNoSquareRoot
	}

	return NewAffinePoint(x, y), nil
}

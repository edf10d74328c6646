// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package edwards implements twisted-Edwards Edwards25519 point
// arithmetic in both affine and extended-homogeneous coordinates
// (spec §4.4), built entirely on internal/field.
package edwards

import (
	"errors"
	"math/big"

	"github.com/bytemare/edx25519/internal/field"
)

// ErrFieldOutOfRange indicates a decompressed y coordinate was >= p.
var ErrFieldOutOfRange = errors.New("edwards: decoded y is out of the field's range")

// ErrNotOnCurve indicates decompression could not recover a valid x.
var ErrNotOnCurve = errors.New("edwards: no x satisfies the curve equation for this y")

// CoeffD is the twisted-Edwards coefficient d = -121665/121666 mod p,
// computed from our own field arithmetic rather than hardcoded, so it
// is grounded on the same inversion this package already implements.
var CoeffD = field.Mul(field.Neg(big.NewInt(121665)), field.Inverse(big.NewInt(121666)))

// twoD is 2*d, folded into the unified addition formula.
var twoD = field.Add(CoeffD, CoeffD)

// Point is a twisted-Edwards point in extended homogeneous coordinates
// (X, Y, Z, T) with affine x = X/Z, y = Y/Z, X*Y = Z*T. The identity is
// the quadruple (0, 1, 1, 0); IsIdentity tests the affine projection.
type Point struct {
	identity bool
	X, Y, Z, T *big.Int
}

// Identity returns the neutral element of the Edwards25519 group.
func Identity() Point {
	return Point{X: field.Zero(), Y: field.One(), Z: field.One(), T: field.Zero()}
}

// IsIdentity reports whether p is the identity.
func (p Point) IsIdentity() bool {
	if p.identity {
		return true
	}

	x, y := p.ToAffine()

	return field.IsZero(x) && field.Equal(y, field.One())
}

// FromAffine builds an extended point from affine coordinates.
func FromAffine(x, y *big.Int) Point {
	x = field.Mod(x)
	y = field.Mod(y)

	return Point{X: x, Y: y, Z: field.One(), T: field.Mul(x, y)}
}

// ToAffine returns the affine (x, y) projection of p.
func (p Point) ToAffine() (*big.Int, *big.Int) {
	zInv := field.Inverse(p.Z)

	return field.Mul(p.X, zInv), field.Mul(p.Y, zInv)
}

// onCurve reports whether the affine point (x, y) satisfies
// -x^2 + y^2 = 1 + d*x^2*y^2.
func onCurve(x, y *big.Int) bool {
	x2 := field.Square(x)
	y2 := field.Square(y)

	lhs := field.Add(field.Neg(x2), y2)
	rhs := field.Add(field.One(), field.Mul(CoeffD, field.Mul(x2, y2)))

	return field.Equal(lhs, rhs)
}

// OnCurve reports whether p's affine projection satisfies the curve
// equation. Exposed for property tests (spec §8's "every point reached
// by public operations satisfies the curve equation" invariant).
func (p Point) OnCurve() bool {
	x, y := p.ToAffine()
	return onCurve(x, y)
}

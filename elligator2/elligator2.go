// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package elligator2 implements the Elligator 2 map from a field
// element ("representative") onto a Curve25519 Montgomery point,
// supplementing the core X25519/Ed25519 protocols with the
// indistinguishability encoding original_source describes but spec.md
// scopes out of its core modules. It is grounded on the same
// non-uniform encoding Yawning-edwards25519-extra/elligator2.go
// implements against filippo.io/edwards25519, reworked here on top of
// internal/field and internal/montgomery instead of that library.
package elligator2

import (
	"math/big"

	"github.com/bytemare/edx25519/internal/errs"
	"github.com/bytemare/edx25519/internal/field"
	"github.com/bytemare/edx25519/internal/montgomery"
)

const prefix = "elligator2"

// ErrNotInImage is returned by RepresentativeOf when the given point
// has no Elligator 2 preimage (roughly half of all curve points, a
// known property of the map).
var ErrNotInImage = errs.New(prefix, "point has no elligator2 representative")

// z is the fixed quadratic non-residue RFC 9380's curve25519 suite
// uses for the Elligator 2 map. p ≡ 5 (mod 8) makes 2 a non-residue.
var z = big.NewInt(2)

// MapToCurve applies the Elligator 2 map to a 32-byte representative,
// returning the corresponding Montgomery affine point. The map is
// total: every representative maps to some point on the curve.
func MapToCurve(representative []byte) montgomery.AffinePoint {
	r := field.Mod(field.DecodeLittle(representative))

	return mapToCurve(r)
}

func mapToCurve(r *big.Int) montgomery.AffinePoint {
	a := montgomery.CoeffA

	// v = -A / (1 + z*r^2); falls back to v = -A when the denominator
	// vanishes, per Bernstein's original Elligator formulation.
	denom := field.Add(field.One(), field.Mul(z, field.Square(r)))

	var v *big.Int
	if field.IsZero(denom) {
		v = field.Neg(a)
	} else {
		v = field.Mul(field.Neg(a), field.Inverse(denom))
	}

	rhs := curveRHS(v)
	epsilon := field.Legendre(rhs)
	if epsilon == 0 {
		epsilon = 1
	}

	var x *big.Int
	if epsilon == 1 {
		x = v
	} else {
		x = field.Sub(field.Neg(v), a)
	}

	y2 := curveRHS(x)

	y, err := field.Sqrt(y2)
	if err != nil {
		// curveRHS(x) is a square by construction; reaching this means
		// the map's algebra is broken, not a bad representative.
		panic("elligator2: x^3+Ax^2+x was not a square: " + err.Error())
	}

	if epsilon == -1 {
		y = field.Neg(y)
	}

	return montgomery.NewAffinePoint(x, y)
}

// curveRHS returns x^3 + A*x^2 + x, the Montgomery curve's right-hand
// side with B = 1.
func curveRHS(x *big.Int) *big.Int {
	x2 := field.Square(x)
	x3 := field.Mul(x2, x)
	ax2 := field.Mul(montgomery.CoeffA, x2)

	return field.Add(field.Add(x3, ax2), x)
}

// RepresentativeOf returns the Elligator 2 representative of p, if one
// exists. Roughly half of all curve points are not in the map's
// image; those return ErrNotInImage.
func RepresentativeOf(p montgomery.AffinePoint) ([]byte, error) {
	x, y := p.XY()
	a := montgomery.CoeffA

	// A point (x, y) is in the image of the map iff -z*x*(x+A) is a
	// square, so it can be recovered with field.Sqrt.
	candidate := field.Mul(field.Neg(field.Mul(z, x)), field.Add(x, a))

	root, err := field.Sqrt(candidate)
	if err != nil {
		return nil, ErrNotInImage
	}

	// mapToCurve keeps field.Sqrt's root of x^3+Ax^2+x as y when x = v
	// and negates it when x = -v-A, so y tells the two branches apart.
	// For x = v, r^2 = -(x+A)/(z*x) = (root/(z*x))^2; for x = -v-A,
	// r^2 = -x/(z*(x+A)) = (root/(z*(x+A)))^2.
	y0, err := field.Sqrt(curveRHS(x))
	if err != nil {
		return nil, ErrNotInImage
	}

	den := field.Mul(z, x)
	if !field.Equal(y, y0) {
		den = field.Mul(z, field.Add(x, a))
	}

	r := field.Mul(root, field.Inverse(den))

	return field.EncodeLittle(r), nil
}

// legendreSign maps y to +1 if y is "non-negative" (even) under the
// parity convention edwards.Compress and edwards.Decompress use for x,
// and -1 otherwise.
func legendreSign(y *big.Int) int {
	if y.Bit(0) == 0 {
		return 1
	}

	return -1
}

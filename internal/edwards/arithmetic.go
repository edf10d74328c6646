// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards

import (
	"math/big"

	"github.com/bytemare/edx25519/internal/field"
)

// Add computes p + q with the unified add-2008-hwcd-3 formula. Because
// a = -1 is a square and d is a non-square in this field, this formula
// is complete: it also correctly doubles when p and q are the same
// point, and handles either operand being the identity with no special
// casing, grounded on
// (original_source/src/ed25519/extended_edwards_curve.py:add).
func Add(p, q Point) Point {
	a := field.Mul(field.Sub(p.Y, p.X), field.Sub(q.Y, q.X))
	b := field.Mul(field.Add(p.Y, p.X), field.Add(q.Y, q.X))
	c := field.Mul(field.Mul(p.T, twoD), q.T)
	d := field.Mul(field.Add(p.Z, p.Z), q.Z)

	e := field.Sub(b, a)
	f := field.Sub(d, c)
	g := field.Add(d, c)
	h := field.Add(b, a)

	return Point{
		X: field.Mul(e, f),
		Y: field.Mul(g, h),
		Z: field.Mul(f, g),
		T: field.Mul(e, h),
	}
}

// Double computes 2p with the dbl-2008-hwcd formula specialized to
// a = -1, grounded on
// (original_source/src/ed25519/extended_edwards_curve.py:double).
func Double(p Point) Point {
	a := field.Square(p.X)
	b := field.Square(p.Y)
	c := field.Add(field.Square(p.Z), field.Square(p.Z))
	dd := field.Neg(a)

	sum := field.Add(p.X, p.Y)
	e := field.Sub(field.Square(sum), field.Add(a, b))
	g := field.Add(dd, b)
	f := field.Sub(g, c)
	h := field.Sub(dd, b)

	return Point{
		X: field.Mul(e, f),
		Y: field.Mul(g, h),
		Z: field.Mul(f, g),
		T: field.Mul(e, h),
	}
}

// Negate returns -p, the reflection (-x, y) in extended coordinates.
func Negate(p Point) Point {
	return Point{X: field.Neg(p.X), Y: p.Y, Z: p.Z, T: field.Neg(p.T)}
}

// ScalarMult computes k*p by double-and-add from the low bit of k to
// the high bit, per spec §4.4's "double-and-add over the bits of the
// scalar from low to high" note.
func ScalarMult(k *big.Int, p Point) Point {
	result := Identity()
	addend := p

	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = Add(result, addend)
		}

		addend = Double(addend)
	}

	return result
}

// Equal reports strict equality: two points are equal iff their
// affine projections are componentwise equal. Two identities compare
// equal; an identity never compares equal to a non-identity point.
func Equal(p, q Point) bool {
	// X1*Z2 == X2*Z1 and Y1*Z2 == Y2*Z1 avoids computing either inverse.
	lx := field.Mul(p.X, q.Z)
	rx := field.Mul(q.X, p.Z)
	ly := field.Mul(p.Y, q.Z)
	ry := field.Mul(q.Y, p.Z)

	return field.Equal(lx, rx) && field.Equal(ly, ry)
}

// VerifyEqual is the comparison used only by ed25519 signature
// verification. An identity operand matches only another identity, so
// two sides of the verification equation that both reduce to the
// identity compare equal; two non-identity points compare as Equal.
func VerifyEqual(p, q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() && q.IsIdentity()
	}

	return Equal(p, q)
}

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

// RFC7748Ladder implements the Montgomery ladder exactly as pseudocoded
// in RFC 7748 §5: a running (x2,z2,x3,z3) state, a single carried swap
// flag, and 10 field multiplications/squarings per bit (one of them by
// the constant a24).
type RFC7748Ladder struct{}

// ScalarMult returns the affine x-coordinate of k*P, where P has
// u-coordinate u. k is expected to already be the clamped scalar
// integer (see scalar.Clamp).
func (RFC7748Ladder) ScalarMult(k, u *big.Int) *big.Int {
	x1 := field.Mod(u)

	x2 := field.One()
	z2 := field.Zero()
	x3 := field.Mod(u)
	z3 := field.One()

	var swap uint

	for t := 254; t >= 0; t-- {
		kt := k.Bit(t)

		swap ^= kt
		x2, x3 = field.CSwap(swap, x2, x3)
		z2, z3 = field.CSwap(swap, z2, z3)
		swap = kt

		a := field.Add(x2, z2)
		aa := field.Square(a)
		b := field.Sub(x2, z2)
		bb := field.Square(b)
		e := field.Sub(aa, bb)
		c := field.Add(x3, z3)
		d := field.Sub(x3, z3)
		da := field.Mul(d, a)
		cb := field.Mul(c, b)

		x3 = field.Square(field.Add(da, cb))
		z3 = field.Mul(x1, field.Square(field.Sub(da, cb)))
		x2 = field.Mul(aa, bb)
		z2 = field.Mul(e, field.Add(aa, field.Mul(A24, e)))
	}

	x2, x3 = field.CSwap(swap, x2, x3)
	z2, z3 = field.CSwap(swap, z2, z3)

	return field.Mul(x2, field.Inverse(z2))
}

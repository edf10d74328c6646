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

// OptimizedLadder carries the ladder state in a single (a, b, c, d)
// tuple instead of two named points, per spec §4.3.3. Unlike the Python
// draft this is grounded on (original_source/src/x25519/
// montgomery_optimized.py), every addition and subtraction here is
// reduced immediately via internal/field rather than relying on
// operator precedence — see DESIGN.md's Open Question note on the
// source's `a + c % p` bug.
type OptimizedLadder struct{}

// ScalarMult returns the affine x-coordinate of k*P, with a = X2i,
// b = X2i+1, c = Z2i, d = Z2i+1 at the top of every iteration.
func (OptimizedLadder) ScalarMult(k, xp *big.Int) *big.Int {
	xp = field.Mod(xp)

	a := field.One()
	b := field.Mod(xp)
	c := field.Zero()
	d := field.One()

	for i := 254; i >= 0; i-- {
		bit := k.Bit(i)

		a, b = field.CSwap(bit, a, b)
		c, d = field.CSwap(bit, c, d)

		sumAC := field.Add(a, c)
		subAC := field.Sub(a, c)
		sumBD := field.Add(b, d)
		subBD := field.Sub(b, d)

		sqSumAC := field.Square(sumAC)
		sqSubAC := field.Square(subAC)

		da := field.Mul(subBD, sumAC)
		cb := field.Mul(sumBD, subAC)

		newB := field.Square(field.Add(da, cb))
		newD := field.Mul(xp, field.Square(field.Sub(da, cb)))
		newA := field.Mul(sqSumAC, sqSubAC)

		diff := field.Sub(sqSumAC, sqSubAC)
		newC := field.Mul(diff, field.Add(sqSumAC, field.Mul(A24, diff)))

		a, b, c, d = newA, newB, newC, newD

		a, b = field.CSwap(bit, a, b)
		c, d = field.CSwap(bit, c, d)
	}

	return field.Mul(a, field.Inverse(c))
}

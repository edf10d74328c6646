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

// TutorialLadder expresses the same ladder step as
// ladder_step(X0, Z0, X1, Z1, xP), fusing a projective doubling of R0
// with a differential addition of R0 and R1, per spec §4.3.2. Unlike
// RFC7748Ladder's single carried swap flag, every bit gets its own
// pre-step and post-step conditional swap.
type TutorialLadder struct{}

// ladderStep jointly computes 2*R0 and R0+R1 from R0=(X0:Z0), R1=(X1:Z1)
// and the affine difference coordinate xP = R1 - R0.
func ladderStep(x0, z0, x1, z1, xp *big.Int) (*big.Int, *big.Int, *big.Int, *big.Int) {
	a := field.Add(x0, z0)
	aa := field.Square(a)
	b := field.Sub(x0, z0)
	bb := field.Square(b)
	e := field.Sub(aa, bb)
	c := field.Add(x1, z1)
	d := field.Sub(x1, z1)
	da := field.Mul(d, a)
	cb := field.Mul(c, b)

	// R0 (the doubled point) gets the doubling formula; R1 (the sum
	// R0+P) gets the differential-addition formula, preserving the
	// ladder invariant R1 = R0 + P across iterations.
	newX0 := field.Mul(aa, bb)
	newZ0 := field.Mul(e, field.Add(aa, field.Mul(A24, e)))
	newX1 := field.Square(field.Add(da, cb))
	newZ1 := field.Mul(xp, field.Square(field.Sub(da, cb)))

	return newX0, newZ0, newX1, newZ1
}

// ScalarMult returns the affine x-coordinate of k*P.
func (TutorialLadder) ScalarMult(k, u *big.Int) *big.Int {
	xp := field.Mod(u)

	// R0 starts at the identity (1:0); R1 starts at P = (xp:1).
	x0, z0 := field.One(), field.Zero()
	x1, z1 := field.Mod(u), field.One()

	for t := 254; t >= 0; t-- {
		b := k.Bit(t)

		x0, x1 = field.CSwap(b, x0, x1)
		z0, z1 = field.CSwap(b, z0, z1)

		x0, z0, x1, z1 = ladderStep(x0, z0, x1, z1, xp)

		x0, x1 = field.CSwap(b, x0, x1)
		z0, z1 = field.CSwap(b, z0, z1)
	}

	return field.Mul(x0, field.Inverse(z0))
}

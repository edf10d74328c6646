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

// BaseY is the standard Edwards25519 base point's y-coordinate, 4/5,
// per RFC 8032 §5.1. BaseX is then recovered from the curve equation
// with the sign bit of x fixed to even (0), exercising the same
// decompression arithmetic Decompress uses, rather than hardcoding a
// second 77-digit literal next to CoeffD.
var BaseY = field.Mul(big.NewInt(4), field.Inverse(big.NewInt(5)))

// BaseX is derived once from BaseY at package init.
var BaseX = recoverBaseX()

// Base returns the Edwards25519 base point B in extended coordinates.
func Base() Point {
	return FromAffine(BaseX, BaseY)
}

func recoverBaseX() *big.Int {
	y2 := field.Square(BaseY)
	num := field.Sub(y2, field.One())
	den := field.Add(field.Mul(CoeffD, y2), field.One())
	x2 := field.Mul(num, field.Inverse(den))

	x, err := field.Sqrt(x2)
	if err != nil {
		panic("edwards: base point y does not yield a valid x, arithmetic is broken")
	}

	if x.Bit(0) != 0 {
		x = field.Neg(x)
	}

	return x
}

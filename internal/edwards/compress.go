// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards

import (
	"github.com/bytemare/edx25519/internal/field"
)

// Size is the wire length of a compressed Edwards25519 point.
const Size = field.Size

// Compress encodes p as 32 little-endian bytes of y, with the sign bit
// of x (its least significant bit) placed in the top bit of the last
// byte, per RFC 8032 §5.1.2.
func Compress(p Point) [Size]byte {
	x, y := p.ToAffine()

	out := field.EncodeLittle(y)

	var encoded [Size]byte
	copy(encoded[:], out)

	if x.Bit(0) != 0 {
		encoded[Size-1] |= 0x80
	}

	return encoded
}

// Decompress recovers a point from its 32-byte compressed form,
// following RFC 8032 §5.1.3: split off the sign bit, reject a y that
// is not canonically reduced, recover x^2 from the curve equation,
// take its square root, and flip the sign to match the recorded bit.
func Decompress(data [Size]byte) (Point, error) {
	sign := data[Size-1] >> 7

	masked := data
	masked[Size-1] &^= 0x80

	y := field.DecodeLittle(masked[:])
	if y.Cmp(field.P) >= 0 {
		return Point{}, ErrFieldOutOfRange
	}

	y2 := field.Square(y)
	num := field.Sub(y2, field.One())
	den := field.Add(field.Mul(CoeffD, y2), field.One())
	x2 := field.Mul(num, field.Inverse(den))

	x, err := field.Sqrt(x2)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}

	if field.IsZero(x) && sign == 1 {
		return Point{}, ErrNotOnCurve
	}

	if byte(x.Bit(0)) != sign {
		x = field.Neg(x)
	}

	return FromAffine(x, y), nil
}

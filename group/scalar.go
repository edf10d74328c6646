// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

// Scalar abstracts common operations on a group's scalar field.
type Scalar interface {
	// Random returns a new random scalar; the receiver is not changed.
	Random() Scalar

	// Add returns the sum of the scalars, and does not change the receiver.
	Add(Scalar) Scalar

	// Sub returns the difference between the scalars, and does not change the receiver.
	Sub(Scalar) Scalar

	// Mult returns the multiplication of the scalars, and does not change the receiver.
	Mult(Scalar) Scalar

	// Invert returns the scalar's modular inverse (1 / scalar), and does not change the receiver.
	Invert() Scalar

	// Equal returns whether the two scalars are equivalent.
	Equal(Scalar) bool

	// IsZero returns whether the scalar is zero.
	IsZero() bool

	// Copy returns a copy of the Scalar.
	Copy() Scalar

	// Decode decodes the input and returns it as a new scalar; the receiver is not changed.
	Decode(in []byte) (Scalar, error)

	// Bytes returns the byte encoding of the scalar.
	Bytes() []byte
}

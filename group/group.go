// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package group abstracts Edwards25519, Curve25519, and Ristretto255
// as prime-order (or prime-order-subgroup) groups behind a common
// Element/Scalar capability interface, per spec §9's group-backend
// Open Question. Hash-to-curve is out of scope (DESIGN.md justifies
// dropping armfazh/h2c-go-ref and armfazh/tozan-ecc): callers who need
// a curve point from arbitrary bytes use elligator2.MapToCurve or
// internal/edwards.Decompress/internal/montgomery.RecoverPoint
// directly.
package group

// ID identifies one of the backends this package registers.
type ID byte

const (
	// Edwards25519 identifies the Edwards25519 twisted-Edwards group.
	Edwards25519 ID = 1 + iota

	// Curve25519 identifies the Curve25519 Montgomery-curve group,
	// using the full affine group law rather than an x-only ladder so
	// Identity and Equal are meaningful.
	Curve25519

	// Ristretto255 identifies the Ristretto255 prime-order group built
	// on top of Edwards25519, wrapping gtank/ristretto255 directly.
	Ristretto255

	maxID
)

// Available reports whether id is a registered backend.
func (id ID) Available() bool {
	return 0 < id && id < maxID
}

// Group abstracts operations common to all three backends.
type Group interface {
	// NewScalar returns a new, zero-valued scalar.
	NewScalar() Scalar

	// NewElement returns the group's identity element.
	NewElement() Element

	// ElementLength returns the byte size of an encoded element.
	ElementLength() int

	// ScalarLength returns the byte size of an encoded scalar.
	ScalarLength() int

	// Identity returns the group's identity element.
	Identity() Element

	// Base returns the group's base point a.k.a. canonical generator.
	Base() Element

	// MultBytes multiplies the []byte encodings of a scalar and an
	// element of the group.
	MultBytes(scalar, element []byte) (Element, error)
}

// Get returns the Group implementation for id, panicking if id is not
// Available — mirroring the teacher registry's fail-fast contract for
// an invalid identifier, since this is a programmer error, not
// recoverable input.
func (id ID) Get() Group {
	switch id {
	case Edwards25519:
		return edwards25519Group{}
	case Curve25519:
		return curve25519Group{}
	case Ristretto255:
		return ristretto255Group{}
	default:
		panic("group: invalid group identifier")
	}
}

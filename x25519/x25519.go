// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package x25519 implements the X25519 function and Diffie-Hellman
// key-agreement wrapper of RFC 7748, on top of internal/montgomery's
// ladder strategies (spec §4.5).
package x25519

import (
	"github.com/bytemare/edx25519/internal/errs"
	"github.com/bytemare/edx25519/internal/field"
	"github.com/bytemare/edx25519/internal/montgomery"
	"github.com/bytemare/edx25519/internal/scalar"
)

// Size is the byte length of an X25519 scalar, u-coordinate, or output.
const Size = scalar.Size

const prefix = "x25519"

// ErrInvalidLength indicates an input was not exactly Size bytes.
var ErrInvalidLength = errs.New(prefix, "input must be exactly 32 bytes")

// DefaultStrategy is the ladder used by X25519, ComputePublic, and
// SharedSecret. It is the literal RFC 7748 §5 ladder.
var DefaultStrategy montgomery.Strategy = montgomery.RFC7748Ladder{}

// X25519 computes the X25519 function with the default ladder
// strategy: clamp k, decode u, scalar-multiply, re-encode.
func X25519(k, u []byte) ([]byte, error) {
	return WithStrategy(DefaultStrategy, k, u)
}

// WithStrategy computes X25519 using the given Montgomery ladder
// strategy, letting callers cross-check the three interchangeable
// strategies spec §4.3 requires against each other.
func WithStrategy(strategy montgomery.Strategy, k, u []byte) ([]byte, error) {
	if len(k) != Size || len(u) != Size {
		return nil, ErrInvalidLength
	}

	clamped := scalar.Clamp(k)
	uInt := field.DecodeLittle(u)

	result := strategy.ScalarMult(clamped, uInt)

	return field.EncodeLittle(result), nil
}

// ComputePublic derives the public u-coordinate for a private scalar,
// x25519(sk, encode(9)).
func ComputePublic(sk []byte) ([]byte, error) {
	return X25519(sk, field.EncodeLittle(montgomery.BaseU))
}

// SharedSecret computes the Diffie-Hellman shared secret
// x25519(sk, peerPublic).
func SharedSecret(sk, peerPublic []byte) ([]byte, error) {
	return X25519(sk, peerPublic)
}

// WithGroupLaw computes X25519 using the full affine group-law
// strategy instead of an x-only ladder. Unlike the three ladders,
// this path can observe the identity element and fails with
// montgomery.ErrPointAtInfinity when the scalar multiplication
// reaches it, per spec §4.5 step 5.
func WithGroupLaw(k, u []byte) ([]byte, error) {
	if len(k) != Size || len(u) != Size {
		return nil, ErrInvalidLength
	}

	clamped := scalar.Clamp(k)
	uInt := field.DecodeLittle(u)

	base, err := montgomery.RecoverPoint(uInt)
	if err != nil {
		return nil, err
	}

	result, err := (montgomery.GroupLaw{}).ScalarMult(clamped, base)
	if err != nil {
		return nil, err
	}

	x, _ := result.XY()

	return field.EncodeLittle(x), nil
}

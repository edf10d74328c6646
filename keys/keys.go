// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package keys defines the KeyMaterial value object (spec §4.7): a
// fixed-length byte string with distinct static types for private,
// public, and shared key material. Sub-types carry no added behavior
// beyond the base Key; they exist only to keep callers from mixing up
// which kind of bytes they are holding, the same role element.go's
// thin value wrappers play in the group abstraction.
package keys

import (
	"github.com/bytemare/edx25519/internal/errs"
	"github.com/bytemare/edx25519/internal/rand"
)

const prefix = "keys"

// Size is the fixed length of any Key.
const Size = 32

// ErrInvalidKeyLength is returned when constructing a Key from a byte
// slice whose length is not exactly Size.
var ErrInvalidKeyLength = errs.New(prefix, "key material must be exactly 32 bytes")

// Key is a 32-byte value object. It is comparable and copies by value.
type Key [Size]byte

// New builds a Key from b, rejecting any length other than Size.
func New(b []byte) (Key, error) {
	var k Key

	if len(b) != Size {
		return k, ErrInvalidKeyLength
	}

	copy(k[:], b)

	return k, nil
}

// Bytes returns a fresh copy of the key's underlying bytes.
func (k Key) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, k[:])

	return out
}

// PrivateKey is an Ed25519/X25519 private seed or scalar.
type PrivateKey Key

// PublicKey is a compressed Edwards25519 point or an X25519 u-coordinate.
type PublicKey Key

// SharedKey is the output of an X25519 Diffie-Hellman agreement.
type SharedKey Key

// NewPrivateKey generates a fresh random PrivateKey from the host's
// secure random source.
func NewPrivateKey() PrivateKey {
	var k PrivateKey
	copy(k[:], rand.Bytes(Size))

	return k
}

// NewPublicKey builds a PublicKey from b.
func NewPublicKey(b []byte) (PublicKey, error) {
	k, err := New(b)

	return PublicKey(k), err
}

// NewSharedKey builds a SharedKey from b.
func NewSharedKey(b []byte) (SharedKey, error) {
	k, err := New(b)

	return SharedKey(k), err
}

// Bytes returns a fresh copy of the private key's bytes.
func (k PrivateKey) Bytes() []byte { return Key(k).Bytes() }

// Bytes returns a fresh copy of the public key's bytes.
func (k PublicKey) Bytes() []byte { return Key(k).Bytes() }

// Bytes returns a fresh copy of the shared key's bytes.
func (k SharedKey) Bytes() []byte { return Key(k).Bytes() }

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package hashadapter exposes the HashAdapter collaborator (spec §3,
// §4.6): an abstract 64-byte-output hash consumer, so Ed25519 signing
// and verification never call crypto/sha512 directly. Unlike the
// teacher's hash package, this registry is narrowed to the
// fixed-output, 64-byte functions Ed25519 actually needs; XOFs and
// HMAC/HKDF derivation are out of scope (spec's hash contract is
// "accepts arbitrary bytes, returns 64 bytes, no streaming").
package hashadapter

import (
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Identifier names a registered 64-byte-output hash function.
type Identifier byte

const (
	// SHA512 is the default hash used by Ed25519Protocol.
	SHA512 Identifier = 1 + iota

	// SHA3_512 is an alternate 64-byte hash, kept interchangeable with
	// SHA512 to exercise the registry's dispatch.
	SHA3_512

	// BLAKE2Xb is an alternate 64-byte hash built on an extensible
	// output function truncated to 64 bytes.
	BLAKE2Xb

	maxID
)

// Size is the fixed digest length every registered adapter produces.
const Size = 64

// Default is the hash function Ed25519Protocol uses unless told
// otherwise, matching RFC 8032.
const Default = SHA512

type newHashFunc func() func(parts ...[]byte) []byte

var registered map[Identifier]newHashFunc

func init() {
	registered = map[Identifier]newHashFunc{
		SHA512:   func() func(...[]byte) []byte { return hashWith(sha512.New) },
		SHA3_512: func() func(...[]byte) []byte { return hashWith(sha3.New512) },
		BLAKE2Xb: func() func(...[]byte) []byte { return hashBlake2Xb },
	}
}

func hashWith(newFunc func() hash.Hash) func(parts ...[]byte) []byte {
	return func(parts ...[]byte) []byte {
		h := newFunc()
		for _, p := range parts {
			_, _ = h.Write(p)
		}

		return h.Sum(nil)
	}
}

func hashBlake2Xb(parts ...[]byte) []byte {
	xof, err := blake2b.NewXOF(Size, nil)
	if err != nil {
		panic("hashadapter: blake2b XOF construction failed: " + err.Error())
	}

	for _, p := range parts {
		_, _ = xof.Write(p)
	}

	out := make([]byte, Size)
	_, _ = xof.Read(out)

	return out
}

// Available reports whether id is registered.
func (i Identifier) Available() bool {
	return i < maxID && registered[i] != nil
}

// Hash concatenates parts and returns their 64-byte digest.
func (i Identifier) Hash(parts ...[]byte) []byte {
	fn, ok := registered[i]
	if !ok {
		panic("hashadapter: unregistered identifier")
	}

	return fn()(parts...)
}

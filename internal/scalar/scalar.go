// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package scalar implements the RFC 7748 §5 clamping procedure and the
// little-endian scalar codec Ed25519 reduces mod q with.
package scalar

import "math/big"

// Size is the canonical byte length of a clamped X25519 scalar or an
// Ed25519 scalar.
const Size = 32

// Q is the Edwards25519 subgroup order, 2^252 +
// 27742317777372353535851937790883648493.
var Q = mustQ()

func mustQ() *big.Int {
	q, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("scalar: invalid subgroup order literal")
	}

	two252 := new(big.Int).Lsh(big.NewInt(1), 252)

	return q.Add(q, two252)
}

// Clamp applies RFC 7748 §5's clamping to a copy of the given 32-byte
// buffer (k[0] &= 248; k[31] &= 127; k[31] |= 64) and returns the
// resulting little-endian integer. The original buffer is left
// untouched. Guarantees: the result is a multiple of 8, lies in
// [2^254, 2^255), and has bit 254 set.
func Clamp(k []byte) *big.Int {
	buf := make([]byte, Size)
	copy(buf, k)

	buf[0] &= 248
	buf[31] &= 127
	buf[31] |= 64

	return decodeLittle(buf)
}

// ReduceModQ reduces an arbitrary-length little-endian byte string
// (typically a 64-byte SHA-512 digest) into an integer modulo q. Used by
// Ed25519 to derive r and k from hash output.
func ReduceModQ(b []byte) *big.Int {
	return new(big.Int).Mod(decodeLittle(b), Q)
}

// EncodeLittle encodes x as Size little-endian, zero-padded bytes, after
// reducing it modulo q.
func EncodeLittle(x *big.Int) []byte {
	canon := new(big.Int).Mod(x, Q)
	be := canon.Bytes()

	buf := make([]byte, Size)
	copy(buf[Size-len(be):], be)

	return reverse(buf)
}

func decodeLittle(b []byte) *big.Int {
	return new(big.Int).SetBytes(reverse(append([]byte(nil), b...)))
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return b
}

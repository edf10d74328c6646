// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ed25519 implements Ed25519 signing and verification
// (spec §4.6), grounded on internal/edwards for point arithmetic and
// hashadapter for the SHA-512 collaborator.
package ed25519

import (
	"math/big"

	"github.com/bytemare/edx25519/hashadapter"
	"github.com/bytemare/edx25519/internal/edwards"
	"github.com/bytemare/edx25519/internal/errs"
	"github.com/bytemare/edx25519/internal/scalar"
)

const prefix = "ed25519"

// SeedSize is the length of the seed key derivation starts from.
const SeedSize = 32

// PublicKeySize is the length of a compressed Ed25519 public key.
const PublicKeySize = edwards.Size

// SignatureSize is the length of an Ed25519 signature, R ‖ t.
const SignatureSize = 64

// ErrBadLength describes a signature or public key of the wrong
// length. Verify and VerifyWithHash report that case by returning
// false; no function in this package returns this error.
var ErrBadLength = errs.New(prefix, "signature or public key has an invalid length")

// ErrBadSeedLength is returned when a seed is not exactly SeedSize.
var ErrBadSeedLength = errs.New(prefix, "seed must be exactly 32 bytes")

// Signer caches the clamped scalar s and the nonce prefix taken from
// the hash of the seed, the derived public key A, and the hash adapter
// it signs with. Signing is stateless per message.
type Signer struct {
	hashFunc  hashadapter.Identifier
	s         *big.Int
	prefix    []byte
	publicKey [PublicKeySize]byte
}

// NewSigner derives a Signer from a 32-byte seed using the default
// SHA-512 hash adapter.
func NewSigner(seed []byte) (*Signer, error) {
	return NewSignerWithHash(hashadapter.Default, seed)
}

// NewSignerWithHash derives a Signer using an explicit hash adapter,
// exercising the registry's interchangeability (spec §4.8).
func NewSignerWithHash(h hashadapter.Identifier, seed []byte) (*Signer, error) {
	if len(seed) != SeedSize {
		return nil, ErrBadSeedLength
	}

	digest := h.Hash(seed)
	sBytes, prefixBytes := digest[:32], digest[32:]

	s := scalar.Clamp(sBytes)
	a := edwards.ScalarMult(s, edwards.Base())

	return &Signer{
		hashFunc:  h,
		s:         s,
		prefix:    prefixBytes,
		publicKey: edwards.Compress(a),
	}, nil
}

// Public returns the compressed public key A.
func (s *Signer) Public() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, s.publicKey[:])

	return out
}

// Sign computes a 64-byte Ed25519 signature over msg:
//
//	r = decode_little(H(prefix ‖ msg)) mod q
//	R = compress(r·B)
//	k = decode_little(H(R ‖ A ‖ msg)) mod q
//	t = (r + k·s) mod q
//	signature = R ‖ encode_little(t)
func (s *Signer) Sign(msg []byte) []byte {
	r := scalar.ReduceModQ(s.hashFunc.Hash(s.prefix, msg))
	bigR := edwards.Compress(edwards.ScalarMult(r, edwards.Base()))

	k := scalar.ReduceModQ(s.hashFunc.Hash(bigR[:], s.publicKey[:], msg))

	t := new(big.Int).Mod(new(big.Int).Add(r, new(big.Int).Mul(k, s.s)), scalar.Q)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], bigR[:])
	copy(sig[32:], scalar.EncodeLittle(t))

	return sig
}

// Verify checks a 64-byte Ed25519 signature over msg against the
// compressed public key A, assuming the default SHA-512 hash adapter.
// A malformed length, an out-of-range component, or a point that fails
// decompression all result in false rather than a propagated error,
// per spec §4.6 step 3.
func Verify(sig, msg, a []byte) bool {
	return VerifyWithHash(hashadapter.Default, sig, msg, a)
}

// VerifyWithHash checks sig the same way Verify does, but against the
// given hash adapter instead of the default. A signature produced by a
// Signer built with NewSignerWithHash(h, ...) only validates against
// the matching h here; the hash adapter is not recoverable from the
// signature's bytes, so callers must track which adapter a given
// public key signs with.
func VerifyWithHash(h hashadapter.Identifier, sig, msg, a []byte) bool {
	if len(sig) != SignatureSize || len(a) != PublicKeySize {
		return false
	}

	var rWire, aWire [edwards.Size]byte
	copy(rWire[:], sig[:32])
	copy(aWire[:], a)

	t := scalar.ReduceModQ(sig[32:])

	bigR, err := edwards.Decompress(rWire)
	if err != nil {
		return false
	}

	bigA, err := edwards.Decompress(aWire)
	if err != nil {
		return false
	}

	k := scalar.ReduceModQ(h.Hash(rWire[:], aWire[:], msg))

	lhs := edwards.ScalarMult(t, edwards.Base())
	rhs := edwards.Add(bigR, edwards.ScalarMult(k, bigA))

	return edwards.VerifyEqual(lhs, rhs)
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package signature gives Ed25519Protocol an additional layer of
// modularity: an Identifier-dispatched façade, so callers select a
// scheme by byte value instead of importing ed25519 directly.
package signature

import (
	"github.com/bytemare/edx25519/signature/internal"
)

// Identifier indicates the signature scheme to be used.
type Identifier byte

const (
	// Ed25519 indicates usage of the Ed25519 signature scheme.
	Ed25519 Identifier = iota + 1
)

// Signature abstracts digital signature operations.
type Signature interface {
	// GenerateKey generates a fresh signing key and keeps it internally.
	GenerateKey()

	// GetPrivateKey returns the private key.
	GetPrivateKey() []byte

	// GetPublicKey returns the public key.
	GetPublicKey() []byte

	// SetPrivateKey loads the given private key and sets the public key accordingly.
	SetPrivateKey(privateKey []byte)

	// SignMessage uses the internal private key to sign the message. The message argument doesn't need to be hashed beforehand.
	SignMessage(message ...[]byte) []byte

	// Verify checks whether signature of the message is valid given the public key.
	Verify(publicKey, message, signature []byte) bool
}

// New returns a Signature implementation to the specified scheme.
func (i Identifier) New() Signature {
	switch i {
	case Ed25519:
		return internal.NewEd25519()
	default:
		panic("signature: invalid identifier")
	}
}

// Sign returns the signature of message (concatenated, if using a variadic argument) using secretKey.
func (i Identifier) Sign(secretKey []byte, message ...[]byte) []byte {
	s := i.New()
	s.SetPrivateKey(secretKey)

	return s.SignMessage(message...)
}

// Verify checks whether signature of the message is valid given the public key.
func (i Identifier) Verify(publicKey, message, signature []byte) bool {
	return i.New().Verify(publicKey, message, signature)
}

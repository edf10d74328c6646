// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal holds the concrete signature scheme backing the
// signature package's Identifier dispatch.
package internal

import (
	"github.com/bytemare/edx25519/ed25519"
	"github.com/bytemare/edx25519/internal/rand"
)

// Ed25519 wraps our own ed25519 package instead of crypto/ed25519, so
// the signature façade exercises the from-scratch implementation.
type Ed25519 struct {
	signer *ed25519.Signer
	seed   []byte
}

// NewEd25519 returns an empty Ed25519 scheme instance.
func NewEd25519() *Ed25519 {
	return &Ed25519{}
}

// SetPrivateKey loads the given seed and derives the public key.
func (ed *Ed25519) SetPrivateKey(privateKey []byte) {
	signer, err := ed25519.NewSigner(privateKey)
	if err != nil {
		panic("Ed25519 invalid private key: " + err.Error())
	}

	ed.seed = append([]byte(nil), privateKey...)
	ed.signer = signer
}

// GenerateKey generates a fresh seed and stores it in ed.
func (ed *Ed25519) GenerateKey() {
	ed.SetPrivateKey(rand.Bytes(ed25519.SeedSize))
}

// GetPrivateKey returns the seed the signer was derived from.
func (ed *Ed25519) GetPrivateKey() []byte {
	return append([]byte(nil), ed.seed...)
}

// GetPublicKey returns the compressed public key.
func (ed *Ed25519) GetPublicKey() []byte {
	return ed.signer.Public()
}

// SignMessage concatenates message and signs the result.
func (ed *Ed25519) SignMessage(message ...[]byte) []byte {
	length := 0
	for _, in := range message {
		length += len(in)
	}

	buf := make([]byte, 0, length)
	for _, in := range message {
		buf = append(buf, in...)
	}

	return ed.signer.Sign(buf)
}

// Verify checks whether signature of message is valid given publicKey.
func (ed *Ed25519) Verify(publicKey, message, signature []byte) bool {
	return ed25519.Verify(signature, message, publicKey)
}

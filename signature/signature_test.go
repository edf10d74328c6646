// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/signature"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	s := signature.Ed25519.New()
	s.GenerateKey()

	msg := []byte("hello")
	sig := s.SignMessage(msg)

	require.True(t, signature.Ed25519.Verify(s.GetPublicKey(), msg, sig))
}

func TestSignViaIdentifierWrapper(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	pub := signature.Ed25519.New()
	pub.SetPrivateKey(seed)
	public := pub.GetPublicKey()

	sig := signature.Ed25519.Sign(seed, []byte("part one "), []byte("part two"))

	require.True(t, signature.Ed25519.Verify(public, []byte("part one part two"), sig))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	s := signature.Ed25519.New()
	s.GenerateKey()

	sig := s.SignMessage([]byte("msg"))
	sig[0] ^= 0xff

	require.False(t, signature.Ed25519.Verify(s.GetPublicKey(), []byte("msg"), sig))
}

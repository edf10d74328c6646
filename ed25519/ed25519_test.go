// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package ed25519_test

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/ed25519"
	"github.com/bytemare/edx25519/hashadapter"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

// RFC 8032 §7.1 test vector 1: the empty message.
func TestRFC8032Vector1(t *testing.T) {
	seed := decodeHex(t, "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")[:32]
	wantPublic := "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"
	wantSig := "e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b"

	signer, err := ed25519.NewSigner(seed)
	require.NoError(t, err)
	require.Equal(t, wantPublic, hex.EncodeToString(signer.Public()))

	sig := signer.Sign(nil)
	require.Equal(t, wantSig, hex.EncodeToString(sig))

	require.True(t, ed25519.Verify(sig, nil, signer.Public()))
}

// RFC 8032 §7.1 test vector 2: a one-byte message.
func TestRFC8032Vector2(t *testing.T) {
	seed := decodeHex(t, "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb")[:32]
	msg := decodeHex(t, "72")
	wantPublic := "3d4017c3e843895a92b70aa74d1b7ebc9c982ccf2ec4968cc0cd55f12af4660c"
	wantSig := "92a009a9f0d4cab8720e820b5f642540a2b27b5416503f8fb3762223ebdb69da085ac1e43e15996e458f3613d0f11d8c387b2eaeb4302aeeb00d291612bb0c00"

	signer, err := ed25519.NewSigner(seed)
	require.NoError(t, err)
	require.Equal(t, wantPublic, hex.EncodeToString(signer.Public()))

	sig := signer.Sign(msg)
	require.Equal(t, wantSig, hex.EncodeToString(sig))

	require.True(t, ed25519.Verify(sig, msg, signer.Public()))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	signer, err := ed25519.NewSigner(seed)
	require.NoError(t, err)

	msg := []byte("hello world")
	sig := signer.Sign(msg)

	require.True(t, ed25519.Verify(sig, msg, signer.Public()))
	require.False(t, ed25519.Verify(sig, []byte("hello World"), signer.Public()))
}

func TestVerifyRejectsWrongLengths(t *testing.T) {
	require.False(t, ed25519.Verify(make([]byte, 63), nil, make([]byte, 32)))
	require.False(t, ed25519.Verify(make([]byte, 64), nil, make([]byte, 31)))
}

func TestVerifyRejectsMalformedPublicKey(t *testing.T) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	signer, err := ed25519.NewSigner(seed)
	require.NoError(t, err)

	sig := signer.Sign([]byte("msg"))

	badKey := make([]byte, 32)
	for i := range badKey {
		badKey[i] = 0xff
	}

	require.False(t, ed25519.Verify(sig, []byte("msg"), badKey))
}

func TestNewSignerRejectsBadSeedLength(t *testing.T) {
	_, err := ed25519.NewSigner(make([]byte, 16))
	require.ErrorIs(t, err, ed25519.ErrBadSeedLength)
}

func TestNonDefaultHashAdapterRoundTrips(t *testing.T) {
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)

	signer, err := ed25519.NewSignerWithHash(hashadapter.SHA3_512, seed)
	require.NoError(t, err)

	msg := []byte("hash adapters are interchangeable")
	sig := signer.Sign(msg)

	require.True(t, ed25519.VerifyWithHash(hashadapter.SHA3_512, sig, msg, signer.Public()))

	// The default-hash verifier must reject a signature produced under
	// a different adapter: the hash choice is not recoverable from sig.
	require.False(t, ed25519.Verify(sig, msg, signer.Public()))
}

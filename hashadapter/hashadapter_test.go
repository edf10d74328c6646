// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package hashadapter_test

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/hashadapter"
)

func TestSHA512MatchesStdlib(t *testing.T) {
	msg := []byte("the quick brown fox")
	want := sha512.Sum512(msg)

	got := hashadapter.SHA512.Hash(msg)
	require.Equal(t, want[:], got)
}

func TestHashConcatenatesParts(t *testing.T) {
	a, b := []byte("abc"), []byte("def")
	want := sha512.Sum512([]byte("abcdef"))

	got := hashadapter.SHA512.Hash(a, b)
	require.Equal(t, want[:], got)
}

func TestAllRegisteredProduce64Bytes(t *testing.T) {
	for _, id := range []hashadapter.Identifier{hashadapter.SHA512, hashadapter.SHA3_512, hashadapter.BLAKE2Xb} {
		require.True(t, id.Available())
		require.Len(t, id.Hash([]byte("x")), hashadapter.Size)
	}
}

func TestDefaultIsSHA512(t *testing.T) {
	require.Equal(t, hashadapter.SHA512, hashadapter.Identifier(hashadapter.Default))
}

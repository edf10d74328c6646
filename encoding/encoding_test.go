// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/encoding"
	"github.com/bytemare/edx25519/keys"
)

var formats = []encoding.Encoding{encoding.JSON, encoding.Gob, encoding.MessagePack}

func TestAvailable(t *testing.T) {
	for _, f := range formats {
		require.NoError(t, f.Available())
	}

	require.Error(t, encoding.Encoding(0).Available())
	require.Error(t, encoding.Encoding(99).Available())
}

func TestRoundTripPublicKey(t *testing.T) {
	want, err := keys.NewPublicKey(make([]byte, keys.Size))
	require.NoError(t, err)

	for i := range want {
		want[i] = byte(i)
	}

	for _, f := range formats {
		encoded, err := f.Encode(want)
		require.NoError(t, err)

		var got keys.PublicKey

		decoded, err := f.Decode(encoded, &got)
		require.NoError(t, err)
		require.Equal(t, want, *(decoded.(*keys.PublicKey)))
		require.Equal(t, want, got)
	}
}

func TestRoundTripPrivateKey(t *testing.T) {
	want := keys.NewPrivateKey()

	for _, f := range formats {
		encoded, err := f.Encode(want)
		require.NoError(t, err)

		var got keys.PrivateKey

		_, err = f.Decode(encoded, &got)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDefaultIsJSON(t *testing.T) {
	require.Equal(t, encoding.JSON, encoding.Encoding(encoding.Default))
}

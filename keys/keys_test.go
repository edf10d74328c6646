// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/keys"
)

func TestNewRejectsWrongLength(t *testing.T) {
	_, err := keys.New(make([]byte, 31))
	require.ErrorIs(t, err, keys.ErrInvalidKeyLength)
}

func TestNewRoundTrip(t *testing.T) {
	raw := make([]byte, keys.Size)
	for i := range raw {
		raw[i] = byte(i)
	}

	k, err := keys.New(raw)
	require.NoError(t, err)
	require.Equal(t, raw, k.Bytes())
}

func TestNewPrivateKeyIsRandom(t *testing.T) {
	a := keys.NewPrivateKey()
	b := keys.NewPrivateKey()

	require.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestPublicAndSharedKeyConstructors(t *testing.T) {
	raw := make([]byte, keys.Size)

	pub, err := keys.NewPublicKey(raw)
	require.NoError(t, err)
	require.Equal(t, raw, pub.Bytes())

	shared, err := keys.NewSharedKey(raw)
	require.NoError(t, err)
	require.Equal(t, raw, shared.Bytes())
}

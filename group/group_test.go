// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/group"
)

var backends = []group.ID{group.Edwards25519, group.Curve25519, group.Ristretto255}

func TestBaseIsNotIdentity(t *testing.T) {
	for _, id := range backends {
		g := id.Get()
		require.False(t, g.Base().IsIdentity())
	}
}

func TestAddIdentityIsNoop(t *testing.T) {
	for _, id := range backends {
		g := id.Get()
		sum := g.Base().Add(g.Identity())
		require.True(t, sum.Equal(g.Base()))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, id := range backends {
		g := id.Get()
		wire := g.Base().Bytes()
		require.Len(t, wire, g.ElementLength())

		got, err := g.NewElement().Decode(wire)
		require.NoError(t, err)
		require.True(t, got.Equal(g.Base()))
	}
}

func TestMultByOneIsNoop(t *testing.T) {
	for _, id := range backends {
		g := id.Get()

		s, err := g.NewScalar().Decode(oneBytes(g.ScalarLength()))
		require.NoError(t, err)

		got := g.Base().Mult(s)
		require.True(t, got.Equal(g.Base()))
	}
}

func TestAddSubRoundTrips(t *testing.T) {
	for _, id := range backends {
		g := id.Get()

		doubled := g.Base().Add(g.Base())
		back := doubled.Sub(g.Base())
		require.True(t, back.Equal(g.Base()))
	}
}

func oneBytes(n int) []byte {
	b := make([]byte, n)
	b[0] = 1

	return b
}

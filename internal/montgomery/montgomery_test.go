// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package montgomery_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/internal/field"
	"github.com/bytemare/edx25519/internal/montgomery"
	"github.com/bytemare/edx25519/internal/scalar"
)

var strategies = []montgomery.Strategy{
	montgomery.RFC7748Ladder{},
	montgomery.TutorialLadder{},
	montgomery.OptimizedLadder{},
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)

	return b
}

func TestRFC7748Vector1(t *testing.T) {
	k := decodeHex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	u := decodeHex(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4c")
	want := "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a28552"

	scalarInt := scalar.Clamp(k)
	uInt := field.DecodeLittle(u)

	for _, s := range strategies {
		got := field.EncodeLittle(s.ScalarMult(scalarInt, uInt))
		require.Equal(t, want, hex.EncodeToString(got))
	}
}

func TestLaddersAgreeWithGroupLaw(t *testing.T) {
	k := decodeHex(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac4")
	scalarInt := scalar.Clamp(k)

	base, err := montgomery.RecoverPoint(montgomery.BaseU)
	require.NoError(t, err)

	viaGroupLaw, err := montgomery.GroupLaw{}.ScalarMult(scalarInt, base)
	require.NoError(t, err)

	x, _ := viaGroupLaw.XY()

	for _, s := range strategies {
		got := s.ScalarMult(scalarInt, montgomery.BaseU)
		require.True(t, field.Equal(got, x), "strategy disagreed with group law")
	}
}

func TestRecoverPointSatisfiesCurveEquation(t *testing.T) {
	p, err := montgomery.RecoverPoint(montgomery.BaseU)
	require.NoError(t, err)

	x, y := p.XY()
	y2 := field.Square(y)

	x2 := field.Square(x)
	x3 := field.Mul(x2, x)
	ax2 := field.Mul(montgomery.CoeffA, x2)
	rhs := field.Add(field.Add(x3, ax2), x)

	require.True(t, field.Equal(y2, rhs))
}

func TestGroupLawDoubleEqualsAddSelf(t *testing.T) {
	base, err := montgomery.RecoverPoint(montgomery.BaseU)
	require.NoError(t, err)

	g := montgomery.GroupLaw{}
	doubled := g.Double(base)
	added := g.Add(base, base)

	dx, dy := doubled.XY()
	ax, ay := added.XY()
	require.True(t, field.Equal(dx, ax))
	require.True(t, field.Equal(dy, ay))
}

func TestGroupLawAddInverseIsIdentity(t *testing.T) {
	base, err := montgomery.RecoverPoint(montgomery.BaseU)
	require.NoError(t, err)

	g := montgomery.GroupLaw{}
	neg := g.Negate(base)
	sum := g.Add(base, neg)

	require.True(t, sum.IsIdentity())
}

func TestIteratedX25519(t *testing.T) {
	k := new(big.Int).Set(montgomery.BaseU)
	u := new(big.Int).Set(montgomery.BaseU)

	ladder := montgomery.RFC7748Ladder{}

	for i := 0; i < 1000; i++ {
		kBytes := field.EncodeLittle(k)
		clamped := scalar.Clamp(kBytes)
		result := ladder.ScalarMult(clamped, u)
		u = k
		k = result
	}

	want := "684cf59ba83309552800ef566f2f4d3c1c3887c49360e3875f2eb94d99532c51"
	require.Equal(t, want, hex.EncodeToString(field.EncodeLittle(k)))
}

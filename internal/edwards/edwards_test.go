// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package edwards_test

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	filippo "filippo.io/edwards25519"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/edx25519/internal/edwards"
	"github.com/bytemare/edx25519/internal/scalar"
)

func TestBasePointOnCurve(t *testing.T) {
	require.True(t, edwards.Base().OnCurve())
}

func TestIdentityIsIdentity(t *testing.T) {
	require.True(t, edwards.Identity().IsIdentity())
	require.False(t, edwards.Base().IsIdentity())
}

func TestAddIdentityIsNoop(t *testing.T) {
	b := edwards.Base()
	sum := edwards.Add(b, edwards.Identity())

	require.True(t, edwards.Equal(sum, b))
}

func TestDoubleMatchesAddSelf(t *testing.T) {
	b := edwards.Base()
	require.True(t, edwards.Equal(edwards.Double(b), edwards.Add(b, b)))
}

func TestAddInverseIsIdentity(t *testing.T) {
	b := edwards.Base()
	sum := edwards.Add(b, edwards.Negate(b))

	require.True(t, sum.IsIdentity())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	k, err := rand.Int(rand.Reader, scalar.Q)
	require.NoError(t, err)

	p := edwards.ScalarMult(k, edwards.Base())
	wire := edwards.Compress(p)

	got, err := edwards.Decompress(wire)
	require.NoError(t, err)
	require.True(t, edwards.Equal(p, got))
}

func TestDecompressRejectsOutOfRangeField(t *testing.T) {
	var wire [edwards.Size]byte
	for i := range wire {
		wire[i] = 0xff
	}

	_, err := edwards.Decompress(wire)
	require.ErrorIs(t, err, edwards.ErrFieldOutOfRange)
}

func TestScalarMultAgreesWithFilippo(t *testing.T) {
	kBytes := make([]byte, 32)
	_, err := rand.Read(kBytes)
	require.NoError(t, err)
	kBytes[0] &= 248
	kBytes[31] &= 127
	kBytes[31] |= 64

	k := new(big.Int).SetBytes(reverseCopy(kBytes))

	ours := edwards.Compress(edwards.ScalarMult(k, edwards.Base()))

	var fScalar filippo.Scalar
	_, err = fScalar.SetCanonicalBytes(scalar.EncodeLittle(k))
	require.NoError(t, err)

	theirs := (&filippo.Point{}).ScalarBaseMult(&fScalar)

	require.Equal(t, hex.EncodeToString(theirs.Bytes()), hex.EncodeToString(ours[:]))
}

func reverseCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

import (
	"math/big"

	"github.com/bytemare/edx25519/internal/edwards"
	"github.com/bytemare/edx25519/internal/errs"
	"github.com/bytemare/edx25519/internal/rand"
	"github.com/bytemare/edx25519/internal/scalar"
)

const prefix = "group"

// ErrInvalidElementLength is returned by Decode when the input is not
// exactly the backend's element length.
var ErrInvalidElementLength = errs.New(prefix, "invalid element encoding length")

// bigScalar is the Scalar implementation shared by the Edwards25519
// and Curve25519 backends: both operate modulo the same prime
// subgroup order q, so one concrete type covers both (Ristretto255
// brings its own, wrapping gtank/ristretto255.Scalar directly).
type bigScalar struct {
	v *big.Int
}

func newBigScalar(v *big.Int) *bigScalar {
	return &bigScalar{v: new(big.Int).Mod(v, scalar.Q)}
}

func (s *bigScalar) Random() Scalar {
	return newBigScalar(scalar.ReduceModQ(rand.Bytes(64)))
}

func (s *bigScalar) Add(o Scalar) Scalar {
	return newBigScalar(new(big.Int).Add(s.v, o.(*bigScalar).v))
}

func (s *bigScalar) Sub(o Scalar) Scalar {
	return newBigScalar(new(big.Int).Sub(s.v, o.(*bigScalar).v))
}

func (s *bigScalar) Mult(o Scalar) Scalar {
	return newBigScalar(new(big.Int).Mul(s.v, o.(*bigScalar).v))
}

func (s *bigScalar) Invert() Scalar {
	return newBigScalar(new(big.Int).ModInverse(s.v, scalar.Q))
}

func (s *bigScalar) Equal(o Scalar) bool {
	return s.v.Cmp(o.(*bigScalar).v) == 0
}

func (s *bigScalar) IsZero() bool {
	return s.v.Sign() == 0
}

func (s *bigScalar) Copy() Scalar {
	return newBigScalar(new(big.Int).Set(s.v))
}

func (s *bigScalar) Decode(in []byte) (Scalar, error) {
	if len(in) != scalar.Size {
		return nil, ErrInvalidElementLength
	}

	return newBigScalar(scalar.ReduceModQ(in)), nil
}

func (s *bigScalar) Bytes() []byte {
	return scalar.EncodeLittle(s.v)
}

// edwards25519Group implements Group over internal/edwards.
type edwards25519Group struct{}

type edwards25519Element struct{ p edwards.Point }

func (edwards25519Group) NewScalar() Scalar            { return newBigScalar(big.NewInt(0)) }
func (edwards25519Group) NewElement() Element          { return edwards25519Element{edwards.Identity()} }
func (edwards25519Group) ElementLength() int           { return edwards.Size }
func (edwards25519Group) ScalarLength() int            { return scalar.Size }
func (edwards25519Group) Identity() Element            { return edwards25519Element{edwards.Identity()} }
func (edwards25519Group) Base() Element                { return edwards25519Element{edwards.Base()} }

func (g edwards25519Group) MultBytes(sc, el []byte) (Element, error) {
	s, err := (&bigScalar{}).Decode(sc)
	if err != nil {
		return nil, err
	}

	e, err := g.NewElement().Decode(el)
	if err != nil {
		return nil, err
	}

	return e.Mult(s), nil
}

func (e edwards25519Element) Add(o Element) Element {
	return edwards25519Element{edwards.Add(e.p, o.(edwards25519Element).p)}
}

func (e edwards25519Element) Sub(o Element) Element {
	return edwards25519Element{edwards.Add(e.p, edwards.Negate(o.(edwards25519Element).p))}
}

func (e edwards25519Element) Mult(s Scalar) Element {
	return edwards25519Element{edwards.ScalarMult(s.(*bigScalar).v, e.p)}
}

func (e edwards25519Element) IsIdentity() bool { return e.p.IsIdentity() }
func (e edwards25519Element) Copy() Element    { return e }

func (e edwards25519Element) Decode(in []byte) (Element, error) {
	if len(in) != edwards.Size {
		return nil, ErrInvalidElementLength
	}

	var wire [edwards.Size]byte
	copy(wire[:], in)

	p, err := edwards.Decompress(wire)
	if err != nil {
		return nil, err
	}

	return edwards25519Element{p}, nil
}

func (e edwards25519Element) Bytes() []byte {
	wire := edwards.Compress(e.p)
	return wire[:]
}

func (e edwards25519Element) Equal(o Element) bool {
	return edwards.Equal(e.p, o.(edwards25519Element).p)
}

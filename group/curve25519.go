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

	"github.com/bytemare/edx25519/internal/field"
	"github.com/bytemare/edx25519/internal/montgomery"
	"github.com/bytemare/edx25519/internal/scalar"
)

// curve25519Group implements Group over internal/montgomery's full
// affine group law, not an x-only ladder, since the Element interface
// needs a meaningful Identity and Equal.
type curve25519Group struct{}

type curve25519Element struct{ p montgomery.AffinePoint }

func (curve25519Group) NewScalar() Scalar   { return newBigScalar(big.NewInt(0)) }
func (curve25519Group) NewElement() Element { return curve25519Element{montgomery.Identity()} }
func (curve25519Group) ElementLength() int  { return field.Size }
func (curve25519Group) ScalarLength() int   { return scalar.Size }
func (curve25519Group) Identity() Element   { return curve25519Element{montgomery.Identity()} }

func (curve25519Group) Base() Element {
	p, err := montgomery.RecoverPoint(montgomery.BaseU)
	if err != nil {
		panic("group: curve25519 base point recovery failed: " + err.Error())
	}

	return curve25519Element{p}
}

func (g curve25519Group) MultBytes(sc, el []byte) (Element, error) {
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

func (e curve25519Element) Add(o Element) Element {
	return curve25519Element{(montgomery.GroupLaw{}).Add(e.p, o.(curve25519Element).p)}
}

func (e curve25519Element) Sub(o Element) Element {
	law := montgomery.GroupLaw{}
	return curve25519Element{law.Add(e.p, law.Negate(o.(curve25519Element).p))}
}

func (e curve25519Element) Mult(s Scalar) Element {
	res, err := (montgomery.GroupLaw{}).ScalarMult(s.(*bigScalar).v, e.p)
	if err != nil {
		return curve25519Element{montgomery.Identity()}
	}

	return curve25519Element{res}
}

func (e curve25519Element) IsIdentity() bool { return e.p.IsIdentity() }
func (e curve25519Element) Copy() Element    { return e }

func (e curve25519Element) Decode(in []byte) (Element, error) {
	if len(in) != field.Size {
		return nil, ErrInvalidElementLength
	}

	p, err := montgomery.RecoverPoint(field.DecodeLittle(in))
	if err != nil {
		return nil, err
	}

	return curve25519Element{p}, nil
}

func (e curve25519Element) Bytes() []byte {
	if e.p.IsIdentity() {
		return field.EncodeLittle(field.Zero())
	}

	x, _ := e.p.XY()

	return field.EncodeLittle(x)
}

func (e curve25519Element) Equal(o Element) bool {
	op := o.(curve25519Element).p

	if e.p.IsIdentity() || op.IsIdentity() {
		return e.p.IsIdentity() == op.IsIdentity()
	}

	x1, y1 := e.p.XY()
	x2, y2 := op.XY()

	return field.Equal(x1, x2) && field.Equal(y1, y2)
}

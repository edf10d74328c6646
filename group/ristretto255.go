// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package group

import (
	"github.com/gtank/ristretto255"

	"github.com/bytemare/edx25519/internal/rand"
)

// ristretto255Group wraps gtank/ristretto255 directly: unlike
// Edwards25519 and Curve25519, this backend is not built on our
// from-scratch field arithmetic, since Ristretto255's cofactor
// clearing and canonical encoding are exactly what that library
// already gets right.
type ristretto255Group struct{}

type ristretto255Element struct{ e *ristretto255.Element }
type ristretto255Scalar struct{ s *ristretto255.Scalar }

func (ristretto255Group) NewScalar() Scalar {
	return ristretto255Scalar{ristretto255.NewScalar()}
}

func (ristretto255Group) NewElement() Element {
	return ristretto255Element{ristretto255.NewElement()}
}

func (ristretto255Group) ElementLength() int { return 32 }
func (ristretto255Group) ScalarLength() int  { return 32 }

func (ristretto255Group) Identity() Element {
	return ristretto255Element{ristretto255.NewElement().Zero()}
}

func (ristretto255Group) Base() Element {
	return ristretto255Element{ristretto255.NewElement().Base()}
}

func (g ristretto255Group) MultBytes(sc, el []byte) (Element, error) {
	s, err := g.NewScalar().Decode(sc)
	if err != nil {
		return nil, err
	}

	e, err := g.NewElement().Decode(el)
	if err != nil {
		return nil, err
	}

	return e.Mult(s), nil
}

func (s ristretto255Scalar) Random() Scalar {
	sc := ristretto255.NewScalar()
	sc.FromUniformBytes(rand.Bytes(64))

	return ristretto255Scalar{sc}
}

func (s ristretto255Scalar) Add(o Scalar) Scalar {
	return ristretto255Scalar{ristretto255.NewScalar().Add(s.s, o.(ristretto255Scalar).s)}
}

func (s ristretto255Scalar) Sub(o Scalar) Scalar {
	return ristretto255Scalar{ristretto255.NewScalar().Subtract(s.s, o.(ristretto255Scalar).s)}
}

func (s ristretto255Scalar) Mult(o Scalar) Scalar {
	return ristretto255Scalar{ristretto255.NewScalar().Multiply(s.s, o.(ristretto255Scalar).s)}
}

func (s ristretto255Scalar) Invert() Scalar {
	return ristretto255Scalar{ristretto255.NewScalar().Invert(s.s)}
}

func (s ristretto255Scalar) Equal(o Scalar) bool {
	return s.s.Equal(o.(ristretto255Scalar).s) == 1
}

func (s ristretto255Scalar) IsZero() bool {
	return s.s.Equal(ristretto255.NewScalar().Zero()) == 1
}

func (s ristretto255Scalar) Copy() Scalar {
	return ristretto255Scalar{ristretto255.NewScalar().Add(ristretto255.NewScalar(), s.s)}
}

func (s ristretto255Scalar) Decode(in []byte) (Scalar, error) {
	if len(in) != 32 {
		return nil, ErrInvalidElementLength
	}

	sc := ristretto255.NewScalar()
	if err := sc.Decode(in); err != nil {
		return nil, err
	}

	return ristretto255Scalar{sc}, nil
}

func (s ristretto255Scalar) Bytes() []byte {
	return s.s.Encode(nil)
}

func (e ristretto255Element) Add(o Element) Element {
	return ristretto255Element{ristretto255.NewElement().Add(e.e, o.(ristretto255Element).e)}
}

func (e ristretto255Element) Sub(o Element) Element {
	return ristretto255Element{ristretto255.NewElement().Subtract(e.e, o.(ristretto255Element).e)}
}

func (e ristretto255Element) Mult(s Scalar) Element {
	return ristretto255Element{ristretto255.NewElement().ScalarMult(s.(ristretto255Scalar).s, e.e)}
}

func (e ristretto255Element) IsIdentity() bool {
	return e.e.Equal(ristretto255.NewElement().Zero()) == 1
}

func (e ristretto255Element) Copy() Element {
	n := ristretto255.NewElement()
	if err := n.Decode(e.e.Encode(nil)); err != nil {
		panic("group: copying a valid ristretto255 element failed: " + err.Error())
	}

	return ristretto255Element{n}
}

func (e ristretto255Element) Decode(in []byte) (Element, error) {
	if len(in) != 32 {
		return nil, ErrInvalidElementLength
	}

	el := ristretto255.NewElement()
	if err := el.Decode(in); err != nil {
		return nil, err
	}

	return ristretto255Element{el}, nil
}

func (e ristretto255Element) Bytes() []byte {
	return e.e.Encode(nil)
}

func (e ristretto255Element) Equal(o Element) bool {
	return e.e.Equal(o.(ristretto255Element).e) == 1
}

// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2023 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package field implements arithmetic modulo p = 2^255 - 19, the prime
// field Curve25519 and Edwards25519 are defined over. Every operation
// here is built from math/big; nothing delegates to a packaged curve
// library. Elements are plain *big.Int values reduced into [0, p); the
// arithmetic itself is not constant-time (see spec's Non-goals).
package field

import (
	"errors"
	"math/big"
)

// ErrNoSquareRoot indicates Sqrt was asked for the root of a non-residue.
var ErrNoSquareRoot = errors.New("field: no square root exists for this element")

// ErrAlgorithmFailure indicates Tonelli-Shanks exhausted its iteration
// bound without finding the order of the non-residue. Unreachable for
// the prime this package fixes; kept because spec.md names it.
var ErrAlgorithmFailure = errors.New("field: tonelli-shanks failed to converge")

// Size is the canonical byte length of an encoded field element.
const Size = 32

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)

	// P is the field prime, 2^255 - 19.
	P = mustP()

	pMinus1     = new(big.Int).Sub(P, one)
	pMinus2     = new(big.Int).Sub(P, two)
	pMinus1Div2 = new(big.Int).Rsh(pMinus1, 1)

	// exponent for the p ≡ 5 (mod 8) square-root specialization: (p+3)/8.
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, big.NewInt(3)), 3)

	// sqrtMinus1 = 2^((p-1)/4) mod p, the fixed square root of -1 mod p
	// used by the p ≡ 5 (mod 8) specialization.
	sqrtMinus1 = new(big.Int).Exp(two, new(big.Int).Rsh(pMinus1, 2), P)
)

func mustP() *big.Int {
	p := new(big.Int).Lsh(one, 255)
	p.Sub(p, big.NewInt(19))

	return p
}

// Mod reduces x into the canonical representative in [0, p).
func Mod(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, P)
}

// Element returns the canonical reduction of i as a field element.
func Element(i *big.Int) *big.Int {
	return Mod(i)
}

// Zero returns the additive identity.
func Zero() *big.Int {
	return new(big.Int).Set(zero)
}

// One returns the multiplicative identity.
func One() *big.Int {
	return new(big.Int).Set(one)
}

// IsZero reports whether x ≡ 0 (mod p).
func IsZero(x *big.Int) bool {
	return Mod(x).Sign() == 0
}

// Equal reports whether x ≡ y (mod p).
func Equal(x, y *big.Int) bool {
	return Mod(x).Cmp(Mod(y)) == 0
}

// Add returns x + y mod p.
func Add(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Add(x, y))
}

// Sub returns x - y mod p.
func Sub(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(x, y))
}

// Neg returns -x mod p.
func Neg(x *big.Int) *big.Int {
	return Mod(new(big.Int).Neg(x))
}

// Mul returns x * y mod p.
func Mul(x, y *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(x, y))
}

// Square returns x^2 mod p.
func Square(x *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(x, x))
}

// Exp returns x^n mod p.
func Exp(x, n *big.Int) *big.Int {
	return new(big.Int).Exp(x, n, P)
}

// Inverse returns x^-1 mod p via Fermat's little theorem (x^(p-2)). The
// contract for x = 0 is the spec's: it returns 0; callers must not rely
// on that value.
func Inverse(x *big.Int) *big.Int {
	if IsZero(x) {
		return Zero()
	}

	return Exp(x, pMinus2)
}

// Legendre returns -1, 0, or 1 according to the Legendre symbol (a/p).
func Legendre(a *big.Int) int {
	if IsZero(a) {
		return 0
	}

	r := Exp(a, pMinus1Div2)
	if r.Cmp(one) == 0 {
		return 1
	}

	return -1
}

// Sqrt returns r with r^2 ≡ a (mod p), specialized for p ≡ 5 (mod 8)
// (true of 2^255-19). Returns ErrNoSquareRoot if a is a non-residue.
func Sqrt(a *big.Int) (*big.Int, error) {
	a = Mod(a)
	if IsZero(a) {
		return Zero(), nil
	}

	r := Exp(a, sqrtExp)

	if Equal(Square(r), a) {
		return r, nil
	}

	if Equal(Square(r), Neg(a)) {
		return Mul(r, sqrtMinus1), nil
	}

	return nil, ErrNoSquareRoot
}

// maxTonelliIterations bounds the inner loop of Tonelli-Shanks. The loop
// always terminates in at most log2(p) steps for a genuine quadratic
// residue over a prime field; this is a backstop, not a tuning knob.
const maxTonelliIterations = 512

// Tonelli computes a square root of n modulo p using the general
// Tonelli-Shanks algorithm. Unlike Sqrt, it makes no assumption about p
// mod 8, at the cost of being slower; spec.md keeps it around for the
// one call site that needs a prime-agnostic recovery of y from x on the
// Montgomery curve. Returns (nil, false, nil) if n is a non-residue.
func Tonelli(n *big.Int) (*big.Int, bool, error) {
	n = Mod(n)
	if IsZero(n) {
		return Zero(), true, nil
	}

	if Legendre(n) != 1 {
		return nil, false, nil
	}

	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Set(pMinus1)
	s := 0
	for new(big.Int).And(q, one).Sign() == 0 {
		q.Rsh(q, 1)
		s++
	}

	if s == 1 {
		// p ≡ 3 (mod 4): r = n^((p+1)/4).
		exp := new(big.Int).Rsh(new(big.Int).Add(P, one), 2)
		return Exp(n, exp), true, nil
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for Legendre(z) != -1 {
		z.Add(z, one)
	}

	m := s
	c := Exp(z, q)
	t := Exp(n, q)
	rExp := new(big.Int).Rsh(new(big.Int).Add(q, one), 1)
	r := Exp(n, rExp)

	for iter := 0; ; iter++ {
		if iter > maxTonelliIterations {
			return nil, false, ErrAlgorithmFailure
		}

		if IsZero(Sub(t, one)) {
			return r, true, nil
		}

		// Find the least i, 0 < i < m, such that t^(2^i) == 1.
		i := 0
		tt := new(big.Int).Set(t)

		for i = 1; i < m; i++ {
			tt = Square(tt)
			if tt.Cmp(one) == 0 {
				break
			}
		}

		if i == m {
			return nil, false, ErrAlgorithmFailure
		}

		b := c
		for j := 0; j < m-i-1; j++ {
			b = Square(b)
		}

		m = i
		c = Square(b)
		t = Mul(t, c)
		r = Mul(r, b)
	}
}

// CSwap conditionally swaps x and y: if flag is 1 it returns (y, x),
// otherwise (x, y). It is expressed arithmetically, with no branch on
// flag's value, but bigint width still varies with the operands, so
// this is documented as not constant-time (see spec's Non-goals).
func CSwap(flag uint, x, y *big.Int) (*big.Int, *big.Int) {
	mask := zero
	if flag&1 == 1 {
		mask = one
	}

	diff := new(big.Int).Xor(x, y)
	diff.Mul(diff, mask)

	nx := new(big.Int).Xor(x, diff)
	ny := new(big.Int).Xor(y, diff)

	return nx, ny
}

// DecodeLittle decodes a 32-byte little-endian buffer into an integer,
// masking bit 255 (the top bit of byte 31) per RFC 7748's u-coordinate
// decoding rule.
func DecodeLittle(b []byte) *big.Int {
	buf := make([]byte, Size)
	copy(buf, b)
	buf[Size-1] &= 0x7f

	return new(big.Int).SetBytes(reverse(buf))
}

// EncodeLittle encodes x as 32 little-endian, zero-padded bytes, after
// reducing it into its canonical representative.
func EncodeLittle(x *big.Int) []byte {
	canon := Mod(x)
	be := canon.Bytes()

	buf := make([]byte, Size)
	copy(buf[Size-len(be):], be)

	return reverse(buf)
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}

	return out
}

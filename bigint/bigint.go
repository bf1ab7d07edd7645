// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements the small amount of unsigned arbitrary
// precision arithmetic the slow (bhcomp) conversion path needs to
// compare an exact decimal value against the exact binary value of a
// candidate float: building an integer from decimal digits, scaling it
// by a power of ten or a power of two, and comparing two such integers.
//
// It is not a general-purpose bignum package: there is no subtraction,
// no division, and no signed representation, because the slow path
// never needs them.
package bigint

import "math/bits"

// Word is one limb, base 2**bits.UintSize.
type Word = uint

const wordBits = bits.UintSize

// Int is an unsigned integer
//
//	x = x[n-1]*B^(n-1) + ... + x[1]*B + x[0]
//
// with B = 2**wordBits, stored little-endian (x[0] is least
// significant). A normalized Int carries no leading (high-order) zero
// limbs; the zero value, with a nil slice, represents 0.
type Int struct {
	w []Word
}

// FromUint64 returns the Int value of x.
func FromUint64(x uint64) Int {
	if x == 0 {
		return Int{}
	}
	if wordBits == 64 {
		return Int{w: []Word{Word(x)}}
	}
	// 32-bit Word: split into two limbs.
	lo := Word(x)
	hi := Word(x >> 32)
	if hi == 0 {
		return Int{w: []Word{lo}}
	}
	return Int{w: []Word{lo, hi}}
}

// FromDigits parses an ASCII decimal digit string ('0'..'9') into an
// Int, most significant digit first.
func FromDigits(digits []byte) Int {
	var z Int
	for _, c := range digits {
		z = z.mulWordAdd(10, Word(c-'0'))
	}
	return z
}

// norm drops leading (high-order) zero limbs.
func (z Int) norm() Int {
	n := len(z.w)
	for n > 0 && z.w[n-1] == 0 {
		n--
	}
	z.w = z.w[:n]
	return z
}

// MulPow10 returns z * 10**n.
func (z Int) MulPow10(n uint32) Int {
	if n == 0 || len(z.w) == 0 {
		return z
	}
	// 10**9 is the largest power of ten that fits a 32-bit limb; chunk
	// the exponent by it so mulWordAdd's single-limb multiplier fits a
	// Word on both 32- and 64-bit platforms.
	const chunk = 9
	var pow10Chunk Word = 1
	for i := 0; i < chunk; i++ {
		pow10Chunk *= 10
	}
	for n >= chunk {
		z = z.mulWordAdd(pow10Chunk, 0)
		n -= chunk
	}
	if n > 0 {
		var p Word = 1
		for i := uint32(0); i < n; i++ {
			p *= 10
		}
		z = z.mulWordAdd(p, 0)
	}
	return z
}

// mulWordAdd returns z*m + a for a full-width multiplier m, propagating
// carry across limbs.
func (z Int) mulWordAdd(m, a Word) Int {
	if len(z.w) == 0 {
		if a == 0 {
			return z
		}
		return Int{w: []Word{a}}
	}
	out := make([]Word, len(z.w)+1)
	carry := a
	for i, d := range z.w {
		hi, lo := bits.Mul(uint(d), uint(m))
		lo2, c := bits.Add(lo, uint(carry), 0)
		out[i] = Word(lo2)
		carry = Word(hi) + Word(c)
	}
	out[len(z.w)] = carry
	return Int{w: out}.norm()
}

// Shl returns z << n.
func (z Int) Shl(n uint32) Int {
	if n == 0 || len(z.w) == 0 {
		return z
	}
	limbShift := int(n / wordBits)
	bitShift := uint(n % wordBits)

	out := make([]Word, len(z.w)+limbShift+1)
	if bitShift == 0 {
		copy(out[limbShift:], z.w)
	} else {
		var carry Word
		for i, d := range z.w {
			out[limbShift+i] = d<<bitShift | carry
			carry = d >> (wordBits - bitShift)
		}
		out[limbShift+len(z.w)] = carry
	}
	return Int{w: out}.norm()
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int {
	x, y = x.norm(), y.norm()
	if len(x.w) != len(y.w) {
		if len(x.w) < len(y.w) {
			return -1
		}
		return 1
	}
	for i := len(x.w) - 1; i >= 0; i-- {
		if x.w[i] != y.w[i] {
			if x.w[i] < y.w[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

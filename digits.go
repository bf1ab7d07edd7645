// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

// DigitSeq is a restartable sequence of ASCII decimal digits ('0'..'9').
// Callers are responsible for trimming leading zeros from the integer part
// and trailing zeros from the fraction part before constructing one; atof
// assumes every byte it is handed is a valid digit.
//
// DigitSeq is restartable by construction: it is a thin wrapper around a
// byte slice, so the slow path can revisit digits the moderate path has
// already consumed without any cloning protocol.
type DigitSeq struct {
	b []byte
}

// NewDigitSeq wraps b, which must contain only ASCII '0'..'9', as a DigitSeq.
func NewDigitSeq(b []byte) DigitSeq { return DigitSeq{b} }

// Bytes returns the underlying digits.
func (d DigitSeq) Bytes() []byte { return d.b }

// Len returns the digit count.
func (d DigitSeq) Len() int { return len(d.b) }

// accumulate consumes integer then fraction digits into a u64 significand,
// stopping at the first digit that would overflow. The remaining digits
// (across both sequences) are counted but not incorporated; truncated holds
// that count. The significand is thus the largest prefix of the
// concatenated digits that fits in 64 bits.
func accumulate(integer, fraction DigitSeq) (significand uint64, truncated int) {
	n := 0
	for _, c := range integer.b {
		n++
		v, ok := addDigit(significand, c)
		if !ok {
			truncated = integer.Len() + fraction.Len() - (n - 1)
			return significand, truncated
		}
		significand = v
	}
	for _, c := range fraction.b {
		n++
		v, ok := addDigit(significand, c)
		if !ok {
			truncated = integer.Len() + fraction.Len() - (n - 1)
			return significand, truncated
		}
		significand = v
	}
	return significand, 0
}

// addDigit appends a decimal digit to value, reporting overflow.
func addDigit(value uint64, c byte) (uint64, bool) {
	d := uint64(c - '0')
	const maxBeforeMul = (1<<64 - 1) / 10
	if value > maxBeforeMul {
		return 0, false
	}
	value *= 10
	sum := value + d
	if sum < value {
		return 0, false
	}
	return sum, true
}

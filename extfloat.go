// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "math/bits"

// extFloat80 is an extended-precision binary float mant * 2**exp, used by
// the extended-80 moderate path (§4.5). It carries no sign; sign is
// applied by the caller once a native float has been produced.
type extFloat80 struct {
	mant uint64
	exp  int32
}

// normalized reports whether the high bit of mant is set, or mant is 0.
func (fp extFloat80) normalized() bool {
	return fp.mant == 0 || fp.mant&(1<<63) != 0
}

// normalize left-shifts mant until its high bit is set (or it is zero),
// adjusting exp to compensate, and returns the shift applied.
func (fp *extFloat80) normalize() uint32 {
	if fp.mant == 0 {
		return 0
	}
	shift := uint32(bits.LeadingZeros64(fp.mant))
	fp.mant <<= shift
	fp.exp -= int32(shift)
	return shift
}

// mul computes fp*other as if by exact multiplication of the two
// mantissas (128-bit intermediate, rounded up into the high 64 bits) and
// addition of the exponents, offset by 64 to account for the mantissas
// being treated as fixed-point values below the binary point. Both
// operands should be normalized; the result is not normalized.
func (fp extFloat80) mul(other extFloat80) extFloat80 {
	hi, lo := bits.Mul64(fp.mant, other.mant)
	// round the product up into hi by adding the rounding bit (1<<63) to
	// the low word and propagating the carry.
	_, carry := bits.Add64(lo, 1<<63, 0)
	return extFloat80{mant: hi + carry, exp: fp.exp + other.exp + 64}
}

// imul multiplies fp in place by other.
func (fp *extFloat80) imul(other extFloat80) {
	*fp = fp.mul(other)
}

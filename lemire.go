// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "math/bits"

// eiselLemire estimates the correctly-rounded value of F for
// mantissa * 10**exp10 using paired 64x64-bit products against a
// precomputed 128-bit power of ten, rounding natively in F's own domain.
// Earlier revisions of this path always ran in the binary64 domain and
// narrowed the result for binary32, which risks double rounding; this
// version computes the biased binary exponent directly from fmt, so
// binary32 rounds straight from the 128-bit product with no intermediate
// binary64 rounding step. It returns ok == false when the estimate is
// ambiguous (within one bit of a halfway point) and the caller must fall
// back to a slower, proven path.
func eiselLemire[F Float](fmt format[F], mantissa uint64, exp10 int32) (bitsOut uint64, ok bool) {
	if exp10 < minDenormalExp10 {
		return 0, true // literal +0
	}
	if exp10 > maxNormalExp10 {
		return fmt.infinityBits, true // literal +inf
	}

	ctlz := int32(bits.LeadingZeros64(mantissa))
	m := mantissa << uint(ctlz)

	unbiasedExp2 := (int64(217706) * int64(exp10)) >> 16
	exp2 := int32(unbiasedExp2) + (64 + fmt.exponentBias) - ctlz

	p := pow10At(exp10)
	xHi, xLo := mul128(m, p.hi)

	carrySize := fmt.mantissaSize + 2
	carryShift := 63 - carrySize
	mask := uint64(1)<<uint(carryShift) - 1

	if xHi&mask == mask && xLo+m < xLo {
		yHi, yLo := mul128(m, p.lo)
		mergedHi := xHi
		mergedLo := xLo + yHi
		if mergedLo < xLo {
			mergedHi++
		}
		if mergedHi&mask == mask && mergedLo+1 == 0 && yLo+m < yLo {
			// ambiguous: cannot tell which side of the halfway point.
			return 0, false
		}
		xHi, xLo = mergedHi, mergedLo
	}

	mantissaOut, exp2Out := shiftToCarry(xHi, exp2, carryShift)

	if xLo == 0 && xHi&mask == 0 && mantissaOut&3 == 1 {
		return 0, false
	}

	return lemireToFloat(fmt, mantissaOut, exp2Out)
}

// mul128 returns the full 128-bit product of x and y as (hi, lo).
func mul128(x, y uint64) (hi, lo uint64) {
	return bits.Mul64(x, y)
}

// shiftToCarry shifts x_hi right until only the carry bit (mantissa size
// + 2) and above remain, adjusting exp2 for the implicit leading bit.
func shiftToCarry(xHi uint64, exp2 int32, carryShift int32) (mantissa uint64, newExp2 int32) {
	msb := xHi >> 63
	shift := int32(msb) + carryShift
	mantissa = xHi >> uint(shift)
	newExp2 = exp2 - (1 - int32(msb))
	return mantissa, newExp2
}

// lemireToFloat rounds a mantissa holding mantissaSize+2 significant bits
// (the hidden bit, the stored bits and one rounding bit, as left by
// shiftToCarry) to F's native representation, ties to even, and reports
// overflow to +Inf.
func lemireToFloat[F Float](fmt format[F], mantissa uint64, exp2 int32) (uint64, bool) {
	if exp2 <= -(fmt.mantissaSize + 2) {
		return 0, true // literal zero
	} else if exp2 <= 0 {
		// Denormal range: the caller doesn't need accuracy here, since
		// ambiguity this close to zero is resolved by the slower paths.
		return 0, false
	}

	exp := uint64(exp2)
	m := mantissa
	m += m & 1
	m >>= 1
	precision := uint64(fmt.mantissaSize + 1)
	if m>>precision > 0 {
		m >>= 1
		exp++
	}

	maxExp := uint64(fmt.maxExponent)
	if exp >= maxExp {
		return fmt.infinityBits, true
	}

	m &= fmt.mantissaMask
	bitsOut := (exp << uint(fmt.mantissaSize)) | m
	return bitsOut, true
}

// lemireModeratePath runs the Eisel-Lemire algorithm and, on ambiguity
// caused by a truncated significand, re-runs it with mantissa+1: if both
// runs agree bit-for-bit the result is accepted without the more
// expensive error-bound analysis extended-80 would otherwise require.
func lemireModeratePath[F Float](fmt format[F], mantissa uint64, exp10 int32, truncated bool) (uint64, bool) {
	bitsOut, ok := eiselLemire(fmt, mantissa, exp10)
	if !ok {
		return 0, false
	}
	if !truncated {
		return bitsOut, true
	}
	upBits, upOK := eiselLemire(fmt, mantissa+1, exp10)
	if upOK && upBits == bitsOut {
		return bitsOut, true
	}
	return bitsOut, false
}

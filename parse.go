// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

// Parse converts a decimal significand, split into its integer and
// fraction digit sequences, and a decimal exponent into the
// correctly-rounded value of format F.
//
// integer and fraction concatenated form the significand's digits, and
// decExp is the power of ten applied after the fraction's last digit:
// "123.45e6" is integer="123", fraction="45", decExp=6 (the value is
// 12345 * 10**(6-2), i.e. 1.2345e8). Both sequences must already be
// trimmed of insignificant zeros (leading on integer, trailing on
// fraction) by the caller; Parse assumes this and does not re-check it.
// Parse has no notion of sign — callers negate the result themselves.
//
// Parse never errors: out-of-range magnitudes saturate to zero or
// infinity, matching IEEE-754 conversion semantics.
func Parse[F Float](fmt format[F], integer, fraction DigitSeq, decExp int32) F {
	significand, truncated := accumulate(integer, fraction)
	if significand == 0 {
		return fmt.zero()
	}
	// Digits dropped by accumulate still scale the value; saturate rather
	// than wrap when the adjusted exponent leaves int32's range.
	e := int64(decExp) - int64(fraction.Len()) + int64(truncated)
	if e > 1<<31-1 {
		e = 1<<31 - 1
	} else if e < -1<<31 {
		e = -1 << 31
	}
	exp10 := int32(e)
	truncatedFlag := truncated > 0

	if v, ok := fastPath(fmt, significand, exp10, truncatedFlag); ok {
		if debugAtof {
			assertAgreesWithSlowPath(fmt, integer, fraction, decExp, fmt.toBits(v), "fastPath")
		}
		return v
	}

	if lemireBits, ok := lemireModeratePath(fmt, significand, exp10, truncatedFlag); ok {
		v := fmt.fromBits(lemireBits)
		if debugAtof {
			assertAgreesWithSlowPath(fmt, integer, fraction, decExp, lemireBits, "lemireModeratePath")
		}
		return v
	}

	v, ok := extModeratePath(fmt, significand, exp10)
	if ok && truncatedFlag {
		// The dropped digits place the exact value in
		// [significand, significand+1) * 10**exp10: accept only when both
		// ends of that range provably round to the same bits.
		up, upOK := extModeratePath(fmt, significand+1, exp10)
		ok = upOK && fmt.toBits(up) == fmt.toBits(v)
	}
	if ok {
		if debugAtof {
			assertAgreesWithSlowPath(fmt, integer, fraction, decExp, fmt.toBits(v), "extModeratePath")
		}
		return v
	}

	seed := extRoughBits(fmt, significand, exp10)
	return fmt.fromBits(slowPath(fmt, integer, fraction, decExp, seed))
}

// assertAgreesWithSlowPath re-derives the result via the always-correct
// slow path and panics (when debugAtof is enabled) if a faster path's
// claimed correctly-rounded bits disagree with it.
func assertAgreesWithSlowPath[F Float](fmt format[F], integer, fraction DigitSeq, decExp int32, gotBits uint64, pathName string) {
	want := slowPath(fmt, integer, fraction, decExp, gotBits)
	assert(gotBits == want, pathName+" disagrees with slowPath")
}

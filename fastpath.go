// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

// fastPath attempts the exact path (§4.3): when mantissa and exp10 are
// both small enough that mantissa and 10**|exp10| are each exactly
// representable in F, and a single hardware multiply or divide rounds
// correctly, the result needs no further analysis (Clinger's theorem).
// It never fires on a truncated significand: a lost digit means the
// value already isn't exact.
func fastPath[F Float](fmt format[F], mantissa uint64, exp10 int32, truncated bool) (F, bool) {
	if truncated {
		return 0, false
	}
	if mantissa>>uint(fmt.mantissaSize+1) != 0 {
		// more significant bits than F's mantissa plus its hidden bit can
		// hold exactly; a fast multiply could round twice.
		return 0, false
	}

	if exp10 == 0 {
		return F(mantissa), true
	}

	if exp10 > 0 {
		if exp10 > fmt.maxExp10+fmt.mantissaLimit {
			return 0, false
		}
		// Disguised fast path: shift some of the excess decimal exponent
		// into the significand itself when it still fits exactly, then
		// finish with one in-range power-of-ten multiply.
		if exp10 > fmt.maxExp10 {
			shift := exp10 - fmt.maxExp10
			if shift > fmt.mantissaLimit {
				return 0, false
			}
			scaled := mantissa * pow10Small[shift]
			if scaled/pow10Small[shift] != mantissa {
				return 0, false // overflowed uint64, can't trust the product
			}
			if scaled>>uint(fmt.mantissaSize+1) != 0 {
				return 0, false
			}
			mantissa = scaled
			exp10 = fmt.maxExp10
		}
		return F(float64(mantissa) * pow10Exact[exp10]), true
	}

	if -exp10 > fmt.maxExp10 {
		return 0, false
	}
	return F(float64(mantissa) / pow10Exact[-exp10]), true
}

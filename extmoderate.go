// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

// extModerateErrorUnit is the error bound, in units of the mantissa's
// lowest bit, that extApproximate charges for each inexact step: once
// for the multiply's own rounding, and once more when the low 64 bits of
// the power-of-ten table entry, which the multiply drops, are nonzero.
const extModerateErrorUnit = 1

// extMantissaFromU64 builds a normalized extFloat80 exactly representing
// a u64 significand. Significands this small (<2**64) always fit exactly,
// so the result carries no error of its own.
func extMantissaFromU64(m uint64) extFloat80 {
	fp := extFloat80{mant: m, exp: 0}
	fp.normalize()
	return fp
}

// binExp10 returns the base-2 exponent such that
// 2**binExp10 <= 10**exp10 < 2**(binExp10+1), via the same closed-form
// estimate the Eisel-Lemire path and cmd/atofgen both rely on and verify.
func binExp10(exp10 int32) int32 {
	return int32((int64(217706) * int64(exp10)) >> 16)
}

// extApproximate computes mantissa * 10**exp10 as a normalized
// extFloat80, along with the accumulated error bound in units of the
// result's lowest bit. When exp10 is below minDenormalExp10 it skips the
// multiply and returns isSpecial true with specialBits holding +0;
// exponents above maxNormalExp10 are handled by its callers.
func extApproximate(mantissa uint64, exp10 int32) (fp extFloat80, errorUnits uint64, specialBits uint64, isSpecial bool) {
	if exp10 < minDenormalExp10 {
		return extFloat80{}, 0, 0, true // literal +0
	}

	fp = extMantissaFromU64(mantissa)

	p := pow10At(exp10)
	// p.hi carries the normalized top 64 bits of 10**exp10 (bit 127 of
	// the full value set); p.lo's loss contributes one more error unit.
	pHi := extFloat80{mant: p.hi, exp: binExp10(exp10) - 63}
	fp = fp.mul(pHi)
	shift := fp.normalize()

	errorUnits = extModerateErrorUnit
	if p.lo != 0 {
		errorUnits += extModerateErrorUnit
	}
	// normalizing moved the lowest bit down by shift places.
	errorUnits <<= shift
	return fp, errorUnits, 0, false
}

// extModeratePath computes mantissa * 10**exp10 and rounds it to F,
// reporting ok == false when the accumulated error bound overlaps the
// nearest rounding boundary, in which case the slow bhcomp path must
// settle it with exact arithmetic.
func extModeratePath[F Float](fmt format[F], mantissa uint64, exp10 int32) (result F, ok bool) {
	if exp10 > maxNormalExp10 {
		return fmt.inf(), true
	}
	fp, errorUnits, special, isSpecial := extApproximate(mantissa, exp10)
	if isSpecial {
		return fmt.fromBits(special), true
	}
	bitsOut, ambiguous := extRoundBits(fmt, fp, errorUnits)
	return fmt.fromBits(bitsOut), !ambiguous
}

// extRoughBits produces a best-effort, possibly-incorrect rounding of
// mantissa * 10**exp10 to F's bit representation, ignoring whether the
// error bound made the rounding direction provable. It exists only to
// seed the slow path with a nearby starting candidate; the slow path
// re-derives correctness independently.
func extRoughBits[F Float](fmt format[F], mantissa uint64, exp10 int32) uint64 {
	if exp10 > maxNormalExp10 {
		return fmt.infinityBits
	}
	fp, errorUnits, special, isSpecial := extApproximate(mantissa, exp10)
	if isSpecial {
		return special
	}
	bitsOut, _ := extRoundBits(fmt, fp, errorUnits)
	return bitsOut
}

// extRoundBits rounds fp, with the given error bound in units of
// fp.mant's lowest bit, to F's bit representation, ties to even. It
// always returns its best-effort rounding in bitsOut; ambiguous reports
// whether the error bound overlapped the halfway point between two
// representable values of F, in which case bitsOut cannot be trusted as
// the correctly-rounded result.
func extRoundBits[F Float](fmt format[F], fp extFloat80, errorUnits uint64) (bitsOut uint64, ambiguous bool) {
	// fp.mant is normalized (bit 63 set) with base-2 exponent fp.exp, so
	// the value's true exponent (weight of the hidden bit once rounded
	// to F's mantissaSize+1 significant bits) is fp.exp+63.
	targetBits := int32(fmt.mantissaSize + 1)
	// thresholdExp is the leading-bit exponent of the smallest normal
	// value (1 - bias, equivalently denormalExponent + mantissaSize):
	// below it the result has fewer than targetBits significant bits to
	// give, and the usual hidden-bit accounting no longer applies.
	thresholdExp := fmt.denormalExponent + fmt.mantissaSize
	discard := 64 - targetBits
	exp2 := fp.exp + 63

	subnormal := thresholdExp > exp2
	if subnormal {
		discard += thresholdExp - exp2
		exp2 = thresholdExp
	}
	if discard >= 64 {
		return 0, true // far below the smallest subnormal; let the slow path settle it
	}
	if discard <= 0 {
		discard = 1 // degenerate; force at least one rounding bit
	}
	bitsKept := 64 - discard

	halfway := uint64(1) << uint(discard-1)
	discarded := fp.mant & (uint64(1)<<uint(discard) - 1)

	lo, hi := discarded-errorUnits, discarded+errorUnits
	if errorUnits > discarded {
		lo = 0
	}
	ambiguous = lo <= halfway && halfway <= hi

	mant := fp.mant >> uint(discard)
	if discarded > halfway {
		mant++
	}
	if mant>>uint(bitsKept) != 0 {
		mant >>= 1
		exp2++
	}

	var biasedExp int32
	if subnormal {
		// Whether the rounding above just carried out of subnormal range
		// and into the smallest normal is the one case this windowed
		// rounding can't resolve bit-exactly: always defer to the slow
		// path rather than risk an off-by-one-ULP bit pattern. biasedExp
		// stays 0, the correct stored exponent field for a subnormal;
		// mantBits below still carries the real subnormal mantissa.
		biasedExp = 0
		ambiguous = true
	} else {
		biasedExp = exp2 - fmt.denormalExponent + 1 - fmt.mantissaSize
	}

	if exp2 < fmt.denormalExponent {
		return 0, true
	}
	if biasedExp >= int32(fmt.maxExponent) {
		return fmt.infinityBits, ambiguous
	}
	if !subnormal && biasedExp <= 0 {
		return 0, ambiguous
	}

	mantBits := mant & fmt.mantissaMask
	return (uint64(biasedExp) << uint(fmt.mantissaSize)) | mantBits, ambiguous
}

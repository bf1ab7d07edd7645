// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "github.com/db47h/atof/bigint"

// slowPath settles whatever the faster paths could not prove, by
// comparing the exact decimal value against the exact midpoints around
// a candidate float, using arbitrary-precision integer arithmetic. It
// is total and always correct, at the cost of being the slowest path.
//
// candidateBits is any correctly-formatted bit pattern close to the
// true result — the moderate paths' last (possibly ambiguous) guess is
// a good choice, since bhcomp only needs to know which direction, if
// any, to step from it.
func slowPath[F Float](fmt format[F], integer, fraction DigitSeq, decExp int32, candidateBits uint64) uint64 {
	exp10 := decExp - int32(fraction.Len())

	digits := make([]byte, 0, integer.Len()+fraction.Len())
	digits = append(digits, integer.Bytes()...)
	digits = append(digits, fraction.Bytes()...)
	d := bigint.FromDigits(digits)

	for {
		if candidateBits == 0 {
			// A zero seed still has a neighbor above it: the smallest
			// subnormal. Compare against the midpoint between the two
			// instead of settling for zero outright.
			mid := compareDecimalToBinary(d, exp10, 1, fmt.denormalExponent-1)
			if mid > 0 {
				candidateBits = nextBits(fmt, 0, +1)
				continue
			}
			// mid <= 0: below the midpoint, or exactly on it, in which
			// case ties-to-even keeps zero (its mantissa bit is even).
			return 0
		}

		mant, binExp, exact := candidateValue(fmt, candidateBits)
		if exact {
			// candidate is infinity: no neighbor exists above it, so
			// the cascade's earlier exact check already settled it and
			// we shouldn't be here, but return it unchanged rather than
			// divide by a missing step.
			return candidateBits
		}

		// Compare the exact decimal value to the midpoints between the
		// candidate and its two neighbors, expressed as 2*mant±1 at one
		// extra bit of precision. At the bottom of a binade the neighbor
		// below is half as far away, so that midpoint is 4*mant-1 at two
		// extra bits.
		cmpHigh := compareDecimalToBinary(d, exp10, 2*mant+1, binExp-1)
		lowMant, lowExp := 2*mant-1, binExp-1
		if mant == fmt.hiddenBitMask && candidateBits>>uint(fmt.mantissaSize) > 1 {
			lowMant, lowExp = 4*mant-1, binExp-2
		}
		cmpLow := compareDecimalToBinary(d, exp10, lowMant, lowExp)

		switch {
		case cmpHigh > 0:
			// decimal value is above the midpoint to the next higher
			// float: round up and re-settle around the new candidate.
			candidateBits = nextBits(fmt, candidateBits, +1)
			continue
		case cmpLow < 0:
			candidateBits = nextBits(fmt, candidateBits, -1)
			continue
		case cmpHigh == 0:
			// exactly halfway to the next float up: ties to even.
			if mant&1 == 0 {
				return candidateBits
			}
			return nextBits(fmt, candidateBits, +1)
		case cmpLow == 0:
			if mant&1 == 0 {
				return candidateBits
			}
			return nextBits(fmt, candidateBits, -1)
		default:
			return candidateBits
		}
	}
}

// candidateValue decodes bitsVal into its integer mantissa (with hidden
// bit restored for normal values) and binary exponent, such that
// value == mant * 2**binExp. exact reports bitsVal being 0 or infinite,
// which have no adjacent neighbor for bhcomp to compare against.
func candidateValue[F Float](fmt format[F], bitsVal uint64) (mant uint64, binExp int32, exact bool) {
	rawExp := int32((bitsVal & fmt.exponentMask) >> fmt.mantissaSize)
	m := bitsVal & fmt.mantissaMask
	if rawExp == 0 {
		// subnormal: no hidden bit, exponent fixed at the denormal value.
		if m == 0 {
			return 0, 0, true
		}
		return m, fmt.denormalExponent, false
	}
	if uint64(rawExp) == fmt.infinityBits>>fmt.mantissaSize {
		return 0, 0, true
	}
	mant = m | fmt.hiddenBitMask
	binExp = rawExp - fmt.exponentBias - int32(fmt.mantissaSize)
	return mant, binExp, false
}

// nextBits returns the bit pattern of the float adjacent to bitsVal in
// the direction of dir (+1 toward +Inf, -1 toward 0), within the
// positive range bhcomp operates in.
func nextBits[F Float](fmt format[F], bitsVal uint64, dir int) uint64 {
	m := bitsVal & fmt.mantissaMask
	e := bitsVal & fmt.exponentMask
	exponentStep := uint64(1) << uint(fmt.mantissaSize)
	if dir > 0 {
		if m == fmt.mantissaMask {
			return e + exponentStep // mantissa wraps to 0, exponent bumps
		}
		return e | (m + 1)
	}
	if m == 0 {
		if e == 0 {
			return 0
		}
		return (e - exponentStep) | fmt.mantissaMask
	}
	return e | (m - 1)
}

// compareDecimalToBinary compares the exact value d*10**decExp to the
// exact value mant*2**binExp, both unsigned, returning -1, 0, or +1.
// It works by scaling whichever side carries a negative exponent up by
// the matching positive power, so the comparison is always performed on
// two plain (non-fractional) arbitrary-precision integers.
func compareDecimalToBinary(d bigint.Int, decExp int32, mant uint64, binExp int32) int {
	left := d
	right := bigint.FromUint64(mant)

	if decExp >= 0 {
		left = left.MulPow10(uint32(decExp))
	} else {
		right = right.MulPow10(uint32(-decExp))
	}

	if binExp >= 0 {
		right = right.Shl(uint32(binExp))
	} else {
		left = left.Shl(uint32(-binExp))
	}

	return left.Cmp(right)
}

// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

//go:generate go run ./cmd/atofgen -out pow10_table.go

// minDenormalExp10 and maxNormalExp10 bound the decimal exponent range for
// which pow10Large carries a precomputed power of ten. Below the minimum,
// the Eisel-Lemire and extended-80 paths return exact +0; above the
// maximum, they return exact +Inf. Both are wide enough to cover binary64's
// full representable domain per spec (smallest subnormal 5e-324 minus 19
// significand digits of slop, largest finite magnitude just under 1e309).
const (
	minDenormalExp10 = -342
	maxNormalExp10   = 308
)

// pow10Small holds 10^0..10^19, the largest powers of ten that fit in a
// uint64. Used for the fast path's disguised-exponent pre-scale.
var pow10Small = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// pow10Exact holds 10^0..10^22 as float64, every one of which is exactly
// representable in binary64 (and, by extension, binary32 up to 10^10).
// Combined with a single hardware multiply or divide, these let the fast
// path produce a correctly-rounded result without ever rounding twice
// (Clinger's theorem): see fastPath.
var pow10Exact = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// pow10Entry is a 128-bit approximation of 10^e, normalized so bit 127 of
// the combined (hi, lo) value is set. The implicit base-2 exponent of the
// entry is not stored: it is recovered at call sites via the closed-form
// floor(log2(10^e)) = (217706*e) >> 16, which cmd/atofgen verifies holds
// exactly over [minDenormalExp10, maxNormalExp10] before emitting the table.
type pow10Entry struct {
	hi, lo uint64
}

// pow10Large is indexed by e - minDenormalExp10 for e in
// [minDenormalExp10, maxNormalExp10]. See pow10_table.go (generated).
func pow10At(e int32) pow10Entry {
	return pow10Large[e-minDenormalExp10]
}

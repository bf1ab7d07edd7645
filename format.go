// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "math"

// Float is the set of native floating-point types atof can produce.
type Float interface {
	~float32 | ~float64
}

// format bundles the per-format constants and bit-conversion functions
// the cascade needs. There are exactly two instances, Binary32 and
// Binary64; format is generic only so the same algorithm code compiles
// once per concrete F and returns the native float type directly,
// without a type switch or interface boxing on the hot path.
type format[F Float] struct {
	mantissaSize     int32 // stored mantissa bits (23, 52)
	exponentBias     int32
	denormalExponent int32 // 1 - bias - mantissaSize
	maxExponent      int32

	signMask      uint64
	exponentMask  uint64
	hiddenBitMask uint64
	mantissaMask  uint64
	infinityBits  uint64

	minExp10      int32 // exponent_limit(): 10^e exactly representable for e in [minExp10, maxExp10]
	maxExp10      int32
	mantissaLimit int32 // max leading significand digits that still fit exactly

	fromBits func(uint64) F
	toBits   func(F) uint64
}

// Binary32 is the IEEE-754 single-precision format.
var Binary32 = format[float32]{
	mantissaSize:     23,
	exponentBias:     127,
	denormalExponent: 1 - 127 - 23,
	maxExponent:      255,
	signMask:         1 << 31,
	exponentMask:     0xFF << 23,
	hiddenBitMask:    1 << 23,
	mantissaMask:     1<<23 - 1,
	infinityBits:     0xFF << 23,
	minExp10:         -10,
	maxExp10:         10,
	mantissaLimit:    7,
	fromBits:         func(b uint64) float32 { return math.Float32frombits(uint32(b)) },
	toBits:           func(f float32) uint64 { return uint64(math.Float32bits(f)) },
}

// Binary64 is the IEEE-754 double-precision format.
var Binary64 = format[float64]{
	mantissaSize:     52,
	exponentBias:     1023,
	denormalExponent: 1 - 1023 - 52,
	maxExponent:      2047,
	signMask:         1 << 63,
	exponentMask:     0x7FF << 52,
	hiddenBitMask:    1 << 52,
	mantissaMask:     1<<52 - 1,
	infinityBits:     0x7FF << 52,
	minExp10:         -22,
	maxExp10:         22,
	mantissaLimit:    15,
	fromBits:         func(b uint64) float64 { return math.Float64frombits(b) },
	toBits:           func(f float64) uint64 { return math.Float64bits(f) },
}

func (f format[F]) zero() F { return f.fromBits(0) }

func (f format[F]) inf() F { return f.fromBits(f.infinityBits) }

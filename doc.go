// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package atof implements correctly-rounded decimal-to-binary floating-point
conversion: given already-tokenized decimal significand digits and a decimal
exponent, it produces the IEEE-754 binary32 or binary64 value closest to the
exact decimal value, with ties broken to even.

Lexical scanning (sign handling, digit trimming, exponent parsing, NaN/Inf
literal recognition) is the caller's responsibility. atof consumes two
restartable digit sequences (integer and fraction parts, already trimmed of
leading/trailing zeros) and a signed decimal exponent, and is total over
that input domain: it never returns an error, only a correctly-rounded,
possibly zero or infinite, float.

Internally, Parse dispatches through a fast/moderate/slow cascade:

	fast path        exact result when the significand and exponent are
	                 both small enough for a single hardware multiply
	moderate path    Eisel-Lemire 128-bit estimate, falling back to an
	                 80-bit extended-precision multiply on ambiguity
	slow path        exact big-integer comparison (bhcomp) for whatever
	                 remains unproven

Each path is attempted in order; the first one that proves its result wins.
The cascade is invisible to callers — it only affects how fast a given
input converts, never the bits it converts to.

Parse is generic over the two supported formats, Binary32 and Binary64:

	integer := atof.NewDigitSeq([]byte("123"))
	fraction := atof.NewDigitSeq([]byte("45"))
	v := atof.Parse(atof.Binary64, integer, fraction, int32(6)) // 123.45e6

atof does not allocate on the fast or moderate paths; the slow path
allocates bigint.Int limb slices as it goes (see the bigint subpackage).
*/
package atof

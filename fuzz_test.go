// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

// splitDecimal decomposes the 'e'-formatted output of
// strconv.FormatFloat (always "d.ddd...e±dd", one digit before the
// point) into the integer/fraction/exponent triple Parse expects.
func splitDecimal(s string) (integer, fraction string, exp int32) {
	mantissa, expPart, _ := strings.Cut(s, "e")
	e, err := strconv.ParseInt(expPart, 10, 32)
	if err != nil {
		panic(err)
	}
	before, after, found := strings.Cut(mantissa, ".")
	if !found {
		return before, "", int32(e)
	}
	return before, after, int32(e)
}

func FuzzParseAgainstStrconv(f *testing.F) {
	seeds := []float64{
		0, 1, -1, 0.5, 3.14159265358979, 1e300, 1e-300,
		5e-324, math.MaxFloat64, 123456789.987654321, 9007199254740993,
	}
	for _, v := range seeds {
		f.Add(v)
	}

	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Skip()
		}
		v = math.Abs(v)

		s := strconv.FormatFloat(v, 'e', -1, 64)
		integer, fraction, exp := splitDecimal(s)

		got := Parse(Binary64, seq(integer), seq(fraction), exp)

		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q): %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("Parse(%q,%q,%d) = %v (0x%016X), want %v (0x%016X)",
				integer, fraction, exp, got, math.Float64bits(got), want, math.Float64bits(want))
		}
	})
}

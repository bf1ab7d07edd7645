// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "testing"

func TestPow10SmallExact(t *testing.T) {
	want := uint64(1)
	for i, got := range pow10Small {
		if got != want {
			t.Errorf("pow10Small[%d] = %d, want %d", i, got, want)
		}
		if i < len(pow10Small)-1 {
			want *= 10
		}
	}
}

func TestPow10ExactMatchesFloat(t *testing.T) {
	want := 1.0
	for i, got := range pow10Exact {
		if got != want {
			t.Errorf("pow10Exact[%d] = %v, want %v", i, got, want)
		}
		if i < len(pow10Exact)-1 {
			want *= 10
		}
	}
}

func TestPow10AtBoundsAndNormalization(t *testing.T) {
	for _, e := range []int32{minDenormalExp10, -1, 0, 1, maxNormalExp10} {
		entry := pow10At(e)
		if entry.hi&(1<<63) == 0 {
			t.Errorf("pow10At(%d).hi = 0x%016X not normalized (bit 63 unset)", e, entry.hi)
		}
	}
}

func TestPow10AtZero(t *testing.T) {
	entry := pow10At(0)
	if entry.hi != 0x8000000000000000 || entry.lo != 0 {
		t.Errorf("pow10At(0) = {0x%016X, 0x%016X}, want {0x8000000000000000, 0}", entry.hi, entry.lo)
	}
}

// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import (
	"testing"

	"github.com/db47h/atof/bigint"
)

func TestCompareDecimalToBinary(t *testing.T) {
	// 1 * 10**0 == 1 * 2**0
	if cmp := compareDecimalToBinary(bigint.FromUint64(1), 0, 1, 0); cmp != 0 {
		t.Errorf("1e0 vs 1*2**0: cmp = %d, want 0", cmp)
	}
	// 8 * 10**0 == 1 * 2**3
	if cmp := compareDecimalToBinary(bigint.FromUint64(8), 0, 1, 3); cmp != 0 {
		t.Errorf("8e0 vs 1*2**3: cmp = %d, want 0", cmp)
	}
	// 5 * 10**-1 == 0.5 == 1 * 2**-1
	if cmp := compareDecimalToBinary(bigint.FromUint64(5), -1, 1, -1); cmp != 0 {
		t.Errorf("5e-1 vs 1*2**-1: cmp = %d, want 0", cmp)
	}
	// 3 * 10**0 vs 1 * 2**1 (3 vs 2): greater
	if cmp := compareDecimalToBinary(bigint.FromUint64(3), 0, 1, 1); cmp <= 0 {
		t.Errorf("3e0 vs 1*2**1: cmp = %d, want > 0", cmp)
	}
	// 1 * 10**0 vs 1 * 2**1 (1 vs 2): less
	if cmp := compareDecimalToBinary(bigint.FromUint64(1), 0, 1, 1); cmp >= 0 {
		t.Errorf("1e0 vs 1*2**1: cmp = %d, want < 0", cmp)
	}
}

func TestCandidateValueAndNextBits(t *testing.T) {
	mant, binExp, exact := candidateValue(Binary64, 0x3FF0000000000000) // 1.0
	if exact {
		t.Fatal("1.0 should not be reported as exact/special")
	}
	if mant != 1<<52 {
		t.Errorf("mant = 0x%X, want hidden bit set (0x%X)", mant, uint64(1)<<52)
	}
	if binExp != -52 {
		t.Errorf("binExp = %d, want -52", binExp)
	}

	up := nextBits(Binary64, 0x3FF0000000000000, +1)
	down := nextBits(Binary64, 0x3FF0000000000000, -1)
	if up <= 0x3FF0000000000000 {
		t.Errorf("next up bits 0x%016X should exceed 0x3FF0000000000000", up)
	}
	if down >= 0x3FF0000000000000 {
		t.Errorf("next down bits 0x%016X should be less than 0x3FF0000000000000", down)
	}
}

func TestCandidateValueZeroAndInf(t *testing.T) {
	if _, _, exact := candidateValue(Binary64, 0); !exact {
		t.Error("zero should be reported as exact/special")
	}
	if _, _, exact := candidateValue(Binary64, Binary64.infinityBits); !exact {
		t.Error("infinity should be reported as exact/special")
	}
}

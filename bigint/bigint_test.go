// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestFromDigits(t *testing.T) {
	cases := []struct {
		digits string
		want   uint64
	}{
		{"0", 0},
		{"7", 7},
		{"123", 123},
		{"18446744073709551615", 18446744073709551615}, // 2**64-1, the largest uint64
	}
	for _, c := range cases {
		got := FromDigits([]byte(c.digits))
		want := FromUint64(c.want)
		if got.Cmp(want) != 0 {
			t.Errorf("FromDigits(%q) != FromUint64(%d)", c.digits, c.want)
		}
	}
}

func TestFromDigitsBeyondUint64(t *testing.T) {
	// 2**64 itself, which does not fit in a uint64.
	got := FromDigits([]byte("18446744073709551616"))
	two := FromUint64(2)
	sixtyFour := FromUint64(1).Shl(64)
	if got.Cmp(sixtyFour) != 0 {
		t.Errorf("FromDigits(2**64) != Shl(1, 64)")
	}
	if got.Cmp(two) <= 0 {
		t.Errorf("FromDigits(2**64) should be far greater than 2")
	}
}

func TestMulPow10(t *testing.T) {
	got := FromUint64(1).MulPow10(20)
	want := FromDigits([]byte("100000000000000000000"))
	if got.Cmp(want) != 0 {
		t.Errorf("1 * 10**20 mismatch")
	}
}

func TestShl(t *testing.T) {
	got := FromUint64(1).Shl(64)
	want := FromDigits([]byte("18446744073709551616"))
	if got.Cmp(want) != 0 {
		t.Errorf("1 << 64 mismatch")
	}

	got = FromUint64(3).Shl(1)
	want = FromUint64(6)
	if got.Cmp(want) != 0 {
		t.Errorf("3 << 1 != 6")
	}
}

func TestCmp(t *testing.T) {
	a := FromUint64(100)
	b := FromUint64(200)
	if a.Cmp(b) >= 0 {
		t.Error("100 should be < 200")
	}
	if b.Cmp(a) <= 0 {
		t.Error("200 should be > 100")
	}
	if a.Cmp(a) != 0 {
		t.Error("100 should equal itself")
	}

	zero := FromUint64(0)
	if zero.Cmp(FromDigits(nil)) != 0 {
		t.Error("zero value should equal FromDigits(nil)")
	}
}

func TestCmpDifferentLimbCounts(t *testing.T) {
	small := FromUint64(1)
	big := FromUint64(1).Shl(200)
	if small.Cmp(big) >= 0 {
		t.Error("1 should be less than 2**200")
	}
}

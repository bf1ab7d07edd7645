// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

import "testing"

func TestAccumulate(t *testing.T) {
	cases := []struct {
		integer, fraction string
		wantSignificand   uint64
		wantTruncated     bool
	}{
		{"123", "456", 123456, false},
		{"0", "", 0, false},
		{"1", "", 1, false},
		{"", "5", 5, false},
		{"9007199254740993", "", 9007199254740993, false},
		// 2**64 worth of nines overflows; exact count doesn't matter to
		// callers, only that truncation is reported.
		{"99999999999999999999999999999999999999999999999999999999999999999", "", 0, true},
	}
	for _, c := range cases {
		sig, truncated := accumulate(NewDigitSeq([]byte(c.integer)), NewDigitSeq([]byte(c.fraction)))
		if (truncated > 0) != c.wantTruncated {
			t.Errorf("accumulate(%q,%q) truncated = %v, want %v", c.integer, c.fraction, truncated > 0, c.wantTruncated)
			continue
		}
		if !c.wantTruncated && sig != c.wantSignificand {
			t.Errorf("accumulate(%q,%q) = %d, want %d", c.integer, c.fraction, sig, c.wantSignificand)
		}
	}
}

func TestDigitSeqLenBytes(t *testing.T) {
	d := NewDigitSeq([]byte("789"))
	if d.Len() != 3 {
		t.Errorf("Len() = %d, want 3", d.Len())
	}
	if string(d.Bytes()) != "789" {
		t.Errorf("Bytes() = %q, want 789", d.Bytes())
	}
}

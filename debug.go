// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atof

// debugAtof enables the cascade's internal consistency checks: every
// fast or moderate path that claims a correctly-rounded result has that
// result re-derived via the always-correct slow path, and a mismatch
// panics instead of silently returning the wrong bits. Flip to true
// only while developing a change to one of the conversion paths; the
// re-derivation makes every call as expensive as the slow path.
const debugAtof = false

func assert(cond bool, msg string) {
	if debugAtof && !cond {
		panic("atof: assertion failed: " + msg)
	}
}

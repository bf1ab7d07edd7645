// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command atofgen regenerates the pow10Large table consumed by the
// Eisel-Lemire and extended-80 moderate paths.
//
// For every decimal exponent e in [minDenormalExp10, maxNormalExp10], it
// computes the 128-bit mantissa of 10^e, rounded to nearest with ties to
// even and normalized so bit 127 is set, using math/big for exact
// arbitrary-precision arithmetic. It also verifies, for every e in range,
// that the closed-form estimate floor(217706*e / 2^16) matches the true
// floor(log2(10^e)) derived from the same big.Int computation — the
// runtime trusts that formula instead of storing a per-entry exponent, so
// a mismatch here would be a silent correctness bug in the cascade.
//
// Tables must be regenerated, not hand-copied: this is the offline tool
// that does it.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
)

const (
	minDenormalExp10 = -342
	maxNormalExp10   = 308
)

type entry struct {
	e      int32
	hi, lo uint64
}

// mantissa128 returns the 128-bit mantissa of 10^e (MSB, i.e. bit 127, set)
// rounded to nearest with ties to even, together with the true binary
// exponent binExp such that 2**binExp <= 10**e < 2**(binExp+1).
func mantissa128(e int32) (mantissa big.Int, binExp int32) {
	num := big.NewInt(1)
	den := big.NewInt(1)
	ten := big.NewInt(10)
	if e >= 0 {
		num.Exp(ten, big.NewInt(int64(e)), nil)
	} else {
		den.Exp(ten, big.NewInt(int64(-e)), nil)
	}

	shift := 128 - (num.BitLen() - den.BitLen())

	q, r := new(big.Int), new(big.Int)
	shifted := new(big.Int)
	for {
		if shift >= 0 {
			shifted.Lsh(num, uint(shift))
			q.QuoRem(shifted, den, r)
		} else {
			shifted.Lsh(den, uint(-shift))
			q.QuoRem(num, shifted, r)
		}
		bl := q.BitLen()
		if bl == 128 {
			break
		} else if bl < 128 {
			shift++
		} else {
			shift--
		}
	}

	// round to nearest, ties to even
	twiceR := new(big.Int).Lsh(r, 1)
	var den2 *big.Int
	if shift >= 0 {
		den2 = den
	} else {
		den2 = shifted
	}
	cmp := twiceR.Cmp(den2)
	if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
		if q.BitLen() == 129 {
			q.Rsh(q, 1)
			shift--
		}
	}

	if q.BitLen() != 128 {
		log.Panicf("mantissa128(%d): rounded result has %d bits, want 128", e, q.BitLen())
	}
	binExp = int32(-shift) + 127
	return *q, binExp
}

func generate() []entry {
	entries := make([]entry, 0, maxNormalExp10-minDenormalExp10+1)
	for e := int32(minDenormalExp10); e <= maxNormalExp10; e++ {
		q, binExp := mantissa128(e)
		formula := int32((int64(217706) * int64(e)) >> 16)
		if formula != binExp {
			log.Fatalf("formula mismatch at e=%d: floor(log2(10^e))=%d, (217706*e)>>16=%d", e, binExp, formula)
		}
		mask64 := new(big.Int).SetUint64(^uint64(0))
		hi := new(big.Int).Rsh(&q, 64)
		lo := new(big.Int).And(&q, mask64)
		entries = append(entries, entry{e: e, hi: hi.Uint64(), lo: lo.Uint64()})
	}
	return entries
}

func writeTable(w *bufio.Writer, entries []entry) error {
	header := `// Copyright 2024 The db47h/atof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Code generated by go generate; DO NOT EDIT.
// Regenerate with: go generate ./...

package atof

`
	if _, err := w.WriteString(header); err != nil {
		return err
	}
	fmt.Fprintf(w, "// %d entries, e in [%d, %d]\n", len(entries), minDenormalExp10, maxNormalExp10)
	fmt.Fprintln(w, "var pow10Large = [...]pow10Entry{")
	for _, ent := range entries {
		fmt.Fprintf(w, "\t{0x%016X, 0x%016X}, // 10^%d\n", ent.hi, ent.lo, ent.e)
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func main() {
	out := flag.String("out", "pow10_table.go", "output file")
	flag.Parse()

	entries := generate()

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := writeTable(bufio.NewWriter(f), entries); err != nil {
		log.Fatal(err)
	}
}

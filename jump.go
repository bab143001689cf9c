// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

// advanceByPoly advances the state words s by the distance encoded in the
// GF(2) polynomial poly, using the standard jump construction: for every bit
// of the polynomial, from least to most significant, the current state is
// XORed into an accumulator when the bit is set, and step (one application of
// the generator transition) is invoked unconditionally. After all bits have
// been consumed the accumulator holds transition^D applied to the original
// state, for the distance D encoded by poly, and it replaces s.
//
// The step count is always exactly len(poly)*64, independent of the
// polynomial's bit pattern and of the state, which is what makes the jump
// distance a fixed constant across all seeds.
//
// Callers pass a slice aliasing the generator's fixed-size state array; s
// never exceeds four words.
func advanceByPoly(poly []uint64, s []uint64, step func()) {
	var acc [4]uint64
	for _, w := range poly {
		for b := 0; b < 64; b++ {
			if w&(1<<b) != 0 {
				for i := range s {
					acc[i] ^= s[i]
				}
			}
			step()
		}
	}
	copy(s, acc[:len(s)])
}

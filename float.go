// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

// Unit53 maps a raw 64-bit generator output to a float64 in [0, 1) by taking
// the top 53 bits as an integer mantissa and scaling by 2^-53. The low 11
// bits are discarded; they are the weakest bits of the + scrambler.
//
// The scale is the exact power-of-two constant 0x1p-53, so the conversion
// involves no rounding and is bit-identical across platforms and across
// conforming implementations in other languages. The result is never
// negative, never NaN, and never reaches 1.0: the largest representable
// input maps to (2^53-1) * 2^-53.
func Unit53(v uint64) float64 {
	return float64(v>>11) * 0x1p-53
}

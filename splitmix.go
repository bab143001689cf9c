// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

// SplitMix64 is the 64-bit SplitMix generator (Steele, Lea, Flood; ported
// from the public domain reference at https://prng.di.unimi.it/splitmix64.c).
// Its only role here is seeding: the reference authors recommend filling
// xoroshiro/xoshiro state words from a SplitMix64 stream so that a single
// 64-bit seed, including zero, yields a well-mixed non-degenerate state.
type SplitMix64 struct {
	x uint64
}

// NewSplitMix64 returns a SplitMix64 stream for the given seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{x: seed}
}

// Next returns the next 64-bit output.
func (g *SplitMix64) Next() uint64 {
	g.x += 0x9e3779b97f4a7c15
	z := g.x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

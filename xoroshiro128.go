// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

import "math/bits"

// xoroshiro128JumpPoly encodes a jump distance of 2^64 steps.
var xoroshiro128JumpPoly = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}

// Xoroshiro128 is the xoroshiro128+ generator: 128 bits of state, period
// 2^128-1. It is the smaller and slightly faster of the two generators in
// this package; xoshiro256+ has better statistical properties for the same
// cost profile and should be preferred unless state size matters.
//
// The zero value is the degenerate all-zero state, which only ever produces
// zero. Construct with NewXoroshiro128 or NewXoroshiro128FromState.
type Xoroshiro128 struct {
	s [2]uint64
}

// NewXoroshiro128 returns a generator whose state words are derived from
// seed with a SplitMix64 stream, per the reference authors' seeding
// recommendation. Distinct seeds yield unrelated streams.
func NewXoroshiro128(seed uint64) *Xoroshiro128 {
	sm := NewSplitMix64(seed)
	return &Xoroshiro128{s: [2]uint64{sm.Next(), sm.Next()}}
}

// NewXoroshiro128FromState returns a generator with exactly the given state
// words, for bit-exact interop with other xoroshiro128+ implementations. The
// caller is responsible for not passing the all-zero state.
func NewXoroshiro128FromState(state [2]uint64) *Xoroshiro128 {
	return &Xoroshiro128{s: state}
}

// Next advances the generator one step and returns the next 64-bit output.
// The low bits of the output are weaker than the high bits (a known property
// of the + scrambler); Unit53 and NextUnit use only the top 53.
func (g *Xoroshiro128) Next() uint64 {
	s0 := g.s[0]
	s1 := g.s[1]
	result := s0 + s1

	s1 ^= s0
	g.s[0] = bits.RotateLeft64(s0, 24) ^ s1 ^ (s1 << 16)
	g.s[1] = bits.RotateLeft64(s1, 37)
	return result
}

// NextUnit advances the generator one step and returns the output mapped
// into [0, 1) by Unit53.
func (g *Xoroshiro128) NextUnit() float64 {
	return Unit53(g.Next())
}

// Jump advances the generator by 2^64 steps. It is equivalent to 2^64 calls
// to Next and costs 128 of them. Successive jumps from a common seed produce
// non-overlapping streams suitable for parallel use.
func (g *Xoroshiro128) Jump() {
	advanceByPoly(xoroshiro128JumpPoly[:], g.s[:], func() { g.Next() })
}

// FillUint64 fills buf with successive Next outputs.
func (g *Xoroshiro128) FillUint64(buf []uint64) {
	for i := range buf {
		buf[i] = g.Next()
	}
}

// FillUnit fills buf with successive NextUnit outputs.
func (g *Xoroshiro128) FillUnit(buf []float64) {
	for i := range buf {
		buf[i] = Unit53(g.Next())
	}
}

// State returns a copy of the current state words.
func (g *Xoroshiro128) State() [2]uint64 {
	return g.s
}

// SetState overwrites the state words.
func (g *Xoroshiro128) SetState(state [2]uint64) {
	g.s = state
}

// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

import "math/bits"

// xoshiro256JumpPoly encodes a jump distance of 2^128 steps.
var xoshiro256JumpPoly = [4]uint64{
	0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
	0xa9582618e03fc9aa, 0x39abdc4529b1661c,
}

// Xoshiro256 is the xoshiro256+ generator: 256 bits of state, period
// 2^256-1. It is the reference authors' recommended general-purpose
// generator for floating point output.
//
// The zero value is the degenerate all-zero state, which only ever produces
// zero. Construct with NewXoshiro256 or NewXoshiro256FromState.
type Xoshiro256 struct {
	s [4]uint64
}

// NewXoshiro256 returns a generator whose state words are derived from seed
// with a SplitMix64 stream, per the reference authors' seeding
// recommendation.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	sm := NewSplitMix64(seed)
	return &Xoshiro256{s: [4]uint64{sm.Next(), sm.Next(), sm.Next(), sm.Next()}}
}

// NewXoshiro256FromState returns a generator with exactly the given state
// words, for bit-exact interop with other xoshiro256+ implementations. The
// caller is responsible for not passing the all-zero state.
func NewXoshiro256FromState(state [4]uint64) *Xoshiro256 {
	return &Xoshiro256{s: state}
}

// Next advances the generator one step and returns the next 64-bit output.
// The update order below is the reference order and is load-bearing: s[1]
// must be XORed with the already-updated s[2], and s[0] with the
// already-updated s[3].
func (g *Xoshiro256) Next() uint64 {
	result := g.s[0] + g.s[3]
	t := g.s[1] << 17

	g.s[2] ^= g.s[0]
	g.s[3] ^= g.s[1]
	g.s[1] ^= g.s[2]
	g.s[0] ^= g.s[3]
	g.s[2] ^= t
	g.s[3] = bits.RotateLeft64(g.s[3], 45)
	return result
}

// NextUnit advances the generator one step and returns the output mapped
// into [0, 1) by Unit53.
func (g *Xoshiro256) NextUnit() float64 {
	return Unit53(g.Next())
}

// Jump advances the generator by 2^128 steps. It is equivalent to 2^128
// calls to Next and costs 256 of them.
func (g *Xoshiro256) Jump() {
	advanceByPoly(xoshiro256JumpPoly[:], g.s[:], func() { g.Next() })
}

// FillUint64 fills buf with successive Next outputs.
func (g *Xoshiro256) FillUint64(buf []uint64) {
	for i := range buf {
		buf[i] = g.Next()
	}
}

// FillUnit fills buf with successive NextUnit outputs.
func (g *Xoshiro256) FillUnit(buf []float64) {
	for i := range buf {
		buf[i] = Unit53(g.Next())
	}
}

// State returns a copy of the current state words.
func (g *Xoshiro256) State() [4]uint64 {
	return g.s
}

// SetState overwrites the state words.
func (g *Xoshiro256) SetState(state [4]uint64) {
	g.s = state
}

// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

// Lane derivation: lane i is an independent deep copy of the seeded state,
// advanced by i jumps. Lane 0 is the seeded generator itself. Lanes never
// share backing storage, so each may be handed to its own goroutine without
// synchronization. The streams are guaranteed non-overlapping for fewer than
// 2^64 draws per lane (xoroshiro128+) or 2^128 (xoshiro256+).

// Xoroshiro128Lanes derives n decorrelated Xoroshiro128 generators from one
// seed. Returns nil if n <= 0.
func Xoroshiro128Lanes(seed uint64, n int) []Xoroshiro128 {
	if n <= 0 {
		return nil
	}
	return Xoroshiro128LanesFromState(NewXoroshiro128(seed).State(), n)
}

// Xoroshiro128LanesFromState derives n decorrelated generators from explicit
// state words, for interop with companion implementations that share lane
// seeds. Returns nil if n <= 0.
func Xoroshiro128LanesFromState(state [2]uint64, n int) []Xoroshiro128 {
	if n <= 0 {
		return nil
	}
	lanes := make([]Xoroshiro128, n)
	g := Xoroshiro128{s: state}
	for i := range lanes {
		lanes[i] = g
		g.Jump()
	}
	return lanes
}

// Xoshiro256Lanes derives n decorrelated Xoshiro256 generators from one
// seed. Returns nil if n <= 0.
func Xoshiro256Lanes(seed uint64, n int) []Xoshiro256 {
	if n <= 0 {
		return nil
	}
	return Xoshiro256LanesFromState(NewXoshiro256(seed).State(), n)
}

// Xoshiro256LanesFromState derives n decorrelated generators from explicit
// state words. Returns nil if n <= 0.
func Xoshiro256LanesFromState(state [4]uint64, n int) []Xoshiro256 {
	if n <= 0 {
		return nil
	}
	lanes := make([]Xoshiro256, n)
	g := Xoshiro256{s: state}
	for i := range lanes {
		lanes[i] = g
		g.Jump()
	}
	return lanes
}

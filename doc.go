// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package fastprng provides the xoroshiro128+ and xoshiro256+ pseudo-random
// number generators, including their jump operations for deriving
// statistically independent parallel streams from a single seed.
//
// Both generators are faithful ports of the public domain reference
// implementations by David Blackman and Sebastiano Vigna
// (https://prng.di.unimi.it/): for identical state words they produce
// bit-identical output sequences, jumped states, and unit-interval floats.
// That compatibility is the point of the package; any companion
// implementation of the same algorithms (in any language) seeded with the
// same words must agree on every output.
//
// A generator is a small value type owned by its caller. Next advances the
// state one step and returns 64 bits; Jump advances it by a fixed distance of
// 2^64 (xoroshiro128+) or 2^128 (xoshiro256+) steps, far enough that streams
// obtained by successive jumps never overlap in practice. Unit53 converts any
// 64-bit output into a float64 in [0, 1) using the top 53 bits.
//
// None of the operations lock: a generator must not be shared between
// goroutines without external synchronization. The intended pattern for
// parallelism is one generator per goroutine, each derived from a common seed
// via Xoroshiro128Lanes or Xoshiro256Lanes.
//
// These generators are not cryptographically secure.
package fastprng

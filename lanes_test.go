// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package fastprng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXoroshiro128Lanes(t *testing.T) {
	lanes := Xoroshiro128Lanes(42, 4)
	require.Len(t, lanes, 4)

	// Pinned first output per lane for seed 42.
	want := []uint64{
		0xe6c71559e2525f98, 0x4f2de712b4b57c7d,
		0xbc993664ea4d88dd, 0x51a479a3da260961,
	}
	for i := range lanes {
		require.Equal(t, want[i], lanes[i].Next(), "lane %d", i)
	}

	// Lane i must equal a scalar generator seeded identically and jumped i
	// times.
	for i := 0; i < 4; i++ {
		g := NewXoroshiro128(42)
		for j := 0; j < i; j++ {
			g.Jump()
		}
		g.Next()
		require.Equal(t, g.State(), lanes[i].State(), "lane %d", i)
	}

	require.Nil(t, Xoroshiro128Lanes(42, 0))
	require.Nil(t, Xoroshiro128Lanes(42, -1))
}

func TestXoshiro256Lanes(t *testing.T) {
	lanes := Xoshiro256Lanes(42, 4)
	require.Len(t, lanes, 4)

	want := []uint64{
		0x15f414253e365229, 0xa508607e851b7256,
		0x0b2d2821f7088526, 0x87e54f03e9122261,
	}
	for i := range lanes {
		require.Equal(t, want[i], lanes[i].Next(), "lane %d", i)
	}

	require.Nil(t, Xoshiro256Lanes(42, 0))
}

// TestLanesFromStateMatchReference checks the reference lane layout:
// lane 0 is the seed state itself, lane 1 is one jump ahead.
func TestLanesFromStateMatchReference(t *testing.T) {
	lanes := Xoroshiro128LanesFromState(refSeed128, 2)
	lanes[0].Jump()
	require.Equal(t, uint64(0xf0e88cb56dc545bf), lanes[0].Next())
	require.Equal(t, uint64(0xf0e88cb56dc545bf), lanes[1].Next())

	lanes256 := Xoshiro256LanesFromState(refSeed256, 2)
	lanes256[0].Jump()
	require.Equal(t, uint64(0x15c938cfb01587e7), lanes256[0].Next())
	require.Equal(t, uint64(0x15c938cfb01587e7), lanes256[1].Next())
}

// TestLanesDoNotAlias advances one lane heavily and checks its siblings are
// untouched.
func TestLanesDoNotAlias(t *testing.T) {
	lanes := Xoshiro256Lanes(99, 3)
	before1, before2 := lanes[1].State(), lanes[2].State()
	for i := 0; i < 1000; i++ {
		lanes[0].Next()
	}
	lanes[0].Jump()
	require.Equal(t, before1, lanes[1].State())
	require.Equal(t, before2, lanes[2].State())
}

// TestLanesConcurrent runs every lane in its own goroutine and checks each
// stream equals its single-threaded replay. Run under -race this also
// demonstrates that lanes share no storage.
func TestLanesConcurrent(t *testing.T) {
	const numLanes = 8
	const perLane = 10000

	lanes := Xoroshiro128Lanes(7, numLanes)
	got := make([][]uint64, numLanes)

	var wg sync.WaitGroup
	for i := range lanes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			buf := make([]uint64, perLane)
			lanes[i].FillUint64(buf)
			got[i] = buf
		}(i)
	}
	wg.Wait()

	replay := Xoroshiro128Lanes(7, numLanes)
	for i := range replay {
		for j := 0; j < perLane; j++ {
			require.Equal(t, replay[i].Next(), got[i][j], "lane %d output %d", i, j)
		}
	}
}

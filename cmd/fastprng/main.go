// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	fastprng "github.com/themattspiral/fast-prng"
)

var (
	genName  string
	seed     uint64
	stateStr string
	jumps    int
)

var rootCmd = &cobra.Command{
	Use:   "fastprng [command] (flags)",
	Short: "xoroshiro128+/xoshiro256+ stream inspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		streamCmd,
		lanesCmd,
		histCmd,
	)

	for _, cmd := range []*cobra.Command{streamCmd, lanesCmd, histCmd} {
		cmd.Flags().StringVarP(
			&genName, "gen", "g", "xoshiro256", "generator: xoroshiro128 or xoshiro256")
		cmd.Flags().Uint64VarP(
			&seed, "seed", "s", 0, "64-bit seed, expanded to state words via splitmix64")
		cmd.Flags().StringVar(
			&stateStr, "state", "", "comma-separated hex state words (overrides --seed)")
		cmd.Flags().IntVarP(
			&jumps, "jumps", "j", 0, "number of jumps to apply before generating")
	}

	streamCmd.Flags().IntVarP(
		&streamCount, "count", "n", 16, "number of outputs to print")
	streamCmd.Flags().StringVarP(
		&streamFormat, "format", "f", "hex", "output format: u64, hex, or float")

	lanesCmd.Flags().IntVarP(
		&laneCount, "lanes", "l", 4, "number of lanes to derive")
	lanesCmd.Flags().IntVarP(
		&lanePreview, "count", "n", 4, "outputs to show per lane")

	histCmd.Flags().IntVarP(
		&histSamples, "samples", "n", 1000000, "number of unit-interval samples")
	histCmd.Flags().IntVar(
		&histBins, "bins", 40, "number of histogram bins")
	histCmd.Flags().IntVar(
		&histHeight, "height", 10, "graph height in rows")

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// generator is the width-independent surface shared by both algorithms.
type generator interface {
	Next() uint64
	Jump()
}

// parseStateWords parses a comma-separated list of hex state words.
func parseStateWords(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	words := make([]uint64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(p), "0x"), 16, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid state word %q", p)
		}
		words[i] = v
	}
	return words, nil
}

// newGenerator builds the generator selected by the shared flags, seeded
// either from explicit state words or from --seed, with --jumps applied.
func newGenerator() (generator, error) {
	var words []uint64
	if stateStr != "" {
		var err error
		if words, err = parseStateWords(stateStr); err != nil {
			return nil, err
		}
	}

	var g generator
	switch genName {
	case "xoroshiro128":
		if words == nil {
			g = fastprng.NewXoroshiro128(seed)
		} else if len(words) == 2 {
			g = fastprng.NewXoroshiro128FromState([2]uint64{words[0], words[1]})
		} else {
			return nil, errors.Errorf("xoroshiro128 state needs 2 words, got %d", len(words))
		}
	case "xoshiro256":
		if words == nil {
			g = fastprng.NewXoshiro256(seed)
		} else if len(words) == 4 {
			g = fastprng.NewXoshiro256FromState([4]uint64{words[0], words[1], words[2], words[3]})
		} else {
			return nil, errors.Errorf("xoshiro256 state needs 4 words, got %d", len(words))
		}
	default:
		return nil, errors.Errorf("unknown generator %q", genName)
	}

	for i := 0; i < jumps; i++ {
		g.Jump()
	}
	return g, nil
}

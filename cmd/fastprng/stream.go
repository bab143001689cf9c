// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	fastprng "github.com/themattspiral/fast-prng"
)

var (
	streamCount  int
	streamFormat string
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "print raw or unit-interval outputs of one generator",
	Long: `
Prints successive outputs of a single generator. The generator is seeded
from --seed (expanded with splitmix64) or from explicit --state words, and
advanced by --jumps jumps before the first output.
`,
	Args: cobra.ExactArgs(0),
	RunE: runStream,
}

func runStream(cmd *cobra.Command, args []string) error {
	g, err := newGenerator()
	if err != nil {
		return err
	}

	var format func(uint64) string
	switch streamFormat {
	case "u64":
		format = func(v uint64) string { return fmt.Sprintf("%d", v) }
	case "hex":
		format = func(v uint64) string { return fmt.Sprintf("%016x", v) }
	case "float":
		format = func(v uint64) string { return fmt.Sprintf("%.17g", fastprng.Unit53(v)) }
	default:
		return errors.Errorf("unknown format %q", streamFormat)
	}

	for i := 0; i < streamCount; i++ {
		fmt.Println(format(g.Next()))
	}
	return nil
}

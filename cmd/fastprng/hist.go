// Copyright 2026 The fast-prng Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

import (
	"fmt"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	fastprng "github.com/themattspiral/fast-prng"
)

var (
	histSamples int
	histBins    int
	histHeight  int
)

// Unit-interval samples are recorded into the histogram at parts-per-million
// resolution.
const histScale = 1e6

var histCmd = &cobra.Command{
	Use:   "hist",
	Short: "sample unit-interval outputs and plot their distribution",
	Long: `
Draws --samples values from the selected generator through the unit-interval
conversion, plots their distribution as an ASCII histogram, and prints
quantiles. A healthy generator produces a flat histogram and quantiles close
to their nominal positions.
`,
	Args: cobra.ExactArgs(0),
	RunE: runHist,
}

func runHist(cmd *cobra.Command, args []string) error {
	if histSamples <= 0 || histBins <= 0 {
		return errors.Errorf("--samples and --bins must be positive")
	}
	g, err := newGenerator()
	if err != nil {
		return err
	}

	counts := make([]float64, histBins)
	h := hdrhistogram.New(0, histScale, 3)
	for i := 0; i < histSamples; i++ {
		f := fastprng.Unit53(g.Next())
		// f < 1, but f*bins can still round up to exactly bins.
		bin := int(f * float64(histBins))
		if bin >= histBins {
			bin = histBins - 1
		}
		counts[bin]++
		if err := h.RecordValue(int64(f * histScale)); err != nil {
			return err
		}
	}

	fmt.Println(asciigraph.Plot(counts, asciigraph.Height(histHeight)))
	fmt.Println()
	fmt.Printf("samples: %d\n", histSamples)
	fmt.Printf("mean:    %.6f\n", h.Mean()/histScale)
	for _, q := range []float64{50, 90, 99, 99.9} {
		fmt.Printf("p%-5v  %.6f\n", q, float64(h.ValueAtQuantile(q))/histScale)
	}
	return nil
}

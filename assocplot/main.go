// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command assocplot renders association study results as SVG forest
// or Manhattan plots.
//
// A forest plot compares odds ratios and confidence intervals across
// SNPs and adjustment models. Its input is a CSV table with columns
// snp, model, odds_ratio, lower_ci, upper_ci, and pval.
//
// A Manhattan plot shows a genome-wide scan. Its input is a CSV
// table with columns SNP, CHR, BP, and P.
//
// In both cases the significance threshold passed with -alpha should
// already be corrected for multiple testing.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-assocplot/plot"
)

func main() {
	log.SetPrefix("assocplot: ")
	log.SetFlags(0)

	var (
		flagType   = flag.String("type", "forest", "plot `kind`: forest or manhattan")
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagAlpha  = flag.Float64("alpha", 0.05, "corrected significance `threshold`")
		flagModels = flag.String("models", "", "comma-separated adjustment `models` in display order (default: order of appearance)")
		flagTitle  = flag.String("title", "", "plot `title`")
		flagFlip   = flag.Bool("flip", true, "flip forest plot coordinates")
		flagDodge  = flag.Float64("dodge", 0.6, "dodge `width` between models in a forest plot")
		flagWidth  = flag.Int("w", 800, "output `width` in pixels")
		flagHeight = flag.Int("h", 500, "output `height` in pixels")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var in io.Reader = os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	tab, err := readTable(in)
	if err != nil {
		log.Fatal(err)
	}

	var models []string
	if *flagModels != "" {
		models = strings.Split(*flagModels, ",")
	}

	var p plot.Plot
	switch *flagType {
	case "forest":
		p, err = forestPlot(tab, forestConfig{
			alpha:      *flagAlpha,
			models:     models,
			title:      *flagTitle,
			flip:       *flagFlip,
			dodgeWidth: *flagDodge,
		})
	case "manhattan":
		p, err = manhattanPlot(tab, manhattanConfig{
			alpha: *flagAlpha,
			title: *flagTitle,
		})
	default:
		log.Fatalf("unknown plot type %q", *flagType)
	}
	if err != nil {
		log.Fatal(err)
	}
	d, err := p.Render()
	if err != nil {
		log.Fatal(err)
	}

	var out io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	writeSVG(out, d, *flagWidth, *flagHeight)
}

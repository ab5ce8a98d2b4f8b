// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"reflect"
	"sort"

	"github.com/aclements/go-assocplot/assocstat"
	"github.com/aclements/go-assocplot/plot"
	"github.com/aclements/go-gg/table"
)

// manhattanPalette alternates between adjacent chromosomes.
var manhattanPalette = []string{"#4575b4", "#91bfdb"}

type manhattanConfig struct {
	alpha float64
	title string
}

// manhattanPlot composes a genome-wide association scan: one point
// per SNP at its genomic index, colored by chromosome parity, with a
// dashed line at the significance threshold and labels on the hits
// that clear it. Chromosome ticks sit at the mean index of each
// chromosome, staggered to stay readable.
func manhattanPlot(tab *table.Table, cfg manhattanConfig) (plot.Plot, error) {
	if err := assocstat.CheckSchema(tab, "SNP", "CHR", "BP", "P"); err != nil {
		return plot.Plot{}, err
	}
	tab, err := assocstat.GenomicIndex(tab, "CHR", "BP")
	if err != nil {
		return plot.Plot{}, err
	}
	tab, err = assocstat.NegLogP(tab, "P")
	if err != nil {
		return plot.Plot{}, err
	}
	tab = assocstat.Significance(tab, "P", cfg.alpha)
	ticks, err := assocstat.GroupTicks(tab, "CHR", "index")
	if err != nil {
		return plot.Plot{}, err
	}

	chroms := distinctChroms(tab, "CHR")
	colorRange := make(map[interface{}]interface{}, len(chroms))
	for i, c := range chroms {
		colorRange[c] = manhattanPalette[i%len(manhattanPalette)]
	}

	p := plot.NewPlot(tab).
		// Neither scale carries a guide: 22 chromosome rows are
		// noise, and the axis already names them.
		SetScale(plot.Scale{Channel: plot.ChanColor, Domain: chroms, Breaks: []interface{}{}, Range: colorRange}).
		SetScale(plot.Scale{
			Channel: plot.ChanAlpha,
			Domain:  []interface{}{false, true},
			Breaks:  []interface{}{},
			Range:   map[interface{}]interface{}{false: 0.6, true: 1.0},
		}).
		Add(plot.Points{
			X:     plot.Col("index"),
			Y:     plot.Col("neglogp"),
			Color: plot.Col("CHR"),
			Alpha: plot.Col("significant"),
			Size:  2,
		}).
		Add(plot.RefLine{Axis: plot.AxisY, Value: -math.Log10(cfg.alpha), Stroke: "#d73027", Dash: true}).
		SetXTicks(ticks).
		AxisLabel(plot.AxisX, "Chromosome").
		AxisLabel(plot.AxisY, "-log10(p)")

	// Annotate genome-wide significant hits from their own subset
	// table, drawn atop the main series.
	if sig := sigTable(tab); sig != nil && sig.Len() > 0 {
		p = p.Add(plot.Labels{
			Data:   sig,
			X:      plot.Col("index"),
			Y:      plot.Col("neglogp"),
			Text:   plot.Col("SNP"),
			Color:  plot.Lit("#333333"),
			NudgeY: 0.25,
			Size:   10,
		})
	}
	if cfg.title != "" {
		p = p.Title(cfg.title)
	}
	return p, nil
}

// sigTable returns the subset of tab flagged significant, or nil.
func sigTable(tab *table.Table) *table.Table {
	g := table.FilterEq(tab, "significant", true)
	gids := g.Tables()
	if len(gids) == 0 {
		return nil
	}
	return g.Table(gids[0])
}

// distinctChroms returns the distinct values of the chromosome
// column in genome order.
func distinctChroms(tab *table.Table, col string) []interface{} {
	rv := reflect.ValueOf(tab.MustColumn(col))
	seen := make(map[interface{}]bool)
	var out []interface{}
	for i := 0; i < rv.Len(); i++ {
		v := rv.Index(i).Interface()
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, _ := assocstat.ChromOrd(out[i])
		oj, _ := assocstat.ChromOrd(out[j])
		return oi < oj
	})
	return out
}

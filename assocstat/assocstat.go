// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assocstat derives the plotting-ready columns association
// plots are built from: significance flags, composite group codes,
// the linearized genomic index, and per-chromosome axis ticks.
//
// Every transform takes a table and returns a new table with one
// column added; sources are never modified. Deriving a column that
// already exists replaces it, so re-running a transform on its own
// output is a no-op.
package assocstat

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-assocplot/plot"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// CheckSchema reports an error naming the first of cols that tab
// does not have. It runs before any transform so that missing input
// fields surface as configuration errors rather than panics deep in
// a pipeline.
func CheckSchema(tab *table.Table, cols ...string) error {
	for _, col := range cols {
		if !hasColumn(tab, col) {
			return fmt.Errorf("input table has no %q column (columns: %s)", col, strings.Join(tab.Columns(), ", "))
		}
	}
	return nil
}

// Significance adds a bool column "significant" that is true for
// records whose pcol value is strictly below alpha. The caller
// supplies alpha already corrected for multiple testing (for
// example, 0.05 over the number of independent tests). The pcol
// column must exist and be numeric.
func Significance(tab *table.Table, pcol string, alpha float64) *table.Table {
	// A header-only input leaves its columns untyped; derive the
	// empty column without converting them.
	if tab.Len() == 0 {
		return table.NewBuilder(tab).Add("significant", []bool{}).Done()
	}
	var ps []float64
	slice.Convert(&ps, tab.MustColumn(pcol))
	sig := make([]bool, len(ps))
	for i, p := range ps {
		sig[i] = p < alpha
	}
	return table.NewBuilder(tab).Add("significant", sig).Done()
}

// CompositeGroup adds an int column "group" that combines
// significance and model identity into one ordinal code, so a single
// column can drive two channels (fill and alpha) consistently. Code
// 0 means not significant regardless of model; a significant record
// in order[i] gets code i+1. The codes are totally ordered to match
// guide breaks declared in the same model order. A model missing
// from order is a configuration error.
func CompositeGroup(tab *table.Table, modelCol, sigCol string, order []string) (*table.Table, error) {
	if tab.Len() == 0 {
		return table.NewBuilder(tab).Add("group", []int{}).Done(), nil
	}
	rank := make(map[string]int, len(order))
	for i, m := range order {
		rank[m] = i + 1
	}
	sig, ok := tab.MustColumn(sigCol).([]bool)
	if !ok {
		return nil, fmt.Errorf("column %q is not a significance column", sigCol)
	}
	models := colValues(tab, modelCol)
	codes := make([]int, len(models))
	for i, mv := range models {
		m := fmt.Sprint(mv)
		r, ok := rank[m]
		if !ok {
			return nil, fmt.Errorf("model %q is not in the declared model order %v", m, order)
		}
		if sig[i] {
			codes[i] = r
		}
	}
	return table.NewBuilder(tab).Add("group", codes).Done(), nil
}

// GenomicIndex adds a dense int column "index" numbering the records
// 1..N in (chromosome, position) order. The sort is stable, so
// records tied on both keys keep their input order. Chromosomes may
// be numeric or the usual X/Y/XY/MT names.
func GenomicIndex(tab *table.Table, chrCol, posCol string) (*table.Table, error) {
	if tab.Len() == 0 {
		return table.NewBuilder(tab).Add("index", []int{}).Done(), nil
	}
	chrs := colValues(tab, chrCol)
	ords := make([]int, len(chrs))
	for i, c := range chrs {
		ord, ok := ChromOrd(c)
		if !ok {
			return nil, fmt.Errorf("unrecognized chromosome %v", c)
		}
		ords[i] = ord
	}
	g := table.SortBy(table.NewBuilder(tab).Add("chrom ord", ords).Done(), "chrom ord", posCol)
	g = table.Remove(g, "chrom ord")
	sorted := g.Table(g.Tables()[0])

	idx := make([]int, sorted.Len())
	for i := range idx {
		idx[i] = i + 1
	}
	return table.NewBuilder(sorted).Add("index", idx).Done(), nil
}

// NegLogP adds a float64 column "neglogp" holding -log10 of pcol,
// the conventional y axis of a genome-wide association scan.
func NegLogP(tab *table.Table, pcol string) (*table.Table, error) {
	if !hasColumn(tab, pcol) {
		return nil, fmt.Errorf("input table has no %q column", pcol)
	}
	if tab.Len() == 0 {
		return table.NewBuilder(tab).Add("neglogp", []float64{}).Done(), nil
	}
	var ps []float64
	slice.Convert(&ps, tab.MustColumn(pcol))
	nl := make([]float64, len(ps))
	for i, p := range ps {
		nl[i] = -math.Log10(p)
	}
	return table.NewBuilder(tab).Add("neglogp", nl).Done(), nil
}

// GroupTicks computes one axis tick per group of groupCol: the tick
// position is the mean of indexCol within the group and the label is
// the group value. Ticks are returned in sorted domain order
// (chromosome order for chromosome groups), and every other tick has
// its Offset flag set so a renderer can stagger adjacent labels.
// The staggering depends only on the sorted order, never on pixel
// measurements.
func GroupTicks(tab *table.Table, groupCol, indexCol string) ([]plot.Tick, error) {
	if err := CheckSchema(tab, groupCol, indexCol); err != nil {
		return nil, err
	}
	if tab.Len() == 0 {
		return nil, nil
	}
	g := ggstat.Agg(groupCol)(ggstat.AggMean(indexCol)).F(tab)
	agg := g.Table(g.Tables()[0])
	keys := colValues(agg, groupCol)
	var means []float64
	slice.Convert(&means, agg.MustColumn("mean "+indexCol))

	ticks := make([]plot.Tick, len(keys))
	for i, k := range keys {
		ticks[i] = plot.Tick{Pos: means[i], Label: fmt.Sprint(k)}
	}
	sort.SliceStable(ticks, func(i, j int) bool {
		oi, iok := ChromOrd(ticks[i].Label)
		oj, jok := ChromOrd(ticks[j].Label)
		if iok && jok {
			return oi < oj
		}
		return ticks[i].Label < ticks[j].Label
	})
	for i := range ticks {
		ticks[i].Offset = i%2 == 1
	}
	return ticks, nil
}

// ChromOrd maps a chromosome identifier to its ordinal: numeric
// chromosomes by value, then X=23, Y=24, XY=25, MT=26 (the PLINK
// coding).
func ChromOrd(chr interface{}) (int, bool) {
	switch c := chr.(type) {
	case int:
		return c, true
	case string:
		switch strings.ToUpper(c) {
		case "X":
			return 23, true
		case "Y":
			return 24, true
		case "XY":
			return 25, true
		case "MT", "M":
			return 26, true
		}
		n, err := strconv.Atoi(c)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func hasColumn(tab *table.Table, name string) bool {
	for _, col := range tab.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

// colValues returns a column's values as a []interface{}, whatever
// the column's element type.
func colValues(tab *table.Table, col string) []interface{} {
	rv := reflect.ValueOf(tab.MustColumn(col))
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-assocplot/assocstat"
	"github.com/aclements/go-assocplot/plot"
	"github.com/aclements/go-gg/table"
)

// modelPalette and modelGlyphs style the adjustment models in
// declaration order, cycling if there are more models than entries.
var (
	modelPalette = []string{"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e"}
	modelGlyphs  = []string{"circle", "square", "triangle", "diamond", "cross"}
)

type forestConfig struct {
	alpha      float64
	models     []string
	title      string
	flip       bool
	dodgeWidth float64
}

// forestPlot composes a forest plot: one point-range per SNP and
// model, dodged so the models sit side by side, with a dashed
// reference line at odds ratio 1. Color and shape both encode the
// model and merge into a single guide; fill and alpha encode the
// composite significance group, dimming non-significant estimates.
func forestPlot(tab *table.Table, cfg forestConfig) (plot.Plot, error) {
	err := assocstat.CheckSchema(tab, "snp", "model", "odds_ratio", "lower_ci", "upper_ci", "pval")
	if err != nil {
		return plot.Plot{}, err
	}
	tab = assocstat.Significance(tab, "pval", cfg.alpha)
	models := cfg.models
	if models == nil {
		models = distinctStrings(tab, "model")
	}
	tab, err = assocstat.CompositeGroup(tab, "model", "significant", models)
	if err != nil {
		return plot.Plot{}, err
	}

	snps := distinctStrings(tab, "snp")
	snpDomain := make([]interface{}, len(snps))
	for i, s := range snps {
		snpDomain[i] = s
	}

	modelDomain := make([]interface{}, len(models))
	colorRange := make(map[interface{}]interface{}, len(models))
	shapeRange := make(map[interface{}]interface{}, len(models))
	for i, m := range models {
		modelDomain[i] = m
		colorRange[m] = modelPalette[i%len(modelPalette)]
		shapeRange[m] = modelGlyphs[i%len(modelGlyphs)]
	}

	// Composite group codes: 0 is "not significant" regardless of
	// model; code i+1 is "significant under models[i]". The full
	// domain styles the geometry, but the guide collapses to two
	// rows.
	codeDomain := []interface{}{0}
	fillRange := map[interface{}]interface{}{0: "#bbbbbb"}
	alphaRange := map[interface{}]interface{}{0: 0.35}
	for i := range models {
		codeDomain = append(codeDomain, i+1)
		fillRange[i+1] = modelPalette[i%len(modelPalette)]
		alphaRange[i+1] = 1.0
	}
	fillBreaks := []interface{}{0, 1}
	fillLabels := []string{"Not significant", "Significant"}
	fillOverride := []interface{}{"#bbbbbb", "#444444"}
	if len(models) == 0 {
		// An empty input has no model codes; keep the guide to
		// the one break the domain has.
		fillBreaks, fillLabels, fillOverride = fillBreaks[:1], fillLabels[:1], fillOverride[:1]
	}

	p := plot.NewPlot(tab).
		SetScale(plot.Scale{Channel: plot.ChanX, Name: "SNP", Domain: snpDomain}).
		SetScale(plot.Scale{Channel: plot.ChanColor, Name: "Adjustment model", Domain: modelDomain, Range: colorRange}).
		SetScale(plot.Scale{Channel: plot.ChanShape, Name: "Adjustment model", Domain: modelDomain, Range: shapeRange}).
		SetScale(plot.Scale{
			Channel: plot.ChanFill,
			Name:    "Association",
			Domain:  codeDomain,
			Breaks:  fillBreaks,
			Labels:  fillLabels,
			Range:   fillRange,
			// The "significant" swatch would otherwise show
			// the first model's color; force a neutral fill.
			Override: map[plot.Channel][]interface{}{
				plot.ChanFill: fillOverride,
			},
		}).
		SetScale(plot.Scale{Channel: plot.ChanAlpha, Domain: codeDomain, Breaks: []interface{}{}, Range: alphaRange}).
		Add(plot.RefLine{Axis: plot.AxisY, Value: 1, Stroke: "#999999", Dash: true}).
		Add(plot.PointRanges{
			X:          plot.Col("snp"),
			Y:          plot.Col("odds_ratio"),
			Lower:      plot.Col("lower_ci"),
			Upper:      plot.Col("upper_ci"),
			Color:      plot.Col("model"),
			Shape:      plot.Col("model"),
			Fill:       plot.Col("group"),
			Alpha:      plot.Col("group"),
			Dodge:      plot.ChanColor,
			DodgeWidth: cfg.dodgeWidth,
			Size:       3,
		}).
		AxisLabel(plot.AxisX, "SNP").
		AxisLabel(plot.AxisY, "Odds ratio (95% CI)")
	if cfg.title != "" {
		p = p.Title(cfg.title)
	}
	if cfg.flip {
		p = p.SetCoord(plot.Flipped)
	}
	return p, nil
}

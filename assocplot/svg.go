// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-assocplot/plot"
	"github.com/ajstarks/svgo"
)

const (
	marginL = 70
	marginR = 160
	marginT = 40
	marginB = 60
)

// writeSVG renders a Drawing to SVG. The renderer is deliberately
// small: it draws the four primitive kinds, axis scaffolding, and
// legend guides. Flipped coordinates swap the projection, never the
// resolved data.
func writeSVG(w io.Writer, d *plot.Drawing, width, height int) {
	plotW := width - marginL - marginR
	plotH := height - marginT - marginB

	xr := axisRange(d, plot.AxisX)
	yr := axisRange(d, plot.AxisY)
	// The horizontal screen axis carries the X data axis under
	// Identity and the Y data axis under Flipped.
	hr, vr := xr, yr
	if d.Coord == plot.Flipped {
		hr, vr = yr, xr
	}
	sx := func(v float64) int {
		return marginL + int(float64(plotW)*(v-hr.min)/(hr.max-hr.min)+0.5)
	}
	sy := func(v float64) int {
		return marginT + plotH - int(float64(plotH)*(v-vr.min)/(vr.max-vr.min)+0.5)
	}
	proj := func(x, y float64) (int, int) {
		if d.Coord == plot.Flipped {
			return sx(y), sy(x)
		}
		return sx(x), sy(y)
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	if d.Title != "" {
		canvas.Text(marginL+plotW/2, marginT/2, d.Title, "text-anchor:middle;font-size:14px;font-weight:bold")
	}

	drawAxes(canvas, d, sx, sy, plotW, plotH)

	for _, pr := range d.Prims {
		switch pr.Kind {
		case plot.PrimPointRange:
			x1, y1 := proj(pr.X, pr.Min)
			x2, y2 := proj(pr.X, pr.Max)
			canvas.Line(x1, y1, x2, y2, lineStyle(pr.Style))
			cx, cy := proj(pr.X, pr.Y)
			glyph(canvas, cx, cy, pr.Style)
		case plot.PrimPoint:
			cx, cy := proj(pr.X, pr.Y)
			glyph(canvas, cx, cy, pr.Style)
		case plot.PrimRefLine:
			if pr.Orient == plot.Horizontal {
				y := sy(pr.Value)
				canvas.Line(marginL, y, marginL+plotW, y, lineStyle(pr.Style))
			} else {
				x := sx(pr.Value)
				canvas.Line(x, marginT, x, marginT+plotH, lineStyle(pr.Style))
			}
		case plot.PrimText:
			cx, cy := proj(pr.X, pr.Y)
			canvas.Text(cx, cy, pr.Text, textStyle(pr.Style))
		}
	}

	drawGuides(canvas, d.Guides, width-marginR+15, marginT)
	canvas.End()
}

// drawAxes draws the frame, ticks, and axis labels. The ticks of the
// X data axis follow that axis to whichever screen edge the
// coordinate system sends it.
func drawAxes(canvas *svg.SVG, d *plot.Drawing, sx, sy func(float64) int, plotW, plotH int) {
	const axisStyle = "stroke:#000000;stroke-width:1"
	canvas.Line(marginL, marginT+plotH, marginL+plotW, marginT+plotH, axisStyle)
	canvas.Line(marginL, marginT, marginL, marginT+plotH, axisStyle)

	hTicks, vTicks := d.XTicks, d.YTicks
	hLabel, vLabel := d.XLabel, d.YLabel
	if d.Coord == plot.Flipped {
		hTicks, vTicks = d.YTicks, d.XTicks
		hLabel, vLabel = d.YLabel, d.XLabel
	}
	for _, t := range hTicks {
		x := sx(t.Pos)
		canvas.Line(x, marginT+plotH, x, marginT+plotH+4, axisStyle)
		dy := 16
		if t.Offset {
			dy = 28
		}
		canvas.Text(x, marginT+plotH+dy, t.Label, "text-anchor:middle;font-size:11px")
	}
	for _, t := range vTicks {
		y := sy(t.Pos)
		canvas.Line(marginL-4, y, marginL, y, axisStyle)
		dx := -8
		if t.Offset {
			dx = -24
		}
		canvas.Text(marginL+dx, y+4, t.Label, "text-anchor:end;font-size:11px")
	}
	if hLabel != "" {
		canvas.Text(marginL+plotW/2, marginT+plotH+45, hLabel, "text-anchor:middle;font-size:12px")
	}
	if vLabel != "" {
		canvas.Gtransform(fmt.Sprintf("rotate(-90 %d %d)", 18, marginT+plotH/2))
		canvas.Text(18, marginT+plotH/2, vLabel, "text-anchor:middle;font-size:12px")
		canvas.Gend()
	}
}

// drawGuides draws the legend blocks down the right margin.
func drawGuides(canvas *svg.SVG, guides []plot.Guide, x, y int) {
	for _, g := range guides {
		if g.Title != "" {
			canvas.Text(x, y, g.Title, "font-size:12px;font-weight:bold")
			y += 18
		}
		for _, row := range g.Rows {
			glyph(canvas, x+6, y-4, row.Style)
			canvas.Text(x+18, y, row.Label, "font-size:11px")
			y += 16
		}
		y += 10
	}
}

// glyph draws one point mark. An empty shape means circle.
func glyph(canvas *svg.SVG, x, y int, st plot.Style) {
	r := int(st.Size)
	if r <= 0 {
		r = 3
	}
	s := markStyle(st)
	switch st.Shape {
	case "", "circle":
		canvas.Circle(x, y, r, s)
	case "square":
		canvas.Rect(x-r, y-r, 2*r, 2*r, s)
	case "triangle":
		canvas.Polygon([]int{x, x - r, x + r}, []int{y - r, y + r, y + r}, s)
	case "diamond":
		canvas.Polygon([]int{x, x - r, x, x + r}, []int{y - r, y, y + r, y}, s)
	case "cross":
		canvas.Line(x-r, y-r, x+r, y+r, lineStyle(st))
		canvas.Line(x-r, y+r, x+r, y-r, lineStyle(st))
	default:
		canvas.Circle(x, y, r, s)
	}
}

func markStyle(st plot.Style) string {
	stroke, fill := st.Stroke, st.Fill
	if stroke == "" {
		stroke = "#000000"
	}
	if fill == "" {
		fill = stroke
	}
	return fmt.Sprintf("stroke:%s;fill:%s;opacity:%g", stroke, fill, st.Alpha)
}

func lineStyle(st plot.Style) string {
	stroke := st.Stroke
	if stroke == "" {
		stroke = "#000000"
	}
	wd := st.Size
	if wd <= 0 {
		wd = 1.5
	} else {
		wd = math.Min(wd, 3)
	}
	s := fmt.Sprintf("stroke:%s;stroke-width:%g;fill:none;opacity:%g", stroke, wd, st.Alpha)
	if st.Dash {
		s += ";stroke-dasharray:6,4"
	}
	return s
}

func textStyle(st plot.Style) string {
	fill := st.Stroke
	if fill == "" {
		fill = "#000000"
	}
	size := st.Size
	if size <= 0 {
		size = 11
	}
	return fmt.Sprintf("fill:%s;font-size:%gpx;text-anchor:middle;opacity:%g", fill, size, st.Alpha)
}

type rng struct {
	min, max float64
}

// axisRange computes the padded data extent of one semantic axis
// from the primitives and ticks.
func axisRange(d *plot.Drawing, a plot.Axis) rng {
	min, max := math.NaN(), math.NaN()
	include := func(v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	for _, pr := range d.Prims {
		switch pr.Kind {
		case plot.PrimRefLine:
			onY := (pr.Orient == plot.Horizontal) == (d.Coord == plot.Identity)
			if onY == (a == plot.AxisY) {
				include(pr.Value)
			}
		default:
			if a == plot.AxisX {
				include(pr.X)
			} else {
				include(pr.Y)
				if pr.Kind == plot.PrimPointRange {
					include(pr.Min)
					include(pr.Max)
				}
			}
		}
	}
	ticks := d.XTicks
	if a == plot.AxisY {
		ticks = d.YTicks
	}
	for _, t := range ticks {
		include(t.Pos)
	}
	if math.IsNaN(min) {
		min, max = 0, 1
	}
	if min == max {
		min, max = min-1, max+1
	}
	pad := (max - min) * 0.05
	return rng{min - pad, max + pad}
}

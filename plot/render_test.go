// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

// estPlot is a two-group point-range plot over a discrete X scale,
// the shape most association plots reduce to.
func estPlot() Plot {
	tab := new(table.Builder).
		Add("snp", []string{"rs1", "rs1", "rs2", "rs2"}).
		Add("model", []string{"a", "b", "a", "b"}).
		Add("est", []float64{1.2, 1.4, 0.8, 0.9}).
		Add("lo", []float64{1.0, 1.1, 0.6, 0.7}).
		Add("hi", []float64{1.5, 1.8, 1.0, 1.2}).
		Done()
	return NewPlot(tab).
		SetScale(Scale{Channel: ChanX, Name: "SNP", Domain: []interface{}{"rs1", "rs2"}}).
		SetScale(Scale{
			Channel: ChanColor,
			Name:    "Model",
			Domain:  []interface{}{"a", "b"},
			Range:   map[interface{}]interface{}{"a": "#111111", "b": "#222222"},
		}).
		Add(RefLine{Axis: AxisY, Value: 1, Dash: true}).
		Add(PointRanges{
			X: Col("snp"), Y: Col("est"), Lower: Col("lo"), Upper: Col("hi"),
			Color: Col("model"),
			Dodge: ChanColor, DodgeWidth: 0.5,
		})
}

func TestRender(t *testing.T) {
	d, err := estPlot().Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Prims) != 5 {
		t.Fatalf("want 5 primitives, got %d", len(d.Prims))
	}

	// The reference line renders first and horizontally.
	rl := d.Prims[0]
	if rl.Kind != PrimRefLine || rl.Orient != Horizontal || rl.Value != 1 {
		t.Errorf("refline: got %+v", rl)
	}

	// Discrete X positions are 1 + domain index, dodged by the
	// color scale's breaks order.
	var xs []float64
	for _, pr := range d.Prims[1:] {
		if pr.Kind != PrimPointRange {
			t.Fatalf("want point range, got %v", pr.Kind)
		}
		xs = append(xs, pr.X)
	}
	want := []float64{0.75, 1.25, 1.75, 2.25}
	if !reflect.DeepEqual(xs, want) {
		t.Errorf("x positions: want %v, got %v", want, xs)
	}

	// Range bars carry the interval, not just the point.
	if pr := d.Prims[1]; pr.Min != 1.0 || pr.Max != 1.5 || pr.Y != 1.2 {
		t.Errorf("interval: got %+v", pr)
	}

	// X ticks come from the scale's breaks; Y ticks are linear
	// over the data and the reference line.
	if len(d.XTicks) != 2 || d.XTicks[0].Label != "rs1" || d.XTicks[0].Pos != 1 {
		t.Errorf("x ticks: got %v", d.XTicks)
	}
	if len(d.YTicks) == 0 {
		t.Error("no y ticks")
	}

	// Axis labels were not set explicitly, so they come from the
	// bound columns.
	if d.XLabel != "snp" || d.YLabel != "est" {
		t.Errorf("labels: got %q, %q", d.XLabel, d.YLabel)
	}
}

func TestRenderFlip(t *testing.T) {
	p := estPlot()
	id, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	fl, err := p.SetCoord(Flipped).Render()
	if err != nil {
		t.Fatal(err)
	}
	if id.Coord != Identity || fl.Coord != Flipped {
		t.Fatalf("coords: got %v, %v", id.Coord, fl.Coord)
	}

	// Flipping changes the rendered orientation of the reference
	// line but no resolved data position.
	if id.Prims[0].Orient != Horizontal || fl.Prims[0].Orient != Vertical {
		t.Errorf("refline orient: got %v, %v", id.Prims[0].Orient, fl.Prims[0].Orient)
	}
	if !reflect.DeepEqual(id.Prims[1:], fl.Prims[1:]) {
		t.Errorf("point primitives differ under flip:\n%v\n%v", id.Prims[1:], fl.Prims[1:])
	}
	if !reflect.DeepEqual(id.XTicks, fl.XTicks) || !reflect.DeepEqual(id.YTicks, fl.YTicks) {
		t.Error("ticks differ under flip")
	}
}

func TestRenderPure(t *testing.T) {
	p := estPlot()
	d1, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	d2, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d1, d2) {
		t.Error("rendering the same plot twice differs")
	}
}

func TestRenderEmptyTable(t *testing.T) {
	tab := new(table.Table)
	d, err := NewPlot(tab).
		SetScale(Scale{Channel: ChanX, Domain: []interface{}{"rs1", "rs2"}}).
		SetScale(Scale{
			Channel: ChanColor,
			Name:    "Model",
			Domain:  []interface{}{"a"},
			Range:   map[interface{}]interface{}{"a": "#111111"},
		}).
		Add(Points{X: Col("snp"), Y: Col("est"), Color: Col("model")}).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Prims) != 0 {
		t.Errorf("want no primitives, got %d", len(d.Prims))
	}
	// Scaffolding still renders: axis ticks from the X scale and
	// the declared guide.
	if len(d.XTicks) != 2 {
		t.Errorf("x ticks: got %v", d.XTicks)
	}
	if len(d.Guides) != 1 || d.Guides[0].Title != "Model" {
		t.Errorf("guides: got %v", d.Guides)
	}
}

func TestRenderNumericPassThrough(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []int{10, 20}).
		Add("y", []float64{0.5, 2.5}).
		Done()
	d, err := NewPlot(tab).Add(Points{X: Col("x"), Y: Col("y")}).Render()
	if err != nil {
		t.Fatal(err)
	}
	if d.Prims[0].X != 10 || d.Prims[1].Y != 2.5 {
		t.Errorf("got %+v", d.Prims)
	}
}

func TestRenderErrors(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1}).
		Add("model", []string{"a"}).
		Done()

	// Missing column is a configuration error.
	_, err := NewPlot(tab).Add(Points{X: Col("nope"), Y: Col("x")}).Render()
	if _, ok := err.(ConfigError); !ok {
		t.Errorf("missing column: want ConfigError, got %v", err)
	}

	// A column aesthetic without a scale is a configuration error.
	_, err = NewPlot(tab).Add(Points{X: Col("x"), Y: Col("x"), Color: Col("model")}).Render()
	if _, ok := err.(ConfigError); !ok {
		t.Errorf("scaleless aesthetic: want ConfigError, got %v", err)
	}

	// A string positional column without a scale is a
	// configuration error, not a coercion.
	_, err = NewPlot(tab).Add(Points{X: Col("model"), Y: Col("x")}).Render()
	if _, ok := err.(ConfigError); !ok {
		t.Errorf("string position: want ConfigError, got %v", err)
	}

	// A data value outside the scale's range surfaces as an
	// unmapped value, not a configuration error.
	_, err = NewPlot(tab).
		SetScale(Scale{
			Channel: ChanColor,
			Domain:  []interface{}{"a"},
			Range:   map[interface{}]interface{}{},
		}).
		Add(Points{X: Col("x"), Y: Col("x"), Color: Col("model")}).
		Render()
	var uve *UnmappedValueError
	if !errors.As(err, &uve) {
		t.Fatalf("want *UnmappedValueError, got %v", err)
	}
	if uve.Channel != ChanColor || uve.Value != "a" {
		t.Errorf("got error on %s/%v", uve.Channel, uve.Value)
	}
}

func TestRenderZOrder(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1}).
		Add("y", []float64{2}).
		Done()
	d, err := NewPlot(tab).
		Add(Points{X: Col("x"), Y: Col("y")}).
		Add(Labels{X: Col("x"), Y: Col("y"), Text: Lit("hit"), NudgeY: 0.5}).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Prims) != 2 || d.Prims[0].Z != 0 || d.Prims[1].Z != 1 {
		t.Fatalf("z order: got %+v", d.Prims)
	}
	if d.Prims[1].Kind != PrimText || d.Prims[1].Text != "hit" || d.Prims[1].Y != 2.5 {
		t.Errorf("label: got %+v", d.Prims[1])
	}
}

func TestRenderExplicitXTicks(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []float64{1, 2}).
		Done()
	ticks := []Tick{{Pos: 1.5, Label: "1", Offset: false}, {Pos: 9, Label: "2", Offset: true}}
	d, err := NewPlot(tab).
		Add(Points{X: Col("x"), Y: Col("y")}).
		SetXTicks(ticks).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d.XTicks, ticks) {
		t.Errorf("want %v, got %v", ticks, d.XTicks)
	}
}

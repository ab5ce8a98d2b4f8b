// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

// mergePlot binds color and shape to the same column through two
// scales with identical guide structure.
func mergePlot() Plot {
	tab := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []float64{1, 2}).
		Add("model", []string{"a", "b"}).
		Done()
	domain := []interface{}{"a", "b"}
	return NewPlot(tab).
		SetScale(Scale{
			Channel: ChanColor, Name: "Model", Domain: domain,
			Range: map[interface{}]interface{}{"a": "#111111", "b": "#222222"},
		}).
		SetScale(Scale{
			Channel: ChanShape, Name: "Model", Domain: domain,
			Range: map[interface{}]interface{}{"a": "circle", "b": "square"},
		}).
		Add(Points{X: Col("x"), Y: Col("y"), Color: Col("model"), Shape: Col("model")})
}

func TestGuideMerge(t *testing.T) {
	d, err := mergePlot().Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Guides) != 1 {
		t.Fatalf("want 1 guide, got %v", d.Guides)
	}
	g := d.Guides[0]
	if g.Title != "Model" {
		t.Errorf("title: got %q", g.Title)
	}
	if want := []Channel{ChanColor, ChanShape}; !reflect.DeepEqual(g.Channels, want) {
		t.Errorf("channels: want %v, got %v", want, g.Channels)
	}
	// The merged rows carry both channels' visual values.
	if g.Rows[0].Style.Stroke != "#111111" || g.Rows[0].Style.Shape != "circle" {
		t.Errorf("row 0 style: got %+v", g.Rows[0].Style)
	}
	if g.Rows[1].Style.Stroke != "#222222" || g.Rows[1].Style.Shape != "square" {
		t.Errorf("row 1 style: got %+v", g.Rows[1].Style)
	}
}

func TestGuideMergeDisabled(t *testing.T) {
	d, err := mergePlot().MergeGuides(false).Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Guides) != 2 {
		t.Fatalf("want 2 guides, got %v", d.Guides)
	}
}

func TestGuideNoMergeDifferentLabels(t *testing.T) {
	// Same title but different labels must not merge.
	p := mergePlot().SetScale(Scale{
		Channel: ChanShape, Name: "Model",
		Domain: []interface{}{"a", "b"},
		Labels: []string{"A", "B"},
		Range:  map[interface{}]interface{}{"a": "circle", "b": "square"},
	})
	d, err := p.Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Guides) != 2 {
		t.Fatalf("want 2 guides, got %v", d.Guides)
	}
}

func TestGuideMergeAlphaZero(t *testing.T) {
	// A break mapped to alpha 0 must keep its transparency
	// through a structural merge, whichever guide comes first.
	tab := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []float64{1, 2}).
		Add("state", []string{"off", "on"}).
		Done()
	domain := []interface{}{"off", "on"}
	base := NewPlot(tab).
		SetScale(Scale{
			Channel: ChanColor, Name: "State", Domain: domain,
			Range: map[interface{}]interface{}{"off": "#111111", "on": "#222222"},
		}).
		SetScale(Scale{
			Channel: ChanAlpha, Name: "State", Domain: domain,
			Range: map[interface{}]interface{}{"off": 0.0, "on": 1.0},
		})
	alphaFirst := base.
		Add(Points{X: Col("x"), Y: Col("y"), Alpha: Col("state")}).
		Add(Points{X: Col("x"), Y: Col("y"), Color: Col("state")})
	colorFirst := base.
		Add(Points{X: Col("x"), Y: Col("y"), Color: Col("state")}).
		Add(Points{X: Col("x"), Y: Col("y"), Alpha: Col("state")})
	for _, p := range []Plot{alphaFirst, colorFirst} {
		d, err := p.Render()
		if err != nil {
			t.Fatal(err)
		}
		if len(d.Guides) != 1 {
			t.Fatalf("want 1 guide, got %v", d.Guides)
		}
		st := d.Guides[0].Rows[0].Style
		if st.Alpha != 0 || st.Stroke != "#111111" {
			t.Errorf("off row style: got %+v", st)
		}
	}
}

func TestGuideLiteralBinding(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{1}).
		Add("y", []float64{1}).
		Done()
	d, err := NewPlot(tab).
		Add(Points{X: Col("x"), Y: Col("y"), Color: Lit("#333333")}).
		Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Guides) != 0 {
		t.Errorf("literal binding produced a guide: %v", d.Guides)
	}
	if d.Prims[0].Style.Stroke != "#333333" {
		t.Errorf("literal color not applied: %+v", d.Prims[0].Style)
	}
}

// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot composes declarative layered plots over go-gg tables
// and resolves them to backend-agnostic drawable primitives.
//
// A Plot is built up from a base table, explicit discrete Scales, and
// an ordered stack of geometry layers. Every builder method returns a
// new Plot value; specifications are immutable, so partial plots can
// be shared, extended, and compared freely. Render freezes the
// specification and produces a Drawing: resolved primitives in layer
// order, plus axis ticks and deduplicated legend guides. Rendering
// pixels from a Drawing is a renderer's job, not this package's.
package plot

import (
	"github.com/aclements/go-gg/table"
)

// A Plot is an immutable plot specification: a base table, a scale
// per channel, an ordered layer stack, a coordinate system, and
// labels. The zero Plot is empty; NewPlot attaches a base table.
type Plot struct {
	data   *table.Table
	scales map[Channel]*Scale
	layers []Layer
	coord  Coord

	title          string
	xLabel, yLabel string
	xTicks         []Tick

	noMerge bool
}

// NewPlot returns an empty Plot backed by data. The caller must not
// modify data's columns after this point.
func NewPlot(data *table.Table) Plot {
	return Plot{data: data}
}

// clone returns a copy of p whose layer slice and scale map can be
// extended without affecting p.
func (p Plot) clone() Plot {
	p.layers = append([]Layer(nil), p.layers...)
	scales := make(map[Channel]*Scale, len(p.scales)+1)
	for ch, s := range p.scales {
		scales[ch] = s
	}
	p.scales = scales
	return p
}

// Add returns p with layers appended to the layer stack. Layers draw
// in the order they were added.
func (p Plot) Add(layers ...Layer) Plot {
	p = p.clone()
	p.layers = append(p.layers, layers...)
	return p
}

// SetScale returns p with s bound to s.Channel, replacing any scale
// already bound there.
func (p Plot) SetScale(s Scale) Plot {
	p = p.clone()
	p.scales[s.Channel] = &s
	return p
}

// SetCoord returns p with the given coordinate system.
func (p Plot) SetCoord(c Coord) Plot {
	p = p.clone()
	p.coord = c
	return p
}

// Title returns p with the given plot title.
func (p Plot) Title(title string) Plot {
	p = p.clone()
	p.title = title
	return p
}

// AxisLabel returns p with the given label on a semantic axis. By
// default axis labels come from the first column bound to each
// positional channel.
func (p Plot) AxisLabel(a Axis, label string) Plot {
	p = p.clone()
	if a == AxisX {
		p.xLabel = label
	} else {
		p.yLabel = label
	}
	return p
}

// SetXTicks returns p with explicit X axis ticks, overriding the
// ticks derived from the X scale. This is how precomputed group
// ticks (such as per-chromosome positions) attach to a plot.
func (p Plot) SetXTicks(ticks []Tick) Plot {
	p = p.clone()
	p.xTicks = append([]Tick(nil), ticks...)
	return p
}

// MergeGuides returns p with structural legend merging switched on
// or off. It is on by default: channels whose guide rows are
// identical share one guide block.
func (p Plot) MergeGuides(merge bool) Plot {
	p = p.clone()
	p.noMerge = !merge
	return p
}

// dataOf returns a layer's data source: its own table if set,
// otherwise the plot's base table.
func (p *Plot) dataOf(layerData *table.Table) *table.Table {
	if layerData != nil {
		return layerData
	}
	return p.data
}

// scaleFor returns the scale bound to ch, or nil.
func (p *Plot) scaleFor(ch Channel) *Scale {
	return p.scales[ch]
}

// check validates the whole specification eagerly, before any
// primitive is produced.
func (p *Plot) check() error {
	for _, s := range p.scales {
		if err := s.check(); err != nil {
			return err
		}
	}
	for _, l := range p.layers {
		if err := l.check(p); err != nil {
			return err
		}
	}
	return nil
}

func hasColumn(t *table.Table, name string) bool {
	for _, col := range t.Columns() {
		if col == name {
			return true
		}
	}
	return false
}

// checkPos validates a positional binding: required bindings must be
// bound, and column bindings must name a column of t. Empty tables
// skip the column check; they render to nothing.
func checkPos(p *Plot, t *table.Table, ch Channel, b Binding, required bool) error {
	if !b.bound() {
		if required {
			return configErrorf("layer needs a %s binding", ch)
		}
		return nil
	}
	if b.isLit {
		return nil
	}
	if t == nil {
		return configErrorf("layer binds column %q but the plot has no data", b.col)
	}
	if t.Len() > 0 && !hasColumn(t, b.col) {
		return configErrorf("layer binds missing column %q to %s", b.col, ch)
	}
	return nil
}

// checkAes validates aesthetic bindings: column bindings must name a
// column of t and must have a scale to resolve through.
func checkAes(p *Plot, t *table.Table, abs []aesBinding) error {
	for _, ab := range abs {
		if ab.b.isLit {
			continue
		}
		if t == nil {
			return configErrorf("layer binds column %q but the plot has no data", ab.b.col)
		}
		if t.Len() > 0 && !hasColumn(t, ab.b.col) {
			return configErrorf("layer binds missing column %q to %s", ab.b.col, ab.ch)
		}
		if p.scaleFor(ab.ch) == nil {
			return configErrorf("column %q is bound to %s, which has no scale", ab.b.col, ab.ch)
		}
	}
	return nil
}

// checkDodge validates a layer's dodge configuration: the dodge
// channel must be one of the layer's column-bound aesthetics and
// must have a scale, whose breaks order the group.
func checkDodge(p *Plot, dodge Channel, abs []aesBinding) error {
	if dodge == ChanNone {
		return nil
	}
	for _, ab := range abs {
		if ab.ch == dodge {
			if ab.b.isLit {
				return configErrorf("dodge channel %s is bound to a literal", dodge)
			}
			if p.scaleFor(dodge) == nil {
				return configErrorf("dodge channel %s has no scale", dodge)
			}
			return nil
		}
	}
	return configErrorf("dodge channel %s is not bound by the layer", dodge)
}

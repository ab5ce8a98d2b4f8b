// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"github.com/aclements/go-gg/table"
)

// A Binding attaches a channel of a layer to either a column of the
// layer's table or a literal visual value. The zero Binding is
// unbound.
//
// Column bindings resolve per record through the channel's Scale.
// Literal bindings bypass scale resolution entirely and never
// contribute to the legend.
type Binding struct {
	col   string
	lit   interface{}
	isLit bool
}

// Col binds a channel to the named column.
func Col(name string) Binding { return Binding{col: name} }

// Lit binds a channel to a fixed visual value.
func Lit(v interface{}) Binding { return Binding{lit: v, isLit: true} }

func (b Binding) bound() bool { return b.isLit || b.col != "" }

// An aesBinding pairs a channel with its binding for one layer.
type aesBinding struct {
	ch Channel
	b  Binding
}

// A Layer is one geometry in a plot's layer stack. The geometry
// kinds are closed: PointRanges, Points, RefLine, and Labels are the
// only implementations. Layers are drawn in the order they are added
// to a Plot; later layers draw over earlier ones.
type Layer interface {
	// aes returns the layer's aesthetic bindings in canonical
	// channel order. Guide blocks follow this order.
	aes() []aesBinding

	check(p *Plot) error
	render(p *Plot, z int) ([]Primitive, error)
}

// PointRanges draws, for each record, a point at (X, Y) with a range
// bar spanning Lower to Upper along the Y data axis. Records sharing
// an X position can be dodged side by side by a secondary channel.
type PointRanges struct {
	// Data is the layer's table. If nil, the layer uses the
	// plot's base table.
	Data *table.Table

	// X and Y name the point position. Lower and Upper name the
	// range bounds. All four are required.
	X, Y, Lower, Upper Binding

	Color, Fill, Shape, Alpha Binding

	// Dodge names the channel whose scale breaks order records
	// drawn side by side at one X position. It must be one of the
	// layer's column-bound aesthetic channels. DodgeWidth is the
	// spacing between adjacent members; 0 leaves records fully
	// overlapping.
	Dodge      Channel
	DodgeWidth float64

	// Size is the point radius in output units. 0 means the
	// renderer's default.
	Size float64
}

func (l PointRanges) aes() []aesBinding {
	return aesBindings(l.Color, l.Fill, l.Shape, l.Alpha)
}

func (l PointRanges) check(p *Plot) error {
	t := p.dataOf(l.Data)
	if err := checkPos(p, t, ChanX, l.X, true); err != nil {
		return err
	}
	for _, b := range []Binding{l.Y, l.Lower, l.Upper} {
		if err := checkPos(p, t, ChanY, b, true); err != nil {
			return err
		}
	}
	if err := checkAes(p, t, l.aes()); err != nil {
		return err
	}
	return checkDodge(p, l.Dodge, l.aes())
}

func (l PointRanges) render(p *Plot, z int) ([]Primitive, error) {
	t := p.dataOf(l.Data)
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	xs, err := p.resolvePos(ChanX, l.X, t)
	if err != nil {
		return nil, err
	}
	ys, err := p.resolvePos(ChanY, l.Y, t)
	if err != nil {
		return nil, err
	}
	lo, err := p.resolvePos(ChanY, l.Lower, t)
	if err != nil {
		return nil, err
	}
	hi, err := p.resolvePos(ChanY, l.Upper, t)
	if err != nil {
		return nil, err
	}
	styles, err := p.resolveStyles(t, l.aes(), Style{Alpha: 1, Size: l.Size})
	if err != nil {
		return nil, err
	}
	offs, err := p.dodgeOffsets(t, xs, l.Dodge, l.aes(), l.DodgeWidth)
	if err != nil {
		return nil, err
	}
	prims := make([]Primitive, t.Len())
	for i := range prims {
		prims[i] = Primitive{
			Kind:  PrimPointRange,
			X:     xs[i] + offs[i],
			Y:     ys[i],
			Min:   lo[i],
			Max:   hi[i],
			Style: styles[i],
			Z:     z,
		}
	}
	return prims, nil
}

// Points draws a point mark at each record's (X, Y).
type Points struct {
	// Data is the layer's table. If nil, the layer uses the
	// plot's base table.
	Data *table.Table

	// X and Y name the point position. Both are required.
	X, Y Binding

	Color, Fill, Shape, Alpha Binding

	// Dodge and DodgeWidth are as for PointRanges.
	Dodge      Channel
	DodgeWidth float64

	// Size is the point radius in output units.
	Size float64
}

func (l Points) aes() []aesBinding {
	return aesBindings(l.Color, l.Fill, l.Shape, l.Alpha)
}

func (l Points) check(p *Plot) error {
	t := p.dataOf(l.Data)
	if err := checkPos(p, t, ChanX, l.X, true); err != nil {
		return err
	}
	if err := checkPos(p, t, ChanY, l.Y, true); err != nil {
		return err
	}
	if err := checkAes(p, t, l.aes()); err != nil {
		return err
	}
	return checkDodge(p, l.Dodge, l.aes())
}

func (l Points) render(p *Plot, z int) ([]Primitive, error) {
	t := p.dataOf(l.Data)
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	xs, err := p.resolvePos(ChanX, l.X, t)
	if err != nil {
		return nil, err
	}
	ys, err := p.resolvePos(ChanY, l.Y, t)
	if err != nil {
		return nil, err
	}
	styles, err := p.resolveStyles(t, l.aes(), Style{Alpha: 1, Size: l.Size})
	if err != nil {
		return nil, err
	}
	offs, err := p.dodgeOffsets(t, xs, l.Dodge, l.aes(), l.DodgeWidth)
	if err != nil {
		return nil, err
	}
	prims := make([]Primitive, t.Len())
	for i := range prims {
		prims[i] = Primitive{
			Kind:  PrimPoint,
			X:     xs[i] + offs[i],
			Y:     ys[i],
			Style: styles[i],
			Z:     z,
		}
	}
	return prims, nil
}

// RefLine draws a reference line fixed at Value on one semantic data
// axis. A RefLine on AxisY renders horizontally under Identity
// coordinates and vertically under Flipped; the declared axis, not
// the rendered one, is what the line stays attached to.
type RefLine struct {
	Axis  Axis
	Value float64

	// Stroke is the line's hex color. "" means black.
	Stroke string
	// Width is the line width in output units.
	Width float64
	// Dash draws the line dashed.
	Dash bool
}

func (l RefLine) aes() []aesBinding { return nil }

func (l RefLine) check(p *Plot) error { return nil }

func (l RefLine) render(p *Plot, z int) ([]Primitive, error) {
	// Under Identity a Y-axis value is a horizontal line; a flip
	// swaps the orientation but not the value.
	orient := Vertical
	if (l.Axis == AxisY) == (p.coord == Identity) {
		orient = Horizontal
	}
	stroke := l.Stroke
	if stroke == "" {
		stroke = "#000000"
	}
	return []Primitive{{
		Kind:   PrimRefLine,
		Orient: orient,
		Value:  l.Value,
		Style:  Style{Stroke: stroke, Alpha: 1, Size: l.Width, Dash: l.Dash},
		Z:      z,
	}}, nil
}

// Labels draws a text annotation at each record's (X, Y). Nudges are
// applied after layout, in data units.
type Labels struct {
	// Data is the layer's table. If nil, the layer uses the
	// plot's base table.
	Data *table.Table

	// X and Y name the anchor position. Text names the label
	// column, or a literal string. All three are required.
	X, Y, Text Binding

	Color, Alpha Binding

	// NudgeX and NudgeY displace the label from its anchor.
	NudgeX, NudgeY float64

	// Size is the text size in output units.
	Size float64
}

func (l Labels) aes() []aesBinding {
	return aesBindings(l.Color, Binding{}, Binding{}, l.Alpha)
}

func (l Labels) check(p *Plot) error {
	t := p.dataOf(l.Data)
	if err := checkPos(p, t, ChanX, l.X, true); err != nil {
		return err
	}
	if err := checkPos(p, t, ChanY, l.Y, true); err != nil {
		return err
	}
	if !l.Text.bound() {
		return configErrorf("text layer needs a label binding")
	}
	if t != nil && t.Len() > 0 && !l.Text.isLit && !hasColumn(t, l.Text.col) {
		return configErrorf("text layer binds missing column %q", l.Text.col)
	}
	return checkAes(p, t, l.aes())
}

func (l Labels) render(p *Plot, z int) ([]Primitive, error) {
	t := p.dataOf(l.Data)
	if t == nil || t.Len() == 0 {
		return nil, nil
	}
	xs, err := p.resolvePos(ChanX, l.X, t)
	if err != nil {
		return nil, err
	}
	ys, err := p.resolvePos(ChanY, l.Y, t)
	if err != nil {
		return nil, err
	}
	texts := resolveText(t, l.Text)
	styles, err := p.resolveStyles(t, l.aes(), Style{Alpha: 1, Size: l.Size})
	if err != nil {
		return nil, err
	}
	prims := make([]Primitive, t.Len())
	for i := range prims {
		prims[i] = Primitive{
			Kind:  PrimText,
			X:     xs[i] + l.NudgeX,
			Y:     ys[i] + l.NudgeY,
			Text:  texts[i],
			Style: styles[i],
			Z:     z,
		}
	}
	return prims, nil
}

// aesBindings pairs the four aesthetic bindings with their channels,
// dropping unbound ones.
func aesBindings(color, fill, shape, alpha Binding) []aesBinding {
	all := []aesBinding{
		{ChanColor, color},
		{ChanFill, fill},
		{ChanShape, shape},
		{ChanAlpha, alpha},
	}
	abs := all[:0]
	for _, ab := range all {
		if ab.b.bound() {
			abs = append(abs, ab)
		}
	}
	return abs
}

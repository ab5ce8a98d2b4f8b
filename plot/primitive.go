// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// A Coord selects the plot's coordinate system. Coordinates are
// applied at render time only: they change how a renderer projects
// primitives, never the resolved data values themselves.
type Coord int

const (
	// Identity renders X along the horizontal axis and Y along
	// the vertical axis.
	Identity Coord = iota

	// Flipped swaps the roles of the two axes at render time.
	// Data and bindings are untouched; a reference line declared
	// against the Y axis renders vertically instead of
	// horizontally.
	Flipped
)

// An Axis names a semantic data axis, independent of where the
// active coordinate system draws it.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// An Orient is the rendered orientation of a reference line under
// the active coordinate system.
type Orient int

const (
	Horizontal Orient = iota
	Vertical
)

// A PrimKind identifies the geometry of a Primitive.
type PrimKind int

const (
	PrimPointRange PrimKind = iota
	PrimPoint
	PrimRefLine
	PrimText
)

func (k PrimKind) String() string {
	switch k {
	case PrimPointRange:
		return "pointrange"
	case PrimPoint:
		return "point"
	case PrimRefLine:
		return "refline"
	case PrimText:
		return "text"
	}
	return "unknown"
}

// A Style holds fully resolved literal visual values for one
// primitive or guide swatch. Color values are hex strings passed
// through untouched from scale ranges and literals. Alpha is always
// populated; 0 means fully transparent, not unset.
type Style struct {
	Stroke string
	Fill   string
	Shape  string
	Alpha  float64
	Size   float64
	Dash   bool
}

// A Primitive is one backend-agnostic drawable. Positions are in
// data space; the Drawing's Coord tells a renderer how to project
// them, so flipping coordinates changes no numeric value here.
type Primitive struct {
	Kind PrimKind

	// X and Y position the primitive. For PrimPointRange, Min
	// and Max give the range extent along the Y data axis.
	X, Y     float64
	Min, Max float64

	// Orient and Value describe a PrimRefLine: a line fixed at
	// Value, already oriented for the active coordinate system.
	Orient Orient
	Value  float64

	// Text is the label of a PrimText.
	Text string

	Style Style

	// Z is the primitive's layer index. Primitives are emitted in
	// nondecreasing Z order; renderers draw higher Z on top.
	Z int
}

// A Tick is one axis tick: a position in data space, a label, and
// whether the label is drawn at the alternate offset used to
// declutter crowded categorical axes.
type Tick struct {
	Pos    float64
	Label  string
	Offset bool
}

// A LegendRow is one guide entry: the domain value it stands for,
// its display label, and the resolved style of its swatch.
type LegendRow struct {
	Break interface{}
	Label string
	Style Style
}

// A Guide is one legend block. Channels whose rows are structurally
// identical are merged into a single Guide with the union of their
// swatch styles.
type Guide struct {
	Title    string
	Channels []Channel
	Rows     []LegendRow
}

// A Drawing is the output of Plot.Render: an ordered list of
// drawable primitives plus the axis and legend scaffolding a
// renderer needs. Drawings are ephemeral; rendering the same Plot
// again produces an identical Drawing.
type Drawing struct {
	Prims  []Primitive
	Guides []Guide

	Coord          Coord
	Title          string
	XLabel, YLabel string
	XTicks, YTicks []Tick
}

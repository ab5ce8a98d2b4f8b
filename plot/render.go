// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
)

// Render freezes p and resolves it to a Drawing. Rendering is pure:
// it never modifies p or its tables, and rendering the same Plot
// twice produces identical Drawings.
//
// Configuration problems (missing columns, malformed scales, bad
// dodge declarations) are reported as ConfigErrors before any
// primitive is produced. Data values missing from a scale's range
// are reported as *UnmappedValueErrors when first resolved. A plot
// whose base table has no records renders to an empty primitive
// sequence with full axis and legend scaffolding, not an error.
func (p Plot) Render() (*Drawing, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	d := &Drawing{
		Coord:  p.coord,
		Title:  p.title,
		XLabel: p.xLabel,
		YLabel: p.yLabel,
	}
	p.autoAxisLabels(d)
	for z, l := range p.layers {
		prims, err := l.render(&p, z)
		if err != nil {
			return nil, err
		}
		d.Prims = append(d.Prims, prims...)
	}
	if p.xTicks != nil {
		d.XTicks = append([]Tick(nil), p.xTicks...)
	} else {
		d.XTicks = p.axisTicks(AxisX, d.Prims)
	}
	d.YTicks = p.axisTicks(AxisY, d.Prims)
	guides, err := p.guides()
	if err != nil {
		return nil, err
	}
	d.Guides = guides
	return d, nil
}

// autoAxisLabels fills d's empty axis labels from the first column
// bound to each positional channel, in layer order.
func (p *Plot) autoAxisLabels(d *Drawing) {
	for _, l := range p.layers {
		var x, y Binding
		switch l := l.(type) {
		case PointRanges:
			x, y = l.X, l.Y
		case Points:
			x, y = l.X, l.Y
		case Labels:
			x, y = l.X, l.Y
		}
		if d.XLabel == "" && !x.isLit {
			d.XLabel = x.col
		}
		if d.YLabel == "" && !y.isLit {
			d.YLabel = y.col
		}
	}
}

// resolvePos resolves a positional binding to one float64 per
// record: through the channel's scale if one is declared (discrete
// position = 1 + domain index), otherwise as a numeric column passed
// through unchanged.
func (p *Plot) resolvePos(ch Channel, b Binding, t *table.Table) ([]float64, error) {
	n := t.Len()
	if b.isLit {
		f, ok := toFloat(b.lit)
		if !ok {
			return nil, configErrorf("%s literal %v is not numeric", ch, b.lit)
		}
		out := make([]float64, n)
		for i := range out {
			out[i] = f
		}
		return out, nil
	}
	if s := p.scaleFor(ch); s != nil {
		vals := colValues(t, b.col)
		out := make([]float64, n)
		for i, v := range vals {
			pos, err := s.pos(v)
			if err != nil {
				return nil, err
			}
			out[i] = pos
		}
		return out, nil
	}
	col := t.MustColumn(b.col)
	if !isNumeric(col) {
		return nil, configErrorf("column %q is %T; binding it to %s needs a scale", b.col, col, ch)
	}
	var out []float64
	slice.Convert(&out, col)
	return out, nil
}

// resolveStyles resolves a layer's aesthetic bindings to one Style
// per record, starting from base. Literal bindings apply uniformly
// and bypass scales; column bindings resolve per record through the
// channel's scale.
func (p *Plot) resolveStyles(t *table.Table, abs []aesBinding, base Style) ([]Style, error) {
	styles := make([]Style, t.Len())
	for i := range styles {
		styles[i] = base
	}
	for _, ab := range abs {
		if ab.b.isLit {
			for i := range styles {
				if err := setStyle(&styles[i], ab.ch, ab.b.lit); err != nil {
					return nil, err
				}
			}
			continue
		}
		s := p.scaleFor(ab.ch)
		for i, v := range colValues(t, ab.b.col) {
			mv, err := s.Map(v)
			if err != nil {
				return nil, err
			}
			if err := setStyle(&styles[i], ab.ch, mv); err != nil {
				return nil, err
			}
		}
	}
	return styles, nil
}

// resolveText resolves a text binding to one string per record.
func resolveText(t *table.Table, b Binding) []string {
	out := make([]string, t.Len())
	if b.isLit {
		s := fmt.Sprint(b.lit)
		for i := range out {
			out[i] = s
		}
		return out
	}
	for i, v := range colValues(t, b.col) {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// axisTicks computes the ticks for one semantic axis: the declared
// breaks if the axis has a discrete scale, otherwise linear ticks
// over the extent of the resolved primitives.
func (p *Plot) axisTicks(a Axis, prims []Primitive) []Tick {
	ch := ChanX
	if a == AxisY {
		ch = ChanY
	}
	if s := p.scaleFor(ch); s != nil {
		breaks := s.breaks()
		ticks := make([]Tick, 0, len(breaks))
		for i, b := range breaks {
			pos, err := s.pos(b)
			if err != nil {
				continue
			}
			label := fmt.Sprint(b)
			if s.Labels != nil {
				label = s.Labels[i]
			}
			ticks = append(ticks, Tick{Pos: pos, Label: label})
		}
		return ticks
	}

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
	for _, pr := range prims {
		switch pr.Kind {
		case PrimRefLine:
			// A horizontal line under Identity is a Y
			// value; a flip swaps the orientation but not
			// the axis the value belongs to.
			onY := (pr.Orient == Horizontal) == (p.coord == Identity)
			if onY == (a == AxisY) {
				include(pr.Value)
			}
		case PrimPointRange:
			if a == AxisY {
				include(pr.Y)
				include(pr.Min)
				include(pr.Max)
			} else {
				include(pr.X)
			}
		default:
			if a == AxisY {
				include(pr.Y)
			} else {
				include(pr.X)
			}
		}
	}
	if math.IsNaN(min) {
		min, max = 0, 1
	}
	if min == max {
		min, max = min-1, max+1
	}
	ls := scale.Linear{Min: min, Max: max}
	major, _ := ls.Ticks(scale.TickOptions{Max: 6})
	ticks := make([]Tick, len(major))
	for i, v := range major {
		ticks[i] = Tick{Pos: v, Label: fmt.Sprintf("%.6g", v)}
	}
	return ticks
}

// colValues returns the values of a column as a []interface{}.
func colValues(t *table.Table, col string) []interface{} {
	rv := reflect.ValueOf(t.MustColumn(col))
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// isNumeric reports whether seq is a slice of a numeric type.
func isNumeric(seq interface{}) bool {
	switch reflect.TypeOf(seq).Elem().Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uintptr, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

var float64Type = reflect.TypeOf(float64(0))

// toFloat converts a scalar numeric value to float64.
func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().ConvertibleTo(float64Type) || rv.Kind() == reflect.String {
		return 0, false
	}
	return rv.Convert(float64Type).Float(), true
}

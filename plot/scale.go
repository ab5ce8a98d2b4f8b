// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// A Channel is a visual property that a Scale can map data values
// onto. The set of channels is fixed: two positional channels and
// four aesthetic channels.
type Channel int

const (
	ChanNone Channel = iota
	ChanX
	ChanY
	ChanColor
	ChanFill
	ChanShape
	ChanAlpha
)

func (c Channel) String() string {
	switch c {
	case ChanNone:
		return "none"
	case ChanX:
		return "x"
	case ChanY:
		return "y"
	case ChanColor:
		return "color"
	case ChanFill:
		return "fill"
	case ChanShape:
		return "shape"
	case ChanAlpha:
		return "alpha"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// A ConfigError reports an invalid plot specification, such as a
// binding to a column the data doesn't have or a scale whose breaks
// aren't a subset of its domain. It is always detected when a Plot is
// rendered, before any primitives are produced.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

func configErrorf(format string, args ...interface{}) error {
	return ConfigError(fmt.Sprintf(format, args...))
}

// An UnmappedValueError reports a data value on a scaled channel that
// has no entry in the scale's range. It is detected when the value is
// first resolved.
type UnmappedValueError struct {
	Channel Channel
	Value   interface{}
}

func (e *UnmappedValueError) Error() string {
	return fmt.Sprintf("value %v has no mapping on the %s scale", e.Value, e.Channel)
}

// A Scale is an explicit discrete mapping from data values to visual
// values for one channel. Unlike implicitly trained scales, every
// level must be declared: a value outside Domain (or, for aesthetic
// channels, outside Range) is an error when it is resolved, never a
// silent coercion.
//
// Breaks selects and orders the domain values that appear in the
// scale's guide; it defaults to all of Domain. Breaks order is also
// the rank order used for dodging, so side-by-side geometry always
// matches the legend. Labels parallels Breaks and defaults to each
// break's string form.
type Scale struct {
	Channel Channel

	// Name is the scale's guide title.
	Name string

	// Domain is the ordered set of data values the scale accepts.
	// For positional channels, a value resolves to 1 + its index
	// in Domain.
	Domain []interface{}

	// Breaks is an ordered subset of Domain shown in the guide.
	// A nil Breaks means all of Domain.
	Breaks []interface{}

	// Labels gives the guide label for each break.
	Labels []string

	// Range maps each domain value to its visual value: a hex
	// color string for color and fill, a shape name for shape, a
	// float64 for alpha. Positional scales have no Range.
	Range map[interface{}]interface{}

	// Override forces the guide swatch for another channel, per
	// break row, without affecting how geometry resolves. For
	// example, a color scale can force its guide rows' fill
	// swatches to match the stroke color even though the geometry
	// carries no fill.
	Override map[Channel][]interface{}
}

// check validates the scale's declaration. Range completeness is
// deliberately not checked here; missing range entries surface as
// UnmappedValueErrors when first resolved.
func (s *Scale) check() error {
	if s.Channel == ChanNone {
		return configErrorf("scale %q has no channel", s.Name)
	}
	index := make(map[interface{}]bool, len(s.Domain))
	for _, v := range s.Domain {
		index[v] = true
	}
	for _, b := range s.Breaks {
		if !index[b] {
			return configErrorf("%s scale break %v is not in its domain", s.Channel, b)
		}
	}
	nbreaks := len(s.breaks())
	if s.Labels != nil && len(s.Labels) != nbreaks {
		return configErrorf("%s scale has %d labels for %d breaks", s.Channel, len(s.Labels), nbreaks)
	}
	for ch, ov := range s.Override {
		if len(ov) != nbreaks {
			return configErrorf("%s scale has %d %s overrides for %d breaks", s.Channel, len(ov), ch, nbreaks)
		}
	}
	return nil
}

// breaks returns the effective breaks: Breaks, or all of Domain.
func (s *Scale) breaks() []interface{} {
	if s.Breaks != nil {
		return s.Breaks
	}
	return s.Domain
}

// rank returns x's index in the scale's breaks order, used to order
// dodge groups. The second result is false if x is not a break.
func (s *Scale) rank(x interface{}) (int, bool) {
	for i, b := range s.breaks() {
		if b == x {
			return i, true
		}
	}
	return 0, false
}

// pos resolves x on a positional scale to 1 + its Domain index.
func (s *Scale) pos(x interface{}) (float64, error) {
	for i, v := range s.Domain {
		if v == x {
			return float64(i + 1), nil
		}
	}
	return 0, &UnmappedValueError{s.Channel, x}
}

// Map resolves the data value x to its visual value. Positional
// scales resolve to a float64 position; aesthetic scales resolve
// through Range. Values the scale doesn't declare fail with an
// *UnmappedValueError.
func (s *Scale) Map(x interface{}) (interface{}, error) {
	if s.Channel == ChanX || s.Channel == ChanY {
		return s.pos(x)
	}
	v, ok := s.Range[x]
	if !ok {
		return nil, &UnmappedValueError{s.Channel, x}
	}
	return v, nil
}

// LegendRows returns the scale's guide rows in breaks order. This
// ordering is the single source of truth shared by the legend and the
// dodge layout. Domain values without a break are excluded from the
// guide but remain resolvable by Map.
func (s *Scale) LegendRows() ([]LegendRow, error) {
	breaks := s.breaks()
	rows := make([]LegendRow, len(breaks))
	for i, b := range breaks {
		v, err := s.Map(b)
		if err != nil {
			return nil, err
		}
		// Swatches are opaque unless an alpha value is mapped
		// onto them, so a mapped alpha of 0 stays 0.
		row := LegendRow{Break: b, Style: Style{Alpha: 1}}
		if s.Labels != nil {
			row.Label = s.Labels[i]
		} else {
			row.Label = fmt.Sprint(b)
		}
		if err := setStyle(&row.Style, s.Channel, v); err != nil {
			return nil, err
		}
		for ch, ov := range s.Override {
			if err := setStyle(&row.Style, ch, ov[i]); err != nil {
				return nil, err
			}
		}
		rows[i] = row
	}
	return rows, nil
}

// setStyle sets the visual value v into st's slot for channel ch,
// checking that v has the type the channel requires.
func setStyle(st *Style, ch Channel, v interface{}) error {
	switch ch {
	case ChanColor:
		s, ok := v.(string)
		if !ok {
			return configErrorf("color value %v is %T, want string", v, v)
		}
		st.Stroke = s
	case ChanFill:
		s, ok := v.(string)
		if !ok {
			return configErrorf("fill value %v is %T, want string", v, v)
		}
		st.Fill = s
	case ChanShape:
		s, ok := v.(string)
		if !ok {
			return configErrorf("shape value %v is %T, want string", v, v)
		}
		st.Shape = s
	case ChanAlpha:
		f, ok := v.(float64)
		if !ok {
			return configErrorf("alpha value %v is %T, want float64", v, v)
		}
		st.Alpha = f
	default:
		return configErrorf("channel %s cannot carry a style value", ch)
	}
	return nil
}

// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"reflect"
	"testing"

	"github.com/aclements/go-gg/table"
)

func dodgePlot(models []string) (Plot, *table.Table) {
	tab := new(table.Builder).Add("model", models).Done()
	p := NewPlot(tab).SetScale(Scale{
		Channel: ChanColor,
		Domain:  []interface{}{"a", "b", "c"},
		Range: map[interface{}]interface{}{
			"a": "#111111", "b": "#222222", "c": "#333333",
		},
	})
	return p, tab
}

func TestDodgeOffsets(t *testing.T) {
	abs := []aesBinding{{ChanColor, Col("model")}}

	// Three members at one position, centered around it, in
	// breaks order regardless of record order.
	p, tab := dodgePlot([]string{"b", "c", "a"})
	offs, err := p.dodgeOffsets(tab, []float64{1, 1, 1}, ChanColor, abs, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.5, -0.5}
	if !reflect.DeepEqual(offs, want) {
		t.Errorf("want %v, got %v", want, offs)
	}

	// A partial group keeps member-local ranks, so the offsets
	// still sum to zero.
	p, tab = dodgePlot([]string{"a", "c"})
	offs, err = p.dodgeOffsets(tab, []float64{2, 2}, ChanColor, abs, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want = []float64{-0.25, 0.25}
	if !reflect.DeepEqual(offs, want) {
		t.Errorf("partial group: want %v, got %v", want, offs)
	}

	// Zero width and no dodge channel both yield zero offsets.
	p, tab = dodgePlot([]string{"a", "b"})
	offs, err = p.dodgeOffsets(tab, []float64{1, 1}, ChanColor, abs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(offs, []float64{0, 0}) {
		t.Errorf("zero width: want zeros, got %v", offs)
	}
	offs, err = p.dodgeOffsets(tab, []float64{1, 1}, ChanNone, abs, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(offs, []float64{0, 0}) {
		t.Errorf("no channel: want zeros, got %v", offs)
	}
}

func TestDodgeGroupsByPosition(t *testing.T) {
	abs := []aesBinding{{ChanColor, Col("model")}}
	p, tab := dodgePlot([]string{"a", "b", "a", "b"})
	offs, err := p.dodgeOffsets(tab, []float64{1, 1, 2, 2}, ChanColor, abs, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-0.5, 0.5, -0.5, 0.5}
	if !reflect.DeepEqual(offs, want) {
		t.Errorf("want %v, got %v", want, offs)
	}
}

func TestDodgeValueOutsideBreaks(t *testing.T) {
	abs := []aesBinding{{ChanColor, Col("model")}}
	p, tab := dodgePlot([]string{"a", "zzz"})
	_, err := p.dodgeOffsets(tab, []float64{1, 1}, ChanColor, abs, 0.5)
	if _, ok := err.(ConfigError); !ok {
		t.Fatalf("want ConfigError, got %v", err)
	}
}

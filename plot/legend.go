// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

// guides composes the legend: one guide block per scaled,
// column-bound channel, in order of first use walking the layer
// stack. Channels whose rows are structurally identical (same name,
// breaks, and labels) merge into a single block unless merging is
// disabled. Literal bindings never produce guides.
func (p *Plot) guides() ([]Guide, error) {
	var guides []Guide
	seen := make(map[Channel]bool)
	for _, l := range p.layers {
		for _, ab := range l.aes() {
			if ab.b.isLit || seen[ab.ch] {
				continue
			}
			seen[ab.ch] = true
			s := p.scaleFor(ab.ch)
			if s == nil {
				continue
			}
			rows, err := s.LegendRows()
			if err != nil {
				return nil, err
			}
			if len(rows) == 0 {
				continue
			}
			if !p.noMerge {
				if g := mergeable(guides, s.Name, rows); g != nil {
					chans := []Channel{s.Channel}
					for ch := range s.Override {
						chans = append(chans, ch)
					}
					for i := range g.Rows {
						mergeStyle(&g.Rows[i].Style, rows[i].Style, chans)
					}
					g.Channels = append(g.Channels, ab.ch)
					continue
				}
			}
			guides = append(guides, Guide{
				Title:    s.Name,
				Channels: []Channel{ab.ch},
				Rows:     rows,
			})
		}
	}
	return guides, nil
}

// mergeable returns the guide whose title, breaks, and labels match,
// or nil.
func mergeable(guides []Guide, title string, rows []LegendRow) *Guide {
	for i := range guides {
		g := &guides[i]
		if g.Title != title || len(g.Rows) != len(rows) {
			continue
		}
		same := true
		for j := range rows {
			if g.Rows[j].Break != rows[j].Break || g.Rows[j].Label != rows[j].Label {
				same = false
				break
			}
		}
		if same {
			return g
		}
	}
	return nil
}

// mergeStyle copies the slots for the given channels from src into
// dst. Copying only the channels the merged scale actually sets lets
// a mapped alpha of 0 survive the merge.
func mergeStyle(dst *Style, src Style, chans []Channel) {
	for _, ch := range chans {
		switch ch {
		case ChanColor:
			dst.Stroke = src.Stroke
		case ChanFill:
			dst.Fill = src.Fill
		case ChanShape:
			dst.Shape = src.Shape
		case ChanAlpha:
			dst.Alpha = src.Alpha
		}
	}
}

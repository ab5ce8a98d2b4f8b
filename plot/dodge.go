// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"sort"

	"github.com/aclements/go-gg/table"
)

// dodgeOffsets computes the positional offset of each record for a
// layer dodged by the given channel. Records sharing an X position
// form one group; within a group, members are ordered by their dodge
// value's rank in the channel's scale breaks, so side-by-side order
// always matches the legend. Offsets are centered:
//
//	offset = (rank - (groupSize-1)/2) * width
//
// and therefore sum to zero within every group. A width of 0 leaves
// every offset zero.
func (p *Plot) dodgeOffsets(t *table.Table, xs []float64, dodge Channel, abs []aesBinding, width float64) ([]float64, error) {
	offs := make([]float64, len(xs))
	if dodge == ChanNone || width == 0 {
		return offs, nil
	}
	var col string
	for _, ab := range abs {
		if ab.ch == dodge {
			col = ab.b.col
		}
	}
	s := p.scaleFor(dodge)
	group := colValues(t, col)

	type member struct {
		idx, rank int
	}
	byX := make(map[float64][]member)
	for i := range xs {
		r, ok := s.rank(group[i])
		if !ok {
			return nil, configErrorf("dodge value %v is not in the %s scale breaks", group[i], dodge)
		}
		byX[xs[i]] = append(byX[xs[i]], member{i, r})
	}
	for _, ms := range byX {
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].rank < ms[j].rank })
		mid := float64(len(ms)-1) / 2
		for j, m := range ms {
			offs[m.idx] = (float64(j) - mid) * width
		}
	}
	return offs, nil
}

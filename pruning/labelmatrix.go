// Package pruning implements the label-pair frequency pre-filter
// (SPEC_FULL.md "pruning"): counting which vertex-label pairs can possibly
// participate in a frequent pattern before the miner ever grows a DFS
// code, so the extension engine never wastes work on an edge type that
// cannot meet the support threshold. Per-vertex-label and per-edge-label
// counting lives in the mining package's prune step.
//
// Grounded on the teacher's support-counting idiom in
// types/digraph/support.go and types/graph/support.go (counting label
// occurrences across the transaction database before the search starts),
// adapted to the label-pair sparse matrix SPEC_FULL.md §4.8/§9 calls for.
// The dense materialization is grounded on github.com/timtadh/matrix's
// DenseMatrix, the same linear-algebra library the teacher's
// miners/absorbing package uses for its Q/R/u transition matrices.
package pruning

import "github.com/timtadh/matrix"

// LabelPairMatrix counts, for every unordered pair of vertex labels, the
// number of distinct transaction graphs containing at least one edge
// connecting that pair. It is triangular and sparse: only pairs that
// actually co-occur on some edge ever get an entry.
type LabelPairMatrix struct {
	counts map[int]map[int]map[int]bool // l1 <= l2 -> gid -> seen
}

// NewLabelPairMatrix returns an empty matrix.
func NewLabelPairMatrix() *LabelPairMatrix {
	return &LabelPairMatrix{counts: make(map[int]map[int]map[int]bool)}
}

// Observe records that an edge connecting labels l1 and l2 was seen in
// transaction graph gid.
func (m *LabelPairMatrix) Observe(gid, l1, l2 int) {
	if l1 > l2 {
		l1, l2 = l2, l1
	}
	row, ok := m.counts[l1]
	if !ok {
		row = make(map[int]map[int]bool)
		m.counts[l1] = row
	}
	seen, ok := row[l2]
	if !ok {
		seen = make(map[int]bool)
		row[l2] = seen
	}
	seen[gid] = true
}

// Support returns the number of distinct transaction graphs containing an
// edge between labels l1 and l2, in either order.
func (m *LabelPairMatrix) Support(l1, l2 int) int {
	if l1 > l2 {
		l1, l2 = l2, l1
	}
	return len(m.counts[l1][l2])
}

// Frequent reports whether the label pair meets minSupport.
func (m *LabelPairMatrix) Frequent(l1, l2, minSupport int) bool {
	return m.Support(l1, l2) >= minSupport
}

// Dense materializes the triangle's support counts into a square
// matrix.DenseMatrix indexed by position in labels, useful once the label
// alphabet is small enough for the caller to prefer dense scans over
// repeated map lookups.
func (m *LabelPairMatrix) Dense(labels []int) *matrix.DenseMatrix {
	n := len(labels)
	idx := make(map[int]int, n)
	for i, l := range labels {
		idx[l] = i
	}
	d := matrix.Zeros(n, n)
	for l1, row := range m.counts {
		i, ok := idx[l1]
		if !ok {
			continue
		}
		for l2, seen := range row {
			j, ok := idx[l2]
			if !ok {
				continue
			}
			c := float64(len(seen))
			d.Set(i, j, c)
			d.Set(j, i, c)
		}
	}
	return d
}

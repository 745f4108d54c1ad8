// Package closure implements occurrence equivalence and the closure hash
// index (SPEC_FULL.md "equivalent occurrence and closure", "closure hash
// index and early termination"): the two checks that decide whether a
// frequent pattern is closed and whether the search can stop extending it
// early without missing a closed pattern.
//
// Grounded on ca/pfv/spmf/algorithms/graph_mining/tkg/Projected.java
// (hasEquivalentOccurrence) and ClosedSubgraph.java (checkEquivalentOccurrence)
// from original_source/, ported from SPMF's Java PDFS/closed-subgraph model
// to this module's arena-indexed projection chains.
package closure

import (
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/projection"
)

// Pattern is one closed subgraph recorded by the Index: its canonical DFS
// code plus the projected set that witnessed it.
type Pattern struct {
	Code     *dfscode.Code
	GraphIDs []int
	Support  int
	Nodes    []int
}

// NewPattern snapshots a code and its projected set into a Pattern. The
// code is copied since the miner's working code is mutated during search.
func NewPattern(code *dfscode.Code, pi *projection.Set) *Pattern {
	return &Pattern{
		Code:     code.Copy(),
		GraphIDs: append([]int(nil), pi.GraphIDs...),
		Support:  pi.Support(),
		Nodes:    append([]int(nil), pi.Nodes...),
	}
}

func sameGraphIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

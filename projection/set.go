package projection

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Set (Π in SPEC_FULL.md) is the unordered collection of projection chains
// realizing one DFS code, plus the set of transaction-graph ids it covers.
// Chains may share tails with other Sets built from the same arena.
type Set struct {
	Nodes    []int // arena indices of the tail node of each occurrence
	GraphIDs []int // ascending, deduplicated
}

// Build computes a Set from a list of tail-node arena indices, deriving
// GraphIDs from each node's Gid field.
//
// Grounded on the teacher's graph-id dedup idiom in types/digraph/support.go's
// subgraphVertexSets/nonOverlapping: a set.SortedSet of types.Int keys gives
// both Has-dedup and an ascending Items() walk in one structure, rather than
// a plain map plus a separate sort.Ints pass.
func Build(a *Arena, nodes []int) *Set {
	seen := set.NewSortedSet(len(nodes))
	ids := make([]int, 0, len(nodes))
	for _, n := range nodes {
		gid := types.Int(a.Node(n).Gid)
		if !seen.Has(gid) {
			seen.Add(gid)
		}
	}
	for item, next := seen.Items()(); next != nil; item, next = next() {
		ids = append(ids, int(item.(types.Int)))
	}
	return &Set{Nodes: nodes, GraphIDs: ids}
}

// Support returns the number of distinct transaction graphs covered.
func (s *Set) Support() int {
	return len(s.GraphIDs)
}

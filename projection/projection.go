// Package projection implements the projection chain and projected set
// (SPEC_FULL.md "projection chain"): a persistent, structurally-shared
// record of where a DFS code has been observed inside the transaction
// database.
//
// Grounded on the teacher's goiso.SubGraph/Embedding marshaling idiom
// (github.com/timtadh/regrax/types/digraph/subgraph/embedding.go) but
// reshaped per the design note in SPEC_FULL.md §9 ("Projection chains"):
// rather than pointer-linked nodes (which risk reference cycles and defeat
// simple reclamation), every node lives in a monotonically growing arena
// owned by the mining driver and is addressed by its arena index. The
// arena outlives every pattern recorded during the same run.
package projection

import "github.com/timtadh/cgspan/graph"

// Node is one projection record: the physical edge realizing one DFS-code
// step, whether that edge's endpoints agree with the step's (v1,v2) roles,
// and the arena index of the projection of the previous code step (-1 for
// the first step).
type Node struct {
	Edge     graph.ID
	Gid      int
	Reversed bool
	Prev     int
}

// Arena owns every projection node created during a mining run.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 0, 1024)}
}

// Add appends a new node and returns its arena index.
func (a *Arena) Add(n Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// Node returns the node stored at arena index i.
func (a *Arena) Node(i int) Node {
	return a.nodes[i]
}

// Len returns the number of nodes ever allocated in this arena.
func (a *Arena) Len() int { return len(a.nodes) }

// Chain walks from node index i back to the chain's tail, returning the
// sequence of Nodes oldest-first: one occurrence of a code in one
// transaction graph, one entry per code step.
func (a *Arena) Chain(i int) []Node {
	var rev []Node
	for i != -1 {
		n := a.nodes[i]
		rev = append(rev, n)
		i = n.Prev
	}
	out := make([]Node, len(rev))
	for j, n := range rev {
		out[len(rev)-1-j] = n
	}
	return out
}

// EdgeIDs is a convenience wrapper over Chain returning only the physical
// edge identities of the occurrence, oldest-first.
func (a *Arena) EdgeIDs(i int) []graph.ID {
	chain := a.Chain(i)
	ids := make([]graph.ID, len(chain))
	for j, n := range chain {
		ids[j] = n.Edge
	}
	return ids
}

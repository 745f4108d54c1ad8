// Package extension implements the rightmost-path extension engine
// (SPEC_FULL.md "extension engine"): given a DFS code and its projected
// set, it enumerates every legal rightmost-path extension and groups the
// embeddings that realize each one.
//
// Grounded on the teacher's embedding-reconstruction idiom in
// types/digraph/subgraph/subgraph.go (IterEmbeddings / ExtendEmbedding),
// adapted from goiso's directed-graph "Kids"/"Parents" adjacency walk to
// the undirected DFS-code model this module mines.
package extension

import (
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

// Embedding is the code-vertex -> graph-vertex mapping one projection
// chain realizes. It is exported so the failure analyzer (SPEC_FULL.md
// "early-termination-failure analyzer") can reuse it to answer the same
// "does this occurrence already touch this vertex/edge" questions the
// teacher's PDFS.hasVertex/PDFS.hasEdge answer by walking the chain
// directly.
type Embedding struct {
	Gid   int
	Iso   []int       // code vertex idx -> graph vertex idx
	Inv   map[int]int // graph vertex idx -> code vertex idx
	Used  map[int]bool
	Edges map[int]bool // physical edge idx -> used
}

// Reconstruct rebuilds the embedding that arena node nodeIdx realizes for
// code, by walking its chain once against code's per-step vertex roles.
func Reconstruct(db *graph.Database, code *dfscode.Code, arena *projection.Arena, nodeIdx int) *Embedding {
	chain := arena.Chain(nodeIdx)
	gid := chain[0].Gid
	g := db.ByGid(gid)
	steps := make([]stepEdge, len(chain))
	for i, n := range chain {
		steps[i] = stepEdge{edgeIdx: n.Edge.Edge, v1: code.Edges[i].V1, v2: code.Edges[i].V2, reversed: n.Reversed}
	}
	return reconstruct(g, code.NumVertices(), steps)
}

// reconstruct rebuilds the embedding that the given node's chain realizes
// for code. The chain's Reversed flag on each step says whether that
// step's physical edge has its (V1,V2) endpoints swapped relative to the
// code step's (V1,V2) roles.
func reconstruct(g *graph.Graph, numVertices int, edges []stepEdge) *Embedding {
	iso := make([]int, numVertices)
	for i := range iso {
		iso[i] = -1
	}
	used := make(map[int]bool, numVertices)
	edgeSet := make(map[int]bool, len(edges))
	for _, se := range edges {
		e := &g.E[se.edgeIdx]
		var from, to int
		if se.reversed {
			from, to = e.V2, e.V1
		} else {
			from, to = e.V1, e.V2
		}
		if iso[se.v1] == -1 {
			iso[se.v1] = from
			used[from] = true
		}
		if iso[se.v2] == -1 {
			iso[se.v2] = to
			used[to] = true
		}
		edgeSet[se.edgeIdx] = true
	}
	inv := make(map[int]int, numVertices)
	for cv, gv := range iso {
		if gv != -1 {
			inv[gv] = cv
		}
	}
	return &Embedding{Gid: g.Gid, Iso: iso, Inv: inv, Used: used, Edges: edgeSet}
}

// stepEdge names, for one code step, the physical edge index realizing it
// and that step's (v1,v2) code vertices plus direction flag.
type stepEdge struct {
	edgeIdx  int
	v1, v2   int
	reversed bool
}

package extension

import (
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

// Extend enumerates every rightmost-path extension of code against its
// projected set pi, returning a map from each distinct extended edge to
// the projected set of every occurrence that realizes it.
//
// For the empty code, Extend enumerates every distinct physical edge in
// every transaction graph of db instead (SPEC_FULL.md §4.3 "empty-code
// case"); pi is ignored in that case.
func Extend(db *graph.Database, code *dfscode.Code, pi *projection.Set, arena *projection.Arena) map[dfscode.ExtendedEdge]*projection.Set {
	if len(code.Edges) == 0 {
		return extendEmpty(db, arena)
	}

	groups := make(map[dfscode.ExtendedEdge][]int)
	rm := code.RightMost()
	path := code.RightMostPath()
	onPath := make(map[int]bool, len(path))
	for _, v := range path {
		onPath[v] = true
	}

	for _, nodeIdx := range pi.Nodes {
		chain := arena.Chain(nodeIdx)
		gid := chain[0].Gid
		g := db.ByGid(gid)
		if g == nil || g.NumEdges() <= len(code.Edges) {
			continue // edge-count pruning (SPEC_FULL.md §4.3)
		}

		steps := make([]stepEdge, len(chain))
		for i, n := range chain {
			steps[i] = stepEdge{edgeIdx: n.Edge.Edge, v1: code.Edges[i].V1, v2: code.Edges[i].V2, reversed: n.Reversed}
		}
		emb := reconstruct(g, code.NumVertices(), steps)

		// Backward extensions: neighbors of the rightmost graph-vertex
		// that already map onto a rightmost-path code-vertex.
		rmGraphVertex := emb.Iso[rm]
		for _, x := range g.Neighbors(rmGraphVertex) {
			cv, isMapped := emb.Inv[x]
			if !isMapped || cv == rm || !onPath[cv] || !code.NotPreOfRM(cv) || code.ContainsEdge(rm, cv) {
				continue
			}
			eidx, _ := g.EdgeIdx(rmGraphVertex, x)
			e := &g.E[eidx]
			reversed := e.V1 != rmGraphVertex
			ee := dfscode.ExtendedEdge{V1: rm, V2: cv, L1: g.Label(rmGraphVertex), L2: g.Label(x), Le: e.Label}
			ni := arena.Add(projection.Node{Edge: g.EdgeID(eidx), Gid: gid, Reversed: reversed, Prev: nodeIdx})
			groups[ee] = append(groups[ee], ni)
		}

		// Forward extensions: a graph-neighbor of any rightmost-path
		// vertex that is not already part of the embedding.
		for _, v := range path {
			gv := emb.Iso[v]
			for _, x := range g.Neighbors(gv) {
				if emb.Used[x] {
					continue
				}
				eidx, _ := g.EdgeIdx(gv, x)
				e := &g.E[eidx]
				reversed := e.V1 != gv
				ee := dfscode.ExtendedEdge{V1: v, V2: rm + 1, L1: g.Label(gv), L2: g.Label(x), Le: e.Label}
				ni := arena.Add(projection.Node{Edge: g.EdgeID(eidx), Gid: gid, Reversed: reversed, Prev: nodeIdx})
				groups[ee] = append(groups[ee], ni)
			}
		}
	}

	out := make(map[dfscode.ExtendedEdge]*projection.Set, len(groups))
	for ee, nodes := range groups {
		out[ee] = projection.Build(arena, nodes)
	}
	return out
}

// extendEmpty seeds the search from every distinct physical edge in the
// database. To keep one extended edge per physical edge (rather than one
// per endpoint, which would double-count a symmetric edge whose endpoints
// share a label), the code-vertex-0 role is always bound to the endpoint
// with the smaller label, tie-broken arbitrarily when the labels agree.
func extendEmpty(db *graph.Database, arena *projection.Arena) map[dfscode.ExtendedEdge]*projection.Set {
	groups := make(map[dfscode.ExtendedEdge][]int)
	for _, g := range db.Graphs {
		for i := range g.E {
			e := &g.E[i]
			l1, l2 := g.Label(e.V1), g.Label(e.V2)
			reversed := false
			if l1 > l2 {
				l1, l2 = l2, l1
				reversed = true
			}
			ee := dfscode.ExtendedEdge{V1: 0, V2: 1, L1: l1, L2: l2, Le: e.Label}
			ni := arena.Add(projection.Node{Edge: g.EdgeID(i), Gid: g.Gid, Reversed: reversed, Prev: -1})
			groups[ee] = append(groups[ee], ni)
		}
	}
	out := make(map[dfscode.ExtendedEdge]*projection.Set, len(groups))
	for ee, nodes := range groups {
		out[ee] = projection.Build(arena, nodes)
	}
	return out
}

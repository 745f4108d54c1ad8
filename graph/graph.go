// Package graph implements the transaction graph store (SPEC_FULL.md,
// "graph store"): immutable labeled undirected graphs with precomputed
// neighbor indices, label indices, and a stable edge-enumeration table.
//
// Adapted from the teacher's goiso.Graph / goiso.Vertex / goiso.Edge shape
// (github.com/timtadh/goiso), generalized from goiso's directed adjacency
// (Kids/Parents) to the undirected model the mining core requires: every
// edge is registered once and read back from either endpoint.
package graph

import (
	"fmt"

	"github.com/timtadh/data-structures/errors"
)

// Vertex is one labeled vertex in a transaction graph.
type Vertex struct {
	Idx   int
	Label int
}

// Edge is one physical undirected edge between two vertex indices.
type Edge struct {
	Idx    int
	V1, V2 int
	Label  int
}

// ID names one physical edge uniquely across the whole database: the pair
// (gid, edge-reference) from SPEC_FULL.md's data model.
type ID struct {
	Gid  int
	Edge int
}

func (id ID) String() string {
	return fmt.Sprintf("(g%d,e%d)", id.Gid, id.Edge)
}

// Graph is one immutable transaction graph. Callers build it with
// AddVertex/AddEdge and any pruning mutators, then call Precompute exactly
// once; every read operation after that is safe to call concurrently since
// nothing mutates again.
type Graph struct {
	Gid int
	V   []Vertex
	E   []Edge

	adj      [][]int       // vertex idx -> ordered list of incident edge idx
	labelIdx map[int][]int // label -> ordered vertex idx

	ready bool
}

// New returns an empty graph with the given transaction id.
func New(gid int) *Graph {
	return &Graph{Gid: gid}
}

// AddVertex appends a new vertex and returns its index.
func (g *Graph) AddVertex(label int) int {
	idx := len(g.V)
	g.V = append(g.V, Vertex{Idx: idx, Label: label})
	return idx
}

// AddEdge appends a new physical edge between two existing vertex indices.
func (g *Graph) AddEdge(v1, v2, label int) error {
	if v1 == v2 {
		return errors.Errorf("self loops are not supported (gid %d, vertex %d)", g.Gid, v1)
	}
	if v1 < 0 || v1 >= len(g.V) || v2 < 0 || v2 >= len(g.V) {
		return errors.Errorf("edge (%d,%d) references a vertex that does not exist in graph %d", v1, v2, g.Gid)
	}
	idx := len(g.E)
	g.E = append(g.E, Edge{Idx: idx, V1: v1, V2: v2, Label: label})
	return nil
}

// RemoveVertices deletes every vertex for which keep returns false,
// renumbering the survivors and dropping any edge touching a removed
// vertex. Must be called before Precompute; returns the number removed.
func (g *Graph) RemoveVertices(keep func(label int) bool) int {
	remap := make([]int, len(g.V))
	newV := make([]Vertex, 0, len(g.V))
	removed := 0
	for _, v := range g.V {
		if keep(v.Label) {
			remap[v.Idx] = len(newV)
			newV = append(newV, Vertex{Idx: len(newV), Label: v.Label})
		} else {
			remap[v.Idx] = -1
			removed++
		}
	}
	newE := make([]Edge, 0, len(g.E))
	for _, e := range g.E {
		v1, v2 := remap[e.V1], remap[e.V2]
		if v1 == -1 || v2 == -1 {
			continue
		}
		newE = append(newE, Edge{Idx: len(newE), V1: v1, V2: v2, Label: e.Label})
	}
	g.V = newV
	g.E = newE
	return removed
}

// RemoveEdges deletes every edge for which keep returns false, reindexing
// the survivors. Must be called before Precompute; returns the number
// removed.
func (g *Graph) RemoveEdges(keep func(e Edge) bool) int {
	newE := make([]Edge, 0, len(g.E))
	removed := 0
	for _, e := range g.E {
		if keep(e) {
			e.Idx = len(newE)
			newE = append(newE, e)
		} else {
			removed++
		}
	}
	g.E = newE
	return removed
}

// Precompute builds the neighbor and label indices. The graph must not be
// mutated again afterward.
func (g *Graph) Precompute() {
	g.adj = make([][]int, len(g.V))
	for i := range g.E {
		e := &g.E[i]
		g.adj[e.V1] = append(g.adj[e.V1], i)
		g.adj[e.V2] = append(g.adj[e.V2], i)
	}
	g.labelIdx = make(map[int][]int)
	for _, v := range g.V {
		g.labelIdx[v.Label] = append(g.labelIdx[v.Label], v.Idx)
	}
	g.ready = true
}

// Label returns the label of vertex v.
func (g *Graph) Label(v int) int {
	return g.V[v].Label
}

// Neighbors returns the ordered list of vertices adjacent to v.
func (g *Graph) Neighbors(v int) []int {
	edges := g.adj[v]
	out := make([]int, len(edges))
	for i, eidx := range edges {
		e := &g.E[eidx]
		if e.V1 == v {
			out[i] = e.V2
		} else {
			out[i] = e.V1
		}
	}
	return out
}

// NeighborEdges returns the ordered list of edge indices incident to v.
func (g *Graph) NeighborEdges(v int) []int {
	return g.adj[v]
}

func (g *Graph) edgeBetween(u, v int) (int, bool) {
	for _, eidx := range g.adj[u] {
		e := &g.E[eidx]
		if (e.V1 == u && e.V2 == v) || (e.V1 == v && e.V2 == u) {
			return eidx, true
		}
	}
	return -1, false
}

// IsNeighbor reports whether u and v are directly connected.
func (g *Graph) IsNeighbor(u, v int) bool {
	_, has := g.edgeBetween(u, v)
	return has
}

// EdgeLabel returns the label of the edge between u and v, if any.
func (g *Graph) EdgeLabel(u, v int) (int, bool) {
	eidx, has := g.edgeBetween(u, v)
	if !has {
		return 0, false
	}
	return g.E[eidx].Label, true
}

// EdgeIdx returns the edge index connecting u and v, if any.
func (g *Graph) EdgeIdx(u, v int) (int, bool) {
	return g.edgeBetween(u, v)
}

// VerticesWithLabel returns the ordered list of vertices carrying label.
func (g *Graph) VerticesWithLabel(label int) []int {
	return g.labelIdx[label]
}

// EdgeID returns the stable identity of edge eidx in this graph.
func (g *Graph) EdgeID(eidx int) ID {
	return ID{Gid: g.Gid, Edge: eidx}
}

// NumEdges returns the number of physical edges remaining in this graph.
func (g *Graph) NumEdges() int { return len(g.E) }

// NumVertices returns the number of vertices remaining in this graph.
func (g *Graph) NumVertices() int { return len(g.V) }

package graph

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Database is the full set of transaction graphs mined in one run. Graphs
// are loaded once and, after the pruning phase, never mutated again.
type Database struct {
	Graphs []*Graph

	byGid *hashtable.LinearHash
}

// Index builds the gid lookup table. Call once after pruning finishes and
// before mining begins.
//
// Grounded on types/digraph/loader.go's vids table (hashtable.NewLinearHash,
// keyed by types.Int, storing one *goiso.Vertex per id): the same shape here
// maps a transaction graph id to its *Graph.
func (db *Database) Index() {
	db.byGid = hashtable.NewLinearHash()
	for _, g := range db.Graphs {
		db.byGid.Put(types.Int(g.Gid), g)
	}
}

// ByGid returns the graph with the given transaction id, or nil.
func (db *Database) ByGid(gid int) *Graph {
	v, err := db.byGid.Get(types.Int(gid))
	if err != nil {
		return nil
	}
	return v.(*Graph)
}

// Precompute calls Graph.Precompute on every graph in the database.
func (db *Database) Precompute() {
	for _, g := range db.Graphs {
		g.Precompute()
	}
}

// GraphIDs returns the ascending list of every transaction graph id.
//
// Grounded on the same set.SortedSet dedup-and-order idiom as
// projection.Build (types/digraph/support.go's subgraphVertexSets).
func (db *Database) GraphIDs() []int {
	ids := set.NewSortedSet(len(db.Graphs))
	for _, g := range db.Graphs {
		ids.Add(types.Int(g.Gid))
	}
	out := make([]int, 0, len(db.Graphs))
	for item, next := ids.Items()(); next != nil; item, next = next() {
		out = append(out, int(item.(types.Int)))
	}
	return out
}

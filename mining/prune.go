package mining

import (
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/pruning"
)

// pruneVertices deletes every vertex whose label is not frequent (appears
// in fewer than minSup distinct transaction graphs), per SPEC_FULL.md
// §4.8 step 2.
func pruneVertices(db *graph.Database, minSup int, stats *Stats) {
	graphsWithLabel := make(map[int]map[int]bool)
	for _, g := range db.Graphs {
		for _, v := range g.V {
			if graphsWithLabel[v.Label] == nil {
				graphsWithLabel[v.Label] = make(map[int]bool)
			}
			graphsWithLabel[v.Label][g.Gid] = true
		}
	}
	frequent := make(map[int]bool, len(graphsWithLabel))
	for label, gids := range graphsWithLabel {
		if len(gids) >= minSup {
			frequent[label] = true
		}
	}
	for _, g := range db.Graphs {
		stats.InfrequentVerticesRemoved += g.RemoveVertices(func(label int) bool {
			return frequent[label]
		})
	}
}

// pruneEdges drops every edge whose endpoint-label pair or own edge label
// is infrequent, per SPEC_FULL.md §4.8 step 3. Both counts are against
// the vertex-pruned database, matching the Java source's ordering (vertex
// pruning, then edge-level pruning against the survivors).
func pruneEdges(db *graph.Database, minSup int, stats *Stats) {
	pm := pruning.NewLabelPairMatrix()
	edgeLabelGraphs := make(map[int]map[int]bool)
	for _, g := range db.Graphs {
		for _, e := range g.E {
			l1, l2 := g.Label(e.V1), g.Label(e.V2)
			pm.Observe(g.Gid, l1, l2)
			if edgeLabelGraphs[e.Label] == nil {
				edgeLabelGraphs[e.Label] = make(map[int]bool)
			}
			edgeLabelGraphs[e.Label][g.Gid] = true
		}
	}
	edgeLabelFrequent := make(map[int]bool, len(edgeLabelGraphs))
	for label, gids := range edgeLabelGraphs {
		if len(gids) >= minSup {
			edgeLabelFrequent[label] = true
		}
	}

	for _, g := range db.Graphs {
		gg := g
		gg.RemoveEdges(func(e graph.Edge) bool {
			l1, l2 := gg.Label(e.V1), gg.Label(e.V2)
			if !pm.Frequent(l1, l2, minSup) {
				stats.InfrequentVertexPairsRemoved++
				return false
			}
			if !edgeLabelFrequent[e.Label] {
				stats.EdgesRemovedByLabel++
				return false
			}
			return true
		})
	}
}

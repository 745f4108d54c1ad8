package mining

import (
	"sort"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/extension"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

// singleVertexLabelSentinel marks a Code as a one-vertex closed pattern
// rather than a true empty code or a real edge: the Code holds exactly one
// ExtendedEdge with this edge label, V1 == V2 == 0, and L1 == L2 == the
// vertex label (SPEC_FULL.md §6.2: "edge label sentinel -1").
const singleVertexLabelSentinel = -1

// SingleVertexLabel reports whether code is a one-vertex closed pattern
// and, if so, the vertex label it carries.
func SingleVertexLabel(code *dfscode.Code) (int, bool) {
	if len(code.Edges) != 1 {
		return 0, false
	}
	e := code.Edges[0]
	if e.Le != singleVertexLabelSentinel {
		return 0, false
	}
	return e.L1, true
}

// singleVertexPatterns emits one-vertex closed patterns (SPEC_FULL.md §4.8
// step 5): a label L is one-vertex closed iff no frequent extension from
// the empty code projects onto every occurrence of L, where "every
// occurrence" is compared by total vertex count rather than occurrence-set
// identity (SPEC_FULL.md §9 open question).
func singleVertexPatterns(db *graph.Database, arena *projection.Arena, minSup int) []*closure.Pattern {
	totalOccurrences := make(map[int]int)
	graphsWithLabel := make(map[int]map[int]bool)
	for _, g := range db.Graphs {
		for _, v := range g.V {
			totalOccurrences[v.Label]++
			if graphsWithLabel[v.Label] == nil {
				graphsWithLabel[v.Label] = make(map[int]bool)
			}
			graphsWithLabel[v.Label][g.Gid] = true
		}
	}

	ext := extension.Extend(db, dfscode.New(), nil, arena)
	coveredOccurrences := make(map[int]int)
	for ee, set := range ext {
		if set.Support() < minSup {
			continue
		}
		n := len(set.Nodes)
		if ee.L1 == ee.L2 {
			coveredOccurrences[ee.L1] += 2 * n
		} else {
			coveredOccurrences[ee.L1] += n
			coveredOccurrences[ee.L2] += n
		}
	}

	labels := make([]int, 0, len(graphsWithLabel))
	for label := range graphsWithLabel {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	var patterns []*closure.Pattern
	for _, label := range labels {
		gids := graphsWithLabel[label]
		if len(gids) < minSup {
			continue
		}
		if coveredOccurrences[label] == totalOccurrences[label] {
			continue
		}
		sortedGids := make([]int, 0, len(gids))
		for gid := range gids {
			sortedGids = append(sortedGids, gid)
		}
		sort.Ints(sortedGids)
		code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 0, L1: label, L2: label, Le: singleVertexLabelSentinel})
		patterns = append(patterns, &closure.Pattern{
			Code:     code,
			GraphIDs: sortedGids,
			Support:  len(sortedGids),
		})
	}
	return patterns
}

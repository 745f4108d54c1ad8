package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/extension"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

// singleEdgeDB builds one transaction graph holding a single A-A edge
// (label 0), too small for any of the five failure cases to find a vacant
// extension: there is no third vertex or alternate edge to discover.
func singleEdgeDB() (*graph.Database, *projection.Arena, *projection.Set, *dfscode.Code) {
	db := &graph.Database{}
	g := graph.New(0)
	g.AddVertex(0)
	g.AddVertex(0)
	g.AddEdge(0, 1, 0)
	db.Graphs = append(db.Graphs, g)
	db.Index()
	db.Precompute()

	arena := projection.NewArena()
	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 0, L2: 0, Le: 0})
	tail := arena.Add(projection.Node{Edge: g.EdgeID(0), Gid: 0, Prev: -1})
	pi := projection.Build(arena, []int{tail})
	return db, arena, pi, code
}

func TestAnalyzeNoFailureOnMinimalGraph(t *testing.T) {
	x := assert.New(t)
	db, arena, pi, code := singleEdgeDB()
	h := NewHandler(db, arena, 1)
	ext := extension.Extend(db, code, pi, arena)

	x.False(h.Analyze(code, pi, ext), "a single edge with no further neighbors cannot trigger any failure case")
	x.False(h.Detect(code.Edges), "Analyze found nothing, so Detect should not report this code as unsafe")
}

func TestDetectAfterRecord(t *testing.T) {
	x := assert.New(t)
	db, arena, _, code := singleEdgeDB()
	h := NewHandler(db, arena, 1)
	h.record(code)

	x.True(h.Detect(code.Edges), "a recorded code should be detected")
	other := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 7, L2: 7, Le: 7})
	x.False(h.Detect(other.Edges), "an unrelated code should not be detected")
}

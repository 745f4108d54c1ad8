package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

func TestPatternRendersEdgesAndLabels(t *testing.T) {
	x := assert.New(t)
	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 3, L2: 4, Le: 7})
	p := &closure.Pattern{Code: code}
	out := Pattern(p)

	x.True(strings.HasPrefix(out, "digraph pattern {"), "expected a digraph header, got:\n%s", out)
	for _, want := range []string{`0 [label="3"]`, `1 [label="4"]`, `0 -> 1 [label="7", dir=none]`} {
		x.True(strings.Contains(out, want), "output missing %q; full output:\n%s", want, out)
	}
}

func TestPatternSingleVertex(t *testing.T) {
	x := assert.New(t)
	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 0, L1: 5, L2: 5, Le: -1})
	p := &closure.Pattern{Code: code}
	out := Pattern(p)
	x.True(strings.Contains(out, `0 [label="5"]`), "expected a single labeled node, got:\n%s", out)
	x.False(strings.Contains(out, "->"), "a single vertex pattern should have no edges, got:\n%s", out)
}

func TestEmbeddingRendersMatchedVertices(t *testing.T) {
	x := assert.New(t)
	db := &graph.Database{}
	g := graph.New(0)
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(0, 1, 9)
	db.Graphs = append(db.Graphs, g)
	db.Index()
	db.Precompute()

	arena := projection.NewArena()
	tail := arena.Add(projection.Node{Edge: g.EdgeID(0), Gid: 0, Prev: -1})

	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 1, L2: 2, Le: 9})
	p := &closure.Pattern{Code: code}

	out := Embedding(db, p, arena, tail)
	x.True(strings.Contains(out, "digraph embedding_g0"), "expected a per-graph digraph header, got:\n%s", out)
	x.True(strings.Contains(out, `0 [label="1"]`) && strings.Contains(out, `1 [label="2"]`),
		"expected both matched vertices labeled, got:\n%s", out)
}

func TestEmbeddingSingleVertexReturnsEmpty(t *testing.T) {
	x := assert.New(t)
	db := &graph.Database{}
	arena := projection.NewArena()
	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 0, L1: 5, L2: 5, Le: -1})
	p := &closure.Pattern{Code: code}
	x.Equal("", Embedding(db, p, arena, 0), "a single vertex pattern has no reconstructible embedding")
}

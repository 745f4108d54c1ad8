package mining

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/graph"
)

func mustParse(t *testing.T, text string) *graph.Database {
	t.Helper()
	db, err := graph.ReadDatabase(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return db
}

func TestRunEmptyDatabase(t *testing.T) {
	x := assert.New(t)
	db := mustParse(t, "")
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 10})
	x.Nil(err)
	x.Len(res.Patterns, 0, "an empty database should produce no patterns")
}

func TestRunMaxEdgesZero(t *testing.T) {
	x := assert.New(t)
	db := mustParse(t, "t # 0\nv 0 1\nv 1 1\ne 0 1 1\n")
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 0})
	x.Nil(err)
	x.Len(res.Patterns, 0, "maxEdges=0 should produce no patterns")
}

func TestRunInvalidConfig(t *testing.T) {
	x := assert.New(t)
	db := mustParse(t, "")
	_, err := Run(db, Config{MinSupport: 0, MaxEdges: 10})
	x.Error(err, "minSupport=0 should be rejected")
	_, err = Run(db, Config{MinSupport: 1, MaxEdges: -1})
	x.Error(err, "negative maxEdges should be rejected")
	_, err = Run(db, Config{MinSupport: 1, MaxEdges: 10, Parallelism: 2})
	x.Error(err, "parallelism > 1 should be rejected")
}

// twoClosedTriangles matches spec.md §8 scenario S1: two transactions, each
// an A-A-A triangle with uniform edge label 0, MinSupport 1.0 (minSup = 2,
// both graphs).
// Only the full triangle is closed: the single-edge and two-edge-path
// subpatterns all share the triangle's support and so are not closed.
func twoClosedTriangles() string {
	one := "v 0 0\nv 1 0\nv 2 0\ne 0 1 0\ne 1 2 0\ne 2 0 0\n"
	return "t # 0\n" + one + "t # 1\n" + one
}

func TestRunTwoTrianglesProducesOnlyTheClosedTriangle(t *testing.T) {
	x := assert.New(t)
	db := mustParse(t, twoClosedTriangles())
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 10})
	x.Nil(err)
	if !x.Len(res.Patterns, 1, "expected exactly one closed pattern (the full triangle)") {
		return
	}
	p := res.Patterns[0]
	x.Len(p.Code.Edges, 3, "the closed pattern should have 3 edges")
	x.Equal(2, p.Support)
}

func TestRunMinSupportAboveAchievable(t *testing.T) {
	x := assert.New(t)
	// Two structurally different single-transaction graphs sharing no
	// common subgraph: requiring support in both graphs (minSupport=1.0)
	// should yield no pattern.
	text := "t # 0\nv 0 1\nv 1 2\ne 0 1 5\nt # 1\nv 0 3\nv 1 4\ne 0 1 6\n"
	db := mustParse(t, text)
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 10})
	x.Nil(err)
	x.Len(res.Patterns, 0, "no subgraph is common to both graphs")
}

func TestRunWithCacheDir(t *testing.T) {
	x := assert.New(t)
	db := mustParse(t, twoClosedTriangles())
	dir := t.TempDir()
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 10, CacheDir: dir})
	x.Nil(err)
	x.Len(res.Patterns, 1, "disk-backed closure index should find the same single closed pattern")
}

func TestRunSingleVertexPatterns(t *testing.T) {
	x := assert.New(t)
	// A graph with an isolated, infrequent-elsewhere vertex label (label 9,
	// no edges) should surface as a one-vertex closed pattern when
	// OutputSingleVertices is set, since it has no frequent extension at
	// all covering it.
	text := "t # 0\nv 0 9\nt # 1\nv 0 9\n"
	db := mustParse(t, text)
	res, err := Run(db, Config{MinSupport: 1, MaxEdges: 10, OutputSingleVertices: true})
	x.Nil(err)
	found := false
	for _, p := range res.Patterns {
		if label, ok := SingleVertexLabel(p.Code); ok && label == 9 {
			found = true
		}
	}
	x.True(found, "expected a single-vertex closed pattern for label 9")
}

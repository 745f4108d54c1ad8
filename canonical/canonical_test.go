package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/dfscode"
)

func TestTriangleCanonical(t *testing.T) {
	x := assert.New(t)
	// 0-A-1-A-2-A-0, each edge label 0: this is the lexicographically
	// minimal encoding of an A-A-A triangle (every vertex/edge label 0,
	// so any relabeling of vertex order reproduces the same code).
	c := dfscode.New()
	c = c.Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 0, L2: 0, Le: 0})
	c = c.Append(dfscode.ExtendedEdge{V1: 1, V2: 2, L1: 0, L2: 0, Le: 0})
	c = c.Append(dfscode.ExtendedEdge{V1: 2, V2: 0, L1: 0, L2: 0, Le: 0})
	x.True(IsCanonical(c), "uniformly labeled triangle code should be canonical")
}

func TestNonCanonicalPathOrdering(t *testing.T) {
	x := assert.New(t)
	// B-A-A path where the code grows from the "wrong" end (B first)
	// is not the minimum code: starting from an A endpoint sorts first
	// since forward edges compare ascending on (L1, Le, L2).
	c := dfscode.New()
	c = c.Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 1, L2: 0, Le: 0}) // B -> A
	c = c.Append(dfscode.ExtendedEdge{V1: 1, V2: 2, L1: 0, L2: 0, Le: 0}) // A -> A
	x.False(IsCanonical(c), "starting the traversal at the B endpoint should not be canonical when an A endpoint exists")
}

func TestSingleEdgeCanonical(t *testing.T) {
	x := assert.New(t)
	c := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 2, L2: 3, Le: 0})
	x.True(IsCanonical(c), "a single edge code is always its own minimum code")
}

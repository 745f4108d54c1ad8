package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadDotDatabaseTwoGraphs(t *testing.T) {
	x := assert.New(t)
	text := `digraph g0 {
  0 [label="1"];
  1 [label="2"];
  0 -> 1 [label="9"];
}
digraph g1 {
  0 [label="3"];
}
`
	db, err := ReadDotDatabase([]byte(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	db.Precompute()
	x.Len(db.Graphs, 2)

	g0 := db.Graphs[0]
	x.Len(g0.V, 2)
	x.Len(g0.E, 1)
	x.Equal(1, g0.Label(0))
	x.Equal(2, g0.Label(1))
	l, _ := g0.EdgeLabel(0, 1)
	x.Equal(9, l)

	g1 := db.Graphs[1]
	x.Len(g1.V, 1)
	x.Equal(3, g1.Label(0))
}

func TestParseLabel(t *testing.T) {
	x := assert.New(t)
	cases := map[string]int{"0": 0, "42": 42, "-7": -7}
	for s, want := range cases {
		got, err := parseLabel(s)
		x.NoError(err, "parseLabel(%q)", s)
		x.Equal(want, got, "parseLabel(%q)", s)
	}
	_, err := parseLabel("")
	x.Error(err, "empty label should error")
	_, err = parseLabel("abc")
	x.Error(err, "non-numeric label should error")
}

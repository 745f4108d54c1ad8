package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadDatabaseBasic(t *testing.T) {
	x := assert.New(t)
	text := `t # 0
v 0 1
v 1 2
e 0 1 9
t # 1
v 0 1
v 1 2
v 2 1
e 0 1 9
e 1 2 9
`
	db, err := ReadDatabase(strings.NewReader(text))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x.Len(db.Graphs, 2)
	x.Len(db.Graphs[0].V, 2)
	x.Len(db.Graphs[0].E, 1)
	x.Len(db.Graphs[1].V, 3)
	x.Len(db.Graphs[1].E, 2)
}

func TestReadDatabaseDuplicateVertex(t *testing.T) {
	x := assert.New(t)
	text := "t # 0\nv 0 1\nv 0 2\n"
	_, err := ReadDatabase(strings.NewReader(text))
	x.Error(err, "expected a parse error for a duplicate vertex id")
}

func TestReadDatabaseForwardReference(t *testing.T) {
	x := assert.New(t)
	text := "t # 0\nv 0 1\ne 0 5 1\n"
	_, err := ReadDatabase(strings.NewReader(text))
	x.Error(err, "expected a parse error for an edge referencing an unknown vertex")
}

func TestReadDatabaseDuplicateEdge(t *testing.T) {
	x := assert.New(t)
	text := "t # 0\nv 0 1\nv 1 2\ne 0 1 9\ne 1 0 9\n"
	_, err := ReadDatabase(strings.NewReader(text))
	x.Error(err, "expected a parse error for a duplicate edge")
}

func TestReadDatabaseMalformedHeader(t *testing.T) {
	x := assert.New(t)
	text := "t 0\n"
	_, err := ReadDatabase(strings.NewReader(text))
	x.Error(err, "expected a parse error for a malformed t header")
}

func TestReadDatabaseEmpty(t *testing.T) {
	x := assert.New(t)
	db, err := ReadDatabase(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x.Len(db.Graphs, 0)
}

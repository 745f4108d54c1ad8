package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/mining"
)

func TestWriteResultTriangle(t *testing.T) {
	x := assert.New(t)
	code := dfscode.New()
	code = code.Append(dfscode.ExtendedEdge{V1: 0, V2: 1, L1: 0, L2: 0, Le: 0})
	code = code.Append(dfscode.ExtendedEdge{V1: 1, V2: 2, L1: 0, L2: 0, Le: 0})
	code = code.Append(dfscode.ExtendedEdge{V1: 2, V2: 0, L1: 0, L2: 0, Le: 0})
	p := &closure.Pattern{Code: code, GraphIDs: []int{0, 1}, Support: 2}

	result := &mining.Result{Patterns: []*closure.Pattern{p}}
	var b strings.Builder
	x.Nil(WriteResult(&b, result, true))

	out := b.String()
	wantLines := []string{
		"t # 0 * 2",
		"v 0 0",
		"v 1 0",
		"v 2 0",
		"e 0 1 0",
		"e 1 2 0",
		"e 2 0 0",
		"x 0 1",
	}
	for _, want := range wantLines {
		x.True(strings.Contains(out, want), "output missing line %q; full output:\n%s", want, out)
	}
}

func TestWriteResultSingleVertex(t *testing.T) {
	x := assert.New(t)
	code := dfscode.New().Append(dfscode.ExtendedEdge{V1: 0, V2: 0, L1: 9, L2: 9, Le: -1})
	p := &closure.Pattern{Code: code, GraphIDs: []int{0}, Support: 1}
	result := &mining.Result{Patterns: []*closure.Pattern{p}}

	var b strings.Builder
	x.Nil(WriteResult(&b, result, false))
	out := b.String()
	x.True(strings.Contains(out, "v 0 9"), "single vertex pattern should emit 'v 0 9', got:\n%s", out)
	x.False(strings.Contains(out, "e "), "single vertex pattern should not emit any edge line, got:\n%s", out)
	x.False(strings.Contains(out, "x"), "outputGraphIDs=false should not emit an x line, got:\n%s", out)
}

func TestWriteResultEmpty(t *testing.T) {
	x := assert.New(t)
	result := &mining.Result{}
	var b strings.Builder
	x.Nil(WriteResult(&b, result, true))
	x.Equal("", b.String(), "no patterns should produce no output")
}

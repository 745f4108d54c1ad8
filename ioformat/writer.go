// Package ioformat implements the result-record writer (SPEC_FULL.md §6.2):
// the line-oriented `t # <i> * <support>` / `v` / `e` / `x` output format,
// the counterpart to graph.ReadDatabase's input format.
//
// Grounded on the teacher's types/graph/fmt.go line-oriented vertex/edge
// formatter idiom, generalized from that package's single-graph dump to
// one record per closed pattern.
package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/mining"
)

// WriteResult writes every pattern in result in order (callers should pass
// patterns already sorted ascending by support, as mining.Run returns
// them) to w, following SPEC_FULL.md §6.2 exactly.
func WriteResult(w io.Writer, result *mining.Result, outputGraphIDs bool) error {
	bw := bufio.NewWriter(w)
	for i, p := range result.Patterns {
		if err := writePattern(bw, i, p, outputGraphIDs); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writePattern(w *bufio.Writer, i int, p *closure.Pattern, outputGraphIDs bool) error {
	if _, err := fmt.Fprintf(w, "t # %d * %d\n", i, p.Support); err != nil {
		return err
	}

	if label, ok := mining.SingleVertexLabel(p.Code); ok {
		if _, err := fmt.Fprintf(w, "v 0 %d\n", label); err != nil {
			return err
		}
	} else {
		vertexLabels := patternVertexLabels(p.Code)
		for v, label := range vertexLabels {
			if _, err := fmt.Fprintf(w, "v %d %d\n", v, label); err != nil {
				return err
			}
		}
		for _, e := range p.Code.Edges {
			if _, err := fmt.Fprintf(w, "e %d %d %d\n", e.V1, e.V2, e.Le); err != nil {
				return err
			}
		}
	}

	if outputGraphIDs {
		if _, err := w.WriteString("x"); err != nil {
			return err
		}
		for _, gid := range p.GraphIDs {
			if _, err := fmt.Fprintf(w, " %d", gid); err != nil {
				return err
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\n")
	return err
}

// patternVertexLabels derives the vertex-label table (index -> label)
// implied by a multi-edge code's steps.
func patternVertexLabels(code *dfscode.Code) []int {
	n := code.NumVertices()
	labels := make([]int, n)
	for _, e := range code.Edges {
		labels[e.V1] = e.L1
		labels[e.V2] = e.L2
	}
	return labels
}

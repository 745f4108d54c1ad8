// Package dot renders a closed pattern and its embeddings as DOT text
// (spec.md §1's "DOT visualization", an out-of-core-scope I/O
// collaborator). Rendering the pattern itself as a small standalone
// digraph, plus one digraph per occurrence with the matched transaction
// vertices, is grounded on
// types/digraph/subgraph/embedding.go's Embedding.Dotty: that method
// hand-formats DOT text with fmt.Sprintf rather than a builder API,
// because github.com/timtadh/dot (wired in graph/dotloader.go) is a
// StreamParse reader, not a writer — the pack has no DOT-emission
// library, so this keeps the teacher's own hand-rolled idiom for output.
package dot

import (
	"fmt"
	"strings"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/extension"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/mining"
	"github.com/timtadh/cgspan/projection"
)

func safe(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// Pattern renders p's own DFS code as a standalone digraph, one node per
// pattern vertex labeled with its vertex label, one edge per code step
// labeled with its edge label.
func Pattern(p *closure.Pattern) string {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph pattern {\n")
	if label, ok := mining.SingleVertexLabel(p.Code); ok {
		fmt.Fprintf(&b, "  0 [label=\"%s\"];\n", safe(fmt.Sprint(label)))
		b.WriteString("}\n")
		return b.String()
	}
	labels := make([]int, p.Code.NumVertices())
	for _, e := range p.Code.Edges {
		labels[e.V1] = e.L1
		labels[e.V2] = e.L2
	}
	for v, l := range labels {
		fmt.Fprintf(&b, "  %d [label=\"%s\"];\n", v, safe(fmt.Sprint(l)))
	}
	for _, e := range p.Code.Edges {
		fmt.Fprintf(&b, "  %d -> %d [label=\"%s\", dir=none];\n", e.V1, e.V2, safe(fmt.Sprint(e.Le)))
	}
	b.WriteString("}\n")
	return b.String()
}

// Embedding renders one occurrence of p (identified by its arena tail
// index) as a digraph over the transaction graph's own vertex ids, so the
// output can be diffed visually against the source graph.
func Embedding(db *graph.Database, p *closure.Pattern, arena *projection.Arena, tailIdx int) string {
	code := p.Code
	if _, ok := mining.SingleVertexLabel(code); ok {
		return ""
	}
	emb := extension.Reconstruct(db, code, arena, tailIdx)
	g := db.ByGid(emb.Gid)

	var b strings.Builder
	fmt.Fprintf(&b, "digraph embedding_g%d {\n", emb.Gid)
	for _, gv := range emb.Iso {
		if gv == -1 {
			continue
		}
		fmt.Fprintf(&b, "  %d [label=\"%s\"];\n", gv, safe(fmt.Sprint(g.Label(gv))))
	}
	for _, e := range code.Edges {
		gv1, gv2 := emb.Iso[e.V1], emb.Iso[e.V2]
		fmt.Fprintf(&b, "  %d -> %d [label=\"%s\", dir=none];\n", gv1, gv2, safe(fmt.Sprint(e.Le)))
	}
	b.WriteString("}\n")
	return b.String()
}

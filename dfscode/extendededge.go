// Package dfscode implements the DFS code (SPEC_FULL.md, "DFS code"): the
// ordered sequence of extended edges that defines a canonical spanning
// traversal of a connected pattern, with the rightmost-path derivation and
// lexicographic comparator gSpan-style canonical enumeration relies on.
package dfscode

import "fmt"

// ExtendedEdge is one step (v1,v2,L1,L2,Le) in a DFS code. If v1<v2 the
// step is forward (discovers vertex v2); if v1>v2 it is backward (closes a
// cycle to an already-numbered vertex).
type ExtendedEdge struct {
	V1, V2 int
	L1, L2 int
	Le     int
}

// Backward reports whether this step closes a cycle rather than
// discovering a new vertex.
func (e ExtendedEdge) Backward() bool {
	return e.V1 > e.V2
}

// Equal reports whether all five fields of e and o agree.
func (e ExtendedEdge) Equal(o ExtendedEdge) bool {
	return e.V1 == o.V1 && e.V2 == o.V2 && e.L1 == o.L1 && e.L2 == o.L2 && e.Le == o.Le
}

// Less defines the strict total order over extended edges used to sort
// sibling extensions and to regenerate minimum codes (SPEC_FULL.md §4.2).
// It follows the standard gSpan rightmost-path extension order: among
// extensions of the same code, every backward edge sorts before every
// forward edge; backward edges are ordered by ascending target vertex
// (ties broken by edge label); forward edges are ordered by descending
// source vertex, i.e. extensions from vertices nearer the rightmost end of
// the path come first (ties broken lexicographically on (L1, Le, L2)).
func (e ExtendedEdge) Less(o ExtendedEdge) bool {
	eBack, oBack := e.Backward(), o.Backward()
	switch {
	case eBack && oBack:
		if e.V2 != o.V2 {
			return e.V2 < o.V2
		}
		return e.Le < o.Le
	case !eBack && !oBack:
		if e.V1 != o.V1 {
			return e.V1 > o.V1
		}
		if e.L1 != o.L1 {
			return e.L1 < o.L1
		}
		if e.Le != o.Le {
			return e.Le < o.Le
		}
		return e.L2 < o.L2
	case eBack && !oBack:
		return e.V1 < o.V2
	default: // !eBack && oBack
		return e.V2 <= o.V1
	}
}

func (e ExtendedEdge) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d)", e.V1, e.V2, e.L1, e.L2, e.Le)
}

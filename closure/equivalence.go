package closure

import "github.com/timtadh/cgspan/projection"

// HasEquivalentOccurrence is the inline check used during recursion
// (SPEC_FULL.md §4.5): it decides whether extending parent by one edge into
// child preserved every one of parent's occurrences, which is the condition
// under which parent cannot be closed.
//
// Ported from Projected.hasEquivalentOccurrence: rather than an isomorphism
// search, this is a pure identity check over the projection chains — every
// parent occurrence must be the immediate predecessor (Prev) of some child
// occurrence, since child's chains were built by appending one step onto a
// parent chain.
func HasEquivalentOccurrence(arena *projection.Arena, parent, child *projection.Set) bool {
	if len(parent.Nodes) > len(child.Nodes) {
		return false
	}
	if !sameGraphIDs(parent.GraphIDs, child.GraphIDs) {
		return false
	}
	childPrev := make(map[int]bool, len(child.Nodes))
	for _, idx := range child.Nodes {
		childPrev[arena.Node(idx).Prev] = true
	}
	for _, idx := range parent.Nodes {
		if !childPrev[idx] {
			return false
		}
	}
	return true
}

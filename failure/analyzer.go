// Package failure implements the early-termination-failure analyzer
// (SPEC_FULL.md "early-termination-failure analyzer"): five structural
// checks that catch a frequent code whose early termination (via the
// closure hash index) would have hidden a closed pattern reachable only
// through a different canonical growth order, plus the prefix trie that
// remembers which DFS codes have already been flagged.
//
// Ported from EarlyTerminationFailureHandler.java in original_source/,
// the cgSpan paper's reference implementation (Shaul Zevin, "cgSpan:
// Closed Graph-Based Substructure Pattern Mining"). The five cases keep
// their original numbering and docstrings; only the occurrence-lookup
// plumbing changes, since this module's projection.Arena already exposes
// a code-vertex -> graph-vertex mapping per occurrence (extension.Embedding)
// where the Java PDFS had to walk its chain and rebuild that map on demand.
package failure

import (
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/extension"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

// Handler analyzes frequent codes for early-termination failure and
// remembers, in a prefix trie, every code found to cause one of the five
// known failure cases.
type Handler struct {
	db     *graph.Database
	arena  *projection.Arena
	minSup int
	t      *trie
}

// NewHandler returns a handler for a mining run against db with the given
// minimum support (as an absolute count of transaction graphs).
func NewHandler(db *graph.Database, arena *projection.Arena, minSup int) *Handler {
	return &Handler{db: db, arena: arena, minSup: minSup, t: newTrie()}
}

// Analyze examines code, its projected set, and its rightmost-path
// extensions for the five early-termination-failure cases, recording code
// in the trie as soon as one case matches. It reports whether any case
// matched, for advisory statistics only (SPEC_FULL.md §7: stats never
// affect results).
func (h *Handler) Analyze(code *dfscode.Code, pi *projection.Set, extensions map[dfscode.ExtendedEdge]*projection.Set) bool {
	rmPathEdges := rightMostPathEdges(code)
	forwardExt := extractForwardExtensions(code, extensions)

	if h.analyzeCase1(code, pi, rmPathEdges, forwardExt) {
		return true
	}
	if h.analyzeCase2(code, pi, rmPathEdges, forwardExt) {
		return true
	}
	if h.analyzeCase3(code, pi, rmPathEdges, forwardExt) {
		return true
	}
	if h.analyzeCase4(code, pi, rmPathEdges) {
		return true
	}
	if h.analyzeCase5(code, pi) {
		return true
	}
	return false
}

// Detect reports whether edges is a prefix of some code previously
// recorded as causing early-termination failure: the miner must not rely
// on early termination for it.
func (h *Handler) Detect(edges []dfscode.ExtendedEdge) bool {
	return h.t.search(edges)
}

func (h *Handler) record(code *dfscode.Code) {
	h.t.insert(code.Edges)
}

// rightMostPathEdges returns the step indices realizing the rightmost
// path, ordered closest-to-rightmost-vertex first.
func rightMostPathEdges(code *dfscode.Code) []int {
	path := code.RightMostPath()
	if len(path) < 2 {
		return nil
	}
	var result []int
	pi := 0
	for i, e := range code.Edges {
		if pi+1 >= len(path) {
			break
		}
		if e.V1 == path[pi] && e.V2 == path[pi+1] {
			result = append(result, i)
			pi++
		}
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// extractForwardExtensions keeps only the extensions consistent with the
// rightmost-path extension order's forward-growth rules: pure growth from
// the rightmost vertex, or growth from an earlier vertex that could not
// have been chosen ahead of an existing code edge from that same vertex.
func extractForwardExtensions(code *dfscode.Code, extensions map[dfscode.ExtendedEdge]*projection.Set) map[dfscode.ExtendedEdge]*projection.Set {
	minVlb := code.Edges[0].L1
	maxVertex := -1
	for _, e := range code.Edges {
		if e.V1 > maxVertex {
			maxVertex = e.V1
		}
		if e.V2 > maxVertex {
			maxVertex = e.V2
		}
	}

	out := make(map[dfscode.ExtendedEdge]*projection.Set)
	for ee, set := range extensions {
		if ee.Backward() {
			continue
		}
		if ee.V1 == maxVertex && ee.V2 > maxVertex {
			if ee.L2 < minVlb {
				continue
			}
			out[ee] = set
			continue
		}
		add := true
		for _, de := range code.Edges {
			if de.Backward() {
				continue
			}
			if de.V1 != ee.V1 {
				continue
			}
			if ee.L2 < minVlb {
				add = false
				break
			}
			if ee.Le < de.Le {
				add = false
				break
			}
			if ee.Le == de.Le && ee.L2 < de.L2 {
				add = false
				break
			}
		}
		if add {
			out[ee] = set
		}
	}
	return out
}

type elbVlbKey struct{ elb, vlb int }
type vertexElbVlbKey struct{ vertex, elb, vlb int }

// otherEndpoint returns the endpoint of e that is not from.
func otherEndpoint(e *graph.Edge, from int) int {
	if e.V1 == from {
		return e.V2
	}
	return e.V1
}

// hasVertexAmong reports whether vertexId is one of the endpoints of any
// code step named by edgeIdxs, under embedding emb.
func hasVertexAmong(emb *extension.Embedding, code *dfscode.Code, vertexId int, edgeIdxs []int) bool {
	for _, i := range edgeIdxs {
		e := code.Edges[i]
		if emb.Iso[e.V1] == vertexId || emb.Iso[e.V2] == vertexId {
			return true
		}
	}
	return false
}

// analyzeCase1 checks whether breaking some edge not on the rightmost
// path would let a new forward extension from the rightmost vertex become
// frequent, or let an existing one gain enough support to become frequent.
func (h *Handler) analyzeCase1(code *dfscode.Code, pi *projection.Set, rmPathEdges []int, forwardExt map[dfscode.ExtendedEdge]*projection.Set) bool {
	last := code.Edges[len(code.Edges)-1]
	if last.Backward() {
		return false
	}

	rm := code.RightMost()
	gids := make(map[elbVlbKey]map[int]bool)

	for _, idx := range pi.Nodes {
		emb := extension.Reconstruct(h.db, code, h.arena, idx)
		g := h.db.ByGid(emb.Gid)
		fromVertexId := emb.Iso[rm]
		for _, eidx := range g.NeighborEdges(fromVertexId) {
			if emb.Edges[eidx] {
				continue
			}
			e := &g.E[eidx]
			toVertexId := otherEndpoint(e, fromVertexId)
			if hasVertexAmong(emb, code, toVertexId, rmPathEdges) {
				continue
			}
			if !emb.Used[toVertexId] {
				continue
			}
			k := elbVlbKey{e.Label, g.Label(toVertexId)}
			if gids[k] == nil {
				gids[k] = make(map[int]bool)
			}
			gids[k][g.Gid] = true
			if len(gids[k]) >= h.minSup {
				h.record(code)
				return true
			}
		}
	}

	for k, set := range gids {
		for ee, extSet := range forwardExt {
			if ee.V1 == rm && ee.Le == k.elb && ee.L2 == k.vlb {
				for _, gid := range extSet.GraphIDs {
					set[gid] = true
				}
				if len(set) >= h.minSup {
					h.record(code)
					return true
				}
			}
		}
	}
	return false
}

// analyzeCase2 is analyzeCase1's generalization to forward extensions
// rooted away from the rightmost vertex, restricted to pairs of rightmost
// path edges that fork (the later edge does not continue directly from
// the earlier one's target).
func (h *Handler) analyzeCase2(code *dfscode.Code, pi *projection.Set, rmPathEdges []int, forwardExt map[dfscode.ExtendedEdge]*projection.Set) bool {
	last := code.Edges[len(code.Edges)-1]
	if last.Backward() {
		return false
	}

	gids := make(map[vertexElbVlbKey]map[int]bool)

	for i := 0; i < len(rmPathEdges); i++ {
		ee := code.Edges[rmPathEdges[i]]
		vertexStart, vertexEnd := ee.V1, ee.V2
		if vertexEnd == vertexStart+1 {
			continue
		}

		for j := i + 1; j < len(rmPathEdges); j++ {
			vertexFrom := code.Edges[rmPathEdges[j]].V1
			for _, idx := range pi.Nodes {
				emb := extension.Reconstruct(h.db, code, h.arena, idx)
				g := h.db.ByGid(emb.Gid)

				notRmPath := make(map[int]bool)
				for v := vertexStart + 1; v < vertexEnd; v++ {
					notRmPath[emb.Iso[v]] = true
				}

				fromGraphVertex := emb.Iso[vertexFrom]
				for _, eidx := range g.NeighborEdges(fromGraphVertex) {
					if emb.Edges[eidx] {
						continue
					}
					e := &g.E[eidx]
					vertexTo := otherEndpoint(e, fromGraphVertex)
					if !notRmPath[vertexTo] {
						continue
					}
					k := vertexElbVlbKey{vertexFrom, e.Label, g.Label(vertexTo)}
					if gids[k] == nil {
						gids[k] = make(map[int]bool)
					}
					gids[k][g.Gid] = true
					if len(gids[k]) >= h.minSup {
						h.record(code)
						return true
					}
				}
			}
		}
	}

	for k, set := range gids {
		for ee, extSet := range forwardExt {
			if ee.V1 == k.vertex && ee.Le == k.elb && ee.L2 == k.vlb {
				for _, gid := range extSet.GraphIDs {
					set[gid] = true
				}
				if len(set) >= h.minSup {
					h.record(code)
					return true
				}
			}
		}
	}
	return false
}

// analyzeCase3 checks whether breaking the first rightmost-path edge
// (vertex 0 to vertex 1) would let a forward extension from the rightmost
// vertex become frequent, restricted to codes whose last two rightmost-
// path edges already share (edge label, target vertex label) — the
// configuration where that first edge's target is indistinguishable from
// the rightmost vertex's current path neighbor.
func (h *Handler) analyzeCase3(code *dfscode.Code, pi *projection.Set, rmPathEdges []int, forwardExt map[dfscode.ExtendedEdge]*projection.Set) bool {
	last := code.Edges[len(code.Edges)-1]
	if last.Backward() {
		return false
	}
	if len(rmPathEdges) <= 2 {
		return false
	}
	e1 := code.Edges[rmPathEdges[len(rmPathEdges)-1]]
	e2 := code.Edges[rmPathEdges[len(rmPathEdges)-2]]
	if e1.Le != e2.Le || e1.L2 != e2.L2 {
		return false
	}

	rm := code.RightMost()
	firstIdx := rmPathEdges[len(rmPathEdges)-1]
	gids := make(map[elbVlbKey]map[int]bool)

	for _, idx := range pi.Nodes {
		emb := extension.Reconstruct(h.db, code, h.arena, idx)
		g := h.db.ByGid(emb.Gid)
		gRmpathFirstVertex := emb.Iso[code.Edges[firstIdx].V1]
		fromVertexId := emb.Iso[rm]
		for _, eidx := range g.NeighborEdges(fromVertexId) {
			if emb.Edges[eidx] {
				continue
			}
			e := &g.E[eidx]
			vertexTo := otherEndpoint(e, fromVertexId)
			if vertexTo != gRmpathFirstVertex {
				continue
			}
			k := elbVlbKey{e.Label, g.Label(vertexTo)}
			if gids[k] == nil {
				gids[k] = make(map[int]bool)
			}
			gids[k][g.Gid] = true
			if len(gids[k]) >= h.minSup {
				h.record(code)
				return true
			}
		}
	}

	for k, set := range gids {
		for ee, extSet := range forwardExt {
			if ee.V1 == rm && ee.Le == k.elb && ee.L2 == k.vlb {
				for _, gid := range extSet.GraphIDs {
					set[gid] = true
				}
				if len(set) >= h.minSup {
					h.record(code)
					return true
				}
			}
		}
	}
	return false
}

// analyzeCase4 applies only when the last step is backward: it looks for
// a vacant edge, reachable by walking the rightmost path in reverse and
// breaking one forward edge at a time, that would add a new occurrence to
// a rightmost-path forward extension.
func (h *Handler) analyzeCase4(code *dfscode.Code, pi *projection.Set, rmPathEdges []int) bool {
	last := code.Edges[len(code.Edges)-1]
	if !last.Backward() {
		return false
	}

	rmpathLoop := -1
	for _, ei := range rmPathEdges {
		if code.Edges[ei].V1 == last.V2 {
			rmpathLoop = ei
			break
		}
	}
	if rmpathLoop == -1 {
		return false
	}

	for _, rmpathEdgeIndex := range rmPathEdges {
		if rmpathEdgeIndex < rmpathLoop {
			break
		}
		step := code.Edges[rmpathEdgeIndex]
		elb, vlb := step.Le, step.L1

		for _, idx := range pi.Nodes {
			emb := extension.Reconstruct(h.db, code, h.arena, idx)
			g := h.db.ByGid(emb.Gid)
			vertexId := emb.Iso[step.V2]
			for _, eidx := range g.NeighborEdges(vertexId) {
				e := &g.E[eidx]
				if e.Label != elb {
					continue
				}
				vertexTo := otherEndpoint(e, vertexId)
				if g.Label(vertexTo) != vlb {
					continue
				}
				if emb.Edges[eidx] {
					continue
				}
				if emb.Used[vertexTo] {
					continue
				}
				h.record(code)
				return true
			}
		}
	}
	return false
}

// analyzeCase5 generalizes analyzeCase4 to every DFS-code prefix ending
// in a backward step rather than only the full code.
func (h *Handler) analyzeCase5(code *dfscode.Code, pi *projection.Set) bool {
	prefixes := buildDFSCodesPrefixes(code)

	for i := 1; i < len(prefixes); i++ {
		tested := prefixes[i]
		last := tested.Edges[len(tested.Edges)-1]
		if !last.Backward() {
			continue
		}

		testedRmPathEdges := rightMostPathEdges(tested)
		rmpathLoop, rmpathLoopIndex := -1, -1
		for j, ei := range testedRmPathEdges {
			if tested.Edges[ei].V1 == last.V2 {
				rmpathLoop = ei
				rmpathLoopIndex = j
				break
			}
		}
		if rmpathLoop == -1 {
			continue
		}

		rmpathBeforeLoopIndex := rmpathLoopIndex + 1
		if rmpathBeforeLoopIndex < len(testedRmPathEdges) {
			beforeVlb := tested.Edges[testedRmPathEdges[rmpathBeforeLoopIndex]].L1
			firstIdx := testedRmPathEdges[len(testedRmPathEdges)-1]
			first := tested.Edges[firstIdx]
			before := tested.Edges[testedRmPathEdges[rmpathBeforeLoopIndex]]
			if first.L1 != before.L2 || first.Le != before.Le || first.L2 != beforeVlb {
				continue
			}
		}

		tails := prefixProjections(h.arena, pi, len(code.Edges)-len(tested.Edges))

		for _, rmpathEdgeIndex := range testedRmPathEdges {
			if rmpathEdgeIndex < rmpathLoop {
				break
			}
			step := tested.Edges[rmpathEdgeIndex]
			elb, vlb := step.Le, step.L1

			for _, tailIdx := range tails {
				emb := extension.Reconstruct(h.db, tested, h.arena, tailIdx)
				g := h.db.ByGid(emb.Gid)
				vertexId := emb.Iso[step.V2]
				for _, eidx := range g.NeighborEdges(vertexId) {
					e := &g.E[eidx]
					if e.Label != elb {
						continue
					}
					vertexTo := otherEndpoint(e, vertexId)
					if g.Label(vertexTo) != vlb {
						continue
					}
					if emb.Edges[eidx] {
						continue
					}
					if emb.Used[vertexTo] {
						continue
					}
					h.record(code)
					return true
				}
			}
		}
	}
	return false
}

// buildDFSCodesPrefixes returns code itself followed by every prefix of
// code that ends just before a "fork": a step that does not continue the
// tree depth-first from the previous step's frontier.
func buildDFSCodesPrefixes(code *dfscode.Code) []*dfscode.Code {
	prefixes := []*dfscode.Code{code}
	edges := code.Edges
	oldFrom, hasOldFrom := -1, false
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		from, to := e.V1, e.V2
		if from < to && (!hasOldFrom || to == oldFrom) {
			oldFrom, hasOldFrom = from, true
			continue
		}
		if from > to && (!hasOldFrom || from == oldFrom) {
			continue
		}
		oldFrom, hasOldFrom = from, true
		nc := dfscode.New()
		for j := 0; j <= i; j++ {
			nc = nc.Append(edges[j])
		}
		prefixes = append(prefixes, nc)
	}
	return prefixes
}

// prefixProjections walks every occurrence in pi back by index steps and
// deduplicates the resulting arena tails: since chains share structure,
// two occurrences converging on the same prior step land on the same
// arena index.
func prefixProjections(arena *projection.Arena, pi *projection.Set, index int) []int {
	seen := make(map[int]bool, len(pi.Nodes))
	var out []int
	for _, idx := range pi.Nodes {
		cur := idx
		for i := 0; i < index; i++ {
			cur = arena.Node(cur).Prev
		}
		if !seen[cur] {
			seen[cur] = true
			out = append(out, cur)
		}
	}
	return out
}

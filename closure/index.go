package closure

import (
	"fmt"
	"sort"
	"strings"

	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
	"github.com/timtadh/data-structures/exc"
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/types"
)

// Index maps a pattern's total physical edge-identity coverage to every
// already-recorded closed pattern sharing that exact coverage, so the miner
// only pays for the full equivalence check (CheckEquivalentOccurrence)
// against plausible candidates instead of every closed pattern seen so far.
//
// Ported from ClosedSubgraph's occurrence-keyed index in original_source/;
// grounded in the teacher's hashtable.LinearHash (github.com/timtadh/data-
// structures/hashtable) for the general "hash-bucket of exact-key
// candidates" idiom (types/digraph/extensions.go's `patterns :=
// hashtable.NewLinearHash()`, types/digraph/subgraph/embeddings.go's `seen
// := hashtable.NewLinearHash()`): the key is hashed as a
// types.ByteSlice, the same Hashable the teacher uses to dedup by
// serialized-bytes identity in types/digraph/support.go's DedupSupported.
type Index struct {
	arena *projection.Arena
	byKey *hashtable.LinearHash

	// disk, when non-nil, backs byKey's role with an fs2 B+Tree instead of
	// an in-memory hash table: patterns records every pattern ever
	// registered, in registration order, so a key's disk-stored ordinals
	// can be resolved back to *Pattern values without keeping the byKey
	// structure itself in RAM.
	disk     *diskStore
	patterns []*Pattern
}

// NewIndex returns an empty index reading projection chains from arena,
// holding every candidate list in memory.
func NewIndex(arena *projection.Arena) *Index {
	return &Index{arena: arena, byKey: hashtable.NewLinearHash()}
}

// NewDiskIndex is NewIndex's disk-backed counterpart (SPEC_FULL.md
// "closure hash index": Config.CacheDir), for databases whose closure
// index grows too large to keep every key's candidate list resident.
// cacheDir must already exist; the cache file is created fresh inside it.
func NewDiskIndex(arena *projection.Arena, cacheDir string) (*Index, error) {
	ds, err := newDiskStore(cacheDir + "/closure-index.fs2")
	if err != nil {
		return nil, err
	}
	return &Index{arena: arena, disk: ds}, nil
}

// Close releases the disk-backed index's block file, if any.
func (ix *Index) Close() error {
	if ix.disk == nil {
		return nil
	}
	return ix.disk.close()
}

// Register records p as a closed pattern. A disk-backed index that hits a
// storage fault unwinds the whole recursion via exc.Throw rather than
// threading an error return through every dfs frame (SPEC_FULL.md's ambient
// error stack, matching the teacher's types/digraph2/subgraph/match.go
// exc.Try/exc.Throwf boundary for the same "host fault deep in a recursive
// walk" shape); mining.Run wraps the recursion in exc.Try to recover it.
func (ix *Index) Register(p *Pattern) {
	key := ix.key(p)
	if ix.disk == nil {
		k := types.ByteSlice(key)
		var list []*Pattern
		if v, err := ix.byKey.Get(k); err == nil {
			list = v.([]*Pattern)
		}
		list = append(list, p)
		exc.ThrowOnError(ix.byKey.Put(k, list))
		return
	}
	ordinal := len(ix.patterns)
	ix.patterns = append(ix.patterns, p)
	exc.ThrowOnError(ix.disk.add(key, ordinal))
}

// Candidates returns every recorded pattern with exactly p's total physical
// edge-identity coverage, the set CheckEquivalentOccurrence should be tried
// against.
func (ix *Index) Candidates(p *Pattern) []*Pattern {
	key := ix.key(p)
	if ix.disk == nil {
		v, err := ix.byKey.Get(types.ByteSlice(key))
		if err != nil {
			return nil
		}
		return v.([]*Pattern)
	}
	ordinals, err := ix.disk.find(key)
	exc.ThrowOnError(err)
	out := make([]*Pattern, len(ordinals))
	for i, o := range ordinals {
		out[i] = ix.patterns[o]
	}
	return out
}

func (ix *Index) key(p *Pattern) string {
	return encodeEdgeIDSet(edgeIDSet(ix.arena, p.Nodes))
}

// edgeIDSet collects every physical edge identity touched by any occurrence
// in nodes, across every code step.
func edgeIDSet(arena *projection.Arena, nodes []int) map[graph.ID]bool {
	set := make(map[graph.ID]bool)
	for _, idx := range nodes {
		for _, n := range arena.Chain(idx) {
			set[n.Edge] = true
		}
	}
	return set
}

func encodeEdgeIDSet(set map[graph.ID]bool) string {
	ids := make([]graph.ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Gid != ids[j].Gid {
			return ids[i].Gid < ids[j].Gid
		}
		return ids[i].Edge < ids[j].Edge
	})
	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%d,", id.Gid, id.Edge)
	}
	return b.String()
}

// bijection maps an "other" pattern's DFS-code step index to the "my"
// pattern's DFS-code step index realizing the same physical edge.
type bijection map[int]int

// CheckEquivalentOccurrence decides whether my (an already-closed, recorded
// pattern) and other (a freshly grown candidate) cover exactly the same
// physical edges in every supporting graph, up to a step-index
// correspondence. On success it returns that correspondence.
//
// Ported from ClosedSubgraph.checkEquivalentOccurrence: restricts the
// isomorphism search to the "exemplar" graph id (the one with fewest
// occurrences), builds every candidate bijection from one representative
// other-chain there, then verifies each bijection against every remaining
// occurrence in every other graph.
func CheckEquivalentOccurrence(arena *projection.Arena, my, other *Pattern) (map[int]int, bool) {
	if other.Support > my.Support {
		return nil, false
	}
	if !sameGraphIDs(my.GraphIDs, other.GraphIDs) {
		return nil, false
	}
	if len(other.Nodes) > len(my.Nodes) {
		return nil, false
	}

	myChains := chainsByGid(arena, my.Nodes)
	otherChains := chainsByGid(arena, other.Nodes)

	ex := exemplarGid(my.GraphIDs, myChains)
	otherExChains := otherChains[ex]
	if len(otherExChains) == 0 {
		return nil, false
	}
	rep := otherExChains[0]

	for _, myChain := range myChains[ex] {
		b := possibleIsomorphism(myChain, rep)
		if b == nil {
			continue
		}
		if verifyIsomorphism(b, myChains, otherChains) {
			return b, true
		}
	}
	return nil, false
}

// chainsByGid groups every occurrence's ordered physical-edge-id sequence
// by the transaction graph id it occurs in.
func chainsByGid(arena *projection.Arena, nodes []int) map[int][][]graph.ID {
	out := make(map[int][][]graph.ID)
	for _, idx := range nodes {
		chain := arena.Chain(idx)
		ids := make([]graph.ID, len(chain))
		gid := -1
		for i, n := range chain {
			ids[i] = n.Edge
			gid = n.Gid
		}
		out[gid] = append(out[gid], ids)
	}
	return out
}

// exemplarGid picks the supporting graph id with the fewest occurrences,
// breaking ties by ascending gid, so the search restricts its most
// expensive step to the cheapest graph available.
func exemplarGid(graphIDs []int, chains map[int][][]graph.ID) int {
	best := graphIDs[0]
	bestCount := len(chains[best])
	for _, gid := range graphIDs[1:] {
		c := len(chains[gid])
		if c < bestCount || (c == bestCount && gid < best) {
			best, bestCount = gid, c
		}
	}
	return best
}

// possibleIsomorphism builds the step-index correspondence between
// otherChain and myChain by matching identical physical edge ids. Since
// both chains come from the same gid and (by the caller's support checks)
// plausibly cover the same edges, equal length and an exact edge-id match
// at every position is required; any mismatch means this myChain is not
// the one otherChain corresponds to.
func possibleIsomorphism(myChain, otherChain []graph.ID) bijection {
	if len(myChain) != len(otherChain) {
		return nil
	}
	pos := make(map[graph.ID]int, len(myChain))
	for i, id := range myChain {
		pos[id] = i
	}
	b := make(bijection, len(otherChain))
	for i, id := range otherChain {
		j, ok := pos[id]
		if !ok {
			return nil
		}
		b[i] = j
	}
	return b
}

// verifyIsomorphism confirms that b, discovered from one exemplar-graph
// chain pair, holds for every occurrence of other in every supporting
// graph: each other-chain must have some my-chain in the same graph that
// agrees with b at every step.
func verifyIsomorphism(b bijection, myChains, otherChains map[int][][]graph.ID) bool {
	for gid, oChains := range otherChains {
		mChains := myChains[gid]
		for _, oc := range oChains {
			matched := false
			for _, mc := range mChains {
				if chainMatchesBijection(b, mc, oc) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}

func chainMatchesBijection(b bijection, myChain, otherChain []graph.ID) bool {
	if len(myChain) != len(otherChain) {
		return false
	}
	for otherPos, myPos := range b {
		if otherChain[otherPos] != myChain[myPos] {
			return false
		}
	}
	return true
}

// Package mining implements the mining driver and recursion (SPEC_FULL.md
// "mining driver", "recursion"): it prunes the graph database, seeds the
// search from the empty code, and drives the depth-first canonical
// enumeration that produces closed frequent patterns.
//
// Grounded on the teacher's mine/mine.go driver shape (load, prune,
// precompute, recurse, report) and AlgoCGSPAN.java's run() method in
// original_source/ for the exact step ordering.
package mining

import "github.com/timtadh/data-structures/errors"

// Config holds the mining run's parameters, analogous to the teacher's
// config.Config.
type Config struct {
	// MinSupport is the minimum fraction of transaction graphs a pattern
	// must appear in, in (0,1].
	MinSupport float64

	// OutputSingleVertices enables emission of one-vertex closed patterns
	// (SPEC_FULL.md §4.8 step 5, §6.2).
	OutputSingleVertices bool

	// MaxEdges bounds the size of any reported pattern. Zero produces no
	// output; a DFS never grows past MaxEdges-1 edges.
	MaxEdges int

	// OutputGraphIDs enables the "x" line in the result format (§6.2).
	OutputGraphIDs bool

	// CacheDir, if set, backs the closure index's key -> pattern lookup
	// with an on-disk fs2 B+tree store instead of an in-memory hash table.
	// Recorded patterns and the projection arena stay in memory either way.
	CacheDir string

	// Parallelism is carried from the teacher's Config.Workers() idiom
	// but is not honored: mining is single-threaded by design (SPEC_FULL.md
	// §5). Any value greater than 1 is a precondition error.
	Parallelism int

	// Debug gates errors.Logf("DEBUG", ...) calls along the recursion,
	// mirroring AlgoCGSPAN.DEBUG_MODE.
	Debug bool

	// SkipStrategy is accepted but not read by the mining path: setting it
	// has no effect on the search or its results. Defaults to false.
	SkipStrategy bool
}

// Validate checks Config's preconditions, returning a precondition error
// (SPEC_FULL.md §7) on the first violation found.
func (c Config) Validate() error {
	if c.MinSupport <= 0 || c.MinSupport > 1 {
		return errors.Errorf("minSupport must be in (0,1], got %v", c.MinSupport)
	}
	if c.MaxEdges < 0 {
		return errors.Errorf("maxEdges must be >= 0, got %v", c.MaxEdges)
	}
	if c.Parallelism > 1 {
		return errors.Errorf("mining is single-threaded; parallelism %d is not supported", c.Parallelism)
	}
	return nil
}

// Stats collects advisory run counters (SPEC_FULL.md §5 "supplemental
// features"), populated by Run and never consulted by the mining path
// itself.
type Stats struct {
	GraphCount                   int
	PatternCount                 int
	InfrequentVerticesRemoved    int
	InfrequentVertexPairsRemoved int
	EdgesRemovedByLabel          int
	EarlyTerminations            int
	EarlyTerminationFailures     int
}

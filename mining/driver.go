package mining

import (
	"math"
	"sort"

	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/failure"
	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/exc"
)

// Result is the outcome of a mining run: every closed pattern found,
// ascending by support (SPEC_FULL.md §6.2), plus the arena and database
// needed to reconstruct embeddings for output or visualization.
type Result struct {
	Patterns []*closure.Pattern
	Stats    *Stats
	Arena    *projection.Arena
	DB       *graph.Database
}

// driver carries the mutable state threaded through one mining run's
// recursion: the pruned database, the shared projection arena, the
// closure index, and the early-termination-failure handler.
type driver struct {
	db             *graph.Database
	arena          *projection.Arena
	cfg            Config
	minSup         int
	index          *closure.Index
	failureHandler *failure.Handler
	patterns       []*closure.Pattern
	stats          *Stats
}

// Run executes the full mining pipeline (SPEC_FULL.md §4.8): prune the
// database, optionally emit one-vertex closed patterns, then recurse from
// the empty code over every surviving graph.
func Run(db *graph.Database, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stats := &Stats{GraphCount: len(db.Graphs)}
	if len(db.Graphs) == 0 || cfg.MaxEdges == 0 {
		db.Index()
		db.Precompute()
		return &Result{Stats: stats, Arena: projection.NewArena(), DB: db}, nil
	}

	minSup := int(math.Ceil(cfg.MinSupport * float64(len(db.Graphs))))
	if minSup < 1 {
		minSup = 1
	}

	pruneVertices(db, minSup, stats)
	pruneEdges(db, minSup, stats)
	db.Precompute()
	db.Index()

	arena := projection.NewArena()

	var index *closure.Index
	if cfg.CacheDir != "" {
		diskIndex, err := closure.NewDiskIndex(arena, cfg.CacheDir)
		if err != nil {
			return nil, err
		}
		defer diskIndex.Close()
		index = diskIndex
	} else {
		index = closure.NewIndex(arena)
	}

	d := &driver{
		db:             db,
		arena:          arena,
		cfg:            cfg,
		minSup:         minSup,
		index:          index,
		failureHandler: failure.NewHandler(db, arena, minSup),
		stats:          stats,
	}

	if cfg.OutputSingleVertices {
		d.patterns = append(d.patterns, singleVertexPatterns(db, arena, minSup)...)
	}

	if cfg.Debug {
		errors.Logf("DEBUG", "starting recursion: %d graphs, minSup=%d", len(db.Graphs), minSup)
	}
	// d.dfs recurses arbitrarily deep; a closure-index storage fault is
	// caught here rather than threaded back up through every dfs frame,
	// matching the teacher's exc.Try boundary around a recursive walk.
	if err := exc.Try(func() { d.dfs(dfscode.New(), nil) }); err != nil {
		return nil, errors.Errorf("closure index cache failure: %v", err)
	}

	stats.PatternCount = len(d.patterns)
	sort.SliceStable(d.patterns, func(i, j int) bool {
		return d.patterns[i].Support < d.patterns[j].Support
	})

	return &Result{Patterns: d.patterns, Stats: stats, Arena: arena, DB: db}, nil
}

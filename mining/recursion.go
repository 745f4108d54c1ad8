package mining

import (
	"sort"

	"github.com/timtadh/cgspan/canonical"
	"github.com/timtadh/cgspan/closure"
	"github.com/timtadh/cgspan/dfscode"
	"github.com/timtadh/cgspan/extension"
	"github.com/timtadh/cgspan/projection"
	"github.com/timtadh/data-structures/errors"
)

// dfs implements SPEC_FULL.md §4.9's recursion exactly: extend, recurse
// into every frequent canonical child, then (for non-empty codes) run the
// failure analyzer and record a closed pattern if no extension preserved
// every occurrence of the current code. pi is nil only for the root call
// on the empty code, matching extension.Extend's own convention.
func (d *driver) dfs(code *dfscode.Code, pi *projection.Set) {
	if d.cfg.MaxEdges > 0 && len(code.Edges) == d.cfg.MaxEdges-1 {
		return
	}

	earlyTerm, etf := d.consultClosureIndex(code, pi)
	if earlyTerm && !etf {
		d.stats.EarlyTerminations++
		return
	}

	ext := extension.Extend(d.db, code, pi, d.arena)
	keys := make([]dfscode.ExtendedEdge, 0, len(ext))
	for ee := range ext {
		keys = append(keys, ee)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	for _, ee := range keys {
		childSet := ext[ee]
		if childSet.Support() < d.minSup {
			continue
		}
		childCode := code.Append(ee)
		if !canonical.IsCanonical(childCode) {
			continue
		}
		if d.cfg.Debug {
			errors.Logf("DEBUG", "descend %v", childCode)
		}
		d.dfs(childCode, childSet)
	}

	if len(code.Edges) >= 1 {
		if d.failureHandler.Analyze(code, pi, ext) {
			d.stats.EarlyTerminationFailures++
		}
		if etf {
			return
		}
		hasEquivalent := false
		for _, childSet := range ext {
			if closure.HasEquivalentOccurrence(d.arena, pi, childSet) {
				hasEquivalent = true
				break
			}
		}
		if !hasEquivalent {
			pattern := closure.NewPattern(code, pi)
			d.index.Register(pattern)
			d.patterns = append(d.patterns, pattern)
			d.stats.PatternCount++
		}
	}
}

// consultClosureIndex implements SPEC_FULL.md §4.6: it reports whether an
// already-recorded closed pattern is occurrence-equivalent to code (in
// which case the subtree below code can be skipped), and whether code's
// edge sequence is a known-unsafe prefix in the failure trie.
func (d *driver) consultClosureIndex(code *dfscode.Code, pi *projection.Set) (earlyTerm, etf bool) {
	etf = d.failureHandler.Detect(code.Edges)
	if len(code.Edges) == 0 {
		return false, etf
	}
	candidate := closure.NewPattern(code, pi)
	for _, cand := range d.index.Candidates(candidate) {
		if _, ok := closure.CheckEquivalentOccurrence(d.arena, cand, candidate); ok {
			return true, etf
		}
	}
	return false, etf
}

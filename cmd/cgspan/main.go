// Command cgspan is the CLI entrypoint for the closed frequent subgraph
// miner (spec.md §1 "CLI wiring", an out-of-core-scope collaborator).
//
// Grounded on the teacher's main.go: github.com/timtadh/getopt for flag
// parsing, errors.Logf for leveled progress output, and
// runtime/pprof-style ambient profiling (here runtime.MemStats instead of
// CPU profiling, since the teacher's own cpu-profile flag has no
// mining-specific analogue to reuse).
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/ioformat"
	"github.com/timtadh/cgspan/mining"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

const usageMessage = `cgspan --support=<float> [options] <input> [output]

Options:
    -h, --help                view this message
    -s, --support=<float>     minimum support in (0,1] (required)
    -m, --max-edges=<int>     largest pattern size to report (default: unbounded)
    -v, --single-vertices     also emit one-vertex closed patterns
    -x, --graph-ids           emit the "x" line listing supporting graph ids
    --dot-format              read <input> as DOT instead of the line-oriented format
    --debug                   enable debug logging along the recursion
    --mem-stats               print peak heap statistics to stderr on exit

<input> is read from stdin if omitted or "-". <output> is written to
stdout if omitted or "-".
`

func usage(code int) {
	fmt.Fprint(os.Stderr, usageMessage)
	os.Exit(code)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	args, optargs, err := getopt.GetOpt(
		argv,
		"hs:m:vx",
		[]string{
			"help",
			"support=", "max-edges=",
			"single-vertices", "graph-ids",
			"dot-format", "debug", "mem-stats",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(1)
	}

	cfg := mining.Config{MaxEdges: 1 << 30}
	dotFormat := false
	memStats := false
	supportSet := false

	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			usage(0)
		case "-s", "--support":
			f, err := strconv.ParseFloat(oa.Arg(), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --support %q: %v\n", oa.Arg(), err)
				usage(1)
			}
			cfg.MinSupport = f
			supportSet = true
		case "-m", "--max-edges":
			n, err := strconv.Atoi(oa.Arg())
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid --max-edges %q: %v\n", oa.Arg(), err)
				usage(1)
			}
			cfg.MaxEdges = n
		case "-v", "--single-vertices":
			cfg.OutputSingleVertices = true
		case "-x", "--graph-ids":
			cfg.OutputGraphIDs = true
		case "--dot-format":
			dotFormat = true
		case "--debug":
			cfg.Debug = true
		case "--mem-stats":
			memStats = true
		default:
			fmt.Fprintf(os.Stderr, "unknown flag %q\n", oa.Opt())
			usage(1)
		}
	}

	if !supportSet {
		fmt.Fprintln(os.Stderr, "--support is required")
		usage(1)
	}

	inPath := "-"
	if len(args) > 0 {
		inPath = args[0]
	}
	outPath := "-"
	if len(args) > 1 {
		outPath = args[1]
	}

	in := os.Stdin
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "i/o error opening %q: %v\n", inPath, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "i/o error creating %q: %v\n", outPath, err)
			return 1
		}
		defer f.Close()
		out = f
	}

	var db *graph.Database
	if dotFormat {
		text, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "i/o error reading %q: %v\n", inPath, err)
			return 1
		}
		db, err = graph.ReadDotDatabase(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error in %q: %v\n", inPath, err)
			return 1
		}
	} else {
		var err error
		db, err = graph.ReadDatabase(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error in %q: %v\n", inPath, err)
			return 1
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	start := time.Now()
	errors.Logf("INFO", "loaded %d transaction graphs from %v", len(db.Graphs), inPath)

	result, err := mining.Run(db, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	errors.Logf("INFO", "found %d closed patterns in %v", len(result.Patterns), time.Since(start))

	if err := ioformat.WriteResult(out, result, cfg.OutputGraphIDs); err != nil {
		fmt.Fprintf(os.Stderr, "i/o error writing %q: %v\n", outPath, err)
		return 1
	}

	if memStats {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Fprintf(os.Stderr, "peak heap: %.1f MiB, gc cycles: %d\n",
			float64(m.HeapSys)/(1<<20), m.NumGC)
	}

	return 0
}

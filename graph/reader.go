package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/timtadh/data-structures/errors"
)

// ParseError reports a malformed input line with enough context to locate
// it (SPEC_FULL.md error taxonomy: "Input parse error... report file
// offset and line").
type ParseError struct {
	Line   int
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d (byte offset %d): %s", e.Line, e.Offset, e.Reason)
}

// ReadDatabase parses the line-oriented transaction graph database format:
// each graph begins with "t # <gid>" and is followed by "v <id> <label>"
// and "e <v1> <v2> <label>" lines until the next "t" header or EOF.
func ReadDatabase(r io.Reader) (*Database, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	db := &Database{}
	var g *Graph
	var ids map[int]int
	var seenEdges map[[2]int]bool

	line := 0
	var offset int64
	for scanner.Scan() {
		line++
		text := scanner.Text()
		offset += int64(len(text)) + 1
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "t":
			if len(fields) < 3 || fields[1] != "#" {
				return nil, &ParseError{line, offset, "malformed 't' header, expected 't # <gid>'"}
			}
			gid, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid graph id %q", fields[2])}
			}
			g = New(gid)
			ids = make(map[int]int)
			seenEdges = make(map[[2]int]bool)
			db.Graphs = append(db.Graphs, g)
		case "v":
			if g == nil {
				return nil, &ParseError{line, offset, "'v' line before any 't' header"}
			}
			if len(fields) != 3 {
				return nil, &ParseError{line, offset, "malformed 'v' line, expected 'v <id> <label>'"}
			}
			vid, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid vertex id %q", fields[1])}
			}
			label, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid vertex label %q", fields[2])}
			}
			if _, has := ids[vid]; has {
				return nil, &ParseError{line, offset, fmt.Sprintf("duplicate vertex id %d in graph %d", vid, g.Gid)}
			}
			ids[vid] = g.AddVertex(label)
		case "e":
			if g == nil {
				return nil, &ParseError{line, offset, "'e' line before any 't' header"}
			}
			if len(fields) != 4 {
				return nil, &ParseError{line, offset, "malformed 'e' line, expected 'e <v1> <v2> <label>'"}
			}
			rv1, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid edge endpoint %q", fields[1])}
			}
			rv2, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid edge endpoint %q", fields[2])}
			}
			label, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, &ParseError{line, offset, fmt.Sprintf("invalid edge label %q", fields[3])}
			}
			v1, has1 := ids[rv1]
			if !has1 {
				return nil, &ParseError{line, offset, fmt.Sprintf("edge references unknown vertex %d (forward reference)", rv1)}
			}
			v2, has2 := ids[rv2]
			if !has2 {
				return nil, &ParseError{line, offset, fmt.Sprintf("edge references unknown vertex %d (forward reference)", rv2)}
			}
			key := [2]int{v1, v2}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seenEdges[key] {
				return nil, &ParseError{line, offset, fmt.Sprintf("duplicate edge (%d,%d) in graph %d", rv1, rv2, g.Gid)}
			}
			seenEdges[key] = true
			if err := g.AddEdge(v1, v2, label); err != nil {
				return nil, &ParseError{line, offset, err.Error()}
			}
		default:
			return nil, &ParseError{line, offset, fmt.Sprintf("unknown line type %q", fields[0])}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("i/o error reading graph database: %v", err)
	}
	return db, nil
}

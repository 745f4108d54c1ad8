package graph

import (
	"github.com/timtadh/combos"
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/dot"
)

// ReadDotDatabase parses a DOT document as an alternate transaction-graph
// input format: each top-level subgraph becomes one transaction graph, in
// the order encountered, numbered starting at 0. A node's "label" attribute
// becomes its vertex label (falling back to the node's id if absent); an
// edge's "label" attribute becomes its edge label (falling back to 0).
// Vertex and edge labels must already be integers encoded as decimal
// strings (an optional leading '-' is accepted), matching the rest of this
// package's integer label model.
//
// Grounded on the teacher's DotLoader (types/digraph/dot_loader.go): the
// same combos.Node visitor callbacks driven by dot.StreamParse, adapted
// from that loader's directed-multigraph-with-attributes model to this
// package's undirected integer-labeled Graph.
func ReadDotDatabase(text []byte) (*Database, error) {
	p := &dotParse{vids: make(map[string]int), gid: -1}
	if err := dot.StreamParse(text, p); err != nil {
		return nil, errors.Errorf("failed to parse dot input: %v", err)
	}
	if p.cur != nil {
		p.graphs = append(p.graphs, p.cur)
	}
	return &Database{Graphs: p.graphs}, nil
}

type dotParse struct {
	graphs []*Graph
	cur    *Graph
	gid    int
	depth  int
	vids   map[string]int
}

func (p *dotParse) Enter(name string, n *combos.Node) error {
	if p.depth == 0 {
		if p.cur != nil {
			p.graphs = append(p.graphs, p.cur)
		}
		p.gid++
		p.cur = New(p.gid)
		p.vids = make(map[string]int)
	}
	p.depth++
	return nil
}

func (p *dotParse) Exit(name string) error {
	p.depth--
	return nil
}

func (p *dotParse) Stmt(n *combos.Node) error {
	switch n.Label {
	case "Node":
		return p.loadVertex(n)
	case "Edge":
		return p.loadEdge(n)
	}
	return nil
}

func (p *dotParse) attrs(n *combos.Node) map[string]string {
	attrs := make(map[string]string)
	for _, attr := range n.Get(1).Children {
		name, _ := attr.Get(0).Value.(string)
		value, _ := attr.Get(1).Value.(string)
		attrs[name] = value
	}
	return attrs
}

func (p *dotParse) loadVertex(n *combos.Node) error {
	sid, _ := n.Get(0).Value.(string)
	if _, has := p.vids[sid]; has {
		return nil
	}
	attrs := p.attrs(n)
	label := sid
	if l, has := attrs["label"]; has {
		label = l
	}
	li, err := parseLabel(label)
	if err != nil {
		return errors.Errorf("vertex %q: %v", sid, err)
	}
	p.vids[sid] = p.cur.AddVertex(li)
	return nil
}

func (p *dotParse) getId(sid string) (int, error) {
	if idx, has := p.vids[sid]; has {
		return idx, nil
	}
	li, err := parseLabel(sid)
	if err != nil {
		return 0, errors.Errorf("edge endpoint %q has no prior node declaration and is not a label: %v", sid, err)
	}
	idx := p.cur.AddVertex(li)
	p.vids[sid] = idx
	return idx, nil
}

func (p *dotParse) loadEdge(n *combos.Node) error {
	srcSid, _ := n.Get(0).Value.(string)
	dstSid, _ := n.Get(1).Value.(string)
	v1, err := p.getId(srcSid)
	if err != nil {
		return err
	}
	v2, err := p.getId(dstSid)
	if err != nil {
		return err
	}
	attrs := p.attrs(n)
	label := "0"
	if l, has := attrs["label"]; has {
		label = l
	}
	li, err := parseLabel(label)
	if err != nil {
		return errors.Errorf("edge (%s,%s): %v", srcSid, dstSid, err)
	}
	return p.cur.AddEdge(v1, v2, li)
}

func parseLabel(s string) (int, error) {
	var v int
	var neg bool
	i := 0
	if len(s) > 0 && s[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(s) {
		return 0, errors.Errorf("empty label")
	}
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.Errorf("label %q is not an integer", s)
		}
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	return v, nil
}

package dfscode

import "strings"

// Code is an ordered sequence of extended edges. Code[0] is always
// forward with v1=0, v2=1; every later forward step's v2 equals
// max(v2 over prior steps)+1; every backward step references only
// vertices already introduced.
type Code struct {
	Edges []ExtendedEdge
}

// New returns an empty code.
func New() *Code {
	return &Code{}
}

// Append returns a new code equal to c with ee appended. c is never
// mutated, so callers can keep exploring siblings from the same prefix.
func (c *Code) Append(ee ExtendedEdge) *Code {
	edges := make([]ExtendedEdge, len(c.Edges)+1)
	copy(edges, c.Edges)
	edges[len(c.Edges)] = ee
	return &Code{Edges: edges}
}

// Copy returns an independent code with the same steps.
func (c *Code) Copy() *Code {
	edges := make([]ExtendedEdge, len(c.Edges))
	copy(edges, c.Edges)
	return &Code{Edges: edges}
}

// RightMost returns the highest-numbered vertex in the code, i.e. the
// rightmost vertex of the rightmost path. Returns -1 for an empty code.
func (c *Code) RightMost() int {
	if len(c.Edges) == 0 {
		return -1
	}
	max := 0
	for _, e := range c.Edges {
		if e.V2 > max {
			max = e.V2
		}
	}
	return max
}

// NumVertices returns the number of distinct vertices named by the code.
func (c *Code) NumVertices() int {
	if len(c.Edges) == 0 {
		return 0
	}
	return c.RightMost() + 1
}

// parentOfRightMost returns the tree-parent of the rightmost vertex: the
// v1 of the (unique) forward step whose v2 is RightMost().
func (c *Code) parentOfRightMost() (int, bool) {
	rm := c.RightMost()
	for _, e := range c.Edges {
		if !e.Backward() && e.V2 == rm {
			return e.V1, true
		}
	}
	return 0, false
}

// RightMostPath returns the vertices on the path from vertex 0 to
// RightMost(), following only forward edges, ordered root-first.
func (c *Code) RightMostPath() []int {
	if len(c.Edges) == 0 {
		return nil
	}
	parent := make(map[int]int, len(c.Edges))
	for _, e := range c.Edges {
		if !e.Backward() {
			parent[e.V2] = e.V1
		}
	}
	rm := c.RightMost()
	path := []int{rm}
	cur := rm
	for cur != 0 {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// OnRightMostPath reports whether v lies on the rightmost path.
func (c *Code) OnRightMostPath(v int) bool {
	for _, p := range c.RightMostPath() {
		if p == v {
			return true
		}
	}
	return false
}

// NotPreOfRM reports whether v is safe as the target of a new backward
// extension from the rightmost vertex: it must not be the rightmost
// vertex's immediate tree-parent (that tree edge already exists).
func (c *Code) NotPreOfRM(v int) bool {
	parent, ok := c.parentOfRightMost()
	if !ok {
		return true
	}
	return v != parent
}

// ContainsEdge reports whether the code already has a step between
// vertices u and v, in either direction.
func (c *Code) ContainsEdge(u, v int) bool {
	for _, e := range c.Edges {
		if (e.V1 == u && e.V2 == v) || (e.V1 == v && e.V2 == u) {
			return true
		}
	}
	return false
}

// Equal reports whether c and o have the same steps in the same order.
func (c *Code) Equal(o *Code) bool {
	if len(c.Edges) != len(o.Edges) {
		return false
	}
	for i := range c.Edges {
		if !c.Edges[i].Equal(o.Edges[i]) {
			return false
		}
	}
	return true
}

func (c *Code) String() string {
	parts := make([]string, len(c.Edges))
	for i, e := range c.Edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

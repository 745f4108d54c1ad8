package failure

import "github.com/timtadh/cgspan/dfscode"

// trie indexes DFS codes known to cause early-termination failure, one
// child edge per step. dfscode.ExtendedEdge is a plain comparable struct,
// so it serves directly as a Go map key without the hashCode/equals
// boilerplate the ported Java Trie needed.
type trie struct {
	root *trieNode
}

type trieNode struct {
	children map[dfscode.ExtendedEdge]*trieNode
}

func newTrie() *trie {
	return &trie{root: &trieNode{children: make(map[dfscode.ExtendedEdge]*trieNode)}}
}

func (t *trie) insert(edges []dfscode.ExtendedEdge) {
	n := t.root
	for _, e := range edges {
		child, ok := n.children[e]
		if !ok {
			child = &trieNode{children: make(map[dfscode.ExtendedEdge]*trieNode)}
			n.children[e] = child
		}
		n = child
	}
}

func (t *trie) search(edges []dfscode.ExtendedEdge) bool {
	n := t.root
	for _, e := range edges {
		child, ok := n.children[e]
		if !ok {
			return false
		}
		n = child
	}
	return true
}

package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/dfscode"
)

func TestTrieInsertAndSearch(t *testing.T) {
	x := assert.New(t)
	tr := newTrie()
	edges := []dfscode.ExtendedEdge{
		{V1: 0, V2: 1, L1: 0, L2: 0, Le: 0},
		{V1: 1, V2: 2, L1: 0, L2: 1, Le: 0},
	}
	tr.insert(edges)

	x.True(tr.search(edges), "exact inserted path should be found")
	x.True(tr.search(edges[:1]), "a prefix of an inserted path should be found")
	other := []dfscode.ExtendedEdge{{V1: 0, V2: 1, L1: 9, L2: 9, Le: 9}}
	x.False(tr.search(other), "an unrelated path should not be found")
}

func TestTrieEmpty(t *testing.T) {
	x := assert.New(t)
	tr := newTrie()
	x.True(tr.search(nil), "an empty edge slice is trivially a prefix of the root, should report true")
	x.False(tr.search([]dfscode.ExtendedEdge{{V1: 0, V2: 1}}), "a fresh trie has no recorded paths")
}

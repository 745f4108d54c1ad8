package closure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timtadh/cgspan/graph"
	"github.com/timtadh/cgspan/projection"
)

func TestHasEquivalentOccurrenceTrue(t *testing.T) {
	x := assert.New(t)
	arena := projection.NewArena()
	parentTail := arena.Add(projection.Node{Edge: graph.ID{Gid: 0, Edge: 0}, Gid: 0, Prev: -1})
	childTail := arena.Add(projection.Node{Edge: graph.ID{Gid: 0, Edge: 1}, Gid: 0, Prev: parentTail})

	parent := projection.Build(arena, []int{parentTail})
	child := projection.Build(arena, []int{childTail})

	x.True(HasEquivalentOccurrence(arena, parent, child),
		"every parent occurrence has a matching child occurrence directly above it in the arena")
}

func TestHasEquivalentOccurrenceFalseWhenParentOccurrenceDropped(t *testing.T) {
	x := assert.New(t)
	arena := projection.NewArena()
	parentTail1 := arena.Add(projection.Node{Edge: graph.ID{Gid: 0, Edge: 0}, Gid: 0, Prev: -1})
	parentTail2 := arena.Add(projection.Node{Edge: graph.ID{Gid: 1, Edge: 0}, Gid: 1, Prev: -1})
	childTail := arena.Add(projection.Node{Edge: graph.ID{Gid: 0, Edge: 1}, Gid: 0, Prev: parentTail1})

	parent := projection.Build(arena, []int{parentTail1, parentTail2})
	child := projection.Build(arena, []int{childTail})

	x.False(HasEquivalentOccurrence(arena, parent, child),
		"child dropped the gid-1 occurrence, so it cannot be equivalent to parent")
}

func TestHasEquivalentOccurrenceFalseOnDifferentGraphIDs(t *testing.T) {
	x := assert.New(t)
	arena := projection.NewArena()
	parentTail := arena.Add(projection.Node{Edge: graph.ID{Gid: 0, Edge: 0}, Gid: 0, Prev: -1})
	childTail := arena.Add(projection.Node{Edge: graph.ID{Gid: 1, Edge: 0}, Gid: 1, Prev: -1})

	parent := projection.Build(arena, []int{parentTail})
	child := projection.Build(arena, []int{childTail})

	x.False(HasEquivalentOccurrence(arena, parent, child),
		"different graph-id coverage should never be equivalent")
}

package pruning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserveAndSupport(t *testing.T) {
	x := assert.New(t)
	m := NewLabelPairMatrix()
	m.Observe(0, 1, 2)
	m.Observe(1, 2, 1) // same unordered pair, reversed order, different graph
	m.Observe(2, 3, 4)

	x.Equal(2, m.Support(1, 2))
	x.Equal(2, m.Support(2, 1), "Support should be order-independent")
	x.Equal(1, m.Support(3, 4))
	x.Equal(0, m.Support(9, 9), "an unobserved pair should have 0 support")
}

func TestFrequent(t *testing.T) {
	x := assert.New(t)
	m := NewLabelPairMatrix()
	m.Observe(0, 1, 2)
	m.Observe(1, 1, 2)
	x.True(m.Frequent(1, 2, 2), "pair seen in 2 graphs should be frequent at minSupport=2")
	x.False(m.Frequent(1, 2, 3), "pair seen in 2 graphs should not be frequent at minSupport=3")
}

func TestDense(t *testing.T) {
	x := assert.New(t)
	m := NewLabelPairMatrix()
	m.Observe(0, 1, 2)
	m.Observe(0, 2, 3)
	d := m.Dense([]int{1, 2, 3})
	x.EqualValues(1, d.Get(0, 1))
	x.EqualValues(1, d.Get(1, 0), "dense matrix should be symmetric")
	x.EqualValues(1, d.Get(1, 2))
	x.EqualValues(0, d.Get(0, 2), "labels 1 and 3 never co-occurred")
}

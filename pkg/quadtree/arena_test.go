package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternLeafIsCanonical(t *testing.T) {
	a := NewArena(nil)
	h1, err := a.InternLeaf(0xFF)
	require.NoError(t, err)
	h2, err := a.InternLeaf(0xFF)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	h3, err := a.InternLeaf(0xF0)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestInternInnerIsCanonical(t *testing.T) {
	a := NewArena(nil)
	leaf, err := a.InternLeaf(1)
	require.NoError(t, err)
	empty := a.Empty(MinLevel)

	h1, err := a.InternInner(leaf, empty, empty, empty)
	require.NoError(t, err)
	h2, err := a.InternInner(leaf, empty, empty, empty)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	h3, err := a.InternInner(empty, leaf, empty, empty)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
}

func TestEmptyChainIsMemoizedAndAllDead(t *testing.T) {
	a := NewArena(nil)
	e3 := a.Empty(MinLevel)
	e4 := a.Empty(MinLevel + 1)
	e4Again := a.Empty(MinLevel + 1)
	assert.Equal(t, e4, e4Again)
	assert.EqualValues(t, 0, a.Population(e3))
	assert.EqualValues(t, 0, a.Population(e4))
	assert.Equal(t, e3, a.Child(e4, NW))
	assert.Equal(t, e3, a.Child(e4, SE))
}

func TestPopulationIsSumOfChildren(t *testing.T) {
	a := NewArena(nil)
	empty := a.Empty(MinLevel)
	leaf, err := a.InternLeaf(0x0F) // 4 live cells
	require.NoError(t, err)
	inner, err := a.InternInner(leaf, empty, leaf, empty)
	require.NoError(t, err)
	assert.EqualValues(t, 8, a.Population(inner))
}

func TestArenaRespectsMaxNodes(t *testing.T) {
	a := NewArena(nil)
	a.MaxNodes = a.NumNodes() + 1 // room for exactly one more leaf
	_, err := a.InternLeaf(1)
	require.NoError(t, err)
	_, err = a.InternLeaf(2)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestLeafWordPanicsOnInnerNode(t *testing.T) {
	a := NewArena(nil)
	empty := a.Empty(MinLevel)
	inner, err := a.InternInner(empty, empty, empty, empty)
	require.NoError(t, err)
	assert.Panics(t, func() { a.LeafWord(inner) })
}

func TestChildPanicsOnLeaf(t *testing.T) {
	a := NewArena(nil)
	leaf, err := a.InternLeaf(0)
	require.NoError(t, err)
	assert.Panics(t, func() { a.Child(leaf, NW) })
}

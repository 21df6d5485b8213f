package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hackpuzzles/core"
)

// TestGraph_AddVertex checks validation and idempotence.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(-1), core.ErrBadVertexID)

	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3))
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(4))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdge covers endpoint creation, mirroring and constraint errors.
func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	require.NoError(t, g.AddEdge(1, 2))
	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1), "undirected edge must be mirrored")

	assert.ErrorIs(t, g.AddEdge(2, 1), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(5, 5), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(-1, 2), core.ErrBadVertexID)
	assert.False(t, g.HasVertex(5), "rejected loop must not create a vertex")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestGraph_Ordering locks in ascending Vertices and NeighborIDs.
func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{5, 1}, {5, 9}, {5, 3}, {0, 9}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	assert.Equal(t, []int{0, 1, 3, 5, 9}, g.Vertices())

	nbrs, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 9}, nbrs)

	_, err = g.NeighborIDs(42)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_Concurrent adds disjoint edges from many goroutines.
func TestGraph_Concurrent(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.AddEdge(base*1000+i, base*1000+i+1)
				_ = g.HasEdge(base*1000, base*1000+1)
			}
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 8*50, g.EdgeCount())
	assert.Equal(t, 8*51, g.VertexCount())
}

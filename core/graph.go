package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrBadVertexID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrBadVertexID, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// AddEdge connects from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, create endpoints, reject an existing edge.
//  3. Record the edge in both neighbor sets.
//
// Errors:
//   - ErrBadVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: edge %d-%d", ErrBadVertexID, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, from, to)
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether from and to are adjacent.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the neighbors of id in ascending order.
// The slice is freshly allocated and safe to retain.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(d log d) for degree d.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	ids := make([]int, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids, nil
}

// Vertices returns every vertex ID in ascending order.
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns |E|; each undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ensureVertex creates an empty neighbor set for id. Caller holds mu.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}

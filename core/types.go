// Package core declares the Graph type, its constructor and sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex ID.
	ErrBadVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the edge already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Graph is an undirected, unweighted simple graph.
//
// adjacency[v] holds the neighbor set of v; every edge is stored in both
// endpoint sets. mu guards adjacency and edgeCount.
type Graph struct {
	mu        sync.RWMutex
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int]map[int]struct{}, n)
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Package core provides a small thread-safe, in-memory undirected graph keyed
// by non-negative integer vertex IDs.
//
// It is the graph substrate for the social puzzles in this module: students
// are vertices, friendships are edges.
//
// Guarantees:
//
//   - Simple graph: no self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - Deterministic iteration: Vertices() and NeighborIDs() return ascending IDs.
//   - One sync.RWMutex guards the vertex set and adjacency together, so every
//     method is safe to call from multiple goroutines.
//
// Core Methods:
//
//	AddVertex(id int) error                // O(1)
//	HasVertex(id int) bool                 // O(1)
//	AddEdge(from, to int) error            // O(1)
//	HasEdge(from, to int) bool             // O(1)
//	NeighborIDs(id int) ([]int, error)     // O(d log d)
//	Vertices() []int                       // O(V log V)
//	VertexCount(), EdgeCount() int         // O(1)
//
// Errors:
//
//	ErrBadVertexID          - vertex ID is negative.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrLoopNotAllowed       - edge from a vertex to itself.
//	ErrMultiEdgeNotAllowed  - edge already present.
package core

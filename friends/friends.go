// Package friends picks whom student 1 may invite to a project presentation.
//
// Students are numbered 1..n and friendships are undirected. Student 1 wants
// to invite friends, but not student 2, nor any friend of student 2, nor any
// friend of those friends. Links that pass through student 1 do not count:
// student 1 never bars anyone.
//
// The friendships are loaded into a core.Graph and a depth-2 BFS from student
// 2, with student 1 filtered out, marks everyone who is barred.
//
// Complexity: O(E log E) time, O(V + E) memory for E friendships.
package friends

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/hackpuzzles/bfs"
	"github.com/katalvlaran/hackpuzzles/core"
)

const (
	// Host is the student sending invitations.
	Host = 1

	// Rival is the student whose circle is excluded.
	Rival = 2

	// NoInvitees is the lone element returned when nobody can be invited.
	NoInvitees = -1

	// barDepth is how far the rival's circle reaches: friends and their friends.
	barDepth = 2
)

// ErrBadStudentCount is returned when n is negative.
var ErrBadStudentCount = errors.New("friends: student count must be non-negative")

// Invitees returns, in ascending order, the friends of student 1 that are
// neither student 2 nor within two friendship hops of student 2 (ignoring
// paths through student 1). Friendships naming a student outside 1..n are
// ignored; duplicates and self-friendships are harmless.
//
// If nobody qualifies the result is []int{NoInvitees}.
func Invitees(n int, friendships [][2]int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStudentCount, n)
	}
	g, err := buildGraph(n, friendships)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(Host) {
		return []int{NoInvitees}, nil
	}

	barred := map[int]bool{Host: true, Rival: true}
	if g.HasVertex(Rival) {
		res, err := bfs.BFS(g, Rival,
			bfs.WithMaxDepth(barDepth),
			bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != Host }),
		)
		if err != nil {
			return nil, fmt.Errorf("friends: rival circle: %w", err)
		}
		for _, id := range res.Order {
			barred[id] = true
		}
	}

	friends, err := g.NeighborIDs(Host)
	if err != nil {
		return nil, fmt.Errorf("friends: host friends: %w", err)
	}
	out := make([]int, 0, len(friends))
	for _, f := range friends {
		if !barred[f] {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return []int{NoInvitees}, nil
	}
	sort.Ints(out)

	return out, nil
}

// buildGraph keeps the friendships whose endpoints are valid students.
func buildGraph(n int, friendships [][2]int) (*core.Graph, error) {
	g := core.NewGraph()
	for _, f := range friendships {
		a, b := f[0], f[1]
		if a < 1 || b < 1 || a > n || b > n {
			continue
		}
		err := g.AddEdge(a, b)
		switch {
		case err == nil,
			errors.Is(err, core.ErrMultiEdgeNotAllowed),
			errors.Is(err, core.ErrLoopNotAllowed):
		default:
			return nil, fmt.Errorf("friends: add %d-%d: %w", a, b, err)
		}
	}

	return g, nil
}

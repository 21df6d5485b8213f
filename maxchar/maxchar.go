// Package maxchar answers "maximal char" interval queries: for each inclusive
// interval of a string, how often does its greatest letter occur?
//
// Letters compare case-insensitively ('Z' and 'z' are the same letter and the
// greatest); other bytes are ignored.
//
// How
//
//	One pass records the sorted positions of every letter. Letters are then
//	scanned from 'z' down; a query is settled by the first letter that occurs
//	inside it, counted with two binary searches over that letter's positions.
//
// Complexity: O(n + 26·q·log n) time, O(n) memory for q queries.
package maxchar

import "sort"

const alphabet = 26

// Query is an inclusive index interval [Lo, Hi]. Bounds outside the string
// are clamped; an interval that is empty after clamping counts 0.
type Query struct {
	Lo, Hi int
}

// MaxCharCounts returns, for every query, the count of the greatest letter
// within the interval.
func MaxCharCounts(s string, queries []Query) []int {
	positions := letterPositions(s)
	res := make([]int, len(queries))
	for c := alphabet - 1; c >= 0; c-- {
		if len(positions[c]) == 0 {
			continue
		}
		for i, q := range queries {
			if res[i] == 0 {
				res[i] = countWithin(positions[c], q, len(s))
			}
		}
	}

	return res
}

// letterPositions maps each letter (0 = 'a') to its ascending byte offsets.
func letterPositions(s string) [alphabet][]int {
	var pos [alphabet][]int
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			pos[c-'a'] = append(pos[c-'a'], i)
		case c >= 'A' && c <= 'Z':
			pos[c-'A'] = append(pos[c-'A'], i)
		}
	}

	return pos
}

// countWithin counts positions inside q after clamping it to [0, n-1].
func countWithin(positions []int, q Query, n int) int {
	lo, hi := max(0, q.Lo), min(n-1, q.Hi)
	if lo > hi {
		return 0
	}
	first := sort.SearchInts(positions, lo)
	past := sort.SearchInts(positions, hi+1)

	return past - first
}

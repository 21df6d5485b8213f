// Package bucket maximizes the "product distribution" score.
//
// Integers are poured into buckets labelled 1, 2, 3, … A bucket may only be
// started once the previous one holds m integers; leftovers that cannot fill
// a new bucket go into the last one. Each integer scores value × label.
//
// Sorting ascending puts the smallest values under the smallest labels,
// which maximizes the total.
//
// Complexity: O(n log n) time, O(n) memory.
package bucket

import (
	"errors"
	"fmt"
	"sort"
)

// Modulus is the prime the score is reported modulo.
const Modulus = 1_000_000_007

// ErrBadThreshold is returned when the bucket size m is not positive.
var ErrBadThreshold = errors.New("bucket: threshold must be positive")

// MaxScore returns the best achievable score modulo Modulus. The input slice
// is not modified. With fewer than m integers no bucket fills and the score is 0.
func MaxScore(a []int, m int) (int, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadThreshold, m)
	}
	sorted := append([]int(nil), a...)
	sort.Ints(sorted)

	buckets := len(sorted) / m
	score := 0
	for i, v := range sorted {
		label := min(i/m+1, buckets)
		score = (score + mod(v)*label%Modulus) % Modulus
	}

	return score, nil
}

// mod reduces v into [0, Modulus).
func mod(v int) int {
	v %= Modulus
	if v < 0 {
		v += Modulus
	}

	return v
}

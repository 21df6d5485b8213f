package coefficient

// Ring is a fixed-size circular view over interior runs. Indices are taken
// modulo Len, so a Window may wrap past the end of the underlying slice.
//
// A Ring memoizes window sums keyed by Window. It belongs to a single
// Estimate call and is not safe for concurrent use.
type Ring struct {
	runs Runs
	memo map[Window]int
}

// NewRing copies runs into a new Ring with an empty memo.
func NewRing(runs Runs) *Ring {
	cp := make(Runs, len(runs))
	copy(cp, runs)

	return &Ring{runs: cp, memo: make(map[Window]int)}
}

// Len returns the number of runs in the ring.
func (r *Ring) Len() int { return len(r.runs) }

// At returns the run at ring index i (any integer, wrapped modulo Len).
func (r *Ring) At(i int) int { return r.runs[r.index(i)] }

// Window builds the normalized window [left, left+size) in ring coordinates.
func (r *Ring) Window(left, size int) Window {
	return Window{Left: r.index(left), Right: r.index(left + size)}
}

// Size returns how many runs w covers.
func (r *Ring) Size(w Window) int {
	return r.index(w.Right - w.Left)
}

// Sum returns the total of the runs in w, consulting the memo first.
//
// Complexity: O(Size(w)) on a miss, O(1) on a hit.
func (r *Ring) Sum(w Window) int {
	if s, ok := r.memo[w]; ok {
		return s
	}
	size := r.Size(w)
	s := 0
	for i := 0; i < size; i++ {
		s += r.At(w.Left + i)
	}
	r.memo[w] = s

	return s
}

// Shift moves w two runs clockwise. The new sum is derived from sum by
// dropping the two runs that leave and adding the two that enter, unless
// the memo already knows it.
//
// Complexity: O(1).
func (r *Ring) Shift(w Window, sum int) (Window, int) {
	next := Window{Left: r.index(w.Left + 2), Right: r.index(w.Right + 2)}
	if s, ok := r.memo[next]; ok {
		return next, s
	}
	sum += r.At(w.Right) + r.At(w.Right+1) - r.At(w.Left) - r.At(w.Left+1)
	r.memo[next] = sum

	return next, sum
}

// Memoized reports how many window sums the ring has recorded.
func (r *Ring) Memoized() int { return len(r.memo) }

func (r *Ring) index(i int) int {
	n := len(r.runs)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}

	return i
}

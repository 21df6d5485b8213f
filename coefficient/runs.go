package coefficient

// Runs holds the lengths of maximal runs of identical bits, in order.
// Every entry is ≥ 1 and the entries sum to the length of the source string.
// Bit values alternate implicitly from one run to the next.
type Runs []int

// Condense returns the run-length sequence of b. An empty string has no runs.
//
// Complexity: O(n).
func Condense(b BinaryString) Runs {
	n := b.Len()
	if n == 0 {
		return Runs{}
	}
	runs := make(Runs, 0, 8)
	count := 1
	for i := 1; i < n; i++ {
		if b.At(i) == b.At(i-1) {
			count++
			continue
		}
		runs = append(runs, count)
		count = 1
	}

	return append(runs, count)
}

// Interior drops the first and last run. Those belong to the leading and
// trailing chunks and never count toward the coefficient.
func (r Runs) Interior() Runs {
	if len(r) <= 2 {
		return Runs{}
	}

	return r[1 : len(r)-1]
}

// Strip drops k runs from each end. Stripping past the middle yields no runs.
func (r Runs) Strip(k int) Runs {
	if 2*k >= len(r) {
		return Runs{}
	}

	return r[k : len(r)-k]
}

// Sum returns the total length covered by the runs.
func (r Runs) Sum() int {
	total := 0
	for _, v := range r {
		total += v
	}

	return total
}

// Coefficient returns the coefficient of b with no flips applied:
// the combined length of all interior runs.
func Coefficient(b BinaryString) int {
	return Condense(b).Interior().Sum()
}

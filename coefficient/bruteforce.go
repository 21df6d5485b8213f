package coefficient

// BruteForce returns the true minimum coefficient of s reachable with at
// most p flips by trying every flip range at every level.
//
// Flipping the whole string leaves the coefficient unchanged, so spending
// exactly p flips reaches everything "at most p" does.
//
// Complexity: O((n(n+1)/2)^p · n) time, O(p·n) memory. Callers must bound n
// and p; it is meant as a reference for small inputs only.
func BruteForce(s string, p int) (int, error) {
	b, err := Parse(s)
	if err != nil {
		return 0, err
	}

	return BruteForceBits(b, p)
}

// BruteForceBits is BruteForce for an already parsed BinaryString.
func BruteForceBits(b BinaryString, p int) (int, error) {
	if err := checkBudget(p); err != nil {
		return 0, err
	}

	return bruteForce(b, p), nil
}

func bruteForce(b BinaryString, p int) int {
	n := b.Len()
	if n == 0 {
		return 0
	}
	if p == 0 {
		return edgeCoefficient(b)
	}
	best := -1
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			flipped, _ := b.Flip(i, j) // 0 ≤ i ≤ j < n
			c := bruteForce(flipped, p-1)
			if best < 0 || c < best {
				best = c
			}
			if best == 0 {
				return 0
			}
		}
	}

	return best
}

// edgeCoefficient measures the leading and trailing chunks directly,
// independent of Condense: n − lead − trail, floored at 0.
func edgeCoefficient(b BinaryString) int {
	n := b.Len()
	lead := 1
	for lead < n && b.At(lead) == b.At(0) {
		lead++
	}
	trail := 1
	for trail < n && b.At(n-1-trail) == b.At(n-1) {
		trail++
	}

	return max(0, n-lead-trail)
}

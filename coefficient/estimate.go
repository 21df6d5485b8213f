package coefficient

// Estimate returns the minimum coefficient of s reachable with at most p
// range flips. s must contain only '0' and '1'.
//
// Returns ErrNegativeBudget, ErrInvalidSymbol or ErrOptionViolation on bad input.
//
// Example:
//
//	v, err := Estimate("1101011111000001110001110001", 3) // v == 3
func Estimate(s string, p int, opts ...Option) (int, error) {
	res, err := Explain(s, p, opts...)

	return res.Value, err
}

// EstimateBits is Estimate for an already parsed BinaryString.
func EstimateBits(b BinaryString, p int, opts ...Option) (int, error) {
	res, err := ExplainBits(b, p, opts...)

	return res.Value, err
}

// MinCoefficient is Estimate with default options.
func MinCoefficient(s string, p int) (int, error) {
	return Estimate(s, p)
}

// Explain runs the estimator on s and reports which strategy won.
func Explain(s string, p int, opts ...Option) (Result, error) {
	b, err := Parse(s)
	if err != nil {
		return Result{}, err
	}

	return ExplainBits(b, p, opts...)
}

// ExplainBits runs the estimator on b and reports which strategy won.
//
// Steps:
//  1. p == 0 or an empty string: the plain coefficient.
//  2. Condense b and keep the L interior runs as a Ring.
//  3. 2p ≥ L: every interior run can be removed, result 0.
//  4. For each depth k in 0..min(MaxRangeFlipDepth, p), strip k runs from
//     each end and sweep windows of 2(p−k) runs across the wrap point.
//  5. Return the smallest coefficient; ties keep the shallower depth.
//
// Complexity: O(n + L·d) time, O(L) memory.
func ExplainBits(b BinaryString, p int, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = checkBudget(p); err != nil {
		return Result{}, err
	}

	interior := Condense(b).Interior()
	total := interior.Sum()
	if p == 0 || total == 0 {
		return Result{Value: total}, nil
	}
	if 2*p >= len(interior) {
		return Result{Cleared: true}, nil
	}

	e := &estimator{ring: NewRing(interior), budget: p}
	best := Result{Value: total}
	deepest := min(o.MaxRangeFlipDepth, p)
	for depth := 0; depth <= deepest; depth++ {
		w, sum := e.bestWindow(depth)
		if v := total - sum; v < best.Value || depth == 0 {
			best = Result{Value: v, Depth: depth, Removed: w}
		}
	}

	return best, nil
}

// estimator carries the per-call state of one ExplainBits invocation.
type estimator struct {
	ring   *Ring
	budget int
}

// bestWindow finds the heaviest removable window after stripping depth
// outer pairs.
//
// In ring coordinates the stripped pairs sit on both sides of the wrap point,
// so stripping k pairs and then removing a window of 2(p−k) runs from the
// stripped view is the same as removing a 2p-run window from the full ring
// that starts k runs later. Sums therefore always cover the stripped runs
// too, and branches of different depth hit the same memo entries.
//
// The first window starts at L−2p+k; each of the p−k shifts moves it two
// runs clockwise, ending at [L−k, 2p−k).
func (e *estimator) bestWindow(depth int) (Window, int) {
	size := 2 * e.budget
	w := e.ring.Window(e.ring.Len()-size+depth, size)
	sum := e.ring.Sum(w)
	bestW, bestSum := w, sum
	for i := 0; i < e.budget-depth; i++ {
		w, sum = e.ring.Shift(w, sum)
		if sum > bestSum {
			bestW, bestSum = w, sum
		}
	}

	return bestW, bestSum
}

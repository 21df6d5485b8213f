// Package coefficient minimizes the "string coefficient" of a binary string
// under a budget of range flips, and ships an exhaustive oracle to verify it.
//
// What
//
//   - The coefficient of a binary string is the number of bits that are not
//     part of its leading or trailing run: every 0 sandwiched between 1s and
//     every 1 sandwiched between 0s. "110100100" has runs 2,1,1,2,1,2 and
//     coefficient 1+1+2+1 = 5.
//   - A flip inverts every bit of a contiguous range [start, end].
//   - Estimate returns the smallest coefficient reachable with at most p flips.
//   - BruteForce returns the same quantity by trying every flip range,
//     recursively. It is exponential in p and exists to cross-check Estimate.
//
// How
//
//	The string is condensed into run lengths and the first and last runs are
//	dropped, leaving the interior runs that make up the coefficient. The
//	interior runs are viewed as a ring (index arithmetic modulo its length).
//
//	One flip can swallow the two interior runs next to either edge, so p flips
//	remove a window of 2p runs that straddles the ring's wrap point. Windows
//	are swept two runs at a time with an incrementally maintained sum.
//
//	A "range flip" instead inverts the whole interior, stripping one run from
//	each end. Depth k strips k pairs and leaves p-k flips for the window sweep.
//	Depths 0..MaxRangeFlipDepth are tried and the minimum wins. All depths
//	share one memo of window sums keyed by Window in ring coordinates.
//
// Limitations
//
//	Only range-flip depths up to MaxRangeFlipDepth (2) are searched unless
//	WithMaxRangeFlipDepth raises the bound. Deeper range flips are not tried.
//
// Complexity (n = len(s), L = interior runs)
//
//   - Estimate:   O(n + L·d) time, O(L) memory for d searched depths.
//   - BruteForce: O((n²)^p · n) time; keep n ≲ 16 and p ≤ 2.
//
// Usage
//
//	v, err := coefficient.Estimate("110100100", 1) // v == 2
//	if err != nil {
//	    // ErrNegativeBudget, ErrInvalidSymbol or ErrOptionViolation
//	}
//
//	want, _ := coefficient.BruteForce("110100100", 1)
//
// Errors
//
//   - ErrNegativeBudget   if p < 0.
//   - ErrInvalidSymbol    if s contains anything but '0' and '1'.
//   - ErrFlipOutOfRange   if Flip is asked for an invalid range.
//   - ErrOptionViolation  for invalid options or CrossCheck settings.
package coefficient

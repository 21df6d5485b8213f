package coefficient

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Bounds that keep BruteForce affordable inside CrossCheck.
const (
	// MaxOracleLength is the longest random input CrossCheck accepts.
	MaxOracleLength = 24

	// MaxOracleBudget is the largest flip budget CrossCheck accepts.
	MaxOracleBudget = 3
)

// CrossCheckOptions configures CrossCheck.
type CrossCheckOptions struct {
	// Cases is the number of random strings to draw.
	Cases int

	// Length is the length of every random string (≤ MaxOracleLength).
	Length int

	// Budgets lists the flip budgets to verify for each string (each ≤ MaxOracleBudget).
	Budgets []int

	// Seed selects the input stream; 0 means the package default seed.
	Seed int64

	// Workers bounds concurrent cases; 0 means GOMAXPROCS.
	Workers int

	// Estimator options forwarded to Estimate.
	Estimator []Option
}

// DefaultCrossCheckOptions returns 25 strings of 16 bits checked at p = 1 and 2.
func DefaultCrossCheckOptions() CrossCheckOptions {
	return CrossCheckOptions{
		Cases:   25,
		Length:  16,
		Budgets: []int{1, 2},
	}
}

// Mismatch records one input where Estimate and BruteForce disagree.
type Mismatch struct {
	Input  string
	Budget int
	Got    int // Estimate
	Want   int // BruteForce
}

// String renders the mismatch the way a failing driver line reads.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s (p=%d) failed with %d expected %d", m.Input, m.Budget, m.Got, m.Want)
}

// CrossCheckReport summarizes a CrossCheck run.
type CrossCheckReport struct {
	// Checked counts (string, budget) pairs evaluated.
	Checked int

	// Mismatches lists disagreements in case order, then budget order.
	Mismatches []Mismatch
}

// Passed reports whether every pair agreed.
func (r *CrossCheckReport) Passed() bool { return len(r.Mismatches) == 0 }

// CrossCheck draws random binary strings and compares Estimate against
// BruteForce for every configured budget. Cases run on a bounded worker
// pool; the report is identical for a given seed regardless of Workers.
//
// Returns ErrOptionViolation for invalid options and ctx.Err() if the
// context is cancelled before all cases finish.
func CrossCheck(ctx context.Context, opts CrossCheckOptions) (*CrossCheckReport, error) {
	if err := validateCrossCheck(opts); err != nil {
		return nil, err
	}
	if _, err := buildOptions(opts.Estimator); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	found := make([][]Mismatch, opts.Cases)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < opts.Cases; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			input := randomBits(caseRNG(opts.Seed, i), opts.Length)
			m, err := checkOne(input, opts.Budgets, opts.Estimator)
			if err != nil {
				return fmt.Errorf("coefficient: case %d (%s): %w", i, input, err)
			}
			found[i] = m

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &CrossCheckReport{Checked: opts.Cases * len(opts.Budgets)}
	for _, m := range found {
		rep.Mismatches = append(rep.Mismatches, m...)
	}

	return rep, nil
}

// CheckFixtures runs Estimate over fixtures and returns every case whose
// result differs from Want.
func CheckFixtures(fixtures []Fixture, opts ...Option) ([]Mismatch, error) {
	var out []Mismatch
	for _, f := range fixtures {
		got, err := Estimate(f.Input, f.Budget, opts...)
		if err != nil {
			return nil, fmt.Errorf("coefficient: fixture %q (p=%d): %w", f.Input, f.Budget, err)
		}
		if got != f.Want {
			out = append(out, Mismatch{Input: f.Input, Budget: f.Budget, Got: got, Want: f.Want})
		}
	}

	return out, nil
}

func checkOne(input string, budgets []int, opts []Option) ([]Mismatch, error) {
	b, err := Parse(input)
	if err != nil {
		return nil, err
	}
	var out []Mismatch
	for _, p := range budgets {
		got, err := EstimateBits(b, p, opts...)
		if err != nil {
			return nil, err
		}
		want, err := BruteForceBits(b, p)
		if err != nil {
			return nil, err
		}
		if got != want {
			out = append(out, Mismatch{Input: input, Budget: p, Got: got, Want: want})
		}
	}

	return out, nil
}

// validateCrossCheck enforces the oracle bounds and basic sanity.
//
// Complexity: O(len(Budgets)).
func validateCrossCheck(opts CrossCheckOptions) error {
	if opts.Cases < 0 {
		return fmt.Errorf("%w: Cases cannot be negative (%d)", ErrOptionViolation, opts.Cases)
	}
	if opts.Length < 0 || opts.Length > MaxOracleLength {
		return fmt.Errorf("%w: Length %d outside [0, %d]", ErrOptionViolation, opts.Length, MaxOracleLength)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, opts.Workers)
	}
	if len(opts.Budgets) == 0 {
		return fmt.Errorf("%w: no budgets to check", ErrOptionViolation)
	}
	for _, p := range opts.Budgets {
		if p < 0 || p > MaxOracleBudget {
			return fmt.Errorf("%w: budget %d outside [0, %d]", ErrOptionViolation, p, MaxOracleBudget)
		}
	}

	return nil
}

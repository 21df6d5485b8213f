// Package coefficient defines options, result types and sentinel errors
// shared by the estimator, the oracle and the cross-checker.
package coefficient

import (
	"errors"
	"fmt"
)

// Sentinel errors for coefficient operations.
var (
	// ErrNegativeBudget is returned when the flip budget p is negative.
	ErrNegativeBudget = errors.New("coefficient: flip budget must be non-negative")

	// ErrInvalidSymbol is returned when the input holds a character other than '0' or '1'.
	ErrInvalidSymbol = errors.New("coefficient: input must contain only '0' and '1'")

	// ErrFlipOutOfRange is returned when a flip range is not 0 ≤ start ≤ end < n.
	ErrFlipOutOfRange = errors.New("coefficient: flip range out of bounds")

	// ErrOptionViolation is returned when an invalid Option or CrossCheckOptions is supplied.
	ErrOptionViolation = errors.New("coefficient: invalid option supplied")
)

// MaxRangeFlipDepth is the default number of outer run pairs the estimator
// may strip with range flips before sweeping windows.
const MaxRangeFlipDepth = 2

// Window is a half-open range [Left, Right) over a ring of interior runs.
// Both ends are ring indices in [0, L); Left == Right denotes an empty window.
type Window struct {
	Left  int
	Right int
}

// Result describes the best estimate found for one input.
type Result struct {
	// Value is the minimum coefficient found.
	Value int

	// Depth is the number of outer run pairs stripped by range flips.
	Depth int

	// Removed is the window of interior runs (stripped pairs included)
	// that the flips take out of the coefficient. Zero when nothing is removed
	// or when the budget covers every interior run.
	Removed Window

	// Cleared reports that the budget covers every interior run.
	Cleared bool
}

// Option configures the estimator via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation on use.
type Option func(*Options)

// Options holds estimator parameters.
type Options struct {
	// MaxRangeFlipDepth bounds the range-flip depths tried (0 disables range flips).
	MaxRangeFlipDepth int

	err error
}

// DefaultOptions returns Options with MaxRangeFlipDepth = MaxRangeFlipDepth.
func DefaultOptions() Options {
	return Options{MaxRangeFlipDepth: MaxRangeFlipDepth}
}

// WithMaxRangeFlipDepth overrides the deepest range flip searched.
//
//	d ≥ 0: search depths 0..d
//	d < 0: invalid option → ErrOptionViolation
func WithMaxRangeFlipDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxRangeFlipDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxRangeFlipDepth = d
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func checkBudget(p int) error {
	if p < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeBudget, p)
	}

	return nil
}

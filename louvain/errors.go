package louvain

import "errors"

// Sentinel errors for the louvain package.
var (
	// ErrInvalidGraph indicates the input CSR graph failed validation: a
	// malformed offsets array, an out-of-range neighbor index, a negative
	// or non-finite weight, n < 1, or m < 0. Wrapped with %w to carry the
	// specific reason.
	ErrInvalidGraph = errors.New("louvain: invalid input graph")

	// ErrNumericalDegeneracy indicates a cluster weight went negative beyond
	// tolerance, or modularity evaluated to NaN. Both are unrecoverable
	// programming-defect signals; the run aborts with no partial result.
	ErrNumericalDegeneracy = errors.New("louvain: numerical degeneracy detected")
)

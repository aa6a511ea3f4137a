package boxprune

import "fmt"

// ErrEmptyInput indicates degenerate arguments: BipartiteBoxPruning
// returns it when either box slice is empty or nil. No pairs are
// emitted and no side effects occur. CompleteBoxPruning never returns
// it; an empty set there succeeds with no pairs.
var ErrEmptyInput = fmt.Errorf("boxprune: %w", errEmptyInput)
var errEmptyInput = fmt.Errorf("box set is empty or missing")

// AllocationError is returned when one of the intermediate sort/layout
// buffers could not be allocated. Any buffers already allocated for the
// same call are released before the error is returned, since they are
// only ever referenced by local variables that go out of scope on
// return.
type AllocationError struct {
	Stage string // which operation failed: "complete" or "bipartite"
	Cause error
}

func (e AllocationError) Error() string {
	return fmt.Sprintf("boxprune: allocation failed during %s: %v", e.Stage, e.Cause)
}

func (e AllocationError) Unwrap() error {
	return e.Cause
}

package boxprune

import (
	"fmt"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/katalvlaran/boxprune/internal/layout"
	"github.com/katalvlaran/boxprune/internal/radixsort"
)

// Sink receives emitted pairs of box indices, positioned in the
// caller's original (pre-sort) ordering. It is borrowed for the call's
// duration.
type Sink interface {
	Append(a, b uint32)
}

// CompleteBoxPruning enumerates every unordered pair (i, j), i != j,
// such that boxes[i] and boxes[j] overlap under opts's predicate
// variant. For len(boxes) 0 or 1 it emits nothing and returns nil — an
// empty or singleton set has no pairs to find, so it is not an error.
//
// opts may be nil, in which case DefaultOptions() is used.
func CompleteBoxPruning(boxes []boxaabb.AABB, sink Sink, opts *Options) (err error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if verr := opts.Validate(); verr != nil {
		return verr
	}
	if len(boxes) <= 1 {
		return nil
	}

	defer recoverAllocation(&err, "complete")

	state := opts.State
	if state == nil {
		state = radixsort.NewState(opts.Sorter)
	}

	sorted := layout.Build(boxes, opts.Axis, opts.Safe, state)
	layout.SweepComplete(sorted, opts.Safe, sink)
	return nil
}

// BipartiteBoxPruning enumerates every ordered pair (i, j) such that
// a[i] and b[j] overlap. Unlike CompleteBoxPruning, an empty set on
// either side is reported as ErrEmptyInput rather than an empty result
// — a caller wanting "no pairs on empty input" must check sizes before
// calling.
//
// opts may be nil, in which case DefaultOptions() is used. opts.State,
// if set, warm-starts only the A-side sort; the B-side sort always
// starts fresh, since a single State cannot coherently track two
// independent box sets.
func BipartiteBoxPruning(a, b []boxaabb.AABB, sink Sink, opts *Options) (err error) {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	if verr := opts.Validate(); verr != nil {
		return verr
	}
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}

	defer recoverAllocation(&err, "bipartite")

	stateA := opts.State
	if stateA == nil {
		stateA = radixsort.NewState(opts.Sorter)
	}
	stateB := radixsort.NewState(opts.Sorter)

	layoutA := layout.Build(a, opts.Axis, opts.Safe, stateA)
	layoutB := layout.Build(b, opts.Axis, opts.Safe, stateB)
	layout.SweepBipartite(layoutA, layoutB, opts.Safe, sink)
	return nil
}

// recoverAllocation converts a panic raised while building the
// intermediate sort/layout buffers into an AllocationError instead of
// propagating the panic. Buffers already
// allocated for the call are local variables that simply go out of
// scope; there is nothing further to release.
func recoverAllocation(err *error, stage string) {
	if r := recover(); r != nil {
		*err = AllocationError{Stage: stage, Cause: fmt.Errorf("%v", r)}
	}
}

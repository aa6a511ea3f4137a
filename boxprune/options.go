package boxprune

import (
	"errors"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/katalvlaran/boxprune/internal/radixsort"
)

// ErrMismatchedSorterState indicates State was built for a different
// radixsort.Kind than Sorter names.
var ErrMismatchedSorterState = errors.New("boxprune: State.Kind() does not match Sorter")

// Options configures a pruning call.
//
//	Axis   - primary sweep axis.
//	Safe   - true selects the face-touching-counts-as-overlap variant
//	         (the default); false selects the strict variant, which
//	         uses strict inequalities on the two secondary axes and so
//	         excludes boxes touching only along a secondary-axis face.
//	         The primary-axis test is inclusive in both variants, so
//	         boxes touching only along a primary-axis face are still
//	         reported when Safe is false.
//	Sorter - which sort drives the layout build; radix and insertion
//	         both produce an equally valid ordering.
//	State  - optional warm-start sort state, reused across calls on
//	         box sets whose ordering only changes a little between
//	         calls. When nil, a fresh one-shot state is used internally
//	         and discarded after the call. When set, its Kind() must
//	         equal Sorter.
type Options struct {
	Axis   boxaabb.Axis
	Safe   bool
	Sorter radixsort.Kind
	State  *radixsort.State
}

// DefaultOptions returns the reference configuration:
//
//	Axis:   boxaabb.AxisX
//	Safe:   true
//	Sorter: radixsort.Radix
//	State:  nil
func DefaultOptions() Options {
	return Options{
		Axis:   boxaabb.AxisX,
		Safe:   true,
		Sorter: radixsort.Radix,
		State:  nil,
	}
}

// Validate reports whether o holds a usable combination, namely that a
// supplied State (if any) was built for the same Sorter kind.
func (o *Options) Validate() error {
	if o.State != nil && o.State.Kind() != o.Sorter {
		return ErrMismatchedSorterState
	}
	return nil
}

package radixsort

// State holds the scratch buffers a sorter needs across calls. A fresh
// State always behaves identically to a one-shot sort; the only effect
// of reusing a State across calls is that Insertion starts from the
// previous call's permutation instead of identity order, which is where
// its frame-coherence speedup comes from. Radix ignores any carried-over
// order — it always recomputes from scratch in O(N).
//
// A State is not safe for concurrent use: each concurrent caller must
// own its own sort state.
type State struct {
	kind Kind

	ranks   []uint32 // current permutation, length == last Sort's N
	keys    []uint32 // sort keys (flipped float bits), scratch
	tmpKeys []uint32 // radix double-buffer
	tmpIdx  []uint32 // radix double-buffer
	primed  bool     // true once ranks holds a valid permutation of lastN
	lastN   int      // box count (incl. sentinel) the carried-over ranks was for
}

// NewState returns a State that sorts with the given Kind. The zero
// value of Kind is Radix.
func NewState(kind Kind) *State {
	return &State{kind: kind}
}

// Kind reports which sorter this State runs.
func (s *State) Kind() Kind {
	return s.kind
}

// Reset discards any carried-over permutation, forcing the next Sort to
// start from identity order even under Insertion. Callers switch to a
// fresh box topology (e.g. a different scene) via Reset rather than
// allocating a new State.
func (s *State) Reset() {
	s.primed = false
}

// Sort returns ranks such that values[ranks[i]] is non-decreasing in i.
// values must end with a +Inf sentinel; NaN entries are undefined
// behavior and not validated here.
//
// The returned slice aliases State-owned storage and is only valid
// until the next call to Sort or Reset on the same State.
func (s *State) Sort(values []float32) []uint32 {
	n := len(values)
	s.ensureCapacity(n)

	switch s.kind {
	case Insertion:
		return s.sortInsertion(values)
	default:
		return s.sortRadix(values)
	}
}

func (s *State) ensureCapacity(n int) {
	if n != s.lastN {
		// Box count changed since the last call: a carried-over
		// permutation no longer means anything as a starting guess.
		s.primed = false
		s.lastN = n
	}
	if cap(s.ranks) < n {
		s.ranks = make([]uint32, n)
	}
	s.ranks = s.ranks[:n]
	if cap(s.keys) < n {
		s.keys = make([]uint32, n)
	}
	s.keys = s.keys[:n]
	if cap(s.tmpKeys) < n {
		s.tmpKeys = make([]uint32, n)
		s.tmpIdx = make([]uint32, n)
	}
	s.tmpKeys = s.tmpKeys[:n]
	s.tmpIdx = s.tmpIdx[:n]
}

// SortRadix is a package-level convenience: a one-shot radix sort with no
// warm-start state to manage.
func SortRadix(values []float32) []uint32 {
	return NewState(Radix).Sort(values)
}

// SortInsertion is a package-level convenience: a one-shot insertion
// sort with no warm-start state to manage.
func SortInsertion(values []float32) []uint32 {
	return NewState(Insertion).Sort(values)
}

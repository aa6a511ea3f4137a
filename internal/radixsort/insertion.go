package radixsort

// sortInsertion runs an insertion sort over values, using s.ranks as the
// permutation being sorted. If s.primed is true (a previous call on this
// State already sorted the same N), the existing permutation is reused
// as the starting order instead of identity — when the underlying boxes
// have only drifted slightly since the last call, this makes the sort
// run close to O(N) instead of O(N log N)/O(N^2).
func (s *State) sortInsertion(values []float32) []uint32 {
	n := len(values)
	if !s.primed {
		for i := range s.ranks {
			s.ranks[i] = uint32(i)
		}
	}

	r := s.ranks
	for i := 1; i < n; i++ {
		cur := r[i]
		v := values[cur]
		j := i - 1
		for j >= 0 && values[r[j]] > v {
			r[j+1] = r[j]
			j--
		}
		r[j+1] = cur
	}

	s.primed = true
	return r
}

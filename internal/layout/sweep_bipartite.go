package layout

// SweepBipartite runs a two-pass bipartite sweep between layouts a and
// b, emitting every overlapping (a-index, b-index) pair exactly once.
// Pass 1 (A sweeps B) and pass 2 (B sweeps A) are asymmetric only in
// their advance predicate's tie-break (strict `<` vs non-strict `<=`)
// — changing one without the other breaks exactly-once emission on
// ties.
//
// Grounded directly on BipartiteBoxPruning's two while loops
// (_examples/original_source/BoxPruning13/IceBoxPruning.cpp).
func SweepBipartite(a, b SortedLayout, safe bool, sink Sink) {
	sweepBipartitePass(a, b, safe, sink, true)  // pass 1: A sweeps B, strict advance
	sweepBipartitePass(b, a, safe, sink, false) // pass 2: B sweeps A, non-strict advance
}

// sweepBipartitePass sweeps outer over self, running a pointer into
// other. strict selects the `<` (true) vs `<=` (false) advance
// predicate. The strict pass has self = A and emits
// (self-original-index, other-original-index); the non-strict pass has
// self = B and emits (other-original-index, self-original-index), so
// every pair reaches sink as (a-index, b-index).
func sweepBipartitePass(self, other SortedLayout, safe bool, sink Sink, strict bool) {
	nSelf := self.N
	nOther := other.N
	if nSelf == 0 || nOther == 0 {
		return
	}

	s := 0
	for i := 0; i < nSelf && s <= nOther; i++ {
		minLimit := self.X[i].MinX

		if strict {
			for s <= nOther && other.X[s].MinX < minLimit {
				s++
			}
		} else {
			for s <= nOther && other.X[s].MinX <= minLimit {
				s++
			}
		}

		selfYZ := self.YZ[i]
		maxLimit := self.X[i].MaxX
		origSelf := self.Remap[i]

		for k := s; k < nOther && other.X[k].MinX <= maxLimit; k++ {
			var overlap bool
			if safe {
				overlap = selfYZ.Overlaps(other.YZ[k])
			} else {
				overlap = selfYZ.OverlapsStrict(other.YZ[k])
			}
			if overlap {
				if strict {
					sink.Append(origSelf, other.Remap[k])
				} else {
					sink.Append(other.Remap[k], origSelf)
				}
			}
		}
	}
}

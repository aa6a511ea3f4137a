package layout

// Sink receives emitted pairs of ORIGINAL (pre-sort) box indices. It is
// borrowed for the call's duration and written single-writer.
type Sink interface {
	Append(a, b uint32)
}

// SweepComplete runs a two-pointer sweep over a single sorted layout,
// emitting every unordered overlapping pair exactly once, with no
// self-pairs.
//
// Grounded directly on CompleteBoxPruning's while loops
// (_examples/original_source/BoxPruning13/IceBoxPruning.cpp): Index0
// renamed i, RunningAddress renamed r.
func SweepComplete(layout SortedLayout, safe bool, sink Sink) {
	n := layout.N
	x := layout.X
	yz := layout.YZ
	remap := layout.Remap

	r := 0
	for i := 0; i < n && r <= n; i++ {
		minLimit := x[i].MinX

		// Advance r strictly past every box whose minX is less than the
		// current box's minX, then one step past i itself — the
		// combined effect guarantees r > i for the rest of this outer
		// iteration, so box i is never compared against itself and each
		// unordered pair is only ever emitted at the smaller of its two
		// outer-loop iterations.
		for r <= n && x[r].MinX < minLimit {
			r++
		}
		if r <= i {
			r = i + 1
		}

		selfYZ := yz[i]
		maxLimit := x[i].MaxX
		origI := remap[i]

		for k := r; k < n && x[k].MinX <= maxLimit; k++ {
			var overlap bool
			if safe {
				overlap = selfYZ.Overlaps(yz[k])
			} else {
				overlap = selfYZ.OverlapsStrict(yz[k])
			}
			if overlap {
				sink.Append(origI, remap[k])
			}
		}
	}
}

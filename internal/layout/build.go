package layout

import (
	"math"

	"github.com/katalvlaran/boxprune/boxaabb"
	"github.com/katalvlaran/boxprune/internal/radixsort"
)

// SortedLayout is the derived structure the sweep kernels run over: two
// parallel arrays of length N+1 (X termination-test records and YZ
// overlap-test records) plus the remap permutation, all owned
// exclusively by one pruning call.
//
// X[N] carries the +Inf sentinel; YZ[N] is never initialized and must
// never be read — every sweep kernel in this package terminates
// strictly before touching it, guarded by the sentinel.
type SortedLayout struct {
	X     []XRecord
	YZ    []YZRecord
	Remap []uint32
	N     int
}

// Build constructs a SortedLayout for boxes, sorted along axis using
// sorter. When sorter is nil, a one-shot radixsort.State is created
// internally (no warm-start benefit, since there's no prior call to
// carry ordering over from).
//
// Build allocates four arrays: the positions working array handed to
// sorter, and the X, YZ, and remap arrays (remap is a copy of the
// sorter's returned permutation, not an alias of its scratch). The X,
// YZ, and remap arrays are owned by the caller's subsequent sweep call
// and should be discarded once the sweep completes.
func Build(boxes []boxaabb.AABB, axis boxaabb.Axis, safe bool, sorter *radixsort.State) SortedLayout {
	n := len(boxes)

	positions := make([]float32, n+1)
	for i, b := range boxes {
		positions[i] = b.PrimaryMin(axis)
	}
	positions[n] = float32(math.Inf(1))

	if sorter == nil {
		sorter = radixsort.NewState(radixsort.Radix)
	}
	remap := sorter.Sort(positions)

	x := make([]XRecord, n+1)
	yz := make([]YZRecord, n+1)
	for i := 0; i < n; i++ {
		src := remap[i]
		b := boxes[src]
		primMin, primMax, oLoA, oHiA, oLoB, oHiB := b.Components(axis)
		x[i] = XRecord{MinX: primMin, MaxX: primMax}
		yz[i] = NewYZRecord(oLoA, oHiA, oLoB, oHiB, safe)
	}
	x[n] = XRecord{MinX: float32(math.Inf(1)), MaxX: float32(math.Inf(1))}

	remapOut := make([]uint32, n+1)
	copy(remapOut, remap)

	return SortedLayout{X: x, YZ: yz, Remap: remapOut, N: n}
}

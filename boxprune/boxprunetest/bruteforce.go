package boxprunetest

import "github.com/katalvlaran/boxprune/boxaabb"

// Pair is an unordered or ordered box-index pair, depending on which
// brute-force function produced it.
type Pair struct {
	A, B uint32
}

// overlaps reports whether x and y overlap on all three axes, using
// non-strict (safe) or strict (non-safe) inequalities per the safe
// flag, evaluated directly with no sort or SIMD-style packing, so it can
// serve as an independent cross-check. With safe=true this matches the
// sweep kernel exactly. With safe=false it is strict on all three axes,
// while the sweep kernel keeps its X admission test inclusive, so the
// two differ for boxes touching only along an X face.
func overlaps(x, y boxaabb.AABB, safe bool) bool {
	if safe {
		return x.Min.X <= y.Max.X && x.Max.X >= y.Min.X &&
			x.Min.Y <= y.Max.Y && x.Max.Y >= y.Min.Y &&
			x.Min.Z <= y.Max.Z && x.Max.Z >= y.Min.Z
	}
	return x.Min.X < y.Max.X && x.Max.X > y.Min.X &&
		x.Min.Y < y.Max.Y && x.Max.Y > y.Min.Y &&
		x.Min.Z < y.Max.Z && x.Max.Z > y.Min.Z
}

// BruteForceComplete enumerates every unordered overlapping pair within
// boxes by testing all C(N,2) combinations directly. It is the ground
// truth CompleteBoxPruning is checked against in tests.
func BruteForceComplete(boxes []boxaabb.AABB, safe bool) []Pair {
	var pairs []Pair
	for i := 0; i < len(boxes); i++ {
		for j := i + 1; j < len(boxes); j++ {
			if overlaps(boxes[i], boxes[j], safe) {
				pairs = append(pairs, Pair{A: uint32(i), B: uint32(j)})
			}
		}
	}
	return pairs
}

// BruteForceBipartite enumerates every ordered (a, b) overlapping pair
// between a and b by testing all N0*N1 combinations directly.
func BruteForceBipartite(a, b []boxaabb.AABB, safe bool) []Pair {
	var pairs []Pair
	for i := range a {
		for j := range b {
			if overlaps(a[i], b[j], safe) {
				pairs = append(pairs, Pair{A: uint32(i), B: uint32(j)})
			}
		}
	}
	return pairs
}

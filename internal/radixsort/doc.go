// Package radixsort implements the sort collaborator the sweep kernel
// needs: given a float32 array ending in a +Inf sentinel, produce a
// permutation ("ranks") such that values[ranks[i]] is non-decreasing in
// i, with the sentinel sorting to the last position.
//
// Two sorters are provided, mirroring the reference implementation's
// compile-time PRUNING_SORTER choice:
//
//   - Radix: an LSD radix sort over the IEEE-754 bit pattern, one-shot
//     friendly, O(N) per call regardless of prior order.
//   - Insertion: an insertion sort, which is faster than Radix when the
//     input is nearly sorted already (frame-coherent queries) because
//     it runs close to O(N) instead of radix's fixed passes.
//
// Neither sorter is required to be stable; two boxes with identical
// primary-axis minima may come out in either order.
package radixsort

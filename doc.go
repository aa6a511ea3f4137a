// Package boxprune (module github.com/katalvlaran/boxprune) is a
// broad-phase box-pruning library for 3D collision detection.
//
// What it does:
//
//	Given one or two sets of axis-aligned bounding boxes, it finds
//	every pair whose volumes overlap, in O(N log N + K) time rather
//	than the O(N²) of testing every pair directly.
//
// Everything lives under three packages:
//
//	boxaabb/   — the AABB input type and primary-axis selection.
//	boxprune/  — CompleteBoxPruning, BipartiteBoxPruning, Options.
//	boxprune/boxprunetest/ — brute-force reference and random AABB
//	           generation for tests.
//
// The sort-and-sweep kernel itself (the sorted parallel-array layout,
// the running-index advance, the 4-lane overlap predicate) lives in
// internal/layout and internal/radixsort and is not part of the public
// API surface — only the two top-level operations and their Options
// are.
//
//	go get github.com/katalvlaran/boxprune
package boxprune

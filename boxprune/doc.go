// Package boxprune implements broad-phase box pruning: given one or two
// sets of axis-aligned bounding boxes, it enumerates every pair whose
// volumes overlap.
//
// What:
//
//   - CompleteBoxPruning finds every unordered overlapping pair within
//     one set.
//   - BipartiteBoxPruning finds every overlapping pair between two sets.
//   - Both sort the boxes along a primary axis and sweep with a running
//     index, so cost is O(N log N + K) for K reported pairs rather than
//     the O(N²) of an all-pairs test.
//
// Why:
//
//   - Broad phase is the first stage of collision detection: it exists
//     to discard the overwhelming majority of non-overlapping pairs
//     cheaply, leaving a narrow-phase test to run only on real
//     candidates.
//
// Complexity:
//
//   - CompleteBoxPruning:  O(N log N + K) with Sorter=radixsort.Radix.
//   - BipartiteBoxPruning: O((N0+N1) log(N0+N1) + K).
//
// Options:
//
//   - Options.Axis selects the primary sweep axis (AxisX by default).
//   - Options.Safe selects the face-touching-counts-as-overlap variant
//     (the reference default) versus the strict variant, which rejects
//     boxes touching only along a secondary-axis face (the primary-axis
//     test stays inclusive in both variants).
//   - Options.Sorter picks radixsort.Radix or radixsort.Insertion; Options.State
//     lets a caller reuse a *radixsort.State for warm-start coherence
//     across nearly-identical consecutive calls.
//
// Errors:
//
//   - ErrEmptyInput: BipartiteBoxPruning got an empty or nil box slice
//     on either side (CompleteBoxPruning treats an empty set as
//     success with no pairs).
//   - AllocationError: construction of an intermediate buffer failed.
package boxprune

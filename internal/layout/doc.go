// Package layout builds the two parallel, cache-friendly arrays the
// sweep-and-prune kernel runs over and implements the sweep kernels
// themselves.
//
// The decomposition is deliberate, not incidental: an 8-byte XRecord
// array carries only what the outer termination test touches (minX,
// maxX), while a separate 16-byte YZRecord array — one record per box,
// same order, loaded only once the X test passes — carries the two
// secondary-axis intervals packed for a single 4-lane compare.
package layout

// Package boxaabb defines the axis-aligned bounding box input type shared
// by every boxprune subpackage.
//
// What:
//
//   - AABB: a read-only axis-aligned bounding box, min/max corners in
//     single-precision (float32) coordinates.
//   - Axis: the three-way choice of which coordinate is the sweep's
//     primary axis.
//
// Why:
//
//   - Broad-phase box pruning (github.com/katalvlaran/boxprune) and any
//     narrow-phase collision step downstream share this one box shape,
//     so it lives in its own package rather than inside the pruning
//     package itself.
//
// AABB is intentionally a plain value type with no behavior beyond
// validity and per-axis accessor helpers (overlap testing lives in the
// pruning packages): construction, mesh loading, and scene graphs
// belong to callers, not to this package.
package boxaabb

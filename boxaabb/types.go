package boxaabb

// Vec3 is a three-component single-precision vector: a corner of an AABB.
type Vec3 struct {
	X, Y, Z float32
}

// AABB is an axis-aligned bounding box: a Min corner and a Max corner.
// An AABB is valid when Min <= Max component-wise; callers are
// responsible for constructing valid boxes. Behavior on an invalid AABB
// (Min > Max on any axis, or a NaN coordinate) is undefined — the
// pruning core does not validate geometry.
type AABB struct {
	Min, Max Vec3
}

// New returns the AABB spanning min and max. It does not validate that
// min <= max; callers that need validation should call Valid.
func New(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Valid reports whether b.Min <= b.Max on every axis and no coordinate
// is NaN. It is provided for callers that want to validate untrusted
// input before calling into boxprune; the core itself never calls this.
func (b AABB) Valid() bool {
	return lte(b.Min.X, b.Max.X) &&
		lte(b.Min.Y, b.Max.Y) &&
		lte(b.Min.Z, b.Max.Z)
}

// lte reports a <= b under ordered IEEE semantics, so a NaN operand
// (which compares false against everything, including itself) makes
// Valid report false rather than silently passing.
func lte(a, b float32) bool {
	return a <= b
}

// Axis selects which coordinate of an AABB is the sweep's primary axis.
// The sweep-and-prune kernel sorts on the primary axis and tests overlap
// on the other two inside the inner loop. X is the conventional choice
// and the default; Y and Z are supported since the choice of projection
// axis is otherwise arbitrary and some scenes cluster better on a
// different one.
type Axis uint8

const (
	// AxisX sorts and prunes primarily on the X coordinate (the default,
	// matching the reference implementation).
	AxisX Axis = iota
	// AxisY sorts and prunes primarily on the Y coordinate.
	AxisY
	// AxisZ sorts and prunes primarily on the Z coordinate.
	AxisZ
)

// String renders the axis as a single letter, for error messages and
// test output.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// components splits the box into (primary-min, primary-max, other-two)
// according to axis. The "other two" are returned in a fixed (first,
// second) order per axis so that callers building a YZ-style plane
// record get a stable, axis-independent layout: (Y,Z) when primary is X,
// (Z,X) when primary is Y, (X,Y) when primary is Z — a cyclic rotation
// of (X,Y,Z).
func (b AABB) components(axis Axis) (primMin, primMax, oLoA, oHiA, oLoB, oHiB float32) {
	switch axis {
	case AxisY:
		return b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z, b.Min.X, b.Max.X
	case AxisZ:
		return b.Min.Z, b.Max.Z, b.Min.X, b.Max.X, b.Min.Y, b.Max.Y
	default: // AxisX
		return b.Min.X, b.Max.X, b.Min.Y, b.Max.Y, b.Min.Z, b.Max.Z
	}
}

// PrimaryMin returns the box's minimum coordinate along axis.
func (b AABB) PrimaryMin(axis Axis) float32 {
	lo, _, _, _, _, _ := b.components(axis)
	return lo
}

// PrimaryMax returns the box's maximum coordinate along axis.
func (b AABB) PrimaryMax(axis Axis) float32 {
	_, hi, _, _, _, _ := b.components(axis)
	return hi
}

// Components exposes the full per-axis decomposition used by the layout
// builder: primary min/max plus the two secondary intervals in the
// order the YZ-style plane record stores them.
func (b AABB) Components(axis Axis) (primMin, primMax, oLoA, oHiA, oLoB, oHiB float32) {
	return b.components(axis)
}

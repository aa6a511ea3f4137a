package layout

// This file implements the overlap predicate as "one vector compare
// plus one movemask". A real SIMD port issues one 4-wide compare
// instruction and one movemask instruction per candidate; this is a
// portable Go module with no platform-specific vector intrinsics
// available from the corpus (see DESIGN.md), so the four lane
// comparisons are expressed directly and packed into a 4-bit mask the
// same way a movemask instruction would, rather than hidden inside a
// single opaque boolean expression.
//
// The reference's non-safe movemask (12, bits 2-3 only) reflects that
// its register layout carries two dummy lanes; this port computes all
// four lanes for real, so both variants require full agreement (mask
// 15) and differ only in whether each lane's comparison is <= or <.

const (
	// maskAllLanesAgree is the full-agreement mask both variants
	// require: every lane's comparison must hold.
	maskAllLanesAgree = 0b1111
)

func movemask4(l0, l1, l2, l3 bool) uint8 {
	var m uint8
	if l0 {
		m |= 1 << 0
	}
	if l1 {
		m |= 1 << 1
	}
	if l2 {
		m |= 1 << 2
	}
	if l3 {
		m |= 1 << 3
	}
	return m
}

// Overlaps evaluates the safe-variant predicate: self and other overlap
// on both secondary axes, using non-strict (<=) inequalities
// throughout, so boxes touching exactly along a face are reported as
// overlapping. self and other must both have been built with safe=true.
func (self YZRecord) Overlaps(other YZRecord) bool {
	mask := movemask4(
		-other.L0 <= self.H0,
		-other.L1 <= self.H1,
		-self.L0 <= other.H0,
		-self.L1 <= other.H1,
	)
	return mask == maskAllLanesAgree
}

// OverlapsStrict evaluates the non-safe-variant predicate: strict (<)
// inequalities on both secondary axes, so face-touching boxes are NOT
// reported as overlapping. self and other must both have been built
// with safe=false.
func (self YZRecord) OverlapsStrict(other YZRecord) bool {
	mask := movemask4(
		other.L0 < self.H0,
		other.L1 < self.H1,
		self.L0 < other.H0,
		self.L1 < other.H1,
	)
	return mask == maskAllLanesAgree
}

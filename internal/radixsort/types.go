package radixsort

// Kind selects which sorter a State runs, mirroring the reference
// implementation's compile-time choice between a radix and an
// insertion sorter.
type Kind uint8

const (
	// Radix selects the LSD radix sorter: flat O(N) per call, no benefit
	// from prior ordering. Best for one-shot queries.
	Radix Kind = iota
	// Insertion selects the insertion sorter: O(N) when the input is
	// already nearly sorted (e.g. box positions barely moved since the
	// previous call), degrading toward O(N^2) on adversarial input.
	Insertion
)

// String renders the Kind for diagnostics and test names.
func (k Kind) String() string {
	if k == Insertion {
		return "Insertion"
	}
	return "Radix"
}

package ordering

import (
	"fmt"

	"github.com/amp-labs/amp-ordering/compare"
	errs "github.com/amp-labs/amp-ordering/errors"
)

// CheckContract probes a strategy against sample elements and reports every
// violation of the comparison contract it finds: reflexivity, antisymmetry,
// transitivity, and determinism across repeated calls. A strategy that
// violates the contract produces undefined sort results, so this is meant
// for tests, not hot paths; it runs O(n³) comparisons over the samples.
//
// A nil result means no violation was observed on these samples, not a proof
// of correctness. Comparison errors raised by the strategy itself are
// reported alongside contract violations.
func CheckContract[T any](samples []T, s Strategy[T]) error {
	var found errs.Collection

	ords := make(map[[2]int]compare.Ordering, len(samples)*len(samples))

	for i, a := range samples {
		for j, b := range samples {
			ord, err := s(a, b)
			if err != nil {
				found.Add(fmt.Errorf("compare samples %d and %d: %w", i, j, err))

				continue
			}

			again, err := s(a, b)
			if err == nil && again != ord {
				found.Add(fmt.Errorf("nondeterministic: samples %d and %d compared %v then %v", i, j, ord, again))
			}

			ords[[2]int{i, j}] = ord
		}
	}

	for i := range samples {
		if ord, ok := ords[[2]int{i, i}]; ok && ord != compare.Equal {
			found.Add(fmt.Errorf("not reflexive: sample %d compares %v to itself", i, ord))
		}
	}

	for ij, ord := range ords {
		back, ok := ords[[2]int{ij[1], ij[0]}]
		if ok && back != ord.Reversed() {
			found.Add(fmt.Errorf("not antisymmetric: samples %d and %d compare %v and %v", ij[0], ij[1], ord, back))
		}
	}

	for i := range samples {
		for j := range samples {
			for k := range samples {
				ij, jk, ik := ords[[2]int{i, j}], ords[[2]int{j, k}], ords[[2]int{i, k}]
				if ij == compare.Less && jk == compare.Less && ik != compare.Less {
					found.Add(fmt.Errorf("not transitive: %d < %d and %d < %d but %d compares %v to %d", i, j, j, k, i, ik, k))
				}
			}
		}
	}

	return found.GetError()
}

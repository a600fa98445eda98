package intervalset

import (
	"slices"
)

// SubsetOf reports whether every value covered by s is covered by other.
// Two-pointer scan: because other's components are disjoint, a component of
// s can only be covered by exactly one component of other, never split
// across two.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	j := 0

	for _, c := range s.components {
		cLower, _ := c.Lower()

		// Skip components of other that end entirely before c starts.
		for j < len(other.components) {
			upper, _ := other.components[j].Upper()
			if upper < cLower || (upper == cLower && !other.components[j].UpperInclusive()) {
				j++

				continue
			}

			break
		}

		if j == len(other.components) || !c.SubsetOf(other.components[j]) {
			return false
		}
	}

	return true
}

// SupersetOf reports whether every value covered by other is covered by s.
func (s Set[T]) SupersetOf(other Set[T]) bool {
	return other.SubsetOf(s)
}

// Equal reports whether both sets cover exactly the same values. Canonical
// form is unique, so this is structural comparison of the components.
func (s Set[T]) Equal(other Set[T]) bool {
	return slices.Equal(s.components, other.components)
}

// ProperSubsetOf reports whether s is a subset of other but not equal to it.
func (s Set[T]) ProperSubsetOf(other Set[T]) bool {
	return s.SubsetOf(other) && !s.Equal(other)
}

// ProperSupersetOf reports whether s is a superset of other but not equal
// to it.
func (s Set[T]) ProperSupersetOf(other Set[T]) bool {
	return other.ProperSubsetOf(s)
}

// Overlaps reports whether the two sets share at least one value.
// Two-pointer scan with early exit; never materializes the intersection.
func (s Set[T]) Overlaps(other Set[T]) bool {
	i, j := 0, 0

	for i < len(s.components) && j < len(other.components) {
		if s.components[i].Overlaps(other.components[j]) {
			return true
		}

		if compareUppers(s.components[i], other.components[j]) <= 0 {
			i++
		} else {
			j++
		}
	}

	return false
}

// DisjointFrom reports whether the two sets share no values.
func (s Set[T]) DisjointFrom(other Set[T]) bool {
	return !s.Overlaps(other)
}

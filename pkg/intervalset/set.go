// Package intervalset provides a disjoint interval set: a canonical-form
// container holding a sorted sequence of non-overlapping, non-adjacent,
// non-empty intervals, together with the full Boolean set algebra over it
// (union, intersection, complement, difference, symmetric difference) and
// the order and membership predicates.
//
// Canonical form makes the representation unique: two sets covering the
// same values always hold exactly the same component sequence, so Equal is
// plain structural comparison. Sets are immutable values; every operation
// returns a new canonical Set, and the zero value is the empty set.
package intervalset

import (
	"cmp"
	"iter"
	"slices"
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/intervals/pkg/interval"
	"github.com/Sumatoshi-tech/intervals/pkg/intervaltree"
)

// Set is a canonical disjoint interval set over T. The zero value is the
// empty set.
type Set[T cmp.Ordered] struct {
	components []interval.Interval[T]
}

// New builds a canonical set from an arbitrary interval collection:
// empties are discarded, the rest is sorted and merged.
func New[T cmp.Ordered](ivs ...interval.Interval[T]) Set[T] {
	components := make([]interval.Interval[T], 0, len(ivs))

	for _, iv := range ivs {
		if !iv.IsEmpty() {
			components = append(components, iv)
		}
	}

	return Set[T]{components: normalize(components)}
}

// FromInterval builds a set holding a single interval. An empty interval
// yields the empty set.
func FromInterval[T cmp.Ordered](iv interval.Interval[T]) Set[T] {
	if iv.IsEmpty() {
		return Set[T]{}
	}

	return Set[T]{components: []interval.Interval[T]{iv}}
}

// Point builds the set {value}.
func Point[T cmp.Ordered](value T) Set[T] {
	return FromInterval(interval.Point(value))
}

// normalize establishes canonical form: sort by the interval ordering, then
// collapse the run with a single merge pass. The input slice is owned by
// the caller and mutated in place.
func normalize[T cmp.Ordered](ivs []interval.Interval[T]) []interval.Interval[T] {
	if len(ivs) <= 1 {
		return ivs
	}

	slices.SortFunc(ivs, interval.Compare[T])

	return mergeSorted(ivs)
}

// mergeSorted collapses a sorted run of non-empty intervals, replacing each
// overlapping or adjacent pair with its hull. Linear in the input length.
func mergeSorted[T cmp.Ordered](ivs []interval.Interval[T]) []interval.Interval[T] {
	if len(ivs) <= 1 {
		return ivs
	}

	write := 0

	for read := 1; read < len(ivs); read++ {
		merged, ok := ivs[write].Hull(ivs[read])
		if ok {
			ivs[write] = merged

			continue
		}

		write++
		ivs[write] = ivs[read]
	}

	return ivs[:write+1]
}

// IsEmpty reports whether the set covers no values.
func (s Set[T]) IsEmpty() bool {
	return len(s.components) == 0
}

// Len returns the number of components.
func (s Set[T]) Len() int {
	return len(s.components)
}

// At returns the i-th component in ascending order.
func (s Set[T]) At(i int) interval.Interval[T] {
	return s.components[i]
}

// Components returns a copy of the component sequence.
func (s Set[T]) Components() []interval.Interval[T] {
	return slices.Clone(s.components)
}

// All iterates over the components in ascending order.
func (s Set[T]) All() iter.Seq[interval.Interval[T]] {
	return func(yield func(interval.Interval[T]) bool) {
		for _, c := range s.components {
			if !yield(c) {
				return
			}
		}
	}
}

// ContainsValue reports whether value lies in any component. Binary search
// over the sorted components; a NaN value is never contained.
func (s Set[T]) ContainsValue(value T) bool {
	// Component upper bounds strictly increase, so the only candidate is
	// the first component whose upper bound reaches the value.
	idx := sort.Search(len(s.components), func(i int) bool {
		upper, _ := s.components[i].Upper()

		return upper >= value
	})

	return idx < len(s.components) && s.components[idx].Contains(value)
}

// ContainsInterval reports whether iv is entirely covered by the set.
// Components are disjoint, so iv can only be covered by a single component,
// never split across two. The empty interval is covered by any set.
func (s Set[T]) ContainsInterval(iv interval.Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}

	lower, _ := iv.Lower()
	idx := sort.Search(len(s.components), func(i int) bool {
		upper, _ := s.components[i].Upper()

		return upper >= lower
	})

	// Check the candidate and its successor: when the candidate's exclusive
	// upper bound equals iv's lower bound (a point gap like [0,5) ∪ (5,9]),
	// the covering component is the next one.
	for j := idx; j < len(s.components) && j <= idx+1; j++ {
		if iv.SubsetOf(s.components[j]) {
			return true
		}
	}

	return false
}

// Span returns the hull of all components: from the first component's lower
// bound to the last component's upper bound, carrying their inclusivities.
// Empty for the empty set.
func (s Set[T]) Span() interval.Interval[T] {
	if s.IsEmpty() {
		return interval.Empty[T]()
	}

	first := s.components[0]
	last := s.components[len(s.components)-1]

	lower, _ := first.Lower()
	upper, _ := last.Upper()

	return interval.New(lower, upper, first.LowerInclusive(), last.UpperInclusive())
}

// Gaps returns the maximal intervals between consecutive components, with
// inclusivities inverted from the surrounding boundaries. A set with fewer
// than two components has no gaps.
func (s Set[T]) Gaps() Set[T] {
	if len(s.components) <= 1 {
		return Set[T]{}
	}

	gaps := make([]interval.Interval[T], 0, len(s.components)-1)

	for i := 0; i < len(s.components)-1; i++ {
		upper, _ := s.components[i].Upper()
		lower, _ := s.components[i+1].Lower()

		gap := interval.New(upper, lower,
			!s.components[i].UpperInclusive(),
			!s.components[i+1].LowerInclusive())
		gaps = append(gaps, gap)
	}

	// Gaps between canonical components are non-empty, sorted, and
	// separated by the components themselves.
	return Set[T]{components: gaps}
}

// Add returns a new set additionally covering iv.
func (s Set[T]) Add(iv interval.Interval[T]) Set[T] {
	return s.Union(FromInterval(iv))
}

// Remove returns a new set no longer covering any value of iv.
func (s Set[T]) Remove(iv interval.Interval[T]) Set[T] {
	return s.Difference(FromInterval(iv))
}

// Index builds an interval tree over the components, mapping each to its
// position, for repeated stabbing and overlap queries.
func (s Set[T]) Index() *intervaltree.Tree[T, int] {
	tree := intervaltree.New[T, int]()

	for i, c := range s.components {
		tree.Insert(c, i)
	}

	return tree
}

// String renders the components joined by " ∪ ", or "∅" for the empty set.
func (s Set[T]) String() string {
	if s.IsEmpty() {
		return "∅"
	}

	parts := make([]string, len(s.components))

	for i, c := range s.components {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ∪ ")
}

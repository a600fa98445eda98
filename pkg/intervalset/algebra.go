package intervalset

import (
	"cmp"

	"github.com/Sumatoshi-tech/intervals/pkg/interval"
)

// Union returns the set covering every value of either operand. Both inputs
// are already canonical, so the sequences are merged with two cursors and
// collapsed with a single linear pass; no re-sort is needed.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if s.IsEmpty() {
		return other
	}

	if other.IsEmpty() {
		return s
	}

	merged := make([]interval.Interval[T], 0, len(s.components)+len(other.components))
	i, j := 0, 0

	for i < len(s.components) && j < len(other.components) {
		if interval.Compare(s.components[i], other.components[j]) <= 0 {
			merged = append(merged, s.components[i])
			i++
		} else {
			merged = append(merged, other.components[j])
			j++
		}
	}

	merged = append(merged, s.components[i:]...)
	merged = append(merged, other.components[j:]...)

	return Set[T]{components: mergeSorted(merged)}
}

// Intersect returns the set covering the values shared by both operands.
// Walks both canonical sequences with two cursors, emitting each pairwise
// intersection; the outputs are disjoint, sorted, and non-adjacent by
// construction, so no renormalization is needed. The cursor whose interval
// ends first advances (both on an exact tie).
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	if s.IsEmpty() || other.IsEmpty() {
		return Set[T]{}
	}

	out := make([]interval.Interval[T], 0, min(len(s.components), len(other.components)))
	i, j := 0, 0

	for i < len(s.components) && j < len(other.components) {
		x := s.components[i].Intersect(other.components[j])
		if !x.IsEmpty() {
			out = append(out, x)
		}

		switch c := compareUppers(s.components[i], other.components[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}

	return Set[T]{components: out}
}

// Complement returns the values of universe not covered by the set: the
// span before the first component, each inter-component gap, and the span
// after the last component, all with inclusivities inverted at component
// boundaries and clamped to the universe. The complement of the empty set
// is the universe itself. Linear in the component count.
func (s Set[T]) Complement(universe interval.Interval[T]) Set[T] {
	if universe.IsEmpty() {
		return Set[T]{}
	}

	if s.IsEmpty() {
		return FromInterval(universe)
	}

	uniUpper, _ := universe.Upper()

	out := make([]interval.Interval[T], 0, len(s.components)+1)
	cursor, _ := universe.Lower()
	cursorInc := universe.LowerInclusive()

	for _, c := range s.components {
		cLower, _ := c.Lower()

		gap := interval.New(cursor, cLower, cursorInc, !c.LowerInclusive()).Intersect(universe)
		if !gap.IsEmpty() {
			out = append(out, gap)
		}

		cursor, _ = c.Upper()
		cursorInc = !c.UpperInclusive()
	}

	tail := interval.New(cursor, uniUpper, cursorInc, universe.UpperInclusive()).Intersect(universe)
	if !tail.IsEmpty() {
		out = append(out, tail)
	}

	return Set[T]{components: mergeSorted(out)}
}

// Difference returns the values of s not covered by other. Defined as the
// intersection with other's complement, taken over s's own span: values
// outside the span cannot belong to the result anyway.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	if s.IsEmpty() || other.IsEmpty() {
		return s
	}

	return s.Intersect(other.Complement(s.Span()))
}

// SymmetricDifference returns the values covered by exactly one operand.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	return s.Difference(other).Union(other.Difference(s))
}

// ComplementUnbounded returns the complement over the full real line,
// using the (-Inf, +Inf) universe.
func ComplementUnbounded[T interval.Float](s Set[T]) Set[T] {
	return s.Complement(interval.Unbounded[T]())
}

// compareUppers orders two non-empty intervals by where they end: by upper
// bound value, an exclusive bound ending before an inclusive one at ties.
func compareUppers[T cmp.Ordered](a, b interval.Interval[T]) int {
	aUpper, _ := a.Upper()
	bUpper, _ := b.Upper()

	if c := cmp.Compare(aUpper, bUpper); c != 0 {
		return c
	}

	switch {
	case a.UpperInclusive() == b.UpperInclusive():
		return 0
	case a.UpperInclusive():
		return 1
	default:
		return -1
	}
}

package intervalset

import (
	"github.com/Sumatoshi-tech/intervals/pkg/interval"
)

// Measure returns the sum of the component lengths.
func Measure[T interval.Real](s Set[T]) T {
	var sum T

	for _, c := range s.components {
		sum += interval.Length(c)
	}

	return sum
}

// GapMeasure returns the sum of the gap lengths between components.
func GapMeasure[T interval.Real](s Set[T]) T {
	return Measure(s.Gaps())
}

// Density returns the measure divided by the span length. Zero for the
// empty set and for a degenerate span with no extent.
func Density[T interval.Real](s Set[T]) float64 {
	span := s.Span()
	if span.IsEmpty() {
		return 0
	}

	spanLength := interval.Length(span)
	if spanLength == 0 {
		return 0
	}

	return float64(Measure(s)) / float64(spanLength)
}

package interval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Degenerate verifies that degenerate bounds normalize to the
// canonical empty interval instead of erroring.
func TestNew_Degenerate(t *testing.T) {
	t.Parallel()

	assert.True(t, New(10, 0, true, true).IsEmpty())
	assert.True(t, New(5, 5, false, true).IsEmpty())
	assert.True(t, New(5, 5, true, false).IsEmpty())
	assert.True(t, New(5, 5, false, false).IsEmpty())

	// Equal bounds with both ends inclusive is a point, not empty.
	assert.False(t, New(5, 5, true, true).IsEmpty())
}

// TestEmpty_AllEqual verifies that every empty interval is the same value
// regardless of the bounds it was constructed from.
func TestEmpty_AllEqual(t *testing.T) {
	t.Parallel()

	var zero Interval[int]

	assert.Equal(t, zero, New(10, 0, true, true))
	assert.Equal(t, zero, New(7, 7, false, false))
	assert.Equal(t, zero, Empty[int]())
	assert.Equal(t, zero, Open(3, 3))
}

// TestConstructors verifies the boundary flags of each named constructor.
func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		iv                 Interval[int]
		lowerInc, upperInc bool
	}{
		{name: "closed", iv: Closed(0, 10), lowerInc: true, upperInc: true},
		{name: "open", iv: Open(0, 10), lowerInc: false, upperInc: false},
		{name: "open_closed", iv: OpenClosed(0, 10), lowerInc: false, upperInc: true},
		{name: "closed_open", iv: ClosedOpen(0, 10), lowerInc: true, upperInc: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lower, ok := tt.iv.Lower()
			require.True(t, ok)
			assert.Equal(t, 0, lower)

			upper, ok := tt.iv.Upper()
			require.True(t, ok)
			assert.Equal(t, 10, upper)

			assert.Equal(t, tt.lowerInc, tt.iv.LowerInclusive())
			assert.Equal(t, tt.upperInc, tt.iv.UpperInclusive())
		})
	}
}

// TestPoint verifies point interval construction and queries.
func TestPoint(t *testing.T) {
	t.Parallel()

	p := Point(5)
	assert.True(t, p.IsPoint())
	assert.False(t, p.IsEmpty())
	assert.True(t, p.Contains(5))
	assert.False(t, p.Contains(4))

	assert.False(t, Closed(0, 10).IsPoint())
	assert.False(t, Empty[int]().IsPoint())
}

// TestFloatFactories verifies the unbounded factory set. Infinite
// endpoints are exclusive: infinity is never reached.
func TestFloatFactories(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)

	u := Unbounded[float64]()
	assert.False(t, u.LowerInclusive())
	assert.False(t, u.UpperInclusive())
	assert.True(t, u.Contains(0))
	assert.True(t, u.Contains(-1e300))
	assert.False(t, u.Contains(inf))

	assert.True(t, AtLeast(5.0).Contains(5))
	assert.False(t, GreaterThan(5.0).Contains(5))
	assert.True(t, AtMost(5.0).Contains(5))
	assert.False(t, LessThan(5.0).Contains(5))
	assert.True(t, LessThan(5.0).Contains(-1e300))
}

// TestContains_BoundaryCombinations verifies membership at and around the
// boundaries for all four inclusivity combinations.
func TestContains_BoundaryCombinations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		iv               Interval[int]
		atLower, atUpper bool
	}{
		{name: "closed_closed", iv: Closed(0, 10), atLower: true, atUpper: true},
		{name: "open_open", iv: Open(0, 10), atLower: false, atUpper: false},
		{name: "open_closed", iv: OpenClosed(0, 10), atLower: false, atUpper: true},
		{name: "closed_open", iv: ClosedOpen(0, 10), atLower: true, atUpper: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.atLower, tt.iv.Contains(0))
			assert.Equal(t, tt.atUpper, tt.iv.Contains(10))
			assert.True(t, tt.iv.Contains(5))
			assert.False(t, tt.iv.Contains(-1))
			assert.False(t, tt.iv.Contains(11))
		})
	}
}

// TestContains_Empty verifies the empty interval contains nothing.
func TestContains_Empty(t *testing.T) {
	t.Parallel()

	assert.False(t, Empty[int]().Contains(0))
	assert.False(t, Empty[float64]().Contains(0))
}

// TestContains_NaN verifies the not-a-number policy: NaN is never
// contained, and NaN-polluted bounds never panic.
func TestContains_NaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	assert.False(t, Closed(0.0, 10.0).Contains(nan))
	assert.False(t, Unbounded[float64]().Contains(nan))

	polluted := New(nan, 10.0, true, true)
	assert.False(t, polluted.Contains(5))
	assert.False(t, polluted.Contains(nan))
}

// TestSubsetOf verifies the subset relation including inclusivity edges.
func TestSubsetOf(t *testing.T) {
	t.Parallel()

	assert.True(t, Empty[int]().SubsetOf(Closed(0, 1)))
	assert.True(t, Empty[int]().SubsetOf(Empty[int]()))
	assert.False(t, Closed(0, 1).SubsetOf(Empty[int]()))

	assert.True(t, Closed(2, 8).SubsetOf(Closed(0, 10)))
	assert.True(t, Open(0, 10).SubsetOf(Closed(0, 10)))
	assert.False(t, Closed(0, 10).SubsetOf(Open(0, 10)))
	assert.True(t, Closed(0, 10).SubsetOf(Closed(0, 10)))
	assert.False(t, Closed(0, 11).SubsetOf(Closed(0, 10)))

	// Tied boundary on one side only: the exclusive side alone decides.
	assert.True(t, OpenClosed(0, 10).SubsetOf(Closed(0, 10)))
	assert.True(t, ClosedOpen(0, 10).SubsetOf(Closed(0, 10)))
	assert.False(t, Closed(0, 10).SubsetOf(OpenClosed(0, 10)))
	assert.False(t, Closed(0, 10).SubsetOf(ClosedOpen(0, 10)))
	assert.True(t, Open(0, 10).SubsetOf(ClosedOpen(0, 10)))
	assert.False(t, ClosedOpen(0, 10).SubsetOf(OpenClosed(0, 10)))

	assert.True(t, Closed(0, 10).SupersetOf(Open(0, 10)))
}

// TestOverlaps verifies the overlap relation at shared endpoints.
func TestOverlaps(t *testing.T) {
	t.Parallel()

	// Shared endpoint covered by both sides.
	assert.True(t, Closed(0, 10).Overlaps(Closed(10, 20)))

	// Shared endpoint covered by one side only: no common value.
	assert.False(t, ClosedOpen(0, 10).Overlaps(Closed(10, 20)))
	assert.False(t, Closed(0, 10).Overlaps(OpenClosed(10, 20)))

	assert.True(t, Closed(0, 10).Overlaps(Closed(5, 15)))
	assert.True(t, Closed(0, 10).Overlaps(Closed(2, 8)))
	assert.False(t, Closed(0, 10).Overlaps(Closed(11, 20)))

	// Symmetry with the operands reversed.
	assert.True(t, Closed(10, 20).Overlaps(Closed(0, 10)))
	assert.False(t, Closed(10, 20).Overlaps(ClosedOpen(0, 10)))

	assert.False(t, Empty[int]().Overlaps(Closed(0, 10)))
	assert.True(t, Closed(0, 10).DisjointFrom(Closed(11, 20)))
}

// TestAdjacentTo verifies adjacency: a shared boundary covered exactly once.
func TestAdjacentTo(t *testing.T) {
	t.Parallel()

	// Exactly one side includes the shared point.
	assert.True(t, Closed(0, 10).AdjacentTo(OpenClosed(10, 20)))
	assert.True(t, ClosedOpen(0, 10).AdjacentTo(Closed(10, 20)))

	// Both include it: overlap, not adjacency.
	assert.False(t, Closed(0, 10).AdjacentTo(Closed(10, 20)))

	// Neither includes it: a gap remains at the shared point.
	assert.False(t, ClosedOpen(0, 10).AdjacentTo(OpenClosed(10, 20)))

	// Symmetric on the lower side.
	assert.True(t, OpenClosed(10, 20).AdjacentTo(Closed(0, 10)))

	// Separated bounds are never adjacent.
	assert.False(t, Closed(0, 10).AdjacentTo(Closed(11, 20)))

	assert.False(t, Empty[int]().AdjacentTo(Closed(0, 10)))
}

// TestIntersect verifies intersection bounds and inclusivity selection.
func TestIntersect(t *testing.T) {
	t.Parallel()

	// Partial overlap: each bound carries its owner's flag.
	got := Closed(0, 10).Intersect(OpenClosed(5, 15))
	assert.Equal(t, OpenClosed(5, 10), got)

	// Tied bounds: the more restrictive inclusivity wins.
	got = Closed(0, 10).Intersect(Open(0, 10))
	assert.Equal(t, Open(0, 10), got)

	// Touching closed endpoints leave a single point.
	assert.Equal(t, Point(10), Closed(0, 10).Intersect(Closed(10, 20)))

	// Touching with an exclusive side is empty.
	assert.True(t, ClosedOpen(0, 10).Intersect(Closed(10, 20)).IsEmpty())

	assert.True(t, Closed(0, 10).Intersect(Closed(20, 30)).IsEmpty())
	assert.True(t, Closed(0, 10).Intersect(Empty[int]()).IsEmpty())
}

// TestHull verifies the smallest-containing-interval construction.
func TestHull(t *testing.T) {
	t.Parallel()

	// Overlapping operands.
	merged, ok := Closed(0, 10).Hull(Closed(5, 15))
	require.True(t, ok)
	assert.Equal(t, Closed(0, 15), merged)

	// Adjacent operands.
	merged, ok = Closed(0, 10).Hull(OpenClosed(10, 20))
	require.True(t, ok)
	assert.Equal(t, Closed(0, 20), merged)

	// Tied bounds: the less restrictive inclusivity wins.
	merged, ok = Closed(0, 10).Hull(Open(0, 10))
	require.True(t, ok)
	assert.Equal(t, Closed(0, 10), merged)

	// Disjoint operands have no hull: it would cover extraneous values.
	_, ok = Closed(0, 10).Hull(Closed(12, 20))
	assert.False(t, ok)

	// A gap of a single point also blocks the hull.
	_, ok = ClosedOpen(0, 10).Hull(OpenClosed(10, 20))
	assert.False(t, ok)

	// Hull with the empty interval is the other operand.
	merged, ok = Empty[int]().Hull(Closed(0, 10))
	require.True(t, ok)
	assert.Equal(t, Closed(0, 10), merged)

	merged, ok = Closed(0, 10).Hull(Empty[int]())
	require.True(t, ok)
	assert.Equal(t, Closed(0, 10), merged)
}

// TestCompare verifies the total ordering used for sorting and merging.
func TestCompare(t *testing.T) {
	t.Parallel()

	// Lower bound dominates.
	assert.Negative(t, Compare(Closed(0, 10), Closed(1, 5)))
	assert.Positive(t, Compare(Closed(1, 5), Closed(0, 10)))

	// At equal lower bounds the inclusive side sorts first.
	assert.Negative(t, Compare(Closed(0, 10), OpenClosed(0, 10)))
	assert.Positive(t, Compare(Open(0, 10), ClosedOpen(0, 10)))

	// Then the upper bound, inclusive first at ties.
	assert.Negative(t, Compare(Closed(0, 5), Closed(0, 10)))
	assert.Negative(t, Compare(Closed(0, 10), ClosedOpen(0, 10)))

	// Empty sorts before everything and all empties are equal.
	assert.Negative(t, Compare(Empty[int](), Closed(0, 1)))
	assert.Positive(t, Compare(Closed(0, 1), Empty[int]()))
	assert.Equal(t, 0, Compare(Empty[int](), Empty[int]()))

	assert.Equal(t, 0, Compare(Closed(0, 10), Closed(0, 10)))
	assert.True(t, Closed(0, 10).Less(Closed(1, 5)))
	assert.False(t, Closed(1, 5).Less(Closed(0, 10)))
}

// TestLength verifies interval lengths including the degenerate cases.
func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 6, Length(Closed(2, 8)))
	assert.Equal(t, 0, Length(Point(5)))
	assert.Equal(t, 0, Length(Empty[int]()))
	assert.InDelta(t, 2.5, Length(Closed(1.0, 3.5)), 1e-12)
}

// TestMidpoint verifies midpoints.
func TestMidpoint(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5, Midpoint(Closed(2.0, 8.0)), 1e-12)
	assert.Equal(t, 5, Midpoint(Point(5)))
	assert.Equal(t, 0, Midpoint(Empty[int]()))
}

// TestDistance verifies the gap distance between intervals.
func TestDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Distance(Closed(0, 5), Closed(15, 20)))
	assert.Equal(t, 10, Distance(Closed(15, 20), Closed(0, 5)))
	assert.Equal(t, 0, Distance(Closed(0, 10), Closed(5, 15)))
	assert.Equal(t, 0, Distance(Empty[int](), Closed(0, 5)))
}

// TestString verifies the debug notation.
func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[0, 5)", ClosedOpen(0, 5).String())
	assert.Equal(t, "(0, 5]", OpenClosed(0, 5).String())
	assert.Equal(t, "[0, 5]", Closed(0, 5).String())
	assert.Equal(t, "(0, 5)", Open(0, 5).String())
	assert.Equal(t, "{3}", Point(3).String())
	assert.Equal(t, "∅", Empty[int]().String())
}

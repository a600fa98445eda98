// Package interval provides a convex range over a totally ordered domain,
// with independently inclusive or exclusive boundaries. Intervals are
// immutable values: every operation returns a new Interval, and the zero
// value is the empty interval.
//
// Degenerate bounds (lower > upper, or equal bounds with an exclusive flag)
// are not errors; construction silently yields the canonical empty interval,
// so all constructors are total. Every empty interval is normalized to the
// same representation, which makes == exact structural equality.
package interval

import (
	"cmp"
	"fmt"
	"math"
)

// Float constrains boundary domains that carry infinities.
type Float interface {
	~float32 | ~float64
}

// Real constrains boundary domains that support arithmetic, for the
// measure helpers Length, Midpoint, and Distance.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interval is a convex range over T with two boundary-inclusion flags.
// The four inclusive/exclusive combinations cover [a,b], (a,b), [a,b),
// and (a,b]. The zero value is the empty interval.
type Interval[T cmp.Ordered] struct {
	lower    T
	upper    T
	lowerInc bool
	upperInc bool
	nonEmpty bool
}

// New creates an interval from explicit bounds and inclusion flags.
// Degenerate bounds yield the empty interval.
func New[T cmp.Ordered](lower, upper T, lowerInc, upperInc bool) Interval[T] {
	if lower > upper || (lower == upper && !(lowerInc && upperInc)) {
		return Interval[T]{}
	}

	return Interval[T]{
		lower:    lower,
		upper:    upper,
		lowerInc: lowerInc,
		upperInc: upperInc,
		nonEmpty: true,
	}
}

// Closed creates [lower, upper].
func Closed[T cmp.Ordered](lower, upper T) Interval[T] {
	return New(lower, upper, true, true)
}

// Open creates (lower, upper).
func Open[T cmp.Ordered](lower, upper T) Interval[T] {
	return New(lower, upper, false, false)
}

// OpenClosed creates (lower, upper].
func OpenClosed[T cmp.Ordered](lower, upper T) Interval[T] {
	return New(lower, upper, false, true)
}

// ClosedOpen creates [lower, upper).
func ClosedOpen[T cmp.Ordered](lower, upper T) Interval[T] {
	return New(lower, upper, true, false)
}

// Point creates the single-value interval {value}.
func Point[T cmp.Ordered](value T) Interval[T] {
	return New(value, value, true, true)
}

// Empty returns the empty interval. Equivalent to the zero value.
func Empty[T cmp.Ordered]() Interval[T] {
	return Interval[T]{}
}

// Unbounded creates (-Inf, +Inf). Infinite endpoints are exclusive:
// infinity is never reached.
func Unbounded[T Float]() Interval[T] {
	return New(T(math.Inf(-1)), T(math.Inf(1)), false, false)
}

// AtLeast creates [lower, +Inf).
func AtLeast[T Float](lower T) Interval[T] {
	return New(lower, T(math.Inf(1)), true, false)
}

// AtMost creates (-Inf, upper].
func AtMost[T Float](upper T) Interval[T] {
	return New(T(math.Inf(-1)), upper, false, true)
}

// GreaterThan creates (lower, +Inf).
func GreaterThan[T Float](lower T) Interval[T] {
	return New(lower, T(math.Inf(1)), false, false)
}

// LessThan creates (-Inf, upper).
func LessThan[T Float](upper T) Interval[T] {
	return New(T(math.Inf(-1)), upper, false, false)
}

// IsEmpty reports whether the interval contains no values.
func (iv Interval[T]) IsEmpty() bool {
	return !iv.nonEmpty
}

// IsPoint reports whether the interval contains exactly one value.
func (iv Interval[T]) IsPoint() bool {
	return iv.nonEmpty && iv.lower == iv.upper
}

// Lower returns the lower bound. ok is false for the empty interval.
func (iv Interval[T]) Lower() (bound T, ok bool) {
	return iv.lower, iv.nonEmpty
}

// Upper returns the upper bound. ok is false for the empty interval.
func (iv Interval[T]) Upper() (bound T, ok bool) {
	return iv.upper, iv.nonEmpty
}

// LowerInclusive reports whether the lower bound is part of the interval.
// Always false for the empty interval.
func (iv Interval[T]) LowerInclusive() bool {
	return iv.lowerInc
}

// UpperInclusive reports whether the upper bound is part of the interval.
// Always false for the empty interval.
func (iv Interval[T]) UpperInclusive() bool {
	return iv.upperInc
}

// Contains reports whether value lies within the interval. The empty
// interval contains nothing. A NaN value is never contained: comparisons
// against it are unordered and fail both boundary checks.
func (iv Interval[T]) Contains(value T) bool {
	if !iv.nonEmpty {
		return false
	}

	var lowerOK, upperOK bool

	if iv.lowerInc {
		lowerOK = value >= iv.lower
	} else {
		lowerOK = value > iv.lower
	}

	if iv.upperInc {
		upperOK = value <= iv.upper
	} else {
		upperOK = value < iv.upper
	}

	return lowerOK && upperOK
}

// SubsetOf reports whether every value of iv is also in other.
// The empty interval is a subset of everything.
func (iv Interval[T]) SubsetOf(other Interval[T]) bool {
	if !iv.nonEmpty {
		return true
	}

	if !other.nonEmpty {
		return false
	}

	// At a tied boundary the containing interval must be at least as
	// permissive: an exclusive bound cannot cover an inclusive one.
	lowerOK := other.lower < iv.lower ||
		(other.lower == iv.lower && (other.lowerInc || !iv.lowerInc))
	upperOK := other.upper > iv.upper ||
		(other.upper == iv.upper && (other.upperInc || !iv.upperInc))

	return lowerOK && upperOK
}

// SupersetOf reports whether every value of other is also in iv.
func (iv Interval[T]) SupersetOf(other Interval[T]) bool {
	return other.SubsetOf(iv)
}

// Overlaps reports whether the two intervals share at least one value.
func (iv Interval[T]) Overlaps(other Interval[T]) bool {
	if !iv.nonEmpty || !other.nonEmpty {
		return false
	}

	if iv.upper < other.lower || iv.lower > other.upper {
		return false
	}

	if iv.upper == other.lower {
		return iv.upperInc && other.lowerInc
	}

	if iv.lower == other.upper {
		return iv.lowerInc && other.upperInc
	}

	return true
}

// DisjointFrom reports whether the two intervals share no values.
func (iv Interval[T]) DisjointFrom(other Interval[T]) bool {
	return !iv.Overlaps(other)
}

// AdjacentTo reports whether the two intervals share a boundary value that
// exactly one of them includes, covering it once between them with no gap
// and no overlap.
func (iv Interval[T]) AdjacentTo(other Interval[T]) bool {
	if !iv.nonEmpty || !other.nonEmpty {
		return false
	}

	if iv.upper == other.lower {
		return iv.upperInc != other.lowerInc
	}

	if iv.lower == other.upper {
		return iv.lowerInc != other.upperInc
	}

	return false
}

// Intersect returns the largest interval contained in both operands.
// At a tied boundary the more restrictive inclusivity wins; otherwise the
// inner bound carries its own flag. Returns the empty interval when the
// operands do not overlap.
func (iv Interval[T]) Intersect(other Interval[T]) Interval[T] {
	if !iv.nonEmpty || !other.nonEmpty {
		return Interval[T]{}
	}

	newLower := max(iv.lower, other.lower)
	newUpper := min(iv.upper, other.upper)

	if newLower > newUpper {
		return Interval[T]{}
	}

	var newLowerInc bool

	switch {
	case iv.lower == other.lower:
		newLowerInc = iv.lowerInc && other.lowerInc
	case newLower == iv.lower:
		newLowerInc = iv.lowerInc
	default:
		newLowerInc = other.lowerInc
	}

	var newUpperInc bool

	switch {
	case iv.upper == other.upper:
		newUpperInc = iv.upperInc && other.upperInc
	case newUpper == iv.upper:
		newUpperInc = iv.upperInc
	default:
		newUpperInc = other.upperInc
	}

	return New(newLower, newUpper, newLowerInc, newUpperInc)
}

// Hull returns the smallest interval containing both operands.
// ok is false when the operands neither overlap nor touch, since their hull
// would include values belonging to neither. The hull with an empty operand
// is the other operand. At a tied boundary the less restrictive inclusivity
// wins.
func (iv Interval[T]) Hull(other Interval[T]) (merged Interval[T], ok bool) {
	if !iv.nonEmpty {
		return other, true
	}

	if !other.nonEmpty {
		return iv, true
	}

	if !iv.Overlaps(other) && !iv.AdjacentTo(other) {
		return Interval[T]{}, false
	}

	newLower := min(iv.lower, other.lower)
	newUpper := max(iv.upper, other.upper)

	var newLowerInc bool

	switch {
	case iv.lower == other.lower:
		newLowerInc = iv.lowerInc || other.lowerInc
	case newLower == iv.lower:
		newLowerInc = iv.lowerInc
	default:
		newLowerInc = other.lowerInc
	}

	var newUpperInc bool

	switch {
	case iv.upper == other.upper:
		newUpperInc = iv.upperInc || other.upperInc
	case newUpper == iv.upper:
		newUpperInc = iv.upperInc
	default:
		newUpperInc = other.upperInc
	}

	return New(newLower, newUpper, newLowerInc, newUpperInc), true
}

// Compare orders intervals for sorting and merging: by lower bound first,
// with an inclusive lower bound sorting before an exclusive one at ties, so
// a merge pass sees touching closed boundaries before open ones. Ties then
// fall through to the upper bound, inclusive first. Empty intervals sort
// before all non-empty intervals and are mutually equal.
func Compare[T cmp.Ordered](a, b Interval[T]) int {
	switch {
	case !a.nonEmpty && !b.nonEmpty:
		return 0
	case !a.nonEmpty:
		return -1
	case !b.nonEmpty:
		return 1
	}

	if c := cmp.Compare(a.lower, b.lower); c != 0 {
		return c
	}

	if a.lowerInc != b.lowerInc {
		if a.lowerInc {
			return -1
		}

		return 1
	}

	if c := cmp.Compare(a.upper, b.upper); c != 0 {
		return c
	}

	if a.upperInc != b.upperInc {
		if a.upperInc {
			return -1
		}

		return 1
	}

	return 0
}

// Less reports whether iv sorts before other under Compare.
func (iv Interval[T]) Less(other Interval[T]) bool {
	return Compare(iv, other) < 0
}

// Length returns upper - lower, or zero for the empty interval.
// A point interval has length zero.
func Length[T Real](iv Interval[T]) T {
	if iv.IsEmpty() {
		return 0
	}

	return iv.upper - iv.lower
}

// Midpoint returns the value halfway between the bounds, or zero for the
// empty interval.
func Midpoint[T Real](iv Interval[T]) T {
	if iv.IsEmpty() {
		return 0
	}

	return iv.lower + Length(iv)/2
}

// Distance returns the gap between two non-overlapping intervals, or zero
// when either is empty or the intervals overlap.
func Distance[T Real](a, b Interval[T]) T {
	if a.IsEmpty() || b.IsEmpty() || a.Overlaps(b) {
		return 0
	}

	if a.upper < b.lower {
		return b.lower - a.upper
	}

	return a.lower - b.upper
}

// String renders the interval in bracket notation: "[0, 5)", "{3}" for a
// point, "∅" for the empty interval.
func (iv Interval[T]) String() string {
	if !iv.nonEmpty {
		return "∅"
	}

	if iv.IsPoint() {
		return fmt.Sprintf("{%v}", iv.lower)
	}

	left, right := "(", ")"

	if iv.lowerInc {
		left = "["
	}

	if iv.upperInc {
		right = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", left, iv.lower, iv.upper, right)
}

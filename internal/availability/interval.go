package availability

import "fmt"

// Point is any totally ordered time representation.
// time.Time satisfies it out of the box, Clock covers time-of-day values.
type Point[T any] interface {
	Compare(other T) int
}

// Interval is an immutable half-open range [start, end)
type Interval[T Point[T]] struct {
	start T
	end   T
}

// NewInterval builds an interval, rejecting zero-length and inverted ranges
func NewInterval[T Point[T]](start, end T) (Interval[T], error) {
	if end.Compare(start) <= 0 {
		return Interval[T]{}, fmt.Errorf("%w: [%v, %v)", ErrInvalidInterval, start, end)
	}
	return Interval[T]{start: start, end: end}, nil
}

// Start returns the inclusive lower bound
func (i Interval[T]) Start() T {
	return i.start
}

// End returns the exclusive upper bound
func (i Interval[T]) End() T {
	return i.end
}

// Overlaps reports whether the two intervals share at least one point.
// Touching intervals (one ends exactly where the other begins) do not overlap.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return i.start.Compare(other.end) < 0 && other.start.Compare(i.end) < 0
}

// Contains reports whether start <= p < end
func (i Interval[T]) Contains(p T) bool {
	return i.start.Compare(p) <= 0 && p.Compare(i.end) < 0
}

// Covers reports whether other lies entirely inside i
func (i Interval[T]) Covers(other Interval[T]) bool {
	return i.start.Compare(other.start) <= 0 && other.end.Compare(i.end) <= 0
}

// Compare orders intervals by start, ties broken by end
func (i Interval[T]) Compare(other Interval[T]) int {
	if c := i.start.Compare(other.start); c != 0 {
		return c
	}
	return i.end.Compare(other.end)
}

// Equal reports whether both bounds match
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.Compare(other) == 0
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v)", i.start, i.end)
}

// minPoint and maxPoint are used by the calculator to clamp bounds

func minPoint[T Point[T]](a, b T) T {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

func maxPoint[T Point[T]](a, b T) T {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

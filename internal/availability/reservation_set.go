package availability

import (
	"iter"
	"slices"
)

// Reservation is a booked interval. ID is carried through for traceability only.
type Reservation[T Point[T]] struct {
	Interval[T]
	ID string
}

// NewReservation validates the bounds and attaches the reservation ID
func NewReservation[T Point[T]](id string, checkin, checkout T) (Reservation[T], error) {
	iv, err := NewInterval(checkin, checkout)
	if err != nil {
		return Reservation[T]{}, err
	}
	return Reservation[T]{Interval: iv, ID: id}, nil
}

// ReservationSet holds the reservations of one place, ordered by check-in then check-out.
// It is rebuilt per request and never mutated.
type ReservationSet[T Point[T]] struct {
	items []Reservation[T]
}

// NewReservationSet copies the caller's slice and sorts it stably,
// so the output of the calculator does not depend on input order.
func NewReservationSet[T Point[T]](items ...Reservation[T]) ReservationSet[T] {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b Reservation[T]) int {
		return a.Interval.Compare(b.Interval)
	})
	return ReservationSet[T]{items: sorted}
}

// SortedByStart yields reservations in ascending order. The sequence can be ranged over any number of times.
func (s ReservationSet[T]) SortedByStart() iter.Seq[Reservation[T]] {
	return func(yield func(Reservation[T]) bool) {
		for _, r := range s.items {
			if !yield(r) {
				return
			}
		}
	}
}

// Len returns the number of reservations in the set
func (s ReservationSet[T]) Len() int {
	return len(s.items)
}

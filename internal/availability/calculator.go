package availability

import (
	"iter"
	"slices"
)

// FreeSlots yields the maximal sub-intervals of window not covered by any reservation.
//
// A cursor starts at the window start and only moves forward: every reservation
// that begins after the cursor leaves a gap, and the cursor then jumps to
// max(cursor, checkout). Overlapping or duplicated reservations therefore collapse
// without producing empty or repeated slots. Reservations sticking out of the
// window are clamped to it.
func FreeSlots[T Point[T]](window Interval[T], reservations ReservationSet[T]) iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		cursor := window.start

		for r := range reservations.SortedByStart() {
			if cursor.Compare(window.end) >= 0 {
				return
			}

			gapEnd := minPoint(r.start, window.end)
			if cursor.Compare(gapEnd) < 0 {
				if !yield(Interval[T]{start: cursor, end: gapEnd}) {
					return
				}
			}

			cursor = maxPoint(cursor, r.end)
		}

		if cursor.Compare(window.end) < 0 {
			yield(Interval[T]{start: cursor, end: window.end})
		}
	}
}

// CollectFreeSlots materialises FreeSlots into a slice (never nil)
func CollectFreeSlots[T Point[T]](window Interval[T], reservations ReservationSet[T]) []Interval[T] {
	slots := slices.Collect(FreeSlots(window, reservations))
	if slots == nil {
		return []Interval[T]{}
	}
	return slots
}

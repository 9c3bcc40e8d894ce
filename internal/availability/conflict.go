package availability

// HasConflict reports whether any reservation overlaps the requested interval.
//
// The check alone is not atomic with the following write: callers that persist a
// reservation must run read-check-write inside a transaction that serialises
// bookings of the same place, otherwise two concurrent requests can both pass.
func HasConflict[T Point[T]](requested Interval[T], reservations ReservationSet[T]) bool {
	_, found := FirstConflict(requested, reservations)
	return found
}

// FirstConflict returns the earliest reservation overlapping the requested interval
func FirstConflict[T Point[T]](requested Interval[T], reservations ReservationSet[T]) (Reservation[T], bool) {
	for r := range reservations.SortedByStart() {
		// the set is sorted by start, nothing after this point can overlap
		if r.start.Compare(requested.end) >= 0 {
			break
		}
		if r.Overlaps(requested) {
			return r, true
		}
	}
	return Reservation[T]{}, false
}

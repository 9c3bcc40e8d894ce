package availability

import "errors"

var (
	// ErrInvalidInterval is returned when an interval is built with end <= start
	ErrInvalidInterval = errors.New("availability: interval end must be after start")

	// ErrMalformedTime is returned when a time string from upstream data cannot be parsed
	ErrMalformedTime = errors.New("availability: malformed time")
)

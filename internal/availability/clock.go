package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerDay is the exclusive end of a day expressed as a Clock ("24:00")
	MinutesPerDay = 24 * 60

	windowSeparator = "-"
)

// Clock is a time of day in minutes since midnight, 0..1440.
type Clock int

// EndOfDay is "24:00", the exclusive end of a calendar day
const EndOfDay Clock = MinutesPerDay

// ParseClock parses "HH:MM". "24:00" is accepted as the end of the day.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrMalformedTime, s)
	}

	if !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrMalformedTime, s)
	}

	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedTime, s, err)
	}

	if hours < 0 || minutes < 0 || minutes > 59 || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrMalformedTime, s)
	}

	return Clock(hours*60 + minutes), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ClockOf returns the time of day of t in t's location
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// Compare implements Point
func (c Clock) Compare(other Clock) int {
	switch {
	case c < other:
		return -1
	case c > other:
		return 1
	default:
		return 0
	}
}

// On anchors the time of day to the calendar day of date as a wall-clock time
// in date's location. EndOfDay is the midnight that starts the next day
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	if c >= EndOfDay {
		return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).AddDate(0, 0, 1)
	}
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, date.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseWindow parses the "HH:MM - HH:MM" availability format of a place
func ParseWindow(s string) (Interval[Clock], error) {
	from, to, ok := strings.Cut(s, windowSeparator)
	if !ok {
		return Interval[Clock]{}, fmt.Errorf("%w: window %q, expected \"HH:MM - HH:MM\"", ErrMalformedTime, s)
	}

	start, err := ParseClock(from)
	if err != nil {
		return Interval[Clock]{}, err
	}
	end, err := ParseClock(to)
	if err != nil {
		return Interval[Clock]{}, err
	}

	return NewInterval(start, end)
}

// FormatSlot renders a time-of-day interval as "HH:MM - HH:MM"
func FormatSlot(iv Interval[Clock]) string {
	return iv.start.String() + " - " + iv.end.String()
}

// FormatSlots renders every interval with FormatSlot
func FormatSlots(slots []Interval[Clock]) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = FormatSlot(s)
	}
	return out
}

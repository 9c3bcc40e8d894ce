package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
)

// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
var ErrInvalidDate = errors.New("domain: invalid date")

// ParseDate parses a YYYY-MM-DD calendar day in loc
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseDateTime combines a YYYY-MM-DD date and an HH:MM time in loc
// "24:00" is the midnight that ends the given day
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}

	c, err := availability.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}

	return c.On(d), nil
}

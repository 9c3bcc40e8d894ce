package domain

import (
	"strings"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
)

// AccessType тип доступа к парковке
type AccessType string

const (
	AccessPublic  AccessType = "public"
	AccessPrivate AccessType = "private"
)

// IsValid checks the access type against the known values
func (a AccessType) IsValid() bool {
	return a == AccessPublic || a == AccessPrivate
}

// PlaceDocuments ссылки на документы владельца (хранятся как непрозрачные строки)
type PlaceDocuments struct {
	AadhaarCard        *string
	NOCLetter          *string
	BuildingPermission *string
	PlacePicture       *string
}

// Place represents a parking place registered by an owner
type Place struct {
	ID            string // slug of the name
	Name          string
	Address       string
	OwnerName     string
	OwnerEmail    string
	ParkingNumber *string

	// Availability ежедневное окно работы "HH:MM - HH:MM"
	Availability string

	// Период, в который площадка сдается (даты включительно, nil = без ограничения)
	DateFrom *time.Time
	DateTo   *time.Time

	Latitude  *float64
	Longitude *float64

	Charge           float64
	AccessType       AccessType
	HasCameras       bool
	HasSecurityGuard bool
	GuardName        *string
	GuardContact     *string

	Documents PlaceDocuments

	Verified   bool
	VerifiedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlaceIDFromName builds the place id: whitespace runs are replaced with "_"
func PlaceIDFromName(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// Window parses the daily opening window
func (p *Place) Window() (availability.Interval[availability.Clock], error) {
	return availability.ParseWindow(p.Availability)
}

// IsExpired returns true if the listing period ended before the day of now
func (p *Place) IsExpired(now time.Time) bool {
	if p.DateTo == nil {
		return false
	}
	return dateOnly(*p.DateTo, now.Location()).Before(dateOnly(now, now.Location()))
}

// IsListed returns true if the place is visible in the public listing
func (p *Place) IsListed(now time.Time) bool {
	return p.Verified && !p.IsExpired(now)
}

// CoversDate returns true if date falls inside [DateFrom, DateTo]
func (p *Place) CoversDate(date time.Time) bool {
	day := dateOnly(date, date.Location())
	if p.DateFrom != nil && day.Before(dateOnly(*p.DateFrom, date.Location())) {
		return false
	}
	if p.DateTo != nil && day.After(dateOnly(*p.DateTo, date.Location())) {
		return false
	}
	return true
}

// IsOwnedBy compares owner email case-insensitively
func (p *Place) IsOwnedBy(email string) bool {
	return email != "" && strings.EqualFold(p.OwnerEmail, email)
}

// dateOnly отбрасывает время, сохраняя календарную дату
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

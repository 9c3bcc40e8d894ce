package domain

import (
	"math"
	"time"
)

// Tariff represents pricing for a vehicle type
// Supports hierarchical configuration:
// 1. Place-specific (place_id, vehicle_type)
// 2. Global (NULL, vehicle_type)
// 3. Built-in defaults (DefaultBaseAmounts, DefaultPlatformFeePercent)
type Tariff struct {
	ID                 int64
	PlaceID            *string // NULL = global tariff
	VehicleType        VehicleType
	BaseAmount         float64
	PlatformFeePercent float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsGlobal returns true if the tariff applies to every place
func (t *Tariff) IsGlobal() bool {
	return t.PlaceID == nil
}

// IsDefault returns true if the tariff was not loaded from storage
func (t *Tariff) IsDefault() bool {
	return t.ID == 0
}

// DefaultTariff returns the built-in tariff for the vehicle type
func DefaultTariff(vehicleType VehicleType) *Tariff {
	return &Tariff{
		VehicleType:        vehicleType,
		BaseAmount:         DefaultBaseAmounts[vehicleType],
		PlatformFeePercent: DefaultPlatformFeePercent,
	}
}

// Quote считает комиссию платформы и итоговую сумму, округляя до копеек (пайс)
func (t *Tariff) Quote() (platformFee, total float64) {
	platformFee = RoundAmount(t.BaseAmount * t.PlatformFeePercent / 100)
	total = RoundAmount(t.BaseAmount + platformFee)
	return platformFee, total
}

// RoundAmount rounds to two decimal places
func RoundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

// ToMinorUnits converts an amount to paise
func ToMinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}

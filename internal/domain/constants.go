package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pricing defaults (используются, если тариф не настроен ни для площадки, ни глобально)
const (
	DefaultPlatformFeePercent = 5.0
	DefaultCurrency           = "INR"
)

// DefaultBaseAmounts базовая стоимость бронирования по типу транспорта
var DefaultBaseAmounts = map[VehicleType]float64{
	VehicleCar:     30,
	VehicleBike:    20,
	VehicleScooter: 20,
	VehicleBicycle: 10,
}

// Business validation constants
const (
	MaxPlaceNameLength    = 200
	MaxAddressLength      = 500
	MaxFullNameLength     = 200
	MaxLicensePlateLength = 20
	MaxPhoneLength        = 20
	MaxReservationDays    = 30
	MaxBaseAmount         = 100000
	MaxPlatformFeePercent = 100
	MinLatitude           = -90
	MaxLatitude           = 90
	MinLongitude          = -180
	MaxLongitude          = 180
)

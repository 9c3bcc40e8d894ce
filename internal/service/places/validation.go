package places

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/service/places/models"
)

// buildPlace валидирует запрос регистрации и собирает domain модель
func buildPlace(req *models.RegisterPlaceRequest, loc *time.Location) (*domain.Place, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxPlaceNameLength {
		return nil, fmt.Errorf("%w: name is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxPlaceNameLength)
	}

	address := strings.TrimSpace(req.Address)
	if address == "" || len(address) > domain.MaxAddressLength {
		return nil, fmt.Errorf("%w: address is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxAddressLength)
	}

	ownerName := strings.TrimSpace(req.OwnerName)
	if ownerName == "" || len(ownerName) > domain.MaxFullNameLength {
		return nil, fmt.Errorf("%w: ownerName is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxFullNameLength)
	}

	ownerEmail := strings.TrimSpace(req.OwnerEmail)
	if ownerEmail == "" {
		ownerEmail = req.Actor.Email
	}
	if _, err := mail.ParseAddress(ownerEmail); err != nil {
		return nil, fmt.Errorf("%w: invalid ownerEmail", ErrInvalidInput)
	}

	window, err := availability.ParseWindow(req.Availability)
	if err != nil {
		return nil, fmt.Errorf("%w: availability: %v", ErrInvalidInput, err)
	}

	dateFrom, err := parseOptionalDate(req.DateFrom, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: dateFrom: %v", ErrInvalidInput, err)
	}
	dateTo, err := parseOptionalDate(req.DateTo, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: dateTo: %v", ErrInvalidInput, err)
	}
	if dateFrom != nil && dateTo != nil && dateTo.Before(*dateFrom) {
		return nil, fmt.Errorf("%w: dateTo must not be before dateFrom", ErrInvalidInput)
	}

	if req.Latitude != nil && (*req.Latitude < domain.MinLatitude || *req.Latitude > domain.MaxLatitude) {
		return nil, fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
	}
	if req.Longitude != nil && (*req.Longitude < domain.MinLongitude || *req.Longitude > domain.MaxLongitude) {
		return nil, fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
	}

	if req.Charge < 0 {
		return nil, fmt.Errorf("%w: charge must not be negative", ErrInvalidInput)
	}

	accessType := domain.AccessPublic
	if req.AccessType != "" {
		accessType = domain.AccessType(strings.ToLower(strings.TrimSpace(req.AccessType)))
		if !accessType.IsValid() {
			return nil, fmt.Errorf("%w: unknown accessType %q", ErrInvalidInput, req.AccessType)
		}
	}

	return &domain.Place{
		ID:               domain.PlaceIDFromName(name),
		Name:             name,
		Address:          address,
		OwnerName:        ownerName,
		OwnerEmail:       ownerEmail,
		ParkingNumber:    req.ParkingNumber,
		Availability:     availability.FormatSlot(window),
		DateFrom:         dateFrom,
		DateTo:           dateTo,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Charge:           req.Charge,
		AccessType:       accessType,
		HasCameras:       req.HasCameras,
		HasSecurityGuard: req.HasSecurityGuard,
		GuardName:        req.GuardName,
		GuardContact:     req.GuardContact,
		Documents: domain.PlaceDocuments{
			AadhaarCard:        req.Documents.AadhaarCard,
			NOCLetter:          req.Documents.NOCLetter,
			BuildingPermission: req.Documents.BuildingPermission,
			PlacePicture:       req.Documents.PlacePicture,
		},
	}, nil
}

func parseOptionalDate(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(strings.TrimSpace(*s), loc)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

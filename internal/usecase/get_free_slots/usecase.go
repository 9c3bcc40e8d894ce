package get_free_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
)

// UseCase use case для получения свободных окон площадки на день
type UseCase struct {
	placeRepo       PlaceRepository
	reservationRepo ReservationRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	reservationRepo ReservationRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:       placeRepo,
		reservationRepo: reservationRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных окон
// Каждый вызов читает актуальные бронирования, результат не кэшируется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreeSlots: validation failed: %v", err)
		return nil, err
	}

	date := uc.timeProvider.Now()
	if req.Date != nil {
		date = *req.Date
	}
	dayStart, dayEnd := dayBounds(date, uc.location)

	uc.logger.Info("GetFreeSlots: place=%s, date=%s", req.PlaceID, dayStart.Format(domain.DateFormat))

	// 2. Получаем площадку
	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("GetFreeSlots: place id=%s not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get place id=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	// 3. Разбираем окно работы
	window, err := place.Window()
	if err != nil {
		uc.logger.Warn("GetFreeSlots: place id=%s has invalid availability %q: %v", place.ID, place.Availability, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAvailability, err)
	}

	// 4. Получаем активные бронирования, пересекающие день
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{
		PlaceIDs: []string{place.ID},
		From:     &dayStart,
		To:       &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get reservations for place id=%s: %v", place.ID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Считаем свободные окна
	set := clipToDay(reservations, dayStart, dayEnd)
	slots := availability.FormatSlots(availability.CollectFreeSlots(window, set))

	uc.logger.Info("GetFreeSlots: place=%s, %d reservations, %d free slots", place.ID, set.Len(), len(slots))

	return &Response{
		PlaceID:        place.ID,
		Date:           dayStart,
		Availability:   place.Availability,
		AvailableSlots: slots,
	}, nil
}

package check_conflict

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
)

// UseCase проверяет, пересекается ли запрошенный интервал с активными бронированиями
// Проверка выполняется без транзакции: результат может устареть к моменту создания брони
type UseCase struct {
	placeRepo       PlaceRepository
	reservationRepo ReservationRepository
	metrics         MetricsRecorder
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	reservationRepo ReservationRepository,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:       placeRepo,
		reservationRepo: reservationRepo,
		metrics:         metrics,
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: place=%s, checkin=%s %s, checkout=%s %s",
		req.PlaceID, req.CheckinDate, req.CheckinTime, req.CheckoutDate, req.CheckoutTime)

	if strings.TrimSpace(req.PlaceID) == "" {
		return nil, fmt.Errorf("%w: placeId is required", ErrInvalidInput)
	}

	requested, err := uc.parseInterval(req)
	if err != nil {
		uc.logger.Warn("CheckConflict: %v", err)
		return nil, err
	}

	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("CheckConflict: place id=%s not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("CheckConflict: failed to get place id=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	from, to := requested.Start(), requested.End()
	reservations, err := uc.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{
		PlaceIDs: []string{place.ID},
		From:     &from,
		To:       &to,
	})
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	items := make([]availability.Reservation[time.Time], 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		item, err := availability.NewReservation(r.ID, r.Checkin, r.Checkout)
		if err != nil {
			uc.logger.Warn("CheckConflict: skipping reservation id=%s: %v", r.ID, err)
			continue
		}
		items = append(items, item)
	}

	conflict, ok := availability.FirstConflict(requested, availability.NewReservationSet(items...))
	if !ok {
		return &Response{Conflict: false}, nil
	}

	uc.metrics.ObserveConflict("check")
	uc.logger.Info("CheckConflict: %s overlaps reservation id=%s", requested, conflict.ID)

	id := conflict.ID
	return &Response{Conflict: true, ReservationID: &id}, nil
}

func (uc *UseCase) parseInterval(req *Request) (availability.Interval[time.Time], error) {
	checkin, err := domain.ParseDateTime(req.CheckinDate, req.CheckinTime, uc.location)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: checkin: %v", ErrInvalidInput, err)
	}
	checkout, err := domain.ParseDateTime(req.CheckoutDate, req.CheckoutTime, uc.location)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: checkout: %v", ErrInvalidInput, err)
	}

	interval, err := availability.NewInterval(checkin, checkout)
	if err != nil {
		return availability.Interval[time.Time]{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	return interval, nil
}

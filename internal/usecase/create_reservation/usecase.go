package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
)

// UseCase use case для создания бронирования
type UseCase struct {
	placeRepo       PlaceRepository
	reservationRepo ReservationRepository
	tariffRepo      TariffRepository
	txManager       TransactionManager
	publisher       EventPublisher
	metrics         MetricsRecorder
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	reservationRepo ReservationRepository,
	tariffRepo TariffRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:       placeRepo,
		reservationRepo: reservationRepo,
		tariffRepo:      tariffRepo,
		txManager:       txManager,
		publisher:       publisher,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Чтение бронирований, проверка пересечения и вставка выполняются в сериализуемой
// транзакции под блокировкой строки площадки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, place=%s, checkin=%s %s, checkout=%s %s, vehicle=%s",
		req.UserEmail, req.PlaceID, req.CheckinDate, req.CheckinTime, req.CheckoutDate, req.CheckoutTime, req.VehicleType)

	// 1. Валидация входных данных
	vehicleType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	requested, err := parseInterval(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateReservation: invalid interval: %v", err)
		return nil, err
	}

	// 2. Заезд не может быть в прошлом
	now := uc.timeProvider.Now()
	if requested.Start().Before(now) {
		uc.logger.Warn("CreateReservation: checkin %s is in the past", requested.Start().Format(time.RFC3339))
		return nil, ErrCheckinInPast
	}

	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем площадку
		place, err := uc.placeRepo.GetByIDForUpdate(txCtx, req.PlaceID)
		if err != nil {
			if errors.Is(err, placeRepo.ErrPlaceNotFound) {
				uc.logger.Warn("CreateReservation: place id=%s not found", req.PlaceID)
				return ErrPlaceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get place id=%s: %v", req.PlaceID, err)
			return fmt.Errorf("%w: failed to get place: %w", ErrInternal, err)
		}

		// 3.2. Проверки площадки
		if !place.Verified {
			uc.logger.Warn("CreateReservation: place id=%s is not verified", place.ID)
			return ErrPlaceNotVerified
		}

		if err := validateListingPeriod(place, requested); err != nil {
			uc.logger.Warn("CreateReservation: place id=%s: %v", place.ID, err)
			return err
		}

		if err := validateOpeningHours(place, requested); err != nil {
			uc.logger.Warn("CreateReservation: place id=%s: %v", place.ID, err)
			return err
		}

		// 3.3. Активные бронирования затронутых дней
		from := dayStart(requested.Start())
		to := dayStart(requested.End()).AddDate(0, 0, 1)
		existing, err := uc.reservationRepo.GetWithFilter(txCtx, domain.ReservationFilter{
			PlaceIDs: []string{place.ID},
			From:     &from,
			To:       &to,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		// 3.4. Проверка пересечения
		if conflict, ok := availability.FirstConflict(requested, toReservationSet(existing)); ok {
			uc.metrics.ObserveConflict("create")
			uc.logger.Warn("CreateReservation: requested %s overlaps reservation id=%s %s",
				requested, conflict.ID, conflict.Interval)
			return fmt.Errorf("%w: overlaps reservation %s", ErrSlotAlreadyBooked, conflict.ID)
		}

		// 3.5. Стоимость
		tariff, err := uc.resolveTariff(txCtx, place.ID, vehicleType)
		if err != nil {
			uc.logger.Error("CreateReservation: %v", err)
			return err
		}
		platformFee, total := tariff.Quote()

		// 3.6. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			PlaceID:         place.ID,
			UserEmail:       strings.TrimSpace(req.UserEmail),
			FullName:        strings.TrimSpace(req.FullName),
			Phone:           strings.TrimSpace(req.Phone),
			VehicleType:     vehicleType,
			LicensePlate:    strings.ToUpper(strings.TrimSpace(req.LicensePlate)),
			LicensePhotoURL: req.LicensePhotoURL,
			PlatePhotoURL:   req.PlatePhotoURL,
			Checkin:         requested.Start(),
			Checkout:        requested.End(),
			BaseAmount:      tariff.BaseAmount,
			PlatformFee:     platformFee,
			TotalAmount:     total,
			Status:          domain.StatusActive,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateReservation: concurrent reservation for place id=%s: %v", req.PlaceID, err)
			return nil, fmt.Errorf("%w: concurrent reservation", ErrSlotAlreadyBooked)
		}
		return nil, err
	}

	uc.metrics.ObserveReservationCreated(string(result.VehicleType))
	uc.logger.Info("CreateReservation: successfully created reservation id=%s, total=%.2f", result.ID, result.TotalAmount)

	// 4. Событие публикуется после коммита; ошибка публикации не отменяет бронирование
	if err := uc.publisher.Publish(ctx, events.ReservationCreated(result, now)); err != nil {
		uc.logger.Error("CreateReservation: failed to publish event for reservation id=%s: %v", result.ID, err)
	}

	return &Response{
		ID:           result.ID,
		PlaceID:      result.PlaceID,
		UserEmail:    result.UserEmail,
		FullName:     result.FullName,
		Phone:        result.Phone,
		VehicleType:  string(result.VehicleType),
		LicensePlate: result.LicensePlate,
		Checkin:      result.Checkin,
		Checkout:     result.Checkout,
		BaseAmount:   result.BaseAmount,
		PlatformFee:  result.PlatformFee,
		TotalAmount:  result.TotalAmount,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
	}, nil
}

// toReservationSet переводит активные бронирования в набор интервалов
func toReservationSet(reservations []*domain.Reservation) availability.ReservationSet[time.Time] {
	items := make([]availability.Reservation[time.Time], 0, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		item, err := availability.NewReservation(r.ID, r.Checkin, r.Checkout)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return availability.NewReservationSet(items...)
}

// serializationFailure SQLSTATE конфликта сериализуемых транзакций
const serializationFailure = "40001"

// isSerializationFailure сообщает, что параллельная транзакция заняла тот же слот первой
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == serializationFailure
}

package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	reservationRepo "github.com/urbandepot/parking-service/internal/infra/storage/reservation"
	"github.com/urbandepot/parking-service/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	placeRepo       PlaceRepository
	publisher       EventPublisher
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	placeRepo PlaceRepository,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		placeRepo:       placeRepo,
		publisher:       publisher,
		location:        location,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Доступно арендатору, владельцу площадки и администратору
func (s *Service) GetByID(ctx context.Context, id string, actor domain.Actor) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, actor.Email)

	reservation, err := s.getReservation(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReservationAccess(ctx, reservation, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", actor.Email, id)
		return nil, err
	}

	return models.FromDomainReservation(reservation, s.location), nil
}

// GetByPlace получает бронирования площадки
// Доступно владельцу площадки и администратору
func (s *Service) GetByPlace(ctx context.Context, req *models.GetPlaceReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetByPlace: fetching reservations for place=%s, user=%s", req.PlaceID, req.Actor.Email)

	place, err := s.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("GetByPlace: place id=%s not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("GetByPlace: failed to get place id=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: GetByPlace - failed to get place: %v", ErrInternal, err)
	}

	if !req.Actor.CanManage(place.OwnerEmail) {
		s.logger.Warn("GetByPlace: user=%s is not the owner of place=%s", req.Actor.Email, place.ID)
		return nil, ErrAccessDenied
	}

	filter := domain.ReservationFilter{
		PlaceIDs:         []string{place.ID},
		IncludeCancelled: req.IncludeCancelled,
	}
	if req.Date != nil {
		y, m, d := req.Date.In(s.location).Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, s.location)
		to := from.AddDate(0, 0, 1)
		filter.From = &from
		filter.To = &to
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetByPlace: repository error for place=%s: %v", place.ID, err)
		return nil, fmt.Errorf("%w: GetByPlace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByPlace: successfully fetched %d reservations for place=%s", len(reservations), place.ID)
	return models.FromDomainReservationList(reservations, s.location), nil
}

// GetUserReservations получает бронирования пользователя
// Пользователь видит только свои бронирования, администратор любые
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations of %s for user=%s", req.UserEmail, req.Actor.Email)

	if req.UserEmail == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if !req.Actor.CanManage(req.UserEmail) {
		s.logger.Warn("GetUserReservations: user=%s cannot read reservations of %s", req.Actor.Email, req.UserEmail)
		return nil, ErrAccessDenied
	}

	email := req.UserEmail
	reservations, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{
		UserEmail:        &email,
		IncludeCancelled: req.IncludeCancelled,
	})
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for %s: %v", req.UserEmail, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for %s", len(reservations), req.UserEmail)
	return models.FromDomainReservationList(reservations, s.location), nil
}

// Cancel отменяет бронирование
// Отменить может арендатор, владелец площадки или администратор
func (s *Service) Cancel(ctx context.Context, id string, actor domain.Actor) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", id, actor.Email)

	reservation, err := s.getReservation(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.checkReservationAccess(ctx, reservation, actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to cancel reservation id=%s", actor.Email, id)
		return err
	}

	if err := s.reservationRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Бронирование было отменено параллельным запросом
			s.logger.Warn("Cancel: reservation id=%s is no longer active", id)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	reservation.Status = domain.StatusCancelled
	reservation.CancelledAt = &now

	if err := s.publisher.Publish(ctx, events.ReservationCancelled(reservation, now)); err != nil {
		s.logger.Error("Cancel: failed to publish event for reservation id=%s: %v", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}

// GetGrouped группирует все бронирования по дню создания и считает сумму комиссий за день
// Доступно только администратору
func (s *Service) GetGrouped(ctx context.Context, actor domain.Actor) (*models.GroupedResponse, error) {
	s.logger.Info("GetGrouped: fetching grouped reservations for user=%s", actor.Email)

	if !actor.Admin {
		s.logger.Warn("GetGrouped: user=%s is not an admin", actor.Email)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{IncludeCancelled: true})
	if err != nil {
		s.logger.Error("GetGrouped: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGrouped - repository error: %v", ErrInternal, err)
	}

	groups := make(map[string]*models.DayGroup)
	for _, r := range reservations {
		day := r.CreatedAt.In(s.location).Format(domain.DateFormat)
		group, ok := groups[day]
		if !ok {
			group = &models.DayGroup{Date: day, Reservations: []models.ReservationResponse{}}
			groups[day] = group
		}
		group.Reservations = append(group.Reservations, *models.FromDomainReservation(r, s.location))
		group.TotalPlatformFee = domain.RoundAmount(group.TotalPlatformFee + r.PlatformFee)
	}

	resp := &models.GroupedResponse{Days: make([]models.DayGroup, 0, len(groups))}
	for _, group := range groups {
		resp.Days = append(resp.Days, *group)
	}
	// Даты в формате YYYY-MM-DD сравниваются как строки
	sort.Slice(resp.Days, func(i, j int) bool {
		return resp.Days[i].Date > resp.Days[j].Date
	})

	s.logger.Info("GetGrouped: grouped %d reservations into %d days", len(reservations), len(resp.Days))
	return resp, nil
}

// Вспомогательные методы

func (s *Service) getReservation(ctx context.Context, op, id string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%s not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// checkReservationAccess проверяет, что пользователь арендатор, владелец площадки или администратор
func (s *Service) checkReservationAccess(ctx context.Context, reservation *domain.Reservation, actor domain.Actor) error {
	if actor.Admin || actor.Is(reservation.UserEmail) {
		return nil
	}

	place, err := s.placeRepo.GetByID(ctx, reservation.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			return ErrAccessDenied
		}
		s.logger.Error("checkReservationAccess: failed to get place id=%s: %v", reservation.PlaceID, err)
		return fmt.Errorf("%w: checkReservationAccess - failed to get place: %v", ErrInternal, err)
	}

	if !place.IsOwnedBy(actor.Email) {
		return ErrAccessDenied
	}
	return nil
}

package places

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urbandepot/parking-service/internal/availability"
	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
	placeRepo "github.com/urbandepot/parking-service/internal/infra/storage/place"
	"github.com/urbandepot/parking-service/internal/service/places/models"
)

// Service сервис для работы с площадками
type Service struct {
	placeRepo       PlaceRepository
	reservationRepo ReservationRepository
	publisher       EventPublisher
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	placeRepo PlaceRepository,
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		placeRepo:       placeRepo,
		reservationRepo: reservationRepo,
		publisher:       publisher,
		location:        location,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// Register регистрирует новую площадку
// Площадка создается непроверенной и не попадает в публичный список до проверки администратором
func (s *Service) Register(ctx context.Context, req *models.RegisterPlaceRequest) (*models.PlaceResponse, error) {
	s.logger.Info("Register: registering place name=%q by user=%s", req.Name, req.Actor.Email)

	place, err := buildPlace(req, s.location)
	if err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	if !req.Actor.CanManage(place.OwnerEmail) {
		s.logger.Warn("Register: user=%s cannot register a place for %s", req.Actor.Email, place.OwnerEmail)
		return nil, ErrAccessDenied
	}

	created, err := s.placeRepo.Create(ctx, place)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceAlreadyExists) {
			s.logger.Warn("Register: place id=%s already exists", place.ID)
			return nil, ErrPlaceAlreadyExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered place id=%s", created.ID)
	return models.FromDomainPlace(created), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PlaceResponse, error) {
	s.logger.Info("GetByID: fetching place id=%s", id)

	place, err := s.getPlace(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainPlace(place), nil
}

// ListPublic возвращает проверенные площадки с действующим периодом
// К каждой площадке прикладываются активные бронирования на сегодня
func (s *Service) ListPublic(ctx context.Context) (*models.PlaceListResponse, error) {
	s.logger.Info("ListPublic: fetching listed places")

	places, err := s.placeRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now().In(s.location)
	listed := make([]*domain.Place, 0, len(places))
	ids := make([]string, 0, len(places))
	for _, p := range places {
		if p.IsListed(now) {
			listed = append(listed, p)
			ids = append(ids, p.ID)
		}
	}

	resp := models.FromDomainPlaceList(listed)
	if len(listed) == 0 {
		return resp, nil
	}

	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	reservations, err := s.reservationRepo.GetWithFilter(ctx, domain.ReservationFilter{
		PlaceIDs: ids,
		From:     &dayStart,
		To:       &dayEnd,
	})
	if err != nil {
		s.logger.Error("ListPublic: failed to get today's reservations: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - failed to get reservations: %v", ErrInternal, err)
	}

	byPlace := make(map[string][]models.TodayReservation, len(listed))
	for _, r := range reservations {
		byPlace[r.PlaceID] = append(byPlace[r.PlaceID], models.TodayReservation{
			ReservationID: r.ID,
			CheckinTime:   clockWithinDay(r.Checkin, dayStart, dayEnd).String(),
			CheckoutTime:  clockWithinDay(r.Checkout, dayStart, dayEnd).String(),
		})
	}
	for i := range resp.Places {
		resp.Places[i].Reservations = byPlace[resp.Places[i].ID]
	}

	s.logger.Info("ListPublic: successfully fetched %d listed places", len(listed))
	return resp, nil
}

// GetByOwner получает площадки владельца
// Владелец видит только свои площадки, администратор любые
func (s *Service) GetByOwner(ctx context.Context, ownerEmail string, actor domain.Actor) (*models.PlaceListResponse, error) {
	s.logger.Info("GetByOwner: fetching places of %s for user=%s", ownerEmail, actor.Email)

	if !actor.CanManage(ownerEmail) {
		s.logger.Warn("GetByOwner: user=%s cannot read places of %s", actor.Email, ownerEmail)
		return nil, ErrAccessDenied
	}

	places, err := s.placeRepo.GetByOwner(ctx, ownerEmail)
	if err != nil {
		s.logger.Error("GetByOwner: repository error for %s: %v", ownerEmail, err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlaceList(places), nil
}

// ListAll возвращает все площадки, включая непроверенные
// Доступно только администратору
func (s *Service) ListAll(ctx context.Context, actor domain.Actor) (*models.PlaceListResponse, error) {
	s.logger.Info("ListAll: fetching all places for user=%s", actor.Email)

	if !actor.Admin {
		s.logger.Warn("ListAll: user=%s is not an admin", actor.Email)
		return nil, ErrAccessDenied
	}

	places, err := s.placeRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlaceList(places), nil
}

// Delete удаляет площадку вместе с ее бронированиями
// Доступно владельцу и администратору
func (s *Service) Delete(ctx context.Context, id string, actor domain.Actor) error {
	s.logger.Info("Delete: deleting place id=%s by user=%s", id, actor.Email)

	place, err := s.getPlace(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !actor.CanManage(place.OwnerEmail) {
		s.logger.Warn("Delete: user=%s is not the owner of place=%s", actor.Email, id)
		return ErrAccessDenied
	}

	if err := s.placeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			return ErrPlaceNotFound
		}
		s.logger.Error("Delete: repository error for place id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted place id=%s", id)
	return nil
}

// Verify отмечает площадку проверенной
// Доступно только администратору
func (s *Service) Verify(ctx context.Context, id string, actor domain.Actor) (*models.PlaceResponse, error) {
	s.logger.Info("Verify: verifying place id=%s by user=%s", id, actor.Email)

	if !actor.Admin {
		s.logger.Warn("Verify: user=%s is not an admin", actor.Email)
		return nil, ErrAccessDenied
	}

	if err := s.placeRepo.Verify(ctx, id); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Verify: place id=%s not found", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("Verify: repository error for place id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Verify - repository error: %v", ErrInternal, err)
	}

	place, err := s.getPlace(ctx, "Verify", id)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.PlaceVerified(place, s.timeProvider.Now())); err != nil {
		s.logger.Error("Verify: failed to publish event for place id=%s: %v", id, err)
	}

	s.logger.Info("Verify: successfully verified place id=%s", id)
	return models.FromDomainPlace(place), nil
}

func (s *Service) getPlace(ctx context.Context, op, id string) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("%s: place id=%s not found", op, id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("%s: repository error for place id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return place, nil
}

// clockWithinDay переводит момент во время суток по настенным часам дня,
// ограничивая его границами дня
func clockWithinDay(t, dayStart, dayEnd time.Time) availability.Clock {
	switch {
	case !t.After(dayStart):
		return 0
	case !t.Before(dayEnd):
		return availability.EndOfDay
	default:
		return availability.ClockOf(t.In(dayStart.Location()))
	}
}

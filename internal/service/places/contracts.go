package places

import (
	"context"
	"time"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
)

// PlaceRepository интерфейс репозитория площадок
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	List(ctx context.Context, onlyVerified bool) ([]*domain.Place, error)
	GetByOwner(ctx context.Context, ownerEmail string) ([]*domain.Place, error)
	Verify(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

package check_conflict

import (
	"context"

	"github.com/urbandepot/parking-service/internal/domain"
)

// PlaceRepository интерфейс репозитория площадок
type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// MetricsRecorder интерфейс бизнес-метрик
type MetricsRecorder interface {
	ObserveConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

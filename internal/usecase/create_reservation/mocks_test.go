package create_reservation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/internal/infra/events"
)

type mockPlaceRepo struct{ mock.Mock }

func (m *mockPlaceRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Place, error) {
	args := m.Called(ctx, id)
	place, _ := args.Get(0).(*domain.Place)
	return place, args.Error(1)
}

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, r)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Reservation) *domain.Reservation); ok {
		return fn(ctx, r), args.Error(1)
	}
	created, _ := args.Get(0).(*domain.Reservation)
	return created, args.Error(1)
}

func (m *mockReservationRepo) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	reservations, _ := args.Get(0).([]*domain.Reservation)
	return reservations, args.Error(1)
}

type mockTariffRepo struct{ mock.Mock }

func (m *mockTariffRepo) GetWithHierarchy(ctx context.Context, placeID string, vt domain.VehicleType) (*domain.Tariff, error) {
	args := m.Called(ctx, placeID, vt)
	tariff, _ := args.Get(0).(*domain.Tariff)
	return tariff, args.Error(1)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

// fakeTxManager выполняет fn сразу, считая вызовы
// commitErr имитирует ошибку фиксации после успешного fn
type fakeTxManager struct {
	calls     int
	commitErr error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fakeMetrics struct {
	created   []string
	conflicts []string
}

func (f *fakeMetrics) ObserveReservationCreated(vt string) { f.created = append(f.created, vt) }
func (f *fakeMetrics) ObserveConflict(source string)       { f.conflicts = append(f.conflicts, source) }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

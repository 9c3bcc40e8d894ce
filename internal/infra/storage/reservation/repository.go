package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/pkg/dbmetrics"
	"github.com/urbandepot/parking-service/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"place_id",
	"user_email",
	"full_name",
	"phone",
	"vehicle_type",
	"license_plate",
	"license_photo_url",
	"plate_photo_url",
	"checkin_at",
	"checkout_at",
	"base_amount",
	"platform_fee",
	"total_amount",
	"status",
	"payment_order_id",
	"payment_id",
	"paid_at",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если ID не задан, генерируется UUID
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if reservation.ID == "" {
		reservation.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"place_id",
			"user_email",
			"full_name",
			"phone",
			"vehicle_type",
			"license_plate",
			"license_photo_url",
			"plate_photo_url",
			"checkin_at",
			"checkout_at",
			"base_amount",
			"platform_fee",
			"total_amount",
			"status",
		).
		Values(
			reservation.ID,
			reservation.PlaceID,
			reservation.UserEmail,
			reservation.FullName,
			reservation.Phone,
			reservation.VehicleType,
			reservation.LicensePlate,
			reservation.LicensePhotoURL,
			reservation.PlatePhotoURL,
			reservation.Checkin,
			reservation.Checkout,
			reservation.BaseAmount,
			reservation.PlatformFee,
			reservation.TotalAmount,
			reservation.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrReservationNotFound
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// GetWithFilter получает бронирования по фильтру
// Период [From, To) отбирает бронирования, пересекающие его (checkin < To и checkout > From)
// Результат отсортирован по времени заезда
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("checkin_at ASC", "checkout_at ASC")

	if len(filter.PlaceIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"place_id": filter.PlaceIDs})
	}

	if filter.UserEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(user_email) = ?", strings.ToLower(*filter.UserEmail)))
	}

	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"checkin_at": *filter.To})
	}

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"checkout_at": *filter.From})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusActive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel отменяет активное бронирование
func (r *Repository) Cancel(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

// SetPaymentOrder привязывает к бронированию заказ платежного шлюза
func (r *Repository) SetPaymentOrder(ctx context.Context, id, orderID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("payment_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentOrder - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetPaymentOrder", query, args)
}

// MarkPaid отмечает бронирование оплаченным
func (r *Repository) MarkPaid(ctx context.Context, id, orderID, paymentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("payment_order_id", orderID).
		Set("payment_id", paymentID).
		Set("paid_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "MarkPaid", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.PlaceID,
		&reservation.UserEmail,
		&reservation.FullName,
		&reservation.Phone,
		&reservation.VehicleType,
		&reservation.LicensePlate,
		&reservation.LicensePhotoURL,
		&reservation.PlatePhotoURL,
		&reservation.Checkin,
		&reservation.Checkout,
		&reservation.BaseAmount,
		&reservation.PlatformFee,
		&reservation.TotalAmount,
		&reservation.Status,
		&reservation.PaymentOrderID,
		&reservation.PaymentID,
		&reservation.PaidAt,
		&reservation.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

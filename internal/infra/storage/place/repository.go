package place

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/urbandepot/parking-service/internal/domain"
	"github.com/urbandepot/parking-service/pkg/dbmetrics"
	"github.com/urbandepot/parking-service/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

var placeColumns = []string{
	"id",
	"name",
	"address",
	"owner_name",
	"owner_email",
	"parking_number",
	"availability",
	"date_from",
	"date_to",
	"latitude",
	"longitude",
	"charge",
	"access_type",
	"has_cameras",
	"has_security_guard",
	"guard_name",
	"guard_contact",
	"doc_aadhaar_card",
	"doc_noc_letter",
	"doc_building_permission",
	"doc_place_picture",
	"verified",
	"verified_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с площадками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую площадку
// Идентификатор задается вызывающей стороной (slug названия)
func (r *Repository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("places").
		Columns(
			"id",
			"name",
			"address",
			"owner_name",
			"owner_email",
			"parking_number",
			"availability",
			"date_from",
			"date_to",
			"latitude",
			"longitude",
			"charge",
			"access_type",
			"has_cameras",
			"has_security_guard",
			"guard_name",
			"guard_contact",
			"doc_aadhaar_card",
			"doc_noc_letter",
			"doc_building_permission",
			"doc_place_picture",
			"verified",
		).
		Values(
			place.ID,
			place.Name,
			place.Address,
			place.OwnerName,
			place.OwnerEmail,
			place.ParkingNumber,
			place.Availability,
			place.DateFrom,
			place.DateTo,
			place.Latitude,
			place.Longitude,
			place.Charge,
			place.AccessType,
			place.HasCameras,
			place.HasSecurityGuard,
			place.GuardName,
			place.GuardContact,
			place.Documents.AadhaarCard,
			place.Documents.NOCLetter,
			place.Documents.BuildingPermission,
			place.Documents.PlacePicture,
			place.Verified,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrPlaceAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return place, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Place, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает площадку и блокирует строку до конца транзакции
// Вне транзакции работает как GetByID
//
// Блокировка строки площадки сериализует параллельные создания бронирований
// на одну площадку: проверка пересечений и вставка выполняются под одним локом
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Place, error) {
	return r.getByID(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(placeColumns...).
		From("places").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	place, err := scanPlace(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan place: %w", ErrScanRow, err)
	}

	return place, nil
}

// List получает список площадок
// Если onlyVerified = true, возвращает только проверенные администратором
func (r *Repository) List(ctx context.Context, onlyVerified bool) ([]*domain.Place, error) {
	selectBuilder := psqlbuilder.Select(placeColumns...).
		From("places").
		OrderBy("created_at DESC")

	if onlyVerified {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"verified": true})
	}

	return r.query(ctx, "List", selectBuilder)
}

// GetByOwner получает площадки владельца (email без учета регистра)
func (r *Repository) GetByOwner(ctx context.Context, ownerEmail string) ([]*domain.Place, error) {
	selectBuilder := psqlbuilder.Select(placeColumns...).
		From("places").
		Where(squirrel.Expr("LOWER(owner_email) = ?", strings.ToLower(ownerEmail))).
		OrderBy("created_at DESC")

	return r.query(ctx, "GetByOwner", selectBuilder)
}

// Verify отмечает площадку как проверенную
func (r *Repository) Verify(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("places").
		Set("verified", true).
		Set("verified_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Verify - build update query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Verify", query, args)
}

// Delete удаляет площадку вместе с ее бронированиями и тарифами (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return places, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Address,
		&place.OwnerName,
		&place.OwnerEmail,
		&place.ParkingNumber,
		&place.Availability,
		&place.DateFrom,
		&place.DateTo,
		&place.Latitude,
		&place.Longitude,
		&place.Charge,
		&place.AccessType,
		&place.HasCameras,
		&place.HasSecurityGuard,
		&place.GuardName,
		&place.GuardContact,
		&place.Documents.AadhaarCard,
		&place.Documents.NOCLetter,
		&place.Documents.BuildingPermission,
		&place.Documents.PlacePicture,
		&place.Verified,
		&place.VerifiedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.CreatedAt = createdAt.Time
	place.UpdatedAt = updatedAt.Time

	return &place, nil
}

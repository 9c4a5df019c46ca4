package orderrepo

import (
	"context"
	"errors"

	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/core/domain/model/order"
	"taxi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	foreignKeyViolation = "23503"

	clientForeignKey = "orders_client_id_fkey"
	driverForeignKey = "orders_driver_id_fkey"
)

// updatableColumns are written on every update, including unchanged ones.
var updatableColumns = []string{
	"client_id",
	"driver_id",
	"date_created",
	"status",
	"address_from",
	"address_to",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order and returns it as stored.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, translate(err, aggregate)
	}

	return toDomain(dto)
}

// Update saves all mutable fields of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select(updatableColumns).
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error, aggregate)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// translate reports a foreign key violation as the missing client or driver.
func translate(err error, aggregate *order.Order) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case clientForeignKey:
		return errs.NewObjectNotFoundErrorWithCause("client", aggregate.ClientID(), err)
	case driverForeignKey:
		return errs.NewObjectNotFoundErrorWithCause("driver", aggregate.DriverID(), err)
	default:
		return err
	}
}

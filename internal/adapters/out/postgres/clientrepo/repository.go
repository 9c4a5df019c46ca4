package clientrepo

import (
	"context"
	"errors"

	"taxi/internal/core/domain/model/client"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) (*client.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a client and, through ON DELETE CASCADE, its orders.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", id)
	}

	return nil
}

package repository

import (
	"context"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OrderRepository handles user_orders, the per-item lines of a stamp.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: tx}
}

func (r *OrderRepository) Create(ctx context.Context, line *entity.UserOrder) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(line).Error, "create order line")
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*entity.UserOrder, error) {
	var line entity.UserOrder
	if err := r.DB.WithContext(ctx).First(&line, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find order %d", id)
	}
	return &line, nil
}

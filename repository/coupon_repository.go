package repository

import (
	"context"
	"time"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) WithTx(tx *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: tx}
}

// FindByUser returns the user's coupons newest first with the cafe preloaded.
func (r *CouponRepository) FindByUser(ctx context.Context, userID uint) ([]entity.Coupon, error) {
	var coupons []entity.Coupon
	err := r.DB.WithContext(ctx).
		Preload("Cafe").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&coupons).Error
	return coupons, errors.Wrap(err, "list coupons")
}

func (r *CouponRepository) FindByID(ctx context.Context, id uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.WithContext(ctx).Preload("Cafe").First(&c, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find coupon %d", id)
	}
	return &c, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *entity.Coupon) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(c).Error, "create coupon")
}

// Toggle flips used in one statement and reports whether the coupon exists.
// used_at is assigned first: MySQL evaluates SET left to right, so the CASE
// must still see the old value of used.
func (r *CouponRepository) Toggle(ctx context.Context, id uint, now time.Time) (bool, error) {
	res := r.DB.WithContext(ctx).Exec(
		`UPDATE coupons
		    SET used_at = CASE WHEN used THEN NULL ELSE ? END,
		        used = NOT used,
		        updated_at = ?
		  WHERE id = ? AND deleted_at IS NULL`,
		now, now, id,
	)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "toggle coupon %d", id)
	}
	return res.RowsAffected > 0, nil
}

package repository

import (
	"context"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HomeCafeRepository stores each user's ordered set of home cafes.
type HomeCafeRepository struct {
	DB *gorm.DB
}

func NewHomeCafeRepository(db *gorm.DB) *HomeCafeRepository {
	return &HomeCafeRepository{DB: db}
}

func (r *HomeCafeRepository) WithTx(tx *gorm.DB) *HomeCafeRepository {
	return &HomeCafeRepository{DB: tx}
}

func (r *HomeCafeRepository) Exists(ctx context.Context, userID, cafeID uint) (bool, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).Model(&entity.UserCafe{}).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Count(&cnt).Error
	if err != nil {
		return false, errors.Wrap(err, "check home cafe")
	}
	return cnt > 0, nil
}

// Add appends the cafe. A duplicate surfaces as gorm.ErrDuplicatedKey.
func (r *HomeCafeRepository) Add(ctx context.Context, userID, cafeID uint) error {
	row := entity.UserCafe{UserID: userID, CafeID: cafeID}
	return errors.Wrap(r.DB.WithContext(ctx).Create(&row).Error, "add home cafe")
}

// Remove reports whether a row was deleted.
func (r *HomeCafeRepository) Remove(ctx context.Context, userID, cafeID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND cafe_id = ?", userID, cafeID).
		Delete(&entity.UserCafe{})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "remove home cafe")
	}
	return res.RowsAffected > 0, nil
}

// RemoveCafeEverywhere drops the cafe from every user's list.
func (r *HomeCafeRepository) RemoveCafeEverywhere(ctx context.Context, cafeID uint) error {
	return errors.Wrap(
		r.DB.WithContext(ctx).Where("cafe_id = ?", cafeID).Delete(&entity.UserCafe{}).Error,
		"remove cafe from home lists",
	)
}

package repository

import (
	"context"
	"strings"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CafeRepository struct {
	DB *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db}
}

func (r *CafeRepository) WithTx(tx *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: tx}
}

func (r *CafeRepository) FindByID(ctx context.Context, id uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.WithContext(ctx).First(&cafe, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find cafe %d", id)
	}
	return &cafe, nil
}

// FindByName matches the stored name exactly.
func (r *CafeRepository) FindByName(ctx context.Context, name string) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.WithContext(ctx).Where("name = ?", name).First(&cafe).Error; err != nil {
		return nil, errors.Wrapf(err, "find cafe by name %q", name)
	}
	return &cafe, nil
}

// SearchByKeyword returns cafes whose name contains keyword, by name.
func (r *CafeRepository) SearchByKeyword(ctx context.Context, keyword string) ([]entity.Cafe, error) {
	var cafes []entity.Cafe
	q := r.DB.WithContext(ctx).Model(&entity.Cafe{})
	if kw := strings.TrimSpace(keyword); kw != "" {
		q = q.Where("name LIKE ?", "%"+kw+"%")
	}
	err := q.Order("name ASC").Find(&cafes).Error
	return cafes, errors.Wrap(err, "search cafes")
}

// ListForUser returns the user's home cafes in insertion order.
func (r *CafeRepository) ListForUser(ctx context.Context, userID uint) ([]entity.Cafe, error) {
	var cafes []entity.Cafe
	err := r.DB.WithContext(ctx).
		Model(&entity.Cafe{}).
		Joins("JOIN user_cafes uc ON uc.cafe_id = cafes.id").
		Where("uc.user_id = ?", userID).
		Order("uc.id ASC").
		Find(&cafes).Error
	return cafes, errors.Wrap(err, "list home cafes")
}

func (r *CafeRepository) Create(ctx context.Context, cafe *entity.Cafe) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(cafe).Error, "create cafe")
}

func (r *CafeRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	return errors.Wrap(
		r.DB.WithContext(ctx).Model(&entity.Cafe{}).Where("id = ?", id).Updates(updates).Error,
		"update cafe",
	)
}

func (r *CafeRepository) Delete(ctx context.Context, id uint) error {
	return errors.Wrap(r.DB.WithContext(ctx).Delete(&entity.Cafe{}, id).Error, "delete cafe")
}

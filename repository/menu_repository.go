// repository/menu_repository.go
package repository

import (
	"context"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) WithTx(tx *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: tx}
}

// all menus of a cafe
func (r *MenuRepository) FindByCafe(ctx context.Context, cafeID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("id ASC").
		Find(&menus).Error
	return menus, errors.Wrap(err, "list menus")
}

func (r *MenuRepository) FindByCafeAndName(ctx context.Context, cafeID uint, name string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.WithContext(ctx).
		Where("cafe_id = ? AND name = ?", cafeID, name).
		First(&menu).Error
	if err != nil {
		return nil, errors.Wrapf(err, "find menu %q", name)
	}
	return &menu, nil
}

// FindLatestByCafeAndName reads the row with a shared lock. Under MySQL's
// REPEATABLE READ a plain read inside a transaction uses the snapshot and
// misses rows committed since; a locking read sees the latest committed row.
// SQLite ignores the lock clause.
func (r *MenuRepository) FindLatestByCafeAndName(ctx context.Context, cafeID uint, name string) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
		Where("cafe_id = ? AND name = ?", cafeID, name).
		First(&menu).Error
	if err != nil {
		return nil, errors.Wrapf(err, "find menu %q", name)
	}
	return &menu, nil
}

// CreateIfAbsent inserts menu unless (cafe_id, name) is already taken and
// reports whether this call created the row.
func (r *MenuRepository) CreateIfAbsent(ctx context.Context, menu *entity.Menu) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cafe_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(menu)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "create menu")
	}
	return res.RowsAffected == 1, nil
}

// NamesForStamp lists the names of menus bought under a stamp at one cafe,
// in purchase order.
func (r *MenuRepository) NamesForStamp(ctx context.Context, stampID, cafeID uint) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).
		Table("user_orders AS uo").
		Joins("JOIN menus m ON m.id = uo.menu_id").
		Where("uo.stamp_id = ? AND m.cafe_id = ? AND uo.deleted_at IS NULL", stampID, cafeID).
		Order("uo.id ASC").
		Pluck("m.name", &names).Error
	return names, errors.Wrap(err, "list stamp menus")
}

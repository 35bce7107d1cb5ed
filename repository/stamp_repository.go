package repository

import (
	"context"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type StampRepository struct {
	DB *gorm.DB
}

func NewStampRepository(db *gorm.DB) *StampRepository {
	return &StampRepository{DB: db}
}

func (r *StampRepository) WithTx(tx *gorm.DB) *StampRepository {
	return &StampRepository{DB: tx}
}

func (r *StampRepository) Create(ctx context.Context, stamp *entity.Stamp) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(stamp).Error, "create stamp")
}

// CountByCafe returns the user's stamp count per cafe.
func (r *StampRepository) CountByCafe(ctx context.Context, userID uint) (map[uint]int64, error) {
	var rows []struct {
		CafeID uint
		Cnt    int64
	}
	err := r.DB.WithContext(ctx).Model(&entity.Stamp{}).
		Select("cafe_id, COUNT(*) AS cnt").
		Where("user_id = ?", userID).
		Group("cafe_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "count stamps")
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.CafeID] = row.Cnt
	}
	return out, nil
}

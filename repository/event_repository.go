package repository

import (
	"context"

	"scoup/entity"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) WithTx(tx *gorm.DB) *EventRepository {
	return &EventRepository{DB: tx}
}

// FindByCafe returns events oldest first.
func (r *EventRepository) FindByCafe(ctx context.Context, cafeID uint) ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.WithContext(ctx).
		Where("cafe_id = ?", cafeID).
		Order("created_at ASC, id ASC").
		Find(&events).Error
	return events, errors.Wrap(err, "list events")
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entity.Event, error) {
	var ev entity.Event
	if err := r.DB.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, errors.Wrapf(err, "find event %d", id)
	}
	return &ev, nil
}

func (r *EventRepository) Create(ctx context.Context, ev *entity.Event) error {
	return errors.Wrap(r.DB.WithContext(ctx).Create(ev).Error, "create event")
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	return errors.Wrap(r.DB.WithContext(ctx).Delete(&entity.Event{}, id).Error, "delete event")
}

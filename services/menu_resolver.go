package services

import (
	"context"
	"errors"
	"strings"

	"scoup/entity"
	"scoup/repository"

	"gorm.io/gorm"
)

const DefaultMenuImage = "123"

// MenuResolver finds a cafe's menu by name or creates it. Lookups are scoped
// to the cafe; (cafe_id, name) is unique so a concurrent creator makes this
// call fall back to reading the winner's row.
type MenuResolver struct {
	Repo             *repository.MenuRepository
	PlaceholderImage string
}

func NewMenuResolver(repo *repository.MenuRepository, placeholderImage string) *MenuResolver {
	if placeholderImage == "" {
		placeholderImage = DefaultMenuImage
	}
	return &MenuResolver{Repo: repo, PlaceholderImage: placeholderImage}
}

// Resolve returns the menu and whether this call created it. Pass the
// caller's transaction as tx, or nil to run on the repository's own handle.
// A new menu takes price from this line; existing menus are never repriced.
func (r *MenuResolver) Resolve(ctx context.Context, tx *gorm.DB, cafeID uint, name string, price int64) (*entity.Menu, bool, error) {
	repo := r.Repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}
	name = strings.TrimSpace(name)

	menu, err := repo.FindByCafeAndName(ctx, cafeID, name)
	if err == nil {
		return menu, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	menu = &entity.Menu{
		Name:     name,
		Price:    price,
		ImageURL: r.PlaceholderImage,
		CafeID:   cafeID,
	}
	created, err := repo.CreateIfAbsent(ctx, menu)
	if err != nil {
		return nil, false, err
	}
	if created {
		return menu, true, nil
	}

	// lost the insert race; the winner's row may be newer than our snapshot
	menu, err = repo.FindLatestByCafeAndName(ctx, cafeID, name)
	if err != nil {
		return nil, false, notFound(err, ErrMenuNotFound)
	}
	return menu, false, nil
}

// services/menu_service.go
package services

import (
	"context"

	"scoup/repository"
)

type MenuResponse struct {
	Menu []string `json:"menu"`
}

type MenuItem struct {
	MenuID   uint   `json:"menuId"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

type MenuService struct {
	Repo      *repository.MenuRepository
	CafeRepo  *repository.CafeRepository
	OrderRepo *repository.OrderRepository
}

func NewMenuService(repo *repository.MenuRepository, cafeRepo *repository.CafeRepository, orderRepo *repository.OrderRepository) *MenuService {
	return &MenuService{Repo: repo, CafeRepo: cafeRepo, OrderRepo: orderRepo}
}

// OrderMenus returns the names of the items bought at cafeID under the same
// stamp as order line orderID, one per line in purchase order.
func (s *MenuService) OrderMenus(ctx context.Context, cafeID, orderID uint) (*MenuResponse, error) {
	line, err := s.OrderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound)
	}

	names, err := s.Repo.NamesForStamp(ctx, line.StampID, cafeID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrMenuNotFound
	}
	return &MenuResponse{Menu: names}, nil
}

func (s *MenuService) ListByCafe(ctx context.Context, cafeID uint) ([]MenuItem, error) {
	if _, err := s.CafeRepo.FindByID(ctx, cafeID); err != nil {
		return nil, notFound(err, ErrCafeNotFound)
	}

	menus, err := s.Repo.FindByCafe(ctx, cafeID)
	if err != nil {
		return nil, err
	}
	out := make([]MenuItem, 0, len(menus))
	for _, m := range menus {
		out = append(out, MenuItem{MenuID: m.ID, Name: m.Name, Price: m.Price, ImageURL: m.ImageURL})
	}
	return out, nil
}

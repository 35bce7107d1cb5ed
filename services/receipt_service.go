package services

import (
	"context"

	"scoup/entity"
	"scoup/pkg/metrics"
	"scoup/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ----- DTOs from Controller -----
type ReceiptItem struct {
	Name  string `json:"name" binding:"required,notblank"`
	Price int64  `json:"price" binding:"min=0"`
}

type ReceiptRequest struct {
	Store    string        `json:"store" binding:"required,notblank"`
	CardName string        `json:"cardName"`
	CardNum  string        `json:"cardNum"`
	Items    []ReceiptItem `json:"items" binding:"omitempty,dive"`
}

type ReceiptResponse struct {
	Store    string        `json:"store"`
	CardName string        `json:"cardName"`
	CardNum  string        `json:"cardNum"`
	Items    []ReceiptItem `json:"items"`
	StampID  uint          `json:"stampId"`
}

// ReceiptService turns a parsed receipt into one stamp and one order line per item.
type ReceiptService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	CafeRepo  *repository.CafeRepository
	StampRepo *repository.StampRepository
	OrderRepo *repository.OrderRepository
	Resolver  *MenuResolver
}

func NewReceiptService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	cafeRepo *repository.CafeRepository,
	stampRepo *repository.StampRepository,
	orderRepo *repository.OrderRepository,
	resolver *MenuResolver,
) *ReceiptService {
	return &ReceiptService{
		DB:        db,
		UserRepo:  userRepo,
		CafeRepo:  cafeRepo,
		StampRepo: stampRepo,
		OrderRepo: orderRepo,
		Resolver:  resolver,
	}
}

// Submit records the receipt in a single transaction. Unknown user or store
// fails before anything is written; any later failure rolls back the stamp,
// created menus and every order line.
func (s *ReceiptService) Submit(ctx context.Context, userID uint, req *ReceiptRequest) (*ReceiptResponse, error) {
	log := zerolog.Ctx(ctx)

	var out ReceiptResponse
	menusCreated := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		menusCreated = 0

		user, err := s.UserRepo.WithTx(tx).FindByID(ctx, userID)
		if err != nil {
			return notFound(err, ErrUserNotFound)
		}
		cafe, err := s.CafeRepo.WithTx(tx).FindByName(ctx, req.Store)
		if err != nil {
			return notFound(err, ErrCafeNotFound)
		}

		stamp := entity.Stamp{
			UserID:   user.ID,
			CafeID:   cafe.ID,
			CardName: req.CardName,
			CardNum:  req.CardNum,
		}
		if err := s.StampRepo.WithTx(tx).Create(ctx, &stamp); err != nil {
			return err
		}

		orders := s.OrderRepo.WithTx(tx)
		for _, item := range req.Items {
			menu, created, err := s.Resolver.Resolve(ctx, tx, cafe.ID, item.Name, item.Price)
			if err != nil {
				return err
			}
			if created {
				menusCreated++
			}

			line := entity.UserOrder{UserID: user.ID, MenuID: menu.ID, StampID: stamp.ID}
			if err := orders.Create(ctx, &line); err != nil {
				return err
			}
		}

		items := req.Items
		if items == nil {
			items = []ReceiptItem{}
		}
		out = ReceiptResponse{
			Store:    cafe.Name,
			CardName: req.CardName,
			CardNum:  req.CardNum,
			Items:    items,
			StampID:  stamp.ID,
		}
		return nil
	})
	if err != nil {
		metrics.RecordReceipt("error", 0, 0)
		log.Warn().Err(err).Uint("user_id", userID).Str("store", req.Store).Msg("receipt rejected")
		return nil, err
	}

	metrics.RecordReceipt("ok", len(req.Items), menusCreated)
	log.Info().
		Uint("user_id", userID).
		Uint("stamp_id", out.StampID).
		Int("items", len(req.Items)).
		Int("menus_created", menusCreated).
		Msg("receipt recorded")
	return &out, nil
}

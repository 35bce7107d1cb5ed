package services

import (
	"context"
	"errors"
	"strings"

	"scoup/entity"
	"scoup/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CafeRequest struct {
	ShopName       string `json:"shopName" binding:"required,notblank"`
	PhoneNumber    string `json:"phoneNumber"`
	LicenseeNumber string `json:"licenseeNumber"`
	RunningTime    string `json:"runningTime"`
	ShopAddress    string `json:"shopAddress"`
	ShopImageURL   string `json:"shopImageUrl"`
}

// PatchCafeRequest updates only the fields that are present.
type PatchCafeRequest struct {
	ShopName       *string `json:"shopName" binding:"omitempty,notblank"`
	PhoneNumber    *string `json:"phoneNumber"`
	LicenseeNumber *string `json:"licenseeNumber"`
	RunningTime    *string `json:"runningTime"`
	ShopAddress    *string `json:"shopAddress"`
	ShopImageURL   *string `json:"shopImageUrl"`
}

// AdminService holds the master-only cafe operations.
type AdminService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	CafeRepo *repository.CafeRepository
	HomeRepo *repository.HomeCafeRepository
}

func NewAdminService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	cafeRepo *repository.CafeRepository,
	homeRepo *repository.HomeCafeRepository,
) *AdminService {
	return &AdminService{DB: db, UserRepo: userRepo, CafeRepo: cafeRepo, HomeRepo: homeRepo}
}

func (s *AdminService) CreateCafe(ctx context.Context, adminID uint, req *CafeRequest) (*entity.Cafe, error) {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return nil, err
	}

	cafe := entity.Cafe{
		Name:           strings.TrimSpace(req.ShopName),
		PhoneNumber:    req.PhoneNumber,
		LicenseeNumber: req.LicenseeNumber,
		RunningTime:    req.RunningTime,
		Location:       req.ShopAddress,
		ImageURL:       req.ShopImageURL,
	}
	if err := s.CafeRepo.Create(ctx, &cafe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCafeName
		}
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Uint("cafe_id", cafe.ID).Str("name", cafe.Name).Msg("cafe created")
	return &cafe, nil
}

func (s *AdminService) PatchCafe(ctx context.Context, adminID, cafeID uint, req *PatchCafeRequest) (*entity.Cafe, error) {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return nil, err
	}
	if _, err := s.CafeRepo.FindByID(ctx, cafeID); err != nil {
		return nil, notFound(err, ErrCafeNotFound)
	}

	updates := map[string]any{}
	if req.ShopName != nil {
		updates["name"] = strings.TrimSpace(*req.ShopName)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.LicenseeNumber != nil {
		updates["licensee_number"] = *req.LicenseeNumber
	}
	if req.RunningTime != nil {
		updates["running_time"] = *req.RunningTime
	}
	if req.ShopAddress != nil {
		updates["location"] = *req.ShopAddress
	}
	if req.ShopImageURL != nil {
		updates["image_url"] = *req.ShopImageURL
	}
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	if err := s.CafeRepo.Update(ctx, cafeID, updates); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCafeName
		}
		return nil, err
	}
	return s.CafeRepo.FindByID(ctx, cafeID)
}

// DeleteCafe removes the cafe and drops it from every home list.
func (s *AdminService) DeleteCafe(ctx context.Context, adminID, cafeID uint) error {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cafes := s.CafeRepo.WithTx(tx)
		if _, err := cafes.FindByID(ctx, cafeID); err != nil {
			return notFound(err, ErrCafeNotFound)
		}
		if err := s.HomeRepo.WithTx(tx).RemoveCafeEverywhere(ctx, cafeID); err != nil {
			return err
		}
		return cafes.Delete(ctx, cafeID)
	})
}

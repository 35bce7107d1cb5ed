package services

import (
	"context"
	"time"

	"scoup/entity"
	"scoup/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CouponResponse struct {
	CouponID uint       `json:"couponId"`
	CafeID   uint       `json:"cafeId"`
	CafeName string     `json:"cafeName"`
	Name     string     `json:"name"`
	Used     bool       `json:"used"`
	UsedAt   *time.Time `json:"usedAt,omitempty"`
}

type IssueCouponRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	CafeID uint   `json:"cafeId" binding:"required"`
	Name   string `json:"name" binding:"required,notblank"`
}

type CouponService struct {
	DB       *gorm.DB
	Repo     *repository.CouponRepository
	UserRepo *repository.UserRepository
	CafeRepo *repository.CafeRepository
	Now      func() time.Time
}

func NewCouponService(db *gorm.DB, repo *repository.CouponRepository, userRepo *repository.UserRepository, cafeRepo *repository.CafeRepository) *CouponService {
	return &CouponService{DB: db, Repo: repo, UserRepo: userRepo, CafeRepo: cafeRepo, Now: time.Now}
}

// List returns the user's coupons newest first.
func (s *CouponService) List(ctx context.Context, userID uint) ([]CouponResponse, error) {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	coupons, err := s.Repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, toCouponResponse(c))
	}
	return out, nil
}

// Redeem flips the coupon's used flag. The flip is a single UPDATE, so two
// concurrent redeems always leave the coupon in two different states.
func (s *CouponService) Redeem(ctx context.Context, couponID uint) (*CouponResponse, error) {
	var c *entity.Coupon
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		found, err := repo.Toggle(ctx, couponID, s.Now().UTC())
		if err != nil {
			return err
		}
		if !found {
			return ErrCouponNotFound
		}
		c, err = repo.FindByID(ctx, couponID)
		return err
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Uint("coupon_id", c.ID).Bool("used", c.Used).Msg("coupon toggled")
	out := toCouponResponse(*c)
	return &out, nil
}

// Issue hands a coupon to a user. Master users only.
func (s *CouponService) Issue(ctx context.Context, adminID uint, req *IssueCouponRequest) (*CouponResponse, error) {
	if _, err := requireMaster(ctx, s.UserRepo, adminID); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	cafe, err := s.CafeRepo.FindByID(ctx, req.CafeID)
	if err != nil {
		return nil, notFound(err, ErrCafeNotFound)
	}

	c := entity.Coupon{UserID: req.UserID, CafeID: cafe.ID, Name: req.Name}
	if err := s.Repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	c.Cafe = *cafe
	out := toCouponResponse(c)
	return &out, nil
}

func toCouponResponse(c entity.Coupon) CouponResponse {
	return CouponResponse{
		CouponID: c.ID,
		CafeID:   c.CafeID,
		CafeName: c.Cafe.Name,
		Name:     c.Name,
		Used:     c.Used,
		UsedAt:   c.UsedAt,
	}
}

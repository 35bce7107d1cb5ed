package services

import (
	"context"
	"errors"

	"scoup/entity"
	"scoup/repository"

	"gorm.io/gorm"
)

// HomeCafe is one card on the user's home screen.
type HomeCafe struct {
	CafeID      uint   `json:"cafeId"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	PhoneNumber string `json:"phoneNumber"`
	RunningTime string `json:"runningTime"`
	ImageURL    string `json:"imageUrl"`
	StampCount  int64  `json:"stampCount"`
}

type CafeSummary struct {
	CafeID   uint   `json:"cafeId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	ImageURL string `json:"imageUrl"`
}

// CafeService manages each user's home cafe list and cafe search.
type CafeService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	CafeRepo  *repository.CafeRepository
	HomeRepo  *repository.HomeCafeRepository
	StampRepo *repository.StampRepository
}

func NewCafeService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	cafeRepo *repository.CafeRepository,
	homeRepo *repository.HomeCafeRepository,
	stampRepo *repository.StampRepository,
) *CafeService {
	return &CafeService{DB: db, UserRepo: userRepo, CafeRepo: cafeRepo, HomeRepo: homeRepo, StampRepo: stampRepo}
}

// AddCafe appends cafeID to the user's home list. Adding a cafe that is
// already there is an error, not a no-op.
func (s *CafeService) AddCafe(ctx context.Context, userID, cafeID uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.UserRepo.WithTx(tx).FindByID(ctx, userID); err != nil {
			return notFound(err, ErrUserNotFound)
		}
		if _, err := s.CafeRepo.WithTx(tx).FindByID(ctx, cafeID); err != nil {
			return notFound(err, ErrCafeNotFound)
		}

		home := s.HomeRepo.WithTx(tx)
		exists, err := home.Exists(ctx, userID, cafeID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateCafe
		}

		if err := home.Add(ctx, userID, cafeID); err != nil {
			// a concurrent add won the unique index
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCafe
			}
			return err
		}
		return nil
	})
}

// PatchHomeCafe is the home-screen toggle route; it behaves exactly like AddCafe.
func (s *CafeService) PatchHomeCafe(ctx context.Context, userID, cafeID uint) error {
	return s.AddCafe(ctx, userID, cafeID)
}

func (s *CafeService) RemoveCafe(ctx context.Context, userID, cafeID uint) error {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return notFound(err, ErrUserNotFound)
	}

	removed, err := s.HomeRepo.Remove(ctx, userID, cafeID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrCafeNotFound
	}
	return nil
}

// ListHomeCafes returns the user's cafes in the order they were added.
func (s *CafeService) ListHomeCafes(ctx context.Context, userID uint) ([]HomeCafe, error) {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	cafes, err := s.CafeRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.StampRepo.CountByCafe(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]HomeCafe, 0, len(cafes))
	for _, c := range cafes {
		out = append(out, HomeCafe{
			CafeID:      c.ID,
			Name:        c.Name,
			Location:    c.Location,
			PhoneNumber: c.PhoneNumber,
			RunningTime: c.RunningTime,
			ImageURL:    c.ImageURL,
			StampCount:  counts[c.ID],
		})
	}
	return out, nil
}

// Search lists cafes whose name contains keyword.
func (s *CafeService) Search(ctx context.Context, userID uint, keyword string) ([]CafeSummary, error) {
	if _, err := s.UserRepo.FindByID(ctx, userID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	cafes, err := s.CafeRepo.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return toSummaries(cafes), nil
}

func toSummaries(cafes []entity.Cafe) []CafeSummary {
	out := make([]CafeSummary, 0, len(cafes))
	for _, c := range cafes {
		out = append(out, CafeSummary{CafeID: c.ID, Name: c.Name, Location: c.Location, ImageURL: c.ImageURL})
	}
	return out
}

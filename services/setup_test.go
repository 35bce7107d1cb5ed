package services

import (
	"testing"

	"scoup/repository"
	"scoup/testutil"

	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	receipts *ReceiptService
	cafes    *CafeService
	menus    *MenuService
	events   *EventService
	coupons  *CouponService
	admin    *AdminService
	resolver *MenuResolver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvOn(t, testutil.NewDB(t))
}

func newTestEnvOn(t *testing.T, db *gorm.DB) *testEnv {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	cafeRepo := repository.NewCafeRepository(db)
	homeRepo := repository.NewHomeCafeRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	stampRepo := repository.NewStampRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	resolver := NewMenuResolver(menuRepo, "")
	return &testEnv{
		db:       db,
		receipts: NewReceiptService(db, userRepo, cafeRepo, stampRepo, orderRepo, resolver),
		cafes:    NewCafeService(db, userRepo, cafeRepo, homeRepo, stampRepo),
		menus:    NewMenuService(menuRepo, cafeRepo, orderRepo),
		events:   NewEventService(repository.NewEventRepository(db), cafeRepo, userRepo),
		coupons:  NewCouponService(db, repository.NewCouponRepository(db), userRepo, cafeRepo),
		admin:    NewAdminService(db, userRepo, cafeRepo, homeRepo),
		resolver: resolver,
	}
}

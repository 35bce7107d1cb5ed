package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"scoup/entity"
	"scoup/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReceiptService_Submit_CreatesStampMenuAndLine(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, false)
	cafe := testutil.CreateCafe(t, env.db, "Blue Bottle")

	out, err := env.receipts.Submit(ctx, user.ID, &ReceiptRequest{
		Store:    "Blue Bottle",
		CardName: "Hyundai",
		CardNum:  "1234-****",
		Items:    []ReceiptItem{{Name: "Latte", Price: 4500}},
	})
	require.NoError(t, err)
	require.NotZero(t, out.StampID)
	assert.Equal(t, "Blue Bottle", out.Store)
	assert.Equal(t, "Hyundai", out.CardName)
	assert.Equal(t, "1234-****", out.CardNum)
	assert.Equal(t, []ReceiptItem{{Name: "Latte", Price: 4500}}, out.Items)

	var menus []entity.Menu
	require.NoError(t, env.db.Find(&menus).Error)
	require.Len(t, menus, 1)
	assert.Equal(t, "Latte", menus[0].Name)
	assert.Equal(t, int64(4500), menus[0].Price)
	assert.Equal(t, cafe.ID, menus[0].CafeID)
	assert.Equal(t, DefaultMenuImage, menus[0].ImageURL)

	var stamp entity.Stamp
	require.NoError(t, env.db.First(&stamp, out.StampID).Error)
	assert.Equal(t, user.ID, stamp.UserID)
	assert.Equal(t, cafe.ID, stamp.CafeID)

	var lines []entity.UserOrder
	require.NoError(t, env.db.Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, out.StampID, lines[0].StampID)
	assert.Equal(t, menus[0].ID, lines[0].MenuID)
	assert.Equal(t, user.ID, lines[0].UserID)
}

func TestReceiptService_Submit_OneLinePerItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Cafe A")

	items := []ReceiptItem{
		{Name: "Americano", Price: 3000},
		{Name: "Americano", Price: 3000},
		{Name: "Scone", Price: 2800},
	}
	out, err := env.receipts.Submit(ctx, user.ID, &ReceiptRequest{Store: "Cafe A", Items: items})
	require.NoError(t, err)

	assert.Equal(t, int64(1), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(2), testutil.Count(t, env.db, &entity.Menu{}))

	var lines []entity.UserOrder
	require.NoError(t, env.db.Find(&lines).Error)
	require.Len(t, lines, len(items))
	for _, l := range lines {
		assert.Equal(t, out.StampID, l.StampID)
	}
}

func TestReceiptService_Submit_EmptyItems(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Cafe A")

	out, err := env.receipts.Submit(context.Background(), user.ID, &ReceiptRequest{Store: "Cafe A"})
	require.NoError(t, err)

	assert.NotZero(t, out.StampID)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
	assert.Equal(t, int64(1), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.UserOrder{}))
}

func TestReceiptService_Submit_UnknownStoreWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Blue Bottle")

	_, err := env.receipts.Submit(context.Background(), user.ID, &ReceiptRequest{
		Store: "Blue Botle",
		Items: []ReceiptItem{{Name: "Latte", Price: 4500}},
	})
	assert.ErrorIs(t, err, ErrCafeNotFound)

	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.Menu{}))
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.UserOrder{}))
}

func TestReceiptService_Submit_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateCafe(t, env.db, "Blue Bottle")

	_, err := env.receipts.Submit(context.Background(), 999, &ReceiptRequest{Store: "Blue Bottle"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.Stamp{}))
}

func TestReceiptService_Submit_ReusesMenuWithoutRepricing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Cafe A")

	first, err := env.receipts.Submit(ctx, user.ID, &ReceiptRequest{Store: "Cafe A", Items: []ReceiptItem{{Name: "Latte", Price: 4500}}})
	require.NoError(t, err)
	second, err := env.receipts.Submit(ctx, user.ID, &ReceiptRequest{Store: "Cafe A", Items: []ReceiptItem{{Name: "Latte", Price: 5000}}})
	require.NoError(t, err)
	assert.NotEqual(t, first.StampID, second.StampID)

	var menus []entity.Menu
	require.NoError(t, env.db.Find(&menus).Error)
	require.Len(t, menus, 1)
	assert.Equal(t, int64(4500), menus[0].Price)
	assert.Equal(t, int64(2), testutil.Count(t, env.db, &entity.UserOrder{}))
}

func TestReceiptService_Submit_MenusAreScopedPerCafe(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, env.db, false)
	a := testutil.CreateCafe(t, env.db, "Cafe A")
	b := testutil.CreateCafe(t, env.db, "Cafe B")

	_, err := env.receipts.Submit(ctx, user.ID, &ReceiptRequest{Store: "Cafe A", Items: []ReceiptItem{{Name: "Latte", Price: 4500}}})
	require.NoError(t, err)
	_, err = env.receipts.Submit(ctx, user.ID, &ReceiptRequest{Store: "Cafe B", Items: []ReceiptItem{{Name: "Latte", Price: 5200}}})
	require.NoError(t, err)

	var menus []entity.Menu
	require.NoError(t, env.db.Order("cafe_id").Find(&menus).Error)
	require.Len(t, menus, 2)
	assert.Equal(t, a.ID, menus[0].CafeID)
	assert.Equal(t, b.ID, menus[1].CafeID)
	assert.Equal(t, int64(5200), menus[1].Price)
}

func TestReceiptService_Submit_RollsBackOnLineFailure(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Cafe A")

	boom := errors.New("disk full")
	require.NoError(t, env.db.Callback().Create().Before("gorm:create").Register("test:fail_order_lines", func(tx *gorm.DB) {
		if tx.Statement.Table == "user_orders" {
			_ = tx.AddError(boom)
		}
	}))

	_, err := env.receipts.Submit(context.Background(), user.ID, &ReceiptRequest{
		Store: "Cafe A",
		Items: []ReceiptItem{{Name: "Latte", Price: 4500}, {Name: "Mocha", Price: 5000}},
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.Menu{}))
	assert.Equal(t, int64(0), testutil.Count(t, env.db, &entity.UserOrder{}))
}

func TestReceiptService_Submit_ConcurrentNewItemCreatesOneMenu(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, false)
	testutil.CreateCafe(t, env.db, "Cafe A")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.receipts.Submit(context.Background(), user.ID, &ReceiptRequest{
				Store: "Cafe A",
				Items: []ReceiptItem{{Name: "Seasonal Ade", Price: 6000}},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), testutil.Count(t, env.db, &entity.Menu{}))
	assert.Equal(t, int64(workers), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(workers), testutil.Count(t, env.db, &entity.UserOrder{}))
}

func TestReceiptService_Submit_ConcurrentOnFileDB(t *testing.T) {
	env := newTestEnvOn(t, testutil.NewFileDB(t))
	testutil.CreateCafe(t, env.db, "Cafe A")
	users := make([]*entity.User, 4)
	for i := range users {
		users[i] = testutil.CreateUser(t, env.db, false)
	}

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(uid uint) {
			defer wg.Done()
			_, err := env.receipts.Submit(context.Background(), uid, &ReceiptRequest{
				Store: "Cafe A",
				Items: []ReceiptItem{{Name: "Ade", Price: 6000}, {Name: "Latte", Price: 4500}},
			})
			errs <- err
		}(users[i%len(users)].ID)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, int64(workers), testutil.Count(t, env.db, &entity.Stamp{}))
	assert.Equal(t, int64(2*workers), testutil.Count(t, env.db, &entity.UserOrder{}))
	assert.Equal(t, int64(2), testutil.Count(t, env.db, &entity.Menu{}))
}

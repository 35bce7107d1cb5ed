package configs_test

import (
	"context"
	"testing"

	"scoup/configs"
	"scoup/entity"
	"scoup/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, configs.SeedAdmin(ctx, db, ""))
	assert.Equal(t, int64(0), testutil.Count(t, db, &entity.User{}))

	require.NoError(t, configs.SeedAdmin(ctx, db, "owner@scoup.test"))
	require.NoError(t, configs.SeedAdmin(ctx, db, "owner@scoup.test"))

	var admin entity.User
	require.NoError(t, db.Where("email = ?", "owner@scoup.test").First(&admin).Error)
	assert.True(t, admin.Master)
	assert.Equal(t, int64(1), testutil.Count(t, db, &entity.User{}))
}

func TestSeedAdmin_PromotesExistingUser(t *testing.T) {
	db := testutil.NewDB(t)
	user := testutil.CreateUser(t, db, false)

	require.NoError(t, configs.SeedAdmin(context.Background(), db, user.Email))

	var got entity.User
	require.NoError(t, db.First(&got, user.ID).Error)
	assert.True(t, got.Master)
}

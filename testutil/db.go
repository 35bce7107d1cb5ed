// Package testutil builds throwaway databases and fixtures for package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"scoup/configs"
	"scoup/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory SQLite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
}

// NewFileDB is NewDB backed by a file in a temp dir, the way the server runs.
func NewFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	return open(t, filepath.Join(t.TempDir(), "scoup.db"))
}

func open(t *testing.T, source string) *gorm.DB {
	t.Helper()

	db, err := configs.ConnectionDB(&configs.Config{DBDriver: "sqlite", DBSource: source})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, master bool) *entity.User {
	t.Helper()

	u := &entity.User{
		Email:    uuid.NewString() + "@scoup.test",
		Nickname: "tester",
		Master:   master,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateCafe(t *testing.T, db *gorm.DB, name string) *entity.Cafe {
	t.Helper()

	c := &entity.Cafe{Name: name, Location: "Seoul", RunningTime: "09:00-21:00"}
	require.NoError(t, db.Create(c).Error)
	return c
}

func Count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

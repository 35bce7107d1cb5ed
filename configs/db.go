package configs

import (
	"fmt"
	"strings"
	"time"

	"scoup/entity"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionDB opens the database selected by DB_DRIVER. TranslateError maps
// unique violations to gorm.ErrDuplicatedKey for every supported driver.
//
// SQLite allows one writer at a time: its pool is a single connection and
// transactions take the write lock up front (BEGIN IMMEDIATE).
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false
	switch cfg.DBDriver {
	case "", "sqlite":
		isSQLite = true
		dialector = sqlite.Open(sqliteDSN(cfg.DBSource))
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if isSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// sqliteDSN adds a busy timeout and immediate transaction locking unless the
// source already sets them.
func sqliteDSN(src string) string {
	params := []string{}
	if !strings.Contains(src, "_busy_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if !strings.Contains(src, "_txlock=") {
		params = append(params, "_txlock=immediate")
	}
	if len(params) == 0 {
		return src
	}

	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}
	return src + sep + strings.Join(params, "&")
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Cafe{}, &entity.UserCafe{},
		&entity.Menu{}, &entity.Stamp{}, &entity.UserOrder{},
		&entity.Event{}, &entity.Coupon{},
	)
}

package configs

import (
	"context"
	"errors"

	"scoup/entity"
	"scoup/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SeedAdmin makes sure the ADMIN_EMAIL account exists and carries the master flag.
func SeedAdmin(ctx context.Context, db *gorm.DB, email string) error {
	if email == "" {
		log.Warn().Msg("skip seeding admin: missing ADMIN_EMAIL")
		return nil
	}

	users := repository.NewUserRepository(db)
	admin, err := users.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		admin = &entity.User{Email: email, Nickname: "admin", Master: true}
		if err := users.Create(ctx, admin); err != nil {
			return err
		}
		log.Info().Str("email", email).Uint("user_id", admin.ID).Msg("admin seeded")
		return nil
	}
	if err != nil {
		return err
	}

	if admin.Master {
		log.Info().Str("email", email).Uint("user_id", admin.ID).Msg("admin already exists")
		return nil
	}
	if err := db.WithContext(ctx).Model(admin).Update("master", true).Error; err != nil {
		return err
	}
	log.Info().Str("email", email).Uint("user_id", admin.ID).Msg("existing user promoted to admin")
	return nil
}

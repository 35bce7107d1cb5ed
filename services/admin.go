package services

import (
	"context"

	"scoup/entity"
	"scoup/repository"
)

// requireMaster loads the acting user and checks the master flag.
func requireMaster(ctx context.Context, users *repository.UserRepository, userID uint) (*entity.User, error) {
	user, err := users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if !user.Master {
		return nil, ErrNotAdmin
	}
	return user, nil
}

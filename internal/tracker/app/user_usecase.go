// Package app реализует сценарии использования трекера упражнений.
package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/api"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

const (
	methodRegister  = "Register"
	methodListUsers = "ListUsers"

	msgStartRegistration = "starting user registration"
	msgEmptyUsername     = "empty username provided"
	msgUsernameExists    = "username already exists"
	msgUserRegistered    = "user registered successfully"
	msgUsersListed       = "users listed"

	msgErrFindingUser  = "failed to find user by username"
	msgErrCreatingUser = "failed to create user"
	msgErrListingUsers = "failed to list users"
)

// UserUseCaseImpl реализует api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает сервис пользователей.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{userRepo: userRepo}
}

// Register создает пользователя с уникальным именем.
func (u *UserUseCaseImpl) Register(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if username == "" {
		log.Debug(ctx, msgEmptyUsername)
		return nil, entities.NewSoftError(entities.MsgUsernameRequired, nil)
	}

	existing, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgFindUser, err)
	}
	if existing != nil {
		log.Debug(ctx, msgUsernameExists)
		return nil, entities.NewSoftError(entities.MsgUsernameExists, entities.ErrUsernameTaken)
	}

	user := entities.NewUser(username)
	if err := user.Validate(); err != nil {
		return nil, err
	}

	created, err := u.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameExists)
			return nil, entities.NewSoftError(entities.MsgUsernameExists, err)
		}
		log.Error(ctx, msgErrCreatingUser, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgSaveUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", created.ID))
	return created, nil
}

// List возвращает всех пользователей.
func (u *UserUseCaseImpl) List(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListUsers))

	users, err := u.userRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListingUsers, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgFetchUsers, err)
	}

	log.Debug(ctx, msgUsersListed, zap.Int("count", len(users)))
	return users, nil
}

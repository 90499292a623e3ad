// Package api определяет входные порты сервиса.
package api

import (
	"context"

	"exercisetracker/internal/tracker/domain/entities"
)

// UserUseCase определяет операции над пользователями.
type UserUseCase interface {
	Register(ctx context.Context, username string) (*entities.User, error)

	List(ctx context.Context) ([]*entities.User, error)
}

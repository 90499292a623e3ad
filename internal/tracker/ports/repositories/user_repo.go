// Package repositories определяет порты хранилища документов.
package repositories

import (
	"context"

	"exercisetracker/internal/tracker/domain/entities"
)

// UserRepository хранит пользователей.
type UserRepository interface {
	// Create сохраняет пользователя. Занятое имя возвращает entities.ErrUsernameTaken.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	// FindByID возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByUsername возвращает entities.ErrUserNotFound, если пользователя нет.
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// List возвращает всех пользователей в порядке вставки.
	List(ctx context.Context) ([]*entities.User, error)
}

package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"exercisetracker/internal/tracker/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с Redis.
type RepositoryFactory struct {
	client       *redis.Client
	userRepo     repositories.UserRepository
	exerciseRepo repositories.ExerciseRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(client *redis.Client) *RepositoryFactory {
	return &RepositoryFactory{
		client:       client,
		userRepo:     NewUserRepository(client),
		exerciseRepo: NewExerciseRepository(client),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}

// ExerciseRepository возвращает репозиторий упражнений.
func (f *RepositoryFactory) ExerciseRepository() repositories.ExerciseRepository {
	return f.exerciseRepo
}

// Ping проверяет доступность сервера.
func (f *RepositoryFactory) Ping(ctx context.Context) error {
	return f.client.Ping(ctx).Err()
}

package postgres

import (
	"context"

	"exercisetracker/internal/tracker/ports/repositories"
)

// RepositoryFactory создает все необходимые репозитории для работы с PostgreSQL.
type RepositoryFactory struct {
	pool         PgxPoolInterface
	userRepo     repositories.UserRepository
	exerciseRepo repositories.ExerciseRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		pool:         pool,
		userRepo:     NewUserRepository(pool),
		exerciseRepo: NewExerciseRepository(pool),
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

// Ping проверяет доступность базы.
func (f *RepositoryFactory) Ping(ctx context.Context) error {
	return f.pool.Ping(ctx)
}

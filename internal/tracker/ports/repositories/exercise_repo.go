package repositories

import (
	"context"

	"exercisetracker/internal/tracker/domain/entities"
)

// ExerciseFilter описывает выборку упражнений одного пользователя.
type ExerciseFilter struct {
	UserID string
	From   entities.DateBoundary
	To     entities.DateBoundary
	// Limit <= 0 означает без ограничения.
	Limit int
	// SortByDate включает сортировку по возрастанию даты, иначе порядок вставки.
	SortByDate bool
}

// ExerciseRepository хранит упражнения.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entities.Exercise) (*entities.Exercise, error)

	Find(ctx context.Context, filter ExerciseFilter) ([]*entities.Exercise, error)
}

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

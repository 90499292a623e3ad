package api

import (
	"context"

	"exercisetracker/internal/tracker/domain/entities"
)

// AddExerciseInput - сырые параметры создания упражнения.
// nil в полях означает, что параметр не передан.
type AddExerciseInput struct {
	UserID      string
	Description *string
	Duration    *string
	Date        *string
}

// LogQuery - сырые параметры запроса журнала.
type LogQuery struct {
	UserID string
	From   string
	To     string
	// Limit == nil означает, что параметр не передан.
	Limit *string
}

// UserLog - пользователь и выбранные упражнения.
type UserLog struct {
	User      *entities.User
	Exercises []*entities.Exercise
}

// ExerciseUseCase определяет операции над журналом упражнений.
type ExerciseUseCase interface {
	// Add сохраняет упражнение и возвращает всю историю пользователя.
	Add(ctx context.Context, in AddExerciseInput) (*UserLog, error)

	// Query возвращает упражнения со строгой проверкой параметров, отсортированные по дате.
	Query(ctx context.Context, q LogQuery) (*UserLog, error)

	// Log возвращает упражнения с мягкой проверкой параметров в порядке хранилища.
	Log(ctx context.Context, q LogQuery) (*UserLog, error)
}

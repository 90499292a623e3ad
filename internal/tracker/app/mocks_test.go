package app_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type mockExerciseRepository struct {
	mock.Mock
}

func (m *mockExerciseRepository) Create(ctx context.Context, exercise *entities.Exercise) (*entities.Exercise, error) {
	args := m.Called(ctx, exercise)
	if fn, ok := args.Get(0).(func(context.Context, *entities.Exercise) *entities.Exercise); ok {
		return fn(ctx, exercise), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Exercise), args.Error(1)
}

func (m *mockExerciseRepository) Find(ctx context.Context, filter repositories.ExerciseFilter) ([]*entities.Exercise, error) {
	args := m.Called(ctx, filter)
	if fn, ok := args.Get(0).(func(context.Context, repositories.ExerciseFilter) []*entities.Exercise); ok {
		return fn(ctx, filter), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Exercise), args.Error(1)
}

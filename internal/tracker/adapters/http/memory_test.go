package http_test

import (
	"context"
	"errors"
	"slices"
	"sync"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
)

type memoryStore struct {
	mu        sync.Mutex
	users     []*entities.User
	exercises []*entities.Exercise
	pingErr   error
}

type memoryUsers struct{ s *memoryStore }

type memoryExercises struct{ s *memoryStore }

func (m memoryUsers) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == user.Username {
			return nil, entities.ErrUsernameTaken
		}
	}
	stored := *user
	m.s.users = append(m.s.users, &stored)
	return &stored, nil
}

func (m memoryUsers) FindByID(_ context.Context, id string) (*entities.User, error) {
	return m.find(func(u *entities.User) bool { return u.ID == id })
}

func (m memoryUsers) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	return m.find(func(u *entities.User) bool { return u.Username == username })
}

func (m memoryUsers) find(match func(*entities.User) bool) (*entities.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (m memoryUsers) List(context.Context) ([]*entities.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return slices.Clone(m.s.users), nil
}

func (m memoryExercises) Create(_ context.Context, exercise *entities.Exercise) (*entities.Exercise, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	stored := *exercise
	m.s.exercises = append(m.s.exercises, &stored)
	return &stored, nil
}

func (m memoryExercises) Find(_ context.Context, filter repositories.ExerciseFilter) ([]*entities.Exercise, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	out := make([]*entities.Exercise, 0)
	for _, e := range m.s.exercises {
		if e.UserID == filter.UserID && filter.From.AtLeast(e.Date) && filter.To.AtMost(e.Date) {
			out = append(out, e)
		}
	}
	if filter.SortByDate {
		slices.SortStableFunc(out, func(a, b *entities.Exercise) int { return a.Date.Compare(b.Date) })
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memoryStore) Ping(context.Context) error {
	return m.pingErr
}

var errStoreDown = errors.New("store is down")

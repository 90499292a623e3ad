package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

const (
	LogIndexesEnsured = "mongo indexes ensured"
	ErrEnsureIndexes  = "failed to ensure mongo indexes"
)

// RepositoryFactory создает все необходимые репозитории для работы с MongoDB.
type RepositoryFactory struct {
	db           *mongo.Database
	userRepo     repositories.UserRepository
	exerciseRepo repositories.ExerciseRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(db *mongo.Database) *RepositoryFactory {
	return &RepositoryFactory{
		db:           db,
		userRepo:     NewUserRepository(db),
		exerciseRepo: NewExerciseRepository(db),
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
	return f.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes создает уникальный индекс по имени пользователя и индекс выборки журнала.
func (f *RepositoryFactory) EnsureIndexes(ctx context.Context) error {
	log := logger.Log(ctx)

	_, err := f.db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error(ctx, ErrEnsureIndexes, zap.String("collection", UsersCollection), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrEnsureIndexes, err)
	}

	_, err = f.db.Collection(ExercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		log.Error(ctx, ErrEnsureIndexes, zap.String("collection", ExercisesCollection), zap.Error(err))
		return fmt.Errorf("%s: %w", ErrEnsureIndexes, err)
	}

	log.Info(ctx, LogIndexesEnsured)
	return nil
}

// Package db открывает хранилище сервиса журнала упражнений.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	mongoadapter "exercisetracker/internal/tracker/adapters/mongo"
	pgadapter "exercisetracker/internal/tracker/adapters/postgres"
	redisadapter "exercisetracker/internal/tracker/adapters/redis"
	"exercisetracker/internal/tracker/config"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/db/mongo"
	"exercisetracker/pkg/db/postgres"
	"exercisetracker/pkg/db/redis"
	"exercisetracker/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogStorageOpening    = "opening tracker storage"
	LogStorageOpened     = "tracker storage opened"
	LogMigrationStarting = "starting database migrations for tracker service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations   = "failed to apply tracker database migrations"
	ErrDBConnection   = "failed to connect to tracker storage"
	ErrGetPath        = "failed to get path"
	ErrMongoIndexes   = "failed to prepare mongo collections"
	ErrUnknownBackend = "unknown storage driver"
)

const filePrefix = "file://"

// Storage объединяет репозитории выбранного хранилища.
type Storage struct {
	Users     repositories.UserRepository
	Exercises repositories.ExerciseRepository
	Pinger    repositories.Pinger

	closeFn func(ctx context.Context) error
}

// Close освобождает соединения хранилища.
func (s *Storage) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// Open подключается к хранилищу, выбранному в cfg.Storage.Driver, и готовит схему.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.Log(ctx).With(zap.String("driver", string(cfg.Storage.Driver)))
	log.Info(ctx, LogStorageOpening)

	var (
		storage *Storage
		err     error
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		storage, err = openPostgres(ctx, &cfg.Postgres)
	case config.DriverMongo:
		storage, err = openMongo(ctx, &cfg.Mongo)
	case config.DriverRedis:
		storage, err = openRedis(ctx, &cfg.Redis)
	default:
		err = fmt.Errorf("%s: %q", ErrUnknownBackend, cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Info(ctx, LogStorageOpened)
	return storage, nil
}

func openPostgres(ctx context.Context, cfg *config.PostgresConfig) (*Storage, error) {
	log := logger.Log(ctx)

	migrationsPath, err := migrationsURL(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
	}

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	factory := pgadapter.NewRepositoryFactory(database.Pool())
	return &Storage{
		Users:     factory.UserRepository(),
		Exercises: factory.ExerciseRepository(),
		Pinger:    factory,
		closeFn: func(ctx context.Context) error {
			database.Close(ctx)
			return nil
		},
	}, nil
}

func openMongo(ctx context.Context, cfg *config.MongoConfig) (*Storage, error) {
	mongoCfg := cfg.ToPkg()
	database, err := mongo.New(ctx, &mongoCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	factory := mongoadapter.NewRepositoryFactory(database.DB())
	if err := factory.EnsureIndexes(ctx); err != nil {
		if closeErr := database.Close(ctx); closeErr != nil {
			logger.Log(ctx).Warn(ctx, "failed to close mongo client", zap.Error(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", ErrMongoIndexes, err)
	}

	return &Storage{
		Users:     factory.UserRepository(),
		Exercises: factory.ExerciseRepository(),
		Pinger:    factory,
		closeFn:   database.Close,
	}, nil
}

func openRedis(ctx context.Context, cfg *config.RedisConfig) (*Storage, error) {
	client, err := redis.NewClient(ctx, cfg.ToPkg())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	factory := redisadapter.NewRepositoryFactory(client.RawClient())
	return &Storage{
		Users:     factory.UserRepository(),
		Exercises: factory.ExerciseRepository(),
		Pinger:    factory,
		closeFn:   client.Close,
	}, nil
}

func migrationsURL(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return filePrefix + dir, nil
	}
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filePrefix + absPath, nil
}

package redis

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

// ExerciseRepository реализует интерфейс repositories.ExerciseRepository для работы с Redis.
type ExerciseRepository struct {
	client *redis.Client
}

// NewExerciseRepository создает новый экземпляр репозитория упражнений.
func NewExerciseRepository(client *redis.Client) repositories.ExerciseRepository {
	return &ExerciseRepository{client: client}
}

// Create сохраняет упражнение и добавляет его в журнал пользователя.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *entities.Exercise) (*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Create"))

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, exerciseKey(exercise.ID),
			fieldID, exercise.ID,
			fieldUserID, exercise.UserID,
			fieldDescription, exercise.Description,
			fieldDuration, strconv.Itoa(exercise.Duration),
			fieldDate, exercise.Date.UTC().Format(time.RFC3339Nano),
		)
		pipe.RPush(ctx, userExercisesKey(exercise.UserID), exercise.ID)
		return nil
	})
	if err != nil {
		log.Error(ctx, "error creating exercise", zap.Error(err))
		return nil, fmt.Errorf("error creating exercise: %w", err)
	}

	created := *exercise
	created.Date = exercise.Date.UTC()
	return &created, nil
}

// Find выбирает упражнения пользователя. Фильтрация и сортировка выполняются на стороне сервиса.
func (r *ExerciseRepository) Find(ctx context.Context, filter repositories.ExerciseFilter) ([]*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Find"))

	ids, err := r.client.LRange(ctx, userExercisesKey(filter.UserID), 0, -1).Result()
	if err != nil {
		log.Error(ctx, "error finding exercises", zap.Error(err))
		return nil, fmt.Errorf("error finding exercises: %w", err)
	}

	hashes, err := loadHashes(ctx, r.client, ids, exerciseKey)
	if err != nil {
		log.Error(ctx, "error loading exercises", zap.Error(err))
		return nil, fmt.Errorf("error finding exercises: %w", err)
	}

	exercises := make([]*entities.Exercise, 0, len(hashes))
	for _, fields := range hashes {
		e, err := decodeExercise(fields)
		if err != nil {
			log.Error(ctx, "error decoding exercise", zap.Error(err))
			return nil, fmt.Errorf("error decoding exercise: %w", err)
		}
		if filter.From.AtLeast(e.Date) && filter.To.AtMost(e.Date) {
			exercises = append(exercises, e)
		}
	}

	if filter.SortByDate {
		slices.SortStableFunc(exercises, func(a, b *entities.Exercise) int {
			return a.Date.Compare(b.Date)
		})
	}
	if filter.Limit > 0 && len(exercises) > filter.Limit {
		exercises = exercises[:filter.Limit]
	}

	return exercises, nil
}

func decodeExercise(fields map[string]string) (*entities.Exercise, error) {
	duration, err := strconv.Atoi(fields[fieldDuration])
	if err != nil {
		return nil, fmt.Errorf("duration of %s: %w", fields[fieldID], err)
	}
	date, err := time.Parse(time.RFC3339Nano, fields[fieldDate])
	if err != nil {
		return nil, fmt.Errorf("date of %s: %w", fields[fieldID], err)
	}
	return &entities.Exercise{
		ID:          fields[fieldID],
		UserID:      fields[fieldUserID],
		Description: fields[fieldDescription],
		Duration:    duration,
		Date:        date.UTC(),
	}, nil
}

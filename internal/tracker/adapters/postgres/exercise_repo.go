package postgres

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

// ExerciseRepository реализует интерфейс repositories.ExerciseRepository для работы с Postgres.
type ExerciseRepository struct {
	pool PgxPoolInterface
}

// NewExerciseRepository создает новый экземпляр репозитория упражнений.
func NewExerciseRepository(pool PgxPoolInterface) repositories.ExerciseRepository {
	return &ExerciseRepository{pool: pool}
}

// Create сохраняет упражнение.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *entities.Exercise) (*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Create"))

	query := `
        INSERT INTO exercises (id, user_id, description, duration, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, description, duration, date
    `

	var created entities.Exercise
	err := r.pool.QueryRow(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Description,
		&created.Duration,
		&created.Date,
	)
	if err != nil {
		log.Error(ctx, "error creating exercise", zap.Error(err))
		return nil, fmt.Errorf("error creating exercise: %w", err)
	}

	created.Date = created.Date.UTC()
	return &created, nil
}

// Find выбирает упражнения пользователя по фильтру.
func (r *ExerciseRepository) Find(ctx context.Context, filter repositories.ExerciseFilter) ([]*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Find"))

	query, args := buildFindQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error finding exercises", zap.Error(err))
		return nil, fmt.Errorf("error finding exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]*entities.Exercise, 0)
	for rows.Next() {
		var e entities.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date); err != nil {
			log.Error(ctx, "error scanning exercise row", zap.Error(err))
			return nil, fmt.Errorf("error scanning exercise row: %w", err)
		}
		e.Date = e.Date.UTC()
		exercises = append(exercises, &e)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating exercise rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating exercise rows: %w", err)
	}

	return exercises, nil
}

// buildFindQuery строит запрос выборки. Невалидная граница дат превращается в FALSE.
func buildFindQuery(filter repositories.ExerciseFilter) (string, []any) {
	var sb strings.Builder
	args := []any{filter.UserID}

	sb.WriteString("SELECT id, user_id, description, duration, date FROM exercises WHERE user_id = $1")

	appendBoundary := func(b entities.DateBoundary, op string) {
		switch {
		case !b.Set:
		case !b.Valid:
			sb.WriteString(" AND FALSE")
		default:
			args = append(args, b.Time)
			fmt.Fprintf(&sb, " AND date %s $%d", op, len(args))
		}
	}
	appendBoundary(filter.From, ">=")
	appendBoundary(filter.To, "<=")

	if filter.SortByDate {
		sb.WriteString(" ORDER BY date ASC, seq ASC")
	} else {
		sb.WriteString(" ORDER BY seq ASC")
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String(), args
}

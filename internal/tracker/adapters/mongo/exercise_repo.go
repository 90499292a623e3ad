package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

// ExerciseRepository реализует интерфейс repositories.ExerciseRepository для работы с MongoDB.
type ExerciseRepository struct {
	coll *mongo.Collection
}

// NewExerciseRepository создает новый экземпляр репозитория упражнений.
func NewExerciseRepository(db *mongo.Database) repositories.ExerciseRepository {
	return &ExerciseRepository{coll: db.Collection(ExercisesCollection)}
}

// Create сохраняет упражнение.
func (r *ExerciseRepository) Create(ctx context.Context, exercise *entities.Exercise) (*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Create"))

	id, err := primitive.ObjectIDFromHex(exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating exercise: invalid id %q: %w", exercise.ID, err)
	}
	userID, err := primitive.ObjectIDFromHex(exercise.UserID)
	if err != nil {
		return nil, fmt.Errorf("error creating exercise: invalid user id %q: %w", exercise.UserID, err)
	}

	doc := exerciseDocument{
		ID:          id,
		UserID:      userID,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		log.Error(ctx, "error creating exercise", zap.Error(err))
		return nil, fmt.Errorf("error creating exercise: %w", err)
	}

	return doc.toEntity(), nil
}

// Find выбирает упражнения пользователя по фильтру.
func (r *ExerciseRepository) Find(ctx context.Context, filter repositories.ExerciseFilter) ([]*entities.Exercise, error) {
	log := logger.Log(ctx).With(zap.String("repository", "exercise"), zap.String("method", "Find"))

	query, ok := buildFilter(filter)
	if !ok {
		return []*entities.Exercise{}, nil
	}

	opts := options.Find()
	if filter.SortByDate {
		opts.SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		log.Error(ctx, "error finding exercises", zap.Error(err))
		return nil, fmt.Errorf("error finding exercises: %w", err)
	}

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error(ctx, "error decoding exercises", zap.Error(err))
		return nil, fmt.Errorf("error decoding exercises: %w", err)
	}

	exercises := make([]*entities.Exercise, 0, len(docs))
	for i := range docs {
		exercises = append(exercises, docs[i].toEntity())
	}
	return exercises, nil
}

// buildFilter строит фильтр запроса. ok == false означает, что фильтру не соответствует ни один документ.
func buildFilter(filter repositories.ExerciseFilter) (bson.M, bool) {
	userID, err := primitive.ObjectIDFromHex(filter.UserID)
	if err != nil {
		return nil, false
	}
	if (filter.From.Set && !filter.From.Valid) || (filter.To.Set && !filter.To.Valid) {
		return nil, false
	}

	query := bson.M{"userId": userID}
	date := bson.M{}
	if filter.From.Set {
		date["$gte"] = filter.From.Time
	}
	if filter.To.Set {
		date["$lte"] = filter.To.Time
	}
	if len(date) > 0 {
		query["date"] = date
	}
	return query, true
}

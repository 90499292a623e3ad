package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository для работы с MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(db *mongo.Database) repositories.UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// Create сохраняет пользователя. Уникальность имени обеспечивает индекс.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	id, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating user: invalid id %q: %w", user.ID, err)
	}

	doc := userDocument{ID: id, Username: user.Username, CreatedAt: user.CreatedAt}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug(ctx, "username already taken", zap.String("username", user.Username))
			return nil, entities.ErrUsernameTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return doc.toEntity(), nil
}

// FindByID находит пользователя по ID. Некорректный ObjectID трактуется как отсутствие пользователя.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, entities.ErrUserNotFound
	}
	return r.findOne(ctx, "FindByID", bson.M{"_id": oid})
}

// FindByUsername находит пользователя по точному совпадению имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, "FindByUsername", bson.M{"username": username})
}

func (r *UserRepository) findOne(ctx context.Context, method string, filter bson.M) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug(ctx, "user not found")
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return doc.toEntity(), nil
}

// List возвращает всех пользователей в естественном порядке коллекции.
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "List"))

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error(ctx, "error decoding users", zap.Error(err))
		return nil, fmt.Errorf("error decoding users: %w", err)
	}

	users := make([]*entities.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toEntity())
	}
	return users, nil
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository для работы с Redis.
type UserRepository struct {
	client *redis.Client
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(client *redis.Client) repositories.UserRepository {
	return &UserRepository{client: client}
}

// Create занимает имя через SETNX и сохраняет пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	claimed, err := r.client.SetNX(ctx, usernameKey(user.Username), user.ID, 0).Result()
	if err != nil {
		log.Error(ctx, "error claiming username", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	if !claimed {
		log.Debug(ctx, "username already taken", zap.String("username", user.Username))
		return nil, entities.ErrUsernameTaken
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, userKey(user.ID),
			fieldID, user.ID,
			fieldUsername, user.Username,
			fieldCreatedAt, user.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.RPush(ctx, usersIndexKey, user.ID)
		return nil
	})
	if err != nil {
		log.Error(ctx, "error creating user", zap.Error(err))
		if delErr := r.client.Del(ctx, usernameKey(user.Username)).Err(); delErr != nil {
			log.Warn(ctx, "failed to release username", zap.Error(delErr))
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &entities.User{ID: user.ID, Username: user.Username, CreatedAt: user.CreatedAt.UTC()}, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	fields, err := r.client.HGetAll(ctx, userKey(id)).Result()
	if err != nil {
		log.Error(ctx, "error finding user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	if len(fields) == 0 {
		log.Debug(ctx, "user not found", zap.String("id", id))
		return nil, entities.ErrUserNotFound
	}

	return decodeUser(fields), nil
}

// FindByUsername находит пользователя по точному совпадению имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	id, err := r.client.Get(ctx, usernameKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user", zap.Error(err))
		return nil, fmt.Errorf("error querying user: %w", err)
	}

	return r.FindByID(ctx, id)
}

// List возвращает всех пользователей в порядке регистрации.
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "List"))

	ids, err := r.client.LRange(ctx, usersIndexKey, 0, -1).Result()
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	hashes, err := loadHashes(ctx, r.client, ids, userKey)
	if err != nil {
		log.Error(ctx, "error loading users", zap.Error(err))
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	users := make([]*entities.User, 0, len(hashes))
	for _, fields := range hashes {
		users = append(users, decodeUser(fields))
	}
	return users, nil
}

// loadHashes читает хеши по списку id одним конвейером, пропуская отсутствующие.
func loadHashes(
	ctx context.Context,
	client *redis.Client,
	ids []string,
	key func(string) string,
) ([]map[string]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err := client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, key(id))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]map[string]string, 0, len(cmds))
	for _, cmd := range cmds {
		if fields := cmd.Val(); len(fields) > 0 {
			out = append(out, fields)
		}
	}
	return out, nil
}

func decodeUser(fields map[string]string) *entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	return &entities.User{
		ID:        fields[fieldID],
		Username:  fields[fieldUsername],
		CreatedAt: createdAt.UTC(),
	}
}

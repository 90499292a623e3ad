// Package mongo реализует хранилище пользователей и упражнений в MongoDB.
package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"exercisetracker/internal/tracker/domain/entities"
)

// Имена коллекций.
const (
	UsersCollection     = "users"
	ExercisesCollection = "exercises"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

func (d *userDocument) toEntity() *entities.User {
	return &entities.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

func (d *exerciseDocument) toEntity() *entities.Exercise {
	return &entities.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}

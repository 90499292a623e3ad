package entities

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewID генерирует идентификатор в формате ObjectID (24 hex-символа).
// Формат одинаков для всех хранилищ.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID сообщает, может ли строка быть идентификатором. Литерал "0" всегда невалиден.
func IsValidID(id string) bool {
	if id == "0" {
		return false
	}
	return primitive.IsValidObjectID(id)
}

// NormalizeID приводит проверенный идентификатор к нижнему регистру,
// в котором он хранится во всех хранилищах.
func NormalizeID(id string) string {
	return strings.ToLower(id)
}

// Package dto содержит тела запросов и форматы ответов HTTP API.
package dto

import (
	"github.com/gofiber/utils/v2"

	"exercisetracker/internal/tracker/domain/entities"
)

// CreateUserRequest содержит данные для регистрации пользователя.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// Detach копирует поля из буфера запроса, который fasthttp переиспользует после ответа.
func (r *CreateUserRequest) Detach() {
	r.Username = utils.CopyString(r.Username)
}

// UserResponse представляет пользователя в ответе.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ErrorResponse - ответ с мягкой ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewUserResponse строит ответ из сущности.
func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{ID: user.ID, Username: user.Username}
}

// NewUserListResponse строит список пользователей. Пустой список сериализуется как [].
func NewUserListResponse(users []*entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

package entities

import (
	"errors"
	"strings"
)

// Ошибки хранилища, общие для всех реализаций репозиториев.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// Тексты ошибок, которые клиент получает в JSON-поле error.
const (
	MsgUsernameRequired    = "username is required"
	MsgUsernameExists      = "username already exists"
	MsgFindUser            = "Error finding user in the database"
	MsgSaveUser            = "Error saving user to the database"
	MsgFetchUsers          = "Error fetching users from the database"
	MsgInvalidID           = "_id is invalid"
	MsgDescriptionRequired = "description is required"
	MsgDurationRequired    = "duration is required"
	MsgDurationNotNumber   = "duration is not a number"
	MsgDateInvalid         = "date is invalid"
	MsgUserNotFound        = "user not found"
	MsgSaveExercise        = "Error saving exercise to the database"
	MsgFromDateInvalid     = "from date is invalid"
	MsgToDateInvalid       = "to date is invalid"
	MsgLimitNotNumber      = "limit is not a number"
	MsgFetchLog            = "Error fetching user or exercises from the database"
)

// SoftError - ожидаемая прикладная ошибка. HTTP-слой отдает ее со статусом 200
// в виде {"error": Message}.
type SoftError struct {
	Message string
	Err     error
}

// NewSoftError создает SoftError с необязательной причиной.
func NewSoftError(message string, cause error) *SoftError {
	return &SoftError{Message: message, Err: cause}
}

func (e *SoftError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *SoftError) Unwrap() error {
	return e.Err
}

// FieldError описывает нарушение схемы для одного поля.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError - нарушение схемы сущности перед сохранением.
// Сценарии оборачивают ее в SoftError. Непойманная ошибка дает 400 с текстом первого поля.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Entity + " validation failed: " + strings.Join(parts, ", ")
}

// First возвращает первую ошибку поля.
func (e *ValidationError) First() FieldError {
	if len(e.Fields) == 0 {
		return FieldError{Message: e.Entity + " validation failed"}
	}
	return e.Fields[0]
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

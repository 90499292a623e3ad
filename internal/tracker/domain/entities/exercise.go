package entities

import (
	"fmt"
	"math"
	"time"
)

// Допустимые границы длительности упражнения. Верхняя совпадает с колонкой INTEGER.
const (
	MinDuration = 1
	MaxDuration = math.MaxInt32
)

// Exercise - запись в журнале упражнений пользователя.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// NewExercise создает упражнение с новым идентификатором. Нулевая дата заменяется текущим временем.
func NewExercise(userID, description string, duration int, date time.Time) *Exercise {
	if date.IsZero() {
		date = time.Now()
	}
	return &Exercise{
		ID:          NewID(),
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date.UTC(),
	}
}

// Validate проверяет схему упражнения. Поля проверяются в порядке объявления.
func (e *Exercise) Validate() error {
	verr := &ValidationError{Entity: "Exercise"}
	if e.UserID == "" {
		verr.add("userId", "Path `userId` is required.")
	}
	if e.Description == "" {
		verr.add("description", "Path `description` is required.")
	}
	if e.Duration < MinDuration {
		verr.add("duration", fmt.Sprintf(
			"Path `duration` (%d) is less than minimum allowed value (%d).", e.Duration, MinDuration))
	}
	if e.Duration > MaxDuration {
		verr.add("duration", fmt.Sprintf(
			"Path `duration` (%d) is more than maximum allowed value (%d).", e.Duration, MaxDuration))
	}
	return verr.orNil()
}

package dto

import (
	"github.com/gofiber/utils/v2"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/api"
)

// CreateExerciseRequest содержит данные для добавления упражнения.
// nil означает, что поле не передано.
type CreateExerciseRequest struct {
	Description *string `json:"description" form:"description"`
	Duration    *string `json:"duration" form:"duration"`
	Date        *string `json:"date" form:"date"`
}

// Detach копирует поля из буфера запроса, который fasthttp переиспользует после ответа.
func (r *CreateExerciseRequest) Detach() {
	r.Description = copyOptional(r.Description)
	r.Duration = copyOptional(r.Duration)
	r.Date = copyOptional(r.Date)
}

func copyOptional(s *string) *string {
	if s == nil {
		return nil
	}
	c := utils.CopyString(*s)
	return &c
}

// LogQueryRequest содержит параметры выборки журнала.
type LogQueryRequest struct {
	From  string  `query:"from"`
	To    string  `query:"to"`
	Limit *string `query:"limit"`
}

// ExerciseItem - упражнение в ответе.
type ExerciseItem struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// AddExerciseResponse - ответ на добавление упражнения с полной историей пользователя.
type AddExerciseResponse struct {
	ID        string         `json:"_id"`
	Username  string         `json:"username"`
	Exercises []ExerciseItem `json:"exercises"`
}

// ExercisesResponse - ответ GET /api/users/:_id/exercises.
type ExercisesResponse struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Log      []ExerciseItem `json:"log"`
	Count    int            `json:"count"`
}

// LogResponse - ответ GET /api/users/:_id/logs.
type LogResponse struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Count    int            `json:"count"`
	Log      []ExerciseItem `json:"log"`
}

// ToAddInput преобразует тело запроса во входные параметры сервиса.
func (r *CreateExerciseRequest) ToAddInput(userID string) api.AddExerciseInput {
	return api.AddExerciseInput{
		UserID:      userID,
		Description: r.Description,
		Duration:    r.Duration,
		Date:        r.Date,
	}
}

// ToLogQuery преобразует параметры запроса во входные параметры сервиса.
func (r *LogQueryRequest) ToLogQuery(userID string) api.LogQuery {
	return api.LogQuery{UserID: userID, From: r.From, To: r.To, Limit: r.Limit}
}

// NewExerciseItems форматирует упражнения для ответа.
func NewExerciseItems(exercises []*entities.Exercise) []ExerciseItem {
	out := make([]ExerciseItem, 0, len(exercises))
	for _, e := range exercises {
		out = append(out, ExerciseItem{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        entities.FormatDate(e.Date),
		})
	}
	return out
}

// NewAddExerciseResponse строит ответ на добавление упражнения.
func NewAddExerciseResponse(result *api.UserLog) AddExerciseResponse {
	return AddExerciseResponse{
		ID:        result.User.ID,
		Username:  result.User.Username,
		Exercises: NewExerciseItems(result.Exercises),
	}
}

// NewExercisesResponse строит ответ выборки упражнений.
func NewExercisesResponse(result *api.UserLog) ExercisesResponse {
	items := NewExerciseItems(result.Exercises)
	return ExercisesResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Log:      items,
		Count:    len(items),
	}
}

// NewLogResponse строит ответ журнала.
func NewLogResponse(result *api.UserLog) LogResponse {
	items := NewExerciseItems(result.Exercises)
	return LogResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Count:    len(items),
		Log:      items,
	}
}

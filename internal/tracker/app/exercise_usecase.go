package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/api"
	"exercisetracker/internal/tracker/ports/repositories"
	"exercisetracker/pkg/logger"
)

const (
	methodAddExercise = "AddExercise"
	methodQuery       = "QueryExercises"
	methodLog         = "ExerciseLog"

	msgValidationFailed = "request validation failed"
	msgUserMissing      = "user not found"
	msgExerciseAdded    = "exercise added"
	msgLogFetched       = "exercise log fetched"

	msgErrFindingUserByID = "failed to find user by id"
	msgErrSchema          = "exercise failed schema validation"
	msgErrSavingExercise  = "failed to save exercise"
	msgErrLoadingHistory  = "failed to load exercise history"
	msgErrFindingLog      = "failed to find exercises"
)

// ExerciseOption настраивает ExerciseUseCaseImpl.
type ExerciseOption func(*ExerciseUseCaseImpl)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) ExerciseOption {
	return func(uc *ExerciseUseCaseImpl) {
		uc.now = now
	}
}

// ExerciseUseCaseImpl реализует api.ExerciseUseCase.
type ExerciseUseCaseImpl struct {
	userRepo     repositories.UserRepository
	exerciseRepo repositories.ExerciseRepository
	now          func() time.Time
}

// NewExerciseUseCase создает сервис журнала упражнений.
func NewExerciseUseCase(
	userRepo repositories.UserRepository,
	exerciseRepo repositories.ExerciseRepository,
	opts ...ExerciseOption,
) api.ExerciseUseCase {
	uc := &ExerciseUseCaseImpl{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Add проверяет параметры, сохраняет упражнение и возвращает всю историю пользователя.
// Ошибки параметров проверяются строго в порядке: id, description, duration, date, пользователь.
func (uc *ExerciseUseCaseImpl) Add(ctx context.Context, in api.AddExerciseInput) (*api.UserLog, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddExercise), zap.String("userID", in.UserID))

	if msg := validateAddInput(in); msg != "" {
		log.Debug(ctx, msgValidationFailed, zap.String("reason", msg))
		return nil, entities.NewSoftError(msg, nil)
	}

	duration, _ := entities.ParseLeadingInt(deref(in.Duration))
	date := uc.now()
	if in.Date != nil {
		date, _ = entities.ParseDate(*in.Date)
	}

	user, err := uc.userRepo.FindByID(ctx, entities.NormalizeID(in.UserID))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserMissing)
			return nil, entities.NewSoftError(entities.MsgUserNotFound, err)
		}
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgSaveExercise, err)
	}

	exercise := entities.NewExercise(user.ID, deref(in.Description), duration, date)
	if err := exercise.Validate(); err != nil {
		log.Debug(ctx, msgErrSchema, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgSaveExercise, err)
	}

	if _, err := uc.exerciseRepo.Create(ctx, exercise); err != nil {
		log.Error(ctx, msgErrSavingExercise, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgSaveExercise, err)
	}

	history, err := uc.exerciseRepo.Find(ctx, repositories.ExerciseFilter{UserID: user.ID})
	if err != nil {
		log.Error(ctx, msgErrLoadingHistory, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgSaveExercise, err)
	}

	log.Info(ctx, msgExerciseAdded, zap.String("exerciseID", exercise.ID), zap.Int("history", len(history)))
	return &api.UserLog{User: user, Exercises: history}, nil
}

// validateAddInput проверяет параметры до обращения к хранилищу.
// Пустая строка и отсутствующее поле различаются: отсутствующее описание
// отклоняется схемой при сохранении, отсутствующая длительность не является числом.
func validateAddInput(in api.AddExerciseInput) string {
	switch {
	case !entities.IsValidID(in.UserID):
		return entities.MsgInvalidID
	case in.Description != nil && *in.Description == "":
		return entities.MsgDescriptionRequired
	case in.Duration != nil && *in.Duration == "":
		return entities.MsgDurationRequired
	}
	if _, ok := entities.ParseLeadingInt(deref(in.Duration)); !ok {
		return entities.MsgDurationNotNumber
	}
	if in.Date != nil {
		if _, ok := entities.ParseDate(*in.Date); !ok {
			return entities.MsgDateInvalid
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Query возвращает упражнения пользователя по возрастанию даты.
// Невалидные from, to и limit возвращают ошибку.
func (uc *ExerciseUseCaseImpl) Query(ctx context.Context, q api.LogQuery) (*api.UserLog, error) {
	log := logger.Log(ctx).With(zap.String("method", methodQuery), zap.String("userID", q.UserID))

	filter := repositories.ExerciseFilter{UserID: q.UserID, SortByDate: true}

	filter.From = entities.NewDateBoundary(q.From)
	if filter.From.Set && !filter.From.Valid {
		log.Debug(ctx, msgValidationFailed, zap.String("from", q.From))
		return nil, entities.NewSoftError(entities.MsgFromDateInvalid, nil)
	}

	filter.To = entities.NewDateBoundary(q.To)
	if filter.To.Set && !filter.To.Valid {
		log.Debug(ctx, msgValidationFailed, zap.String("to", q.To))
		return nil, entities.NewSoftError(entities.MsgToDateInvalid, nil)
	}

	if q.Limit != nil {
		limit, ok := entities.ParseLeadingInt(*q.Limit)
		if !ok {
			log.Debug(ctx, msgValidationFailed, zap.String("limit", *q.Limit))
			return nil, entities.NewSoftError(entities.MsgLimitNotNumber, nil)
		}
		filter.Limit = max(limit, 0)
	}

	if !entities.IsValidID(q.UserID) {
		log.Debug(ctx, msgValidationFailed, zap.String("reason", entities.MsgInvalidID))
		return nil, entities.NewSoftError(entities.MsgInvalidID, nil)
	}
	filter.UserID = entities.NormalizeID(q.UserID)

	return uc.fetch(ctx, log, filter)
}

// Log возвращает упражнения пользователя в порядке хранилища.
// Невалидные даты превращаются в границы, которым не соответствует ни одна запись,
// невалидный или неположительный limit снимает ограничение.
func (uc *ExerciseUseCaseImpl) Log(ctx context.Context, q api.LogQuery) (*api.UserLog, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLog), zap.String("userID", q.UserID))

	filter := repositories.ExerciseFilter{
		UserID: q.UserID,
		From:   entities.NewDateBoundary(q.From),
		To:     entities.NewDateBoundary(q.To),
	}

	if q.Limit != nil {
		if limit, ok := entities.ParseLeadingInt(*q.Limit); ok && limit > 0 {
			filter.Limit = limit
		}
	}

	if !entities.IsValidID(q.UserID) {
		log.Debug(ctx, msgValidationFailed, zap.String("reason", entities.MsgInvalidID))
		return nil, entities.NewSoftError(entities.MsgFetchLog, nil)
	}
	filter.UserID = entities.NormalizeID(q.UserID)

	return uc.fetch(ctx, log, filter)
}

func (uc *ExerciseUseCaseImpl) fetch(
	ctx context.Context,
	log *logger.Logger,
	filter repositories.ExerciseFilter,
) (*api.UserLog, error) {
	user, err := uc.userRepo.FindByID(ctx, filter.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUserMissing)
			return nil, entities.NewSoftError(entities.MsgUserNotFound, err)
		}
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgFetchLog, err)
	}

	exercises, err := uc.exerciseRepo.Find(ctx, filter)
	if err != nil {
		log.Error(ctx, msgErrFindingLog, zap.Error(err))
		return nil, entities.NewSoftError(entities.MsgFetchLog, err)
	}

	log.Debug(ctx, msgLogFetched, zap.Int("count", len(exercises)))
	return &api.UserLog{User: user, Exercises: exercises}, nil
}

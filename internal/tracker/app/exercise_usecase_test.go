package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exercisetracker/internal/tracker/app"
	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/api"
	"exercisetracker/internal/tracker/ports/repositories"
)

const testUserID = "65a0000000000000000000aa"

var fixedNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newExerciseUseCase(users *mockUserRepository, exercises *mockExerciseRepository) api.ExerciseUseCase {
	return app.NewExerciseUseCase(users, exercises, app.WithClock(func() time.Time { return fixedNow }))
}

func TestAddExercise_ValidationOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		in          api.AddExerciseInput
		expectedMsg string
	}{
		{"literal zero id", api.AddExerciseInput{UserID: "0", Description: strPtr("run"), Duration: strPtr("45")}, entities.MsgInvalidID},
		{"malformed id", api.AddExerciseInput{UserID: "abc", Description: strPtr("run"), Duration: strPtr("45")}, entities.MsgInvalidID},
		{"invalid id wins over empty description", api.AddExerciseInput{UserID: "abc"}, entities.MsgInvalidID},
		{
			"empty description",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr(""), Duration: strPtr("45")},
			entities.MsgDescriptionRequired,
		},
		{
			"empty duration",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("")},
			entities.MsgDurationRequired,
		},
		{"absent duration is not a number", api.AddExerciseInput{UserID: testUserID, Description: strPtr("run")}, entities.MsgDurationNotNumber},
		{"absent fields", api.AddExerciseInput{UserID: testUserID}, entities.MsgDurationNotNumber},
		{"duration not a number", api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("abc")}, entities.MsgDurationNotNumber},
		{
			"duration checked before date",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("abc"), Date: strPtr("not-a-date")},
			entities.MsgDurationNotNumber,
		},
		{
			"invalid date",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("45"), Date: strPtr("not-a-date")},
			entities.MsgDateInvalid,
		},
		{
			"empty date string is invalid",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("45"), Date: strPtr("")},
			entities.MsgDateInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := new(mockUserRepository)
			exercises := new(mockExerciseRepository)

			result, err := newExerciseUseCase(users, exercises).Add(ctx, tc.in)

			assert.Nil(t, result)
			requireSoftError(t, err, tc.expectedMsg)
			users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			exercises.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAddExercise_UserNotFound(t *testing.T) {
	users := new(mockUserRepository)
	exercises := new(mockExerciseRepository)
	users.On("FindByID", mock.Anything, testUserID).Return(nil, entities.ErrUserNotFound).Once()

	_, err := newExerciseUseCase(users, exercises).Add(context.Background(),
		api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("45")})

	requireSoftError(t, err, entities.MsgUserNotFound)
	exercises.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddExercise_DefaultsDateAndReturnsHistory(t *testing.T) {
	ctx := context.Background()
	user := &entities.User{ID: testUserID, Username: "alice"}
	prior := &entities.Exercise{
		ID: entities.NewID(), UserID: testUserID, Description: "swim", Duration: 20,
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	users := new(mockUserRepository)
	exercises := new(mockExerciseRepository)
	users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()

	var created *entities.Exercise
	exercises.On("Create", mock.Anything, mock.MatchedBy(func(e *entities.Exercise) bool {
		created = e
		return e.UserID == testUserID && e.Description == "run" && e.Duration == 45
	})).Return(func(_ context.Context, e *entities.Exercise) *entities.Exercise { return e }, nil).Once()
	exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID}).
		Return(func(context.Context, repositories.ExerciseFilter) []*entities.Exercise {
			return []*entities.Exercise{prior, created}
		}, nil).Once()

	result, err := newExerciseUseCase(users, exercises).Add(ctx,
		api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("45")})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entities.FormatDate(fixedNow), entities.FormatDate(created.Date))
	assert.Same(t, user, result.User)
	require.Len(t, result.Exercises, 2)
	assert.Same(t, prior, result.Exercises[0])
	users.AssertExpectations(t)
}

func TestAddExercise_SchemaValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    api.AddExerciseInput
		field string
	}{
		{"zero duration", api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("0")}, "duration"},
		{"negative duration", api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("-5")}, "duration"},
		{
			"overflowing duration",
			api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("99999999999999999999")},
			"duration",
		},
		{"absent description", api.AddExerciseInput{UserID: testUserID, Duration: strPtr("10")}, "description"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := new(mockUserRepository)
			exercises := new(mockExerciseRepository)
			users.On("FindByID", mock.Anything, testUserID).Return(&entities.User{ID: testUserID, Username: "a"}, nil).Once()

			_, err := newExerciseUseCase(users, exercises).Add(context.Background(), tc.in)

			requireSoftError(t, err, entities.MsgSaveExercise)
			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.First().Field)
			exercises.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAddExercise_UppercaseIDIsNormalized(t *testing.T) {
	users := new(mockUserRepository)
	exercises := new(mockExerciseRepository)
	user := &entities.User{ID: testUserID, Username: "alice"}
	users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
	exercises.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, e *entities.Exercise) *entities.Exercise { return e }, nil).Once()
	exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID}).
		Return([]*entities.Exercise{}, nil).Once()

	result, err := newExerciseUseCase(users, exercises).Add(context.Background(),
		api.AddExerciseInput{UserID: strings.ToUpper(testUserID), Description: strPtr("run"), Duration: strPtr("10")})

	require.NoError(t, err)
	assert.Same(t, user, result.User)
	users.AssertExpectations(t)
	exercises.AssertExpectations(t)
}

func TestAddExercise_PersistenceFailure(t *testing.T) {
	users := new(mockUserRepository)
	exercises := new(mockExerciseRepository)
	users.On("FindByID", mock.Anything, testUserID).Return(&entities.User{ID: testUserID, Username: "a"}, nil).Once()
	exercises.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	_, err := newExerciseUseCase(users, exercises).Add(context.Background(),
		api.AddExerciseInput{UserID: testUserID, Description: strPtr("run"), Duration: strPtr("10"), Date: strPtr("2024-01-05")})

	requireSoftError(t, err, entities.MsgSaveExercise)
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	user := &entities.User{ID: testUserID, Username: "alice"}

	t.Run("invalid from always errors", func(t *testing.T) {
		users := new(mockUserRepository)
		_, err := newExerciseUseCase(users, new(mockExerciseRepository)).
			Query(ctx, api.LogQuery{UserID: testUserID, From: "garbage"})
		requireSoftError(t, err, entities.MsgFromDateInvalid)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("invalid to errors", func(t *testing.T) {
		_, err := newExerciseUseCase(new(mockUserRepository), new(mockExerciseRepository)).
			Query(ctx, api.LogQuery{UserID: testUserID, To: "garbage"})
		requireSoftError(t, err, entities.MsgToDateInvalid)
	})

	t.Run("non numeric limit errors", func(t *testing.T) {
		_, err := newExerciseUseCase(new(mockUserRepository), new(mockExerciseRepository)).
			Query(ctx, api.LogQuery{UserID: testUserID, Limit: strPtr("many")})
		requireSoftError(t, err, entities.MsgLimitNotNumber)
	})

	t.Run("invalid id without lookup", func(t *testing.T) {
		for _, id := range []string{"0", "xyz"} {
			users := new(mockUserRepository)
			_, err := newExerciseUseCase(users, new(mockExerciseRepository)).Query(ctx, api.LogQuery{UserID: id})
			requireSoftError(t, err, entities.MsgInvalidID)
			users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(mockUserRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(nil, entities.ErrUserNotFound).Once()
		_, err := newExerciseUseCase(users, new(mockExerciseRepository)).Query(ctx, api.LogQuery{UserID: testUserID})
		requireSoftError(t, err, entities.MsgUserNotFound)
	})

	t.Run("builds sorted limited filter", func(t *testing.T) {
		users := new(mockUserRepository)
		exercises := new(mockExerciseRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()

		expected := repositories.ExerciseFilter{
			UserID:     testUserID,
			From:       entities.NewDateBoundary("2024-01-01"),
			To:         entities.NewDateBoundary("2024-02-01"),
			Limit:      2,
			SortByDate: true,
		}
		found := []*entities.Exercise{{ID: "e1"}, {ID: "e2"}}
		exercises.On("Find", mock.Anything, expected).Return(found, nil).Once()

		result, err := newExerciseUseCase(users, exercises).Query(ctx, api.LogQuery{
			UserID: testUserID, From: "2024-01-01", To: "2024-02-01", Limit: strPtr("2"),
		})

		require.NoError(t, err)
		assert.Equal(t, found, result.Exercises)
		exercises.AssertExpectations(t)
	})

	t.Run("zero limit and empty dates mean unlimited and unbounded", func(t *testing.T) {
		users := new(mockUserRepository)
		exercises := new(mockExerciseRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
		exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID, SortByDate: true}).
			Return([]*entities.Exercise{}, nil).Once()

		_, err := newExerciseUseCase(users, exercises).Query(ctx, api.LogQuery{UserID: testUserID, Limit: strPtr("0")})

		require.NoError(t, err)
		exercises.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		users := new(mockUserRepository)
		exercises := new(mockExerciseRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
		exercises.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := newExerciseUseCase(users, exercises).Query(ctx, api.LogQuery{UserID: testUserID})
		requireSoftError(t, err, entities.MsgFetchLog)
	})
}

func TestLog(t *testing.T) {
	ctx := context.Background()
	user := &entities.User{ID: testUserID, Username: "alice"}

	t.Run("invalid from does not error", func(t *testing.T) {
		users := new(mockUserRepository)
		exercises := new(mockExerciseRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
		exercises.On("Find", mock.Anything, mock.MatchedBy(func(f repositories.ExerciseFilter) bool {
			return f.From.Set && !f.From.Valid && !f.SortByDate && f.Limit == 0
		})).Return([]*entities.Exercise{}, nil).Once()

		result, err := newExerciseUseCase(users, exercises).Log(ctx, api.LogQuery{UserID: testUserID, From: "garbage"})

		require.NoError(t, err)
		assert.Empty(t, result.Exercises)
		exercises.AssertExpectations(t)
	})

	t.Run("bad limit falls back to unlimited", func(t *testing.T) {
		for _, limit := range []string{"many", "-3", "0"} {
			users := new(mockUserRepository)
			exercises := new(mockExerciseRepository)
			users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
			exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID}).
				Return([]*entities.Exercise{}, nil).Once()

			_, err := newExerciseUseCase(users, exercises).Log(ctx, api.LogQuery{UserID: testUserID, Limit: strPtr(limit)})

			require.NoError(t, err, limit)
			exercises.AssertExpectations(t)
		}
	})

	t.Run("positive limit keeps storage order", func(t *testing.T) {
		users := new(mockUserRepository)
		exercises := new(mockExerciseRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Once()
		exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID, Limit: 2}).
			Return([]*entities.Exercise{{ID: "e2"}, {ID: "e1"}}, nil).Once()

		result, err := newExerciseUseCase(users, exercises).Log(ctx, api.LogQuery{UserID: testUserID, Limit: strPtr("2")})

		require.NoError(t, err)
		assert.Equal(t, "e2", result.Exercises[0].ID)
	})

	t.Run("malformed id is a fetch error", func(t *testing.T) {
		users := new(mockUserRepository)
		_, err := newExerciseUseCase(users, new(mockExerciseRepository)).Log(ctx, api.LogQuery{UserID: "0"})
		requireSoftError(t, err, entities.MsgFetchLog)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(mockUserRepository)
		users.On("FindByID", mock.Anything, testUserID).Return(nil, entities.ErrUserNotFound).Once()
		_, err := newExerciseUseCase(users, new(mockExerciseRepository)).Log(ctx, api.LogQuery{UserID: testUserID})
		requireSoftError(t, err, entities.MsgUserNotFound)
	})
}

func TestQueryAndLog_UppercaseIDIsNormalized(t *testing.T) {
	ctx := context.Background()
	user := &entities.User{ID: testUserID, Username: "alice"}
	upper := strings.ToUpper(testUserID)

	users := new(mockUserRepository)
	exercises := new(mockExerciseRepository)
	users.On("FindByID", mock.Anything, testUserID).Return(user, nil).Twice()
	exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID, SortByDate: true}).
		Return([]*entities.Exercise{}, nil).Once()
	exercises.On("Find", mock.Anything, repositories.ExerciseFilter{UserID: testUserID}).
		Return([]*entities.Exercise{}, nil).Once()

	uc := newExerciseUseCase(users, exercises)

	_, err := uc.Query(ctx, api.LogQuery{UserID: upper})
	require.NoError(t, err)

	_, err = uc.Log(ctx, api.LogQuery{UserID: upper})
	require.NoError(t, err)

	users.AssertExpectations(t)
	exercises.AssertExpectations(t)
}

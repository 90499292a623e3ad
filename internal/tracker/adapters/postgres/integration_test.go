//go:build integration

package postgres_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"exercisetracker/internal/tracker/adapters/postgres"
	"exercisetracker/internal/tracker/domain/entities"
	"exercisetracker/internal/tracker/ports/repositories"
	pkgpostgres "exercisetracker/pkg/db/postgres"
)

func TestRepositoriesAgainstPostgres(t *testing.T) {
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("tracker"),
		postgrescontainer.WithUsername("tracker"),
		postgrescontainer.WithPassword("tracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrations, err := filepath.Abs("../../../../migrations/tracker")
	require.NoError(t, err)
	require.NoError(t, pkgpostgres.MigrateDSN(ctx, connStr, "file://"+migrations))

	database, err := pkgpostgres.New(ctx, connStr, 1, 10)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(ctx) })

	factory := postgres.NewRepositoryFactory(database.Pool())
	users := factory.UserRepository()
	exercises := factory.ExerciseRepository()

	t.Run("concurrent registration keeps usernames unique", func(t *testing.T) {
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			success int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := users.Create(ctx, entities.NewUser("racer")); err == nil {
					mu.Lock()
					success++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, success)
	})

	t.Run("exercise log ordering and filtering", func(t *testing.T) {
		user, err := users.Create(ctx, entities.NewUser("alice"))
		require.NoError(t, err)

		day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
		for _, e := range []*entities.Exercise{
			entities.NewExercise(user.ID, "c", 30, day(20)),
			entities.NewExercise(user.ID, "a", 10, day(5)),
			entities.NewExercise(user.ID, "b", 20, day(10)),
		} {
			_, err := exercises.Create(ctx, e)
			require.NoError(t, err)
		}

		inserted, err := exercises.Find(ctx, repositories.ExerciseFilter{UserID: user.ID})
		require.NoError(t, err)
		require.Len(t, inserted, 3)
		assert.Equal(t, "c", inserted[0].Description)

		sorted, err := exercises.Find(ctx, repositories.ExerciseFilter{
			UserID:     user.ID,
			From:       entities.NewDateBoundary("2024-01-05"),
			To:         entities.NewDateBoundary("2024-01-10"),
			SortByDate: true,
		})
		require.NoError(t, err)
		require.Len(t, sorted, 2)
		assert.Equal(t, "a", sorted[0].Description)
		assert.Equal(t, "b", sorted[1].Description)

		none, err := exercises.Find(ctx, repositories.ExerciseFilter{
			UserID: user.ID,
			From:   entities.NewDateBoundary("garbage"),
		})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("duration constraint", func(t *testing.T) {
		user, err := users.FindByUsername(ctx, "alice")
		require.NoError(t, err)

		_, err = exercises.Create(ctx, &entities.Exercise{
			ID: entities.NewID(), UserID: user.ID, Description: "x", Duration: 0, Date: time.Now(),
		})
		assert.Error(t, err)
	})

	require.NoError(t, factory.Ping(ctx))
}
